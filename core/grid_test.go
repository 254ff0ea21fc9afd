package core

import "testing"

func TestNewGrid(t *testing.T) {
	width, height := 80, 24
	g := NewGrid(width, height)

	if g.Width() != width {
		t.Errorf("Expected width %d, got %d", width, g.Width())
	}
	if g.Height() != height {
		t.Errorf("Expected height %d, got %d", height, g.Height())
	}

	// Verify all cells are initialized to blank
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if !g.IsBlank(x, y) {
				t.Errorf("Expected cell at (%d, %d) to be blank", x, y)
			}
		}
	}
	if g.Painted() != 0 {
		t.Errorf("Expected no painted cells, got %d", g.Painted())
	}
}

func TestGridGetSet(t *testing.T) {
	g := NewGrid(10, 5)

	cell := Cell{Rune: '@', Color: RGB{255, 0, 0}}
	if !g.Set(3, 4, cell) {
		t.Fatal("Expected Set to succeed")
	}

	got, ok := g.Get(3, 4)
	if !ok {
		t.Fatal("Expected Get to succeed")
	}
	if got != cell {
		t.Errorf("Expected %v, got %v", cell, got)
	}
	if g.IsBlank(3, 4) {
		t.Error("Expected painted cell to be non-blank")
	}
	if g.Painted() != 1 {
		t.Errorf("Expected 1 painted cell, got %d", g.Painted())
	}
}

func TestGridBounds(t *testing.T) {
	g := NewGrid(4, 3)

	tests := []struct {
		x, y int
		want bool
	}{
		{0, 0, true},
		{3, 2, true},
		{4, 0, false},
		{0, 3, false},
		{-1, 1, false},
		{1, -1, false},
	}

	for _, tt := range tests {
		if got := g.InBounds(tt.x, tt.y); got != tt.want {
			t.Errorf("InBounds(%d, %d) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
		if !tt.want {
			if g.Set(tt.x, tt.y, Cell{Rune: 'x'}) {
				t.Errorf("Expected Set(%d, %d) to fail", tt.x, tt.y)
			}
			if _, ok := g.Get(tt.x, tt.y); ok {
				t.Errorf("Expected Get(%d, %d) to fail", tt.x, tt.y)
			}
			if g.IsBlank(tt.x, tt.y) {
				t.Errorf("Out of bounds cell (%d, %d) must not report blank", tt.x, tt.y)
			}
		}
	}
}

func TestGridClear(t *testing.T) {
	g := NewGrid(5, 5)
	for i := 0; i < 5; i++ {
		g.Set(i, i, Cell{Rune: '#'})
	}

	g.Clear()

	if g.Painted() != 0 {
		t.Errorf("Expected grid to be blank after Clear, %d cells painted", g.Painted())
	}
}

func TestGridResize(t *testing.T) {
	g := NewGrid(10, 10)
	g.Set(1, 1, Cell{Rune: '#'})

	g.Resize(20, 4)
	if g.Width() != 20 || g.Height() != 4 {
		t.Errorf("Expected 20x4, got %dx%d", g.Width(), g.Height())
	}
	if g.Painted() != 0 {
		t.Error("Expected resized grid to be blank")
	}
	if len(g.Row(3)) != 20 {
		t.Errorf("Expected row of 20 cells, got %d", len(g.Row(3)))
	}
	if g.Row(4) != nil {
		t.Error("Expected nil for out of range row")
	}

	g.Resize(-1, 3)
	if g.Width() != 0 || g.Height() != 3 {
		t.Errorf("Expected negative width clamped to 0, got %dx%d", g.Width(), g.Height())
	}
}
