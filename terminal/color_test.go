package terminal

import (
	"bytes"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/fireworks/core"
)

func TestRGBTo256(t *testing.T) {
	tests := []struct {
		name string
		c    core.RGB
		want uint8
	}{
		{"black", core.RGB{}, 16},
		{"white", core.RGB{R: 255, G: 255, B: 255}, 231},
		{"red", core.RGB{R: 255}, 196},
		{"yellow", core.RGB{R: 255, G: 255}, 226},
		{"mid gray", core.RGB{R: 128, G: 128, B: 128}, 244},
		{"bright gray", core.RGB{R: 200, G: 200, B: 200}, 251},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RGBTo256(tt.c); got != tt.want {
				t.Errorf("RGBTo256(%v) = %d, want %d", tt.c, got, tt.want)
			}
		})
	}
}

func TestToTcell(t *testing.T) {
	c := core.RGB{R: 10, G: 20, B: 30}
	if got := ToTcell(c, ColorModeTrueColor); got != tcell.NewRGBColor(10, 20, 30) {
		t.Errorf("Expected RGB color, got %v", got)
	}
	if got := ToTcell(core.RGB{R: 255}, ColorMode256); got != tcell.PaletteColor(196) {
		t.Errorf("Expected palette color 196, got %v", got)
	}
}

func TestFromTcell(t *testing.T) {
	if got := FromTcell(tcell.NewRGBColor(10, 20, 30)); got != (core.RGB{R: 10, G: 20, B: 30}) {
		t.Errorf("Expected (10,20,30), got %v", got)
	}
	if got := FromTcell(tcell.ColorDefault); got != core.RGBWhite {
		t.Errorf("Expected default to map to white, got %v", got)
	}
}

func TestDetectColorMode(t *testing.T) {
	for _, k := range []string{"KITTY_WINDOW_ID", "KONSOLE_VERSION", "ITERM_SESSION_ID", "ALACRITTY_WINDOW_ID", "WEZTERM_PANE"} {
		t.Setenv(k, "")
	}

	t.Setenv("COLORTERM", "truecolor")
	t.Setenv("TERM", "xterm-256color")
	if got := DetectColorMode(); got != ColorModeTrueColor {
		t.Errorf("Expected truecolor from COLORTERM, got %v", got)
	}

	t.Setenv("COLORTERM", "")
	if got := DetectColorMode(); got != ColorMode256 {
		t.Errorf("Expected 256 fallback, got %v", got)
	}

	t.Setenv("TERM", "xterm-direct")
	if got := DetectColorMode(); got != ColorModeTrueColor {
		t.Errorf("Expected truecolor from TERM, got %v", got)
	}
}

func TestEmergencyReset(t *testing.T) {
	var buf bytes.Buffer
	EmergencyReset(&buf)

	out := buf.Bytes()
	for _, seq := range [][]byte{csiCursorShow, csiAltScreenExit, csiSGR0} {
		if !bytes.Contains(out, seq) {
			t.Errorf("Expected reset output to contain %q", seq)
		}
	}
	if !bytes.HasSuffix(out, csiRIS) {
		t.Error("Expected full reset last")
	}
}
