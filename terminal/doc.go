// Package terminal is the display sink of the show: it flushes composited grids to
// a tcell screen, translates terminal events and restores the terminal on exit or
// panic.
//
// Features:
//   - True color with an xterm-256 fallback chosen from the environment
//   - Double-width mode that maps each grid cell onto two columns
//   - Narrow-cell fallback for wide glyphs
//   - Clean terminal restoration on exit/panic
package terminal
