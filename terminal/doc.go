// Package terminal hosts the explorer in a tcell screen
//
// Every cell shows two vertical pixels with the upper half block glyph:
// the foreground paints the upper pixel and the background the lower one.
// The last row is the status bar. Terminals report no key releases, so a key
// counts as down only on the tick its press arrived.
package terminal
