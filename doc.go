// Package sixel implements the DEC Sixel graphics command language: a
// streaming byte parser that turns a Sixel payload into semantic events,
// and a raster image builder that consumes those events to produce an
// RGBA pixel buffer.
//
// # Quick Start
//
// Parse a complete payload (already stripped of its DCS introducer and
// string terminator by the caller's VT parser) straight into pixels:
//
//	b := sixel.NewBuilder(sixel.Size{Width: 800, Height: 600}, sixel.RGBColor{})
//	sixel.Parse(payload, b)
//	pixels := b.Framebuffer() // RGBA, row-major, b.Size().Width*Height*4 bytes
//
// # Parser and Events
//
// [Parser] is the streaming entry point when the payload arrives in
// pieces (e.g. one read() at a time from a PTY):
//
//	p := sixel.NewParser(events)
//	p.Parse(b)             // one byte
//	p.ParseFragment(chunk)  // a contiguous range
//	p.Done()                // end of stream
//
// [Events] is the contract between the parser and whatever consumes its
// output. [Builder] is the only production implementation in this package;
// [NullEvents] discards everything (useful for validating that a stream
// parses without error), and [RecordingEvents] records the exact call
// sequence for tests.
//
// # Builder
//
// [Builder] owns an RGBA framebuffer sized to its maximum dimensions at
// construction. A raster-settings command (the `"pan;pad;width;height`
// sequence) can shrink that size, clamped to the builder's maximum; pixel
// writes outside the current size are silently dropped, never an error.
//
//	b := sixel.NewBuilder(sixel.Size{Width: 1920, Height: 1080}, sixel.RGBColor{R: 0, G: 0, B: 0})
//	// ... feed a payload through a Parser bound to b ...
//	size := b.Size()
//	cursor := b.SixelCursor()
//	pixel := b.At(sixel.Coordinate{Row: 0, Column: 0})
//
// # Scope
//
// This package is the Sixel core only. It does not strip DCS introducers
// or terminators (that is the caller's outer VT parser's job), does not
// place images on a terminal's cell grid, does not render glyphs, and does
// not serialize images back to Sixel bytes. Those concerns live in a
// terminal emulator or image-placement layer built on top of this package.
package sixel
