package sixel

// Events is the capability set a Sixel parser drives. Any consumer that
// implements it can sit downstream of Parser — a pixel builder, a null
// sink for validation, or a recording sink for tests.
type Events interface {
	// UseColor selects c as the current color for subsequent Render calls.
	UseColor(c RGBColor)
	// Rewind is a graphics carriage return: move the sixel cursor back to
	// column 0 of the current band.
	Rewind()
	// Newline moves the sixel cursor to column 0 of the next band, six
	// pixel rows down.
	Newline()
	// SetRaster records the aspect ratio (pan, pad) and declares the image
	// size for the upcoming sixel data.
	SetRaster(pan, pad int, size Size)
	// Render paints one sixel column. Bit i of sixel (0-5, LSB first) marks
	// whether pixel row i of the column is painted with the current color.
	Render(sixel int8)
}

// NullEvents discards every event. Useful for validating that a byte
// stream parses without panicking, without caring about the pixels it
// would produce.
type NullEvents struct{}

func (NullEvents) UseColor(RGBColor)        {}
func (NullEvents) Rewind()                  {}
func (NullEvents) Newline()                 {}
func (NullEvents) SetRaster(int, int, Size) {}
func (NullEvents) Render(int8)              {}

var _ Events = NullEvents{}

// RecordedEvent captures a single call made against a RecordingEvents sink,
// tagged by which Events method produced it.
type RecordedEvent struct {
	Kind  string
	Color RGBColor
	Pan   int
	Pad   int
	Size  Size
	Sixel int8
}

// RecordingEvents is an Events sink that appends every call it receives, in
// order, for use in tests that assert on the exact event sequence a parse
// produces.
type RecordingEvents struct {
	Events []RecordedEvent
}

func (r *RecordingEvents) UseColor(c RGBColor) {
	r.Events = append(r.Events, RecordedEvent{Kind: "useColor", Color: c})
}

func (r *RecordingEvents) Rewind() {
	r.Events = append(r.Events, RecordedEvent{Kind: "rewind"})
}

func (r *RecordingEvents) Newline() {
	r.Events = append(r.Events, RecordedEvent{Kind: "newline"})
}

func (r *RecordingEvents) SetRaster(pan, pad int, size Size) {
	r.Events = append(r.Events, RecordedEvent{Kind: "setRaster", Pan: pan, Pad: pad, Size: size})
}

func (r *RecordingEvents) Render(sixel int8) {
	r.Events = append(r.Events, RecordedEvent{Kind: "render", Sixel: sixel})
}

var _ Events = (*RecordingEvents)(nil)
