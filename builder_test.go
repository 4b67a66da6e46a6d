package sixel

import "testing"

func framebufferLenWant(size Size) int {
	return size.Width * size.Height * 4
}

func TestBuilderClearFillsDefaultColor(t *testing.T) {
	black := RGBColor{}
	b := NewBuilder(Size{Width: 4, Height: 6}, black)

	fb := b.Framebuffer()
	if len(fb) != framebufferLenWant(Size{Width: 4, Height: 6}) {
		t.Fatalf("unexpected framebuffer length %d", len(fb))
	}
	for i := 0; i < len(fb); i += 4 {
		if fb[i] != 0 || fb[i+1] != 0 || fb[i+2] != 0 || fb[i+3] != 0xFF {
			t.Fatalf("pixel %d not cleared to opaque black: %v", i/4, fb[i:i+4])
		}
	}
}

// Scenario 1: a sixel value of 0 paints nothing.
func TestBuilderZeroSixelPaintsNothing(t *testing.T) {
	b := NewBuilder(Size{Width: 10, Height: 6}, RGBColor{})
	Parse([]byte("#1;2;100;0;0#1?"), b)

	for i := 0; i < len(b.Framebuffer()); i += 4 {
		px := b.Framebuffer()[i : i+4]
		if px[0] != 0 || px[1] != 0 || px[2] != 0 {
			t.Fatalf("pixel %d unexpectedly painted: %v", i/4, px)
		}
	}
	if got := b.SixelCursor(); got != (Coordinate{Row: 0, Column: 1}) {
		t.Errorf("cursor = %+v, want (0,1)", got)
	}
}

// Scenario 2: a full sixel column in red.
func TestBuilderFullColumnRed(t *testing.T) {
	b := NewBuilder(Size{Width: 10, Height: 6}, RGBColor{})
	Parse([]byte("#1;2;100;0;0#1~"), b)

	for row := 0; row < 6; row++ {
		c := b.At(Coordinate{Row: row, Column: 0})
		if c != (RGBColor{R: 255}) {
			t.Errorf("row %d = %+v, want red", row, c)
		}
	}
	if got := b.SixelCursor(); got != (Coordinate{Row: 0, Column: 1}) {
		t.Errorf("cursor = %+v, want (0,1)", got)
	}
}

// Scenario 3: repeat.
func TestBuilderRepeatPaintsMultipleColumns(t *testing.T) {
	b := NewBuilder(Size{Width: 10, Height: 6}, RGBColor{})
	Parse([]byte("#1;2;100;0;0#1!3~"), b)

	for col := 0; col < 3; col++ {
		for row := 0; row < 6; row++ {
			c := b.At(Coordinate{Row: row, Column: col})
			if c != (RGBColor{R: 255}) {
				t.Errorf("col %d row %d = %+v, want red", col, row, c)
			}
		}
	}
	if got := b.SixelCursor(); got != (Coordinate{Row: 0, Column: 3}) {
		t.Errorf("cursor = %+v, want (0,3)", got)
	}
}

// Scenario 4: newline band.
func TestBuilderNewlineBand(t *testing.T) {
	b := NewBuilder(Size{Width: 10, Height: 12}, RGBColor{})
	Parse([]byte("#1;2;0;100;0#1~-~"), b)

	green := RGBColor{G: 255}
	for row := 0; row < 6; row++ {
		if c := b.At(Coordinate{Row: row, Column: 0}); c != green {
			t.Errorf("band 1 row %d = %+v, want green", row, c)
		}
	}
	for row := 6; row < 12; row++ {
		if c := b.At(Coordinate{Row: row, Column: 0}); c != green {
			t.Errorf("band 2 row %d = %+v, want green", row, c)
		}
	}
	if got := b.SixelCursor(); got != (Coordinate{Row: 6, Column: 1}) {
		t.Errorf("cursor = %+v, want (6,1)", got)
	}
}

// Scenario 5: raster sizing.
func TestBuilderRasterSizing(t *testing.T) {
	b := NewBuilder(Size{Width: 100, Height: 100}, RGBColor{})
	rec := &RecordingEvents{}
	mw := multiEvents{b, rec}
	Parse([]byte("\"1;1;20;12"), mw)

	if b.Size() != (Size{Width: 20, Height: 12}) {
		t.Errorf("size = %+v, want (20,12)", b.Size())
	}
	if len(b.Framebuffer()) != 20*12*4 {
		t.Errorf("framebuffer length = %d, want %d", len(b.Framebuffer()), 20*12*4)
	}
	if len(rec.Events) != 1 || rec.Events[0].Kind != "setRaster" {
		t.Errorf("expected one setRaster event, got %+v", rec.Events)
	}
}

// Scenario 6: silent malformed color definition leaves currentColor alone.
func TestBuilderMalformedColorDefinitionKeepsCurrentColor(t *testing.T) {
	b := NewBuilder(Size{Width: 10, Height: 6}, RGBColor{})
	b.UseColor(RGBColor{B: 200})

	Parse([]byte("#1;2;100;0~"), b)

	if c := b.At(Coordinate{Row: 0, Column: 0}); c != (RGBColor{B: 200}) {
		t.Errorf("pixel = %+v, want the pre-existing color", c)
	}
}

func TestBuilderFramebufferLengthClampedToMaxSize(t *testing.T) {
	b := NewBuilder(Size{Width: 5, Height: 5}, RGBColor{})
	b.SetRaster(1, 1, Size{Width: 1000, Height: 1000})

	if b.Size() != (Size{Width: 5, Height: 5}) {
		t.Errorf("size = %+v, want clamped to maxSize", b.Size())
	}
	if len(b.Framebuffer()) != 5*5*4 {
		t.Errorf("framebuffer length = %d, want %d", len(b.Framebuffer()), 5*5*4)
	}
}

func TestBuilderRenderOutOfBoundsColumnIsNoop(t *testing.T) {
	b := NewBuilder(Size{Width: 2, Height: 6}, RGBColor{})
	b.UseColor(RGBColor{R: 9, G: 9, B: 9})
	b.Render(63) // column 0
	b.Render(63) // column 1
	before := b.SixelCursor()
	b.Render(63) // column 2: out of bounds, must no-op entirely

	if got := b.SixelCursor(); got != before {
		t.Errorf("cursor advanced on out-of-bounds render: %+v -> %+v", before, got)
	}
}

func TestBuilderNewlineNeverExceedsHeightMinusSix(t *testing.T) {
	b := NewBuilder(Size{Width: 1, Height: 20}, RGBColor{})
	for i := 0; i < 10; i++ {
		b.Newline()
		if row := b.SixelCursor().Row; row > b.Size().Height-6 {
			t.Fatalf("iteration %d: row %d exceeds height-6 (%d)", i, row, b.Size().Height-6)
		}
	}
}

func TestBuilderRewindIsIdempotent(t *testing.T) {
	b := NewBuilder(Size{Width: 10, Height: 6}, RGBColor{})
	b.Render(1)
	b.Rewind()
	first := b.SixelCursor()
	b.Rewind()
	second := b.SixelCursor()

	if first != second {
		t.Errorf("rewind not idempotent: %+v vs %+v", first, second)
	}
}

// multiEvents fans an event out to multiple sinks; used only to assert on
// both the builder's resulting state and the raw event sequence in the
// same test without parsing the stream twice.
type multiEvents []Events

func (m multiEvents) UseColor(c RGBColor) {
	for _, e := range m {
		e.UseColor(c)
	}
}
func (m multiEvents) Rewind() {
	for _, e := range m {
		e.Rewind()
	}
}
func (m multiEvents) Newline() {
	for _, e := range m {
		e.Newline()
	}
}
func (m multiEvents) SetRaster(pan, pad int, size Size) {
	for _, e := range m {
		e.SetRaster(pan, pad, size)
	}
}
func (m multiEvents) Render(s int8) {
	for _, e := range m {
		e.Render(s)
	}
}

var _ Events = multiEvents(nil)
