package sixel

// AspectRatio is the informational pan/pad pair from the most recent raster
// settings command. It does not affect pixel layout.
type AspectRatio struct {
	Nominator, Denominator int
}

// SixelCursor is the write position, in the image's own coordinate system,
// that Render advances one column at a time.
type SixelCursor struct {
	Coordinate
}

func (c *SixelCursor) rewind() {
	c.Column = 0
}

// newline moves to column 0 of the next band, six rows down, but never
// advances past size.Height-6 (invariant I1 in the data model: the cursor's
// row must always leave room for a full six-row band beneath it). The gate
// checks the row the cursor would occupy *after* advancing, not merely
// that it stays inside the framebuffer, since "merely inside" would still
// let the cursor land closer than six rows from the bottom and violate I1.
func (c *SixelCursor) newline(height int) {
	c.Column = 0
	candidate := c.Row + 6
	if candidate+6 <= height {
		c.Row = candidate
	}
}

// Builder implements Events and rasterizes the stream it receives into an
// RGBA framebuffer. It owns its framebuffer and color state exclusively for
// its whole lifetime and is not safe for concurrent use.
type Builder struct {
	maxSize      Size
	size         Size
	defaultColor RGBColor
	currentColor RGBColor
	cursor       SixelCursor
	aspectRatio  AspectRatio
	framebuffer  []byte
}

// NewBuilder allocates a builder whose framebuffer never exceeds maxSize,
// cleared to defaultColor with alpha forced to 0xFF.
func NewBuilder(maxSize Size, defaultColor RGBColor) *Builder {
	b := &Builder{
		maxSize:      maxSize,
		size:         maxSize,
		defaultColor: defaultColor,
		currentColor: defaultColor,
	}
	b.clear()
	return b
}

// clear (re)allocates the framebuffer at the current size and fills every
// pixel with defaultColor, alpha 0xFF.
func (b *Builder) clear() {
	b.framebuffer = make([]byte, framebufferLen(b.size))
	for i := 0; i < len(b.framebuffer); i += 4 {
		b.framebuffer[i+0] = b.defaultColor.R
		b.framebuffer[i+1] = b.defaultColor.G
		b.framebuffer[i+2] = b.defaultColor.B
		b.framebuffer[i+3] = 0xFF
	}
}

func framebufferLen(size Size) int {
	if size.Width <= 0 || size.Height <= 0 {
		return 0
	}
	return size.Width * size.Height * 4
}

// Size returns the current image dimensions.
func (b *Builder) Size() Size {
	return b.size
}

// SixelCursor returns the current write position.
func (b *Builder) SixelCursor() Coordinate {
	return b.cursor.Coordinate
}

// AspectRatio returns the aspect ratio recorded by the most recent
// SetRaster event.
func (b *Builder) AspectRatio() AspectRatio {
	return b.aspectRatio
}

// CurrentColor returns the color that Render currently paints with.
func (b *Builder) CurrentColor() RGBColor {
	return b.currentColor
}

// Framebuffer returns the raw RGBA pixel buffer, row-major, top-left
// origin, length Size().Width * Size().Height * 4.
func (b *Builder) Framebuffer() []byte {
	return b.framebuffer
}

// At returns the color at coord, wrapping both row and column modulo the
// current size. The wrap is intentional for query convenience; it is not
// used by, and must not be relied on by, pixel writes.
func (b *Builder) At(coord Coordinate) RGBColor {
	if b.size.Width <= 0 || b.size.Height <= 0 {
		return RGBColor{}
	}
	row := wrapMod(coord.Row, b.size.Height)
	col := wrapMod(coord.Column, b.size.Width)
	offset := (row*b.size.Width + col) * 4
	return RGBColor{
		R: b.framebuffer[offset+0],
		G: b.framebuffer[offset+1],
		B: b.framebuffer[offset+2],
	}
}

func wrapMod(v, m int) int {
	v %= m
	if v < 0 {
		v += m
	}
	return v
}

// UseColor implements Events.
func (b *Builder) UseColor(c RGBColor) {
	b.currentColor = c
}

// Rewind implements Events.
func (b *Builder) Rewind() {
	b.cursor.rewind()
}

// Newline implements Events.
func (b *Builder) Newline() {
	b.cursor.newline(b.size.Height)
}

// SetRaster implements Events. The declared size is clamped to maxSize on
// each axis and the framebuffer is resized to match; resizing does not
// preserve prior pixel content, so callers are expected to call SetRaster
// before any Render call (not enforced, per the design notes).
func (b *Builder) SetRaster(pan, pad int, size Size) {
	b.aspectRatio = AspectRatio{Nominator: pan, Denominator: pad}
	b.size = Size{
		Width:  clampInt(size.Width, 0, b.maxSize.Width),
		Height: clampInt(size.Height, 0, b.maxSize.Height),
	}
	b.framebuffer = make([]byte, framebufferLen(b.size))
}

// Render implements Events: it paints one sixel column at the cursor's
// current position and advances the cursor by one column. Bit i of sixel
// (LSB = top) marks whether pixel row cursor.Row+i is painted with the
// current color. Writes whose column is at or past size.Width are dropped
// entirely (a no-op, cursor does not advance); writes whose row falls
// outside the framebuffer are dropped individually.
func (b *Builder) Render(sixel int8) {
	x := b.cursor.Column
	if x < 0 || x >= b.size.Width {
		return
	}

	for i := 0; i < 6; i++ {
		if sixel&(1<<uint(i)) == 0 {
			continue
		}
		row := b.cursor.Row + i
		if row < 0 || row >= b.size.Height {
			continue
		}
		offset := (row*b.size.Width + x) * 4
		b.framebuffer[offset+0] = b.currentColor.R
		b.framebuffer[offset+1] = b.currentColor.G
		b.framebuffer[offset+2] = b.currentColor.B
		b.framebuffer[offset+3] = 0xFF
	}

	b.cursor.Column++
}

var _ Events = (*Builder)(nil)
