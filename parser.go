package sixel

// ParserState names one state of the Sixel parser's finite state machine.
type ParserState int

const (
	// StateGround is the initial state and the only one with no pending
	// parameters: plain sixel bytes render immediately here.
	StateGround ParserState = iota
	// StateRasterSettings accumulates the four "pan;pad;width;height
	// parameters of a raster-settings command.
	StateRasterSettings
	// StateRepeatIntroducer accumulates the repeat count of a "!count
	// sixel" command.
	StateRepeatIntroducer
	// StateColorIntroducer has just seen '#' and is waiting on its first
	// digit to decide between selecting a color and defining one.
	StateColorIntroducer
	// StateColorParam accumulates the parameter list of a color
	// introducer once it has at least one digit.
	StateColorParam
)

// paramList is an ordered sequence of non-negative integers accumulated
// while the parser is in a parameter-bearing state.
type paramList []int

func (p *paramList) reset() {
	*p = (*p)[:0]
	*p = append(*p, 0)
}

// shiftAddDigit implements Sixel's decimal parameter accumulation: the last
// parameter n becomes n*10 + d.
func (p *paramList) shiftAddDigit(d int) {
	n := len(*p)
	(*p)[n-1] = (*p)[n-1]*10 + d
}

func (p *paramList) push(v int) {
	*p = append(*p, v)
}

// Parser is a streaming, byte-at-a-time Sixel command parser. It never
// fails: unrecognized bytes in the ground state are ignored, and malformed
// parameter lists simply produce no event. Parser holds a borrowed
// reference to its Events sink for its whole lifetime; the caller must keep
// the sink alive at least that long. Parser is not safe for concurrent use.
type Parser struct {
	events Events
	state  ParserState
	params paramList
	pal    *Palette
}

// NewParser returns a parser in the ground state, bound to events.
func NewParser(events Events) *Parser {
	return &Parser{events: events, state: StateGround}
}

// State returns the parser's current state, mostly useful for tests.
func (p *Parser) State() ParserState {
	return p.state
}

// Parse feeds a complete Sixel payload through a fresh parser bound to
// events and signals end-of-stream, discarding the parser afterward. It is
// the one-shot convenience entry point for callers that already have the
// whole payload in hand.
func Parse(data []byte, events Events) {
	p := NewParser(events)
	p.ParseFragment(data)
	p.Done()
}

// ParseFragment feeds a contiguous range of bytes, in order.
func (p *Parser) ParseFragment(data []byte) {
	for _, b := range data {
		p.Parse(b)
	}
}

// Parse feeds a single byte. It never fails.
func (p *Parser) Parse(b byte) {
	switch p.state {
	case StateGround:
		p.parseGround(b)
	case StateRepeatIntroducer:
		p.parseRepeatIntroducer(b)
	case StateColorIntroducer:
		p.parseColorIntroducer(b)
	case StateColorParam:
		p.parseColorParam(b)
	case StateRasterSettings:
		p.parseRasterSettings(b)
	}
}

// Done signals end-of-stream: it fires the leave-action of whatever state
// the parser is currently in, then forces a transition to ground. After
// Done returns, State() is always StateGround.
func (p *Parser) Done() {
	p.transitionTo(StateGround)
}

// transitionTo fires the leave-action of the current state (if any), then
// switches to next and fires its entry-action. Every state change in this
// parser goes through this helper so the leave/entry ordering in §9's
// design notes (the parser's leave-action always fires before the
// triggering byte's own effect) holds everywhere, not just in the code
// paths that happen to remember to call it.
func (p *Parser) transitionTo(next ParserState) {
	switch p.state {
	case StateColorParam:
		p.leaveColorParam()
	case StateRasterSettings:
		p.leaveRasterSettings()
	}

	p.state = next

	switch next {
	case StateRepeatIntroducer, StateColorIntroducer, StateRasterSettings:
		p.params.reset()
	}
}

func (p *Parser) parseGround(b byte) {
	switch {
	case b >= 63 && b <= 126:
		p.events.Render(int8(b - 63))
	case b == '#':
		p.transitionTo(StateColorIntroducer)
	case b == '!':
		p.transitionTo(StateRepeatIntroducer)
	case b == '"':
		p.transitionTo(StateRasterSettings)
	case b == '$':
		p.events.Rewind()
	case b == '-':
		p.events.Newline()
	}
}

func (p *Parser) parseRepeatIntroducer(b byte) {
	switch {
	case b >= '0' && b <= '9':
		p.params.shiftAddDigit(int(b - '0'))
	case b >= 63 && b <= 126:
		count := p.params[0]
		p.transitionTo(StateGround)
		for i := 0; i < count; i++ {
			p.events.Render(int8(b - 63))
		}
	default:
		p.transitionTo(StateGround)
		p.parseGround(b)
	}
}

func (p *Parser) parseColorIntroducer(b byte) {
	switch {
	case b >= '0' && b <= '9':
		p.params.shiftAddDigit(int(b - '0'))
		p.transitionTo(StateColorParam)
	default:
		p.transitionTo(StateGround)
		p.parseGround(b)
	}
}

func (p *Parser) parseColorParam(b byte) {
	switch {
	case b >= '0' && b <= '9':
		p.params.shiftAddDigit(int(b - '0'))
	case b == ';':
		p.params.push(0)
	default:
		p.transitionTo(StateGround)
		p.parseGround(b)
	}
}

func (p *Parser) parseRasterSettings(b byte) {
	switch {
	case b >= '0' && b <= '9':
		p.params.shiftAddDigit(int(b - '0'))
	case b == ';':
		p.params.push(0)
	default:
		p.transitionTo(StateGround)
		p.parseGround(b)
	}
}

// leaveColorParam fires when leaving StateColorParam: one parameter selects
// a palette entry as current color; five parameters (index, color-space,
// v1, v2, v3) define a palette entry. Any other parameter count produces no
// event.
func (p *Parser) leaveColorParam() {
	palette := p.palette()

	switch len(p.params) {
	case 1:
		p.events.UseColor(palette.At(p.params[0]))
	case 5:
		index, colorSpace, v1, v2, v3 := p.params[0], p.params[1], p.params[2], p.params[3], p.params[4]
		switch colorSpace {
		case 2: // RGB, components on a 0..100 scale
			r := percentTo255(v1)
			g := percentTo255(v2)
			b := percentTo255(v3)
			palette.SetColor(index, RGBColor{R: r, G: g, B: b})
		case 1: // HLS
			palette.SetColor(index, hlsToRGB(v1, v2, v3))
		}
	}
}

// leaveRasterSettings fires when leaving StateRasterSettings: exactly four
// parameters (pan, pad, width, height) emit a SetRaster event. Any other
// count produces no event.
func (p *Parser) leaveRasterSettings() {
	if len(p.params) != 4 {
		return
	}
	pan, pad, width, height := p.params[0], p.params[1], p.params[2], p.params[3]
	p.events.SetRaster(pan, pad, Size{Width: width, Height: height})
}

// palette returns the parser's own color table. The palette is parser-local
// state: the builder never reads it directly, only the materialized
// UseColor events this parser emits at leave-action time (see the design
// notes on palette lookup happening at leave-action, not at render time).
func (p *Parser) palette() *Palette {
	if p.pal == nil {
		p.pal = NewPalette(256)
	}
	return p.pal
}

// percentTo255 converts a 0..100 percentage to a 0..255 channel value,
// rounding to nearest; results above 255 (inputs above 100) wrap modulo 256.
func percentTo255(v int) uint8 {
	return uint8((v*255 + 50) / 100)
}
