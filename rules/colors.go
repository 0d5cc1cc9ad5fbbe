package rules

import "sync"

// Color is the visual tag shared by every segment of one snake.
type Color string

var defaultColors = []Color{
	"#8f4949",
	"#49628f",
	"#7f498f",
	"#8f7f49",
	"#628f49",
	"#491010",
	"#493810",
	"#164910",
	"#104947",
	"#3e1049",
	"#cd1e91",
	"#741ecd",
	"#1e4fcd",
	"#1ecdc7",
	"#1ecd3f",
	"#cdcb1e",
	"#cd681e",
}

// Palette hands out colours round-robin. It is safe for concurrent use.
type Palette struct {
	mu     sync.Mutex
	colors []Color
	index  int
}

// NewPalette returns a palette over colors, or the default colours when
// none are given.
func NewPalette(colors ...Color) *Palette {
	if len(colors) == 0 {
		colors = defaultColors
	}
	return &Palette{colors: colors}
}

// Next returns the next colour, wrapping at the end.
func (p *Palette) Next() Color {
	p.mu.Lock()
	defer p.mu.Unlock()

	current := p.colors[p.index]
	p.index = (p.index + 1) % len(p.colors)
	return current
}

// Reset starts the palette over from its first colour.
func (p *Palette) Reset() {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.index = 0
}
