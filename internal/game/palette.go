package game

import (
	"strings"

	"github.com/fatih/color"
)

// Palette colors the leading word of settlement lines
type Palette struct {
	win  *color.Color
	lose *color.Color
	tie  *color.Color
	bust *color.Color
}

// NewPalette returns a palette that emits ANSI codes only when enabled
func NewPalette(enabled bool) Palette {
	p := Palette{
		win:  color.New(color.FgGreen, color.Bold),
		lose: color.New(color.FgRed, color.Bold),
		tie:  color.New(color.FgYellow),
		bust: color.New(color.FgMagenta),
	}

	for _, c := range []*color.Color{p.win, p.lose, p.tie, p.bust} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}

	return p
}

// Render formats r, coloring its first word
func (p Palette) Render(r Result) string {
	var c *color.Color
	switch r.Outcome {
	case Win:
		c = p.win
	case Lose:
		c = p.lose
	case Tie:
		c = p.tie
	default:
		c = p.bust
	}

	text := r.String()
	if c == nil {
		return text
	}

	word, rest, _ := strings.Cut(text, " ")
	return c.Sprint(word) + " " + rest
}
