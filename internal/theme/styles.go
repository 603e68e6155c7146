package theme

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"gitline/internal/domain"
)

// Scheme ids accepted by --color
const (
	SchemePlain  = 0
	SchemeBasic  = 1
	SchemeBright = 2
)

// Scheme holds one style per domain.Slot
type Scheme [domain.NumSlots]lipgloss.Style

// Style returns the style for a slot
func (s Scheme) Style(slot domain.Slot) lipgloss.Style {
	return s[slot]
}

// Render paints text with the style of a slot
func (s Scheme) Render(slot domain.Slot, text string) string {
	return s[slot].Render(text)
}

type schemeBuilder func(r *lipgloss.Renderer) Scheme

var schemes = map[int]schemeBuilder{
	SchemeBasic: func(r *lipgloss.Renderer) Scheme {
		return Scheme{
			r.NewStyle().Foreground(ColorBlue),
			r.NewStyle().Foreground(ColorGreen),
			r.NewStyle().Foreground(ColorYellow),
			r.NewStyle().Foreground(ColorRed),
		}
	},
	SchemeBright: func(r *lipgloss.Renderer) Scheme {
		return Scheme{
			r.NewStyle().Foreground(ColorBrightBlue).Bold(true),
			r.NewStyle().Foreground(ColorBrightGreen).Bold(true),
			r.NewStyle().Foreground(ColorBrightYellow).Bold(true),
			r.NewStyle().Foreground(ColorBrightRed).Bold(true),
		}
	},
}

// NewRenderer returns a lipgloss renderer that always emits ANSI sequences.
// Prompts capture output through a pipe, so terminal detection would strip colors.
func NewRenderer(w io.Writer) *lipgloss.Renderer {
	return lipgloss.NewRenderer(w, termenv.WithProfile(termenv.ANSI))
}

// SchemeFor returns the scheme with the given id.
// Unknown ids fall back to the plain scheme.
func SchemeFor(r *lipgloss.Renderer, id int) Scheme {
	build, ok := schemes[id]
	if !ok {
		return plainScheme(r)
	}
	return build(r)
}

func plainScheme(r *lipgloss.Renderer) Scheme {
	var s Scheme
	for i := range s {
		s[i] = r.NewStyle()
	}
	return s
}
