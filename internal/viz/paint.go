package viz

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/muesli/termenv"
	"github.com/san-kum/bishop/internal/bishop"
)

// Painter draws a Result like Result.Draw, with per-cell colors. Without
// a color profile the output is exactly Result.Draw.
type Painter struct {
	renderer *lipgloss.Renderer
	theme    Theme
}

func NewPainter(r *lipgloss.Renderer, theme Theme) *Painter {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	return &Painter{renderer: r, theme: theme}
}

// gradient returns n colors blended from low to high.
func gradient(low, high lipgloss.Color, n int) []lipgloss.Color {
	a, errA := colorful.Hex(string(low))
	b, errB := colorful.Hex(string(high))
	out := make([]lipgloss.Color, n)
	for i := range out {
		switch {
		case errA != nil || errB != nil || i == n-1:
			out[i] = high
		case i == 0:
			out[i] = low
		default:
			t := float64(i) / float64(n-1)
			out[i] = lipgloss.Color(a.BlendLab(b, t).Clamped().Hex())
		}
	}
	return out
}

// style keeps tabs and other bytes as given, so layout matches Draw.
func (p *Painter) style(c lipgloss.Color) lipgloss.Style {
	return p.renderer.NewStyle().Foreground(c).TabWidth(lipgloss.NoTabConversion)
}

func (p *Painter) styles(buckets int) []lipgloss.Style {
	colors := gradient(p.theme.Low, p.theme.High, buckets)
	styles := make([]lipgloss.Style, buckets)
	for i, c := range colors {
		styles[i] = p.style(c)
	}
	return styles
}

// Paint renders res with opts.
func (p *Painter) Paint(res *bishop.Result, opts bishop.Options) (string, error) {
	if err := opts.Validate(); err != nil {
		return "", err
	}
	if p.renderer.ColorProfile() == termenv.Ascii {
		return res.Draw(opts)
	}

	buckets := p.styles(len(opts.Chars) - 3)
	frame := p.style(p.theme.Frame)
	start := p.style(p.theme.Start).Bold(true)
	end := p.style(p.theme.End).Bold(true)

	var b strings.Builder
	b.WriteString(frame.Render(bishop.Frame(res.Width(), opts.TopText)))
	b.WriteByte('\n')

	for y := 0; y < res.Height(); y++ {
		b.WriteString(frame.Render("|"))
		for x := 0; x < res.Width(); x++ {
			v := res.At(x, y)
			g := string(opts.Glyph(v))
			switch {
			case v == bishop.ValueStart:
				b.WriteString(start.Render(g))
			case v == bishop.ValueEnd:
				b.WriteString(end.Render(g))
			case v == 0:
				b.WriteString(g)
			default:
				i := v - 1
				if i >= len(buckets) {
					i = len(buckets) - 1
				}
				b.WriteString(buckets[i].Render(g))
			}
		}
		b.WriteString(frame.Render("|"))
		b.WriteByte('\n')
	}

	b.WriteString(frame.Render(bishop.Frame(res.Width(), opts.BottomText)))
	b.WriteByte('\n')
	return b.String(), nil
}
