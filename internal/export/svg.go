package export

import (
	"errors"
	"fmt"
	"html"
	"strings"

	"github.com/san-kum/bishop/internal/bishop"
)

// ErrNoResult is returned when there is no field to export.
var ErrNoResult = errors.New("export: no result")

// ResultToSVG draws the field as a grid of shaded squares, cell pixels
// wide. Shade follows the same saturating buckets as the text palette;
// start and end cells are labeled with their palette chars. Captions,
// when set, are written above and below the field.
func ResultToSVG(res *bishop.Result, opts bishop.Options, cell float64) (string, error) {
	if res == nil {
		return "", ErrNoResult
	}
	if err := opts.Validate(); err != nil {
		return "", err
	}

	buckets := float64(len(opts.Chars) - 3)
	margin := cell
	width := float64(res.Width())*cell + 2*margin
	height := float64(res.Height())*cell + 2*margin

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
<rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="none" stroke="#444466"/>
<g fill="#00ff88">
`, width, height, width, height, margin, margin, width-2*margin, height-2*margin))

	var marks strings.Builder
	for y := 0; y < res.Height(); y++ {
		for x := 0; x < res.Width(); x++ {
			v := res.At(x, y)
			px := margin + float64(x)*cell
			py := margin + float64(y)*cell

			switch {
			case v == bishop.ValueStart || v == bishop.ValueEnd:
				color := "#ffaa00"
				if v == bishop.ValueEnd {
					color = "#ff4444"
				}
				marks.WriteString(fmt.Sprintf(`<rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="%s"/>
<text x="%.1f" y="%.1f" font-family="monospace" font-size="%.1f" text-anchor="middle" fill="#0a0a0a">%s</text>
`, px, py, cell, cell, color, px+cell/2, py+cell*0.75, cell*0.8, html.EscapeString(string(opts.Glyph(v)))))
			case v > 0:
				level := float64(v)
				if level > buckets {
					level = buckets
				}
				sb.WriteString(fmt.Sprintf(`<rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill-opacity="%.2f"/>
`, px, py, cell, cell, level/buckets))
			}
		}
	}

	sb.WriteString("</g>\n")
	sb.WriteString(marks.String())

	caption := func(text string, y float64) {
		if text == "" {
			return
		}
		sb.WriteString(fmt.Sprintf(`<text x="%.1f" y="%.1f" font-family="monospace" font-size="%.1f" text-anchor="middle" fill="#cccccc">%s</text>
`, width/2, y, cell*0.7, html.EscapeString(text)))
	}
	caption(opts.TopText, margin*0.75)
	caption(opts.BottomText, height-margin*0.25)

	sb.WriteString("</svg>\n")
	return sb.String(), nil
}
