package bishop

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// widths is pinned instead of runewidth.DefaultCondition, which follows
// the locale environment.
var widths = &runewidth.Condition{EastAsianWidth: false, StrictEmojiNeutral: true}

// textWidth returns the display width of s in terminal columns.
func textWidth(s string) int {
	n := 0
	for _, r := range s {
		n += widths.RuneWidth(r)
	}
	return n
}

// fit returns the longest prefix of s that is at most max columns wide,
// cut on a rune boundary, and its width.
func fit(s string, max int) (string, int) {
	size := 0
	for i, r := range s {
		next := size + widths.RuneWidth(r)
		if next > max {
			return s[:i], size
		}
		size = next
	}
	return s, size
}

// Frame returns a horizontal border for a field w columns wide. A
// non-empty text is centered in brackets and truncated to fit; below two
// columns there is no room for the brackets and the text is dropped.
func Frame(w int, text string) string {
	var b strings.Builder
	writeFrame(&b, w, text)
	return b.String()
}

func writeFrame(b *strings.Builder, w int, text string) {
	b.WriteByte('+')
	if text == "" || w < 2 {
		b.WriteString(strings.Repeat("-", max(w, 0)))
	} else {
		t, tw := fit(text, w-2)
		fill := w - (tw + 2)
		dash, pad := fill/2, fill%2
		b.WriteString(strings.Repeat("-", dash))
		b.WriteByte('[')
		b.WriteString(t)
		b.WriteByte(']')
		b.WriteString(strings.Repeat("-", dash+pad))
	}
	b.WriteByte('+')
}
