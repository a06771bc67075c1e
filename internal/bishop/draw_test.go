package bishop

import (
	"errors"
	"slices"
	"strings"
	"sync"
	"testing"
)

func refResult(t *testing.T) *Result {
	t.Helper()
	art := NewDefault()
	art.Input(mustDecode(t, refHashes[0]))
	res, err := art.Result()
	if err != nil {
		t.Fatalf("result failed: %v", err)
	}
	return res
}

func TestGlyph(t *testing.T) {
	def := DefaultOptions()
	tiny := Options{Chars: []rune(" .SE")}

	tests := []struct {
		name string
		opts Options
		v    int
		want rune
	}{
		{"background", def, 0, ' '},
		{"first bucket", def, 1, '.'},
		{"mid bucket", def, 13, '/'},
		{"last bucket", def, 14, '^'},
		{"saturated", def, 15, '^'},
		{"far saturated", def, ValueMax, '^'},
		{"start", def, ValueStart, 'S'},
		{"end", def, ValueEnd, 'E'},
		{"tiny count", tiny, 1, '.'},
		{"tiny saturated", tiny, 40, '.'},
		{"tiny start", tiny, ValueStart, 'S'},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.opts.Glyph(tt.v); got != tt.want {
				t.Errorf("Glyph(%d) = %q, want %q", tt.v, got, tt.want)
			}
		})
	}
}

func TestPaletteTooShort(t *testing.T) {
	res := refResult(t)
	short := Options{Chars: []rune(".oE")}

	out, err := res.Draw(short)
	if !errors.Is(err, ErrPalette) {
		t.Fatalf("Draw: expected ErrPalette, got %v", err)
	}
	if out != "" {
		t.Errorf("expected no output, got %q", out)
	}

	var pe *PaletteError
	if !errors.As(err, &pe) || pe.Len != 3 {
		t.Errorf("expected PaletteError{Len: 3}, got %v", err)
	}

	if _, err := res.Lines(short); !errors.Is(err, ErrPalette) {
		t.Errorf("Lines: expected ErrPalette, got %v", err)
	}
	if _, err := NewOptions(".oE", "", ""); !errors.Is(err, ErrPalette) {
		t.Errorf("NewOptions: expected ErrPalette, got %v", err)
	}
	// Counted in runes, not bytes.
	if _, err := NewOptions("日本語", "", ""); !errors.Is(err, ErrPalette) {
		t.Errorf("NewOptions: expected ErrPalette for 3 wide runes, got %v", err)
	}
	if _, err := NewOptions(" .SE", "", ""); err != nil {
		t.Errorf("NewOptions: 4 chars should be valid, got %v", err)
	}
}

func TestFrame(t *testing.T) {
	tests := []struct {
		name string
		w    int
		text string
		want string
	}{
		{"plain", 17, "", "+-----------------+"},
		{"centered odd fill", 17, "RSA 2048", "+---[RSA 2048]----+"},
		{"centered even fill", 17, "SHA256", "+----[SHA256]-----+"},
		{"exact fit", 5, "abc", "+[abc]+"},
		{"truncated", 5, "abcdef", "+[abc]+"},
		{"wide chars", 6, "日本語", "+[日本]+"},
		{"wide char not split", 7, "日本語", "+[日本]-+"},
		{"combining mark", 5, "e\u0301xyz", "+[e\u0301xy]+"},
		{"control char", 5, "a\x00bcd", "+[a\x00bc]+"},
		{"no room for brackets", 1, "x", "+-+"},
		{"zero width", 0, "x", "++"},
		{"negative width", -3, "", "++"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Frame(tt.w, tt.text)
			if got != tt.want {
				t.Errorf("Frame(%d, %q) = %q, want %q", tt.w, tt.text, got, tt.want)
			}
			if w := textWidth(got); w != max(tt.w, 0)+2 {
				t.Errorf("frame width %d, want %d", w, tt.w+2)
			}
		})
	}
}

func TestDrawCaptions(t *testing.T) {
	res := refResult(t)
	opts := DefaultOptions()
	opts.TopText = "RSA 2048"

	out, err := res.Draw(opts)
	if err != nil {
		t.Fatalf("draw failed: %v", err)
	}
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")

	if len(lines) != 11 {
		t.Fatalf("expected 11 lines, got %d", len(lines))
	}
	if lines[0] != "+---[RSA 2048]----+" {
		t.Errorf("unexpected top border %q", lines[0])
	}
	if lines[10] != "+-----------------+" {
		t.Errorf("bottom border should stay plain, got %q", lines[10])
	}

	opts.TopText, opts.BottomText = "", "SHA256"
	out, _ = res.Draw(opts)
	lines = strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	if lines[0] != "+-----------------+" || lines[10] != "+----[SHA256]-----+" {
		t.Errorf("unexpected borders %q / %q", lines[0], lines[10])
	}
}

func TestDrawIdempotent(t *testing.T) {
	res := refResult(t)
	first := res.DrawDefault()

	custom, _ := NewOptions(" abcdefS!", "top", "bottom")
	if _, err := res.Draw(custom); err != nil {
		t.Fatalf("draw failed: %v", err)
	}

	if second := res.DrawDefault(); second != first {
		t.Errorf("drawing is not idempotent:\n%s\n%s", first, second)
	}
}

func TestDrawConcurrentReaders(t *testing.T) {
	res := refResult(t)
	want := res.DrawDefault()

	var wg sync.WaitGroup
	errs := make(chan string, 8)
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if got := res.DrawDefault(); got != want {
				errs <- got
			}
		}()
	}
	wg.Wait()
	close(errs)

	for got := range errs {
		t.Errorf("concurrent draw differs: %q", got)
	}
}

func TestLinesMatchDraw(t *testing.T) {
	res := refResult(t)
	opts, _ := NewOptions(DefaultChars, "top", "bot")

	seq, err := res.Lines(opts)
	if err != nil {
		t.Fatalf("lines failed: %v", err)
	}
	got := slices.Collect(seq)

	out, _ := res.Draw(opts)
	want := strings.Split(strings.TrimSuffix(out, "\n"), "\n")

	if !slices.Equal(got, want) {
		t.Errorf("Lines() = %q, want %q", got, want)
	}

	// Early stop must not panic.
	for range seq {
		break
	}
}

func TestResultFromCells(t *testing.T) {
	res := refResult(t)

	back, err := ResultFromCells(res.Width(), res.Height(), res.Cells())
	if err != nil {
		t.Fatalf("rebuild failed: %v", err)
	}
	if back.DrawDefault() != res.DrawDefault() {
		t.Error("rebuilt result draws differently")
	}

	cells := make([]int, 25)
	cells[12] = ValueEnd

	tests := []struct {
		name  string
		w, h  int
		cells []int
		err   error
	}{
		{"bad geometry", 3, 3, make([]int, 9), ErrGeometry},
		{"short", 5, 5, cells[:20], ErrCells},
		{"no end", 5, 5, make([]int, 25), ErrCells},
		{"bad value", 5, 5, append(append([]int{}, cells[:24]...), -7), ErrCells},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ResultFromCells(tt.w, tt.h, tt.cells); !errors.Is(err, tt.err) {
				t.Errorf("expected %v, got %v", tt.err, err)
			}
		})
	}

	if _, err := ResultFromCells(5, 5, cells); err != nil {
		t.Errorf("end-only field should be valid: %v", err)
	}
}

func TestRow(t *testing.T) {
	res := refResult(t)
	got, err := res.Row(DefaultOptions(), 8)
	if err != nil || got != "               E." {
		t.Errorf("Row(8) = %q, %v", got, err)
	}

	if _, err := res.Row(Options{Chars: []rune("ab")}, 4); !errors.Is(err, ErrPalette) {
		t.Errorf("expected ErrPalette for a short palette, got %v", err)
	}
}
