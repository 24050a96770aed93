package readtime

import (
	"strings"
	"testing"

	"github.com/jwrfree/jatinotes-sub000/internal/richtext"
)

func TestMinutesHTML(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want int
	}{
		{"empty floors at one", "", 1},
		{"short text", "<p>one two three</p>", 1},
		{"exactly 200 words", strings.TrimSpace(strings.Repeat("word ", 200)), 1},
		{"400 words", strings.Repeat("word ", 400), 2},
		{"201 words rounds up", strings.Repeat("word ", 201), 2},
		{"markup only", "<p><img src='x'/></p>", 1},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Minutes(HTMLText(tc.in)); got != tc.want {
				t.Errorf("Minutes(%q...) = %d, want %d", tc.in[:min(20, len(tc.in))], got, tc.want)
			}
		})
	}
}

func TestMinutesBlocks(t *testing.T) {
	blocks := RichTextBlocks{
		{Type: "block", Children: []richtext.Span{{Text: "one two three"}}},
	}
	if got := Minutes(blocks); got != 1 {
		t.Errorf("Expected 1 minute, got %d", got)
	}

	var long RichTextBlocks
	for i := 0; i < 30; i++ {
		long = append(long, richtext.Block{
			Type:     "block",
			Children: []richtext.Span{{Text: strings.Repeat("kata ", 20)}},
		})
	}
	// 600 words at 200 wpm
	if got := Minutes(long); got != 3 {
		t.Errorf("Expected 3 minutes, got %d", got)
	}
}

func TestMinutesPrecomputed(t *testing.T) {
	// 3000 chars / 5 = 600 words -> 3 minutes, no extraction
	if got := Minutes(PrecomputedCount{CharCount: 3000}); got != 3 {
		t.Errorf("Expected 3 minutes, got %d", got)
	}

	// Zero count falls back to the embedded content
	src := PrecomputedCount{
		CharCount: 0,
		Fallback:  HTMLText(strings.Repeat("word ", 400)),
	}
	if got := Minutes(src); got != 2 {
		t.Errorf("Expected 2 minutes from fallback, got %d", got)
	}

	// No count, no fallback
	if got := Minutes(PrecomputedCount{}); got != 1 {
		t.Errorf("Expected 1 minute floor, got %d", got)
	}
}

func TestMinutesNil(t *testing.T) {
	if got := Minutes(nil); got != 1 {
		t.Errorf("Expected 1 minute for nil source, got %d", got)
	}
}
