package utils

import (
	"strings"
	"testing"
)

func TestStripTags(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"plain text unchanged", "hello world", "hello world"},
		{"trims whitespace", "  hello  ", "hello"},
		{"removes tags", "<p>hello <b>world</b></p>", "hello world"},
		{"only markup yields empty", "<p><img src='x'/></p>", ""},
		{"decodes entities", "<p>a &amp; b</p>", "a & b"},
		{"empty", "", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := StripTags(tc.in); got != tc.want {
				t.Errorf("StripTags(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestEnhanceHTMLContent(t *testing.T) {
	out := string(EnhanceHTMLContent(`<p>text</p><img src="/a.png">`))

	if !strings.Contains(out, `loading="lazy"`) {
		t.Errorf("Expected lazy loading attribute, got %s", out)
	}
	if !strings.Contains(out, "<p>text</p>") {
		t.Errorf("Body content lost: %s", out)
	}
}
