package richtext

import (
	"strings"
	"testing"
)

func TestParse(t *testing.T) {
	data := []byte(`[
		{"_type":"block","style":"h2","children":[{"_type":"span","text":"Judul"}]},
		{"_type":"block","children":[{"text":"one"},{"text":"two"}]}
	]`)

	blocks, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if len(blocks) != 2 {
		t.Fatalf("Expected 2 blocks, got %d", len(blocks))
	}
	if blocks[0].Style != "h2" {
		t.Errorf("Expected style h2, got %q", blocks[0].Style)
	}
	if len(blocks[1].Children) != 2 {
		t.Errorf("Expected 2 spans, got %d", len(blocks[1].Children))
	}
}

func TestParseEmpty(t *testing.T) {
	blocks, err := Parse([]byte("  "))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if blocks != nil {
		t.Errorf("Expected nil blocks for empty input, got %v", blocks)
	}

	if _, err := Parse([]byte("{not json")); err == nil {
		t.Error("Expected error for malformed input")
	}
}

func TestPlainText(t *testing.T) {
	blocks := []Block{
		{Type: "block", Children: []Span{{Text: "one two"}, {Text: "three"}}},
		{Type: "block", Children: []Span{{Text: ""}, {Text: "four"}}},
	}

	got := PlainText(blocks)
	if got != "one two three four" {
		t.Errorf("Expected %q, got %q", "one two three four", got)
	}

	if PlainText(nil) != "" {
		t.Error("Expected empty string for nil blocks")
	}
}

func TestRenderHTMLEscapes(t *testing.T) {
	blocks := []Block{
		{Type: "block", Children: []Span{{Text: "<script>alert(1)</script>"}}},
	}

	html := string(RenderHTML(blocks))
	if strings.Contains(html, "<script>") {
		t.Errorf("Markup leaked through: %s", html)
	}
	if !strings.HasPrefix(html, "<p>") {
		t.Errorf("Expected paragraph wrapper, got %s", html)
	}
}
