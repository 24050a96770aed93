// Package richtext models the structured block content exported by the old
// CMS: a flat array of blocks (paragraphs, headings), each holding text spans.
package richtext

import (
	"bytes"
	"encoding/json"
	"fmt"
	"html/template"
	"strings"
)

type Span struct {
	Type  string   `json:"_type,omitempty"`
	Text  string   `json:"text"`
	Marks []string `json:"marks,omitempty"`
}

type Block struct {
	Type     string `json:"_type"`
	Key      string `json:"_key,omitempty"`
	Style    string `json:"style,omitempty"`
	Children []Span `json:"children,omitempty"`
}

// Parse decodes a block array from its stored JSON form.
func Parse(data []byte) ([]Block, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, nil
	}
	var blocks []Block
	if err := json.Unmarshal(data, &blocks); err != nil {
		return nil, fmt.Errorf("richtext: decode blocks: %w", err)
	}
	return blocks, nil
}

// PlainText concatenates the text of every child span across every block,
// joined by single spaces.
func PlainText(blocks []Block) string {
	var parts []string
	for _, b := range blocks {
		for _, s := range b.Children {
			if s.Text != "" {
				parts = append(parts, s.Text)
			}
		}
	}
	return strings.Join(parts, " ")
}

// RenderHTML produces a minimal HTML rendering of a block array. Spans are
// escaped; the block style picks the wrapping element.
func RenderHTML(blocks []Block) template.HTML {
	var sb strings.Builder
	for _, b := range blocks {
		tag := "p"
		switch b.Style {
		case "h2", "h3", "h4", "blockquote":
			tag = b.Style
		}
		var text strings.Builder
		for _, s := range b.Children {
			text.WriteString(template.HTMLEscapeString(s.Text))
		}
		if strings.TrimSpace(text.String()) == "" {
			continue
		}
		sb.WriteString("<" + tag + ">")
		sb.WriteString(text.String())
		sb.WriteString("</" + tag + ">\n")
	}
	return template.HTML(sb.String())
}
