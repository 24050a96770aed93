// Package readtime estimates a human-facing "minutes to read" figure from
// the content representations the site carries: raw HTML, a rich-text block
// array, or a precomputed character count exported by the old CMS.
package readtime

import (
	"strings"

	"github.com/jwrfree/jatinotes-sub000/internal/richtext"
	"github.com/jwrfree/jatinotes-sub000/internal/utils"
)

const (
	wordsPerMinute = 200
	charsPerWord   = 5
)

// Source is the tagged union of accepted inputs. Exactly three shapes
// implement it: HTMLText, RichTextBlocks and PrecomputedCount.
type Source interface {
	readingSource()
}

// HTMLText is a plain HTML string; tags are stripped before counting.
type HTMLText string

// RichTextBlocks is a structured block array; every child span contributes.
type RichTextBlocks []richtext.Block

// PrecomputedCount carries a character count exported by the old CMS. When
// CharCount is positive the word count is estimated as CharCount/5 and no
// text extraction happens; otherwise Fallback is consulted.
type PrecomputedCount struct {
	CharCount int
	Fallback  Source
}

func (HTMLText) readingSource()         {}
func (RichTextBlocks) readingSource()   {}
func (PrecomputedCount) readingSource() {}

// Minutes returns ceil(words/200), clamped to a minimum of 1 even for empty
// or trivial input. It never fails.
func Minutes(src Source) int {
	words := WordCount(src)
	minutes := (words + wordsPerMinute - 1) / wordsPerMinute
	if minutes < 1 {
		minutes = 1
	}
	return minutes
}

// WordCount extracts the word count for a source. Absence of text counts
// as zero.
func WordCount(src Source) int {
	switch s := src.(type) {
	case HTMLText:
		return len(strings.Fields(utils.StripTags(string(s))))
	case RichTextBlocks:
		return len(strings.Fields(richtext.PlainText(s)))
	case PrecomputedCount:
		if s.CharCount > 0 {
			return s.CharCount / charsPerWord
		}
		if s.Fallback != nil {
			return WordCount(s.Fallback)
		}
		return 0
	default:
		return 0
	}
}
