package corpus

import (
	"strings"

	"github.com/gulftech/idparse/internal/textutil"
)

// Page holds the normalized text of a single scanned page or card side.
type Page struct {
	Lines []string `json:"lines"`
	Text  string   `json:"text"`
}

// Corpus is the normalized text of a whole document, possibly spanning
// multiple pages and card sides. It is immutable once built; extractors
// only ever read it.
type Corpus struct {
	Pages []Page   `json:"pages"`
	Lines []string `json:"lines"` // all pages, in order
	Text  string   `json:"text"`  // newline-joined lines
	Flat  string   `json:"flat"`  // everything on one line
}

// New builds a corpus from one or more raw page texts. Empty pages are
// kept out of the line structure but do not fail the build; an entirely
// empty input yields an empty corpus.
func New(pageTexts ...string) *Corpus {
	c := &Corpus{}
	for _, raw := range pageTexts {
		lines := textutil.SplitLines(raw)
		page := Page{
			Lines: lines,
			Text:  strings.Join(lines, "\n"),
		}
		c.Pages = append(c.Pages, page)
		c.Lines = append(c.Lines, lines...)
	}
	c.Text = strings.Join(c.Lines, "\n")
	c.Flat = textutil.NormalizeFlat(c.Text)
	return c
}

// Empty reports whether the corpus carries no usable text.
func (c *Corpus) Empty() bool {
	return c == nil || len(c.Lines) == 0
}

// Preview returns the first max characters of the corpus text for audit
// output. The full text is returned when it is already short enough.
func (c *Corpus) Preview(max int) string {
	if c == nil || max <= 0 {
		return ""
	}
	runes := []rune(c.Text)
	if len(runes) <= max {
		return c.Text
	}
	return string(runes[:max])
}
