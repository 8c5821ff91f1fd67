// Package pdf reads the text layer of identity-document PDFs and turns
// it into extraction corpora. Only searchable PDFs are supported; a
// scanned PDF without a text layer yields an empty corpus rather than
// an error.
package pdf

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dslipak/pdf"
	"github.com/pdfcpu/pdfcpu/pkg/api"

	"github.com/gulftech/idparse/internal/corpus"
)

// Ingest reads the text layer of the PDF and builds a corpus with one
// page per PDF page. pageRange follows the "1-3,5" convention; empty
// means all pages.
func Ingest(filename, pageRange string) (*corpus.Corpus, error) {
	// pdfcpu validates the file structure and gives the page count
	// before the text reader touches it.
	total, err := api.PageCountFile(filename)
	if err != nil {
		return nil, fmt.Errorf("invalid PDF %q: %w", filename, err)
	}

	pages, err := resolvePages(pageRange, total)
	if err != nil {
		return nil, err
	}

	reader, err := pdf.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("open PDF %q: %w", filename, err)
	}

	texts := make([]string, 0, len(pages))
	for _, n := range pages {
		texts = append(texts, pageText(reader, n))
	}
	return corpus.New(texts...), nil
}

// pageText extracts one page's text, preferring row-grouped extraction
// so label/value lines survive, with plain text as the fallback. Pages
// that cannot be read contribute an empty page.
func pageText(reader *pdf.Reader, pageNum int) string {
	page := reader.Page(pageNum)
	if page.V.IsNull() {
		return ""
	}

	rows, err := page.GetTextByRow()
	if err == nil && len(rows) > 0 {
		var b strings.Builder
		for _, row := range rows {
			for i, text := range row.Content {
				if i > 0 {
					b.WriteString(" ")
				}
				b.WriteString(text.S)
			}
			b.WriteString("\n")
		}
		return b.String()
	}

	fonts := make(map[string]*pdf.Font)
	plain, err := page.GetPlainText(fonts)
	if err != nil {
		return ""
	}
	return plain
}

// resolvePages expands a page-range expression against the document's
// page count. Out-of-range pages are dropped silently.
func resolvePages(pageRange string, total int) ([]int, error) {
	requested, err := parsePageRange(pageRange)
	if err != nil {
		return nil, err
	}
	if len(requested) == 0 {
		requested = make([]int, 0, total)
		for i := 1; i <= total; i++ {
			requested = append(requested, i)
		}
		return requested, nil
	}

	pages := make([]int, 0, len(requested))
	for _, n := range requested {
		if n >= 1 && n <= total {
			pages = append(pages, n)
		}
	}
	return pages, nil
}

// parsePageRange parses expressions like "1-3,5". Empty input means all
// pages and parses to nil.
func parsePageRange(pageRange string) ([]int, error) {
	if pageRange == "" {
		return nil, nil
	}

	var pages []int
	for _, part := range strings.Split(pageRange, ",") {
		tokenPages, err := parseRangeToken(strings.TrimSpace(part))
		if err != nil {
			return nil, err
		}
		pages = append(pages, tokenPages...)
	}
	return pages, nil
}

// parseRangeToken parses a single page token ("3") or a range ("1-5").
func parseRangeToken(part string) ([]int, error) {
	if strings.Contains(part, "-") {
		rangeParts := strings.Split(part, "-")
		if len(rangeParts) != 2 {
			return nil, fmt.Errorf("invalid page range %q", part)
		}
		start, err := strconv.Atoi(strings.TrimSpace(rangeParts[0]))
		if err != nil {
			return nil, fmt.Errorf("invalid start page %q", rangeParts[0])
		}
		end, err := strconv.Atoi(strings.TrimSpace(rangeParts[1]))
		if err != nil {
			return nil, fmt.Errorf("invalid end page %q", rangeParts[1])
		}
		if start < 1 || start > end {
			return nil, fmt.Errorf("invalid page range %q", part)
		}
		pages := make([]int, 0, end-start+1)
		for i := start; i <= end; i++ {
			pages = append(pages, i)
		}
		return pages, nil
	}

	n, err := strconv.Atoi(part)
	if err != nil || n < 1 {
		return nil, fmt.Errorf("invalid page number %q", part)
	}
	return []int{n}, nil
}
