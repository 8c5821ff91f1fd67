package document

import (
	"log/slog"

	"github.com/gulftech/idparse/internal/corpus"
	"github.com/gulftech/idparse/internal/extract"
)

// ExtractPerPage runs the simpler page-oriented strategy used for
// text-layer PDFs, where each page is a self-contained scan of one
// document side. A page takes part only when it anchors on an identity
// number; the anchored pages are extracted independently and merged
// first-found-wins in page order. When no page anchors, the whole
// corpus is extracted in one pass instead.
func (e *Extractor) ExtractPerPage(docType Type, c *corpus.Corpus) (*Result, error) {
	if c == nil {
		return nil, ErrNilCorpus
	}

	fields := extract.Result{}
	anchored := 0
	for i, page := range c.Pages {
		pc := corpus.New(page.Text)
		if pc.Empty() {
			continue
		}
		if !e.pageAnchors(docType, pc) {
			continue
		}
		anchored++

		pageRes, err := e.Extract(docType, pc)
		if err != nil {
			return nil, err
		}
		fields.Merge(pageRes.Fields, false)
		slog.Debug("page extracted",
			"document", docType,
			"page", i+1,
			"fields", len(pageRes.Fields))
	}

	if anchored == 0 {
		return e.Extract(docType, c)
	}

	return &Result{
		Document: docType,
		Fields:   fields,
		Complete: complete(docType, fields),
		Preview:  c.Preview(e.previewLen),
	}, nil
}

// pageAnchors reports whether a page carries the identifier that marks
// it as belonging to the document type. Identity cards and visas anchor
// on the national identity number, passports on the passport number.
func (e *Extractor) pageAnchors(docType Type, pc *corpus.Corpus) bool {
	switch docType {
	case TypePassport:
		_, ok := e.rules.PassportNumber(pc)
		return ok
	case TypeVisa:
		if _, ok := e.rules.FileNumber(pc); ok {
			return true
		}
		_, ok := e.rules.IDNumber(pc)
		return ok
	case TypeIDFront, TypeIDBack, TypeID:
		fallthrough
	default:
		_, ok := e.rules.IDNumber(pc)
		return ok
	}
}
