package document

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/gulftech/idparse/internal/corpus"
	"github.com/gulftech/idparse/internal/extract"
)

// ErrNilCorpus is returned when extraction is attempted without a corpus.
// An empty-but-present corpus is not an error; it yields empty output.
var ErrNilCorpus = errors.New("nil corpus")

// DefaultPreviewLength bounds the raw-text preview attached to results.
const DefaultPreviewLength = 2000

// Result is the orchestrator's output: the merged field map, a
// completeness indicator, and a bounded slice of the normalized corpus
// for audit and debugging.
type Result struct {
	Document Type           `json:"document"`
	Fields   extract.Result `json:"fields"`
	Complete bool           `json:"complete"`
	Preview  string         `json:"preview,omitempty"`
}

// Extractor runs the field extractors appropriate for each document type
// over a corpus and merges the outcome. It is stateless per call and
// safe for concurrent use.
type Extractor struct {
	rules      *extract.Rules
	previewLen int
	now        func() time.Time
}

// Builder assembles an Extractor. The zero builder produces the default
// configuration.
type Builder struct {
	cfg        extract.Config
	previewLen int
	now        func() time.Time
}

// NewBuilder starts a builder from the extraction defaults.
func NewBuilder() *Builder {
	return &Builder{cfg: extract.DefaultConfig(), previewLen: DefaultPreviewLength}
}

// WithYearRange bounds the plausible calendar range for document dates.
func (b *Builder) WithYearRange(min, max int) *Builder {
	b.cfg.YearMin = min
	b.cfg.YearMax = max
	return b
}

// WithMinValueLength sets the minimum length for label-adjacent values.
func (b *Builder) WithMinValueLength(n int) *Builder {
	b.cfg.MinValueLength = n
	return b
}

// WithLookAheadLines caps name-continuation scanning below a match.
func (b *Builder) WithLookAheadLines(n int) *Builder {
	b.cfg.LookAheadLines = n
	return b
}

// WithPreviewLength bounds the audit preview attached to results.
func (b *Builder) WithPreviewLength(n int) *Builder {
	b.previewLen = n
	return b
}

// WithClock overrides the time source; tests use this to pin MRZ century
// handling.
func (b *Builder) WithClock(now func() time.Time) *Builder {
	b.now = now
	return b
}

// Build compiles the rule set and returns the extractor.
func (b *Builder) Build() (*Extractor, error) {
	rules, err := extract.NewRules(b.cfg)
	if err != nil {
		return nil, fmt.Errorf("build extractor: %w", err)
	}
	now := b.now
	if now == nil {
		now = time.Now
	}
	previewLen := b.previewLen
	if previewLen <= 0 {
		previewLen = DefaultPreviewLength
	}
	return &Extractor{rules: rules, previewLen: previewLen, now: now}, nil
}

// Extract runs the extractor subset for the document type over the
// corpus. Missing fields never produce an error; the only hard failure
// at this layer is a missing corpus. Upstream OCR failures are expected
// to be surfaced before this point, by corpus ingestion.
func (e *Extractor) Extract(docType Type, c *corpus.Corpus) (*Result, error) {
	if c == nil {
		return nil, ErrNilCorpus
	}

	fields := extract.Result{}
	if !c.Empty() {
		switch docType {
		case TypeIDFront:
			e.extractIDFront(c, fields)
		case TypeIDBack:
			e.extractIDBack(c, fields)
		case TypePassport:
			e.extractPassport(c, fields)
		case TypeVisa:
			e.extractVisa(c, fields)
		case TypeID:
			fallthrough
		default:
			// Two-sided cards: front pass first, then the back pass whose
			// values override since back layouts are typically cleaner.
			front := extract.Result{}
			e.extractIDFront(c, front)
			back := extract.Result{}
			e.extractIDBack(c, back)
			fields.Merge(front, false)
			fields.Merge(back, true)
		}

		extract.ReconcileNameOccupation(fields)
		if name, ok := fields.Get(extract.FieldFullName); ok {
			fields.Override(extract.FieldFullName, extract.DisplayName(name))
		}
	}

	res := &Result{
		Document: docType,
		Fields:   fields,
		Complete: complete(docType, fields),
		Preview:  c.Preview(e.previewLen),
	}
	slog.Debug("document extracted",
		"document", docType,
		"fields", len(fields),
		"complete", res.Complete)
	return res, nil
}

// ExtractPayload resolves an upstream OCR payload and extracts from the
// resulting corpus. A failed payload propagates as-is with no extraction
// attempted.
func (e *Extractor) ExtractPayload(docType Type, payload corpus.OCRPayload) (*Result, error) {
	c, err := payload.Resolve()
	if err != nil {
		return nil, err
	}
	return e.Extract(docType, c)
}

// extractIDFront covers the front face of an identity card: identity
// number, name, nationality, gender, dates, address.
func (e *Extractor) extractIDFront(c *corpus.Corpus, fields extract.Result) {
	if id, ok := e.rules.IDNumber(c); ok {
		fields.Set(extract.FieldIDNumber, id)
	}
	if name, ok := e.rules.FullName(c); ok {
		fields.Set(extract.FieldFullName, name)
	}
	nat, ok := e.rules.Nationality(c)
	if ok {
		fields.Set(extract.FieldNationality, nat)
	}
	if g, ok := e.rules.Gender(c); ok {
		fields.Set(extract.FieldGender, g)
	}
	if addr, ok := e.rules.Address(c, nat); ok {
		fields.Set(extract.FieldAddress, addr)
	}

	id, _ := fields.Get(extract.FieldIDNumber)
	dates := e.rules.ResolveDates(c, []string{id}, true)
	fields.Set(extract.FieldDateOfBirth, dates.Birth)
	fields.Set(extract.FieldIssuingDate, dates.Issue)
	fields.Set(extract.FieldExpiryDate, dates.Expiry)
}

// extractIDBack covers the back face: occupation, employer, issuing
// place, family sponsor, and the machine-readable zone's birth/expiry
// dates and gender as fill-ins.
func (e *Extractor) extractIDBack(c *corpus.Corpus, fields extract.Result) {
	if occ, ok := e.rules.Occupation(c); ok {
		fields.Set(extract.FieldOccupation, occ)
	}
	if emp, ok := e.rules.Employer(c); ok {
		fields.Set(extract.FieldEmployerName, emp)
	}
	if sponsor, ok := e.rules.Sponsor(c); ok {
		fields.Set(extract.FieldSponsorName, sponsor)
	}
	if place, ok := e.rules.IssuingPlace(c); ok {
		fields.Set(extract.FieldIssuingPlace, place)
	}
	if fs, ok := e.rules.FamilySponsor(c); ok {
		fields.Set(extract.FieldFamilySponsor, fs)
	}

	if mrz, ok := e.rules.FindMRZMachineLine(c.Flat, e.now()); ok {
		fields.Set(extract.FieldDateOfBirth, mrz.BirthDate.Format(extract.CanonicalDateFormat))
		fields.Set(extract.FieldExpiryDate, mrz.ExpiryDate.Format(extract.CanonicalDateFormat))
		fields.Set(extract.FieldGender, mrz.Gender)
	}
}

// extractPassport covers a passport data page, with the MRZ as the name
// and date fallback.
func (e *Extractor) extractPassport(c *corpus.Corpus, fields extract.Result) {
	if num, ok := e.rules.PassportNumber(c); ok {
		fields.Set(extract.FieldPassportNumber, num)
	}
	if name, ok := e.rules.FullName(c); ok {
		fields.Set(extract.FieldFullName, name)
	}
	if nat, ok := e.rules.Nationality(c); ok {
		fields.Set(extract.FieldNationality, nat)
	}
	if g, ok := e.rules.Gender(c); ok {
		fields.Set(extract.FieldGender, g)
	}

	num, _ := fields.Get(extract.FieldPassportNumber)
	dates := e.rules.ResolveDates(c, []string{num}, true)
	fields.Set(extract.FieldDateOfBirth, dates.Birth)
	fields.Set(extract.FieldIssuingDate, dates.Issue)
	fields.Set(extract.FieldExpiryDate, dates.Expiry)
}

// extractVisa covers a residence visa page. Visa layouts label their
// identifiers, so the labeled strategies run first, and the file number
// is excluded from identity-number and date scans to avoid cross-field
// collisions. Visas carry no birth field, so the date pass drops
// birth-labeled dates and pre-2000 candidates before assigning the
// issue and expiry roles.
func (e *Extractor) extractVisa(c *corpus.Corpus, fields extract.Result) {
	file, hasFile := e.rules.FileNumber(c)
	if hasFile {
		fields.Set(extract.FieldFileNumber, file)
	}
	if id, ok := e.rules.LabeledIDNumber(c); ok {
		fields.Set(extract.FieldIDNumber, id)
	}
	if num, ok := e.rules.PassportNumber(c); ok {
		fields.Set(extract.FieldPassportNumber, num)
	}
	if uid, ok := e.rules.UIDNumber(c); ok {
		fields.Set(extract.FieldUIDNumber, uid)
	}
	if name, ok := e.rules.VisaHolderName(c); ok {
		fields.Set(extract.FieldFullName, name)
	}
	if emp, ok := e.rules.Employer(c); ok {
		fields.Set(extract.FieldEmployerName, emp)
	}
	if sponsor, ok := e.rules.Sponsor(c); ok {
		fields.Set(extract.FieldSponsorName, sponsor)
	}

	id, _ := fields.Get(extract.FieldIDNumber)
	dates := e.rules.ResolveDates(c, []string{file, id}, false)
	fields.Set(extract.FieldIssuingDate, dates.Issue)
	fields.Set(extract.FieldExpiryDate, dates.Expiry)
}

// complete reports whether every expected field for the type resolved.
func complete(t Type, fields extract.Result) bool {
	expected := Expected(t)
	if len(expected) == 0 {
		return false
	}
	for _, f := range expected {
		if !fields.Has(f) {
			return false
		}
	}
	return true
}
