package extract

import (
	"regexp"
	"strings"

	"github.com/gulftech/idparse/internal/corpus"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var properCased = regexp.MustCompile(`[A-Z][a-z]`)

var titleCaser = cases.Title(language.English)

// FullName resolves the document holder's name. Strategies, in order:
// an explicit Name label (with look-behind and look-ahead line merging
// for names wrapped across lines), a label-free scan for a name-like
// line block, and finally the machine-readable zone. Occupation-term
// contamination is not rejected here; the swap-correction pass runs
// after all fields are extracted and fixes crossed labels.
func (r *Rules) FullName(c *corpus.Corpus) (string, bool) {
	return firstHit(c,
		r.labeledName,
		r.scanNameBlock,
		func(c *corpus.Corpus) (string, bool) {
			name, ok := r.FindMRZName(c.Lines)
			if !ok {
				return "", false
			}
			return name.Full(), true
		},
	)
}

// labeledName extracts the value following a Name label and merges
// adjacent name-like lines, covering layouts where OCR split the name
// around the labeled line.
func (r *Rules) labeledName(c *corpus.Corpus) (string, bool) {
	for _, rx := range []*regexp.Regexp{r.nameProper, r.nameGreedy, r.nameArabic} {
		m := rx.FindStringSubmatch(c.Text)
		if m == nil {
			continue
		}
		val := r.cleanNameSpan(m[1])
		if !r.validNameSpan(val) {
			continue
		}
		return r.mergeAdjacentLines(c.Lines, val), true
	}
	return "", false
}

// cleanNameSpan strips trailing label echoes, separator noise, and
// anything past the next field label OCR glued onto the span. Spans that
// swallowed a line break collapse back to single spaces.
func (r *Rules) cleanNameSpan(v string) string {
	v = strings.TrimSpace(v)
	v = r.trailingLbl.ReplaceAllString(v, "")
	v = r.nameCutoff.ReplaceAllString(v, "")
	v = strings.Join(strings.Fields(v), " ")
	return r.cleanValue(v)
}

// validNameSpan accepts a span as a plausible name: at least two words,
// no long digit runs, and at least one properly cased word.
func (r *Rules) validNameSpan(v string) bool {
	if v == "" || r.longDigits.MatchString(v) {
		return false
	}
	if len(strings.Fields(v)) < 2 {
		return false
	}
	return properCased.MatchString(v) || !strings.ContainsAny(v, "abcdefghijklmnopqrstuvwxyz")
}

// mergeAdjacentLines locates the line holding the extracted span and
// pulls in surrounding name-like lines: one line of look-behind and up
// to LookAheadLines of continuation below. Merging stops at the first
// line that fails the name-likeness test.
func (r *Rules) mergeAdjacentLines(lines []string, span string) string {
	idx := r.findNameLine(lines, span)
	if idx < 0 {
		return span
	}

	parts := []string{span}

	if idx > 0 {
		prev := lines[idx-1]
		if r.nameLike(prev) {
			parts = append([]string{prev}, parts...)
		}
	}

	for i := idx + 1; i <= idx+r.cfg.LookAheadLines && i < len(lines); i++ {
		if !r.nameLike(lines[i]) {
			break
		}
		parts = append(parts, lines[i])
	}

	return strings.Join(parts, " ")
}

// findNameLine returns the index of the line containing the span,
// preferring a line that carries the Name label.
func (r *Rules) findNameLine(lines []string, span string) int {
	low := strings.ToLower(span)
	first := -1
	for i, line := range lines {
		if !strings.Contains(strings.ToLower(line), low) {
			continue
		}
		if r.nameLabel.MatchString(line) || strings.Contains(strings.ToLower(line), "name:") {
			return i
		}
		if first == -1 {
			first = i
		}
	}
	return first
}

// scanNameBlock finds a standalone name block in documents whose Name
// label was lost to OCR: the first clean multi-word line, extended by
// name-like continuation lines below it.
func (r *Rules) scanNameBlock(c *corpus.Corpus) (string, bool) {
	for i, line := range c.Lines {
		if containsAnyTerm(line, nameStopTerms) {
			continue
		}
		if strings.ContainsAny(line, "0123456789") {
			continue
		}
		if len(strings.Fields(line)) < 2 || !r.nameLike(line) {
			continue
		}

		parts := []string{line}
		for j := i + 1; j <= i+r.cfg.LookAheadLines && j < len(c.Lines); j++ {
			if !r.nameLike(c.Lines[j]) {
				break
			}
			parts = append(parts, c.Lines[j])
		}
		return strings.Join(parts, " "), true
	}
	return "", false
}

// nameLike reports whether a line could be part of a person's name: no
// digits or slashes, no stop terms, and either mostly uppercase (70%+)
// or title-cased with a leading-capital count proportional to the word
// count.
func (r *Rules) nameLike(line string) bool {
	line = strings.TrimSpace(line)
	if line == "" || strings.ContainsAny(line, "0123456789/") {
		return false
	}
	if containsAnyTerm(line, nameStopTerms) {
		return false
	}

	var upper, letters int
	for _, ch := range line {
		switch {
		case ch >= 'A' && ch <= 'Z':
			upper++
			letters++
		case ch >= 'a' && ch <= 'z':
			letters++
		}
	}
	if letters == 0 {
		return false
	}

	if float64(upper)/float64(letters) >= 0.7 {
		return true
	}

	startsUpper := line[0] >= 'A' && line[0] <= 'Z'
	words := len(strings.Fields(line))
	return startsUpper &&
		float64(upper) >= 0.7*float64(words) &&
		float64(upper) <= 2*float64(words)
}

// ReconcileNameOccupation is the unconditional post-extraction
// consistency pass: when the name slot holds occupation-indicating terms
// and the occupation slot holds something that reads like a proper name,
// the two values swapped labels on the document and are swapped back.
// A contaminated name with no swap partner is dropped rather than kept.
func ReconcileNameOccupation(res Result) {
	name, hasName := res.Get(FieldFullName)
	if !hasName || !containsAnyTerm(name, swapTerms) {
		return
	}

	occ, hasOcc := res.Get(FieldOccupation)
	if hasOcc && !containsAnyTerm(occ, swapTerms) && properCased.MatchString(occ) {
		res.Override(FieldFullName, occ)
		res.Override(FieldOccupation, name)
		return
	}

	delete(res, FieldFullName)
}

// DisplayName converts an all-uppercase multi-word name to title case
// for display. Mixed-case values pass through as extracted.
func DisplayName(v string) string {
	if len(strings.Fields(v)) < 2 {
		return v
	}
	if strings.ContainsAny(v, "abcdefghijklmnopqrstuvwxyz") {
		return v
	}
	return titleCaser.String(strings.ToLower(v))
}
