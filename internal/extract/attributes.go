package extract

import (
	"strings"

	"github.com/gulftech/idparse/internal/corpus"
)

// Nationality finds the nationality span next to its label. OCR often
// glues the next field onto the same line, so the capture is truncated at
// the first occurrence of any other known label.
func (r *Rules) Nationality(c *corpus.Corpus) (string, bool) {
	m := r.nationality.FindStringSubmatch(c.Text)
	if m == nil {
		return "", false
	}
	val := nationalityCutoff.ReplaceAllString(strings.TrimSpace(m[1]), "")
	val = r.cleanValue(val)
	if !r.usableValue(val) {
		return "", false
	}
	return val, true
}

// Gender finds the gender and normalizes it to Male/Female. Spurious
// SCAN/SCANNED artifacts that collide with the loose label pattern are
// discarded.
func (r *Rules) Gender(c *corpus.Corpus) (string, bool) {
	if m := r.genderStrict.FindStringSubmatch(c.Text); m != nil {
		return normalizeGender(m[1]), true
	}
	m := r.genderLoose.FindStringSubmatch(c.Text)
	if m == nil {
		return "", false
	}
	val := strings.TrimSpace(m[1])
	if val == "" || r.scanArtifact.MatchString(val) {
		return "", false
	}
	if g := normalizeGender(val); g != "" {
		return g, true
	}
	return "", false
}

// normalizeGender maps the closed value set, including Arabic forms, to
// the two canonical output values. Unknown input yields "".
func normalizeGender(v string) string {
	switch strings.ToUpper(strings.TrimSpace(v)) {
	case "M", "MALE", "ذكر":
		return "Male"
	case "F", "FEMALE", "أنثى":
		return "Female"
	}
	return ""
}

// Occupation finds the occupation span from the card back. Candidates are
// truncated at the next field, cleaned of OCR punctuation, and rejected
// when they carry long digit runs or run past a plausible word count.
func (r *Rules) Occupation(c *corpus.Corpus) (string, bool) {
	for _, rx := range r.occupation {
		m := rx.FindStringSubmatch(c.Text)
		if m == nil {
			continue
		}
		val := occupationStopTerms.ReplaceAllString(strings.TrimSpace(m[1]), "")
		val = stripOCRPunct(val)
		val = r.cleanValue(val)
		if val == "" || r.longDigits.MatchString(val) {
			continue
		}
		if words := len(strings.Fields(val)); words == 0 || words > 5 {
			continue
		}
		return val, true
	}
	return "", false
}

// Employer finds the employer span from the card back, keeping commas so
// multi-part company names survive.
func (r *Rules) Employer(c *corpus.Corpus) (string, bool) {
	for _, rx := range r.employer {
		m := rx.FindStringSubmatch(c.Text)
		if m == nil {
			continue
		}
		val := employerStopTerms.ReplaceAllString(strings.TrimSpace(m[1]), "")
		val = stripOCRPunct(val)
		val = r.cleanValue(val)
		if len(val) > 1 {
			return val, true
		}
	}
	return "", false
}

// Sponsor finds a labeled sponsor name via the line locator. Label
// echoes and digit-heavy lines (identifiers, MRZ residue) are rejected.
func (r *Rules) Sponsor(c *corpus.Corpus) (string, bool) {
	val, ok := r.LocateField(c.Lines, FieldSponsorName)
	if !ok {
		return "", false
	}
	if containsAnyTerm(val, swapTerms) || r.longDigits.MatchString(val) {
		return "", false
	}
	return val, true
}

// IssuingPlace finds the issuing place, preferring the enumerated emirate
// names and falling back to open text with garbage filtering.
func (r *Rules) IssuingPlace(c *corpus.Corpus) (string, bool) {
	if m := r.placeEnum.FindStringSubmatch(c.Text); m != nil {
		return m[1], true
	}
	m := r.placeOpen.FindStringSubmatch(c.Text)
	if m == nil {
		return "", false
	}
	val := stripOCRPunct(strings.TrimSpace(m[1]))
	val = r.cleanValue(val)
	if val == "" || placeGarbage[strings.ToLower(val)] {
		return "", false
	}
	if len(strings.Fields(val)) > 3 {
		return "", false
	}
	return val, true
}

// FamilySponsor finds the Yes/No family-sponsor flag from the card back.
func (r *Rules) FamilySponsor(c *corpus.Corpus) (string, bool) {
	m := r.familySponsor.FindStringSubmatch(c.Text)
	if m == nil {
		return "", false
	}
	switch strings.ToLower(m[1]) {
	case "yes", "y", "نعم":
		return "Yes", true
	case "no", "n", "لا":
		return "No", true
	}
	return "", false
}

// Address finds the address: labeled first, then the line following the
// nationality value, then the last clean multi-word line of the corpus.
func (r *Rules) Address(c *corpus.Corpus, nationality string) (string, bool) {
	if m := r.address.FindStringSubmatch(c.Text); m != nil {
		if val := r.cleanValue(m[1]); r.usableValue(val) {
			return val, true
		}
	}
	if nationality != "" {
		for i, line := range c.Lines {
			if !strings.Contains(strings.ToLower(line), strings.ToLower(nationality)) {
				continue
			}
			if i+1 < len(c.Lines) {
				cand := c.Lines[i+1]
				if len(cand) > 4 && !strings.ContainsAny(cand, "0123456789") {
					return cand, true
				}
			}
			break
		}
	}
	for i := len(c.Lines) - 1; i >= 0; i-- {
		line := c.Lines[i]
		if containsAnyTerm(line, nameStopTerms) || strings.ContainsAny(line, "0123456789") {
			continue
		}
		if len(strings.Fields(line)) >= 2 {
			return line, true
		}
	}
	return "", false
}

// stripOCRPunct removes stray punctuation OCR injects into value spans
// while keeping word characters, spaces, hyphens, periods and commas.
func stripOCRPunct(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case r == ' ' || r == '-' || r == '.' || r == ',':
			b.WriteRune(r)
		case r >= '0' && r <= '9', r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
			b.WriteRune(r)
		}
	}
	return strings.TrimSpace(b.String())
}

// containsAnyTerm reports whether s contains any of the terms,
// case-insensitively.
func containsAnyTerm(s string, terms []string) bool {
	low := strings.ToLower(s)
	for _, t := range terms {
		if strings.Contains(low, t) {
			return true
		}
	}
	return false
}
