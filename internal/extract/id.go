package extract

import (
	"fmt"
	"strings"

	"github.com/gulftech/idparse/internal/corpus"
)

// IDNumber finds the national identity number. Strategies, in order:
// canonical NNN-NNNN-NNNNNNN-N, the 784-prefixed form with space/hyphen
// OCR variants (re-hyphenated to the canonical shape), and a bare
// 784-prefixed digit run. Candidates overlapping an already-extracted
// identifier (e.g. a file number) are rejected.
func (r *Rules) IDNumber(c *corpus.Corpus, exclude ...string) (string, bool) {
	return firstHit(c,
		func(c *corpus.Corpus) (string, bool) {
			m := r.idCanonical.FindString(c.Flat)
			return m, m != "" && !collides(m, exclude)
		},
		func(c *corpus.Corpus) (string, bool) {
			m := r.idLoose.FindStringSubmatch(c.Flat)
			if m == nil {
				return "", false
			}
			id := fmt.Sprintf("784-%s-%s-%s", m[1], m[2], m[3])
			return id, !collides(id, exclude)
		},
		func(c *corpus.Corpus) (string, bool) {
			m := r.idBare.FindString(c.Flat)
			return m, m != "" && !collides(m, exclude)
		},
	)
}

// LabeledIDNumber finds an explicitly labeled identity number. Visa
// layouts print "ID Number" with the value, so the label form is tried
// before any pattern scan there.
func (r *Rules) LabeledIDNumber(c *corpus.Corpus) (string, bool) {
	if m := r.idLabeled.FindStringSubmatch(c.Flat); m != nil {
		return strings.Trim(m[1], "-"), true
	}
	return r.IDNumber(c)
}

// FileNumber finds the residency file number, labeled first, then the
// bare NNN/YYYY/NNNNN… shape.
func (r *Rules) FileNumber(c *corpus.Corpus) (string, bool) {
	return firstHit(c,
		func(c *corpus.Corpus) (string, bool) {
			m := r.fileLabeled.FindStringSubmatch(c.Flat)
			if m == nil {
				return "", false
			}
			return strings.Trim(m[1], "-"), true
		},
		func(c *corpus.Corpus) (string, bool) {
			m := r.fileBare.FindString(c.Flat)
			return m, m != ""
		},
	)
}

// PassportNumber finds the passport number: the labeled form first, then
// any letter-led token that mixes letters and digits.
func (r *Rules) PassportNumber(c *corpus.Corpus) (string, bool) {
	return firstHit(c,
		func(c *corpus.Corpus) (string, bool) {
			m := r.passLabeled.FindStringSubmatch(c.Flat)
			if m == nil || !strings.ContainsAny(m[1], "0123456789") {
				return "", false
			}
			return m[1], true
		},
		func(c *corpus.Corpus) (string, bool) {
			for _, tok := range r.passToken.FindAllString(c.Flat, -1) {
				if strings.ContainsAny(tok, "0123456789") {
					return tok, true
				}
			}
			return "", false
		},
	)
}

// UIDNumber finds the unified number printed on residence visas.
func (r *Rules) UIDNumber(c *corpus.Corpus) (string, bool) {
	if m := r.uidLabeled.FindStringSubmatch(c.Flat); m != nil {
		return m[1], true
	}
	return "", false
}

// collides reports whether a candidate identifier overlaps one of the
// already-extracted identifiers, in either containment direction.
func collides(candidate string, taken []string) bool {
	digits := digitsOnly(candidate)
	for _, t := range taken {
		if t == "" {
			continue
		}
		td := digitsOnly(t)
		if strings.Contains(td, digits) || strings.Contains(digits, td) {
			return true
		}
	}
	return false
}

// digitsOnly strips everything but digits so separator differences do not
// hide a collision.
func digitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
