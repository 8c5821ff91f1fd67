package extract

import (
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/gulftech/idparse/internal/corpus"
)

// CanonicalDateFormat is the single output representation for every
// resolved date, regardless of the separator and ordering found on the
// document.
const CanonicalDateFormat = time.DateOnly

// DateCandidate pairs a raw date token with its parsed calendar date.
type DateCandidate struct {
	Raw  string
	When time.Time
}

// DateAssignment holds the per-role outcome of date resolution. Empty
// strings mean the role stayed unresolved; that is a normal outcome.
type DateAssignment struct {
	Birth  string
	Issue  string
	Expiry string
}

// CollectDateCandidates scans text for date-shaped tokens, parses and
// validates them, and drops any token that is really a fragment of an
// already-extracted identifier (a file number slash group, for example).
// Invalid candidates are discarded silently.
func (r *Rules) CollectDateCandidates(text string, exclude []string) []DateCandidate {
	blocked := excludedRanges(text, exclude)

	var out []DateCandidate
	seen := make(map[time.Time]bool)
	for _, loc := range r.dateToken.FindAllStringIndex(text, -1) {
		if overlapsAny(loc[0], loc[1], blocked) {
			continue
		}
		raw := text[loc[0]:loc[1]]
		when, ok := r.parseDateToken(raw)
		if !ok || seen[when] {
			continue
		}
		seen[when] = true
		out = append(out, DateCandidate{Raw: raw, When: when})
	}
	return out
}

// parseDateToken parses one token from either date family. The four-digit
// group is the year wherever it sits; two-digit years pivot at 30. The
// parse is rejected when components fall outside the configured window or
// do not form a real calendar date.
func (r *Rules) parseDateToken(tok string) (time.Time, bool) {
	norm := strings.NewReplacer("-", "/", ".", "/").Replace(tok)
	parts := strings.Split(norm, "/")
	if len(parts) != 3 {
		return time.Time{}, false
	}

	var year, month, day int
	switch {
	case len(parts[0]) == 4:
		year, month, day = atoiSafe(parts[0]), atoiSafe(parts[1]), atoiSafe(parts[2])
	case len(parts[2]) == 4:
		day, month, year = atoiSafe(parts[0]), atoiSafe(parts[1]), atoiSafe(parts[2])
	case len(parts[2]) == 2:
		day, month = atoiSafe(parts[0]), atoiSafe(parts[1])
		yy := atoiSafe(parts[2])
		if yy < 30 {
			year = 2000 + yy
		} else {
			year = 1900 + yy
		}
	default:
		return time.Time{}, false
	}

	if day < 1 || day > 31 || month < 1 || month > 12 {
		return time.Time{}, false
	}
	if year < r.cfg.YearMin || year > r.cfg.YearMax {
		return time.Time{}, false
	}

	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if t.Year() != year || int(t.Month()) != month || t.Day() != day {
		return time.Time{}, false
	}
	return t, true
}

// issueYearFloor is the earliest year the chronological heuristic
// accepts on documents that carry no birth field; a printed birth date
// on such documents must never become the issuing date.
const issueYearFloor = 2000

// ResolveDates assigns roles to the dates found in the corpus. Labeled
// dates win outright; whatever stays unresolved is assigned
// chronologically: earliest to birth (when the document carries one),
// latest to expiry, and with three or more candidates the first interior
// one to issue. When the document carries no birth field, a
// birth-labeled date and anything before issueYearFloor are dropped
// from the heuristic pool first.
func (r *Rules) ResolveDates(c *corpus.Corpus, exclude []string, expectBirth bool) DateAssignment {
	var out DateAssignment

	labeledBirth, hasLabeledBirth := r.labeledDate(c.Text, r.birthLabel, exclude)
	if hasLabeledBirth && expectBirth {
		out.Birth = labeledBirth.When.Format(CanonicalDateFormat)
	}
	if d, ok := r.labeledDate(c.Text, r.issueLabel, exclude); ok {
		out.Issue = d.When.Format(CanonicalDateFormat)
	}
	if d, ok := r.labeledDate(c.Text, r.expiryLabel, exclude); ok {
		out.Expiry = d.When.Format(CanonicalDateFormat)
	}

	candidates := r.CollectDateCandidates(c.Flat, exclude)
	remaining := withoutResolved(candidates, out)
	if !expectBirth {
		remaining = withoutBirthCandidates(remaining, labeledBirth, hasLabeledBirth)
	}
	sort.Slice(remaining, func(i, j int) bool { return remaining[i].When.Before(remaining[j].When) })

	if out.Birth == "" && expectBirth && len(remaining) > 0 {
		out.Birth = remaining[0].When.Format(CanonicalDateFormat)
		remaining = remaining[1:]
	}
	if out.Expiry == "" && len(remaining) > 0 {
		out.Expiry = remaining[len(remaining)-1].When.Format(CanonicalDateFormat)
		remaining = remaining[:len(remaining)-1]
	}
	if out.Issue == "" && len(remaining) > 0 {
		out.Issue = remaining[0].When.Format(CanonicalDateFormat)
	}
	return out
}

// labeledDate finds a date within the bounded window after a role label.
func (r *Rules) labeledDate(text string, label *regexp.Regexp, exclude []string) (DateCandidate, bool) {
	m := label.FindStringSubmatch(text)
	if m == nil {
		return DateCandidate{}, false
	}
	raw := m[len(m)-1]
	for _, ex := range exclude {
		if ex != "" && strings.Contains(ex, raw) {
			return DateCandidate{}, false
		}
	}
	when, ok := r.parseDateToken(raw)
	if !ok {
		return DateCandidate{}, false
	}
	return DateCandidate{Raw: raw, When: when}, true
}

// withoutResolved filters out candidates already consumed by a labeled
// assignment so the chronological heuristic only sees free dates.
func withoutResolved(candidates []DateCandidate, a DateAssignment) []DateCandidate {
	taken := map[string]bool{}
	for _, v := range []string{a.Birth, a.Issue, a.Expiry} {
		if v != "" {
			taken[v] = true
		}
	}
	out := make([]DateCandidate, 0, len(candidates))
	for _, cand := range candidates {
		if !taken[cand.When.Format(CanonicalDateFormat)] {
			out = append(out, cand)
		}
	}
	return out
}

// withoutBirthCandidates narrows the heuristic pool for documents
// without a birth field: the birth-labeled date is removed, as is every
// candidate below the issue-year floor.
func withoutBirthCandidates(candidates []DateCandidate, labeledBirth DateCandidate, hasLabeledBirth bool) []DateCandidate {
	out := make([]DateCandidate, 0, len(candidates))
	for _, cand := range candidates {
		if hasLabeledBirth && cand.When.Equal(labeledBirth.When) {
			continue
		}
		if cand.When.Year() < issueYearFloor {
			continue
		}
		out = append(out, cand)
	}
	return out
}

// excludedRanges locates every occurrence of the excluded identifiers in
// text and returns their index ranges.
func excludedRanges(text string, exclude []string) [][2]int {
	var ranges [][2]int
	for _, ex := range exclude {
		if ex == "" {
			continue
		}
		from := 0
		for {
			i := strings.Index(text[from:], ex)
			if i < 0 {
				break
			}
			start := from + i
			ranges = append(ranges, [2]int{start, start + len(ex)})
			from = start + len(ex)
		}
	}
	return ranges
}

// overlapsAny reports whether [start,end) intersects any blocked range.
func overlapsAny(start, end int, blocked [][2]int) bool {
	for _, b := range blocked {
		if start < b[1] && end > b[0] {
			return true
		}
	}
	return false
}

func atoiSafe(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return -1
	}
	return n
}
