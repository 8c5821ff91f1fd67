package extract

import (
	"regexp"
	"strings"
)

// LocateLabelValue hunts for the value belonging to a printed label. It
// scans lines in order; on the first label hit it prefers the trailing
// text of the same line, then falls back to the following line when that
// line does not itself look like another label. First match wins; the
// scan never backtracks across later label occurrences.
func (r *Rules) LocateLabelValue(lines []string, label *regexp.Regexp) (string, bool) {
	for i, line := range lines {
		if !label.MatchString(line) {
			continue
		}

		// Same line: text to the right of the label.
		parts := label.Split(line, -1)
		if len(parts) > 1 {
			if candidate := r.cleanValue(parts[len(parts)-1]); r.usableValue(candidate) {
				return candidate, true
			}
		}

		// Next line: only when it is not another label-value pair.
		if i+1 < len(lines) {
			next := strings.TrimSpace(lines[i+1])
			if !r.labelLike.MatchString(next) {
				if candidate := r.cleanValue(next); r.usableValue(candidate) {
					return candidate, true
				}
			}
		}
		return "", false
	}
	return "", false
}

// LocateField runs the locator for one of the fields with a registered
// bilingual label pattern.
func (r *Rules) LocateField(lines []string, field Field) (string, bool) {
	label, ok := r.locator[field]
	if !ok {
		return "", false
	}
	return r.LocateLabelValue(lines, label)
}

// cleanValue strips separator noise from the edges of a candidate value.
func (r *Rules) cleanValue(v string) string {
	return strings.TrimSpace(r.edgeNoise.ReplaceAllString(strings.TrimSpace(v), ""))
}

// usableValue applies the minimum-length filter for label candidates.
func (r *Rules) usableValue(v string) bool {
	return len(strings.TrimSpace(v)) >= r.cfg.MinValueLength
}
