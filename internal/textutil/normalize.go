package textutil

import (
	"strings"
	"unicode"
)

// NormalizeLines converts raw OCR output into clean line-structured text.
// Carriage returns become newlines, runs of horizontal whitespace collapse
// to a single space, and every line is trimmed. Blank lines are dropped.
// Line-based extractors (labels, names) depend on this structure.
func NormalizeLines(raw string) string {
	if raw == "" {
		return ""
	}
	normalized := strings.ReplaceAll(raw, "\r\n", "\n")
	normalized = strings.ReplaceAll(normalized, "\r", "\n")

	var lines []string
	for _, line := range strings.Split(normalized, "\n") {
		line = collapseSpaces(line)
		if line != "" {
			lines = append(lines, line)
		}
	}
	return strings.Join(lines, "\n")
}

// NormalizeFlat collapses all whitespace, newlines included, to single
// spaces. Single-line extractors (ID numbers, date scans) use this mode.
func NormalizeFlat(raw string) string {
	if raw == "" {
		return ""
	}
	return strings.Join(strings.Fields(raw), " ")
}

// SplitLines normalizes raw text and returns its non-empty trimmed lines.
func SplitLines(raw string) []string {
	normalized := NormalizeLines(raw)
	if normalized == "" {
		return nil
	}
	return strings.Split(normalized, "\n")
}

// collapseSpaces reduces runs of horizontal whitespace inside a line to a
// single space and trims the ends.
func collapseSpaces(line string) string {
	var b strings.Builder
	b.Grow(len(line))
	space := false
	for _, r := range line {
		if r == '\t' || unicode.IsSpace(r) {
			space = true
			continue
		}
		if space && b.Len() > 0 {
			b.WriteByte(' ')
		}
		space = false
		b.WriteRune(r)
	}
	return b.String()
}
