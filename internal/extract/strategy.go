package extract

import "github.com/gulftech/idparse/internal/corpus"

// Strategy is one attempt at locating a field value. Strategies report
// absence through the boolean; they never error. Each field owns an
// ordered strategy list, tried in sequence with the first hit winning.
type Strategy func(c *corpus.Corpus) (string, bool)

// firstHit runs strategies in order and returns the first non-empty,
// accepted value.
func firstHit(c *corpus.Corpus, strategies ...Strategy) (string, bool) {
	for _, s := range strategies {
		if v, ok := s(c); ok && v != "" {
			return v, true
		}
	}
	return "", false
}
