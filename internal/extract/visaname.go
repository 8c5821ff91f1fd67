package extract

import (
	"regexp"
	"strings"

	"github.com/gulftech/idparse/internal/corpus"
)

// visaNameJunk strips label fragments OCR glues onto the end of a visa
// holder-name span.
var visaNameJunk = regexp.MustCompile(`(?i)\s*(?:ame|Profession|HOUSE\s*WIFE|Employer)\b.*$`)

// visaNameExcluded are uppercase tokens that mark a candidate span as
// boilerplate rather than a person's name.
var visaNameExcluded = map[string]bool{
	"UNITED": true, "ARAB": true, "EMIRATES": true, "HOUSE": true,
	"WIFE": true, "PROFESSION": true, "EMPLOYER": true, "PASSPORT": true,
	"NUMBER": true, "RESIDENCE": true, "VISA": true,
}

// VisaHolderName finds the visa holder's name. Visa pages print the name
// in uppercase between the passport number and the profession block, so
// the patterns anchor on those neighbours before falling back to any
// uppercase multi-word run.
func (r *Rules) VisaHolderName(c *corpus.Corpus) (string, bool) {
	for _, rx := range r.visaName {
		for _, m := range rx.FindAllStringSubmatch(c.Text, -1) {
			if name, ok := r.validVisaName(m[1]); ok {
				return name, true
			}
		}
	}
	return "", false
}

// validVisaName cleans a candidate span and applies the visa name shape
// rules: two to four words, each at least two characters, none from the
// boilerplate set.
func (r *Rules) validVisaName(span string) (string, bool) {
	val := visaNameJunk.ReplaceAllString(strings.TrimSpace(span), "")
	val = r.cleanValue(val)
	words := strings.Fields(val)
	if len(words) < 2 || len(words) > 4 {
		return "", false
	}
	for _, w := range words {
		if len(w) < 2 || visaNameExcluded[strings.ToUpper(w)] {
			return "", false
		}
	}
	return strings.Join(words, " "), true
}
