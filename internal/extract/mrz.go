package extract

import (
	"strings"
	"time"
)

// MRZName carries the name components recovered from a passport-style
// machine-readable zone line.
type MRZName struct {
	Surname string
	Given   string
}

// Full joins the given names and surname in display order.
func (n MRZName) Full() string {
	return strings.TrimSpace(n.Given + " " + n.Surname)
}

// MRZMachineData carries the fields of the numeric MRZ line found on the
// back of identity cards: YYMMDD birth date, sex, YYMMDD expiry.
type MRZMachineData struct {
	BirthDate  time.Time
	ExpiryDate time.Time
	Gender     string
}

// ParseMRZName parses the name line of a machine-readable zone, format
// P<ISSUER<SURNAME<<GIVEN<NAMES<<<<. OCR commonly misreads the filler
// character as 'A' or a guillemet; both repairs are applied before
// splitting on the double-filler separator.
func (r *Rules) ParseMRZName(line string) (MRZName, bool) {
	if line == "" {
		return MRZName{}, false
	}
	up := strings.ToUpper(strings.TrimSpace(line))
	up = strings.ReplaceAll(up, "«", "<")

	up = r.mrzHeader.ReplaceAllString(up, "")

	surname, given, ok := strings.Cut(up, "<<")
	if !ok {
		return MRZName{}, false
	}
	// Only the first given-name group matters; trailing filler follows.
	given, _, _ = strings.Cut(given, "<<")

	name := MRZName{
		Surname: collapseFiller(surname),
		Given:   collapseFiller(given),
	}
	if name.Surname == "" && name.Given == "" {
		return MRZName{}, false
	}
	return name, true
}

// FindMRZName scans corpus lines for a name-bearing MRZ line: long,
// filler-separated, and free of digits.
func (r *Rules) FindMRZName(lines []string) (MRZName, bool) {
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if len(trimmed) < 20 || !strings.Contains(trimmed, "<<") {
			continue
		}
		if strings.ContainsAny(trimmed, "0123456789") {
			continue
		}
		if name, ok := r.ParseMRZName(trimmed); ok {
			return name, true
		}
	}
	return MRZName{}, false
}

// FindMRZMachineLine scans for the numeric MRZ line (birth date, sex,
// expiry) and decodes it. Birth years landing in the future roll back a
// century; expiry years are always 20xx on current documents.
func (r *Rules) FindMRZMachineLine(text string, now time.Time) (MRZMachineData, bool) {
	m := r.mrzMachine.FindStringSubmatch(text)
	if m == nil {
		return MRZMachineData{}, false
	}
	birth, ok := parseYYMMDD(m[1])
	if !ok {
		return MRZMachineData{}, false
	}
	if birth.Year() > now.Year() {
		birth = birth.AddDate(-100, 0, 0)
	}
	expiry, ok := parseYYMMDD(m[3])
	if !ok {
		return MRZMachineData{}, false
	}
	gender := "Female"
	if m[2] == "M" {
		gender = "Male"
	}
	return MRZMachineData{BirthDate: birth, ExpiryDate: expiry, Gender: gender}, true
}

// parseYYMMDD decodes a six-digit MRZ date as 20YY-MM-DD, rejecting
// impossible month/day components.
func parseYYMMDD(s string) (time.Time, bool) {
	if len(s) != 6 {
		return time.Time{}, false
	}
	year := 2000 + atoi2(s[0:2])
	month := atoi2(s[2:4])
	day := atoi2(s[4:6])
	if month < 1 || month > 12 || day < 1 || day > 31 {
		return time.Time{}, false
	}
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if int(t.Month()) != month || t.Day() != day {
		return time.Time{}, false
	}
	return t, true
}

func atoi2(s string) int {
	return int(s[0]-'0')*10 + int(s[1]-'0')
}

// collapseFiller turns MRZ filler characters into single spaces.
func collapseFiller(s string) string {
	return strings.Join(strings.Fields(strings.ReplaceAll(s, "<", " ")), " ")
}
