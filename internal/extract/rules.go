package extract

import (
	"fmt"
	"regexp"
)

// Config carries the tunable knobs of the extraction rules. The zero
// value is not usable; start from DefaultConfig.
type Config struct {
	// YearMin and YearMax bound the plausible calendar range for any
	// date found on a document.
	YearMin int
	YearMax int

	// MinValueLength is the minimum number of characters a label-adjacent
	// candidate needs before it counts as a value.
	MinValueLength int

	// LookAheadLines caps how many lines below a matched name line are
	// inspected for name continuations.
	LookAheadLines int
}

// DefaultConfig returns the extraction defaults used across document types.
func DefaultConfig() Config {
	return Config{
		YearMin:        1950,
		YearMax:        2100,
		MinValueLength: 3,
		LookAheadLines: 2,
	}
}

// Validate checks the configuration for internal consistency.
func (c Config) Validate() error {
	if c.YearMin <= 0 || c.YearMax <= c.YearMin {
		return fmt.Errorf("invalid year range [%d, %d]", c.YearMin, c.YearMax)
	}
	if c.MinValueLength < 1 {
		return fmt.Errorf("min value length must be positive, got %d", c.MinValueLength)
	}
	if c.LookAheadLines < 0 {
		return fmt.Errorf("look-ahead lines must not be negative, got %d", c.LookAheadLines)
	}
	return nil
}

// Rules is the immutable, compiled pattern table shared by all
// extractors. Build it once at startup and pass it around; it holds no
// mutable state and is safe for concurrent use.
type Rules struct {
	cfg Config

	// Identifier patterns.
	idCanonical *regexp.Regexp
	idLoose     *regexp.Regexp
	idLabeled   *regexp.Regexp
	idBare      *regexp.Regexp
	fileLabeled *regexp.Regexp
	fileBare    *regexp.Regexp
	passLabeled *regexp.Regexp
	passToken   *regexp.Regexp
	uidLabeled  *regexp.Regexp

	// Attribute patterns.
	nationality   *regexp.Regexp
	genderStrict  *regexp.Regexp
	genderLoose   *regexp.Regexp
	scanArtifact  *regexp.Regexp
	occupation    []*regexp.Regexp
	employer      []*regexp.Regexp
	placeEnum     *regexp.Regexp
	placeOpen     *regexp.Regexp
	familySponsor *regexp.Regexp
	address       *regexp.Regexp

	// Name patterns.
	nameProper  *regexp.Regexp
	nameGreedy  *regexp.Regexp
	nameArabic  *regexp.Regexp
	nameLabel   *regexp.Regexp
	nameCutoff  *regexp.Regexp
	longDigits  *regexp.Regexp
	trailingLbl *regexp.Regexp
	edgeNoise   *regexp.Regexp

	// Visa-specific name patterns, tried in order.
	visaName []*regexp.Regexp

	// Date patterns.
	dateToken   *regexp.Regexp
	birthLabel  *regexp.Regexp
	issueLabel  *regexp.Regexp
	expiryLabel *regexp.Regexp

	// MRZ patterns.
	mrzHeader  *regexp.Regexp
	mrzMachine *regexp.Regexp

	// Locator patterns.
	labelLike *regexp.Regexp
	locator   map[Field]*regexp.Regexp
}

// dateRx matches DD/MM/YYYY and YYYY/MM/DD families with /, - or . as the
// separator; two-digit years are accepted and pivoted during parsing.
const dateRx = `(\d{4}[/\-.]\d{1,2}[/\-.]\d{1,2}|\d{1,2}[/\-.]\d{1,2}[/\-.]\d{2,4})`

// NewRules compiles the full pattern table for the given configuration.
func NewRules(cfg Config) (*Rules, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("extraction config: %w", err)
	}
	r := &Rules{
		cfg: cfg,

		idCanonical: regexp.MustCompile(`\b\d{3}-\d{4}-\d{7}-\d\b`),
		idLoose:     regexp.MustCompile(`784[\s-]?(\d{4})[\s-]?(\d{7})[\s-]?(\d)`),
		idLabeled:   regexp.MustCompile(`(?i)(?:ID\s*Number|ID\s*No\.?|رقم الهوية)\s*[:\-]?\s*([0-9\-]{10,25})`),
		idBare:      regexp.MustCompile(`\b784\d{9,12}\b`),
		fileLabeled: regexp.MustCompile(`(?i)(?:File\s*Number|File\s*No\.?|رقم الملف)\s*[:\-]?\s*([0-9/\-]{8,25})`),
		fileBare:    regexp.MustCompile(`\b\d{3,5}/\d{4}/\d{5,8}\b`),
		passLabeled: regexp.MustCompile(`(?i)(?:Passport\s*No\.?|Passport\s*Number|رقم الجواز)\s*[:\-]?\s*([A-Z0-9]{5,12})`),
		passToken:   regexp.MustCompile(`\b[A-Z][A-Z0-9]{5,11}\b`),
		uidLabeled:  regexp.MustCompile(`(?i)(?:UID\s*(?:No\.?|Number)?|Unified\s*Number|الرقم الموحد)\s*[:\-]?\s*(\d{8,15})`),

		nationality:  regexp.MustCompile(`(?i)(?:Nationality|Nationalit[ey]|الجنسية)\s*[:\-.]?\s*([A-Za-z ()]{2,80})`),
		genderStrict: regexp.MustCompile(`(?i)(?:Sex|Gender|الجنس)\s*[:\-]?\s*(Male|Female|M|F|ذكر|أنثى)\b`),
		genderLoose:  regexp.MustCompile(`(?i)(?:Sex|Gender|الجنس)\s*[:\-]?\s*([^\n]{1,20})`),
		scanArtifact: regexp.MustCompile(`(?i)SCAN(?:NE|NED|NING)?`),
		occupation: []*regexp.Regexp{
			regexp.MustCompile(`(?i)Occupation\s*[:\-]?\s*([A-Z][a-z]+(?:\s+[A-Z][a-z]+)*)`),
			regexp.MustCompile(`(?i)(?:Occupation|Profession|المهنة|الوظيفة)\s*[:\-]?\s*([^\n]{2,80})`),
		},
		employer: []*regexp.Regexp{
			regexp.MustCompile(`(?i)Employer\s*[:\-]?\s*([A-Z][^\n]{1,80})`),
			regexp.MustCompile(`(?i)(?:Employer|Company|صاحب العمل|الشركة|جهة العمل)\s*[:\-]?\s*([^\n]{2,80})`),
		},
		placeEnum: regexp.MustCompile(`(?i)(?:Issuing\s*Place|Place\s*of\s*Issue|مكان الإصدار|جهة الإصدار)\s*[:\-]?\s*` +
			`(Dubai|Abu Dhabi|Sharjah|Ajman|Umm Al Quwain|Ras Al Khaimah|Fujairah)`),
		placeOpen:     regexp.MustCompile(`(?i)(?:Issuing\s*Place|Place\s*of\s*Issue|مكان الإصدار|جهة الإصدار)\s*[:\-]?\s*([^\n]{2,40})`),
		familySponsor: regexp.MustCompile(`(?i)(?:Family\s*Sponsor|كفالة عائلية|الكفالة)\s*[:\-]?\s*(Yes|No|نعم|لا|Y|N)\b`),
		address:       regexp.MustCompile(`(?i)(?:Address|العنوان)\s*[:\-]?\s*([^\n]{2,140})`),

		nameProper: regexp.MustCompile(`(?i)Name\s*[:\-]?\s*([A-Z][a-z]+(?:\s+[A-Z][a-z]+)+)`),
		nameGreedy: regexp.MustCompile(`(?i)Name\s*[:\-]?\s*([A-Z][^\n]{1,60})`),
		nameArabic: regexp.MustCompile(`(?:الاسم|اسم)\s*[:\-]?\s*([^\n]{2,80})`),
		nameLabel:  regexp.MustCompile(`(?i)^Name\s*[:\-]`),
		nameCutoff: regexp.MustCompile(`(?i)\s+(?:Occupation|Date|Nationality|Expiry|Issuing|Sex|Gender|Employer|Signature)\b.*$`),
		longDigits: regexp.MustCompile(`\d{4,}`),

		trailingLbl: regexp.MustCompile(`(?i)\s+Name\s*$`),
		edgeNoise:   regexp.MustCompile(`^[:\-/|\s]+|[:\-/|\s]+$`),

		visaName: []*regexp.Regexp{
			regexp.MustCompile(`(?i)(?:Passport\s*No\.?|رقم الجواز)[^\n]*\n\s*([A-Z][A-Z ]{8,60})`),
			regexp.MustCompile(`[\x{0600}-\x{06FF} ]+\n\s*([A-Z][A-Z ]{8,60})`),
			regexp.MustCompile(`\b([A-Z]{3,}(?:\s+[A-Z]{3,}){1,3})\b`),
		},

		dateToken:   regexp.MustCompile(dateRx),
		birthLabel:  regexp.MustCompile(`(?i)(?:Date\s*of\s*Birth|DOB|Birth|تاريخ الميلاد)[^\d]{0,12}` + dateRx),
		issueLabel:  regexp.MustCompile(`(?i)(?:Issu(?:e|ing)\s*Date|Date\s*of\s*Issue|تاريخ الإصدار)[^\d]{0,12}` + dateRx),
		expiryLabel: regexp.MustCompile(`(?i)(?:Expiry\s*Date|Expiry|Expires|تاريخ الانتهاء)[^\d]{0,12}` + dateRx),

		mrzHeader:  regexp.MustCompile(`^P[<A][A-Z]{3}`),
		mrzMachine: regexp.MustCompile(`(\d{6})\d([MF])(\d{6})`),

		labelLike: regexp.MustCompile(`^[A-Za-z ]{2,24}\s*:`),
		locator: map[Field]*regexp.Regexp{
			FieldFullName:     regexp.MustCompile(`(?i)Name:?`),
			FieldNationality:  regexp.MustCompile(`(?i)Nationality:?`),
			FieldEmployerName: regexp.MustCompile(`(?i)Employer:?`),
			FieldOccupation:   regexp.MustCompile(`(?i)Occupation:?`),
			FieldSponsorName:  regexp.MustCompile(`(?i)Sponsor:?`),
		},
	}
	return r, nil
}

// MustRules compiles rules from the default configuration.
func MustRules() *Rules {
	r, err := NewRules(DefaultConfig())
	if err != nil {
		panic(err)
	}
	return r
}

// ConfigSnapshot returns a copy of the configuration the rules were built
// from.
func (r *Rules) ConfigSnapshot() Config {
	return r.cfg
}

// nameStopTerms never belong inside a person's name. A candidate line or
// span containing any of them is rejected (or later swap-corrected).
var nameStopTerms = []string{
	"property owner", "occupation", "employer", "sponsor", "investors",
	"entrepreneurs", "specialized", "file", "number", "date", "expiry",
	"issuing", "nationality", "gender", "sex", "male", "female",
	"resident", "identity", "card", "passport", "signature",
	"united", "arab", "emirates", "federal", "authority",
}

// swapTerms flag a name value that is actually an occupation. Kept
// narrower than nameStopTerms so a legitimate surname is never flagged.
var swapTerms = []string{
	"property owner", "occupation", "owner", "employer", "sponsor",
}

// occupationStopTerms must never survive inside occupation, employer or
// sponsor spans; hitting one truncates the candidate.
var occupationStopTerms = regexp.MustCompile(`(?i)\s+(?:Employer|Issuing|Family|Signature|صاحب|مكان)\b.*$`)

// employerStopTerms truncates employer candidates at the next field.
var employerStopTerms = regexp.MustCompile(`(?i)\s+(?:Issuing|Family|Occupation|مكان)\b.*$`)

// nationalityCutoff truncates a nationality span when OCR glued the next
// field onto the same line.
var nationalityCutoff = regexp.MustCompile(`(?i)\s*(?:Signature|Issuing|Date|ID|Sex|Gender|Name|Expiry)\b.*$`)

// placeGarbage lists tokens commonly misread into the issuing-place slot.
var placeGarbage = map[string]bool{
	"file": true, "number": true, "num": true, "no": true, "yes": true,
}
