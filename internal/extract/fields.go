package extract

// Field names the closed set of values the extraction core can produce.
// Absence of a field in a Result means "not found", never an error.
type Field string

const (
	FieldIDNumber       Field = "id_number"
	FieldFullName       Field = "full_name"
	FieldDateOfBirth    Field = "date_of_birth"
	FieldIssuingDate    Field = "issuing_date"
	FieldExpiryDate     Field = "expiry_date"
	FieldNationality    Field = "nationality"
	FieldGender         Field = "gender"
	FieldOccupation     Field = "occupation"
	FieldEmployerName   Field = "employer_name"
	FieldSponsorName    Field = "sponsor_name"
	FieldIssuingPlace   Field = "issuing_place"
	FieldFileNumber     Field = "file_number"
	FieldPassportNumber Field = "passport_number"
	FieldUIDNumber      Field = "uid_number"
	FieldFamilySponsor  Field = "family_sponsor"
	FieldAddress        Field = "address"
)

// Result accumulates extracted field values. Extractors fill it
// incrementally: Set only writes unset fields, Override replaces under a
// documented precedence rule (e.g. back-of-card values beating a
// front-side guess).
type Result map[Field]string

// Set stores value for field if the field is still unset and the value is
// non-empty. It reports whether the value was stored.
func (r Result) Set(field Field, value string) bool {
	if value == "" {
		return false
	}
	if _, ok := r[field]; ok {
		return false
	}
	r[field] = value
	return true
}

// Override unconditionally replaces the field's value; empty values are
// still ignored so an extractor can never blank out an earlier find.
func (r Result) Override(field Field, value string) {
	if value == "" {
		return
	}
	r[field] = value
}

// Get returns the value for field and whether it is present.
func (r Result) Get(field Field) (string, bool) {
	v, ok := r[field]
	return v, ok
}

// Has reports whether the field carries a value.
func (r Result) Has(field Field) bool {
	_, ok := r[field]
	return ok
}

// Merge copies all fields from other into r. With override set, other's
// values win on collision; otherwise existing values are kept.
func (r Result) Merge(other Result, override bool) {
	for f, v := range other {
		if override {
			r.Override(f, v)
		} else {
			r.Set(f, v)
		}
	}
}
