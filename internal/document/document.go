package document

import (
	"fmt"

	"github.com/gulftech/idparse/internal/extract"
)

// Type names a supported identity document layout.
type Type string

const (
	// TypeIDFront is the front face of a national identity card.
	TypeIDFront Type = "id_front"
	// TypeIDBack is the back face of a national identity card.
	TypeIDBack Type = "id_back"
	// TypeID is a two-sided identity card scanned as one corpus.
	TypeID Type = "id"
	// TypePassport is a passport data page.
	TypePassport Type = "passport"
	// TypeVisa is a residence visa page.
	TypeVisa Type = "visa"
)

// AllTypes lists every supported document type.
func AllTypes() []Type {
	return []Type{TypeIDFront, TypeIDBack, TypeID, TypePassport, TypeVisa}
}

// ParseType validates a document type string from user input.
func ParseType(s string) (Type, error) {
	for _, t := range AllTypes() {
		if string(t) == s {
			return t, nil
		}
	}
	return "", fmt.Errorf("unknown document type %q (valid: id_front, id_back, id, passport, visa)", s)
}

// expectedFields lists the fields a document type is expected to carry.
// The orchestrator's Complete flag is true only when every one of them
// was resolved.
var expectedFields = map[Type][]extract.Field{
	TypeIDFront: {
		extract.FieldIDNumber, extract.FieldFullName, extract.FieldDateOfBirth,
		extract.FieldExpiryDate, extract.FieldNationality, extract.FieldGender,
	},
	TypeIDBack: {
		extract.FieldOccupation, extract.FieldEmployerName, extract.FieldIssuingPlace,
	},
	TypeID: {
		extract.FieldIDNumber, extract.FieldFullName, extract.FieldDateOfBirth,
		extract.FieldExpiryDate, extract.FieldNationality, extract.FieldGender,
		extract.FieldOccupation, extract.FieldEmployerName, extract.FieldIssuingPlace,
	},
	TypePassport: {
		extract.FieldPassportNumber, extract.FieldFullName, extract.FieldDateOfBirth,
		extract.FieldExpiryDate, extract.FieldNationality, extract.FieldGender,
	},
	TypeVisa: {
		extract.FieldIDNumber, extract.FieldFileNumber, extract.FieldPassportNumber,
		extract.FieldFullName, extract.FieldIssuingDate, extract.FieldExpiryDate,
	},
}

// Expected returns the fields a document type should carry.
func Expected(t Type) []extract.Field {
	return expectedFields[t]
}
