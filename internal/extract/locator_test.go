package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocateLabelValueSameLine(t *testing.T) {
	r := MustRules()

	val, ok := r.LocateField([]string{"header", "Sponsor: ACME VENTURES", "footer"}, FieldSponsorName)
	require.True(t, ok)
	assert.Equal(t, "ACME VENTURES", val)
}

func TestLocateLabelValueNextLine(t *testing.T) {
	r := MustRules()

	val, ok := r.LocateField([]string{"Sponsor:", "ACME VENTURES"}, FieldSponsorName)
	require.True(t, ok)
	assert.Equal(t, "ACME VENTURES", val)
}

func TestLocateLabelValueSkipsFollowingLabel(t *testing.T) {
	r := MustRules()

	_, ok := r.LocateField([]string{"Sponsor:", "Occupation: Engineer"}, FieldSponsorName)
	assert.False(t, ok, "a label-shaped next line is not a value")
}

func TestLocateLabelValueStopsAtFirstOccurrence(t *testing.T) {
	r := MustRules()

	// The first Sponsor label has no usable value; the scan does not
	// continue to the second occurrence.
	_, ok := r.LocateField([]string{"Sponsor:", "Employer: X", "Sponsor: ACME VENTURES"}, FieldSponsorName)
	assert.False(t, ok)
}

func TestLocateLabelValueMinLength(t *testing.T) {
	r := MustRules()

	_, ok := r.LocateField([]string{"Sponsor: AB"}, FieldSponsorName)
	assert.False(t, ok, "values below the minimum length are rejected")
}

func TestLocateFieldUnregistered(t *testing.T) {
	r := MustRules()

	_, ok := r.LocateField([]string{"ID Number: 784-1980-1234567-1"}, FieldIDNumber)
	assert.False(t, ok)
}
