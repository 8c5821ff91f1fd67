package document

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gulftech/idparse/internal/corpus"
	"github.com/gulftech/idparse/internal/extract"
	"github.com/gulftech/idparse/internal/testutil"
)

func newTestExtractor(t *testing.T) *Extractor {
	t.Helper()
	e, err := NewBuilder().
		WithClock(func() time.Time { return time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC) }).
		Build()
	require.NoError(t, err)
	return e
}

func TestExtractIDFront(t *testing.T) {
	e := newTestExtractor(t)

	res, err := e.Extract(TypeIDFront, corpus.New(testutil.IDFrontText))
	require.NoError(t, err)

	want := map[extract.Field]string{
		extract.FieldIDNumber:    "784-1985-1234567-1",
		extract.FieldFullName:    "John Michael Smith",
		extract.FieldDateOfBirth: "1985-05-10",
		extract.FieldIssuingDate: "2020-01-02",
		extract.FieldExpiryDate:  "2030-01-02",
		extract.FieldNationality: "India",
		extract.FieldGender:      "Male",
		extract.FieldAddress:     "Al Nahda Street Sharjah",
	}
	for f, v := range want {
		got, ok := res.Fields.Get(f)
		assert.True(t, ok, "field %s missing", f)
		assert.Equal(t, v, got, "field %s", f)
	}
	assert.True(t, res.Complete)
	assert.NotEmpty(t, res.Preview)
}

func TestExtractIDBack(t *testing.T) {
	e := newTestExtractor(t)

	res, err := e.Extract(TypeIDBack, corpus.New(testutil.IDBackText))
	require.NoError(t, err)

	want := map[extract.Field]string{
		extract.FieldOccupation:    "Engineer",
		extract.FieldEmployerName:  "Gulf Trading Company LLC",
		extract.FieldIssuingPlace:  "Dubai",
		extract.FieldFamilySponsor: "No",
		extract.FieldDateOfBirth:   "1985-05-10",
		extract.FieldExpiryDate:    "2030-01-02",
		extract.FieldGender:        "Male",
	}
	for f, v := range want {
		got, ok := res.Fields.Get(f)
		assert.True(t, ok, "field %s missing", f)
		assert.Equal(t, v, got, "field %s", f)
	}
	assert.False(t, res.Fields.Has(extract.FieldSponsorName),
		"digit-heavy locator hits must not land in the sponsor slot")
	assert.True(t, res.Complete)
}

func TestExtractIDBothSides(t *testing.T) {
	e := newTestExtractor(t)

	res, err := e.Extract(TypeID, corpus.New(testutil.IDFrontText, testutil.IDBackText))
	require.NoError(t, err)

	name, _ := res.Fields.Get(extract.FieldFullName)
	assert.Equal(t, "John Michael Smith", name)
	occ, _ := res.Fields.Get(extract.FieldOccupation)
	assert.Equal(t, "Engineer", occ)
	dob, _ := res.Fields.Get(extract.FieldDateOfBirth)
	assert.Equal(t, "1985-05-10", dob)
	assert.True(t, res.Complete)
}

func TestExtractPassport(t *testing.T) {
	e := newTestExtractor(t)

	res, err := e.Extract(TypePassport, corpus.New(testutil.PassportText))
	require.NoError(t, err)

	want := map[extract.Field]string{
		extract.FieldPassportNumber: "N1234567",
		extract.FieldFullName:       "Rahul Kumar Sharma",
		extract.FieldDateOfBirth:    "1990-06-15",
		extract.FieldIssuingDate:    "2021-02-01",
		extract.FieldExpiryDate:     "2031-02-01",
		extract.FieldNationality:    "India",
		extract.FieldGender:         "Male",
	}
	for f, v := range want {
		got, ok := res.Fields.Get(f)
		assert.True(t, ok, "field %s missing", f)
		assert.Equal(t, v, got, "field %s", f)
	}
	assert.True(t, res.Complete)
}

func TestExtractVisa(t *testing.T) {
	e := newTestExtractor(t)

	res, err := e.Extract(TypeVisa, corpus.New(testutil.VisaText))
	require.NoError(t, err)

	want := map[extract.Field]string{
		extract.FieldFileNumber:     "101/2020/1234567",
		extract.FieldIDNumber:       "784-1985-1234567-1",
		extract.FieldPassportNumber: "N1234567",
		extract.FieldUIDNumber:      "123456789",
		extract.FieldFullName:       "Ahmed Hassan Ali",
		extract.FieldSponsorName:    "GULF VENTURES FZE",
		extract.FieldIssuingDate:    "2022-03-05",
		extract.FieldExpiryDate:     "2024-03-05",
	}
	for f, v := range want {
		got, ok := res.Fields.Get(f)
		assert.True(t, ok, "field %s missing", f)
		assert.Equal(t, v, got, "field %s", f)
	}
	assert.False(t, res.Fields.Has(extract.FieldDateOfBirth),
		"visas carry no birth date")
	assert.True(t, res.Complete)
}

func TestExtractNilCorpus(t *testing.T) {
	e := newTestExtractor(t)

	_, err := e.Extract(TypeIDFront, nil)
	assert.ErrorIs(t, err, ErrNilCorpus)
}

func TestExtractEmptyCorpus(t *testing.T) {
	e := newTestExtractor(t)

	res, err := e.Extract(TypeIDFront, corpus.New(""))
	require.NoError(t, err)
	assert.Empty(t, res.Fields)
	assert.False(t, res.Complete)
}

func TestExtractNoFabrication(t *testing.T) {
	e := newTestExtractor(t)

	res, err := e.Extract(TypeIDFront, corpus.New("lorem\nipsum\n12345"))
	require.NoError(t, err)
	assert.Empty(t, res.Fields, "garbage input must not yield fields")
	assert.False(t, res.Complete)
}

func TestExtractDeterminism(t *testing.T) {
	e := newTestExtractor(t)
	c := corpus.New(testutil.VisaText)

	first, err := e.Extract(TypeVisa, c)
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		again, err := e.Extract(TypeVisa, c)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestExtractPayload(t *testing.T) {
	e := newTestExtractor(t)

	t.Run("success", func(t *testing.T) {
		res, err := e.ExtractPayload(TypeIDFront, corpus.OCRPayload{Text: testutil.IDFrontText})
		require.NoError(t, err)
		assert.True(t, res.Fields.Has(extract.FieldIDNumber))
	})

	t.Run("upstream failure propagates with no extraction", func(t *testing.T) {
		_, err := e.ExtractPayload(TypeIDFront, corpus.OCRPayload{Text: testutil.IDFrontText, Code: 2})
		assert.ErrorIs(t, err, corpus.ErrUpstream)
	})
}

func TestBuilderValidation(t *testing.T) {
	_, err := NewBuilder().WithYearRange(2100, 1950).Build()
	assert.Error(t, err)

	_, err = NewBuilder().WithMinValueLength(0).Build()
	assert.Error(t, err)
}
