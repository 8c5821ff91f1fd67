package extract

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gulftech/idparse/internal/corpus"
)

func TestParseDateToken(t *testing.T) {
	r := MustRules()

	cases := []struct {
		tok  string
		want string
		ok   bool
	}{
		{"10/05/1985", "1985-05-10", true},
		{"1985/05/10", "1985-05-10", true},
		{"10-05-1985", "1985-05-10", true},
		{"10.05.1985", "1985-05-10", true},
		{"05/06/21", "2021-06-05", true},
		{"05/06/85", "1985-06-05", true},
		{"31/02/2020", "", false},
		{"10/13/2020", "", false},
		{"10/05/1949", "", false},
		{"10/05/2101", "", false},
	}
	for _, tc := range cases {
		t.Run(tc.tok, func(t *testing.T) {
			when, ok := r.parseDateToken(tc.tok)
			assert.Equal(t, tc.ok, ok)
			if tc.ok {
				assert.Equal(t, tc.want, when.Format(CanonicalDateFormat))
			}
		})
	}
}

func TestCollectDateCandidates(t *testing.T) {
	r := MustRules()

	t.Run("dedupes across separators", func(t *testing.T) {
		got := r.CollectDateCandidates("10/05/1985 and again 10-05-1985", nil)
		require.Len(t, got, 1)
		assert.Equal(t, "1985-05-10", got[0].When.Format(CanonicalDateFormat))
	})

	t.Run("excluded identifier regions are skipped", func(t *testing.T) {
		text := "serial 12/05/2021 valid until 01/01/2030"
		got := r.CollectDateCandidates(text, []string{"12/05/2021"})
		require.Len(t, got, 1)
		assert.Equal(t, "2030-01-01", got[0].When.Format(CanonicalDateFormat))
	})

	t.Run("invalid tokens dropped silently", func(t *testing.T) {
		got := r.CollectDateCandidates("31/02/2020 nothing else", nil)
		assert.Empty(t, got)
	})
}

func TestResolveDatesChronological(t *testing.T) {
	r := MustRules()
	c := corpus.New("10/05/1985 02/01/2020 02/01/2030")

	got := r.ResolveDates(c, nil, true)

	assert.Equal(t, "1985-05-10", got.Birth, "earliest date is the birth date")
	assert.Equal(t, "2020-01-02", got.Issue, "interior date is the issuing date")
	assert.Equal(t, "2030-01-02", got.Expiry, "latest date is the expiry date")
}

func TestResolveDatesLabeled(t *testing.T) {
	r := MustRules()
	c := corpus.New("Date of Birth: 15/06/1990\nIssue Date: 01/02/2021\nExpiry Date: 01/02/2031")

	got := r.ResolveDates(c, nil, true)

	assert.Equal(t, "1990-06-15", got.Birth)
	assert.Equal(t, "2021-02-01", got.Issue)
	assert.Equal(t, "2031-02-01", got.Expiry)
}

func TestResolveDatesTwoWithoutBirth(t *testing.T) {
	r := MustRules()
	c := corpus.New("01/02/2020 01/02/2030")

	got := r.ResolveDates(c, nil, false)

	assert.Empty(t, got.Birth)
	assert.Equal(t, "2020-02-01", got.Issue)
	assert.Equal(t, "2030-02-01", got.Expiry)
}

func TestResolveDatesWithoutBirthSkipsOldDates(t *testing.T) {
	r := MustRules()
	c := corpus.New("RESIDENCE VISA\n10/05/1985\n05/03/2022\n05/03/2024")

	got := r.ResolveDates(c, nil, false)

	assert.Empty(t, got.Birth)
	assert.Equal(t, "2022-03-05", got.Issue, "earliest plausible date is the issuing date")
	assert.Equal(t, "2024-03-05", got.Expiry)
}

func TestResolveDatesWithoutBirthDropsLabeledBirth(t *testing.T) {
	r := MustRules()
	c := corpus.New("Date of Birth: 15/06/2001\n05/03/2022")

	got := r.ResolveDates(c, nil, false)

	assert.Empty(t, got.Birth)
	assert.Empty(t, got.Issue, "the birth date must not fill the issuing role")
	assert.Equal(t, "2022-03-05", got.Expiry)
}

func TestResolveDatesSingleDate(t *testing.T) {
	r := MustRules()
	c := corpus.New("10/05/1985")

	got := r.ResolveDates(c, nil, true)

	assert.Equal(t, "1985-05-10", got.Birth)
	assert.Empty(t, got.Issue)
	assert.Empty(t, got.Expiry)
}

func TestResolveDatesEmpty(t *testing.T) {
	r := MustRules()

	got := r.ResolveDates(corpus.New("no dates anywhere"), nil, true)

	assert.Equal(t, DateAssignment{}, got)
}

func TestResolveDatesDeterministic(t *testing.T) {
	r := MustRules()
	c := corpus.New("Expiry Date: 01/02/2031\n10/05/1985 15/03/2022")

	first := r.ResolveDates(c, nil, true)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, r.ResolveDates(c, nil, true))
	}
	assert.Equal(t, "2031-02-01", first.Expiry)
	assert.Equal(t, "1985-05-10", first.Birth)
	assert.Equal(t, "2022-03-15", first.Issue)
}

func TestCanonicalDateFormatRoundTrip(t *testing.T) {
	when, err := time.Parse(CanonicalDateFormat, "1985-05-10")
	require.NoError(t, err)
	assert.Equal(t, "1985-05-10", when.Format(CanonicalDateFormat))
}
