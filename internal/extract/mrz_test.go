package extract

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMRZName(t *testing.T) {
	r := MustRules()

	t.Run("standard line", func(t *testing.T) {
		name, ok := r.ParseMRZName("P<ARESMITH<<JOHN<MICHAEL<<<<<<<<<<<<<<<<<<<<")
		require.True(t, ok)
		assert.Equal(t, "SMITH", name.Surname)
		assert.Equal(t, "JOHN MICHAEL", name.Given)
		assert.Equal(t, "JOHN MICHAEL SMITH", name.Full())
	})

	t.Run("filler misread as guillemet", func(t *testing.T) {
		name, ok := r.ParseMRZName("P<ARESMITH««JOHN<<<<")
		require.True(t, ok)
		assert.Equal(t, "SMITH", name.Surname)
		assert.Equal(t, "JOHN", name.Given)
	})

	t.Run("header misread with A filler", func(t *testing.T) {
		name, ok := r.ParseMRZName("PAARESMITH<<JOHN<<<<")
		require.True(t, ok)
		assert.Equal(t, "SMITH", name.Surname)
	})

	t.Run("no separator", func(t *testing.T) {
		_, ok := r.ParseMRZName("SMITH JOHN")
		assert.False(t, ok)
	})

	t.Run("empty", func(t *testing.T) {
		_, ok := r.ParseMRZName("")
		assert.False(t, ok)
	})
}

func TestFindMRZName(t *testing.T) {
	r := MustRules()

	lines := []string{
		"Resident Identity Card",
		"784-1980-1234567-1",
		"P<ARESMITH<<JOHN<MICHAEL<<<<<<<<<<<<<<<<<<<<",
	}
	name, ok := r.FindMRZName(lines)
	require.True(t, ok)
	assert.Equal(t, "JOHN MICHAEL SMITH", name.Full())

	_, ok = r.FindMRZName([]string{"no mrz here", "just text"})
	assert.False(t, ok)
}

func TestFindMRZMachineLine(t *testing.T) {
	r := MustRules()
	now := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)

	t.Run("birth rolls back a century when in the future", func(t *testing.T) {
		data, ok := r.FindMRZMachineLine("8505107M3001022", now)
		require.True(t, ok)
		assert.Equal(t, "1985-05-10", data.BirthDate.Format(CanonicalDateFormat))
		assert.Equal(t, "2030-01-02", data.ExpiryDate.Format(CanonicalDateFormat))
		assert.Equal(t, "Male", data.Gender)
	})

	t.Run("recent birth stays in the current century", func(t *testing.T) {
		data, ok := r.FindMRZMachineLine("0505103F3001022", now)
		require.True(t, ok)
		assert.Equal(t, "2005-05-10", data.BirthDate.Format(CanonicalDateFormat))
		assert.Equal(t, "Female", data.Gender)
	})

	t.Run("impossible date rejected", func(t *testing.T) {
		_, ok := r.FindMRZMachineLine("8513407M3001022", now)
		assert.False(t, ok)
	})

	t.Run("absent", func(t *testing.T) {
		_, ok := r.FindMRZMachineLine("784-1980-1234567-1", now)
		assert.False(t, ok)
	})
}
