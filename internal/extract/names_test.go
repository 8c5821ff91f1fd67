package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gulftech/idparse/internal/corpus"
)

func TestFullNameLabeled(t *testing.T) {
	r := MustRules()
	c := corpus.New("Name: John Michael Smith\nNationality: India")

	name, ok := r.FullName(c)
	require.True(t, ok)
	assert.Equal(t, "John Michael Smith", name)
}

func TestFullNameMergesContinuationLines(t *testing.T) {
	r := MustRules()
	c := corpus.New("Name: MOHAMMED ABDULLA\nAL MAKTOUM\nNationality: United Arab Emirates")

	name, ok := r.FullName(c)
	require.True(t, ok)
	assert.Equal(t, "MOHAMMED ABDULLA AL MAKTOUM", name)
}

func TestFullNameLookBehind(t *testing.T) {
	r := MustRules()
	c := corpus.New("ABDUL RAHMAN\nName: HASSAN ALI\nSex: M")

	name, ok := r.FullName(c)
	require.True(t, ok)
	assert.Equal(t, "ABDUL RAHMAN HASSAN ALI", name)
}

func TestFullNameLookBehindSingleWord(t *testing.T) {
	// A lone surname above the labeled line merges the same way a
	// single-word continuation line below it would.
	r := MustRules()
	c := corpus.New("ALMAKTOUM\nName: HASSAN ALI\nSex: M")

	name, ok := r.FullName(c)
	require.True(t, ok)
	assert.Equal(t, "ALMAKTOUM HASSAN ALI", name)
}

func TestFullNameBlockScanWithoutLabel(t *testing.T) {
	r := MustRules()
	c := corpus.New("JAMES EDWARD\nCLOUGH\nOccupation: Engineer")

	name, ok := r.FullName(c)
	require.True(t, ok)
	assert.Equal(t, "JAMES EDWARD CLOUGH", name)
}

func TestFullNameFromMRZ(t *testing.T) {
	r := MustRules()
	c := corpus.New("784-1980-1234567-1\nP<ARESMITH<<JOHN<MICHAEL<<<<<<<<<<<<<<<<<<<<")

	name, ok := r.FullName(c)
	require.True(t, ok)
	assert.Equal(t, "JOHN MICHAEL SMITH", name)
}

func TestFullNameKeepsContaminatedLabelValue(t *testing.T) {
	// A name slot holding occupation terms is returned as-is; the
	// swap-correction pass decides what to do with it afterwards.
	r := MustRules()
	c := corpus.New("Name: Property Owner\nOccupation: John Michael Smith")

	name, ok := r.FullName(c)
	require.True(t, ok)
	assert.Equal(t, "Property Owner", name)
}

func TestReconcileNameOccupationSwap(t *testing.T) {
	res := Result{
		FieldFullName:   "Property Owner",
		FieldOccupation: "John Michael Smith",
	}

	ReconcileNameOccupation(res)

	name, _ := res.Get(FieldFullName)
	occ, _ := res.Get(FieldOccupation)
	assert.Equal(t, "John Michael Smith", name)
	assert.Equal(t, "Property Owner", occ)
}

func TestReconcileNameOccupationDropsWithoutPartner(t *testing.T) {
	res := Result{FieldFullName: "Property Owner"}

	ReconcileNameOccupation(res)

	assert.False(t, res.Has(FieldFullName), "a contaminated name with no swap partner is dropped")
}

func TestReconcileNameOccupationLeavesCleanNames(t *testing.T) {
	res := Result{
		FieldFullName:   "John Michael Smith",
		FieldOccupation: "Engineer",
	}

	ReconcileNameOccupation(res)

	name, _ := res.Get(FieldFullName)
	occ, _ := res.Get(FieldOccupation)
	assert.Equal(t, "John Michael Smith", name)
	assert.Equal(t, "Engineer", occ)
}

func TestDisplayName(t *testing.T) {
	assert.Equal(t, "James Edward Clough", DisplayName("JAMES EDWARD CLOUGH"))
	assert.Equal(t, "John Smith", DisplayName("John Smith"), "mixed case passes through")
	assert.Equal(t, "CLOUGH", DisplayName("CLOUGH"), "single words pass through")
}

func TestNameLike(t *testing.T) {
	r := MustRules()

	assert.True(t, r.nameLike("JAMES EDWARD"))
	assert.True(t, r.nameLike("Abdul Rahman"))
	assert.False(t, r.nameLike("784-1980"))
	assert.False(t, r.nameLike("Occupation: Engineer"))
	assert.False(t, r.nameLike(""))
}
