package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResultSet(t *testing.T) {
	res := Result{}

	assert.True(t, res.Set(FieldFullName, "John Smith"))
	assert.False(t, res.Set(FieldFullName, "Other Name"), "set never replaces")
	assert.False(t, res.Set(FieldGender, ""), "empty values are never stored")

	name, ok := res.Get(FieldFullName)
	assert.True(t, ok)
	assert.Equal(t, "John Smith", name)
	assert.False(t, res.Has(FieldGender))
}

func TestResultOverride(t *testing.T) {
	res := Result{FieldFullName: "John Smith"}

	res.Override(FieldFullName, "Jane Doe")
	name, _ := res.Get(FieldFullName)
	assert.Equal(t, "Jane Doe", name)

	res.Override(FieldFullName, "")
	name, _ = res.Get(FieldFullName)
	assert.Equal(t, "Jane Doe", name, "override ignores empty values")
}

func TestResultMerge(t *testing.T) {
	front := Result{FieldFullName: "Front Name", FieldGender: "Male"}
	back := Result{FieldFullName: "Back Name", FieldOccupation: "Engineer"}

	merged := Result{}
	merged.Merge(front, false)
	merged.Merge(back, true)

	name, _ := merged.Get(FieldFullName)
	assert.Equal(t, "Back Name", name, "override merge wins on collision")
	assert.True(t, merged.Has(FieldGender))
	assert.True(t, merged.Has(FieldOccupation))
}
