package textutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeLines_Basic(t *testing.T) {
	in := "  Name:   John  Smith \r\nNationality:\tIndia  \r"
	out := NormalizeLines(in)
	assert.Equal(t, "Name: John Smith\nNationality: India", out)
}

func TestNormalizeLines_Empty(t *testing.T) {
	assert.Empty(t, NormalizeLines(""))
	assert.Empty(t, NormalizeLines("  \r\n \t \n"))
}

func TestNormalizeLines_DropsBlankLines(t *testing.T) {
	out := NormalizeLines("a\n\n\n b \n\n")
	assert.Equal(t, "a\nb", out)
}

func TestNormalizeLines_Idempotent(t *testing.T) {
	inputs := []string{
		"",
		"plain text",
		"  Name:   John  Smith \r\nNationality:\tIndia  \r",
		"a\n\n\n b \n\n",
		"784-1990-1234567-1\nDate of Birth 10/05/1985",
	}
	for _, in := range inputs {
		once := NormalizeLines(in)
		assert.Equal(t, once, NormalizeLines(once), "input %q", in)
	}
}

func TestNormalizeFlat(t *testing.T) {
	out := NormalizeFlat("  Name: John\r\nSmith \t 784 ")
	assert.Equal(t, "Name: John Smith 784", out)
	assert.Empty(t, NormalizeFlat("   \n \r "))
}

func TestNormalizeFlat_Idempotent(t *testing.T) {
	in := "a \n b\r\n  c"
	once := NormalizeFlat(in)
	assert.Equal(t, once, NormalizeFlat(once))
}

func TestSplitLines(t *testing.T) {
	lines := SplitLines("Name: John\r\n\r\n Occupation: Engineer ")
	assert.Equal(t, []string{"Name: John", "Occupation: Engineer"}, lines)
	assert.Nil(t, SplitLines(""))
}
