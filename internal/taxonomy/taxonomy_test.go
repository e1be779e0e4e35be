package taxonomy

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fixtureCSV = `canonical,category,aliases
Python,language,"py, python3"
SQL,language,"structured query language"
AWS,cloud,"amazon web services, amazon-aws"
Machine Learning,ml,"ml, machine-learning"
C++,language,"cpp"
`

func parseFixture(t *testing.T) *Taxonomy {
	t.Helper()
	tax, err := Parse(strings.NewReader(fixtureCSV))
	require.NoError(t, err)
	return tax
}

func TestParse_BuildsAliasTable(t *testing.T) {
	tax := parseFixture(t)

	assert.Equal(t, 5, tax.Size())

	id, ok := tax.Resolve("py")
	require.True(t, ok)
	assert.Equal(t, "python", id)

	id, ok = tax.Resolve("Amazon Web Services")
	require.True(t, ok)
	assert.Equal(t, "aws", id)

	// Canonical names resolve to themselves.
	id, ok = tax.Resolve("Python")
	require.True(t, ok)
	assert.Equal(t, "python", id)
}

func TestParse_AmbiguousAliasFailsAtLoad(t *testing.T) {
	csv := `canonical,category,aliases
Python,language,"py"
Pytorch,ml,"py"
`
	_, err := Parse(strings.NewReader(csv))
	require.Error(t, err)

	var ambiguous *AmbiguousAliasError
	require.ErrorAs(t, err, &ambiguous)
	assert.Equal(t, "py", ambiguous.Alias)
}

func TestParse_MissingCanonicalColumn(t *testing.T) {
	_, err := Parse(strings.NewReader("name,aliases\nPython,py\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "canonical")
}

func TestFoldTerm(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"lowercases", "Python", "python"},
		{"strips whitespace", "  machine learning  ", "machinelearning"},
		{"strips separators", "machine-learning", "machinelearning"},
		{"keeps plus", "C++", "c++"},
		{"keeps hash", "C#", "c#"},
		{"keeps dot", ".NET", ".net"},
		{"empty", "   ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FoldTerm(tt.input))
		})
	}
}

func TestLabel_FallsBackToID(t *testing.T) {
	tax := parseFixture(t)

	assert.Equal(t, "Machine Learning", tax.Label("machinelearning"))
	assert.Equal(t, "unknown-skill", tax.Label("unknown-skill"))
}

func TestNormalize_ResolvesAliasesAndDropsUnknown(t *testing.T) {
	norm := NewNormalizer(parseFixture(t))

	ids, unknown := norm.Normalize([]string{"py", "Structured Query Language", "cobol", "PYTHON"})
	assert.Equal(t, []string{"python", "sql"}, ids)
	assert.Equal(t, 1, unknown)
	assert.Equal(t, int64(1), norm.UnknownTermCount())
}

func TestNormalize_IdempotentOnCanonicalIDs(t *testing.T) {
	norm := NewNormalizer(parseFixture(t))

	once, unknown := norm.Normalize([]string{"python", "sql", "aws"})
	require.Equal(t, 0, unknown)

	twice, unknown := norm.Normalize(once)
	assert.Equal(t, 0, unknown)
	assert.Equal(t, once, twice)
}

func TestNormalize_EmptyTermsIgnored(t *testing.T) {
	norm := NewNormalizer(parseFixture(t))

	ids, unknown := norm.Normalize([]string{"", "   ", "-"})
	assert.Empty(t, ids)
	assert.Equal(t, 0, unknown)
}
