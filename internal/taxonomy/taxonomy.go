// Package taxonomy provides the canonical skill taxonomy and alias resolution.
//
// The taxonomy is loaded once per process from a CSV source with columns
// canonical, category, aliases and is immutable after load. It is safe to
// share across concurrent requests without locking.
package taxonomy

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"
)

// Taxonomy maps alias strings to canonical skill IDs and canonical IDs to
// human-readable labels.
type Taxonomy struct {
	aliasToCanonical map[string]string
	labels           map[string]string
	categories       map[string]string
}

// AmbiguousAliasError indicates a taxonomy-authoring error where one alias
// maps to two different canonical IDs. It is raised at load time, never at
// query time.
type AmbiguousAliasError struct {
	Alias      string
	CanonicalA string
	CanonicalB string
}

func (e *AmbiguousAliasError) Error() string {
	return fmt.Sprintf("ambiguous alias %q maps to both %q and %q", e.Alias, e.CanonicalA, e.CanonicalB)
}

// Load reads a taxonomy CSV file from disk.
func Load(path string) (*Taxonomy, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open taxonomy file %s: %w", path, err)
	}
	defer f.Close()

	tax, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse taxonomy file %s: %w", path, err)
	}
	return tax, nil
}

// Parse reads taxonomy CSV content with a header row of
// canonical,category,aliases. Aliases are comma-separated within the field.
func Parse(r io.Reader) (*Taxonomy, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read taxonomy header: %w", err)
	}

	col := make(map[string]int, len(header))
	for i, name := range header {
		col[strings.ToLower(strings.TrimSpace(name))] = i
	}
	canonicalCol, ok := col["canonical"]
	if !ok {
		return nil, fmt.Errorf("taxonomy is missing required column %q", "canonical")
	}

	tax := &Taxonomy{
		aliasToCanonical: make(map[string]string),
		labels:           make(map[string]string),
		categories:       make(map[string]string),
	}

	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read taxonomy row: %w", err)
		}

		canonical := strings.TrimSpace(field(record, canonicalCol))
		if canonical == "" {
			continue
		}

		id := FoldTerm(canonical)
		tax.labels[id] = canonical
		if c, ok := col["category"]; ok {
			tax.categories[id] = strings.TrimSpace(field(record, c))
		}

		// The canonical name always resolves to itself.
		if err := tax.addAlias(canonical, id); err != nil {
			return nil, err
		}

		if a, ok := col["aliases"]; ok {
			for _, alias := range strings.Split(field(record, a), ",") {
				alias = strings.TrimSpace(alias)
				if alias == "" {
					continue
				}
				if err := tax.addAlias(alias, id); err != nil {
					return nil, err
				}
			}
		}
	}

	return tax, nil
}

func field(record []string, i int) string {
	if i < 0 || i >= len(record) {
		return ""
	}
	return record[i]
}

func (t *Taxonomy) addAlias(alias, canonical string) error {
	key := FoldTerm(alias)
	if key == "" {
		return nil
	}
	if existing, ok := t.aliasToCanonical[key]; ok && existing != canonical {
		return &AmbiguousAliasError{Alias: alias, CanonicalA: existing, CanonicalB: canonical}
	}
	t.aliasToCanonical[key] = canonical
	return nil
}

// Resolve looks up a raw term and returns its canonical skill ID.
// The second return value reports whether the term was recognized.
func (t *Taxonomy) Resolve(term string) (string, bool) {
	id, ok := t.aliasToCanonical[FoldTerm(term)]
	return id, ok
}

// Label returns the human-readable label for a canonical skill ID.
// Unknown IDs return the ID itself so callers never render an empty label.
func (t *Taxonomy) Label(id string) string {
	if label, ok := t.labels[id]; ok {
		return label
	}
	return id
}

// Category returns the category tag for a canonical skill ID, if known.
func (t *Taxonomy) Category(id string) string {
	return t.categories[id]
}

// Size returns the number of canonical skills in the taxonomy.
func (t *Taxonomy) Size() int {
	return len(t.labels)
}

// FoldTerm lowers, trims and strips punctuation and separators from a skill
// term so lookups are insensitive to case and formatting. Characters that
// distinguish real skill names (+ # .) are kept so C++, C# and .NET survive.
func FoldTerm(term string) string {
	var sb strings.Builder
	for _, r := range strings.ToLower(strings.TrimSpace(term)) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			sb.WriteRune(r)
		case r == '+' || r == '#' || r == '.':
			sb.WriteRune(r)
		}
		// Whitespace, hyphens, underscores and other separators are dropped.
	}
	return sb.String()
}
