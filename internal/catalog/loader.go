// Package catalog loads role and course entries from JSONL files or
// PostgreSQL into memory for index building.
package catalog

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jonathan/talent-matcher/internal/schemas"
	"github.com/jonathan/talent-matcher/internal/types"
)

// EntrySchemaPath is the schema applied to every catalog line.
const EntrySchemaPath = "schemas/catalog_entry.schema.json"

// LoadError reports a catalog line that failed validation or decoding.
type LoadError struct {
	Path string
	Line int
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("catalog %s line %d: %v", e.Path, e.Line, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// Loader reads JSONL catalog files and validates each line against the
// catalog entry schema before decoding it.
type Loader struct {
	schemaContent string
}

// NewLoader reads the catalog entry schema from disk. The schema path is
// resolved relative to the repository root.
func NewLoader() (*Loader, error) {
	schemaPath := schemas.ResolveSchemaPath(EntrySchemaPath)
	data, err := os.ReadFile(schemaPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog schema: %w", err)
	}
	return &Loader{schemaContent: string(data)}, nil
}

// LoadFile loads all entries from a JSONL file. Blank lines are skipped.
// Any invalid line fails the whole load so a bad catalog never reaches
// the index.
func (l *Loader) LoadFile(path string) ([]types.CatalogEntry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog file: %w", err)
	}
	defer f.Close()

	entries, err := l.load(f, path)
	if err != nil {
		return nil, err
	}
	return entries, nil
}

// LoadFiles loads and concatenates several catalog files, checking that
// entry IDs stay unique across all of them.
func (l *Loader) LoadFiles(paths ...string) ([]types.CatalogEntry, error) {
	var all []types.CatalogEntry
	seen := make(map[string]string)
	for _, path := range paths {
		entries, err := l.LoadFile(path)
		if err != nil {
			return nil, err
		}
		for _, e := range entries {
			if prev, ok := seen[e.ID]; ok {
				return nil, fmt.Errorf("duplicate catalog entry %q in %s (already loaded from %s)", e.ID, path, prev)
			}
			seen[e.ID] = path
		}
		all = append(all, entries...)
	}
	return all, nil
}

func (l *Loader) load(r io.Reader, path string) ([]types.CatalogEntry, error) {
	var entries []types.CatalogEntry
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		if err := schemas.ValidateJSONString(l.schemaContent, line); err != nil {
			return nil, &LoadError{Path: path, Line: lineNo, Err: err}
		}

		var entry types.CatalogEntry
		if err := json.Unmarshal([]byte(line), &entry); err != nil {
			return nil, &LoadError{Path: path, Line: lineNo, Err: err}
		}
		entries = append(entries, entry)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read catalog file %s: %w", path, err)
	}
	return entries, nil
}
