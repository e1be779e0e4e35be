package catalog

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jonathan/talent-matcher/internal/types"
)

// Store wraps a PostgreSQL connection pool holding the catalog.
type Store struct {
	pool *pgxpool.Pool
}

// Connect establishes a connection pool to the catalog database.
func Connect(ctx context.Context, databaseURL string) (*Store, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Verify connection
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &Store{pool: pool}, nil
}

// Close closes the connection pool.
func (s *Store) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// LoadEntries fetches every catalog entry. Skills and embeddings are
// stored as JSONB and decoded into the entry types.
func (s *Store) LoadEntries(ctx context.Context) ([]types.CatalogEntry, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT id, kind, title, skills, description, embedding,
		        seniority, domain, location, provider, level, hours
		 FROM catalog_entries
		 ORDER BY id`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query catalog entries: %w", err)
	}
	defer rows.Close()

	var entries []types.CatalogEntry
	for rows.Next() {
		var (
			entry         types.CatalogEntry
			skillsJSON    []byte
			embeddingJSON []byte
			description   *string
			seniority     *string
			domain        *string
			location      *string
			provider      *string
			level         *string
			hours         *int
		)
		if err := rows.Scan(&entry.ID, &entry.Kind, &entry.Title, &skillsJSON,
			&description, &embeddingJSON, &seniority, &domain, &location,
			&provider, &level, &hours); err != nil {
			return nil, fmt.Errorf("failed to scan catalog entry: %w", err)
		}

		if len(skillsJSON) > 0 {
			if err := json.Unmarshal(skillsJSON, &entry.Skills); err != nil {
				return nil, fmt.Errorf("failed to decode skills for %s: %w", entry.ID, err)
			}
		}
		if len(embeddingJSON) > 0 {
			if err := json.Unmarshal(embeddingJSON, &entry.Embedding); err != nil {
				return nil, fmt.Errorf("failed to decode embedding for %s: %w", entry.ID, err)
			}
		}
		if description != nil {
			entry.Description = *description
		}
		if seniority != nil {
			entry.Seniority = types.SeniorityLevel(*seniority)
		}
		if domain != nil {
			entry.Domain = *domain
		}
		if location != nil {
			entry.Location = *location
		}
		if provider != nil {
			entry.Provider = *provider
		}
		if level != nil {
			entry.Level = *level
		}
		if hours != nil {
			entry.Hours = *hours
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read catalog entries: %w", err)
	}
	return entries, nil
}

// SaveEntry upserts a single catalog entry, replacing any previous row
// with the same ID.
func (s *Store) SaveEntry(ctx context.Context, entry types.CatalogEntry) error {
	skillsJSON, err := json.Marshal(entry.Skills)
	if err != nil {
		return fmt.Errorf("failed to marshal skills for %s: %w", entry.ID, err)
	}
	embeddingJSON, err := json.Marshal(entry.Embedding)
	if err != nil {
		return fmt.Errorf("failed to marshal embedding for %s: %w", entry.ID, err)
	}

	_, err = s.pool.Exec(ctx,
		`INSERT INTO catalog_entries
		   (id, kind, title, skills, description, embedding,
		    seniority, domain, location, provider, level, hours)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		 ON CONFLICT (id) DO UPDATE SET
		   kind = $2, title = $3, skills = $4, description = $5,
		   embedding = $6, seniority = $7, domain = $8, location = $9,
		   provider = $10, level = $11, hours = $12, updated_at = NOW()`,
		entry.ID, entry.Kind, entry.Title, skillsJSON, entry.Description,
		embeddingJSON, entry.Seniority, entry.Domain, entry.Location,
		entry.Provider, entry.Level, entry.Hours,
	)
	if err != nil {
		return fmt.Errorf("failed to save catalog entry %s: %w", entry.ID, err)
	}
	return nil
}
