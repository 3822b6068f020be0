// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package manifest persists a record of every completed download in a SQLite
// database under the data directory. The manifest is a log, not a cache:
// nothing consults it to decide whether to re-download, so repeating a fetch
// still re-downloads and overwrites the local file.
package manifest

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"go.yaml.in/yaml/v3"

	"github.com/roshkjr/pdbefetch/pkg/types"
)

const (
	indexDir = "index"
	dbFile   = "manifest.db"
)

// Store manages the fetch manifest SQLite database.
type Store struct {
	db         *sql.DB
	maxResults int
}

// NewStore opens or creates the manifest database at
// <data-dir>/index/manifest.db, creating the schema if needed.
func NewStore(cfg types.ManifestConfig) (*Store, error) {
	dataDir := cfg.DataDir
	if dataDir == "" {
		dataDir = "data"
	}
	dbDir := filepath.Join(dataDir, indexDir)
	if err := os.MkdirAll(dbDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating index directory: %w", err)
	}

	dbPath := filepath.Join(dbDir, dbFile)
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	maxResults := cfg.MaxResults
	if maxResults <= 0 {
		maxResults = 50
	}

	s := &Store{db: db, maxResults: maxResults}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS fetches (
			id TEXT NOT NULL,
			kind TEXT NOT NULL,
			category TEXT,
			source_url TEXT,
			path TEXT,
			size INTEGER,
			fetched_at TEXT,
			PRIMARY KEY (id, kind)
		)`,
		`CREATE INDEX IF NOT EXISTS idx_fetches_kind ON fetches(kind)`,
	}
	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// Record upserts one download. A repeated fetch of the same identifier and
// kind replaces the previous row, matching the overwrite-on-disk behavior.
func (s *Store) Record(ctx context.Context, rec types.FetchRecord) error {
	if rec.ID == "" {
		return fmt.Errorf("empty record identifier")
	}
	fetchedAt := rec.FetchedAt
	if fetchedAt.IsZero() {
		fetchedAt = time.Now().UTC()
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO fetches (id, kind, category, source_url, path, size, fetched_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(id, kind) DO UPDATE SET
			category=excluded.category, source_url=excluded.source_url,
			path=excluded.path, size=excluded.size, fetched_at=excluded.fetched_at`,
		rec.ID, string(rec.Kind), rec.Category, rec.SourceURL, rec.Path,
		rec.Size, fetchedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("recording fetch %s: %w", rec.ID, err)
	}
	return nil
}

// List returns the most recent downloads, newest first, up to the store's
// configured maximum.
func (s *Store) List(ctx context.Context) ([]types.FetchRecord, error) {
	return s.list(ctx, s.maxResults)
}

// list queries downloads newest first. A limit of -1 means no limit.
func (s *Store) list(ctx context.Context, limit int) ([]types.FetchRecord, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, kind, category, source_url, path, size, fetched_at
		 FROM fetches ORDER BY fetched_at DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("querying manifest: %w", err)
	}
	defer rows.Close()

	var records []types.FetchRecord
	for rows.Next() {
		var rec types.FetchRecord
		var kind, fetchedAt string
		if err := rows.Scan(&rec.ID, &kind, &rec.Category, &rec.SourceURL,
			&rec.Path, &rec.Size, &fetchedAt); err != nil {
			return nil, fmt.Errorf("scanning manifest row: %w", err)
		}
		rec.Kind = types.FetchKind(kind)
		if t, parseErr := time.Parse(time.RFC3339Nano, fetchedAt); parseErr == nil {
			rec.FetchedAt = t
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

// ExportYAML writes the full manifest to w as a YAML document.
func (s *Store) ExportYAML(ctx context.Context, w io.Writer) error {
	records, err := s.list(ctx, -1)
	if err != nil {
		return err
	}
	doc := struct {
		Fetches []types.FetchRecord `yaml:"fetches"`
	}{Fetches: records}

	data, err := yaml.Marshal(doc)
	if err != nil {
		return fmt.Errorf("marshaling manifest: %w", err)
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("writing manifest: %w", err)
	}
	return nil
}
