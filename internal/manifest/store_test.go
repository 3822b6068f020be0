// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package manifest

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roshkjr/pdbefetch/pkg/types"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := NewStore(types.ManifestConfig{DataDir: t.TempDir()})
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestNewStoreCreatesDatabase(t *testing.T) {
	dir := t.TempDir()
	s, err := NewStore(types.ManifestConfig{DataDir: dir})
	require.NoError(t, err)
	defer s.Close()

	_, err = os.Stat(filepath.Join(dir, "index", "manifest.db"))
	assert.NoError(t, err)
}

func TestRecordAndList(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	rec := types.FetchRecord{
		ID:        "ATP",
		Kind:      types.KindLigand,
		Category:  "ccd",
		SourceURL: "http://archive.example/ccd/A/ATP/ATP.cif",
		Path:      "data/ATP.cif",
		Size:      120,
		FetchedAt: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
	}
	require.NoError(t, s.Record(ctx, rec))

	records, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, records, 1)

	got := records[0]
	assert.Equal(t, "ATP", got.ID)
	assert.Equal(t, types.KindLigand, got.Kind)
	assert.Equal(t, "ccd", got.Category)
	assert.Equal(t, rec.SourceURL, got.SourceURL)
	assert.Equal(t, rec.Path, got.Path)
	assert.Equal(t, int64(120), got.Size)
	assert.True(t, got.FetchedAt.Equal(rec.FetchedAt))
}

func TestRecordUpsertsSameIDAndKind(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	first := types.FetchRecord{
		ID: "ATP", Kind: types.KindLigand, Category: "ccd",
		Size: 100, FetchedAt: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
	}
	second := first
	second.Size = 200
	second.FetchedAt = first.FetchedAt.Add(time.Hour)

	require.NoError(t, s.Record(ctx, first))
	require.NoError(t, s.Record(ctx, second))

	records, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, int64(200), records[0].Size)
}

func TestListNewestFirst(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	require.NoError(t, s.Record(ctx, types.FetchRecord{
		ID: "ATP", Kind: types.KindLigand, Category: "ccd", FetchedAt: base,
	}))
	require.NoError(t, s.Record(ctx, types.FetchRecord{
		ID: "1cbs", Kind: types.KindEntry, FetchedAt: base.Add(time.Minute),
	}))

	records, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "1cbs", records[0].ID)
	assert.Equal(t, "ATP", records[1].ID)
}

func TestListRespectsMaxResults(t *testing.T) {
	s, err := NewStore(types.ManifestConfig{DataDir: t.TempDir(), MaxResults: 2})
	require.NoError(t, err)
	defer s.Close()
	ctx := context.Background()

	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	for i, id := range []string{"ATP", "HEM", "NAD"} {
		require.NoError(t, s.Record(ctx, types.FetchRecord{
			ID: id, Kind: types.KindLigand, Category: "ccd",
			FetchedAt: base.Add(time.Duration(i) * time.Minute),
		}))
	}

	records, err := s.List(ctx)
	require.NoError(t, err)
	assert.Len(t, records, 2)
}

func TestRecordEmptyID(t *testing.T) {
	s := newTestStore(t)
	err := s.Record(context.Background(), types.FetchRecord{Kind: types.KindLigand})
	require.Error(t, err)
}

func TestExportYAML(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.Record(ctx, types.FetchRecord{
		ID: "ATP", Kind: types.KindLigand, Category: "ccd",
		Path: "data/ATP.cif", FetchedAt: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
	}))

	var buf bytes.Buffer
	require.NoError(t, s.ExportYAML(ctx, &buf))

	out := buf.String()
	assert.Contains(t, out, "fetches:")
	assert.Contains(t, out, "ATP")
	assert.Contains(t, out, "data/ATP.cif")
}
