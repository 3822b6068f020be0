// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package fetch downloads ligand CIF and entry mmCIF files from the PDBe
// archives and writes them under the local data directory.
package fetch

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"

	"github.com/klauspost/compress/gzip"

	"github.com/roshkjr/pdbefetch/internal/httputil"
	"github.com/roshkjr/pdbefetch/pkg/types"
)

// Ligand downloads the CIF file for a chemical component and writes it to
// <data-dir>/<id>.cif, returning that path.
//
// A missing remote file is not an error: the failure is reported as a
// human-readable message on w naming the identifier and category, and found
// is false. Transport failures (connection refused, timeout) take the same
// reported path. Only local problems — a bad identifier, or a filesystem
// write failure — surface as err.
//
// The data directory must already exist; Ligand does not create it.
func Ligand(client *http.Client, id string, category Category, cfg types.FetchConfig, w io.Writer) (path string, found bool, err error) {
	url, err := LigandURL(cfg.ChemArchiveURL, id, category)
	if err != nil {
		return "", false, err
	}

	resp, err := httputil.Get(client, url, cfg.UserAgent)
	if err != nil {
		fmt.Fprintf(w, "couldn't fetch %s (%s): %v\n", id, category, err)
		return "", false, nil
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		httputil.Drain(resp)
		fmt.Fprintf(w, "couldn't find the file; check that %s and %s are valid, then try again\n", id, category)
		return "", false, nil
	}

	dest := filepath.Join(dataDir(cfg), id+".cif")
	if err := writeAtomic(dest, resp.Body); err != nil {
		return "", false, fmt.Errorf("writing %s: %w", dest, err)
	}
	return dest, true, nil
}

// Entry downloads the gzip-compressed updated mmCIF for a PDB entry,
// decompresses it, and writes the decompressed bytes to
// <data-dir>/<id>_updated.cif, returning that path.
//
// Unlike Ligand, any non-success status or transport failure is returned as
// an error; an entry mmCIF is a required resource and absence is not
// tolerated.
func Entry(client *http.Client, id string, cfg types.FetchConfig) (string, error) {
	if id == "" {
		return "", fmt.Errorf("empty entry identifier")
	}
	url := EntryURL(cfg.EntryArchiveURL, id)

	resp, err := httputil.Get(client, url, cfg.UserAgent)
	if err != nil {
		return "", fmt.Errorf("fetching entry %s: %w", id, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		httputil.Drain(resp)
		return "", fmt.Errorf("HTTP %d from %s", resp.StatusCode, url)
	}

	gz, err := gzip.NewReader(resp.Body)
	if err != nil {
		return "", fmt.Errorf("decompressing entry %s: %w", id, err)
	}
	defer gz.Close()

	dest := filepath.Join(dataDir(cfg), id+"_updated.cif")
	if err := writeAtomic(dest, gz); err != nil {
		return "", fmt.Errorf("writing %s: %w", dest, err)
	}
	return dest, nil
}

func dataDir(cfg types.FetchConfig) string {
	if cfg.DataDir != "" {
		return cfg.DataDir
	}
	return "data"
}

// writeAtomic streams r to destPath using a temporary file in the same
// directory, renaming on success so a failed transfer never leaves a partial
// file at the destination.
func writeAtomic(destPath string, r io.Reader) error {
	tmpFile, err := os.CreateTemp(filepath.Dir(destPath), ".fetch-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpPath := tmpFile.Name()

	_, copyErr := io.Copy(tmpFile, r)
	closeErr := tmpFile.Close()
	if copyErr != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("writing download: %w", copyErr)
	}
	if closeErr != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("closing temp file: %w", closeErr)
	}

	if err := os.Rename(tmpPath, destPath); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("renaming temp file: %w", err)
	}
	return nil
}
