// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// FetchKind distinguishes the two archive surfaces a file can come from.
type FetchKind string

const (
	KindLigand FetchKind = "ligand"
	KindEntry  FetchKind = "entry"
)

// FetchRecord describes one completed download: where the file came from,
// where it landed, and when.
type FetchRecord struct {
	// ID is the archive identifier (a ligand code such as "ATP" or "PRD_000001",
	// or a four-character PDB entry code such as "1cbs").
	ID string `json:"id" yaml:"id"`

	// Kind is the archive surface the file was fetched from.
	Kind FetchKind `json:"kind" yaml:"kind"`

	// Category is the ligand category ("ccd", "prd", "clc"); empty for entries.
	Category string `json:"category,omitempty" yaml:"category,omitempty"`

	// SourceURL is the remote resource the file was downloaded from.
	SourceURL string `json:"source_url" yaml:"source_url"`

	// Path is the local filesystem path the file was written to.
	Path string `json:"path" yaml:"path"`

	// Size is the number of bytes written (decompressed size for entries).
	Size int64 `json:"size" yaml:"size"`

	// FetchedAt is when the download completed.
	FetchedAt time.Time `json:"fetched_at" yaml:"fetched_at"`
}
