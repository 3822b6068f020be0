package types

import "time"

// HTTPConfig holds shared HTTP settings used by operations that make network requests.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "pdbefetch/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// FetchConfig holds settings for the retrieval operations.
type FetchConfig struct {
	HTTPConfig `yaml:",inline"`

	// DataDir is the directory downloaded files are written to (default "data").
	// The directory must exist before a fetch runs; the fetch operations do
	// not create it.
	DataDir string `json:"data_dir" yaml:"data_dir"`

	// ChemArchiveURL overrides the component-dictionary archive root when
	// non-empty. Leave empty to use the PDBe chem archive.
	ChemArchiveURL string `json:"chem_archive_url,omitempty" yaml:"chem_archive_url,omitempty"`

	// EntryArchiveURL overrides the updated-mmCIF archive root when non-empty.
	EntryArchiveURL string `json:"entry_archive_url,omitempty" yaml:"entry_archive_url,omitempty"`
}

// ManifestConfig holds settings for the fetch manifest.
type ManifestConfig struct {
	// DataDir is the base data directory; the manifest database lives under
	// DataDir/index/.
	DataDir string `json:"data_dir" yaml:"data_dir"`

	// MaxResults is the default maximum number of rows returned by a manifest
	// listing (default 50).
	MaxResults int `json:"max_results" yaml:"max_results"`
}
