// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package fetch

import (
	"fmt"
	"path"
	"strings"
)

// Category classifies a ligand identifier by the archive sub-tree it lives in.
type Category int

const (
	CategoryUnknown Category = iota
	CCD
	PRD
	CLC
)

func (c Category) String() string {
	switch c {
	case CCD:
		return "ccd"
	case PRD:
		return "prd"
	case CLC:
		return "clc"
	default:
		return "unknown"
	}
}

// ParseCategory converts a category name ("ccd", "prd", "clc", any case) to
// its Category value.
func ParseCategory(s string) (Category, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "ccd":
		return CCD, nil
	case "prd":
		return PRD, nil
	case "clc":
		return CLC, nil
	default:
		return CategoryUnknown, fmt.Errorf("unknown ligand category %q (want ccd, prd, or clc)", s)
	}
}

// Base URLs for the PDBe archives. Declared as vars so tests can substitute
// httptest servers.
var (
	chemArchiveBase  = "https://ftp.ebi.ac.uk/pub/databases/msd/pdbechem_v2"
	entryArchiveBase = "https://ftp.ebi.ac.uk/pub/databases/msd/updated_mmcif/all"
)

// RemoteDir returns the sharded directory for id inside the chem archive.
// CCD shards on the first character of the identifier; PRD and CLC shard on
// the last.
func (c Category) RemoteDir(id string) (string, error) {
	if id == "" {
		return "", fmt.Errorf("empty ligand identifier")
	}
	switch c {
	case CCD:
		return path.Join("ccd", id[:1], id), nil
	case PRD:
		return path.Join("prd", id[len(id)-1:], id), nil
	case CLC:
		return path.Join("clc", id[len(id)-1:], id), nil
	default:
		return "", fmt.Errorf("unknown ligand category %d", int(c))
	}
}

// LigandURL returns the full remote resource locator for a ligand CIF.
// An explicit archive root overrides the package default.
func LigandURL(root, id string, category Category) (string, error) {
	dir, err := category.RemoteDir(id)
	if err != nil {
		return "", err
	}
	if root == "" {
		root = chemArchiveBase
	}
	return root + "/" + dir + "/" + id + ".cif", nil
}

// EntryURL returns the full remote resource locator for a gzipped entry mmCIF.
func EntryURL(root, id string) string {
	if root == "" {
		root = entryArchiveBase
	}
	return root + "/" + id + "_updated.cif.gz"
}
