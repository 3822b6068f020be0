package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/roshkjr/pdbefetch/internal/fetch"
	"github.com/roshkjr/pdbefetch/internal/httputil"
	"github.com/roshkjr/pdbefetch/internal/manifest"
	"github.com/roshkjr/pdbefetch/pkg/types"
)

var ligandCmd = &cobra.Command{
	Use:   "ligand <id>",
	Short: "Download a chemical-component CIF from the pdbechem archive",
	Long: `Ligand downloads the CIF definition for a chemical component (a CCD code
such as ATP, a PRD code such as PRD_000001, or a CLC code) and writes it to
the data directory. A component the archive does not have is reported, not
treated as an error.`,
	Args: cobra.ExactArgs(1),
	RunE: runLigand,
}

func init() {
	ligandCmd.Flags().String("type", "ccd", "ligand category: ccd, prd, or clc")
	ligandCmd.Flags().Duration("timeout", 0, "HTTP request timeout (default 60s)")
	ligandCmd.Flags().String("data-dir", "", "directory for downloaded files (default \"data\")")
	ligandCmd.Flags().Bool("record", true, "record the download in the fetch manifest")

	rootCmd.AddCommand(ligandCmd)
}

func runLigand(cmd *cobra.Command, args []string) error {
	id := args[0]

	typeName, _ := cmd.Flags().GetString("type")
	category, err := fetch.ParseCategory(typeName)
	if err != nil {
		return err
	}

	cfg := fetchConfig(cmd)
	if err := provisionDataDir(cfg.DataDir); err != nil {
		return err
	}

	client := httputil.NewClient(cfg.HTTPConfig)
	path, found, err := fetch.Ligand(client, id, category, cfg, os.Stdout)
	if err != nil {
		return err
	}
	if !found {
		// Already reported on stdout; absence is not a command failure.
		return nil
	}

	fmt.Println(path)

	if record, _ := cmd.Flags().GetBool("record"); record {
		sourceURL, _ := fetch.LigandURL(cfg.ChemArchiveURL, id, category)
		if err := recordFetch(cmd.Context(), cfg.DataDir, types.FetchRecord{
			ID:        id,
			Kind:      types.KindLigand,
			Category:  category.String(),
			SourceURL: sourceURL,
			Path:      path,
		}); err != nil {
			fmt.Fprintf(os.Stderr, "warning: manifest update failed: %v\n", err)
		}
	}
	return nil
}

// recordFetch appends one download to the manifest, filling in the size from
// the written file and the current time.
func recordFetch(ctx context.Context, dataDir string, rec types.FetchRecord) error {
	if info, err := os.Stat(rec.Path); err == nil {
		rec.Size = info.Size()
	}
	rec.FetchedAt = time.Now().UTC()

	store, err := manifest.NewStore(types.ManifestConfig{DataDir: dataDir})
	if err != nil {
		return err
	}
	defer store.Close()

	return store.Record(ctx, rec)
}
