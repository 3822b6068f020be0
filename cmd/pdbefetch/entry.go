package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/roshkjr/pdbefetch/internal/fetch"
	"github.com/roshkjr/pdbefetch/internal/httputil"
	"github.com/roshkjr/pdbefetch/pkg/types"
)

var entryCmd = &cobra.Command{
	Use:   "entry <pdb-id>",
	Short: "Download an updated entry mmCIF from the PDBe archive",
	Long: `Entry downloads the gzip-compressed updated mmCIF for a PDB entry code
(for example 1cbs), decompresses it, and writes the mmCIF to the data
directory. A missing or unreachable entry is an error.`,
	Args: cobra.ExactArgs(1),
	RunE: runEntry,
}

func init() {
	entryCmd.Flags().Duration("timeout", 0, "HTTP request timeout (default 60s)")
	entryCmd.Flags().String("data-dir", "", "directory for downloaded files (default \"data\")")
	entryCmd.Flags().Bool("record", true, "record the download in the fetch manifest")

	rootCmd.AddCommand(entryCmd)
}

func runEntry(cmd *cobra.Command, args []string) error {
	id := args[0]

	cfg := fetchConfig(cmd)
	if err := provisionDataDir(cfg.DataDir); err != nil {
		return err
	}

	client := httputil.NewClient(cfg.HTTPConfig)
	path, err := fetch.Entry(client, id, cfg)
	if err != nil {
		return err
	}

	fmt.Println(path)

	if record, _ := cmd.Flags().GetBool("record"); record {
		if err := recordFetch(cmd.Context(), cfg.DataDir, types.FetchRecord{
			ID:        id,
			Kind:      types.KindEntry,
			SourceURL: fetch.EntryURL(cfg.EntryArchiveURL, id),
			Path:      path,
		}); err != nil {
			fmt.Fprintf(os.Stderr, "warning: manifest update failed: %v\n", err)
		}
	}
	return nil
}
