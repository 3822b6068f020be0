package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/roshkjr/pdbefetch/internal/manifest"
	"github.com/roshkjr/pdbefetch/pkg/types"
)

var manifestCmd = &cobra.Command{
	Use:   "manifest",
	Short: "Inspect the record of completed downloads",
	Long: `Manifest inspects the local fetch manifest. Every completed ligand or
entry download is recorded with its source URL, local path, size, and time.
The manifest is a log only; it never short-circuits a re-download.`,
}

var manifestListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recorded downloads, newest first",
	RunE:  runManifestList,
}

var manifestExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the manifest as YAML to stdout or a file",
	RunE:  runManifestExport,
}

func init() {
	manifestCmd.PersistentFlags().String("data-dir", "", "directory for downloaded files (default \"data\")")
	manifestListCmd.Flags().Int("max-results", 50, "maximum number of rows to list")
	manifestExportCmd.Flags().String("output", "", "write YAML to this file instead of stdout")

	manifestCmd.AddCommand(manifestListCmd)
	manifestCmd.AddCommand(manifestExportCmd)
	rootCmd.AddCommand(manifestCmd)
}

func manifestStore(cmd *cobra.Command, maxResults int) (*manifest.Store, error) {
	dataDir, _ := cmd.Flags().GetString("data-dir")
	if dataDir == "" {
		dataDir = viper.GetString("data_dir")
	}
	if dataDir == "" {
		dataDir = defaultDataDir
	}
	return manifest.NewStore(types.ManifestConfig{
		DataDir:    dataDir,
		MaxResults: maxResults,
	})
}

func runManifestList(cmd *cobra.Command, args []string) error {
	maxResults, _ := cmd.Flags().GetInt("max-results")
	store, err := manifestStore(cmd, maxResults)
	if err != nil {
		return err
	}
	defer store.Close()

	records, err := store.List(cmd.Context())
	if err != nil {
		return err
	}
	if len(records) == 0 {
		fmt.Println("no downloads recorded")
		return nil
	}

	for _, rec := range records {
		label := string(rec.Kind)
		if rec.Category != "" {
			label += "/" + rec.Category
		}
		fmt.Printf("%s  %-12s %-14s %8d B  %s\n",
			rec.FetchedAt.Format("2006-01-02 15:04:05"), rec.ID, label, rec.Size, rec.Path)
	}
	return nil
}

func runManifestExport(cmd *cobra.Command, args []string) error {
	store, err := manifestStore(cmd, 0)
	if err != nil {
		return err
	}
	defer store.Close()

	output, _ := cmd.Flags().GetString("output")
	if output == "" {
		return store.ExportYAML(cmd.Context(), os.Stdout)
	}

	f, err := os.Create(output)
	if err != nil {
		return fmt.Errorf("creating %s: %w", output, err)
	}
	defer f.Close()
	return store.ExportYAML(cmd.Context(), f)
}
