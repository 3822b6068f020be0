// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the pdbefetch CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/roshkjr/pdbefetch/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

const (
	defaultTimeout   = 60 * time.Second
	defaultDataDir   = "data"
	defaultUserAgent = "pdbefetch/0.1"
)

// rootCmd is the base command for the pdbefetch CLI.
var rootCmd = &cobra.Command{
	Use:   "pdbefetch",
	Short: "Fetch ligand and entry CIF files from the PDBe archives",
	Long: `pdbefetch downloads chemical-component CIF files and updated entry mmCIF
files from the PDBe public archives and writes them under a local data
directory.

Each archive surface is a subcommand: ligand fetches component definitions
from the pdbechem archive, entry fetches gzip-compressed updated mmCIF files
(decompressed on write). Completed downloads are recorded in a local
manifest, inspectable through the manifest subcommand.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./pdbefetch.yaml or ~/.config/pdbefetch/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("pdbefetch")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "pdbefetch"))
		}
	}

	viper.SetEnvPrefix("PDBEFETCH")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// fetchConfig assembles a FetchConfig from command flags, falling back to the
// viper configuration and then to built-in defaults.
func fetchConfig(cmd *cobra.Command) types.FetchConfig {
	timeout, _ := cmd.Flags().GetDuration("timeout")
	if timeout == 0 {
		timeout = viper.GetDuration("timeout")
	}
	if timeout == 0 {
		timeout = defaultTimeout
	}

	dataDir, _ := cmd.Flags().GetString("data-dir")
	if dataDir == "" {
		dataDir = viper.GetString("data_dir")
	}
	if dataDir == "" {
		dataDir = defaultDataDir
	}

	userAgent := viper.GetString("user_agent")
	if userAgent == "" {
		userAgent = defaultUserAgent
	}

	return types.FetchConfig{
		HTTPConfig: types.HTTPConfig{
			Timeout:   timeout,
			UserAgent: userAgent,
		},
		DataDir:         dataDir,
		ChemArchiveURL:  viper.GetString("chem_archive_url"),
		EntryArchiveURL: viper.GetString("entry_archive_url"),
	}
}

// provisionDataDir creates the data directory the fetch operations write
// into. Directory provisioning is a CLI responsibility: the fetch operations
// themselves assume the directory exists.
func provisionDataDir(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating data directory %s: %w", dir, err)
	}
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
