// Package main is the quickgrab settings tool.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/quickgrab/quickgrab/internal/config"
	"github.com/quickgrab/quickgrab/internal/config/store"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

var rootCmd = &cobra.Command{
	Use:           "quickgrab-settings",
	Short:         "Inspect and edit quickgrab settings",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringP("config", "c", "", "path to the settings file")
	rootCmd.PersistentFlags().String("format", "toml", "settings file format (toml, json)")

	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(getCmd)
	rootCmd.AddCommand(setCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("quickgrab-settings %s\n", version)
		fmt.Printf("Commit: %s\n", commit)
		fmt.Printf("Built: %s\n", date)
	},
}

// newHandler builds a ConfigHandler from the persistent flags. The
// watch is pointless for a one-shot tool and stays off.
func newHandler(cmd *cobra.Command) (*config.ConfigHandler, error) {
	path, _ := cmd.Flags().GetString("config")
	format, _ := cmd.Flags().GetString("format")

	if path == "" {
		path = config.DefaultConfigPath()
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}

	var backing store.Store
	switch format {
	case "toml":
		backing = store.NewTOMLStore(path)
	case "json":
		backing = store.NewJSONStore(path)
	default:
		return nil, fmt.Errorf("unknown format %q (must be toml or json)", format)
	}

	return config.New(config.WithStore(backing), config.WithFileWatch(false)), nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
