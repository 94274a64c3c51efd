package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/f3rmion/intelliproject/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize IntelliProject configuration",
	Long: `Write a config.yaml with the built-in defaults to your config directory.

The file sets the generate endpoint and client timeout used by the TUI, and
the listen address and allowed CORS origins of the reference backend.
Every value can also be overridden with an INTELLIPROJECT_* environment
variable, e.g. INTELLIPROJECT_ENDPOINT or INTELLIPROJECT_SERVER_PORT.`,
	Args: cobra.NoArgs,
	RunE: runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)
	initCmd.Flags().Bool("force", false, "overwrite existing configuration")
}

func runInit(cmd *cobra.Command, args []string) error {
	force, _ := cmd.Flags().GetBool("force")

	path := cfgFile
	if path == "" {
		dir, err := config.GetConfigDir()
		if err != nil {
			return fmt.Errorf("finding config directory: %w", err)
		}
		path = filepath.Join(dir, config.FileName)
	}

	// Check if config already exists
	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("config file already exists: %s\nUse --force to overwrite", path)
	}

	if err := config.EnsureConfigDir(filepath.Dir(path)); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	if err := config.Save(path, config.Default()); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Created %s\n\n", path)
	fmt.Fprintln(out, "Next steps:")
	fmt.Fprintln(out, "  1. Run 'intelliproject serve' to start the local recommendations backend")
	fmt.Fprintln(out, "  2. Run 'intelliproject' to open the form")

	return nil
}
