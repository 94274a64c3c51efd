// Package cmd contains all CLI commands for IntelliProject.
package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/f3rmion/intelliproject/internal/clipboard"
	"github.com/f3rmion/intelliproject/internal/config"
	"github.com/f3rmion/intelliproject/internal/recommend"
	"github.com/f3rmion/intelliproject/internal/tui"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "intelliproject",
	Short: "IntelliProject - AI project recommendations for your resume",
	Long: `IntelliProject suggests portfolio projects that fit your skills,
target domain, preferred difficulty and available time.

Fill in the form and press enter: the recommendations backend returns a
set of project ideas, each with a problem statement, tech stack,
implementation roadmap, challenges, and resume and innovation scores.

Running 'intelliproject' without arguments launches the interactive TUI.`,
	SilenceUsage: true,
	RunE:         runTUI,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/intelliproject/config.yaml)")
	rootCmd.PersistentFlags().String("endpoint", "", "generate endpoint URL (default "+recommend.DefaultEndpoint+")")
	rootCmd.PersistentFlags().Duration("timeout", 0, "request timeout (default 60s)")
	rootCmd.PersistentFlags().Bool("verbose", false, "verbose output")

	viper.BindPFlag("endpoint", rootCmd.PersistentFlags().Lookup("endpoint"))
	viper.BindPFlag("timeout", rootCmd.PersistentFlags().Lookup("timeout"))
	viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	dir, err := config.GetConfigDir()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error finding home directory:", err)
		os.Exit(1)
	}

	if err := config.Setup(viper.GetViper(), cfgFile, dir); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// loadConfig decodes the merged flags, environment and config file.
func loadConfig() (*config.Config, error) {
	return config.Load(viper.GetViper())
}

func newClient(cfg *config.Config) *recommend.Client {
	return recommend.NewClient(cfg.Endpoint, recommend.WithTimeout(cfg.Timeout))
}

// runTUI launches the interactive form.
func runTUI(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	// The TUI owns the terminal, so logs only ever go to a file.
	if cfg.Verbose {
		f, err := tea.LogToFile(cfg.LogFile, "intelliproject")
		if err != nil {
			return fmt.Errorf("opening log file: %w", err)
		}
		defer f.Close()
		slog.SetDefault(slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug})))
	} else {
		slog.SetDefault(slog.New(slog.NewTextHandler(io.Discard, nil)))
	}

	slog.Debug("starting TUI", "endpoint", cfg.Endpoint, "timeout", cfg.Timeout)

	if !clipboard.Available() {
		slog.Debug("system clipboard unsupported")
	}

	return tui.Run(newClient(cfg), tui.Options{
		AppName:  cfg.AppName,
		Endpoint: cfg.Endpoint,
	})
}
