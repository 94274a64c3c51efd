package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/f3rmion/intelliproject/internal/project"
	"github.com/f3rmion/intelliproject/internal/recommend"
	"github.com/f3rmion/intelliproject/internal/tui/components"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Request project recommendations without the TUI",
	Long: `Send one generate request and print the recommended projects.

Examples:
  intelliproject generate --skills "React, Python" --domain HealthTech --weeks 6
  intelliproject generate -s Go -d FinTech --difficulty advanced -o json
  intelliproject generate -s Rust -d Gaming -o yaml > ideas.yaml`,
	Args: cobra.NoArgs,
	RunE: runGenerate,
}

var (
	generateSkills     string
	generateDomain     string
	generateDifficulty string
	generateWeeks      string
	generateOutput     string
	generateWidth      int
)

func init() {
	rootCmd.AddCommand(generateCmd)
	generateCmd.Flags().StringVarP(&generateSkills, "skills", "s", "", "Your skills, comma-separated")
	generateCmd.Flags().StringVarP(&generateDomain, "domain", "d", "", "Target domain or industry")
	generateCmd.Flags().StringVar(&generateDifficulty, "difficulty", string(project.DefaultDifficulty), "Beginner, Intermediate or Advanced")
	generateCmd.Flags().StringVarP(&generateWeeks, "weeks", "w", "", "Time available in weeks")
	generateCmd.Flags().StringVarP(&generateOutput, "output", "o", "text", "Output format: text, json, yaml")
	generateCmd.Flags().IntVar(&generateWidth, "width", 80, "Card width for text output")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	level := slog.LevelWarn
	if cfg.Verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	input := project.NewFormInput()
	fields := []struct{ name, value string }{
		{project.FieldSkills, generateSkills},
		{project.FieldDomain, generateDomain},
		{project.FieldDifficulty, generateDifficulty},
		{project.FieldTimeWeeks, generateWeeks},
	}
	for _, f := range fields {
		if err := input.Set(f.name, f.value); err != nil {
			return err
		}
	}

	client := newClient(cfg)
	slog.Debug("sending generate request", "endpoint", client.Endpoint(), "input", input)

	projects, err := client.Generate(cmd.Context(), input)
	if err != nil {
		slog.Debug("generate request failed", "error", err)
		return errors.New(recommend.FailureMessage)
	}

	return writeProjects(cmd.OutOrStdout(), generateOutput, projects, generateWidth)
}

func writeProjects(w io.Writer, format string, projects []project.Project, width int) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(projects)
	case "yaml", "yml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(projects); err != nil {
			return err
		}
		return enc.Close()
	case "text", "":
		if len(projects) == 0 {
			fmt.Fprintln(w, "No projects returned.")
			return nil
		}
		for _, p := range projects {
			fmt.Fprintln(w, components.NewCard(p).Render(width, false))
		}
		return nil
	default:
		return fmt.Errorf("unknown output format %q (use text, json or yaml)", format)
	}
}
