// Package clipboard provides cross-platform clipboard support.
package clipboard

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"

	"github.com/f3rmion/intelliproject/internal/project"
)

// Writer copies text somewhere the user can paste it from.
type Writer interface {
	Write(text string) error
}

// System is the OS clipboard.
type System struct{}

// Write copies text to the system clipboard.
func (System) Write(text string) error {
	return clipboard.WriteAll(text)
}

// Available checks if clipboard functionality is available.
func Available() bool {
	return !clipboard.Unsupported
}

// FormatProject renders p as plain text suitable for pasting into notes.
func FormatProject(p project.Project) string {
	var sb strings.Builder

	sb.WriteString(p.Title)
	sb.WriteString("\n\n")
	sb.WriteString("Problem: " + p.ProblemStatement + "\n")
	sb.WriteString("Tech Stack: " + strings.Join(p.TechStack, ", ") + "\n")
	if p.Architecture != "" {
		sb.WriteString("Architecture: " + p.Architecture + "\n")
	}
	sb.WriteString("Resume Score: " + project.FormatScore(p.ResumeScore) + "\n")
	sb.WriteString("Innovation Score: " + project.FormatScore(p.InnovationScore) + "\n")

	sb.WriteString("\nImplementation Roadmap:\n")
	for i, step := range p.ImplementationRoadmap {
		fmt.Fprintf(&sb, "  %d. %s\n", i+1, step)
	}

	sb.WriteString("\nChallenges:\n")
	for _, c := range p.Challenges {
		sb.WriteString("  - " + c + "\n")
	}

	return sb.String()
}
