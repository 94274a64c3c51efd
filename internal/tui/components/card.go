// Package components provides shared UI components for the TUI.
package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/f3rmion/intelliproject/internal/project"
)

var (
	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#3d5a80")).
			Padding(0, 2).
			MarginBottom(1)

	cardSelectedStyle = cardStyle.
				BorderForeground(lipgloss.Color("#ffe66d"))

	cardTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FF6B6B"))

	cardLabelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#a8dadc")).
			Bold(true)

	cardValueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#f1faee"))

	cardScoreStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#a8e6cf")).
			Bold(true)

	cardDividerStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#3d5a80"))
)

// minCardWidth keeps cards readable in narrow terminals.
const minCardWidth = 30

// Card is a project prepared for display.
type Card struct {
	Title        string
	Problem      string
	TechStack    string // Comma-joined tech stack
	Architecture string
	Resume       string
	Innovation   string
	Roadmap      []string // Ordered steps
	Challenges   []string
}

// NewCard derives the display fields of p.
func NewCard(p project.Project) Card {
	return Card{
		Title:        p.Title,
		Problem:      p.ProblemStatement,
		TechStack:    strings.Join(p.TechStack, ", "),
		Architecture: p.Architecture,
		Resume:       project.FormatScore(p.ResumeScore),
		Innovation:   project.FormatScore(p.InnovationScore),
		Roadmap:      p.ImplementationRoadmap,
		Challenges:   p.Challenges,
	}
}

// Render draws the card in a box of the given outer width.
func (c Card) Render(width int, selected bool) string {
	if width < minCardWidth {
		width = minCardWidth
	}
	// Border and padding take six columns.
	inner := width - 6

	var lines []string
	lines = append(lines, cardTitleStyle.Render(WordWrap(c.Title, inner)))
	lines = append(lines, "")
	lines = append(lines, labeled("Problem", c.Problem, inner))
	lines = append(lines, labeled("Tech Stack", c.TechStack, inner))
	if c.Architecture != "" {
		lines = append(lines, labeled("Architecture", c.Architecture, inner))
	}
	lines = append(lines,
		cardLabelStyle.Render("Resume Score: ")+cardScoreStyle.Render(c.Resume)+"   "+
			cardLabelStyle.Render("Innovation Score: ")+cardScoreStyle.Render(c.Innovation))
	lines = append(lines, cardDividerStyle.Render(strings.Repeat("─", inner)))

	lines = append(lines, cardLabelStyle.Render("Implementation Roadmap:"))
	for i, step := range c.Roadmap {
		lines = append(lines, listItem(fmt.Sprintf("%d.", i+1), step, inner))
	}

	lines = append(lines, cardLabelStyle.Render("Challenges:"))
	for _, ch := range c.Challenges {
		lines = append(lines, listItem("•", ch, inner))
	}

	style := cardStyle
	if selected {
		style = cardSelectedStyle
	}
	return style.Width(width - 2).Render(strings.Join(lines, "\n"))
}

// minValueWidth is the narrowest value column kept beside a label; below it
// the value starts on the line after the label.
const minValueWidth = 10

// labeled renders "Label: value" with the value wrapped beside the label and
// continuation lines aligned under the value.
func labeled(label, value string, width int) string {
	prefix := label + ": "
	prefixWidth := runewidth.StringWidth(prefix)

	if width-prefixWidth < minValueWidth {
		head := cardLabelStyle.Render(WordWrap(label+":", width))
		if value == "" {
			return head
		}
		return head + "\n" + cardValueStyle.Render(WordWrap(value, width))
	}

	lines := strings.Split(WordWrap(value, width-prefixWidth), "\n")
	pad := strings.Repeat(" ", prefixWidth)
	for i, line := range lines {
		if i == 0 {
			lines[i] = cardLabelStyle.Render(prefix) + cardValueStyle.Render(line)
		} else {
			lines[i] = pad + cardValueStyle.Render(line)
		}
	}
	return strings.Join(lines, "\n")
}

func listItem(marker, text string, width int) string {
	indent := "  " + marker + " "
	pad := strings.Repeat(" ", runewidth.StringWidth(indent))
	wrapped := strings.Split(WordWrap(text, width-len(pad)), "\n")
	for i := range wrapped {
		if i == 0 {
			wrapped[i] = indent + wrapped[i]
		} else {
			wrapped[i] = pad + wrapped[i]
		}
	}
	return cardValueStyle.Render(strings.Join(wrapped, "\n"))
}

// WordWrap breaks s into lines no wider than width display columns.
func WordWrap(s string, width int) string {
	if width <= 0 {
		width = 60
	}
	var lines []string
	var currentLine strings.Builder
	currentWidth := 0

	words := strings.Fields(s)
	for _, word := range words {
		wordWidth := runewidth.StringWidth(word)
		if currentWidth+wordWidth+1 > width && currentWidth > 0 {
			lines = append(lines, currentLine.String())
			currentLine.Reset()
			currentWidth = 0
		}
		if currentWidth > 0 {
			currentLine.WriteString(" ")
			currentWidth++
		}
		currentLine.WriteString(word)
		currentWidth += wordWidth
	}
	if currentLine.Len() > 0 {
		lines = append(lines, currentLine.String())
	}
	return strings.Join(lines, "\n")
}
