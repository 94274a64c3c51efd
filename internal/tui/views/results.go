package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/f3rmion/intelliproject/internal/project"
	"github.com/f3rmion/intelliproject/internal/tui/components"
)

var (
	countStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666")).
			Padding(0, 1)

	emptyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666")).
			Italic(true).
			Padding(1, 2)
)

// ResultsModel renders the returned projects as a scrollable list of cards.
type ResultsModel struct {
	projects []project.Project
	selected int
	focused  bool

	viewport viewport.Model

	// Line offset of each rendered card within the viewport content.
	offsets []int

	width  int
	height int
}

// NewResultsModel creates an empty results list.
func NewResultsModel() ResultsModel {
	return ResultsModel{
		viewport: viewport.New(0, 0),
	}
}

// SetSize updates the view dimensions.
func (m *ResultsModel) SetSize(width, height int) {
	m.width = width
	m.height = height
	// One line is reserved for the count header.
	m.viewport.Width = width
	m.viewport.Height = max(height-1, 1)
	m.refresh()
}

// SetProjects replaces the list wholesale and scrolls back to the top.
func (m *ResultsModel) SetProjects(projects []project.Project) {
	m.projects = projects
	m.selected = 0
	m.refresh()
	m.viewport.GotoTop()
}

// Projects returns the projects currently shown.
func (m ResultsModel) Projects() []project.Project {
	return m.projects
}

// Selected returns the highlighted project.
func (m ResultsModel) Selected() (project.Project, bool) {
	if m.selected < 0 || m.selected >= len(m.projects) {
		return project.Project{}, false
	}
	return m.projects[m.selected], true
}

// Focus gives the list keyboard focus.
func (m *ResultsModel) Focus() {
	m.focused = true
	m.refresh()
}

// Blur removes keyboard focus from the list.
func (m *ResultsModel) Blur() {
	m.focused = false
	m.refresh()
}

func (m *ResultsModel) refresh() {
	if len(m.projects) == 0 {
		m.offsets = nil
		m.viewport.SetContent("")
		return
	}

	cardWidth := m.width
	if cardWidth <= 0 {
		cardWidth = 80
	}

	var cards []string
	m.offsets = make([]int, 0, len(m.projects))
	line := 0
	for i, p := range m.projects {
		card := components.NewCard(p).Render(cardWidth, m.focused && i == m.selected)
		m.offsets = append(m.offsets, line)
		line += lipgloss.Height(card)
		cards = append(cards, card)
	}
	m.viewport.SetContent(strings.Join(cards, "\n"))
}

func (m *ResultsModel) selectIndex(i int) {
	if len(m.projects) == 0 {
		return
	}
	m.selected = min(max(i, 0), len(m.projects)-1)
	m.refresh()
	if m.selected < len(m.offsets) {
		m.viewport.SetYOffset(m.offsets[m.selected])
	}
}

// Update handles messages.
func (m ResultsModel) Update(msg tea.Msg) (ResultsModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "j", "down":
			m.selectIndex(m.selected + 1)
			return m, nil
		case "k", "up":
			m.selectIndex(m.selected - 1)
			return m, nil
		case "g", "home":
			m.selectIndex(0)
			return m, nil
		case "G", "end":
			m.selectIndex(len(m.projects) - 1)
			return m, nil
		case "pgdown", "f", " ":
			m.viewport.ViewDown()
			return m, nil
		case "pgup", "b":
			m.viewport.ViewUp()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// View renders the results list.
func (m ResultsModel) View() string {
	if len(m.projects) == 0 {
		return emptyStyle.Render("No projects yet. Fill in the form and press enter.")
	}

	header := countStyle.Render(fmt.Sprintf("%d projects • %d/%d", len(m.projects), m.selected+1, len(m.projects)))
	return header + "\n" + m.viewport.View()
}
