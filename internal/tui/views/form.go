// Package views provides the individual views for the TUI.
package views

import (
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/f3rmion/intelliproject/internal/project"
)

var (
	formBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#3d5a80")).
			Padding(0, 2)

	formBoxFocusedStyle = formBoxStyle.
				BorderForeground(lipgloss.Color("#4ecdc4"))

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#a8dadc")).
			Bold(true).
			Width(12)

	labelFocusedStyle = labelStyle.
				Foreground(lipgloss.Color("#ffe66d"))

	optionStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888")).
			Padding(0, 1)

	optionActiveStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("#ffe66d")).
				Background(lipgloss.Color("#2d3436")).
				Padding(0, 1)

	buttonStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#f1faee")).
			Background(lipgloss.Color("#3d5a80")).
			Padding(0, 3)

	buttonFocusedStyle = buttonStyle.
				Bold(true).
				Foreground(lipgloss.Color("#1a1a2e")).
				Background(lipgloss.Color("#4ecdc4"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ff6b6b")).
			Bold(true)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

// Focus positions in the form, in tab order.
const (
	focusSkills = iota
	focusDomain
	focusDifficulty
	focusTimeWeeks
	focusButton
	focusCount
)

// SubmitMsg requests a generate call for Input.
type SubmitMsg struct {
	Input project.FormInput
}

// FormModel holds the editable form and renders the submit button and error.
type FormModel struct {
	input project.FormInput

	skills    textinput.Model
	domain    textinput.Model
	timeWeeks textinput.Model

	focus   int
	focused bool

	loading bool
	err     string
	spinner spinner.Model

	width int
}

// NewFormModel creates an empty form with the skills field focused.
func NewFormModel() FormModel {
	m := FormModel{
		input:     project.NewFormInput(),
		skills:    newInput("Skills (comma-separated)"),
		domain:    newInput("Domain / Industry"),
		timeWeeks: newInput("Time (weeks)"),
		focused:   true,
		spinner:   spinner.New(spinner.WithSpinner(spinner.Dot)),
	}
	m.spinner.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("#ffe66d"))
	m.applyFocus()
	return m
}

func newInput(placeholder string) textinput.Model {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Prompt = ""
	ti.CharLimit = 0 // Unlimited; SetField accepts any string
	ti.Width = 40
	ti.TextStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#f1faee"))
	ti.PlaceholderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#666666"))
	return ti
}

// SetSize updates the view width.
func (m *FormModel) SetSize(width int) {
	m.width = width
	w := width - 20
	if w < 10 {
		w = 10
	}
	m.skills.Width = w
	m.domain.Width = w
	m.timeWeeks.Width = w
}

// Input returns the current form values.
func (m FormModel) Input() project.FormInput {
	return m.input
}

// SetField sets the named field and mirrors it into the matching input.
func (m *FormModel) SetField(name, value string) error {
	if err := m.input.Set(name, value); err != nil {
		return err
	}
	switch name {
	case project.FieldSkills:
		m.skills.SetValue(value)
	case project.FieldDomain:
		m.domain.SetValue(value)
	case project.FieldTimeWeeks:
		m.timeWeeks.SetValue(value)
	}
	return nil
}

// SetStatus reflects the request state shown under the button.
func (m *FormModel) SetStatus(loading bool, errMsg string) {
	m.loading = loading
	m.err = errMsg
}

// Focus gives the form keyboard focus.
func (m *FormModel) Focus() {
	m.focused = true
	m.applyFocus()
}

// Blur removes keyboard focus from the form.
func (m *FormModel) Blur() {
	m.focused = false
	m.applyFocus()
}

// Focused reports whether the form has keyboard focus.
func (m FormModel) Focused() bool {
	return m.focused
}

func (m *FormModel) applyFocus() {
	for i, ti := range []*textinput.Model{&m.skills, &m.domain, nil, &m.timeWeeks} {
		if ti == nil {
			continue
		}
		if m.focused && m.focus == i {
			ti.Focus()
		} else {
			ti.Blur()
		}
	}
}

func (m *FormModel) moveFocus(delta int) {
	m.focus = ((m.focus+delta)%focusCount + focusCount) % focusCount
	m.applyFocus()
}

// Tick starts the loading spinner. It stops by itself once loading ends.
func (m FormModel) Tick() tea.Cmd {
	return m.spinner.Tick
}

// Update handles messages.
func (m FormModel) Update(msg tea.Msg) (FormModel, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		switch msg.String() {
		case "enter":
			input := m.input
			return m, func() tea.Msg { return SubmitMsg{Input: input} }
		case "tab", "down":
			m.moveFocus(1)
			return m, nil
		case "shift+tab", "up":
			m.moveFocus(-1)
			return m, nil
		}

		if m.focus == focusDifficulty {
			switch msg.String() {
			case "left", "h":
				m.input.Difficulty = m.input.Difficulty.Prev()
			case "right", "l", " ":
				m.input.Difficulty = m.input.Difficulty.Next()
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	switch m.focus {
	case focusSkills:
		m.skills, cmd = m.skills.Update(msg)
		m.input.Skills = m.skills.Value()
	case focusDomain:
		m.domain, cmd = m.domain.Update(msg)
		m.input.Domain = m.domain.Value()
	case focusTimeWeeks:
		m.timeWeeks, cmd = m.timeWeeks.Update(msg)
		m.input.TimeWeeks = m.timeWeeks.Value()
	}
	return m, cmd
}

// View renders the form.
func (m FormModel) View() string {
	var b strings.Builder

	b.WriteString(m.renderRow(focusSkills, "Skills", m.skills.View()))
	b.WriteString(m.renderRow(focusDomain, "Domain", m.domain.View()))
	b.WriteString(m.renderRow(focusDifficulty, "Difficulty", m.renderDifficulty()))
	b.WriteString(m.renderRow(focusTimeWeeks, "Time", m.timeWeeks.View()))
	b.WriteString("\n")

	label := "Generate"
	if m.loading {
		label = m.spinner.View() + " Generating..."
	}
	if m.focused && m.focus == focusButton {
		b.WriteString(buttonFocusedStyle.Render(label))
	} else {
		b.WriteString(buttonStyle.Render(label))
	}
	b.WriteString("\n")

	// The error line is always present so the form keeps a fixed height.
	if m.err != "" {
		b.WriteString(errorStyle.Render(m.err))
	} else {
		b.WriteString(helpStyle.Render("enter: generate • tab: next field • esc: results"))
	}

	style := formBoxStyle
	if m.focused {
		style = formBoxFocusedStyle
	}
	if m.width > 0 {
		style = style.Width(m.width - 2)
	}
	return style.Render(b.String())
}

func (m FormModel) renderRow(pos int, label, field string) string {
	ls := labelStyle
	if m.focused && m.focus == pos {
		ls = labelFocusedStyle
	}
	return ls.Render(label) + " " + field + "\n"
}

func (m FormModel) renderDifficulty() string {
	var opts []string
	for _, d := range project.Difficulties {
		if d == m.input.Difficulty {
			opts = append(opts, optionActiveStyle.Render(string(d)))
		} else {
			opts = append(opts, optionStyle.Render(string(d)))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, opts...)
}
