package views

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/f3rmion/intelliproject/internal/project"
)

func press(m FormModel, msgs ...tea.KeyMsg) FormModel {
	for _, msg := range msgs {
		m, _ = m.Update(msg)
	}
	return m
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

var (
	tab      = tea.KeyMsg{Type: tea.KeyTab}
	shiftTab = tea.KeyMsg{Type: tea.KeyShiftTab}
	right    = tea.KeyMsg{Type: tea.KeyRight}
	left     = tea.KeyMsg{Type: tea.KeyLeft}
	enter    = tea.KeyMsg{Type: tea.KeyEnter}
)

func TestFormTypingUpdatesInput(t *testing.T) {
	m := NewFormModel()

	m = press(m, runes("Go"), tab, runes("FinTech"), tab, tab, runes("8"))

	assert.Equal(t, project.FormInput{
		Skills:     "Go",
		Domain:     "FinTech",
		Difficulty: project.DefaultDifficulty,
		TimeWeeks:  "8",
	}, m.Input())
}

func TestFormDifficultyCycles(t *testing.T) {
	m := press(NewFormModel(), tab, tab)

	m = press(m, right)
	assert.Equal(t, project.Advanced, m.Input().Difficulty)

	m = press(m, right)
	assert.Equal(t, project.Beginner, m.Input().Difficulty)

	m = press(m, left)
	assert.Equal(t, project.Advanced, m.Input().Difficulty)

	// Letters never leak into a text field while difficulty is focused.
	m = press(m, runes("x"))
	assert.Empty(t, m.Input().Skills)
	assert.Empty(t, m.Input().Domain)
}

func TestFormFocusWraps(t *testing.T) {
	m := press(NewFormModel(), shiftTab)
	assert.Equal(t, focusButton, m.focus)

	m = press(m, tab)
	assert.Equal(t, focusSkills, m.focus)
}

func TestFormSetField(t *testing.T) {
	m := NewFormModel()

	require.NoError(t, m.SetField(project.FieldSkills, "React"))
	require.NoError(t, m.SetField(project.FieldSkills, "Vue"))
	assert.Equal(t, "Vue", m.Input().Skills)
	assert.Equal(t, "Vue", m.skills.Value())

	require.NoError(t, m.SetField(project.FieldDifficulty, "beginner"))
	assert.Equal(t, project.Beginner, m.Input().Difficulty)

	assert.ErrorIs(t, m.SetField(project.FieldDifficulty, "Hard"), project.ErrInvalidDifficulty)
	assert.Equal(t, project.Beginner, m.Input().Difficulty)

	// Whatever the user types is kept verbatim.
	require.NoError(t, m.SetField(project.FieldTimeWeeks, "six-ish"))
	assert.Equal(t, "six-ish", m.Input().TimeWeeks)
}

func TestFormLongValuesSurviveTyping(t *testing.T) {
	m := NewFormModel()
	long := strings.Repeat("a", 250)

	require.NoError(t, m.SetField(project.FieldSkills, long))
	require.NoError(t, m.SetField(project.FieldTimeWeeks, "twelve weeks, maybe thirteen"))
	assert.Equal(t, long, m.skills.Value())

	m = press(m, runes("x"))
	assert.Equal(t, long+"x", m.Input().Skills)

	m = press(m, tab, tab, tab, runes("!"))
	assert.Equal(t, "twelve weeks, maybe thirteen!", m.Input().TimeWeeks)
}

func TestFormEnterSubmitsCurrentInput(t *testing.T) {
	m := NewFormModel()
	require.NoError(t, m.SetField(project.FieldDomain, "EdTech"))

	_, cmd := m.Update(enter)
	require.NotNil(t, cmd)

	msg, ok := cmd().(SubmitMsg)
	require.True(t, ok)
	assert.Equal(t, "EdTech", msg.Input.Domain)
}

func TestFormView(t *testing.T) {
	m := NewFormModel()
	m.SetSize(80)

	view := m.View()
	assert.Contains(t, view, "Skills")
	assert.Contains(t, view, "Domain")
	assert.Contains(t, view, "Difficulty")
	assert.Contains(t, view, "Time")
	assert.Contains(t, view, "Generate")
	for _, d := range project.Difficulties {
		assert.Contains(t, view, string(d))
	}

	m.SetStatus(true, "")
	assert.Contains(t, m.View(), "Generating...")

	m.SetStatus(false, "Failed to generate projects.")
	view = m.View()
	assert.Contains(t, view, "Failed to generate projects.")
	assert.NotContains(t, view, "Generating...")
}
