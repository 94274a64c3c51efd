package tui

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/f3rmion/intelliproject/internal/project"
	"github.com/f3rmion/intelliproject/internal/recommend"
	"github.com/f3rmion/intelliproject/internal/tui/views"
)

type fakeRecommender struct {
	mu       sync.Mutex
	projects []project.Project
	err      error
	calls    []project.FormInput
}

func (f *fakeRecommender) Generate(_ context.Context, input project.FormInput) ([]project.Project, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, input)
	return f.projects, f.err
}

type fakeClipboard struct {
	text string
	err  error
}

func (c *fakeClipboard) Write(text string) error {
	if c.err != nil {
		return c.err
	}
	c.text = text
	return nil
}

func newTestApp(rec recommend.Recommender, clip *fakeClipboard) AppModel {
	if clip == nil {
		clip = &fakeClipboard{}
	}
	m := NewApp(rec, Options{Endpoint: recommend.DefaultEndpoint, Clipboard: clip})
	next, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 60})
	return next.(AppModel)
}

func update(t *testing.T, m AppModel, msg tea.Msg) (AppModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	app, ok := next.(AppModel)
	require.True(t, ok)
	return app, cmd
}

func key(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func fillScenario(t *testing.T, m *AppModel) {
	t.Helper()
	require.NoError(t, m.UpdateField(project.FieldSkills, "React, Python"))
	require.NoError(t, m.UpdateField(project.FieldDomain, "HealthTech"))
	require.NoError(t, m.UpdateField(project.FieldDifficulty, "Intermediate"))
	require.NoError(t, m.UpdateField(project.FieldTimeWeeks, "6"))
}

// runCmd executes cmd the way the program loop would: batches are expanded
// in order and every resulting message is fed back, following the commands
// those updates return. Spinner ticks stop once loading ends.
func runCmd(t *testing.T, m AppModel, cmd tea.Cmd) AppModel {
	t.Helper()
	if cmd == nil {
		return m
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		for _, c := range batch {
			m = runCmd(t, m, c)
		}
		return m
	}
	m, next := update(t, m, msg)
	return runCmd(t, m, next)
}

func TestAppSubmitRunsToCompletion(t *testing.T) {
	rec := &fakeRecommender{projects: []project.Project{p1, p2}}
	m := newTestApp(rec, nil)
	fillScenario(t, &m)

	cmd := m.Submit()
	require.NotNil(t, cmd)
	assert.True(t, m.Request().Loading)
	assert.Contains(t, m.View(), "Generating...")

	m = runCmd(t, m, cmd)

	require.Len(t, rec.calls, 1)
	assert.Equal(t, "HealthTech", rec.calls[0].Domain)
	req := m.Request()
	assert.False(t, req.Loading)
	assert.Empty(t, req.Error)
	assert.Equal(t, []project.Project{p1, p2}, req.Results)
	assert.Contains(t, m.View(), "P2")
}

func TestAppEnterFailureRunsToCompletion(t *testing.T) {
	rec := &fakeRecommender{err: errors.New("dial tcp: connection refused")}
	m := newTestApp(rec, nil)
	fillScenario(t, &m)

	_, cmd := update(t, m, key("enter"))
	m = runCmd(t, m, cmd)

	req := m.Request()
	assert.False(t, req.Loading)
	assert.Equal(t, recommend.FailureMessage, req.Error)
	assert.Empty(t, req.Results)
	assert.Contains(t, m.View(), recommend.FailureMessage)
	assert.NotContains(t, m.View(), "connection refused")
}

func TestAppSubmitSuccess(t *testing.T) {
	rec := &fakeRecommender{projects: []project.Project{p1, p2}}
	m := newTestApp(rec, nil)
	fillScenario(t, &m)

	seq := m.request.Begin()
	msg := m.generate(seq, m.Form().Input())()

	m, _ = update(t, m, msg)

	require.Len(t, rec.calls, 1)
	assert.Equal(t, project.FormInput{
		Skills:     "React, Python",
		Domain:     "HealthTech",
		Difficulty: project.Intermediate,
		TimeWeeks:  "6",
	}, rec.calls[0])

	req := m.Request()
	assert.False(t, req.Loading)
	assert.Empty(t, req.Error)
	assert.Equal(t, []project.Project{p1, p2}, req.Results)

	view := m.View()
	assert.Contains(t, view, "P1")
	assert.Contains(t, view, "P2")
}

func TestAppSubmitClearsStateBeforeResolving(t *testing.T) {
	rec := &fakeRecommender{err: errors.New("connection refused")}
	m := newTestApp(rec, nil)

	// Leave a failed request behind.
	seq := m.request.Begin()
	m, _ = update(t, m, m.generate(seq, m.Form().Input())())
	require.Equal(t, recommend.FailureMessage, m.Request().Error)

	m, cmd := update(t, m, views.SubmitMsg{Input: m.Form().Input()})
	require.NotNil(t, cmd)

	req := m.Request()
	assert.True(t, req.Loading)
	assert.Empty(t, req.Error)
	assert.Empty(t, req.Results)
	assert.NotContains(t, m.View(), recommend.FailureMessage)
}

func TestAppSubmitFailure(t *testing.T) {
	rec := &fakeRecommender{err: recommend.ErrRequestFailed}
	m := newTestApp(rec, nil)
	fillScenario(t, &m)

	seq := m.request.Begin()
	m, _ = update(t, m, m.generate(seq, m.Form().Input())())

	req := m.Request()
	assert.False(t, req.Loading)
	assert.Equal(t, "Failed to generate projects.", req.Error)
	assert.Empty(t, req.Results)

	view := m.View()
	assert.Contains(t, view, "Failed to generate projects.")
	assert.NotContains(t, view, "Tech Stack:")
}

func TestAppDiscardsStaleResponse(t *testing.T) {
	m := newTestApp(&fakeRecommender{}, nil)

	first := m.request.Begin()
	second := m.request.Begin()

	m, _ = update(t, m, generatedMsg{seq: second, projects: []project.Project{p2}})
	m, _ = update(t, m, generatedMsg{seq: first, projects: []project.Project{p1}})

	assert.Equal(t, []project.Project{p2}, m.Request().Results)
	assert.NotContains(t, m.View(), "P1")
}

func TestAppRendersScenarioCard(t *testing.T) {
	scenario := project.Project{
		Title:                 "X",
		ProblemStatement:      "Y",
		TechStack:             []string{"A", "B"},
		ResumeScore:           8,
		InnovationScore:       7,
		ImplementationRoadmap: []string{"step1", "step2"},
		Challenges:            []string{"c1"},
	}
	m := newTestApp(&fakeRecommender{}, nil)

	seq := m.request.Begin()
	m, _ = update(t, m, generatedMsg{seq: seq, projects: []project.Project{scenario}})

	view := m.View()
	assert.Contains(t, view, "Tech Stack: A, B")
	assert.Contains(t, view, "Resume Score: 8")
	assert.Contains(t, view, "1. step1")
	assert.Contains(t, view, "2. step2")
	assert.Contains(t, view, "• c1")
}

func TestAppUpdateFieldLastWriteWins(t *testing.T) {
	m := newTestApp(&fakeRecommender{}, nil)

	require.NoError(t, m.UpdateField(project.FieldDomain, "A"))
	require.NoError(t, m.UpdateField(project.FieldDomain, "B"))
	assert.Equal(t, "B", m.Form().Input().Domain)

	err := m.UpdateField(project.FieldDifficulty, "Expert")
	assert.ErrorIs(t, err, project.ErrInvalidDifficulty)
	assert.Equal(t, project.DefaultDifficulty, m.Form().Input().Difficulty)

	assert.ErrorIs(t, m.UpdateField("budget", "10"), project.ErrUnknownField)
}

func TestAppEnterEmitsSubmit(t *testing.T) {
	rec := &fakeRecommender{projects: []project.Project{p1}}
	m := newTestApp(rec, nil)
	fillScenario(t, &m)

	_, cmd := update(t, m, key("enter"))
	require.NotNil(t, cmd)

	submit, ok := cmd().(views.SubmitMsg)
	require.True(t, ok)
	assert.Equal(t, "HealthTech", submit.Input.Domain)
}

func TestAppResultsKeys(t *testing.T) {
	clip := &fakeClipboard{}
	m := newTestApp(&fakeRecommender{}, clip)

	seq := m.request.Begin()
	m, _ = update(t, m, generatedMsg{seq: seq, projects: []project.Project{p1, p2}})

	// Form keeps focus until esc.
	m, _ = update(t, m, key("esc"))
	assert.Equal(t, PaneResults, m.focus)

	m, _ = update(t, m, key("j"))
	m, cmd := update(t, m, key("y"))
	assert.NotNil(t, cmd)
	assert.True(t, strings.HasPrefix(clip.text, "P2"))
	assert.Contains(t, m.View(), "Copied!")

	m, _ = update(t, m, clearCopiedMsg{})
	assert.NotContains(t, m.View(), "Copied!")

	m, _ = update(t, m, key("?"))
	assert.Contains(t, m.View(), "Press any key to close")
	m, _ = update(t, m, key("x"))
	assert.NotContains(t, m.View(), "Press any key to close")

	m, _ = update(t, m, key("i"))
	assert.Equal(t, PaneForm, m.focus)
	assert.True(t, m.Form().Focused())
}

func TestAppClipboardFailure(t *testing.T) {
	clip := &fakeClipboard{err: errors.New("no clipboard")}
	m := newTestApp(&fakeRecommender{}, clip)

	seq := m.request.Begin()
	m, _ = update(t, m, generatedMsg{seq: seq, projects: []project.Project{p1}})
	m, _ = update(t, m, key("esc"))
	m, _ = update(t, m, key("y"))

	assert.Contains(t, m.View(), "Clipboard unavailable")
}

func TestAppQuit(t *testing.T) {
	m := newTestApp(&fakeRecommender{}, nil)

	// q is typed into the form while it has focus.
	m, _ = update(t, m, key("q"))
	assert.Equal(t, "q", m.Form().Input().Skills)

	_, cmd := update(t, m, key("ctrl+c"))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())

	m, _ = update(t, m, key("esc"))
	_, cmd = update(t, m, key("q"))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
}

func TestAppQuitFromHelp(t *testing.T) {
	m := newTestApp(&fakeRecommender{}, nil)
	m, _ = update(t, m, key("esc"))
	m, _ = update(t, m, key("?"))
	require.True(t, m.showHelp)

	_, cmd := update(t, m, key("ctrl+c"))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
}

func TestAppViewBeforeResize(t *testing.T) {
	m := NewApp(&fakeRecommender{}, Options{})
	assert.Equal(t, "Loading...", m.View())
}
