package tui

import (
	"context"
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/f3rmion/intelliproject/internal/clipboard"
	"github.com/f3rmion/intelliproject/internal/project"
	"github.com/f3rmion/intelliproject/internal/recommend"
	"github.com/f3rmion/intelliproject/internal/tui/views"
)

// Pane identifies which part of the screen has keyboard focus.
type Pane int

const (
	PaneForm Pane = iota
	PaneResults
)

// generatedMsg carries the outcome of one generate request.
type generatedMsg struct {
	seq      uint64
	projects []project.Project
	err      error
}

type clearCopiedMsg struct{}

func clearCopiedAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return clearCopiedMsg{}
	})
}

// Options configures the app.
type Options struct {
	AppName   string
	Endpoint  string           // Shown in the header
	Clipboard clipboard.Writer // Defaults to the system clipboard
}

// AppModel is the form-and-results TUI model.
type AppModel struct {
	client recommend.Recommender
	opts   Options

	request RequestState
	form    views.FormModel
	results views.ResultsModel
	focus   Pane

	// Clipboard feedback
	copied  bool
	copyErr bool

	width  int
	height int
	ready  bool

	showHelp bool
}

// NewApp creates the TUI around client.
func NewApp(client recommend.Recommender, opts Options) AppModel {
	if opts.AppName == "" {
		opts.AppName = "IntelliProject"
	}
	if opts.Clipboard == nil {
		opts.Clipboard = clipboard.System{}
	}

	return AppModel{
		client:  client,
		opts:    opts,
		form:    views.NewFormModel(),
		results: views.NewResultsModel(),
		focus:   PaneForm,
	}
}

// Init initializes the model
func (m AppModel) Init() tea.Cmd {
	return textinput.Blink
}

// Request returns the current request state.
func (m AppModel) Request() RequestState {
	return m.request
}

// Form returns the form view.
func (m AppModel) Form() views.FormModel {
	return m.form
}

// UpdateField sets a form field, as typing into it would.
func (m *AppModel) UpdateField(name, value string) error {
	return m.form.SetField(name, value)
}

// Submit starts a generate request for the current form values. Loading is
// set and previous results and errors are cleared before it returns.
func (m *AppModel) Submit() tea.Cmd {
	return m.submit(m.form.Input())
}

func (m *AppModel) submit(input project.FormInput) tea.Cmd {
	seq := m.request.Begin()
	m.syncRequest()
	slog.Debug("generate request issued", "seq", seq, "domain", input.Domain, "difficulty", input.Difficulty)
	return tea.Batch(m.generate(seq, input), m.form.Tick())
}

// generate runs the request off the update loop and reports back with seq.
func (m AppModel) generate(seq uint64, input project.FormInput) tea.Cmd {
	client := m.client
	return func() tea.Msg {
		projects, err := client.Generate(context.Background(), input)
		return generatedMsg{seq: seq, projects: projects, err: err}
	}
}

func (m *AppModel) syncRequest() {
	m.form.SetStatus(m.request.Loading, m.request.Error)
	m.results.SetProjects(m.request.Results)
}

func (m *AppModel) setFocus(p Pane) {
	m.focus = p
	if p == PaneForm {
		m.form.Focus()
		m.results.Blur()
	} else {
		m.form.Blur()
		m.results.Focus()
	}
}

// Update handles messages
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}

		// Help overlay - any other key closes it
		if m.showHelp {
			m.showHelp = false
			return m, nil
		}

		if m.focus == PaneForm {
			if msg.String() == "esc" {
				m.setFocus(PaneResults)
				return m, nil
			}
			var cmd tea.Cmd
			m.form, cmd = m.form.Update(msg)
			return m, cmd
		}

		switch msg.String() {
		case "q":
			return m, tea.Quit
		case "?":
			m.showHelp = true
			return m, nil
		case "esc", "i", "tab":
			m.setFocus(PaneForm)
			return m, nil
		case "enter", "r":
			return m, m.Submit()
		case "y":
			return m, m.copySelected()
		}

		var cmd tea.Cmd
		m.results, cmd = m.results.Update(msg)
		return m, cmd

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.layout()
		return m, nil

	case views.SubmitMsg:
		return m, m.submit(msg.Input)

	case generatedMsg:
		if !m.request.Resolve(msg.seq, msg.projects, msg.err) {
			slog.Debug("discarding stale generate response", "seq", msg.seq, "latest", m.request.Seq())
			return m, nil
		}
		if msg.err != nil {
			slog.Debug("generate request failed", "seq", msg.seq, "error", msg.err)
		} else {
			slog.Debug("generate request succeeded", "seq", msg.seq, "projects", len(msg.projects))
		}
		m.syncRequest()
		return m, nil

	case clearCopiedMsg:
		m.copied = false
		m.copyErr = false
		return m, nil
	}

	// Everything else (spinner ticks, cursor blinks, mouse) goes to both panes.
	var formCmd, resultsCmd tea.Cmd
	m.form, formCmd = m.form.Update(msg)
	m.results, resultsCmd = m.results.Update(msg)
	return m, tea.Batch(formCmd, resultsCmd)
}

func (m *AppModel) copySelected() tea.Cmd {
	p, ok := m.results.Selected()
	if !ok {
		return nil
	}
	if err := m.opts.Clipboard.Write(clipboard.FormatProject(p)); err != nil {
		slog.Debug("clipboard write failed", "error", err)
		m.copyErr = true
	} else {
		m.copied = true
	}
	return clearCopiedAfter(2 * time.Second)
}

// layout distributes the window between header, form, results and help line.
func (m *AppModel) layout() {
	contentWidth := max(m.width-2, 20)
	m.form.SetSize(contentWidth)

	used := lipgloss.Height(m.renderHeader()) + lipgloss.Height(m.form.View()) + 1
	m.results.SetSize(contentWidth, max(m.height-used, 3))
}

// View renders the UI
func (m AppModel) View() string {
	if !m.ready {
		return "Loading..."
	}

	if m.showHelp {
		return m.renderHelp()
	}

	content := lipgloss.JoinVertical(lipgloss.Left,
		m.renderHeader(),
		m.form.View(),
		m.results.View(),
	)

	// Pin the status line to the bottom.
	body := lipgloss.NewStyle().Height(max(m.height-1, 1)).MaxHeight(max(m.height-1, 1)).Render(content)
	return ContentStyle.Render(body) + "\n" + m.renderStatus()
}

func (m AppModel) renderHeader() string {
	title := TitleStyle.Render("🎓 "+m.opts.AppName) + "  " +
		SubtitleStyle.Render("Project Recommendations")
	endpoint := ""
	if m.opts.Endpoint != "" {
		endpoint = "  " + EndpointStyle.Render("→ "+m.opts.Endpoint)
	}
	return title + endpoint + "\n"
}

func (m AppModel) renderStatus() string {
	var status string
	switch {
	case m.copied:
		status = CopiedStyle.Render("Copied!") + "  "
	case m.copyErr:
		status = ErrorStyle.Render("Clipboard unavailable") + "  "
	case m.request.Loading:
		status = LoadingStyle.Render("Generating...") + "  "
	}

	var help string
	if m.focus == PaneForm {
		help = "enter generate • tab/↑↓ move • ←/→ difficulty • esc results • ctrl+c quit"
	} else {
		help = "j/k select • pgup/pgdn scroll • y copy • r regenerate • esc form • ? help • q quit"
	}
	return " " + status + HelpStyle.Render(help)
}

// renderHelp renders the help overlay
func (m AppModel) renderHelp() string {
	helpText := HelpTitleStyle.Render(m.opts.AppName+" - Project Recommendations") + "\n\n"

	helpText += HelpSectionStyle.Render("Form") + "\n"
	helpText += HelpKeyStyle.Render("tab ↓") + HelpDescStyle.Render("Next field") + "\n"
	helpText += HelpKeyStyle.Render("shift+tab ↑") + HelpDescStyle.Render("Previous field") + "\n"
	helpText += HelpKeyStyle.Render("←/→ space") + HelpDescStyle.Render("Change difficulty") + "\n"
	helpText += HelpKeyStyle.Render("enter") + HelpDescStyle.Render("Generate projects") + "\n"
	helpText += HelpKeyStyle.Render("esc") + HelpDescStyle.Render("Go to results") + "\n"

	helpText += HelpSectionStyle.Render("Results") + "\n"
	helpText += HelpKeyStyle.Render("j/k ↑/↓") + HelpDescStyle.Render("Select project") + "\n"
	helpText += HelpKeyStyle.Render("pgup/pgdn") + HelpDescStyle.Render("Scroll") + "\n"
	helpText += HelpKeyStyle.Render("y") + HelpDescStyle.Render("Copy project to clipboard") + "\n"
	helpText += HelpKeyStyle.Render("r enter") + HelpDescStyle.Render("Generate again") + "\n"
	helpText += HelpKeyStyle.Render("esc i tab") + HelpDescStyle.Render("Back to form") + "\n"
	helpText += HelpKeyStyle.Render("q") + HelpDescStyle.Render("Quit") + "\n"

	helpText += "\n" + lipgloss.NewStyle().
		Foreground(ColorMuted).
		Italic(true).
		Render("Press any key to close")

	helpBox := HelpBoxStyle.Render(helpText)
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, helpBox)
}
