// Package tui provides the interactive Bubble Tea booklet for tripbook.
package tui

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"strings"
	"time"

	"github.com/theirongolddev/tripbook/internal/config"
	"github.com/theirongolddev/tripbook/internal/gemini"
	"github.com/theirongolddev/tripbook/internal/logging"
	"github.com/theirongolddev/tripbook/internal/model"
	"github.com/theirongolddev/tripbook/internal/pipeline"
	"github.com/theirongolddev/tripbook/internal/session"
	"github.com/theirongolddev/tripbook/internal/source"
	"github.com/theirongolddev/tripbook/internal/tui/components"
	"github.com/theirongolddev/tripbook/internal/tui/theme"
	"github.com/theirongolddev/tripbook/internal/tui/weather"

	"github.com/charmbracelet/bubbles/filepicker"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// fileLoadedMsg is sent when a file or the sample has been decoded.
type fileLoadedMsg struct {
	doc source.Document
	err error
}

// generatedMsg carries the outcome of one generation request.
type generatedMsg struct {
	ticket session.Ticket
	data   *model.BookletData
	err    error
}

// rotateMsg fires a highlight rotation timer.
type rotateMsg struct {
	key session.TimerKey
}

// overlayTickMsg advances the weather animation.
type overlayTickMsg struct{}

// statusMsg reports the result of a side action such as writing a template.
type statusMsg struct {
	text string
	err  bool
}

type inputFocus int

const (
	focusPicker inputFocus = iota
	focusPath
)

const (
	minTerminalWidth  = 60
	minTerminalHeight = 20
	maxContentWidth   = 120

	overlayFrame = 100 * time.Millisecond
	previewChars = 500
)

// Options configures a new App.
type Options struct {
	Config config.Config

	// Interpreter replaces the Gemini client built from Config.
	Interpreter pipeline.Interpreter

	// Document is loaded as the initial input.
	Document *source.Document

	// WorkDir is where the file picker starts and where the template and
	// guide are written. Defaults to the current directory.
	WorkDir string

	// Rand seeds the weather overlay.
	Rand *rand.Rand
}

// App is the root Bubble Tea model.
type App struct {
	sess *session.Session
	cfg  config.Config

	interp   pipeline.Interpreter
	timeout  time.Duration
	interval time.Duration
	workDir  string

	// Outstanding generation
	cancel  context.CancelFunc
	started time.Time

	// Input screen
	picker    filepicker.Model
	pathInput textinput.Model
	focus     inputFocus

	overlay   *weather.Overlay
	animating bool

	spinner spinner.Model

	// UI state
	width     int
	height    int
	showHelp  bool
	status    string
	statusErr bool

	// First-run setup (huh form)
	setupForm *huh.Form
	setupVals *SetupValues
	needSetup bool

	log *slog.Logger
}

// NewApp creates a new TUI app model.
func NewApp(opts Options) App {
	cfg := opts.Config
	workDir := opts.WorkDir
	if workDir == "" {
		workDir = "."
	}

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Active.Accent).Background(theme.Active.Surface)

	fp := filepicker.New()
	fp.AllowedTypes = append([]string(nil), source.Extensions...)
	fp.CurrentDirectory = workDir
	fp.ShowPermissions = false
	fp.AutoHeight = false
	fp.Height = pickerHeight

	ti := textinput.New()
	ti.Placeholder = "/path/to/itinerary.xlsx"
	ti.Prompt = "path ▸ "
	ti.CharLimit = 1024
	ti.Width = 50

	a := App{
		sess:      session.New(),
		cfg:       cfg,
		interp:    opts.Interpreter,
		timeout:   cfg.Timeout(),
		interval:  cfg.RotationInterval(),
		workDir:   workDir,
		picker:    fp,
		pathInput: ti,
		overlay:   weather.NewOverlay(opts.Rand),
		spinner:   sp,
		log:       logging.For(logging.ComponentTUI),
	}

	if a.interp == nil {
		if config.APIKey(cfg) == "" {
			a.needSetup = true
			a.setupVals = NewSetupValues(cfg)
			a.setupForm = NewSetupForm(a.setupVals, true)
		}
		a.interp = newInterpreter(cfg)
	}

	if opts.Document != nil {
		_ = a.sess.Load(*opts.Document)
	}
	return a
}

// newInterpreter builds the Gemini client for cfg. Without a key the client
// is nil and every call fails as unauthorized.
func newInterpreter(cfg config.Config) pipeline.Interpreter {
	return gemini.NewClient(config.APIKey(cfg),
		gemini.WithModel(cfg.Gemini.Model),
		gemini.WithBaseURL(cfg.Gemini.BaseURL),
	)
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	cmds := []tea.Cmd{a.picker.Init()}
	if a.needSetup && a.setupForm != nil {
		cmds = append(cmds, a.setupForm.Init())
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		// Forward to setup form if active
		if a.setupForm != nil {
			a.setupForm = a.setupForm.WithWidth(msg.Width).WithHeight(msg.Height)
		}
		a.pathInput.Width = max(20, min(msg.Width, maxContentWidth)-20)
		return a, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			a.releaseCancel()
			return a, tea.Quit
		}
		if a.needSetup && a.setupForm != nil {
			return a.updateSetupForm(msg)
		}
		if a.showHelp {
			a.showHelp = false
			return a, nil
		}
		switch a.sess.Step() {
		case session.StepInput:
			return a.updateInput(msg)
		case session.StepLoading:
			return a.updateLoading(msg)
		case session.StepView:
			return a.updateView(msg)
		}
		return a, nil

	case spinner.TickMsg:
		if a.sess.Step() != session.StepLoading {
			return a, nil
		}
		var cmd tea.Cmd
		a.spinner, cmd = a.spinner.Update(msg)
		return a, cmd

	case fileLoadedMsg:
		if msg.err != nil {
			a.log.Warn("file rejected", "error", msg.err)
			a.sess.Reject(msg.err)
			return a, nil
		}
		if err := a.sess.Load(msg.doc); err != nil {
			return a, nil
		}
		a.log.Info("file loaded", "file", msg.doc.Name, "format", msg.doc.Format.String(), "chars", len(msg.doc.Text))
		a.setStatus("Loaded "+msg.doc.Name, false)
		return a, nil

	case generatedMsg:
		return a.handleGenerated(msg)

	case rotateMsg:
		if a.sess.Rotate(msg.key) {
			return a, a.rotationCmd()
		}
		return a, nil

	case overlayTickMsg:
		if a.sess.Step() == session.StepView && a.overlay.Animated() {
			a.overlay.Step(overlayFrame)
			return a, overlayTickCmd()
		}
		a.animating = false
		return a, nil

	case statusMsg:
		a.setStatus(msg.text, msg.err)
		return a, nil
	}

	if a.needSetup && a.setupForm != nil {
		return a.updateSetupForm(msg)
	}

	// Directory reads and cursor blinks
	if a.sess.Step() == session.StepInput {
		var cmds []tea.Cmd
		var cmd tea.Cmd
		a.picker, cmd = a.picker.Update(msg)
		cmds = append(cmds, cmd)
		if a.focus == focusPath {
			a.pathInput, cmd = a.pathInput.Update(msg)
			cmds = append(cmds, cmd)
		}
		return a, tea.Batch(cmds...)
	}
	return a, nil
}

func (a App) updateSetupForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := a.setupForm.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		a.setupForm = f
	}

	if a.setupForm.State == huh.StateCompleted {
		a.saveSetup()
		a.needSetup = false
		a.setupForm = nil
		return a, nil
	}

	if a.setupForm.State == huh.StateAborted {
		a.needSetup = false
		a.setupForm = nil
		a.setStatus("Setup skipped. Run `tripbook setup` to add an API key.", true)
		return a, nil
	}

	return a, cmd
}

func (a App) updateLoading(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		if a.sess.Cancel() {
			a.releaseCancel()
			a.log.Info("generation canceled by user")
			a.setStatus("Generation canceled", false)
		}
	case "?":
		a.showHelp = true
	}
	return a, nil
}

func (a App) updateView(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return a, tea.Quit
	case "?":
		a.showHelp = true
	case "left", "h":
		if a.sess.Previous() {
			cmd := a.pageCmd()
			return a, cmd
		}
	case "right", "l", "enter":
		if a.sess.Next() {
			cmd := a.pageCmd()
			return a, cmd
		}
		if msg.String() == "enter" {
			return a.finish()
		}
	case "f":
		return a.finish()
	case "]", "tab":
		if a.sess.AdvanceHighlight() {
			return a, a.rotationCmd()
		}
	case "[", "shift+tab":
		if a.sess.RetreatHighlight() {
			return a, a.rotationCmd()
		}
	case "esc":
		a.sess.Reset()
		a.overlay.Clear()
		a.setStatus("Back to input", false)
	}
	return a, nil
}

func (a App) finish() (tea.Model, tea.Cmd) {
	if !a.sess.Finish() {
		return a, nil
	}
	a.overlay.Clear()
	a.setStatus("Booklet closed. Load another itinerary or press G to regenerate.", false)
	return a, nil
}

// startGenerate moves the session to loading and launches the request.
func (a App) startGenerate() (tea.Model, tea.Cmd) {
	ticket, err := a.sess.BeginGenerate()
	if err != nil {
		return a, nil
	}
	ctx, cancel := context.WithCancel(context.Background())
	a.cancel = cancel
	a.started = time.Now()
	a.status = ""
	return a, tea.Batch(
		a.spinner.Tick,
		generateCmd(ctx, a.interp, a.sess.Text(), a.timeout, ticket),
	)
}

func (a App) handleGenerated(msg generatedMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		if a.sess.Fail(msg.ticket, msg.err) {
			a.releaseCancel()
		}
		return a, nil
	}
	if !a.sess.Complete(msg.ticket, msg.data) {
		return a, nil
	}
	a.releaseCancel()
	a.setStatus(fmt.Sprintf("Booklet ready in %s", time.Since(a.started).Round(100*time.Millisecond)), false)
	cmd := a.pageCmd()
	return a, cmd
}

// pageCmd syncs the weather overlay and rotation timer with the shown page.
func (a *App) pageCmd() tea.Cmd {
	nav := a.sess.Navigator()
	if nav == nil || nav.IsCover() {
		a.overlay.Clear()
		return nil
	}
	a.overlay.Set(a.sess.Data().Days[nav.DayIndex()].Weather)

	cmds := []tea.Cmd{a.rotationCmd()}
	if a.overlay.Animated() && !a.animating {
		a.animating = true
		cmds = append(cmds, overlayTickCmd())
	}
	return tea.Batch(cmds...)
}

// rotationCmd schedules the shown day's next highlight rotation, if any.
func (a App) rotationCmd() tea.Cmd {
	key, ok := a.sess.Timer()
	if !ok {
		return nil
	}
	return tea.Tick(a.interval, func(time.Time) tea.Msg {
		return rotateMsg{key: key}
	})
}

func (a *App) releaseCancel() {
	if a.cancel != nil {
		a.cancel()
		a.cancel = nil
	}
}

func (a *App) setStatus(text string, isErr bool) {
	a.status = text
	a.statusErr = isErr
}

func (a App) contentWidth() int {
	cw := a.width
	if cw > maxContentWidth {
		cw = maxContentWidth
	}
	return cw
}

// View implements tea.Model.
func (a App) View() string {
	if a.width == 0 {
		return ""
	}

	if a.width < minTerminalWidth || a.height < minTerminalHeight {
		return a.viewTooSmall()
	}

	// First-run setup wizard
	if a.needSetup && a.setupForm != nil {
		return a.setupForm.View()
	}

	if a.showHelp {
		return a.viewHelp()
	}

	switch a.sess.Step() {
	case session.StepLoading:
		return a.viewLoading()
	case session.StepView:
		return a.viewBooklet()
	default:
		return a.viewInput()
	}
}

func (a App) viewTooSmall() string {
	h := a.height
	if h < 5 {
		h = 5
	}

	msg := fmt.Sprintf(
		"\n  Terminal too small (%dx%d)\n\n  tripbook needs at least %dx%d.\n",
		a.width, a.height,
		minTerminalWidth, minTerminalHeight,
	)

	return padHeight(truncateHeight(msg, h), h)
}

func (a App) viewLoading() string {
	t := theme.Active
	w := a.width
	h := a.height

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderAccent).
		Background(t.Surface).
		Padding(2, 4)

	logoStyle := lipgloss.NewStyle().
		Foreground(t.Gold).
		Background(t.Surface).
		Bold(true)

	subtitleStyle := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Background(t.Surface)

	spinnerStyle := lipgloss.NewStyle().
		Foreground(t.Accent).
		Background(t.Surface)

	dimStyle := lipgloss.NewStyle().
		Foreground(t.TextDim).
		Background(t.Surface)

	name := a.sess.FileName()
	if name == "" {
		name = "itinerary"
	}

	var b strings.Builder
	b.WriteString(logoStyle.Render("◈ tripbook"))
	b.WriteString(subtitleStyle.Render(" · Building your booklet"))
	b.WriteString("\n\n")
	b.WriteString(spinnerStyle.Render(a.spinner.View()))
	b.WriteString(subtitleStyle.Render(" Interpreting " + truncStr(name, 40)))
	b.WriteString("\n\n")
	elapsed := time.Since(a.started).Truncate(time.Second)
	b.WriteString(dimStyle.Render(fmt.Sprintf("%s elapsed · gives up after %s", elapsed, a.timeout)))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("esc to cancel"))

	card := cardStyle.Render(b.String())

	return lipgloss.Place(w, h, lipgloss.Center, lipgloss.Center, card,
		lipgloss.WithWhitespaceBackground(t.Background))
}

func (a App) viewHelp() string {
	t := theme.Active
	h := a.height
	w := a.width

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderAccent).
		Background(t.Surface).
		Padding(1, 3)

	titleStyle := lipgloss.NewStyle().
		Foreground(t.AccentBright).
		Background(t.Surface).
		Bold(true)

	sectionStyle := lipgloss.NewStyle().
		Foreground(t.Accent).
		Background(t.Surface).
		Bold(true)

	keyStyle := lipgloss.NewStyle().
		Foreground(t.Cyan).
		Background(t.Surface).
		Bold(true)

	descStyle := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Background(t.Surface)

	dimStyle := lipgloss.NewStyle().
		Foreground(t.TextDim).
		Background(t.Surface)

	var b strings.Builder
	b.WriteString(titleStyle.Render("◈ Keyboard Shortcuts"))
	b.WriteString("\n\n")

	sections := []struct {
		title    string
		bindings []struct{ key, desc string }
	}{
		{"Input", []struct{ key, desc string }{
			{"↑ ↓ enter", "Browse and pick a file"},
			{"p /", "Type or paste a path"},
			{"s", "Load sample data"},
			{"t g", "Save template / guide here"},
			{"x", "Clear loaded file"},
			{"G", "Generate booklet"},
		}},
		{"Booklet", []struct{ key, desc string }{
			{"← → h l", "Previous / Next page"},
			{"[ ]", "Previous / Next highlight"},
			{"f", "Finish (last page)"},
			{"esc", "Back to input"},
		}},
		{"General", []struct{ key, desc string }{
			{"esc", "Cancel generation"},
			{"?", "Toggle help"},
			{"q", "Quit"},
		}},
	}
	for i, sec := range sections {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(sectionStyle.Render(sec.title))
		b.WriteString("\n")
		for _, bind := range sec.bindings {
			fmt.Fprintf(&b, "  %s  %s\n",
				keyStyle.Render(fmt.Sprintf("%-10s", bind.key)),
				descStyle.Render(bind.desc))
		}
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render("Press any key to close"))

	card := cardStyle.Render(b.String())

	return lipgloss.Place(w, h, lipgloss.Center, lipgloss.Center, card,
		lipgloss.WithWhitespaceBackground(t.Background))
}

// frame pads body to the screen above a status bar.
func (a App) frame(body, hints string) string {
	t := theme.Active
	h := a.height - 1

	body = padHeight(truncateHeight(body, h), h)
	body = fillLinesWithBackground(body, a.width, t.Background)

	status := a.status
	if status != "" && a.statusErr {
		status = lipgloss.NewStyle().Foreground(t.Red).Render(status)
	}
	return body + "\n" + components.RenderStatusBar(a.width, hints, status)
}

func generateCmd(ctx context.Context, interp pipeline.Interpreter, text string, timeout time.Duration, ticket session.Ticket) tea.Cmd {
	return func() tea.Msg {
		data, err := pipeline.Generate(ctx, interp, text, timeout)
		return generatedMsg{ticket: ticket, data: data, err: err}
	}
}

func overlayTickCmd() tea.Cmd {
	return tea.Tick(overlayFrame, func(time.Time) tea.Msg {
		return overlayTickMsg{}
	})
}

func truncStr(s string, limit int) string {
	if limit <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit-1]) + "…"
}

func truncateHeight(s string, limit int) string {
	lines := strings.Split(s, "\n")
	if len(lines) <= limit {
		return s
	}
	return strings.Join(lines[:limit], "\n")
}

func padHeight(s string, h int) string {
	lines := strings.Split(s, "\n")
	if len(lines) >= h {
		return s
	}
	padding := strings.Repeat("\n", h-len(lines))
	return s + padding
}

// fillLinesWithBackground pads each line to width w with background color.
func fillLinesWithBackground(s string, w int, bg lipgloss.Color) string {
	lines := strings.Split(s, "\n")

	var result strings.Builder
	for i, line := range lines {
		placed := lipgloss.PlaceHorizontal(w, lipgloss.Left, line,
			lipgloss.WithWhitespaceBackground(bg))
		result.WriteString(placed)
		if i < len(lines)-1 {
			result.WriteString("\n")
		}
	}
	return result.String()
}
