package tui

import (
	"errors"
	"path/filepath"
	"strings"

	"github.com/theirongolddev/tripbook/assets"
	"github.com/theirongolddev/tripbook/internal/cli"
	"github.com/theirongolddev/tripbook/internal/pipeline"
	"github.com/theirongolddev/tripbook/internal/source"
	"github.com/theirongolddev/tripbook/internal/tui/components"
	"github.com/theirongolddev/tripbook/internal/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	pickerHeight = 10
	previewLines = 12
	twoColumnMin = 100
)

func (a App) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if a.focus == focusPath {
		switch msg.String() {
		case "esc":
			a.focus = focusPicker
			a.pathInput.Blur()
			return a, nil
		case "enter":
			path := cleanPath(a.pathInput.Value())
			a.pathInput.SetValue("")
			a.pathInput.Blur()
			a.focus = focusPicker
			if path == "" {
				return a, nil
			}
			return a, loadFileCmd(path)
		}
		var cmd tea.Cmd
		a.pathInput, cmd = a.pathInput.Update(msg)
		return a, cmd
	}

	switch msg.String() {
	case "q":
		return a, tea.Quit
	case "?":
		a.showHelp = true
		return a, nil
	case "s":
		return a, loadSampleCmd()
	case "t":
		return a, writeAssetCmd(filepath.Join(a.workDir, assets.TemplateName), assets.Template)
	case "g":
		return a, writeAssetCmd(filepath.Join(a.workDir, assets.GuideName), assets.Guide)
	case "x":
		if a.sess.Clear() {
			a.setStatus("Cleared", false)
		}
		return a, nil
	case "G", "ctrl+g":
		return a.startGenerate()
	case "p", "/":
		a.focus = focusPath
		return a, a.pathInput.Focus()
	}

	var cmd tea.Cmd
	a.picker, cmd = a.picker.Update(msg)
	if ok, path := a.picker.DidSelectFile(msg); ok {
		return a, tea.Batch(cmd, loadFileCmd(path))
	}
	if ok, path := a.picker.DidSelectDisabledFile(msg); ok {
		a.sess.Reject(&source.FileDecodeError{
			Name:   filepath.Base(path),
			Format: source.FormatUnknown,
			Err:    source.ErrUnsupportedFormat,
		})
	}
	return a, cmd
}

// cleanPath strips the quoting terminals add when a file is dragged in.
func cleanPath(s string) string {
	s = strings.TrimSpace(s)
	if len(s) >= 2 && (s[0] == '\'' || s[0] == '"') && s[len(s)-1] == s[0] {
		s = s[1 : len(s)-1]
	}
	return strings.ReplaceAll(s, `\ `, " ")
}

func loadFileCmd(path string) tea.Cmd {
	return func() tea.Msg {
		doc, err := source.LoadFile(path)
		return fileLoadedMsg{doc: doc, err: err}
	}
}

func loadSampleCmd() tea.Cmd {
	return func() tea.Msg {
		doc, err := source.Decode(assets.SampleName, assets.Sample)
		return fileLoadedMsg{doc: doc, err: err}
	}
}

func writeAssetCmd(path string, data []byte) tea.Cmd {
	return func() tea.Msg {
		if err := assets.Write(path, data, false); err != nil {
			if errors.Is(err, assets.ErrExists) {
				return statusMsg{text: filepath.Base(path) + " already exists here", err: true}
			}
			return statusMsg{text: err.Error(), err: true}
		}
		return statusMsg{text: "Saved " + path}
	}
}

func (a App) viewInput() string {
	t := theme.Active
	cw := a.contentWidth()

	titleStyle := lipgloss.NewStyle().Foreground(t.Gold).Bold(true)
	subtitleStyle := lipgloss.NewStyle().Foreground(t.TextMuted)

	var b strings.Builder
	b.WriteString("\n ")
	b.WriteString(titleStyle.Render("◈ tripbook"))
	b.WriteString(subtitleStyle.Render(" · Turn a spreadsheet itinerary into a travel booklet"))
	b.WriteString("\n\n")

	if cw >= twoColumnMin {
		widths := components.LayoutRow(cw, 2)
		b.WriteString(components.CardRow([]string{
			a.renderPickerCard(widths[0]),
			a.renderLoadedCard(widths[1]),
		}))
	} else {
		b.WriteString(a.renderPickerCard(cw))
		b.WriteString("\n")
		b.WriteString(a.renderLoadedCard(cw))
	}
	b.WriteString("\n")

	if msg := pipeline.UserMessage(a.sess.Err()); msg != "" {
		errStyle := lipgloss.NewStyle().Foreground(t.Red).Bold(true)
		b.WriteString("\n ")
		b.WriteString(errStyle.Render("✗ " + msg))
		b.WriteString("\n")
	}

	b.WriteString("\n ")
	b.WriteString(a.renderActions())

	hints := "[?]help  [q]uit"
	if a.focus == focusPath {
		hints = "[enter]load  [esc]back"
	}
	return a.frame(b.String(), hints)
}

func (a App) renderPickerCard(outerWidth int) string {
	t := theme.Active

	var body strings.Builder
	body.WriteString(a.picker.View())
	body.WriteString("\n")
	if a.focus == focusPath {
		body.WriteString(a.pathInput.View())
	} else {
		body.WriteString(lipgloss.NewStyle().Foreground(t.TextDim).Render("p  type or paste a path"))
	}

	card := components.ContentCard("Choose a file  "+strings.Join(source.Extensions, " "), body.String(), outerWidth)
	return card
}

func (a App) renderLoadedCard(outerWidth int) string {
	t := theme.Active
	inner := components.CardInnerWidth(outerWidth)

	text := a.sess.Text()
	if text == "" {
		hint := lipgloss.NewStyle().Foreground(t.TextDim).Italic(true)
		body := hint.Render("No file loaded.") + "\n\n" +
			hint.Render("Pick a spreadsheet, or press s to try the sample trip.") + "\n" +
			hint.Render("Press t for a template and g for the formatting guide.")
		return components.ContentCard("Itinerary", body, outerWidth)
	}

	nameStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Bold(true)
	countStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	previewStyle := lipgloss.NewStyle().Foreground(t.TextDim)

	name := a.sess.FileName()
	if name == "" {
		name = "Pasted itinerary"
	}
	chars := int64(len([]rune(text)))

	var body strings.Builder
	body.WriteString(nameStyle.Render("✓ " + truncStr(name, inner-2)))
	body.WriteString("\n")
	body.WriteString(countStyle.Render(cli.FormatNumber(chars) + " characters"))
	body.WriteString("\n\n")

	preview := source.Document{Text: text}.Preview(previewChars)
	lines := strings.Split(preview, "\n")
	if len(lines) > previewLines {
		lines = append(lines[:previewLines], "...")
	}
	for i, line := range lines {
		body.WriteString(previewStyle.Render(truncStr(line, inner)))
		if i < len(lines)-1 {
			body.WriteString("\n")
		}
	}

	return components.ContentCard("Itinerary", body.String(), outerWidth)
}

func (a App) renderActions() string {
	t := theme.Active
	keyStyle := lipgloss.NewStyle().Foreground(t.Cyan).Bold(true)
	descStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim)

	action := func(key, desc string, enabled bool) string {
		if !enabled {
			return dimStyle.Render(key + " " + desc)
		}
		return keyStyle.Render(key) + " " + descStyle.Render(desc)
	}

	loaded := strings.TrimSpace(a.sess.Text()) != ""
	parts := []string{
		action("s", "sample", true),
		action("t", "template", true),
		action("g", "guide", true),
		action("x", "clear", loaded),
		action("G", "generate booklet", loaded),
	}
	return strings.Join(parts, "   ")
}
