package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/muurk/kvpairs/internal/editor"
	"github.com/muurk/kvpairs/internal/session"
)

// View renders the current screen
func (m AppModel) View() string {
	snap := m.State.Snapshot()

	sections := []string{
		lipgloss.PlaceHorizontal(m.width(), lipgloss.Center, RenderTitle()),
		m.renderPairs(snap),
	}

	switch snap.Screen {
	case session.ScreenMain:
		sections = append(sections, m.renderMenu(snap))
	case session.ScreenEditing:
		sections = append(sections, m.renderEditor(snap))
	case session.ScreenConfirmExit:
		sections = append(sections, m.renderExitPrompt())
	}

	if snap.Notice != "" {
		sections = append(sections, lipgloss.PlaceHorizontal(m.width(), lipgloss.Center, NoticeStyle.Render(snap.Notice)))
	}

	footer := HelpStyle.Render(m.Help.View(m.Keys.helpFor(snap.Screen)))
	sections = append(sections, lipgloss.PlaceHorizontal(m.width(), lipgloss.Center, footer))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m AppModel) width() int {
	if m.Width <= 0 {
		return 80
	}
	return m.Width
}

// renderPairs renders the committed pairs, sorted by key
func (m AppModel) renderPairs(snap session.Snapshot) string {
	var lines []string
	for _, p := range snap.Pairs {
		lines = append(lines, PairStyle.Render(FormatPair(p)))
	}
	if len(lines) == 0 {
		lines = append(lines, EmptyListStyle.Render("No pairs yet"))
	}

	return ListBoxStyle.Width(m.width() - 2).Render(strings.Join(lines, "\n"))
}

// FormatPair formats a pair for the listing
func FormatPair(p session.Pair) string {
	return fmt.Sprintf("%-*s : %s", KeyColumnWidth, p.Key, p.Value)
}

func (m AppModel) renderMenu(snap session.Snapshot) string {
	items := make([]string, len(snap.MenuLabels))
	for i, label := range snap.MenuLabels {
		items[i] = RenderMenuItem(label, i == snap.MenuIndex)
	}
	menu := lipgloss.JoinVertical(lipgloss.Center, items...)
	return lipgloss.NewStyle().Padding(1, 0).Render(
		lipgloss.PlaceHorizontal(m.width(), lipgloss.Center, menu),
	)
}

func (m AppModel) renderEditor(snap session.Snapshot) string {
	width := popupWidth(m.width())
	fieldWidth := (width - 8) / 2

	keyBox := renderField("Key", snap.Key, snap.Focus == editor.FieldKey, fieldWidth)
	valueBox := renderField("Value", snap.Value, snap.Focus == editor.FieldValue, fieldWidth)

	body := lipgloss.JoinVertical(lipgloss.Left,
		PopupTitleStyle.Render("Enter a new key-value pair"),
		"",
		lipgloss.JoinHorizontal(lipgloss.Top, keyBox, "  ", valueBox),
	)
	popup := PopupStyle.Width(width).Render(body)
	return lipgloss.PlaceHorizontal(m.width(), lipgloss.Center, popup)
}

func renderField(label, text string, focused bool, width int) string {
	style := BlurredInputStyle
	if focused {
		style = FocusedInputStyle
		text += "_"
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		InputLabelStyle.Render(label),
		style.Width(width).Render(text),
	)
}

func (m AppModel) renderExitPrompt() string {
	prompt := fmt.Sprintf("Would you like to output the buffer as %s? (y/n)", m.Format)
	body := lipgloss.JoinVertical(lipgloss.Left,
		PopupTitleStyle.Render("Y/N"),
		"",
		ExitPromptStyle.Render(prompt),
	)
	popup := PopupStyle.Width(popupWidth(m.width())).Render(body)
	return lipgloss.PlaceHorizontal(m.width(), lipgloss.Center, popup)
}
