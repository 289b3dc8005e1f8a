package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func (m model) View() string {
	w := m.width - 4
	if w <= 0 {
		w = 80
	}

	var (
		appPad = lipgloss.NewStyle().Padding(1, 2)

		muted = lipgloss.NewStyle().Faint(true)
		bold  = lipgloss.NewStyle().Bold(true)

		titleBar = lipgloss.NewStyle().
				Bold(true).
				Padding(0, 1).
				Border(lipgloss.RoundedBorder())

		panelBase = lipgloss.NewStyle().
				Padding(1, 1).
				Border(lipgloss.RoundedBorder()).
				MarginTop(1)

		fieldFocused = lipgloss.NewStyle().Bold(true)
		fieldBlurred = lipgloss.NewStyle().Faint(true)

		statusBox = lipgloss.NewStyle().
				Padding(0, 1).
				Border(lipgloss.RoundedBorder())

		errorBox = lipgloss.NewStyle().
				Padding(0, 1).
				Border(lipgloss.RoundedBorder()).
				Bold(true)

		footer = lipgloss.NewStyle().MarginTop(1)
	)

	innerW := w - 4
	if innerW < 40 {
		innerW = 40
	}

	title := "GitHub Release Asset Sync"
	sub := "Upload local files as release assets, replacing same-named ones"
	if m.syncing {
		sub = fmt.Sprintf("%s  •  %s Synchronizing…", sub, m.spin.View())
	}

	header := titleBar.Width(w - 2).Render(
		lipgloss.JoinVertical(
			lipgloss.Left,
			bold.Render(title),
			muted.Render(sub),
		),
	)

	inputs := []struct {
		view  string
		focus focusTarget
	}{
		{m.project.View(), focusProject},
		{m.tag.View(), focusTag},
		{m.files.View(), focusFiles},
		{m.token.View(), focusToken},
	}

	var formBody strings.Builder
	fmt.Fprintf(&formBody, "%s\n", muted.Render("Tab/Shift+Tab to change focus."))
	for _, in := range inputs {
		style := fieldBlurred
		if m.focus == in.focus {
			style = fieldFocused
		}
		fmt.Fprintf(&formBody, "\n%s", style.Render(in.view))
	}

	formPanel := panelBase.Width(w - 2).Render(formBody.String())

	sections := []string{header, formPanel}

	if len(m.results) > 0 {
		var resBody strings.Builder
		for _, r := range m.results {
			action := "uploaded"
			if r.Replaced {
				action = "replaced"
			}
			fmt.Fprintf(&resBody, "%s  %s\n", bold.Render(r.Name), muted.Render(action))
		}
		sections = append(sections, panelBase.Width(w-2).Render(strings.TrimRight(resBody.String(), "\n")))
	}

	if strings.TrimSpace(m.status) != "" {
		sections = append(sections, statusBox.Width(innerW).MarginTop(1).Render(m.status))
	}
	if m.err != nil {
		sections = append(sections, errorBox.Width(innerW).MarginTop(1).Render("Error: "+m.err.Error()))
	}

	sections = append(sections, footer.Render(muted.Render("ctrl+s sync  •  esc clear  •  q quit")))

	return appPad.Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
}
