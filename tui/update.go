package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/viper"

	"github.com/zckv/action-update-release/internal/ghapi"
	"github.com/zckv/action-update-release/internal/syncer"
)

type syncDoneMsg struct {
	results []syncer.Result
}

type syncErrMsg struct {
	err error
}

type syncCanceledMsg struct{}

func syncRunCmd(ctx context.Context, api syncer.ReleaseAPI, opts syncer.Options) tea.Cmd {
	return func() tea.Msg {
		results, err := syncer.Sync(ctx, api, opts, syncer.Events{})
		if err != nil {
			if errors.Is(err, context.Canceled) {
				return syncCanceledMsg{}
			}
			return syncErrMsg{err: fmt.Errorf("sync release: %w", err)}
		}
		return syncDoneMsg{results: results}
	}
}

func (m model) Init() tea.Cmd {
	return m.spin.Tick
}

func (m *model) cancelSync() {
	if m.syncCancel != nil {
		m.syncCancel()
		m.syncCancel = nil
	}
}

func (m *model) startSync() tea.Cmd {
	// Starting a run cancels any in-flight one.
	m.cancelSync()
	m.syncing = false

	if err := m.validateSync(); err != nil {
		m.setError(err)
		return nil
	}

	m.clearError()
	m.results = nil
	m.syncing = true
	m.status = "Synchronizing…"

	client := ghapi.NewClient(m.resolveToken())
	if base := viper.GetString("github.api_base"); base != "" {
		client.BaseURL = base
	}

	baseCtx, cancel := context.WithCancel(context.Background())
	m.syncCancel = cancel
	ctx, timeoutCancel := context.WithTimeout(baseCtx, 10*time.Minute)

	inner := syncRunCmd(ctx, client, syncer.Options{
		Project: strings.TrimSpace(m.project.Value()),
		Tag:     strings.TrimSpace(m.tag.Value()),
		Paths:   m.resolvePaths(),
	})
	return func() tea.Msg {
		defer timeoutCancel()
		return inner()
	}
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		key := msg.String()

		if key == "q" || key == "ctrl+c" {
			m.cancelSync()
			return m, tea.Quit
		}

		if key == "esc" {
			m.clearError()
			m.status = "Ready"
			return m, nil
		}

		if key == "ctrl+s" {
			return m, m.startSync()
		}

		if key == "tab" {
			m.focus = focusTarget((int(m.focus) + 1) % focusCount)
			m.applyFocus()
			return m, nil
		}
		if key == "shift+tab" {
			i := int(m.focus) - 1
			if i < 0 {
				i = focusCount - 1
			}
			m.focus = focusTarget(i)
			m.applyFocus()
			return m, nil
		}

		return m.updateFocusedInput(msg)

	case syncDoneMsg:
		m.syncing = false
		m.syncCancel = nil
		m.results = msg.results
		m.status = fmt.Sprintf("Synchronized %d assets", len(msg.results))
		return m, nil

	case syncErrMsg:
		m.syncing = false
		m.syncCancel = nil
		m.setError(msg.err)
		return m, nil

	case syncCanceledMsg:
		m.syncing = false
		m.syncCancel = nil
		m.status = "Canceled"
		return m, nil

	default:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd
	}
}

func (m model) updateFocusedInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.focus {
	case focusProject:
		m.project, cmd = m.project.Update(msg)
	case focusTag:
		m.tag, cmd = m.tag.Update(msg)
	case focusFiles:
		m.files, cmd = m.files.Update(msg)
	case focusToken:
		m.token, cmd = m.token.Update(msg)
	}
	return m, cmd
}
