package tui

import (
	"context"
	"errors"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"

	"github.com/zckv/action-update-release/internal/syncer"
)

type focusTarget int

const (
	focusProject focusTarget = iota
	focusTag
	focusFiles
	focusToken
)

const focusCount = int(focusToken) + 1

type model struct {
	project textinput.Model
	tag     textinput.Model
	files   textinput.Model
	token   textinput.Model

	focus focusTarget

	syncing    bool
	spin       spinner.Model
	syncCancel context.CancelFunc

	results []syncer.Result

	status string
	err    error

	width  int
	height int
}

func newModel() model {
	project := textinput.New()
	project.Placeholder = "owner/repo"
	project.Prompt = "Project: "
	project.CharLimit = 200
	project.Width = 48

	tag := textinput.New()
	tag.Placeholder = "v1.2.3"
	tag.Prompt = "Tag:     "
	tag.CharLimit = 200
	tag.Width = 48

	files := textinput.New()
	files.Placeholder = "dist/ README.md (space-separated files or dirs)"
	files.Prompt = "Files:   "
	files.CharLimit = 2000
	files.Width = 48

	token := textinput.New()
	token.Placeholder = "(or GITHUB_TOKEN)"
	token.Prompt = "Token:   "
	token.CharLimit = 4000
	token.Width = 48
	token.EchoMode = textinput.EchoPassword
	token.EchoCharacter = '•'

	sp := spinner.New()

	m := model{
		project: project,
		tag:     tag,
		files:   files,
		token:   token,
		focus:   focusProject,
		spin:    sp,
		status:  "ctrl+s: sync   tab: next   shift+tab: prev   q: quit",
	}

	m.applyFocus()
	return m
}

func (m *model) applyFocus() {
	inputs := []*textinput.Model{&m.project, &m.tag, &m.files, &m.token}
	for i, in := range inputs {
		if focusTarget(i) == m.focus {
			in.Focus()
		} else {
			in.Blur()
		}
	}
}

func (m *model) resolveToken() string {
	if strings.TrimSpace(m.token.Value()) != "" {
		return strings.TrimSpace(m.token.Value())
	}
	return strings.TrimSpace(os.Getenv("GITHUB_TOKEN"))
}

func (m *model) resolvePaths() []string {
	return strings.Fields(m.files.Value())
}

func (m *model) validateSync() error {
	if strings.TrimSpace(m.project.Value()) == "" {
		return errors.New("project is required")
	}
	if strings.TrimSpace(m.tag.Value()) == "" {
		return errors.New("tag is required")
	}
	if len(m.resolvePaths()) == 0 {
		return errors.New("at least one file or directory is required")
	}
	if m.resolveToken() == "" {
		return errors.New("token is required (flag or GITHUB_TOKEN)")
	}
	return nil
}

func (m *model) setError(err error) {
	m.err = err
	if err != nil {
		m.status = err.Error()
	}
}

func (m *model) clearError() {
	m.err = nil
}
