package update

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandeepkv93/todocal/internal/commands"
	"github.com/sandeepkv93/todocal/internal/i18n"
	"github.com/sandeepkv93/todocal/internal/views"
)

func (m Model) openPalette() Model {
	m.Palette.Active = true
	m.Palette.Input = ""
	m.commandInput.Focus()
	m.commandInput.SetValue("")
	m.Status = StatusBar{Text: "command palette active"}
	return m
}

func (m Model) closePalette() Model {
	m.Palette.Active = false
	m.Palette.Input = ""
	m.commandInput.SetValue("")
	m.commandInput.Blur()
	return m
}

func (m Model) handlePaletteKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m = m.closePalette()
		m.Status = StatusBar{Text: "command palette closed"}
		return m, nil
	case "enter":
		m.Palette.Input = m.commandInput.Value()
		return m.executePaletteCommand()
	}
	if msg.Type == tea.KeyRunes || msg.Type == tea.KeySpace {
		m.commandInput.SetValue(m.commandInput.Value() + string(msg.Runes))
		m.Palette.Input = m.commandInput.Value()
		return m, nil
	}
	var cmd tea.Cmd
	m.commandInput, cmd = m.commandInput.Update(msg)
	m.Palette.Input = m.commandInput.Value()
	return m, cmd
}

// executePaletteCommand runs the typed command. Data commands only have a
// handler while signed in, so they fail with handler_missing otherwise.
func (m Model) executePaletteCommand() (Model, tea.Cmd) {
	raw := strings.TrimSpace(m.Palette.Input)
	m = m.closePalette()

	cmd, err := commands.ParseIn(raw, m.catalog.Location())
	if err != nil {
		return m, m.notify(LevelDanger, err.Error())
	}

	var next tea.Cmd
	handlers := commands.Handlers{
		Login: func() (commands.Result, error) {
			m.showModal(ModalLogin)
			return commands.Result{}, nil
		},
		Register: func() (commands.Result, error) {
			m.showModal(ModalRegister)
			return commands.Result{}, nil
		},
	}
	if m.State.LoggedIn() {
		handlers.Login, handlers.Register = nil, nil
		handlers.Todo = func(a commands.TodoArgs) (commands.Result, error) {
			next = m.beginLoading(m.addTodoCmd(a.Draft()))
			return commands.Result{}, nil
		}
		handlers.Event = func(a commands.EventArgs) (commands.Result, error) {
			next = m.beginLoading(m.addEventCmd(a.Draft()))
			return commands.Result{}, nil
		}
		handlers.Refresh = func() (commands.Result, error) {
			next = m.beginLoading(m.loadAllCmd())
			return commands.Result{Message: m.catalog.T(i18n.MsgRefreshed)}, nil
		}
		handlers.Logout = func() (commands.Result, error) {
			var c tea.Cmd
			m, c = m.logout()
			next = c
			return commands.Result{}, nil
		}
	}

	res, err := commands.Execute(cmd, handlers)
	if err != nil {
		return m, m.notify(LevelDanger, err.Error())
	}
	if res.Message != "" {
		return m, tea.Batch(next, m.notify(LevelInfo, res.Message))
	}
	return m, next
}

func (m Model) renderCommandPalette() string {
	return views.RenderCommandPalette(m.Palette.Active, m.commandInput.View())
}
