package update

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/sandeepkv93/todocal/internal/views"
)

type KeyBinding struct {
	Key    string
	Action string
}

type helpKeyMap struct {
	short []key.Binding
	full  [][]key.Binding
}

func (k helpKeyMap) ShortHelp() []key.Binding  { return k.short }
func (k helpKeyMap) FullHelp() [][]key.Binding { return k.full }

func (m Model) renderHelpIfVisible() string {
	if !m.HelpVisible {
		return ""
	}
	bindings := m.helpBindings()
	var plain []string
	for _, kb := range m.contextBindings() {
		plain = append(plain, fmt.Sprintf("- %s: %s", keyLabel(kb.Key), kb.Action))
	}
	return views.RenderHelpPanel(views.HelpPanelData{
		Bindings: plain,
		HelpView: m.helpModel.View(helpKeyMap{short: bindings, full: [][]key.Binding{bindings}}),
	})
}

func (m Model) globalBindings() []KeyBinding {
	return []KeyBinding{
		{Key: "/", Action: "open command palette"},
		{Key: m.Keys.Help, Action: "toggle help panel"},
		{Key: m.Keys.Quit, Action: "quit app"},
	}
}

func (m Model) contextBindings() []KeyBinding {
	if !m.State.LoggedIn() {
		return []KeyBinding{
			{Key: m.Keys.Login, Action: "sign in"},
			{Key: m.Keys.Register, Action: "create account"},
		}
	}
	out := []KeyBinding{
		{Key: m.Keys.SwitchTo, Action: "switch todos/events"},
		{Key: "j/k", Action: "move cursor"},
		{Key: m.Keys.AddTodo, Action: "add todo"},
		{Key: m.Keys.AddEvent, Action: "add event"},
		{Key: m.Keys.Delete, Action: "delete selected"},
		{Key: m.Keys.Refresh, Action: "refresh lists"},
		{Key: m.Keys.Logout, Action: "sign out"},
	}
	if m.Focus == PaneTodos {
		out = append(out,
			KeyBinding{Key: m.Keys.Toggle, Action: "toggle completed"},
			KeyBinding{Key: m.Keys.Detail, Action: "show description"},
		)
	}
	return out
}

func (m Model) helpBindings() []key.Binding {
	all := append(m.contextBindings(), m.globalBindings()...)
	out := make([]key.Binding, 0, len(all))
	for _, kb := range all {
		out = append(out, key.NewBinding(key.WithKeys(kb.Key), key.WithHelp(keyLabel(kb.Key), kb.Action)))
	}
	return out
}

func keyLabel(k string) string {
	if k == " " {
		return "space"
	}
	return k
}
