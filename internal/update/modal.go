package update

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandeepkv93/todocal/internal/views"
)

type ModalID string

const (
	ModalLogin    ModalID = "login"
	ModalRegister ModalID = "register"
	ModalAddTodo  ModalID = "addTodo"
	ModalAddEvent ModalID = "addEvent"
	ModalConfirm  ModalID = "confirm"
)

type pendingKind string

const (
	pendingTodo  pendingKind = "todo"
	pendingEvent pendingKind = "event"
)

// pendingDelete is the item a confirm modal asks about. The id is captured
// when the delete key is pressed.
type pendingDelete struct {
	Kind pendingKind
	ID   int64
}

type formField struct {
	Key   string
	Label string
	input textinput.Model
}

type Modal struct {
	ID      ModalID
	Title   string
	Prompt  string
	Fields  []formField
	Cursor  int
	Err     string
	pending *pendingDelete
}

func (f *Modal) Value(key string) string {
	for _, field := range f.Fields {
		if field.Key == key {
			return field.input.Value()
		}
	}
	return ""
}

// SetValue fills a field; used by tests and the palette.
func (f *Modal) SetValue(key, value string) {
	for i := range f.Fields {
		if f.Fields[i].Key == key {
			f.Fields[i].input.SetValue(value)
		}
	}
}

func newField(key, label, placeholder string, secret bool) formField {
	in := textinput.New()
	in.Prompt = ""
	in.Placeholder = placeholder
	in.CharLimit = 256
	in.Width = 36
	if secret {
		in.EchoMode = textinput.EchoPassword
		in.EchoCharacter = '*'
	}
	return formField{Key: key, Label: label, input: in}
}

func (m *Model) showModal(id ModalID) {
	var md *Modal
	switch id {
	case ModalLogin:
		md = &Modal{ID: id, Title: "Sign in", Fields: []formField{
			newField("email", "Email", "you@example.com", false),
			newField("password", "Password", "", true),
		}}
	case ModalRegister:
		md = &Modal{ID: id, Title: "Create account", Fields: []formField{
			newField("email", "Email", "you@example.com", false),
			newField("username", "Username", "", false),
			newField("first_name", "First name", "", false),
			newField("last_name", "Last name", "", false),
			newField("password", "Password", "", true),
			newField("password_confirm", "Confirm password", "", true),
		}}
	case ModalAddTodo:
		md = &Modal{ID: id, Title: "New todo", Fields: []formField{
			newField("title", "Title", "", false),
			newField("description", "Description", "markdown", false),
			newField("priority", "Priority", "low | medium | high", false),
			newField("due_date", "Due date", "YYYY-MM-DD", false),
			newField("is_important", "Important", "y/n", false),
		}}
	case ModalAddEvent:
		md = &Modal{ID: id, Title: "New event", Fields: []formField{
			newField("title", "Title", "", false),
			newField("description", "Description", "markdown", false),
			newField("start_time", "Start", "YYYY-MM-DDTHH:MM", false),
			newField("end_time", "End", "YYYY-MM-DDTHH:MM", false),
			newField("location", "Location", "", false),
		}}
	default:
		return
	}
	md.Fields[0].input.Focus()
	m.Modal = md
}

func (m *Model) showConfirm(prompt string, pending pendingDelete) {
	m.Modal = &Modal{ID: ModalConfirm, Title: "Confirm", Prompt: prompt, pending: &pending}
}

// hideModal closes the overlay when id is the one showing.
func (m *Model) hideModal(id ModalID) {
	if m.Modal != nil && m.Modal.ID == id {
		m.Modal = nil
	}
}

func (m Model) modalOpen(id ModalID) bool {
	return m.Modal != nil && m.Modal.ID == id
}

func (m Model) handleModalKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	md := m.Modal
	if md.ID == ModalConfirm {
		switch strings.ToLower(msg.String()) {
		case "y", "enter":
			pending := *md.pending
			m.Modal = nil
			return m.confirmDelete(pending)
		case "n", "esc", "q":
			m.Modal = nil
		}
		return m, nil
	}

	switch msg.String() {
	case "esc":
		m.Modal = nil
		return m, nil
	case "tab", "down":
		md.moveCursor(1)
		return m, nil
	case "shift+tab", "up":
		md.moveCursor(-1)
		return m, nil
	case "enter":
		if md.Cursor < len(md.Fields)-1 {
			md.moveCursor(1)
			return m, nil
		}
		return m.submitModal()
	case "ctrl+s":
		return m.submitModal()
	}

	field := &md.Fields[md.Cursor]
	if msg.Type == tea.KeyRunes || msg.Type == tea.KeySpace {
		field.input.SetValue(field.input.Value() + string(msg.Runes))
		return m, nil
	}
	var cmd tea.Cmd
	field.input, cmd = field.input.Update(msg)
	return m, cmd
}

func (f *Modal) moveCursor(delta int) {
	if len(f.Fields) == 0 {
		return
	}
	f.Fields[f.Cursor].input.Blur()
	f.Cursor = (f.Cursor + delta + len(f.Fields)) % len(f.Fields)
	f.Fields[f.Cursor].input.Focus()
}

func (m Model) submitModal() (Model, tea.Cmd) {
	switch m.Modal.ID {
	case ModalLogin:
		return m.submitLogin()
	case ModalRegister:
		return m.submitRegister()
	case ModalAddTodo:
		return m.submitAddTodo()
	case ModalAddEvent:
		return m.submitAddEvent()
	}
	return m, nil
}

func (m Model) renderModal() string {
	md := m.Modal
	if md == nil {
		return ""
	}
	if md.ID == ModalConfirm {
		return views.RenderConfirm(md.Prompt)
	}
	fields := make([]views.FieldData, 0, len(md.Fields))
	for i, f := range md.Fields {
		fields = append(fields, views.FieldData{Label: f.Label, View: f.input.View(), Focused: i == md.Cursor})
	}
	return views.RenderModal(views.ModalData{
		Title:  md.Title,
		Fields: fields,
		Error:  md.Err,
		Hint:   "tab next | enter submit on last field | ctrl+s submit | esc cancel",
	})
}
