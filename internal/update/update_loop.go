package update

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandeepkv93/todocal/internal/controller"
	"github.com/sandeepkv93/todocal/internal/i18n"
	"github.com/sandeepkv93/todocal/internal/model"
	"github.com/sandeepkv93/todocal/internal/views"
)

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.checkAuthCmd(), m.spinner.Tick)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch typed := msg.(type) {
	case tea.KeyMsg:
		if typed.String() == "ctrl+c" {
			m.Quitting = true
			return m, tea.Quit
		}
		if m.Modal != nil {
			return m.handleModalKey(typed)
		}
		if m.Palette.Active {
			return m.handlePaletteKey(typed)
		}
		if m.DetailOpen {
			switch typed.String() {
			case "esc", m.Keys.Detail, "enter":
				m.DetailOpen = false
			}
			return m, nil
		}
		return m.handleKey(typed)
	case spinner.TickMsg:
		if !m.Ready || m.loading > 0 {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(typed)
			return m, cmd
		}
		return m, nil
	case AuthCheckedMsg:
		return m.onAuthChecked(typed)
	case SignedInMsg:
		return m.onSignedIn(typed)
	case outcomeMsg:
		return m.onOutcome(typed)
	case controller.Outcome:
		return m.applyOutcome(typed)
	case dismissNotificationMsg:
		m.dismiss(typed.ID)
		return m, nil
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	k := msg.String()
	switch k {
	case m.Keys.Quit:
		m.Quitting = true
		return m, tea.Quit
	case m.Keys.Help:
		m.HelpVisible = !m.HelpVisible
		return m, nil
	case "/":
		return m.openPalette(), nil
	}
	if !m.Ready {
		return m, nil
	}

	if !m.State.LoggedIn() {
		switch k {
		case m.Keys.Login:
			m.showModal(ModalLogin)
		case m.Keys.Register:
			m.showModal(ModalRegister)
		}
		return m, nil
	}

	switch k {
	case m.Keys.SwitchTo, "h", "l", "left", "right":
		if m.Focus == PaneTodos {
			m.Focus = PaneEvents
		} else {
			m.Focus = PaneTodos
		}
	case "j", "down":
		m.moveCursor(1)
	case "k", "up":
		m.moveCursor(-1)
	case m.Keys.AddTodo:
		m.showModal(ModalAddTodo)
	case m.Keys.AddEvent:
		m.showModal(ModalAddEvent)
	case m.Keys.Toggle, "enter":
		if m.Focus == PaneTodos {
			return m.toggleSelected()
		}
	case m.Keys.Delete:
		return m.askDeleteSelected()
	case m.Keys.Detail:
		if _, ok := m.selectedTodoID(); ok && m.Focus == PaneTodos {
			m.DetailOpen = true
		}
	case m.Keys.Refresh:
		return m, m.beginLoading(m.loadAllCmd())
	case m.Keys.Logout:
		return m.logout()
	}
	return m, nil
}

func (m *Model) moveCursor(delta int) {
	if m.Focus == PaneEvents {
		m.EventCursor = clamp(m.EventCursor+delta, len(m.State.Events))
		return
	}
	m.TodoCursor = clamp(m.TodoCursor+delta, len(m.State.Todos))
}

func (m *Model) clampCursors() {
	m.TodoCursor = clamp(m.TodoCursor, len(m.State.Todos))
	m.EventCursor = clamp(m.EventCursor, len(m.State.Events))
}

func clamp(i, n int) int {
	if n == 0 || i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}

// selectedTodoID returns the id under the todo cursor.
func (m Model) selectedTodoID() (int64, bool) {
	if len(m.State.Todos) == 0 {
		return 0, false
	}
	return m.State.Todos[clamp(m.TodoCursor, len(m.State.Todos))].ID, true
}

func (m Model) selectedEventID() (int64, bool) {
	if len(m.State.Events) == 0 {
		return 0, false
	}
	return m.State.Events[clamp(m.EventCursor, len(m.State.Events))].ID, true
}

func (m Model) View() string {
	if m.Quitting {
		return ""
	}
	status := ""
	if m.Status.Text != "" {
		if m.Status.IsError {
			status = fmt.Sprintf("status: error: %s", m.Status.Text)
		} else {
			status = fmt.Sprintf("status: %s", m.Status.Text)
		}
	}
	data := views.AppData{
		Header:        m.header(),
		StatusLine:    status,
		StatusIsError: m.Status.IsError,
		Notifications: strings.TrimSpace(m.renderNotificationsView()),
		Footer:        m.footer(),
	}

	switch {
	case m.Modal != nil:
		data.Overlay = m.renderModal()
	case m.DetailOpen:
		data.Overlay = m.renderDetail()
	}

	if !m.Ready {
		data.StatusLine = fmt.Sprintf("%s %s", m.spinner.View(), m.catalog.T(i18n.MsgCheckingSession))
		return views.RenderApp(data)
	}
	if !m.State.LoggedIn() {
		if data.Overlay == "" {
			data.LeftPane = m.catalog.T(i18n.MsgLoggedOutHint)
			data.RightPane = m.renderHelpIfVisible() + m.renderCommandPalette()
		}
		return views.RenderApp(data)
	}

	left := views.RenderTodoList(views.ListPanelData{
		Title:      fmt.Sprintf("Todos (%d)", len(m.State.Todos)),
		EmptyText:  m.catalog.T(i18n.MsgTodosEmpty),
		Focused:    m.Focus == PaneTodos,
		DeleteHint: m.deleteHint(),
	}, m.todoRows())
	right := views.RenderEventList(views.ListPanelData{
		Title:      fmt.Sprintf("Events (%d)", len(m.State.Events)),
		EmptyText:  m.catalog.T(i18n.MsgEventsEmpty),
		Focused:    m.Focus == PaneEvents,
		DeleteHint: m.deleteHint(),
	}, m.eventRows())
	if extra := strings.TrimSpace(m.renderCommandPalette() + "\n" + m.renderHelpIfVisible()); extra != "" {
		right += "\n\n" + extra
	}
	data.LeftPane, data.RightPane = left, right
	data.FocusRight = m.Focus == PaneEvents
	data.Stats = m.renderStats()
	return views.RenderApp(data)
}

func (m Model) header() string {
	h := "todocal"
	if m.State.User != nil {
		h += " | " + m.catalog.T(i18n.MsgGreeting, "Name", m.State.User.DisplayName())
		if exp, ok := m.tokenExpiry(); ok {
			h += " | session until " + m.catalog.FormatDateTime(exp)
		}
	}
	if m.loading > 0 && m.Ready {
		h += " " + m.spinner.View()
	}
	return h
}

func (m Model) footer() string {
	if m.State.LoggedIn() {
		return fmt.Sprintf("keys: %s switch | j/k move | %s add todo | %s add event | space toggle | %s delete | %s refresh | %s logout | / cmd | %s help | %s quit",
			m.Keys.SwitchTo, m.Keys.AddTodo, m.Keys.AddEvent, m.Keys.Delete, m.Keys.Refresh, m.Keys.Logout, m.Keys.Help, m.Keys.Quit)
	}
	return fmt.Sprintf("keys: %s sign in | %s register | / cmd | %s help | %s quit", m.Keys.Login, m.Keys.Register, m.Keys.Help, m.Keys.Quit)
}

func (m Model) deleteHint() string {
	return "[" + m.Keys.Delete + "] delete"
}

func (m Model) renderStats() string {
	s := m.State.Stats
	return views.RenderStats(views.StatsData{
		TotalLabel:     m.catalog.T(i18n.MsgStatsTotal),
		CompletedLabel: m.catalog.T(i18n.MsgStatsCompleted),
		PendingLabel:   m.catalog.T(i18n.MsgStatsPending),
		EventsLabel:    m.catalog.T(i18n.MsgStatsEvents),
		TotalTodos:     s.TotalTodos,
		CompletedTodos: s.CompletedTodos,
		PendingTodos:   s.PendingTodos,
		TotalEvents:    s.TotalEvents,
	})
}

func (m Model) renderDetail() string {
	id, ok := m.selectedTodoID()
	if !ok {
		return ""
	}
	todo, err := m.State.FindTodo(id)
	if err != nil {
		return ""
	}
	return views.RenderDetail(todo.Title, todo.Description)
}

func (m Model) todoRows() []views.TodoRow {
	today := startOfDay(m.now().In(m.catalog.Location()))
	rows := make([]views.TodoRow, 0, len(m.State.Todos))
	for i, t := range m.State.Todos {
		rows = append(rows, todoRow(t, m.catalog, today, m.Focus == PaneTodos && i == m.TodoCursor))
	}
	return rows
}

func todoRow(t model.Todo, cat *i18n.Catalog, today time.Time, selected bool) views.TodoRow {
	row := views.TodoRow{
		ID:            t.ID,
		Title:         t.Title,
		Description:   t.Description,
		Completed:     t.IsCompleted,
		Important:     t.IsImportant,
		PriorityLabel: cat.PriorityLabel(string(t.Priority)),
		Overdue:       t.IsOverdue,
		Selected:      selected,
	}
	if t.DueDate != nil && !t.DueDate.IsZero() {
		row.Due = cat.FormatDate(t.DueDate.Time)
		if t.DueDate.Before(today) {
			row.Overdue = true
		}
	}
	return row
}

func (m Model) eventRows() []views.EventRow {
	rows := make([]views.EventRow, 0, len(m.State.Events))
	for i, e := range m.State.Events {
		rows = append(rows, views.EventRow{
			ID:          e.ID,
			Title:       e.Title,
			Description: e.Description,
			When:        m.catalog.FormatDateTime(e.StartTime.Time) + " - " + m.catalog.FormatDateTime(e.EndTime.Time),
			Location:    e.Location,
			Selected:    m.Focus == PaneEvents && i == m.EventCursor,
		})
	}
	return rows
}

func startOfDay(t time.Time) time.Time {
	y, mo, d := t.Date()
	return time.Date(y, mo, d, 0, 0, 0, 0, t.Location())
}

func (m Model) tokenExpiry() (time.Time, bool) {
	if m.session == nil {
		return time.Time{}, false
	}
	return m.session.TokenExpiry()
}
