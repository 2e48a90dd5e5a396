package update

import (
	"context"
	"errors"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandeepkv93/todocal/internal/controller"
	"github.com/sandeepkv93/todocal/internal/i18n"
	"github.com/sandeepkv93/todocal/internal/model"
	"github.com/sandeepkv93/todocal/internal/session"
)

func (m Model) checkAuthCmd() tea.Cmd {
	sess, ctx := m.session, m.ctx
	return func() tea.Msg {
		user, err := sess.CheckAuthStatus(ctx)
		return AuthCheckedMsg{User: user, Err: err}
	}
}

func (m Model) loginCmd(email, password string) tea.Cmd {
	sess, ctx := m.session, m.ctx
	return func() tea.Msg {
		user, err := sess.Login(ctx, email, password)
		return SignedInMsg{User: user, Err: err}
	}
}

func (m Model) registerCmd(form session.RegisterForm) tea.Cmd {
	sess, ctx := m.session, m.ctx
	return func() tea.Msg {
		user, err := sess.Register(ctx, form)
		return SignedInMsg{User: user, Registered: true, Err: err}
	}
}

// outcomeCmd runs fn off the update loop and tags its result with the
// current session epoch.
func (m Model) outcomeCmd(fn func(ctx context.Context, res *controller.Controller) controller.Outcome) tea.Cmd {
	res, ctx, epoch := m.resources, m.ctx, m.epoch
	return func() tea.Msg {
		return outcomeMsg{epoch: epoch, out: fn(ctx, res)}
	}
}

func (m Model) loadAllCmd() tea.Cmd {
	return m.outcomeCmd(func(ctx context.Context, res *controller.Controller) controller.Outcome {
		return res.LoadAll(ctx)
	})
}

func (m Model) addTodoCmd(draft model.TodoDraft) tea.Cmd {
	return m.outcomeCmd(func(ctx context.Context, res *controller.Controller) controller.Outcome {
		return res.AddTodo(ctx, draft)
	})
}

func (m Model) addEventCmd(draft model.EventDraft) tea.Cmd {
	return m.outcomeCmd(func(ctx context.Context, res *controller.Controller) controller.Outcome {
		return res.AddEvent(ctx, draft)
	})
}

func (m Model) toggleTodoCmd(id int64) tea.Cmd {
	return m.outcomeCmd(func(ctx context.Context, res *controller.Controller) controller.Outcome {
		return res.ToggleTodo(ctx, id)
	})
}

func (m Model) removeTodoCmd(id int64) tea.Cmd {
	return m.outcomeCmd(func(ctx context.Context, res *controller.Controller) controller.Outcome {
		return res.RemoveTodo(ctx, id)
	})
}

func (m Model) removeEventCmd(id int64) tea.Cmd {
	return m.outcomeCmd(func(ctx context.Context, res *controller.Controller) controller.Outcome {
		return res.RemoveEvent(ctx, id)
	})
}

func (m *Model) beginLoading(cmd tea.Cmd) tea.Cmd {
	m.loading++
	if m.loading == 1 {
		return tea.Batch(cmd, m.spinner.Tick)
	}
	return cmd
}

func (m *Model) endLoading() {
	if m.loading > 0 {
		m.loading--
	}
}

func (m Model) onAuthChecked(msg AuthCheckedMsg) (Model, tea.Cmd) {
	m.endLoading()
	m.Ready = true
	if msg.Err != nil {
		m.State.SignOut()
		if errors.Is(msg.Err, session.ErrNoToken) {
			return m, nil
		}
		m.logger.Printf("update: startup auth check: %v", msg.Err)
		return m, m.notify(LevelWarning, m.catalog.T(i18n.MsgSessionExpired))
	}
	m.State.SignIn(msg.User)
	return m, m.beginLoading(m.loadAllCmd())
}

func (m Model) submitLogin() (Model, tea.Cmd) {
	email := strings.TrimSpace(m.Modal.Value("email"))
	password := m.Modal.Value("password")
	if email == "" || password == "" {
		m.Modal.Err = m.catalog.T(i18n.MsgLoginRequired)
		return m, m.notify(LevelDanger, m.Modal.Err)
	}
	m.Modal.Err = ""
	return m, m.beginLoading(m.loginCmd(email, password))
}

func (m Model) submitRegister() (Model, tea.Cmd) {
	form := session.RegisterForm{
		Email:           strings.TrimSpace(m.Modal.Value("email")),
		Username:        strings.TrimSpace(m.Modal.Value("username")),
		FirstName:       strings.TrimSpace(m.Modal.Value("first_name")),
		LastName:        strings.TrimSpace(m.Modal.Value("last_name")),
		Password:        m.Modal.Value("password"),
		PasswordConfirm: m.Modal.Value("password_confirm"),
	}
	if form.Password != form.PasswordConfirm {
		m.Modal.Err = m.catalog.T(i18n.MsgRegisterMismatch)
		return m, m.notify(LevelDanger, m.Modal.Err)
	}
	m.Modal.Err = ""
	return m, m.beginLoading(m.registerCmd(form))
}

func (m Model) onSignedIn(msg SignedInMsg) (Model, tea.Cmd) {
	m.endLoading()
	failedID, okID, modal := i18n.MsgLoginFailed, i18n.MsgLoginSuccess, ModalLogin
	if msg.Registered {
		failedID, okID, modal = i18n.MsgRegisterFailed, i18n.MsgRegisterSuccess, ModalRegister
	}
	if msg.Err != nil {
		text := m.errorText(msg.Err, failedID)
		if m.Modal != nil && m.Modal.ID == modal {
			m.Modal.Err = text
		}
		return m, m.notify(LevelDanger, text)
	}
	m.hideModal(modal)
	m.State.SignIn(msg.User)
	m.TodoCursor, m.EventCursor = 0, 0
	return m, tea.Batch(m.notify(LevelSuccess, m.catalog.T(okID)), m.beginLoading(m.loadAllCmd()))
}

func (m Model) logout() (Model, tea.Cmd) {
	m.session.Logout(m.ctx)
	m.State.SignOut()
	m.epoch++
	m.loading = 0
	m.Modal = nil
	m.DetailOpen = false
	m.TodoCursor, m.EventCursor = 0, 0
	return m, m.notify(LevelSuccess, m.catalog.T(i18n.MsgLogoutSuccess))
}

func (m Model) submitAddTodo() (Model, tea.Cmd) {
	draft, err := todoDraftFromForm(m.Modal, m.catalog.Location())
	if err != nil {
		m.Modal.Err = m.errorText(err, i18n.MsgTodoAddFailed)
		return m, m.notify(LevelDanger, m.Modal.Err)
	}
	m.Modal.Err = ""
	return m, m.beginLoading(m.addTodoCmd(draft))
}

func (m Model) submitAddEvent() (Model, tea.Cmd) {
	draft, err := eventDraftFromForm(m.Modal, m.catalog.Location())
	if err != nil {
		m.Modal.Err = m.errorText(err, i18n.MsgEventAddFailed)
		return m, m.notify(LevelDanger, m.Modal.Err)
	}
	m.Modal.Err = ""
	return m, m.beginLoading(m.addEventCmd(draft))
}

// onOutcome drops results started before the last logout.
func (m Model) onOutcome(msg outcomeMsg) (Model, tea.Cmd) {
	if msg.epoch != m.epoch {
		m.logger.Printf("update: dropped %T from an earlier session", msg.out)
		return m, nil
	}
	return m.applyOutcome(msg.out)
}

// applyOutcome runs the state transition for a finished action and turns
// its error into a notification. Load failures are only logged.
func (m Model) applyOutcome(out controller.Outcome) (Model, tea.Cmd) {
	if !m.State.LoggedIn() {
		m.logger.Printf("update: dropped %T while signed out", out)
		return m, nil
	}
	m.endLoading()
	err := out.Apply(m.State)
	m.clampCursors()

	switch o := out.(type) {
	case controller.AllLoaded, controller.TodosLoaded, controller.EventsLoaded:
		if err != nil {
			m.logger.Printf("update: list load: %v", err)
		}
		return m, nil
	case controller.TodoAdded:
		if err != nil {
			return m.failModal(ModalAddTodo, err, i18n.MsgTodoAddFailed)
		}
		m.hideModal(ModalAddTodo)
		m.Focus = PaneTodos
		m.TodoCursor = len(m.State.Todos) - 1
		return m, m.notify(LevelSuccess, m.catalog.T(i18n.MsgTodoAdded))
	case controller.EventAdded:
		if err != nil {
			return m.failModal(ModalAddEvent, err, i18n.MsgEventAddFailed)
		}
		m.hideModal(ModalAddEvent)
		m.Focus = PaneEvents
		m.EventCursor = len(m.State.Events) - 1
		return m, m.notify(LevelSuccess, m.catalog.T(i18n.MsgEventAdded))
	case controller.TodoToggled:
		if err != nil {
			return m, m.notify(LevelDanger, m.errorText(err, i18n.MsgTodoToggleFailed))
		}
		m.logger.Printf("update: toggled todo %d", o.ID)
		return m, nil
	case controller.TodoRemoved:
		if err != nil {
			return m, m.notify(LevelDanger, m.errorText(err, i18n.MsgGenericError))
		}
		return m, m.notify(LevelSuccess, m.catalog.T(i18n.MsgTodoDeleted))
	case controller.EventRemoved:
		if err != nil {
			return m, m.notify(LevelDanger, m.errorText(err, i18n.MsgGenericError))
		}
		return m, m.notify(LevelSuccess, m.catalog.T(i18n.MsgEventDeleted))
	}
	return m, nil
}

func (m Model) failModal(id ModalID, err error, fallbackID string) (Model, tea.Cmd) {
	text := m.errorText(err, fallbackID)
	if m.modalOpen(id) {
		m.Modal.Err = text
	}
	return m, m.notify(LevelDanger, text)
}

func (m Model) toggleSelected() (Model, tea.Cmd) {
	id, ok := m.selectedTodoID()
	if !ok {
		return m, nil
	}
	return m.toggleTodo(id)
}

func (m Model) toggleTodo(id int64) (Model, tea.Cmd) {
	if _, err := m.State.FindTodo(id); err != nil {
		return m, m.notify(LevelDanger, m.errorText(err, i18n.MsgGenericError))
	}
	return m, m.beginLoading(m.toggleTodoCmd(id))
}

func (m Model) askDeleteSelected() (Model, tea.Cmd) {
	if m.Focus == PaneEvents {
		id, ok := m.selectedEventID()
		if !ok {
			return m, nil
		}
		return m.askDeleteEvent(id)
	}
	id, ok := m.selectedTodoID()
	if !ok {
		return m, nil
	}
	return m.askDeleteTodo(id)
}

func (m Model) askDeleteTodo(id int64) (Model, tea.Cmd) {
	todo, err := m.State.FindTodo(id)
	if err != nil {
		return m, m.notify(LevelDanger, m.errorText(err, i18n.MsgGenericError))
	}
	m.showConfirm(m.catalog.T(i18n.MsgTodoConfirmDelete, "Title", todo.Title), pendingDelete{Kind: pendingTodo, ID: id})
	return m, nil
}

func (m Model) askDeleteEvent(id int64) (Model, tea.Cmd) {
	event, err := m.State.FindEvent(id)
	if err != nil {
		return m, m.notify(LevelDanger, m.errorText(err, i18n.MsgGenericError))
	}
	m.showConfirm(m.catalog.T(i18n.MsgEventConfirmDelete, "Title", event.Title), pendingDelete{Kind: pendingEvent, ID: id})
	return m, nil
}

// confirmDelete runs after the user accepted the confirm modal. The item is
// looked up again since a refresh may have dropped it meanwhile.
func (m Model) confirmDelete(p pendingDelete) (Model, tea.Cmd) {
	switch p.Kind {
	case pendingTodo:
		if _, err := m.State.FindTodo(p.ID); err != nil {
			return m, m.notify(LevelDanger, m.errorText(err, i18n.MsgGenericError))
		}
		return m, m.beginLoading(m.removeTodoCmd(p.ID))
	case pendingEvent:
		if _, err := m.State.FindEvent(p.ID); err != nil {
			return m, m.notify(LevelDanger, m.errorText(err, i18n.MsgGenericError))
		}
		return m, m.beginLoading(m.removeEventCmd(p.ID))
	}
	return m, nil
}

func (m Model) errorText(err error, fallbackID string) string {
	return Describe(m.catalog, err, fallbackID)
}
