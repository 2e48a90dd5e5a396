package update

import (
	"context"
	"io"
	"log"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandeepkv93/todocal/internal/controller"
	"github.com/sandeepkv93/todocal/internal/i18n"
	"github.com/sandeepkv93/todocal/internal/model"
	"github.com/sandeepkv93/todocal/internal/session"
	"github.com/sandeepkv93/todocal/internal/state"
)

type Pane string

const (
	PaneTodos  Pane = "todos"
	PaneEvents Pane = "events"
)

type Level string

const (
	LevelSuccess Level = "success"
	LevelDanger  Level = "danger"
	LevelWarning Level = "warning"
	LevelInfo    Level = "info"
)

const maxNotifications = 5

type StatusBar struct {
	Text    string
	IsError bool
}

type GlobalKeyMap struct {
	Help     string
	Quit     string
	Login    string
	Register string
	Logout   string
	Refresh  string
	AddTodo  string
	AddEvent string
	Toggle   string
	Delete   string
	Detail   string
	SwitchTo string
}

type Notification struct {
	ID    int
	Level Level
	Body  string
	At    time.Time
}

type CommandPaletteState struct {
	Active bool
	Input  string
}

// Deps are the collaborators the model drives. Session and Resources are
// required; the rest have defaults.
type Deps struct {
	Session     *session.Manager
	Resources   *controller.Controller
	Catalog     *i18n.Catalog
	Logger      *log.Logger
	NotifyDelay time.Duration
	Context     context.Context
	Now         func() time.Time
}

type Model struct {
	State         *state.State
	Focus         Pane
	TodoCursor    int
	EventCursor   int
	Modal         *Modal
	DetailOpen    bool
	Palette       CommandPaletteState
	HelpVisible   bool
	Notifications []Notification
	Status        StatusBar
	Keys          GlobalKeyMap
	Ready         bool
	Quitting      bool

	session     *session.Manager
	resources   *controller.Controller
	catalog     *i18n.Catalog
	logger      *log.Logger
	ctx         context.Context
	now         func() time.Time
	notifyDelay time.Duration
	nextNoteID  int
	loading     int
	epoch       int
	tick        func(time.Duration, func(time.Time) tea.Msg) tea.Cmd

	commandInput textinput.Model
	spinner      spinner.Model
	helpModel    help.Model
}

// AuthCheckedMsg reports the startup profile check.
type AuthCheckedMsg struct {
	User model.User
	Err  error
}

// SignedInMsg reports a finished login or registration.
type SignedInMsg struct {
	User       model.User
	Registered bool
	Err        error
}

type dismissNotificationMsg struct {
	ID int
}

// outcomeMsg is a controller result tagged with the session epoch its
// command was started in. Results from an earlier epoch are dropped.
type outcomeMsg struct {
	epoch int
	out   controller.Outcome
}

func NewModel(deps Deps) Model {
	m := Model{
		State: state.New(),
		Focus: PaneTodos,
		Keys: GlobalKeyMap{
			Help:     "?",
			Quit:     "q",
			Login:    "l",
			Register: "r",
			Logout:   "L",
			Refresh:  "R",
			AddTodo:  "a",
			AddEvent: "e",
			Toggle:   " ",
			Delete:   "d",
			Detail:   "v",
			SwitchTo: "tab",
		},
		session:     deps.Session,
		resources:   deps.Resources,
		catalog:     deps.Catalog,
		logger:      deps.Logger,
		ctx:         deps.Context,
		now:         deps.Now,
		notifyDelay: deps.NotifyDelay,
		tick:        tea.Tick,
	}
	if m.catalog == nil {
		m.catalog = i18n.New("en")
	}
	if m.logger == nil {
		m.logger = log.New(io.Discard, "", 0)
	}
	if m.ctx == nil {
		m.ctx = context.Background()
	}
	if m.now == nil {
		m.now = time.Now
	}
	if m.notifyDelay <= 0 {
		m.notifyDelay = 5 * time.Second
	}
	m.initBubbleComponents()
	return m
}

func (m *Model) initBubbleComponents() {
	m.commandInput = textinput.New()
	m.commandInput.Prompt = "/"
	m.commandInput.CharLimit = 256
	m.commandInput.Width = 60

	m.spinner = spinner.New()
	m.spinner.Spinner = spinner.Dot

	m.helpModel = help.New()
}
