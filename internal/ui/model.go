// Package ui implements the Bubble Tea model for the rentroll terminal
// client: the client list panel, the command box, the confirmation prompt
// and the help overlay.
package ui

import (
	"reflect"
	"strconv"
	"strings"

	"github.com/atomicstack/rentroll/internal/backend"
	"github.com/atomicstack/rentroll/internal/data/dispatcher"
	"github.com/atomicstack/rentroll/internal/format/table"
	"github.com/atomicstack/rentroll/internal/logic"
	"github.com/atomicstack/rentroll/internal/model/client"
	"github.com/atomicstack/rentroll/internal/storage"
	"github.com/atomicstack/rentroll/internal/theme"
	"github.com/atomicstack/rentroll/internal/ui/command"
	uistate "github.com/atomicstack/rentroll/internal/ui/state"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

// Focus names which surface consumes plain keystrokes.
type Focus int

const (
	// FocusCommand routes typing into the command box.
	FocusCommand Focus = iota
	// FocusFilter routes typing into the list quick-filter.
	FocusFilter
)

var styles = theme.Default()

type msgHandler func(tea.Msg) tea.Cmd

// Model is the top-level Bubble Tea model.
type Model struct {
	logic   *logic.Logic
	bus     *command.Bus
	store   *storage.BookStorage
	backend *backend.Watcher
	disp    *dispatcher.Dispatcher

	list  *uistate.List
	input textinput.Model

	help     viewport.Model
	showHelp bool

	focus       Focus
	feedback    string
	errMsg      string
	width       int
	height      int
	fixedWidth  bool
	fixedHeight bool
	showFooter  bool
	quitting    bool

	handlers map[reflect.Type]msgHandler
}

// NewModel initialises the UI over a ready logic engine. The width/height
// from a persisted window state pre-size the layout until the terminal
// reports its real geometry.
func NewModel(l *logic.Logic, bus *command.Bus, watcher *backend.Watcher, store *storage.BookStorage, win storage.WindowState, showFooter bool) *Model {
	input := textinput.New()
	input.Prompt = "> "
	if styles.CommandPrompt != nil {
		input.PromptStyle = *styles.CommandPrompt
	}
	input.Placeholder = "enter command (help for usage)"
	input.Focus()

	m := &Model{
		logic:      l,
		bus:        bus,
		store:      store,
		backend:    watcher,
		input:      input,
		help:       viewport.New(0, 0),
		focus:      FocusCommand,
		showFooter: showFooter,
	}
	if watcher != nil && l != nil {
		m.disp = dispatcher.New(l.Book(), store.Path())
	}
	if win.Width > 0 {
		m.width = win.Width
		m.fixedWidth = true
	}
	if win.Height > 0 {
		m.height = win.Height
		m.fixedHeight = true
	}
	m.list = uistate.NewList(nil)
	m.refreshRows()
	m.registerHandlers()
	return m
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{textinput.Blink}
	if m.backend != nil {
		cmds = append(cmds, waitForBackendEvent(m.backend))
	}
	return tea.Batch(cmds...)
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmds := make([]tea.Cmd, 0, 4)
	if handler := m.handlerFor(msg); handler != nil {
		if cmd := handler(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}
		return m, batch(cmds)
	}
	if m.focus == FocusCommand && !m.showHelp {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return m, batch(cmds)
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):        m.handleKeyMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}): m.handleWindowSizeMsg,
		reflect.TypeOf(backendEventMsg{}):   m.handleBackendEventMsg,
		reflect.TypeOf(backendDoneMsg{}):    m.handleBackendDoneMsg,
	}
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || m.handlers == nil {
		return nil
	}
	t := reflect.TypeOf(msg)
	if handler, ok := m.handlers[t]; ok {
		return handler
	}
	if t.Kind() == reflect.Ptr {
		if handler, ok := m.handlers[t.Elem()]; ok {
			return handler
		}
	}
	return nil
}

func batch(cmds []tea.Cmd) tea.Cmd {
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}

// Quitting reports whether the model asked the program to exit; the app saves
// window state when this is set.
func (m *Model) Quitting() bool {
	return m.quitting
}

// WindowState snapshots the current geometry for persistence.
func (m *Model) WindowState() storage.WindowState {
	return storage.WindowState{Width: m.width, Height: m.height}
}

// refreshRows rebuilds the list panel rows from the book's visible clients.
func (m *Model) refreshRows() {
	if m.logic == nil {
		return
	}
	m.list.SetRows(rowsForClients(m.logic.Book().Visible()))
}

func rowsForClients(clients []client.Client) []uistate.Row {
	if len(clients) == 0 {
		return nil
	}
	cells := make([][]string, len(clients))
	for i, c := range clients {
		cells[i] = []string{
			c.Name,
			c.Phone,
			c.Email,
			c.TagLine(),
			rentalCountCell(len(c.Rentals)),
		}
	}
	labels := table.FormatColumns(cells, []table.Column{
		{MaxWidth: 24},
		{MaxWidth: 14},
		{MaxWidth: 28},
		{MaxWidth: 20},
		{Align: table.AlignRight},
	})
	rows := make([]uistate.Row, len(clients))
	for i, c := range clients {
		rows[i] = uistate.Row{
			ID:     c.ID.String(),
			Label:  labels[i],
			Detail: rentalDetailLines(c),
		}
	}
	return rows
}

func rentalCountCell(n int) string {
	if n == 0 {
		return "-"
	}
	if n == 1 {
		return "1 rental"
	}
	return strconv.Itoa(n) + " rentals"
}

func rentalDetailLines(c client.Client) []string {
	if len(c.Rentals) == 0 {
		return nil
	}
	lines := make([]string, 0, len(c.Rentals))
	for _, r := range c.Rentals {
		line := r.String()
		if len(r.Customers) > 0 {
			line += "; tenants: " + strings.Join(r.Customers, ", ")
		}
		lines = append(lines, line)
	}
	return lines
}
