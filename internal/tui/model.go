// Package tui is the interactive todo list: a pending list, a collapsible
// completed list, inline add, and drag-to-reorder with mouse or keyboard.
package tui

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/idilsaglam/tada/internal/dnd"
	"github.com/idilsaglam/tada/internal/model"
	"github.com/idilsaglam/tada/internal/todo"
)

// FlashDuration is how long a toggled row stays highlighted.
const FlashDuration = 600 * time.Millisecond

// flashDoneMsg clears the highlight on one row.
type flashDoneMsg struct{ id int }

type Model struct {
	store *todo.Store
	log   *zap.Logger

	keys keyMap
	help help.Model

	// Inline add
	adding bool
	ti     textinput.Model
	addErr string

	// One drag context and cursor per partition.
	lists  [2]*dnd.Context
	items  [2][]model.Todo
	cursor [2]int
	focus  dnd.Partition

	pointerDrag   bool
	showCompleted bool
	flash         map[int]bool

	width int
}

// New builds the UI over an opened store.
func New(s *todo.Store, log *zap.Logger) Model {
	if log == nil {
		log = zap.NewNop()
	}
	m := Model{
		store:         s,
		log:           log.Named("tui"),
		keys:          defaultKeys(),
		help:          help.New(),
		lists:         [2]*dnd.Context{dnd.New(dnd.Active), dnd.New(dnd.Completed)},
		showCompleted: true,
		flash:         map[int]bool{},
		width:         80,
	}
	m.ti = textinput.New()
	m.ti.Prompt = "> "
	m.ti.Placeholder = "New item title..."
	m.ti.CharLimit = 200
	m.refresh()
	return m
}

// Run starts the Bubble Tea program and blocks until the user quits.
func Run(s *todo.Store, log *zap.Logger) error {
	p := tea.NewProgram(New(s, log), tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err := p.Run()
	return err
}

func (m Model) Init() tea.Cmd { return nil }

// ShowCompleted reports whether the completed list is expanded.
func (m Model) ShowCompleted() bool { return m.showCompleted }

// refresh re-derives both lists from the store; the store is the only source
// of truth for membership and order.
func (m *Model) refresh() {
	active, completed := m.store.Partitions()
	m.items[dnd.Active], m.items[dnd.Completed] = active, completed
	for p := range m.lists {
		m.lists[p].SetItems(idsOf(m.items[p]))
		m.clampCursor(dnd.Partition(p))
	}
	if m.focus == dnd.Completed && (!m.showCompleted || len(m.items[dnd.Completed]) == 0) {
		m.focus = dnd.Active
	}
}

func (m *Model) clampCursor(p dnd.Partition) {
	n := len(m.items[p])
	if m.cursor[p] >= n {
		m.cursor[p] = n - 1
	}
	if m.cursor[p] < 0 {
		m.cursor[p] = 0
	}
}

func (m Model) selected() (model.Todo, bool) {
	items := m.items[m.focus]
	i := m.cursor[m.focus]
	if i < 0 || i >= len(items) {
		return model.Todo{}, false
	}
	return items[i], true
}

func (m Model) dragging() (*dnd.Context, bool) {
	for _, c := range m.lists {
		if c.Dragging() {
			return c, true
		}
	}
	return nil, false
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil
	case flashDoneMsg:
		// The row may be gone by now; deleting a missing key is fine.
		delete(m.flash, msg.id)
		return m, nil
	case tea.MouseMsg:
		return m.updateMouse(msg)
	}

	if m.adding {
		return m.updateAdd(msg)
	}

	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	if c, ok := m.dragging(); ok {
		return m.updateDrag(c, km)
	}

	switch {
	case key.Matches(km, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(km, m.keys.Up):
		m.cursor[m.focus]--
		m.clampCursor(m.focus)
	case key.Matches(km, m.keys.Down):
		m.cursor[m.focus]++
		m.clampCursor(m.focus)
	case key.Matches(km, m.keys.Switch):
		m.switchFocus()
	case key.Matches(km, m.keys.Toggle):
		if it, ok := m.selected(); ok {
			cmd := m.toggle(it.ID)
			return m, cmd
		}
	case key.Matches(km, m.keys.Delete):
		if it, ok := m.selected(); ok {
			m.store.Delete(it.ID)
			m.refresh()
		}
	case key.Matches(km, m.keys.Add):
		m.adding = true
		m.addErr = ""
		m.ti.SetValue("")
		cmd := m.ti.Focus()
		return m, cmd
	case key.Matches(km, m.keys.ShowCompleted):
		m.showCompleted = !m.showCompleted
		m.refresh()
	case key.Matches(km, m.keys.Drag):
		if it, ok := m.selected(); ok {
			m.lists[m.focus].Begin(it.ID)
			m.pointerDrag = false
		}
	case key.Matches(km, m.keys.MoveUp):
		m.nudge(-1)
	case key.Matches(km, m.keys.MoveDn):
		m.nudge(1)
	case key.Matches(km, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	case key.Matches(km, m.keys.Cancel):
		return m, tea.Quit
	}
	return m, nil
}

func (m Model) updateAdd(msg tea.Msg) (tea.Model, tea.Cmd) {
	if km, ok := msg.(tea.KeyMsg); ok {
		switch km.String() {
		case "enter":
			title := strings.TrimSpace(m.ti.Value())
			if title == "" {
				m.addErr = "Title cannot be empty"
				return m, nil
			}
			m.store.Add(title)
			m.ti.SetValue("")
			m.ti.Blur()
			m.adding = false
			m.refresh()
			m.focus = dnd.Active
			m.cursor[dnd.Active] = len(m.items[dnd.Active]) - 1
			return m, nil
		case "esc":
			m.adding = false
			m.ti.SetValue("")
			m.ti.Blur()
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.ti, cmd = m.ti.Update(msg)
	return m, cmd
}

// updateDrag handles keys while an item is picked up.
func (m Model) updateDrag(c *dnd.Context, km tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(km, m.keys.Up):
		c.Step(-1)
	case key.Matches(km, m.keys.Down):
		c.Step(1)
	case key.Matches(km, m.keys.Drop), key.Matches(km, m.keys.Drag):
		m.drop(c)
	case key.Matches(km, m.keys.Cancel):
		id := c.ActiveID()
		c.Cancel()
		m.selectID(id)
	case key.Matches(km, m.keys.Quit):
		c.Cancel()
		return m, tea.Quit
	}
	m.followDrag(c)
	return m, nil
}

func (m *Model) switchFocus() {
	next := dnd.Active
	if m.focus == dnd.Active {
		next = dnd.Completed
	}
	if next == dnd.Completed && (!m.showCompleted || len(m.items[dnd.Completed]) == 0) {
		return
	}
	m.focus = next
}

func (m *Model) toggle(id int) tea.Cmd {
	if !m.store.Toggle(id) {
		return nil
	}
	m.refresh()
	m.flash[id] = true
	return tea.Tick(FlashDuration, func(time.Time) tea.Msg { return flashDoneMsg{id: id} })
}

func (m *Model) nudge(delta int) {
	it, ok := m.selected()
	if !ok {
		return
	}
	if mv, ok := m.lists[m.focus].Nudge(it.ID, delta); ok {
		m.apply(mv)
	}
}

func (m *Model) drop(c *dnd.Context) {
	if mv, ok := c.Drop(); ok {
		m.apply(mv)
	}
	m.pointerDrag = false
}

// apply hands a finished drag to the store and keeps the cursor on the moved item.
func (m *Model) apply(mv dnd.Move) {
	if !m.store.Reorder(mv.ActiveID, mv.OverID) {
		m.log.Debug("drop rejected", zap.Int("active", mv.ActiveID), zap.Int("over", mv.OverID))
		return
	}
	m.refresh()
	m.selectID(mv.ActiveID)
}

func (m *Model) selectID(id int) {
	for p, items := range m.items {
		for i, it := range items {
			if it.ID == id {
				m.focus = dnd.Partition(p)
				m.cursor[p] = i
				return
			}
		}
	}
}

// followDrag keeps the keyboard cursor on the drop target.
func (m *Model) followDrag(c *dnd.Context) {
	if c.Dragging() {
		m.focus = c.Partition()
		m.selectID(c.OverID())
	}
}

func idsOf(items []model.Todo) []int {
	out := make([]int, len(items))
	for i, it := range items {
		out[i] = it.ID
	}
	return out
}
