package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"

	"github.com/idilsaglam/tada/internal/dnd"
	"github.com/idilsaglam/tada/internal/model"
	"github.com/idilsaglam/tada/internal/ui"
)

// contentTop is the screen row of the first content line, below the panel border.
const contentTop = 1

type rowKind int

const (
	rowText rowKind = iota
	rowActiveHeader
	rowCompletedHeader
	rowItem
	rowEmpty
)

// row is one rendered line of the list area. Item rows carry the position
// in their partition so the mouse can map a screen line back to a todo.
type row struct {
	kind  rowKind
	part  dnd.Partition
	index int
}

// layout is shared by View and the mouse handler so both agree on which
// line shows what.
func (m Model) layout() []row {
	rows := []row{{kind: rowText}, {kind: rowText}, {kind: rowText}} // header, bar, blank
	section := func(p dnd.Partition) {
		if len(m.items[p]) == 0 {
			rows = append(rows, row{kind: rowEmpty, part: p})
			return
		}
		for i := range m.items[p] {
			rows = append(rows, row{kind: rowItem, part: p, index: i})
		}
	}

	rows = append(rows, row{kind: rowActiveHeader, part: dnd.Active})
	section(dnd.Active)
	rows = append(rows, row{kind: rowText}, row{kind: rowCompletedHeader, part: dnd.Completed})
	if m.showCompleted {
		section(dnd.Completed)
	}
	return rows
}

func (m Model) rowAt(y int) (row, bool) {
	line := y - contentTop
	rows := m.layout()
	if line < 0 || line >= len(rows) {
		return row{}, false
	}
	return rows[line], true
}

func (m Model) updateMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.adding {
		return m, nil
	}
	r, hit := m.rowAt(msg.Y)

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft || !hit {
			return m, nil
		}
		if _, busy := m.dragging(); busy {
			return m, nil
		}
		switch r.kind {
		case rowCompletedHeader:
			m.showCompleted = !m.showCompleted
			m.refresh()
		case rowItem:
			id := m.items[r.part][r.index].ID
			m.focus = r.part
			m.cursor[r.part] = r.index
			m.pointerDrag = m.lists[r.part].Begin(id)
		}
	case tea.MouseActionMotion:
		c, ok := m.dragging()
		if !ok || !m.pointerDrag {
			return m, nil
		}
		// Hovering the other list does nothing; drags stay in their own list.
		if hit && r.kind == rowItem && r.part == c.Partition() {
			c.Over(m.items[r.part][r.index].ID)
			m.followDrag(c)
		}
	case tea.MouseActionRelease:
		c, ok := m.dragging()
		if !ok || !m.pointerDrag {
			return m, nil
		}
		m.drop(c)
	}
	return m, nil
}

func (m Model) View() string {
	t := ui.Current()
	rows := m.layout()

	lines := make([]string, 0, len(rows)+6)
	for i, r := range rows {
		if r.kind == rowText {
			lines = append(lines, m.renderText(t, i))
			continue
		}
		lines = append(lines, m.renderRow(t, r))
	}

	if m.adding {
		bar := lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(t.BorderColor).Padding(0, 1)
		title := "Add new item"
		if m.addErr != "" {
			title += " · " + t.Error.Render(m.addErr)
		}
		lines = append(lines, "", bar.Render(title+"\n"+m.ti.View()))
	}

	lines = append(lines, "")
	if _, ok := m.dragging(); ok {
		lines = append(lines, m.help.View(dragKeys(m.keys)))
	} else {
		lines = append(lines, m.help.View(m.keys))
	}
	return ui.Panel(lines)
}

func (m Model) renderRow(t ui.Theme, r row) string {
	switch r.kind {
	case rowActiveHeader:
		return t.Accent.Render(fmt.Sprintf("Pending (%d)", len(m.items[dnd.Active])))
	case rowCompletedHeader:
		arrow := "▾"
		if !m.showCompleted {
			arrow = "▸"
		}
		return t.Accent.Render(fmt.Sprintf("%s Completed (%d)", arrow, len(m.items[dnd.Completed])))
	case rowEmpty:
		return t.Muted.Render("  (none)")
	case rowItem:
		return m.renderItem(t, r.part, r.index)
	}
	return ""
}

// renderText draws the header lines above the lists.
func (m Model) renderText(t ui.Theme, line int) string {
	done, pending := m.store.Collection().Stats()
	switch line {
	case 0:
		return fmt.Sprintf("%s   %s %d  %s %d  %s %d",
			t.Title.Render("Todos"),
			t.Success.Render(t.SymDone), done,
			t.Pending.Render(t.SymPending), pending,
			t.Accent.Render("Total"), done+pending,
		)
	case 1:
		return ui.ProgressBar(done, done+pending, 28)
	}
	return ""
}

func (m Model) renderItem(t ui.Theme, p dnd.Partition, index int) string {
	c := m.lists[p]
	it := m.items[p][index]
	dragged := false
	if c.Dragging() {
		// Show the list as it will look after the drop.
		it = m.byID(p, c.Preview()[index])
		dragged = it.ID == c.ActiveID()
	}

	title := it.Text
	if w := m.width - 12; w > 10 {
		title = truncate.StringWithTail(title, uint(w), "...")
	}

	box := t.Muted.Render(t.BoxUnchecked)
	text := title
	if it.Completed {
		box = t.Success.Render(t.BoxChecked)
		text = t.Done.Render(title)
	}
	if m.flash[it.ID] {
		text = t.Flash.Render(title)
	}

	prefix := "  "
	switch {
	case dragged:
		prefix = t.Dragged.Render("≡ ")
		text = t.Dragged.Render(title)
	case !c.Dragging() && m.focus == p && index == m.cursor[p]:
		prefix = t.Selected.Render("> ")
	}
	return fmt.Sprintf("%s%s %s", prefix, box, text)
}

func (m Model) byID(p dnd.Partition, id int) model.Todo {
	for _, it := range m.items[p] {
		if it.ID == id {
			return it
		}
	}
	return model.Todo{}
}
