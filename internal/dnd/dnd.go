// Package dnd turns drag gestures into reorder requests.
//
// A Context covers one visual list (pending or completed). Pointer and
// keyboard input drive the same Begin/Over/Drop sequence, so both produce
// identical Move values for the store.
package dnd

// Partition names the list a Context is scoped to.
type Partition int

const (
	Active Partition = iota
	Completed
)

func (p Partition) String() string {
	if p == Completed {
		return "completed"
	}
	return "active"
}

// Move asks the store to put ActiveID where OverID is.
type Move struct {
	ActiveID int
	OverID   int
}

type Context struct {
	partition Partition
	ids       []int

	dragging bool
	active   int
	over     int
}

func New(p Partition) *Context {
	return &Context{partition: p}
}

func (c *Context) Partition() Partition { return c.partition }

// SetItems replaces the ids shown in this list, in display order. A drag whose
// item disappeared is cancelled; a vanished drop target falls back to the
// dragged item.
func (c *Context) SetItems(ids []int) {
	c.ids = append(c.ids[:0], ids...)
	if !c.dragging {
		return
	}
	if !c.Contains(c.active) {
		c.Cancel()
		return
	}
	if !c.Contains(c.over) {
		c.over = c.active
	}
}

func (c *Context) Contains(id int) bool { return c.index(id) >= 0 }

func (c *Context) Dragging() bool { return c.dragging }
func (c *Context) ActiveID() int  { return c.active }
func (c *Context) OverID() int    { return c.over }

// Begin picks up id. It fails for ids outside this list.
func (c *Context) Begin(id int) bool {
	if !c.Contains(id) {
		return false
	}
	c.dragging, c.active, c.over = true, id, id
	return true
}

// Over sets the drop target. Targets from another list are ignored.
func (c *Context) Over(id int) bool {
	if !c.dragging || !c.Contains(id) {
		return false
	}
	c.over = id
	return true
}

// Step moves the drop target by delta rows, clamped to the list.
func (c *Context) Step(delta int) bool {
	if !c.dragging || len(c.ids) == 0 {
		return false
	}
	i := c.index(c.over) + delta
	if i < 0 {
		i = 0
	}
	if i >= len(c.ids) {
		i = len(c.ids) - 1
	}
	c.over = c.ids[i]
	return true
}

// Drop ends the drag. ok is false when nothing would move.
func (c *Context) Drop() (Move, bool) {
	if !c.dragging {
		return Move{}, false
	}
	m := Move{ActiveID: c.active, OverID: c.over}
	c.Cancel()
	return m, m.ActiveID != m.OverID
}

func (c *Context) Cancel() {
	c.dragging, c.active, c.over = false, 0, 0
}

// Nudge is a one-step keyboard move of id by delta rows.
func (c *Context) Nudge(id, delta int) (Move, bool) {
	if !c.Begin(id) {
		return Move{}, false
	}
	c.Step(delta)
	return c.Drop()
}

// Preview returns the list order as it would look if dropped now.
func (c *Context) Preview() []int {
	out := append([]int(nil), c.ids...)
	if !c.dragging || c.active == c.over {
		return out
	}
	from, to := c.index(c.active), c.index(c.over)
	moved := out[from]
	out = append(out[:from], out[from+1:]...)
	out = append(out[:to], append([]int{moved}, out[to:]...)...)
	return out
}

func (c *Context) index(id int) int {
	for i, v := range c.ids {
		if v == id {
			return i
		}
	}
	return -1
}
