package model

import "strings"

// Collection is an ordered, immutable sequence of todos.
// Every mutating method returns a new value and leaves the receiver untouched,
// so a Collection can be shared freely between the store and its views.
type Collection struct {
	items []Todo
}

// NewCollection copies items into a new Collection.
func NewCollection(items []Todo) Collection {
	if len(items) == 0 {
		return Collection{}
	}
	cp := make([]Todo, len(items))
	copy(cp, items)
	return Collection{items: cp}
}

// Len returns the number of todos.
func (c Collection) Len() int { return len(c.items) }

// Items returns a copy of the master sequence. Never nil.
func (c Collection) Items() []Todo {
	out := make([]Todo, len(c.items))
	copy(out, c.items)
	return out
}

// Get returns the todo with the given id.
func (c Collection) Get(id int) (Todo, bool) {
	if i := c.indexOf(id); i >= 0 {
		return c.items[i], true
	}
	return Todo{}, false
}

// NextID is max(existing ids)+1, or 1 for an empty collection. Stored data
// with an id of math.MaxInt is rejected on load, so this does not wrap.
func (c Collection) NextID() int {
	max := 0
	for _, it := range c.items {
		if it.ID > max {
			max = it.ID
		}
	}
	return max + 1
}

// Add appends a new pending todo. Blank text is ignored.
func (c Collection) Add(text string) (Collection, Todo, bool) {
	text = strings.TrimSpace(text)
	if text == "" {
		return c, Todo{}, false
	}
	t := Todo{ID: c.NextID(), Text: text}
	items := make([]Todo, len(c.items), len(c.items)+1)
	copy(items, c.items)
	return Collection{items: append(items, t)}, t, true
}

// Toggle flips the completed flag of id without moving it.
func (c Collection) Toggle(id int) (Collection, bool) {
	i := c.indexOf(id)
	if i < 0 {
		return c, false
	}
	items := c.Items()
	items[i].Completed = !items[i].Completed
	return Collection{items: items}, true
}

// Delete removes id.
func (c Collection) Delete(id int) (Collection, bool) {
	i := c.indexOf(id)
	if i < 0 {
		return c, false
	}
	items := make([]Todo, 0, len(c.items)-1)
	items = append(items, c.items[:i]...)
	items = append(items, c.items[i+1:]...)
	return Collection{items: items}, true
}

// Reorder moves activeID to the position overID holds, shifting the records in
// between by one slot toward the vacated position. Both records must exist and
// share a partition; otherwise the collection is returned unchanged.
func (c Collection) Reorder(activeID, overID int) (Collection, bool) {
	if activeID == overID {
		return c, false
	}
	from, to := c.indexOf(activeID), c.indexOf(overID)
	if from < 0 || to < 0 {
		return c, false
	}
	if c.items[from].Completed != c.items[to].Completed {
		return c, false
	}
	return Collection{items: arrayMove(c.items, from, to)}, true
}

// Partitions splits the sequence into pending and completed views, keeping
// master order inside each.
func (c Collection) Partitions() (active, completed []Todo) {
	active, completed = []Todo{}, []Todo{}
	for _, it := range c.items {
		if it.Completed {
			completed = append(completed, it)
		} else {
			active = append(active, it)
		}
	}
	return active, completed
}

// Stats counts completed and pending todos.
func (c Collection) Stats() (done, pending int) {
	for _, it := range c.items {
		if it.Completed {
			done++
		} else {
			pending++
		}
	}
	return
}

func (c Collection) indexOf(id int) int {
	for i, it := range c.items {
		if it.ID == id {
			return i
		}
	}
	return -1
}

func arrayMove(items []Todo, from, to int) []Todo {
	out := make([]Todo, 0, len(items))
	moved := items[from]
	for i, it := range items {
		if i == from {
			continue
		}
		if i == to && to < from {
			out = append(out, moved)
		}
		out = append(out, it)
		if i == to && to > from {
			out = append(out, moved)
		}
	}
	return out
}
