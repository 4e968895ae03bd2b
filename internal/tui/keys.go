package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Up, Down       key.Binding
	Switch         key.Binding
	Toggle         key.Binding
	Delete         key.Binding
	Add            key.Binding
	ShowCompleted  key.Binding
	Drag, Drop     key.Binding
	Cancel         key.Binding
	MoveUp, MoveDn key.Binding
	Help           key.Binding
	Quit           key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Up:            key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:          key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Switch:        key.NewBinding(key.WithKeys("tab", "shift+tab"), key.WithHelp("tab", "switch list")),
		Toggle:        key.NewBinding(key.WithKeys(" ", "x"), key.WithHelp("space", "done")),
		Delete:        key.NewBinding(key.WithKeys("d", "delete"), key.WithHelp("d", "delete")),
		Add:           key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add")),
		ShowCompleted: key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "show/hide completed")),
		Drag:          key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "drag")),
		Drop:          key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "drop")),
		Cancel:        key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
		MoveUp:        key.NewBinding(key.WithKeys("shift+up", "ctrl+k", "K"), key.WithHelp("K", "move up")),
		MoveDn:        key.NewBinding(key.WithKeys("shift+down", "ctrl+j", "J"), key.WithHelp("J", "move down")),
		Help:          key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:          key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Add, k.Toggle, k.Delete, k.Drag, k.ShowCompleted, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Switch},
		{k.Add, k.Toggle, k.Delete},
		{k.Drag, k.Drop, k.Cancel, k.MoveUp, k.MoveDn},
		{k.ShowCompleted, k.Help, k.Quit},
	}
}

// dragKeys is the footer while a keyboard drag is in progress.
type dragKeys keyMap

func (k dragKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Drop, k.Cancel}
}

func (k dragKeys) FullHelp() [][]key.Binding { return [][]key.Binding{k.ShortHelp()} }
