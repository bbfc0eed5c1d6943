package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Next     key.Binding
	Prev     key.Binding
	NextMode key.Binding
	PrevMode key.Binding
	Split    key.Binding
	Export   key.Binding
	Quit     key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Next:     key.NewBinding(key.WithKeys("tab", "down"), key.WithHelp("tab", "next field")),
		Prev:     key.NewBinding(key.WithKeys("shift+tab", "up"), key.WithHelp("shift+tab", "prev field")),
		NextMode: key.NewBinding(key.WithKeys("ctrl+right"), key.WithHelp("ctrl+→", "next mode")),
		PrevMode: key.NewBinding(key.WithKeys("ctrl+left"), key.WithHelp("ctrl+←", "prev mode")),
		Split:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "split")),
		Export:   key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "export image")),
		Quit:     key.NewBinding(key.WithKeys("ctrl+c", "esc"), key.WithHelp("esc", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.NextMode, k.Split, k.Export, k.Quit}
}
