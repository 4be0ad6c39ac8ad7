package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Home     key.Binding
	Menu     key.Binding
	Safari   key.Binding
	Checkout key.Binding
	NextPage key.Binding

	Up    key.Binding
	Down  key.Binding
	Left  key.Binding
	Right key.Binding
	Enter key.Binding

	ChipHome    key.Binding
	ChipItalian key.Binding
	ChipAfrican key.Binding

	GuestsUp   key.Binding
	GuestsDown key.Binding
	PrevWeek   key.Binding
	NextWeek   key.Binding

	Fulfilment key.Binding
	Favorite   key.Binding
	CopyRef    key.Binding

	Help key.Binding
	Quit key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Home:     key.NewBinding(key.WithKeys("H"), key.WithHelp("H", "home")),
		Menu:     key.NewBinding(key.WithKeys("M"), key.WithHelp("M", "menu")),
		Safari:   key.NewBinding(key.WithKeys("S"), key.WithHelp("S", "safari")),
		Checkout: key.NewBinding(key.WithKeys("C"), key.WithHelp("C", "checkout")),
		NextPage: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next page")),

		Up:    key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:  key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Left:  key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "prev")),
		Right: key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "next")),
		Enter: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "add / book / confirm")),

		ChipHome:    key.NewBinding(key.WithKeys("0"), key.WithHelp("0", "all")),
		ChipItalian: key.NewBinding(key.WithKeys("1"), key.WithHelp("1", "italian")),
		ChipAfrican: key.NewBinding(key.WithKeys("2"), key.WithHelp("2", "african")),

		GuestsUp:   key.NewBinding(key.WithKeys("+", "="), key.WithHelp("+/-", "guests")),
		GuestsDown: key.NewBinding(key.WithKeys("-")),
		PrevWeek:   key.NewBinding(key.WithKeys("["), key.WithHelp("[/]", "week")),
		NextWeek:   key.NewBinding(key.WithKeys("]")),

		Fulfilment: key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delivery/pickup")),
		Favorite:   key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "favorite")),
		CopyRef:    key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "copy booking ref")),

		Help: key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit: key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextPage, k.Enter, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Home, k.Menu, k.Safari, k.Checkout, k.NextPage},
		{k.Up, k.Down, k.Left, k.Right, k.Enter},
		{k.ChipHome, k.ChipItalian, k.ChipAfrican, k.GuestsUp, k.PrevWeek},
		{k.Fulfilment, k.Favorite, k.CopyRef, k.Help, k.Quit},
	}
}
