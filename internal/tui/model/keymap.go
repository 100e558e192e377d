package model

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the keybindings for the application.
// It helps in managing and displaying help information.
type KeyMap struct {
	Left        key.Binding
	Right       key.Binding
	Up          key.Binding
	Down        key.Binding
	Toggle      key.Binding
	Pick        key.Binding // 1..8 toggle a swatch directly
	Faster      key.Binding
	Slower      key.Binding
	FasterStep  key.Binding
	SlowerStep  key.Binding
	Pause       key.Binding
	Zen         key.Binding
	Copy        key.Binding
	ToggleDark  key.Binding
	ToggleDebug key.Binding
	ToggleLog   key.Binding
	Help        key.Binding
	Esc         key.Binding
	Quit        key.Binding
}

// DefaultKeyMap returns a KeyMap with default bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left: key.NewBinding(
			key.WithKeys("left", "shift+tab"),
			key.WithHelp("←", "previous color"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "tab"),
			key.WithHelp("→", "next color"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "row up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "row down"),
		),
		Toggle: key.NewBinding(
			key.WithKeys(" ", "enter"),
			key.WithHelp("space", "toggle color"),
		),
		Pick: key.NewBinding(
			key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8"),
			key.WithHelp("1-8", "toggle color n"),
		),
		Faster: key.NewBinding(
			key.WithKeys("+", "=", "]"),
			key.WithHelp("+", "faster"),
		),
		Slower: key.NewBinding(
			key.WithKeys("-", "_", "["),
			key.WithHelp("-", "slower"),
		),
		FasterStep: key.NewBinding(
			key.WithKeys("pgup"),
			key.WithHelp("pgup", "faster ×10"),
		),
		SlowerStep: key.NewBinding(
			key.WithKeys("pgdown"),
			key.WithHelp("pgdn", "slower ×10"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "pause/resume"),
		),
		Zen: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "full screen"),
		),
		Copy: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "copy color"),
		),
		ToggleDark: key.NewBinding(
			key.WithKeys("D"),
			key.WithHelp("D", "toggle dark/light mode"),
		),
		ToggleDebug: key.NewBinding(
			key.WithKeys("z"),
			key.WithHelp("z", "toggle debug info"),
		),
		ToggleLog: key.NewBinding(
			key.WithKeys("L"),
			key.WithHelp("L", "activity log"),
		),
		Help: key.NewBinding(
			key.WithKeys("h", "?"),
			key.WithHelp("h/?", "toggle help"),
		),
		Esc: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// FullHelp returns bindings for the main help view.
// It's a slice of slices, where each inner slice is a column in the help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Up, k.Down, k.Toggle, k.Pick},
		{k.Faster, k.Slower, k.FasterStep, k.SlowerStep, k.Pause},
		{k.Zen, k.Copy, k.ToggleLog, k.ToggleDark, k.ToggleDebug, k.Help, k.Quit},
	}
}

// ShortHelp returns a minimal set of bindings for the status bar.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Pause, k.Help, k.Quit}
}
