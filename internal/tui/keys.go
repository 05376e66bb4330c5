package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Up        key.Binding
	Down      key.Binding
	Left      key.Binding
	Right     key.Binding
	Select    key.Binding
	Open      key.Binding
	Back      key.Binding
	Search    key.Binding
	ViewAll   key.Binding
	Help      key.Binding
	Quit      key.Binding
	Next      key.Binding
	Previous  key.Binding
	DragLeft  key.Binding
	DragRight key.Binding
	ReadAloud key.Binding
	Settings  key.Binding
	FontUp    key.Binding
	FontDown  key.Binding
	Dark      key.Binding
	Suggest   key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Up:        key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:      key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Left:      key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "left")),
		Right:     key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "right")),
		Select:    key.NewBinding(key.WithKeys(" ", "x"), key.WithHelp("space", "select")),
		Open:      key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open")),
		Back:      key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
		Search:    key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
		ViewAll:   key.NewBinding(key.WithKeys("v"), key.WithHelp("v", "view all")),
		Help:      key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:      key.NewBinding(key.WithKeys("ctrl+c", "q"), key.WithHelp("q", "quit")),
		Next:      key.NewBinding(key.WithKeys("right", "n"), key.WithHelp("→/n", "next page")),
		Previous:  key.NewBinding(key.WithKeys("left", "p"), key.WithHelp("←/p", "previous page")),
		DragLeft:  key.NewBinding(key.WithKeys("["), key.WithHelp("[", "scroll back")),
		DragRight: key.NewBinding(key.WithKeys("]"), key.WithHelp("]", "scroll on")),
		ReadAloud: key.NewBinding(key.WithKeys("r", " "), key.WithHelp("r", "read aloud")),
		Settings:  key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "settings")),
		FontUp:    key.NewBinding(key.WithKeys("+", "="), key.WithHelp("+", "bigger text")),
		FontDown:  key.NewBinding(key.WithKeys("-", "_"), key.WithHelp("-", "smaller text")),
		Dark:      key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "dark mode")),
		Suggest:   key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "use suggestion")),
	}
}

// screenKeys adapts the bindings relevant to one screen to help.KeyMap.
type screenKeys struct {
	short []key.Binding
	full  [][]key.Binding
}

func (s screenKeys) ShortHelp() []key.Binding  { return s.short }
func (s screenKeys) FullHelp() [][]key.Binding { return s.full }
