package tui

import (
	"github.com/charmbracelet/bubbles/key"

	"zoombar/internal/tui/widgets/helpoverlay"
)

type keyMap struct {
	ZoomIn   key.Binding
	ZoomOut  key.Binding
	XIn      key.Binding
	XOut     key.Binding
	YIn      key.Binding
	YOut     key.Binding
	Reset    key.Binding
	Left     key.Binding
	Right    key.Binding
	Up       key.Binding
	Down     key.Binding
	Focus    key.Binding
	Yank     key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Help     key.Binding
	Quit     key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		ZoomIn:   key.NewBinding(key.WithKeys("+", "="), key.WithHelp("+", "zoom in")),
		ZoomOut:  key.NewBinding(key.WithKeys("-", "_"), key.WithHelp("-", "zoom out")),
		XIn:      key.NewBinding(key.WithKeys("]"), key.WithHelp("]", "zoom x in")),
		XOut:     key.NewBinding(key.WithKeys("["), key.WithHelp("[", "zoom x out")),
		YIn:      key.NewBinding(key.WithKeys("}"), key.WithHelp("}", "zoom y in")),
		YOut:     key.NewBinding(key.WithKeys("{"), key.WithHelp("{", "zoom y out")),
		Reset:    key.NewBinding(key.WithKeys("0"), key.WithHelp("0", "reset")),
		Left:     key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "pan left")),
		Right:    key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "pan right")),
		Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "pan up")),
		Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "pan down")),
		Focus:    key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next graph")),
		Yank:     key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "copy domains")),
		PageUp:   key.NewBinding(key.WithKeys("pgup"), key.WithHelp("pgup", "scroll up")),
		PageDown: key.NewBinding(key.WithKeys("pgdown", " "), key.WithHelp("pgdn", "scroll down")),
		Help:     key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c", "esc"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp feeds the one-line help under the status bar.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.ZoomIn, k.ZoomOut, k.Reset, k.Focus, k.Yank, k.Help, k.Quit}
}

// FullHelp satisfies help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	var out [][]key.Binding
	for _, s := range k.sections() {
		out = append(out, s.Keys)
	}
	return out
}

func (k keyMap) sections() []helpoverlay.Section {
	return []helpoverlay.Section{
		{Title: "Zoom", Keys: []key.Binding{k.ZoomIn, k.ZoomOut, k.XIn, k.XOut, k.YIn, k.YOut, k.Reset}},
		{Title: "Pan", Keys: []key.Binding{k.Left, k.Right, k.Up, k.Down}},
		{Title: "Dashboard", Keys: []key.Binding{k.Focus, k.PageUp, k.PageDown, k.Yank, k.Help, k.Quit}},
	}
}
