package tui

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"
	log "github.com/sirupsen/logrus"

	"zoombar/internal/plot"
	"zoombar/internal/tui/state"
	"zoombar/internal/tui/widgets/helpoverlay"
	"zoombar/internal/tui/widgets/statusbar"
	"zoombar/internal/zoom"
)

// Run shows the dashboard until the user quits. Plots are zoomed in place,
// so the caller sees the final domains afterwards.
func Run(title string, plots []*plot.Plot, noColor bool) error {
	m := newModel(title, plots, noColor)
	defer m.zones.Close()
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseAllMotion())
	_, err := p.Run()
	return err
}

// ===== Model =====

type model struct {
	title  string
	graphs []*graph
	dash   state.Dashboard

	keys    keyMap
	help    help.Model
	zones   *zone.Manager
	theme   *theme
	status  statusbar.StatusBar
	overlay helpoverlay.HelpOverlay

	// copy writes to the system clipboard; tests replace it.
	copy func(string) error
}

func newModel(title string, plots []*plot.Plot, noColor bool) model {
	m := model{
		title:   title,
		keys:    defaultKeys(),
		help:    help.New(),
		zones:   zone.New(),
		theme:   newTheme(noColor),
		status:  statusbar.NewStatusBar(),
		overlay: helpoverlay.NewHelpOverlay(),
		copy:    clipboard.WriteAll,
	}
	for i, p := range plots {
		m.graphs = append(m.graphs, newGraph(fmt.Sprintf("graph%d", i), p))
	}
	m.dash.Graphs = len(m.graphs)
	m.focus(0)
	m.layout()
	return m
}

func (m model) Init() tea.Cmd { return nil }

// Update handles all TUI interactions.
func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.dash = state.Resize(m.dash, msg.Width, msg.Height)
		m.help.Width = msg.Width
		m.layout()
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.MouseMsg:
		m.handleMouse(msg)
	}
	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.dash.ShowHelp {
		if key.Matches(msg, m.keys.Help, m.keys.Quit) {
			m.dash = state.ToggleHelp(m.dash)
		}
		return m, nil
	}
	g := m.focused()
	var err error
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.dash = state.ToggleHelp(m.dash)
	case key.Matches(msg, m.keys.Focus):
		m.focus(state.FocusNext(m.dash).Focus)
	case key.Matches(msg, m.keys.PageUp):
		m.dash = state.ScrollUp(m.dash, true)
	case key.Matches(msg, m.keys.PageDown):
		m.dash = state.ScrollDown(m.dash, true)
	case g == nil:
		return m, nil
	case key.Matches(msg, m.keys.ZoomIn):
		err = g.zoom(zoom.In)
	case key.Matches(msg, m.keys.ZoomOut):
		err = g.zoom(zoom.Out)
	case key.Matches(msg, m.keys.XIn):
		err = g.zoomAxis(zoom.In, zoom.Horizontal)
	case key.Matches(msg, m.keys.XOut):
		err = g.zoomAxis(zoom.Out, zoom.Horizontal)
	case key.Matches(msg, m.keys.YIn):
		err = g.zoomAxis(zoom.In, zoom.Vertical)
	case key.Matches(msg, m.keys.YOut):
		err = g.zoomAxis(zoom.Out, zoom.Vertical)
	case key.Matches(msg, m.keys.Reset):
		err = g.reset()
	case key.Matches(msg, m.keys.Left):
		err = g.pan(-zoom.PanFraction, 0)
	case key.Matches(msg, m.keys.Right):
		err = g.pan(zoom.PanFraction, 0)
	case key.Matches(msg, m.keys.Up):
		err = g.pan(0, zoom.PanFraction)
	case key.Matches(msg, m.keys.Down):
		err = g.pan(0, -zoom.PanFraction)
	case key.Matches(msg, m.keys.Yank):
		text := g.plot.Domains()
		if err = m.copy(text); err == nil {
			m.dash = state.Notify(m.dash, "copied "+text)
		}
	}
	if err != nil {
		m.fail(g, err)
	}
	return m, nil
}

// handleMouse routes one mouse event. Coordinates are screen cells; the
// body scrolls by ScrollV rows.
func (m *model) handleMouse(msg tea.MouseMsg) {
	if m.dash.ShowHelp {
		return
	}
	cx, cy := msg.X, msg.Y+m.dash.ScrollV
	active := m.dragging()

	switch {
	case msg.Action == tea.MouseActionRelease:
		if active != nil {
			m.check(active, active.drag(active.pointer(cx, cy), zoom.Up))
		}
	case msg.Button == tea.MouseButtonWheelUp || msg.Button == tea.MouseButtonWheelDown:
		// A captured drag owns the domains until release.
		if active != nil {
			return
		}
		if g := m.at(cx, cy); g != nil {
			m.check(g, g.wheelAt(g.pointer(cx, cy), msg.Button == tea.MouseButtonWheelUp, msg.Shift))
		}
	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
		g := m.at(cx, cy)
		for _, o := range m.graphs {
			if o != g {
				o.cancel()
			}
		}
		if g == nil {
			return
		}
		m.focusGraph(g)
		if dir, ok := m.buttonAt(g, msg, cx, cy); ok {
			m.check(g, g.zoom(dir))
			return
		}
		m.check(g, g.press(g.pointer(cx, cy)))
	case msg.Action == tea.MouseActionMotion:
		if active != nil {
			m.check(active, active.drag(active.pointer(cx, cy), zoom.Move))
			return
		}
		for _, g := range m.graphs {
			g.ui = state.Hover(g.ui, g.contains(cx, cy))
		}
	}
}

// buttonAt resolves a click on the zoom buttons. Zones are known once a
// frame has been scanned; before that the layout is used directly.
func (m *model) buttonAt(g *graph, msg tea.MouseMsg, cx, cy int) (zoom.Direction, bool) {
	if !g.ui.ControlsVisible {
		return 0, false
	}
	in, out := m.zones.Get(g.id+"/in"), m.zones.Get(g.id+"/out")
	if !in.IsZero() || !out.IsZero() {
		switch {
		case in.InBounds(msg):
			return zoom.In, true
		case out.InBounds(msg):
			return zoom.Out, true
		}
		return 0, false
	}
	return g.buttonAt(g.local(cx, cy))
}

func (m *model) check(g *graph, err error) {
	if err != nil {
		m.fail(g, err)
	}
}

func (m *model) fail(g *graph, err error) {
	fields := log.Fields{}
	if g != nil {
		fields["graph"] = g.cfg.Title
	}
	log.WithFields(fields).WithError(err).Error("domain update failed")
	m.dash = state.Notify(m.dash, err.Error())
}

func (m *model) at(cx, cy int) *graph {
	for _, g := range m.graphs {
		if g.contains(cx, cy) {
			return g
		}
	}
	return nil
}

func (m *model) dragging() *graph {
	for _, g := range m.graphs {
		if g.loc.Active() {
			return g
		}
	}
	return nil
}

func (m *model) focused() *graph {
	if m.dash.Focus < 0 || m.dash.Focus >= len(m.graphs) {
		return nil
	}
	return m.graphs[m.dash.Focus]
}

func (m *model) focus(i int) {
	m.dash = state.FocusAt(m.dash, i)
	for j, g := range m.graphs {
		g.ui = state.SetFocus(g.ui, j == m.dash.Focus)
	}
}

func (m *model) focusGraph(g *graph) {
	for i, o := range m.graphs {
		if o == g {
			m.focus(i)
		}
	}
}

// layout flows graphs left to right, wrapping at the terminal width.
func (m *model) layout() {
	const gap = 2
	x, y, rowH := 0, 0, 0
	for _, g := range m.graphs {
		if x > 0 && x+g.width() > m.dash.Width {
			x, y, rowH = 0, y+rowH+1, 0
		}
		g.left, g.top = x, y
		x += g.width() + gap
		rowH = max(rowH, g.height())
	}
	m.dash = state.SetContent(m.dash, y+rowH)
}

// ===== Views =====

func (m model) View() string {
	body := state.Body(m.dash)
	var lines []string
	if m.dash.ShowHelp {
		lines = strings.Split(m.overlay.View(m.keys.sections()), "\n")
	} else {
		lines = m.content()
		if m.dash.ScrollV < len(lines) {
			lines = lines[m.dash.ScrollV:]
		} else {
			lines = nil
		}
	}
	if len(lines) > body {
		lines = lines[:body]
	}
	for len(lines) < body {
		lines = append(lines, "")
	}

	domains := ""
	if g := m.focused(); g != nil {
		domains = g.plot.Domains()
	}
	lines = append(lines,
		m.theme.status().Render(m.status.View(m.dash, m.title, domains)),
		m.help.View(m.keys),
	)
	return m.zones.Scan(strings.Join(lines, "\n"))
}

// content renders every graph into dashboard rows.
func (m model) content() []string {
	rows := make([]string, m.dash.Content)
	for _, g := range m.graphs {
		for i, line := range g.view(m.theme, m.zones) {
			y := g.top + i
			if y >= len(rows) {
				break
			}
			if pad := g.left - lipgloss.Width(rows[y]); pad > 0 {
				rows[y] += strings.Repeat(" ", pad)
			}
			rows[y] += line
		}
	}
	return rows
}
