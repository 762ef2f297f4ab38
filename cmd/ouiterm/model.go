package main

import (
	"log"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/hubastard/oui/engine/colors"
	"github.com/hubastard/oui/engine/core"
	"github.com/hubastard/oui/engine/demo"
	"github.com/hubastard/oui/engine/termui"
	"github.com/hubastard/oui/engine/ui"
	"github.com/hubastard/oui/engine/uifile"
	"github.com/hubastard/oui/engine/widget"
)

var statusStyle = lipgloss.NewStyle().Faint(true)

type model struct {
	scene  *demo.Scene
	screen *termui.Screen
	status *statusLine
	err    error
}

func newModel(cfg core.Config, doc *uifile.Document, logger *log.Logger, status *statusLine) *model {
	b := widget.NewBuilder(ui.New[widget.Widget](cfg.UI.Capacity), logger)
	m := &model{
		scene:  demo.NewScene(b, doc),
		screen: termui.NewScreen(0, 0, colors.DefaultPalette()),
		status: status,
	}
	m.frame()
	return m
}

func (m *model) Init() tea.Cmd { return nil }

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	ctx := m.scene.Context()
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)

	case tea.MouseMsg:
		ctx.SetCursor(termui.CellToPixel(msg.X, msg.Y))
		switch {
		case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
			ctx.SetButton(0, true)
		case msg.Action == tea.MouseActionRelease:
			// X10 reports releases without a button
			ctx.SetButton(0, false)
		}

	default:
		return m, nil
	}

	if !m.frame() {
		return m, tea.Quit
	}
	return m, nil
}

// resize keeps the last row for the status line.
func (m *model) resize(w, h int) {
	m.screen.Resize(w, max(h-1, 0))
	m.frame()
}

func (m *model) frame() bool {
	if err := m.scene.Frame(); err != nil {
		m.err = err
		return false
	}
	m.screen.Draw(m.scene.Context())
	return true
}

func (m *model) View() string {
	return m.screen.String() + "\n" + statusStyle.Render(m.status.last)
}
