// Command ouiterm runs the demo UI in a terminal. Every cell stands for a
// CellW x CellH block of pixels; the mouse drives the same state machine the
// GL sandbox uses. When stdout is not a terminal a single frame is printed.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"golang.org/x/term"

	"github.com/hubastard/oui/engine/colors"
	"github.com/hubastard/oui/engine/core"
	"github.com/hubastard/oui/engine/demo"
	"github.com/hubastard/oui/engine/termui"
	"github.com/hubastard/oui/engine/ui"
	"github.com/hubastard/oui/engine/uifile"
	"github.com/hubastard/oui/engine/widget"
)

func main() {
	configPath := flag.String("config", "oui.yaml", "engine config file")
	layoutPath := flag.String("layout", "", "tree document to build instead of the built-in demo")
	cols := flag.Int("cols", 66, "columns of the printed frame when not on a terminal")
	rows := flag.Int("rows", 22, "rows of the printed frame when not on a terminal")
	flag.Parse()

	cfg, err := core.LoadConfig(*configPath)
	if err != nil {
		log.Printf("config: %v, using defaults", err)
	}
	if *layoutPath != "" {
		cfg.UI.Layout = *layoutPath
	}

	var doc *uifile.Document
	if cfg.UI.Layout != "" {
		if doc, err = uifile.Load(cfg.UI.Layout); err != nil {
			log.Fatal(err)
		}
	}

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		if err := printFrame(os.Stdout, cfg, doc, *cols, *rows); err != nil {
			log.Fatal(err)
		}
		return
	}

	status := &statusLine{}
	m := newModel(cfg, doc, log.New(status, "", 0), status)
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		m.resize(w, h)
	}
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	final, err := p.Run()
	if err != nil {
		log.Fatal(err)
	}
	if fm, ok := final.(*model); ok && fm.err != nil {
		log.Fatal(fm.err)
	}
}

// printFrame builds one frame and writes it without colors.
func printFrame(w io.Writer, cfg core.Config, doc *uifile.Document, cols, rows int) error {
	scene := demo.NewScene(widget.NewBuilder(ui.New[widget.Widget](cfg.UI.Capacity), nil), doc)
	if err := scene.Build(); err != nil {
		return err
	}
	screen := termui.NewScreen(cols, rows, colors.DefaultPalette())
	r := lipgloss.NewRenderer(w)
	r.SetColorProfile(termenv.Ascii)
	screen.SetRenderer(r)
	screen.Draw(scene.Context())
	_, err := fmt.Fprintln(w, screen.String())
	return err
}

// statusLine keeps the last line logged by the widget handlers.
type statusLine struct {
	last string
}

func (s *statusLine) Write(p []byte) (int, error) {
	line := string(p)
	for len(line) > 0 && (line[len(line)-1] == '\n' || line[len(line)-1] == '\r') {
		line = line[:len(line)-1]
	}
	if line != "" {
		s.last = line
	}
	return len(p), nil
}
