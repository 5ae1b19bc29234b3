package view

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jroimartin/gocui"
	"github.com/logrusorgru/aurora"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/go-life/game"
	"github.com/sheikhrachel/go-life/model"
	"github.com/sheikhrachel/go-life/utils"
)

const (
	viewHeader        = "header"
	viewConfiguration = "configuration"
	viewStatus        = "status"
	viewField         = "field"
	viewHelp          = "help"

	leftColumnWidth = 30
	minWindowHeight = 20
)

// Simulation is the control surface the console drives
type Simulation interface {
	Grid() *model.Grid
	Config() utils.Config
	Status() game.Status
	Tick() bool
	Step()
	TogglePause()
	Randomize()
	Clear()
	ToggleCell(x, y int) bool
}

type keyBinding struct {
	key      interface{}
	name     string
	descr    string
	handler  func(v *gocui.View) error
	viewName string
}

// ConsoleUI is the interactive terminal front end.
// Every Simulation call happens on the gocui main loop goroutine.
type ConsoleUI struct {
	sim Simulation
	g   *gocui.Gui
	au  aurora.Aurora
	k   []keyBinding

	liveFiller string
	deadFiller string
}

// NewConsoleUI takes over the terminal. Call Start to run it.
func NewConsoleUI(sim Simulation) (*ConsoleUI, error) {
	g, err := gocui.NewGui(gocui.OutputNormal)
	if err != nil {
		return nil, errors.Wrap(err, "[NewConsoleUI] failed to init terminal")
	}

	t := &ConsoleUI{
		sim:        sim,
		g:          g,
		au:         aurora.NewAurora(true),
		liveFiller: aurora.Green("█").BgBrightGreen().String(),
		deadFiller: "░",
	}
	t.g.Mouse = true
	t.k = []keyBinding{
		{gocui.KeyCtrlC, "^C", "Exit", t.cmdQuit, ""},
		{'q', "Q", "Exit", t.cmdQuit, ""},
		{gocui.KeySpace, "SPACE", "Pause", t.cmdPause, ""},
		{'n', "N", "Next step", t.cmdStep, ""},
		{'r', "R", "Randomize", t.cmdRandomize, ""},
		{'c', "C", "Clear", t.cmdClear, ""},
		{gocui.MouseLeft, "MOUSE", "Toggle cell", t.cmdMouseClick, viewField},
	}
	t.g.SetManagerFunc(t.layout)

	for _, kb := range t.k {
		h := kb.handler
		if err := t.g.SetKeybinding(kb.viewName, kb.key, gocui.ModNone, func(_ *gocui.Gui, v *gocui.View) error {
			return h(v)
		}); err != nil {
			t.g.Close()
			return nil, errors.Wrapf(err, "[NewConsoleUI] failed to bind %s", kb.name)
		}
	}

	return t, nil
}

// Start runs the UI until the user quits or ctx is cancelled, then restores the terminal.
func (t *ConsoleUI) Start(ctx context.Context) error {
	defer t.g.Close()

	eg, ctx := errgroup.WithContext(ctx)
	done := make(chan struct{})
	eg.Go(func() error {
		return t.tick(ctx, done)
	})

	err := t.g.MainLoop()
	close(done)
	if werr := eg.Wait(); werr != nil {
		return werr
	}
	if err != nil && err != gocui.ErrQuit {
		return errors.Wrap(err, "[ConsoleUI.Start] main loop failed")
	}
	return nil
}

// tick polls the simulation once per frame on the main loop goroutine.
func (t *ConsoleUI) tick(ctx context.Context, done <-chan struct{}) error {
	ticker := time.NewTicker(t.sim.Config().FrameRate)
	defer ticker.Stop()

	for {
		select {
		case <-done:
			return nil
		case <-ctx.Done():
			t.g.Update(func(*gocui.Gui) error { return gocui.ErrQuit })
			return nil
		case <-ticker.C:
			t.g.Update(func(g *gocui.Gui) error {
				if t.sim.Tick() {
					t.refresh(g)
				}
				return nil
			})
		}
	}
}

func (t *ConsoleUI) refresh(g *gocui.Gui) {
	t.renderField(g)
	t.renderStatus(g)
}

func (t *ConsoleUI) renderField(g *gocui.Gui) {
	v, err := g.View(viewField)
	if err != nil {
		return
	}
	v.Clear()

	maxW, maxH := v.Size()
	var b bytes.Buffer
	writeField(&b, t.sim.Grid(), maxW, maxH, t.liveFiller, t.deadFiller,
		aurora.Red(cropNotice).BgBlack().String())
	_, _ = fmt.Fprint(v, b.String())
}

func (t *ConsoleUI) renderStatus(g *gocui.Gui) {
	v, err := g.View(viewStatus)
	if err != nil {
		return
	}
	v.Clear()
	for _, l := range statusLines(t.au, t.sim.Status()) {
		_, _ = fmt.Fprintln(v, " "+l)
	}
}

func (t *ConsoleUI) renderConfiguration(g *gocui.Gui) {
	v, err := g.View(viewConfiguration)
	if err != nil {
		return
	}
	v.Clear()
	c := t.sim.Config()
	edges := "full"
	if c.LegacyEdges {
		edges = "legacy"
	}
	_, _ = fmt.Fprintln(v, " "+prop(t.au, "Dimension", "%v x %v", c.Width, c.Height))
	_, _ = fmt.Fprintln(v, " "+prop(t.au, "Time step", "%v", c.TimeStep))
	_, _ = fmt.Fprintln(v, " "+prop(t.au, "Density", "%.2f", c.RandomDensity))
	_, _ = fmt.Fprintln(v, " "+prop(t.au, "Edges", "%s", edges))
}

func (t *ConsoleUI) layout(g *gocui.Gui) error {
	maxX, maxY := g.Size()

	if maxY < minWindowHeight {
		if err := t.headerLayout(g, maxY, "Terminal height too small"); err != nil {
			return err
		}
		for _, name := range []string{viewConfiguration, viewStatus, viewField, viewHelp} {
			_ = g.DeleteView(name)
		}
		return nil
	}
	if err := t.headerLayout(g, 3, "Conway's Game of Life"); err != nil {
		return err
	}

	mid := 3 + (maxY-5-3)/2
	if v, err := g.SetView(viewConfiguration, 0, 3, leftColumnWidth, mid); err != nil {
		if err != gocui.ErrUnknownView {
			return err
		}
		v.Title = "Configuration"
		t.renderConfiguration(g)
	}

	if v, err := g.SetView(viewStatus, 0, mid+1, leftColumnWidth, maxY-5); err != nil {
		if err != gocui.ErrUnknownView {
			return err
		}
		v.Title = "Status"
	}
	t.renderStatus(g)

	if v, err := g.SetView(viewField, leftColumnWidth+1, 3, maxX-1, maxY-5); err != nil {
		if err != gocui.ErrUnknownView {
			return err
		}
		v.Title = "Field"
	}
	t.renderField(g)

	if v, err := g.SetView(viewHelp, -1, maxY-5, maxX, maxY-3); err != nil {
		if err != gocui.ErrUnknownView {
			return err
		}
		v.Frame = false
		_, _ = fmt.Fprintln(v, t.helpLine())
	}

	return nil
}

func (t *ConsoleUI) helpLine() string {
	b := strings.Builder{}
	b.WriteString("KEYBINDINGS: ")
	for i, k := range t.k {
		if i != 0 {
			b.WriteString(", ")
		}
		b.WriteString(t.au.Green(k.name).String())
		b.WriteString(": ")
		b.WriteString(k.descr)
	}
	return b.String()
}

func (t *ConsoleUI) headerLayout(g *gocui.Gui, height int, text string) error {
	maxX, _ := g.Size()
	v, err := g.SetView(viewHeader, -1, -1, maxX+1, height)
	if err != nil {
		if err != gocui.ErrUnknownView {
			return err
		}
		v.Frame = false
		v.BgColor = gocui.ColorCyan
		v.FgColor = gocui.ColorBlack
	}
	v.Clear()
	if len(text) > maxX {
		text = text[:max(maxX, 0)]
	}
	_, _ = fmt.Fprintln(v, strings.Repeat("\n", height/2)+strings.Repeat(" ", (maxX-len(text))/2)+text)
	return nil
}

func (t *ConsoleUI) cmdQuit(_ *gocui.View) error {
	return gocui.ErrQuit
}

func (t *ConsoleUI) cmdPause(_ *gocui.View) error {
	t.sim.TogglePause()
	t.renderStatus(t.g)
	return nil
}

func (t *ConsoleUI) cmdStep(_ *gocui.View) error {
	t.sim.Step()
	t.refresh(t.g)
	return nil
}

func (t *ConsoleUI) cmdRandomize(_ *gocui.View) error {
	t.sim.Randomize()
	t.refresh(t.g)
	return nil
}

func (t *ConsoleUI) cmdClear(_ *gocui.View) error {
	t.sim.Clear()
	t.refresh(t.g)
	return nil
}

func (t *ConsoleUI) cmdMouseClick(v *gocui.View) error {
	cx, cy := v.Cursor()
	ox, oy := v.Origin()
	if t.sim.ToggleCell(cx+ox, cy+oy) {
		t.refresh(t.g)
	}
	return nil
}
