package view

import (
	"bytes"
	"strings"
	"testing"

	"github.com/sheikhrachel/go-life/game"
	"github.com/sheikhrachel/go-life/model"
)

func TestTerminalRenderer_Display(t *testing.T) {
	g, err := model.NewGrid(2, 3)
	if err != nil {
		t.Fatal(err)
	}
	g.Set(0, 0, true)
	g.Set(2, 1, true)

	var out bytes.Buffer
	r := NewTerminalRenderer(&out, false)
	if err := r.Display(g, game.Status{Generation: 7, Population: 2}); err != nil {
		t.Fatalf("Display: %v", err)
	}

	parts := strings.SplitN(out.String(), "\n\n", 2)
	if len(parts) != 2 {
		t.Fatalf("expected status and field separated by a blank line, got %q", out.String())
	}
	if !strings.Contains(parts[0], "Generation: 7") || !strings.Contains(parts[0], "State: Active") {
		t.Errorf("unexpected status line %q", parts[0])
	}

	want := "██    \n" + "    ██\n"
	if parts[1] != want {
		t.Errorf("expected field %q, got %q", want, parts[1])
	}
}

func TestTerminalRenderer_Clear(t *testing.T) {
	var out bytes.Buffer
	if err := NewTerminalRenderer(&out, false).Clear(); err != nil {
		t.Fatal(err)
	}
	if out.String() != clearScreen {
		t.Errorf("expected clear sequence, got %q", out.String())
	}
}
