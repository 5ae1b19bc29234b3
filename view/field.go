package view

import (
	"bytes"
	"fmt"

	"github.com/logrusorgru/aurora"

	"github.com/sheikhrachel/go-life/game"
	"github.com/sheikhrachel/go-life/model"
)

const cropNotice = "The field is larger than the viewing area"

// writeField draws the grid row by row into b using one filler per cell.
// Rows and columns beyond maxW x maxH are dropped; a cropped field gives up
// its last visible row to a notice.
func writeField(b *bytes.Buffer, g *model.Grid, maxW, maxH int, live, dead, notice string) {
	crop := g.Width() > maxW || g.Height() > maxH
	for c := range g.All() {
		if c.Y >= maxH {
			break
		}
		if c.X == 0 && c.Y != 0 {
			b.WriteByte('\n')
		}
		if crop && c.Y == maxH-1 {
			b.WriteString(notice)
			break
		}
		if c.X >= maxW {
			continue
		}
		if c.Alive {
			b.WriteString(live)
		} else {
			b.WriteString(dead)
		}
	}
}

// statusLines formats a session status as label/value lines
func statusLines(au aurora.Aurora, st game.Status) []string {
	return []string{
		prop(au, "Generation", "%d", st.Generation),
		prop(au, "Living", "%d", st.Population),
		prop(au, "Density", "%.1f%%", st.Density),
		prop(au, "Bounding box", "%d cells", st.BoundingBoxSize),
		prop(au, "Speed", "%.1f gen/sec", st.Stats.GenerationsPerSecond),
		prop(au, "Avg population", "%.1f", st.Stats.AveragePopulation),
		prop(au, "Step time", "%v", st.Stats.LastStepTime),
		prop(au, "State", "%s", stateLabel(au, st.State())),
	}
}

func stateLabel(au aurora.Aurora, state string) string {
	switch state {
	case "Paused":
		return au.Colorize(state, aurora.BlueFg).String()
	case "Extinct":
		return au.Colorize(state, aurora.RedFg).String()
	case "Stagnant":
		return au.Colorize(state, aurora.YellowFg).String()
	default:
		return au.Colorize(state, aurora.CyanFg).String()
	}
}

func prop(au aurora.Aurora, name string, valueFormat string, values ...interface{}) string {
	return au.Colorize(name, aurora.GreenFg).String() + ": " + fmt.Sprintf(valueFormat, values...)
}
