package ui

import (
	"fmt"
	"strconv"
	"strings"

	"wire-ca/internal/core"
)

// Status carries host-side state the HUD shows next to the sim's parameters.
type Status struct {
	Paused   bool
	TPS      int
	Selected string
}

var helpLines = []string{
	"",
	"space  pause/resume",
	"n      single step",
	"c      clear grid",
	"r/s    reset / reseed",
	"g      grid lines",
	"tab    select control",
	"up/dn  adjust control",
	"lmb    draw conductor",
	"rmb    electron head",
}

func buildTitle(name string) string {
	if name == "" {
		return "Controls"
	}
	return strings.ToUpper(name[:1]) + name[1:]
}

// hudLines lays out the panel text: title, run state, then one block per
// parameter group with the selected control marked.
func hudLines(title string, snap core.ParameterSnapshot, st Status) []string {
	state := "running"
	if st.Paused {
		state = "paused"
	}
	lines := []string{title, fmt.Sprintf("%s @ %d tps", state, st.TPS)}
	for _, g := range snap.Groups {
		lines = append(lines, "", g.Name)
		for _, p := range g.Params {
			marker := "  "
			if p.Key != "" && p.Key == st.Selected {
				marker = "> "
			}
			lines = append(lines, fmt.Sprintf("%s%s: %s", marker, p.Label, p.Value))
		}
	}
	return lines
}

// adjustedValue returns the control's current value moved by delta steps and
// clamped to its bounds. ok is false when the snapshot lacks an integer value
// for the control.
func adjustedValue(snap core.ParameterSnapshot, ctrl core.ParameterControl, delta int) (int, bool) {
	for _, g := range snap.Groups {
		for _, p := range g.Params {
			if p.Key != ctrl.Key || p.Type != core.ParamTypeInt {
				continue
			}
			v, err := strconv.Atoi(p.Value)
			if err != nil {
				return 0, false
			}
			step := ctrl.Step
			if step <= 0 {
				step = 1
			}
			return ctrl.Clamp(v + delta*step), true
		}
	}
	return 0, false
}
