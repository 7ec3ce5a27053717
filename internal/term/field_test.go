package term

import (
	"strings"
	"testing"

	"wire-ca/internal/sims/wireworld"

	"github.com/logrusorgru/aurora"
)

func TestRenderFieldPlain(t *testing.T) {
	au := aurora.NewAurora(false)
	cells := []uint8{
		uint8(wireworld.ElectronTail), uint8(wireworld.ElectronHead), uint8(wireworld.Conductor),
		uint8(wireworld.Empty), uint8(wireworld.Empty), uint8(wireworld.Conductor),
	}
	got := renderField(cells, 3, 2, 10, 10, newGlyphs(au), au)
	if expected := "███\n··█"; got != expected {
		t.Fatalf("renderField() = %q, expected %q", got, expected)
	}
}

func TestRenderFieldCrops(t *testing.T) {
	au := aurora.NewAurora(false)
	cells := make([]uint8, 5*4)
	got := renderField(cells, 5, 4, 3, 2, newGlyphs(au), au)
	lines := strings.Split(got, "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %q", got)
	}
	if lines[0] != "···" {
		t.Fatalf("first line = %q", lines[0])
	}
	if lines[1] != cropNotice {
		t.Fatalf("last line = %q, expected crop notice", lines[1])
	}
}

func TestColoredGlyphsDiffer(t *testing.T) {
	g := newGlyphs(aurora.NewAurora(true))
	if g[wireworld.ElectronHead] == g[wireworld.Conductor] {
		t.Fatal("head and conductor must render differently")
	}
}
