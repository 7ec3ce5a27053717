package wireworld

import (
	"errors"
	"slices"
	"testing"
)

func TestParseLayoutPadsShortRows(t *testing.T) {
	p, err := ParseLayout("sample", "\n#H\n.t##\n\n")
	if err != nil {
		t.Fatal(err)
	}
	if p.W != 4 || p.H != 2 {
		t.Fatalf("size %dx%d, expected 4x2", p.W, p.H)
	}
	if p.At(0, 1) != ElectronHead || p.At(0, 3) != Empty || p.At(1, 1) != ElectronTail {
		t.Fatalf("unexpected cells %v", p.Cells)
	}
	if got := p.String(); got != "#H..\n.t##" {
		t.Fatalf("String() = %q", got)
	}
}

func TestParseLayoutRejectsUnknownGlyph(t *testing.T) {
	if _, err := ParseLayout("bad", "##x#"); !errors.Is(err, ErrInvalidCell) {
		t.Fatalf("err = %v, expected ErrInvalidCell", err)
	}
	if _, err := ParseLayout("blank", "\n  \n"); !errors.Is(err, ErrInvalidDimensions) {
		t.Fatalf("err = %v, expected ErrInvalidDimensions", err)
	}
}

func TestLookupPattern(t *testing.T) {
	if _, err := LookupPattern("nope"); !errors.Is(err, ErrUnknownPattern) {
		t.Fatalf("err = %v, expected ErrUnknownPattern", err)
	}
	for _, name := range []string{PatternWire, PatternClock, PatternDiode} {
		if _, err := LookupPattern(name); err != nil {
			t.Fatalf("built-in %q: %v", name, err)
		}
	}
	names := PatternNames()
	if !slices.IsSorted(names) || !slices.Contains(names, PatternRandom) {
		t.Fatalf("PatternNames() = %v", names)
	}
}

// headTicks runs the engine and records the ticks on which (row, col) holds a head.
func headTicks(e *Engine, row, col, ticks int) []int {
	var seen []int
	for i := 1; i <= ticks; i++ {
		e.Tick()
		if c, _ := e.Cell(row, col); c == ElectronHead {
			seen = append(seen, i)
		}
	}
	return seen
}

func stamped(t *testing.T, p Pattern) *Engine {
	t.Helper()
	e := mustNew(t, p.W, p.H)
	if err := e.Stamp(p, 0, 0); err != nil {
		t.Fatal(err)
	}
	return e
}

func TestClockEmitsEveryTenTicks(t *testing.T) {
	p, _ := LookupPattern(PatternClock)
	e := stamped(t, p)
	got := headTicks(e, 1, p.W-1, 40)
	if expected := []int{9, 19, 29, 39}; !slices.Equal(got, expected) {
		t.Fatalf("output heads at ticks %v, expected %v", got, expected)
	}
}

func TestDiodePassesForwardSignal(t *testing.T) {
	p, _ := LookupPattern(PatternDiode)
	e := stamped(t, p)
	got := headTicks(e, 1, p.W-1, 40)
	if expected := []int{11}; !slices.Equal(got, expected) {
		t.Fatalf("forward signal arrived at ticks %v, expected %v", got, expected)
	}
}

func TestDiodeBlocksReverseSignal(t *testing.T) {
	p, err := ParseLayout("reverse", `
.....##......
######.####Ht
.....##......`)
	if err != nil {
		t.Fatal(err)
	}
	e := stamped(t, p)
	if got := headTicks(e, 1, 0, 40); len(got) != 0 {
		t.Fatalf("reverse signal leaked through at ticks %v", got)
	}
}

func TestStampRejectsOverflowWithoutWriting(t *testing.T) {
	p, _ := LookupPattern(PatternWire)
	e := mustNew(t, p.W, 2)
	if err := e.Stamp(p, 0, 1); !errors.Is(err, ErrPatternDoesNotFit) {
		t.Fatalf("err = %v, expected ErrPatternDoesNotFit", err)
	}
	if err := e.Stamp(p, -1, 0); !errors.Is(err, ErrPatternDoesNotFit) {
		t.Fatalf("err = %v, expected ErrPatternDoesNotFit", err)
	}
	if c := e.Counts(); c.Empty != p.W*2 {
		t.Fatalf("rejected stamp wrote cells: %+v", c)
	}
	if err := e.Stamp(p, 1, 0); err != nil {
		t.Fatal(err)
	}
	if got := cellAt(t, e, 1, 1); got != ElectronHead {
		t.Fatalf("stamped wire head = %v", got)
	}
}

func TestResetCentresConfiguredPattern(t *testing.T) {
	e, err := NewWithConfig(DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}
	e.Reset(0)
	if got := cellAt(t, e, 30, 28); got != ElectronHead {
		t.Fatalf("clock head at (30,28) = %v", got)
	}
	if got := cellAt(t, e, 30, 27); got != ElectronTail {
		t.Fatalf("clock tail at (30,27) = %v", got)
	}
	e.Tick()
	e.Reset(0)
	if e.Generation() != 0 {
		t.Fatalf("generation = %d after Reset", e.Generation())
	}
}

func TestResetSkipsPatternLargerThanGrid(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width, cfg.Height = 4, 4
	e, err := NewWithConfig(cfg)
	if err != nil {
		t.Fatal(err)
	}
	e.Reset(0)
	if c := e.Counts(); c.Empty != 16 {
		t.Fatalf("oversized pattern was partially stamped: %+v", c)
	}
}

func TestResetRandomDeterministic(t *testing.T) {
	a := randomEngine(t, 20, 20, 1, 0)
	first := a.Snapshot(nil)
	a.Tick()
	a.Reset(0)
	if !slices.Equal(first, a.Cells()) {
		t.Fatal("Reset with config seed not deterministic")
	}
	a.Reset(42)
	seeded := a.Snapshot(nil)
	if slices.Equal(first, seeded) {
		t.Fatal("different seeds should produce different layouts")
	}
	if c := a.Counts(); c.Conductors == 0 {
		t.Fatal("random layout placed no conductors")
	}
}
