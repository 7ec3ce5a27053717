package main

import "testing"

func TestSizeListSet(t *testing.T) {
	var l sizeList
	if err := l.Set("128x64"); err != nil {
		t.Fatal(err)
	}
	if err := l.Set("10X10"); err != nil {
		t.Fatal(err)
	}
	if l.String() != "128x64,10x10" {
		t.Fatalf("String() = %q", l.String())
	}
	for _, bad := range []string{"128", "0x5", "axb", "5x-1"} {
		if err := l.Set(bad); err == nil {
			t.Fatalf("Set(%q) accepted", bad)
		}
	}
}

func TestParseInts(t *testing.T) {
	got, err := parseInts("1, 2,,4")
	if err != nil || len(got) != 3 || got[2] != 4 {
		t.Fatalf("parseInts = %v, %v", got, err)
	}
	if _, err := parseInts("1,zero"); err == nil {
		t.Fatal("bad entry accepted")
	}
	if _, err := parseInts(""); err == nil {
		t.Fatal("empty list accepted")
	}
}

func TestScenariosAgreeAcrossWorkers(t *testing.T) {
	var all []scenarioResult
	for _, w := range []int{1, 3} {
		res, err := runScenario(scenario{width: 40, height: 48, workers: w}, 20, 5)
		if err != nil {
			t.Fatal(err)
		}
		all = append(all, res)
	}
	if bad := mismatches(all); len(bad) != 0 {
		t.Fatalf("parallel scan disagrees: %v", bad)
	}
	if _, err := runScenario(scenario{width: 0, height: 4, workers: 1}, 1, 1); err == nil {
		t.Fatal("invalid size accepted")
	}
}
