package wireworld

import "testing"

func TestSplitRowsCoversEveryRowOnce(t *testing.T) {
	for _, tc := range []struct{ height, workers int }{
		{5, 4}, {16, 2}, {17, 2}, {20, 3}, {64, 4}, {67, 7}, {100, 64},
	} {
		bands := splitRows(tc.height, tc.workers)
		next := 0
		for _, b := range bands {
			if b.r0 != next || b.r1 <= b.r0 {
				t.Fatalf("height=%d workers=%d: bad band %+v after row %d", tc.height, tc.workers, b, next)
			}
			next = b.r1
		}
		if next != tc.height {
			t.Fatalf("height=%d workers=%d: bands stop at %d", tc.height, tc.workers, next)
		}
		if len(bands) > tc.workers && tc.workers > 0 {
			t.Fatalf("height=%d workers=%d: %d bands", tc.height, tc.workers, len(bands))
		}
	}
	if got := splitRows(10, 3); len(got) != 1 {
		t.Fatalf("short grids should scan serially, got %d bands", len(got))
	}
}

func TestHeadsAroundClipsAtEdges(t *testing.T) {
	h := uint8(ElectronHead)
	cells := []uint8{
		h, h, h,
		h, 0, h,
		h, h, h,
	}
	if got := headsAround(cells, 3, 3, 0, 0); got != 2 {
		t.Fatalf("corner count = %d, expected 2", got)
	}
	if got := headsAround(cells, 3, 3, 1, 1); got != 3 {
		t.Fatalf("centre count should stop at 3, got %d", got)
	}
	cells = []uint8{0, 0, h, 0}
	if got := headsAround(cells, 2, 2, 0, 1); got != 1 {
		t.Fatalf("count = %d, expected 1", got)
	}
}
