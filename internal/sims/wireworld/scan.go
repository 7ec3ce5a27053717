package wireworld

import "golang.org/x/sync/errgroup"

// minRowsPerWorker keeps bands large enough that goroutine startup does not
// dominate the scan.
const minRowsPerWorker = 8

// band is a half-open range of rows [r0, r1) scanned by one goroutine.
type band struct {
	r0, r1 int
}

// splitRows divides height rows into contiguous bands for the given number of
// workers. Small grids and single-worker configs get one band.
func splitRows(height, workers int) []band {
	if workers < 2 || height < 2*minRowsPerWorker {
		return []band{{0, height}}
	}
	rows := height / workers
	if rows < minRowsPerWorker {
		rows = minRowsPerWorker
	} else if rows*workers < height {
		rows++
	}
	bands := make([]band, 0, workers)
	for r0 := 0; r0 < height; r0 += rows {
		r1 := r0 + rows
		if r1 > height {
			r1 = height
		}
		bands = append(bands, band{r0, r1})
	}
	return bands
}

// scan computes the next generation of cur into nxt. Bands only read cur and
// only write their own rows of nxt, so they need no coordination beyond Wait.
func (e *Engine) scan() {
	cur, nxt := e.cur.Cells(), e.nxt.Cells()
	if len(e.bands) == 1 {
		scanRows(cur, nxt, e.w, e.h, 0, e.h)
		return
	}
	var g errgroup.Group
	for _, b := range e.bands {
		g.Go(func() error {
			scanRows(cur, nxt, e.w, e.h, b.r0, b.r1)
			return nil
		})
	}
	_ = g.Wait()
}

func scanRows(cur, nxt []uint8, w, h, r0, r1 int) {
	for r := r0; r < r1; r++ {
		base := r * w
		for c := 0; c < w; c++ {
			idx := base + c
			state := Cell(cur[idx])
			heads := 0
			if state == Conductor {
				heads = headsAround(cur, w, h, r, c)
			}
			nxt[idx] = uint8(state.Next(heads))
		}
	}
}

// headsAround counts electron heads in the Moore neighbourhood of (row, col).
// Positions beyond the grid edge are absent, not wrapped. Counting stops at 3
// since the rule does not distinguish larger values.
func headsAround(cells []uint8, w, h, row, col int) int {
	n := 0
	for dr := -1; dr <= 1; dr++ {
		r := row + dr
		if r < 0 || r >= h {
			continue
		}
		for dc := -1; dc <= 1; dc++ {
			c := col + dc
			if c < 0 || c >= w || (dr == 0 && dc == 0) {
				continue
			}
			if Cell(cells[r*w+c]) == ElectronHead {
				n++
				if n > 2 {
					return n
				}
			}
		}
	}
	return n
}
