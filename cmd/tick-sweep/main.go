package main

import (
	"flag"
	"fmt"
	"hash/fnv"
	"log"
	"sort"
	"sync"
	"time"

	"wire-ca/internal/sims/wireworld"
)

type scenario struct {
	width, height int
	workers       int
}

func (s scenario) String() string {
	return fmt.Sprintf("%dx%d workers=%d", s.width, s.height, s.workers)
}

type scenarioResult struct {
	scenario
	elapsed  time.Duration
	perTick  time.Duration
	checksum uint64
	heads    int
}

func main() {
	steps := flag.Int("steps", 200, "ticks to simulate per scenario")
	jobs := flag.Int("jobs", 1, "scenarios run concurrently (1 keeps timings clean)")
	seed := flag.Int64("seed", 1337, "seed for the random layout")
	workerList := flag.String("workers", "1,2,4,8", "comma-separated worker counts")
	var sizes sizeList
	flag.Var(&sizes, "size", "grid size as WxH (repeatable, default 256x256 and 1024x1024)")
	flag.Parse()

	if len(sizes) == 0 {
		sizes = sizeList{{256, 256}, {1024, 1024}}
	}
	workers, err := parseInts(*workerList)
	if err != nil {
		log.Fatalf("-workers: %v", err)
	}
	if *jobs < 1 {
		*jobs = 1
	}

	var sets []scenario
	for _, sz := range sizes {
		for _, w := range workers {
			sets = append(sets, scenario{width: sz[0], height: sz[1], workers: w})
		}
	}

	fmt.Printf("Sweeping %d scenarios (%d jobs, %d steps)\n", len(sets), *jobs, *steps)

	in := make(chan scenario)
	results := make(chan scenarioResult)
	var wg sync.WaitGroup

	for i := 0; i < *jobs; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for s := range in {
				res, err := runScenario(s, *steps, *seed)
				if err != nil {
					log.Printf("%s: %v", s, err)
					continue
				}
				results <- res
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	go func() {
		for _, s := range sets {
			in <- s
		}
		close(in)
	}()

	var all []scenarioResult
	for res := range results {
		all = append(all, res)
	}

	sort.Slice(all, func(i, j int) bool {
		if all[i].width*all[i].height != all[j].width*all[j].height {
			return all[i].width*all[i].height < all[j].width*all[j].height
		}
		return all[i].workers < all[j].workers
	})

	fmt.Println()
	for _, res := range all {
		fmt.Printf("%-28s total=%-12s per tick=%-10s heads=%-6d checksum=%016x\n",
			res.scenario, res.elapsed.Round(time.Microsecond), res.perTick.Round(time.Microsecond), res.heads, res.checksum)
	}
	for _, bad := range mismatches(all) {
		fmt.Printf("MISMATCH: %s disagrees with the serial scan\n", bad)
	}
}

func runScenario(s scenario, steps int, seed int64) (scenarioResult, error) {
	cfg := wireworld.DefaultConfig()
	cfg.Width = s.width
	cfg.Height = s.height
	cfg.Workers = s.workers
	cfg.Pattern = wireworld.PatternRandom
	eng, err := wireworld.NewWithConfig(cfg)
	if err != nil {
		return scenarioResult{}, err
	}
	eng.Reset(seed)

	start := time.Now()
	for i := 0; i < steps; i++ {
		eng.Tick()
	}
	elapsed := time.Since(start)

	h := fnv.New64a()
	_, _ = h.Write(eng.Cells())
	res := scenarioResult{
		scenario: s,
		elapsed:  elapsed,
		checksum: h.Sum64(),
		heads:    eng.Counts().Heads,
	}
	if steps > 0 {
		res.perTick = elapsed / time.Duration(steps)
	}
	return res, nil
}

// mismatches lists scenarios whose final grid differs from the single-worker
// run of the same size.
func mismatches(all []scenarioResult) []scenario {
	serial := map[[2]int]uint64{}
	for _, r := range all {
		if r.workers == 1 {
			serial[[2]int{r.width, r.height}] = r.checksum
		}
	}
	var bad []scenario
	for _, r := range all {
		want, ok := serial[[2]int{r.width, r.height}]
		if ok && r.checksum != want {
			bad = append(bad, r.scenario)
		}
	}
	return bad
}
