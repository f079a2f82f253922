package main

import (
	"flag"
	"fmt"
	"log"
	"runtime"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"mad-sand/internal/core"
	"mad-sand/internal/sand"
)

type kvList []string

func (l *kvList) String() string {
	return strings.Join(*l, ",")
}

func (l *kvList) Set(value string) error {
	*l = append(*l, value)
	return nil
}

type scenario struct {
	gravity int
	seed    int64
}

type scenarioResult struct {
	scenario
	poured     int
	grains     int
	ticks      int
	settled    bool
	maxHeight  int
	meanHeight float64
	conserved  bool
}

func main() {
	width := flag.Int("width", 160, "device width in pixels")
	height := flag.Int("height", 120, "device height in pixels")
	seed := flag.Int64("seed", 1337, "base seed; each run adds its index")
	runs := flag.Int("runs", 4, "runs per gravity value")
	pour := flag.Int("pour", 120, "ticks to pour at the top centre")
	maxTicks := flag.Int("max-ticks", 4000, "tick limit while settling")
	gravities := flag.String("gravity-list", "1,2,4,8,16", "comma separated gravity values to sweep")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	var overrides kvList
	flag.Var(&overrides, "set", "parameter override in key=value form (repeatable)")
	flag.Parse()

	kv := make(map[string]string, len(overrides))
	for _, o := range overrides {
		parts := strings.SplitN(o, "=", 2)
		if len(parts) != 2 {
			log.Printf("ignoring override %q", o)
			continue
		}
		kv[strings.TrimSpace(parts[0])] = strings.TrimSpace(parts[1])
	}
	base := sand.ParamsFromMap(kv)

	gs, err := parseInts(*gravities)
	if err != nil {
		log.Fatalf("gravity-list: %v", err)
	}
	if *workers < 1 {
		*workers = 1
	}

	var sets []scenario
	for _, g := range gs {
		for i := 0; i < *runs; i++ {
			sets = append(sets, scenario{gravity: g, seed: *seed + int64(i)})
		}
	}

	fmt.Printf("Settling %d scenarios (%d workers, %dx%d px, pour %d ticks, brush %d, density %.2f, cell %d)\n",
		len(sets), *workers, *width, *height, *pour, base.BrushRadius, base.Density, base.CellSize)

	jobs := make(chan scenario)
	results := make(chan scenarioResult)
	var wg sync.WaitGroup

	for i := 0; i < *workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for sc := range jobs {
				results <- runScenario(base, sc, *width, *height, *pour, *maxTicks)
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	go func() {
		for _, sc := range sets {
			jobs <- sc
		}
		close(jobs)
	}()

	start := time.Now()
	var all []scenarioResult
	for res := range results {
		if !res.conserved {
			log.Printf("gravity=%d seed=%d lost grains: poured %d, found %d", res.gravity, res.seed, res.poured, res.grains)
		}
		all = append(all, res)
	}

	sort.Slice(all, func(i, j int) bool {
		if all[i].gravity != all[j].gravity {
			return all[i].gravity < all[j].gravity
		}
		return all[i].seed < all[j].seed
	})

	fmt.Printf("\nResults (elapsed %s):\n", time.Since(start).Round(time.Millisecond))
	for _, res := range all {
		state := "settled"
		if !res.settled {
			state = "moving"
		}
		fmt.Printf("gravity=%-3d seed=%-6d grains=%-6d ticks=%-5d %-7s maxHeight=%-4d meanHeight=%.2f\n",
			res.gravity, res.seed, res.grains, res.ticks, state, res.maxHeight, res.meanHeight)
	}
}

func runScenario(base sand.Params, sc scenario, width, height, pour, maxTicks int) scenarioResult {
	p := base
	p.Gravity = sc.gravity
	p = p.Clamp()

	rng := core.NewRNG(sc.seed)
	d := sand.NewDriver(width, height, p, rng)
	poured := sand.Pour(d, width/2, p.BrushRadius, pour)

	final, ticks, settled := sand.Settle(d.Grid(), p.Gravity, rng, maxTicks)
	heights := final.ColumnHeights()
	maxHeight, sum := 0, 0
	for _, h := range heights {
		sum += h
		if h > maxHeight {
			maxHeight = h
		}
	}
	mean := 0.0
	if len(heights) > 0 {
		mean = float64(sum) / float64(len(heights))
	}

	grains := final.Count()
	return scenarioResult{
		scenario:   sc,
		poured:     poured,
		grains:     grains,
		ticks:      ticks,
		settled:    settled,
		maxHeight:  maxHeight,
		meanHeight: mean,
		conserved:  grains == poured,
	}
}

func parseInts(list string) ([]int, error) {
	var out []int
	for _, field := range strings.Split(list, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		v, err := strconv.Atoi(field)
		if err != nil {
			return nil, fmt.Errorf("parse %q: %w", field, err)
		}
		out = append(out, v)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("no values in %q", list)
	}
	return out, nil
}
