package cobra

import (
	"fmt"
	"log"
	"math/rand"
	"runtime"
	"sort"
	"sync"
	"time"

	"github.com/WegrzynAB/cobratoolbox/diet"
	"github.com/maseology/mmaths"
	"github.com/maseology/mmio"
	"github.com/maseology/montecarlo/smpln"
	mrg63k3a "github.com/maseology/goRNG/MRG63k3a"
)

// GenerateSamples re-screens a model set under n Latin-hypercube
// perturbations of the diet, every uptake scaled log-linearly within
// [1/10, 10] of its nominal rate. One summary csv is written per
// sample next to a record of the sample space.
func (s *Screener) GenerateSamples(fps []string, n, nwrkrs int, outdir string) {
	if nwrkrs < 1 {
		nwrkrs = runtime.GOMAXPROCS(0)
	}

	exch := func() []string { // fixed dimension ordering
		o := make([]string, 0, len(s.D.Uptake))
		for id := range s.D.Uptake {
			o = append(o, id)
		}
		sort.Strings(o)
		return o
	}()
	p := len(exch)

	// build sampling plan
	rng := rand.New(mrg63k3a.New())
	rng.Seed(time.Now().UnixNano())
	sp := smpln.NewLHC(rng, n, p, false)

	outdirbatch := outdir + time.Now().Format("060102150405") // batch number = date
	func() {                                                  // save sample space
		lns := make([]string, n)
		for k := 0; k < n; k++ {
			lns[k] = fmt.Sprint(k)
			for j := 0; j < p; j++ {
				lns[k] += fmt.Sprintf(",%f", sp.U[j][k])
			}
		}
		mmio.WriteLines(outdirbatch+".samplespace.csv", lns)
	}()

	printDiet := func(d diet.Diet, fp string) {
		tw, err := mmio.NewTXTwriter(fp)
		if err != nil {
			log.Fatalf("GenerateSamples.printDiet error: %v", err)
		}
		defer tw.Close()
		tw.WriteLine(d.Name)
		for _, id := range exch {
			tw.WriteLine(fmt.Sprintf("%s\t%f", id, d.Uptake[id]))
		}
	}

	var wg sync.WaitGroup
	sem := make(chan struct{}, nwrkrs)
	for k := 0; k < n; k++ {
		fmt.Printf(" >> releasing sample %d\n", k+1)
		wg.Add(1)
		sem <- struct{}{}
		go func(k int, outdirprfx string) {
			defer wg.Done()
			defer func() { <-sem }()

			pd := s.D.Copy()
			pd.Name = fmt.Sprintf("%s.%d", s.D.Name, k)
			for j, id := range exch {
				f := mmaths.LogLinearTransform(.1, 10., sp.U[j][k])
				pd.Uptake[id] *= f
			}
			printDiet(pd, outdirprfx+"diet.txt")

			sk := Screener{D: pd, AeroMax: s.AeroMax, AnaMax: s.AnaMax}
			res := sk.screen(fps, 1, nil)
			if err := sk.WriteReport(res, outdirprfx); err != nil {
				log.Fatalf("GenerateSamples sample %d: %v", k, err)
			}
		}(k, fmt.Sprintf("%s.%d.", outdirbatch, k))
	}
	wg.Wait()
}
