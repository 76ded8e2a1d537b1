// Package opt fits diet parameters to reference ATP yields.
package opt

import (
	"fmt"
	"log"
	"math"
	"math/rand"
	"runtime"
	"strconv"
	"strings"
	"time"

	cobra "github.com/WegrzynAB/cobratoolbox"
	"github.com/WegrzynAB/cobratoolbox/diet"
	"github.com/WegrzynAB/cobratoolbox/model"
	"github.com/maseology/glbopt"
	"github.com/maseology/mmio"
	"github.com/maseology/objfunc"
	mrg63k3a "github.com/maseology/goRNG/MRG63k3a"
)

const nSmplDim = 2

// CalibrateDiet searches a global uptake scale and oxygen cap that
// bring screened aerobic ATP yields toward reference values
// (csv: model,yield). Returns the fitted parameters and the final
// objective (1-NSE, lower is better).
func CalibrateDiet(fps []string, d diet.Diet, refFP, outFP string) (scale, o2cap, of float64) {
	ref, err := readReference(refFP)
	if err != nil {
		log.Fatalf(" opt.CalibrateDiet: %v", err)
	}

	// screen only the referenced models
	var fpx []string
	var obs []float64
	for _, fp := range fps {
		if v, ok := ref[model.Name(fp)]; ok {
			fpx = append(fpx, fp)
			obs = append(obs, v)
		}
	}
	if len(fpx) == 0 {
		log.Fatalf(" opt.CalibrateDiet: no reference yields match the model set")
	}
	fmt.Printf(" calibrating diet to %d reference yields..\n", len(fpx))

	rng := rand.New(mrg63k3a.New())
	rng.Seed(time.Now().UnixNano())

	gen := func(u []float64) float64 {
		scl, o2 := Par2(u)
		pd := d.Scale(scl)
		pd.O2 = o2
		s := cobra.NewScreener(pd)
		sim := make([]float64, len(fpx))
		for i, fp := range fpx {
			m, err := model.Load(fp)
			if err != nil {
				return math.MaxFloat64
			}
			aero, _, err := s.TestATP(m)
			if err != nil {
				return math.MaxFloat64
			}
			sim[i] = aero
		}
		fmt.Print(".")
		return 1. - objfunc.NSE(obs, sim)
	}

	fmt.Println(" optimizing..")
	uFinal, _ := glbopt.SCE(runtime.GOMAXPROCS(0), nSmplDim, rng, gen, true)

	scale, o2cap = Par2(uFinal)
	of = gen(uFinal)
	fmt.Printf("\nfinal parameters:\n\tscale:\t%v\n\to2cap:\t%v\n\t1-NSE:\t%v\n", scale, o2cap, of)

	if len(outFP) > 0 {
		tw, err := mmio.NewTXTwriter(outFP)
		if err != nil {
			log.Fatalf(" opt.CalibrateDiet save error: %v", err)
		}
		defer tw.Close()
		tw.WriteLine(mmio.MMtime(time.Now()))
		tw.WriteLine(fmt.Sprintf("scale\t%f", scale))
		tw.WriteLine(fmt.Sprintf("o2cap\t%f", o2cap))
		tw.WriteLine(fmt.Sprintf("of\t%f", of))
	}
	return
}

func readReference(fp string) (map[string]float64, error) {
	lns, err := mmio.ReadTextLines(fp)
	if err != nil {
		return nil, err
	}
	ref := make(map[string]float64, len(lns))
	for i, ln := range lns {
		if i == 0 && strings.Contains(ln, "model") { // header
			continue
		}
		ln = strings.TrimSpace(ln)
		if len(ln) == 0 {
			continue
		}
		s := strings.Split(ln, ",")
		if len(s) != 2 {
			return nil, fmt.Errorf("readReference %s: cannot parse line %q", fp, ln)
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(s[1]), 64)
		if err != nil {
			return nil, fmt.Errorf("readReference %s: %v", fp, err)
		}
		ref[strings.TrimSpace(s[0])] = v
	}
	return ref, nil
}
