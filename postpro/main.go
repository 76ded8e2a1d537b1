package main

import (
	"fmt"
	"log"
	"math"
	"strconv"
	"strings"

	"github.com/maseology/mmio"
	"github.com/maseology/objfunc"
)

const (
	mcDir = "M:/AGORA/out/MC/"           // batch directory of *.summary.csv
	refFP = "M:/AGORA/dat/refyields.csv" // model,yield
	minN  = 3                            // samples with fewer matched models are dropped
)

func main() {
	tt := mmio.NewTimer()
	defer tt.Lap("atp postpro complete")

	if _, ok := mmio.FileExists(mcDir + "summaryOF.csv"); ok {
		log.Fatalf("file %s exists, please delete file and try again\n", mcDir+"summaryOF.csv")
	}

	fmt.Println(" reading reference yields from: " + refFP)
	ref, err := readReference(refFP)
	if err != nil {
		log.Fatalf(" postpro readReference failed: %v", err)
	}

	csvw := mmio.NewCSVwriter(mcDir + "summaryOF.csv")
	defer csvw.Close()
	if err := csvw.WriteHead("batch,n,KGE,NSE,bias"); err != nil {
		log.Fatalf("WriteHead failed")
	}

	fps, _ := mmio.FileListExt(mcDir, ".csv")
	for _, fp := range fps {
		if !strings.HasSuffix(fp, "summary.csv") {
			continue
		}
		rlz := mmio.FileName(mmio.FileName(fp, false), false)
		obs, sim, err := collectResults(fp, ref)
		if err != nil {
			fmt.Printf(" %s skipped: %v\n", rlz, err)
			continue
		}
		if len(obs) < minN {
			continue
		}
		csvw.WriteLine(rlz, len(obs), objfunc.KGE(obs, sim), objfunc.NSE(obs, sim), objfunc.Bias(obs, sim))
	}
}

// collectResults joins a sample's aerobic yields against the reference set
func collectResults(fp string, ref map[string]float64) (obs, sim []float64, err error) {
	lns, err := mmio.ReadTextLines(fp)
	if err != nil {
		return nil, nil, err
	}
	for i, ln := range lns {
		if i == 0 { // header: model,aerobic,anaerobic,flagged
			continue
		}
		s := strings.Split(strings.TrimSpace(ln), ",")
		if len(s) < 3 {
			continue
		}
		v, ok := ref[s[0]]
		if !ok {
			continue
		}
		aero, err := strconv.ParseFloat(s[1], 64)
		if err != nil || math.IsNaN(aero) {
			continue
		}
		obs = append(obs, v)
		sim = append(sim, aero)
	}
	return obs, sim, nil
}

func readReference(fp string) (map[string]float64, error) {
	lns, err := mmio.ReadTextLines(fp)
	if err != nil {
		return nil, err
	}
	ref := make(map[string]float64, len(lns))
	for i, ln := range lns {
		ln = strings.TrimSpace(ln)
		if len(ln) == 0 || (i == 0 && strings.Contains(ln, "model")) {
			continue
		}
		s := strings.Split(ln, ",")
		if len(s) != 2 {
			return nil, fmt.Errorf("cannot parse line %q", ln)
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(s[1]), 64)
		if err != nil {
			return nil, err
		}
		ref[s[0]] = v
	}
	return ref, nil
}
