package cobra

import (
	"fmt"
	"log"
	"sort"

	"github.com/maseology/mmio"
)

// Offenders collects the identifiers of models exceeding either
// threshold, deduplicated and sorted.
func (s *Screener) Offenders(res []Result) []string {
	set := make(map[string]bool, len(res))
	for _, r := range res {
		if s.Flagged(r) {
			set[r.Name] = true
		}
	}
	o := make([]string, 0, len(set))
	for n := range set {
		o = append(o, n)
	}
	sort.Strings(o)
	return o
}

// WriteReport persists the result table, the offender list and the
// raw flux dumps.
func (s *Screener) WriteReport(res []Result, outdirprfx string) error {
	csvw := mmio.NewCSVwriter(outdirprfx + "summary.csv")
	defer csvw.Close()
	if err := csvw.WriteHead("model,aerobic,anaerobic,flagged"); err != nil {
		return fmt.Errorf("WriteReport: %v", err)
	}
	for _, r := range res {
		f := 0
		if s.Flagged(r) {
			f = 1
		}
		csvw.WriteLine(r.Name, r.Aerobic, r.Anaerobic, f)
	}

	mmio.WriteLines(outdirprfx+"offenders.txt", s.Offenders(res))
	s.saveResults(res, outdirprfx)
	return nil
}

func (s *Screener) saveResults(res []Result, outdirprfx string) {
	aero, ana := make([]float64, len(res)), make([]float64, len(res))
	for i, r := range res {
		aero[i] = r.Aerobic
		ana[i] = r.Anaerobic
	}
	writeFloats(outdirprfx+"aerobic.bin", aero)
	writeFloats(outdirprfx+"anaerobic.bin", ana)
}

// PrintSummary reports batch counts to the console.
func (s *Screener) PrintSummary(res []Result) {
	nfail, noff := 0, len(s.Offenders(res))
	for _, r := range res {
		if r.Failed {
			nfail++
		}
	}
	fmt.Printf(" %s models screened: %d flagged, %d failed\n", mmio.Thousands(int64(len(res))), noff, nfail)
	if noff > 0 {
		log.Printf(" WARNING %d reconstruction(s) exceed plausible ATP production (aerobic > %.0f or anaerobic > %.0f)\n", noff, s.AeroMax, s.AnaMax)
	}
}
