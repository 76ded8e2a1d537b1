package cobra

import (
	"math"

	"github.com/WegrzynAB/cobratoolbox/diet"
)

// plausibility caps on maximal ATP flux [mmol/gDW/h]
const (
	AeroMax = 150.
	AnaMax  = 100.
)

// Screener batch-evaluates reconstructions for implausible ATP
// production under a given diet.
type Screener struct {
	D               diet.Diet
	AeroMax, AnaMax float64
}

// NewScreener returns a screener with the default thresholds.
func NewScreener(d diet.Diet) *Screener {
	return &Screener{D: d, AeroMax: AeroMax, AnaMax: AnaMax}
}

// Result holds the two maximal ATP fluxes computed per model.
type Result struct {
	Name               string
	Aerobic, Anaerobic float64
	Failed             bool
}

// Flagged reports whether either condition exceeds its threshold.
func (s *Screener) Flagged(r Result) bool {
	if r.Failed {
		return false
	}
	return r.Aerobic > s.AeroMax || r.Anaerobic > s.AnaMax
}

func failed(name string) Result {
	return Result{Name: name, Aerobic: math.NaN(), Anaerobic: math.NaN(), Failed: true}
}
