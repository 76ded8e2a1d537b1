package cobra

import (
	"fmt"
	"math"

	"github.com/maseology/mmPlot"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// PlotFluxes renders the aerobic and anaerobic ATP flux distributions
// as paired box plots.
func PlotFluxes(res []Result, fp string) error {
	aero, ana := fluxes(res)

	p := plot.New()
	p.Y.Label.Text = "maximal ATP flux [mmol/gDW/h]"

	w := vg.Points(40)
	ba, err := plotter.NewBoxPlot(w, 0, plotter.Values(aero))
	if err != nil {
		return fmt.Errorf("PlotFluxes: %v", err)
	}
	bn, err := plotter.NewBoxPlot(w, 1, plotter.Values(ana))
	if err != nil {
		return fmt.Errorf("PlotFluxes: %v", err)
	}
	p.Add(ba, bn)
	p.NominalX("aerobic", "anaerobic")

	if err := p.Save(6*vg.Inch, 6*vg.Inch, fp); err != nil {
		return fmt.Errorf("PlotFluxes: %v", err)
	}
	return nil
}

// PlotScatter renders aerobic against anaerobic flux per model.
func PlotScatter(res []Result, fp string) {
	aero, ana := fluxes(res)
	mmplt.Scatter11(fp, aero, ana)
}

func fluxes(res []Result) (aero, ana []float64) {
	for _, r := range res {
		if r.Failed || math.IsNaN(r.Aerobic) || math.IsNaN(r.Anaerobic) {
			continue
		}
		aero = append(aero, r.Aerobic)
		ana = append(ana, r.Anaerobic)
	}
	return
}
