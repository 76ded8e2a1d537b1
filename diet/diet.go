// Package diet applies growth-medium exchange bounds to reconstructions.
package diet

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/WegrzynAB/cobratoolbox/model"
	"github.com/maseology/mmio"
)

const O2Uptake = 10. // aerobic oxygen cap [mmol/gDW/h]

// oxygen exchange ID dialects
var o2ids = []string{"EX_o2(e)", "EX_o2[e]", "EX_o2_e", "EX_o2_e_"}

// A Diet maps exchange reaction IDs to maximal uptake rates
// (positive values; applied as negative lower bounds). O2 overrides
// the aerobic oxygen cap when set.
type Diet struct {
	Name   string
	Uptake map[string]float64
	O2     float64
}

// Load reads a diet file: one "exchange,uptake" pair per line,
// '#' comments and blank lines skipped.
func Load(fp string) (Diet, error) {
	lns, err := mmio.ReadTextLines(fp)
	if err != nil {
		return Diet{}, fmt.Errorf("diet.Load: %v", err)
	}
	d := Diet{Name: mmio.FileName(fp, false), Uptake: make(map[string]float64, len(lns))}
	for _, ln := range lns {
		ln = strings.TrimSpace(ln)
		if len(ln) == 0 || strings.HasPrefix(ln, "#") {
			continue
		}
		s := strings.Split(ln, ",")
		if len(s) != 2 {
			return Diet{}, fmt.Errorf("diet.Load %s: cannot parse line %q", fp, ln)
		}
		u, err := strconv.ParseFloat(strings.TrimSpace(s[1]), 64)
		if err != nil {
			return Diet{}, fmt.Errorf("diet.Load %s: cannot parse line %q: %v", fp, ln, err)
		}
		d.Uptake[strings.TrimSpace(s[0])] = u
	}
	return d, nil
}

// Apply closes every exchange then opens the diet uptakes. Exchanges
// named by the diet but absent from the model are skipped; published
// reconstructions differ in their exchange sets.
func (d Diet) Apply(m *model.Model) {
	for _, r := range m.Exchanges() {
		r.LB = 0.
	}
	for id, u := range d.Uptake {
		if r := m.Rxn(id); r != nil && len(r.Mets) == 1 {
			r.LB = -u
		}
	}
}

// Aerobic caps oxygen uptake at d.O2, defaulting to O2Uptake.
func (d Diet) Aerobic(m *model.Model) {
	o2 := d.O2
	if o2 == 0. {
		o2 = O2Uptake
	}
	if r := m.RxnAny(o2ids...); r != nil {
		r.LB = -o2
	}
}

// Anaerobic closes the oxygen exchange.
func (d Diet) Anaerobic(m *model.Model) {
	if r := m.RxnAny(o2ids...); r != nil {
		r.LB = 0.
	}
}

// Scale returns a copy with every uptake multiplied by f.
func (d Diet) Scale(f float64) Diet {
	o := Diet{Name: d.Name, O2: d.O2, Uptake: make(map[string]float64, len(d.Uptake))}
	for id, u := range d.Uptake {
		o.Uptake[id] = u * f
	}
	return o
}

// Copy returns an independent diet.
func (d Diet) Copy() Diet { return d.Scale(1.) }
