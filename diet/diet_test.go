package diet

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/WegrzynAB/cobratoolbox/model"
	"github.com/stretchr/testify/require"
)

func toyModel() *model.Model {
	m := &model.Model{
		ID: "toy",
		Mets: []model.Metabolite{
			{ID: "glc[c]"}, {ID: "o2[c]"}, {ID: "ac[c]"},
		},
		Rxns: []model.Reaction{
			{ID: "EX_glc(e)", Mets: map[string]float64{"glc[c]": -1.}, LB: -1000., UB: 1000.},
			{ID: "EX_o2(e)", Mets: map[string]float64{"o2[c]": -1.}, LB: -1000., UB: 1000.},
			{ID: "EX_ac(e)", Mets: map[string]float64{"ac[c]": -1.}, LB: -1000., UB: 1000.},
		},
	}
	m.Index()
	return m
}

func TestApplyClosesUnlistedExchanges(t *testing.T) {
	m := toyModel()
	d := Diet{Name: "test", Uptake: map[string]float64{"EX_glc(e)": 5., "EX_missing(e)": 3.}}
	d.Apply(m)
	require.Equal(t, -5., m.Rxn("EX_glc(e)").LB)
	require.Equal(t, 0., m.Rxn("EX_o2(e)").LB)
	require.Equal(t, 0., m.Rxn("EX_ac(e)").LB)
}

func TestAerobicAnaerobic(t *testing.T) {
	m := toyModel()
	d := Diet{Name: "test", Uptake: map[string]float64{}}
	d.Apply(m)
	d.Aerobic(m)
	require.Equal(t, -O2Uptake, m.Rxn("EX_o2(e)").LB)
	d.Anaerobic(m)
	require.Equal(t, 0., m.Rxn("EX_o2(e)").LB)

	d.O2 = 20.
	d.Aerobic(m)
	require.Equal(t, -20., m.Rxn("EX_o2(e)").LB)
}

func TestAerobicNoOxygenExchange(t *testing.T) {
	m := toyModel()
	m.Rxns = m.Rxns[:1]
	m.Index()
	d := Diet{Name: "test"}
	d.Aerobic(m) // no-op on models lacking an oxygen exchange
	d.Anaerobic(m)
}

func TestScale(t *testing.T) {
	d := Diet{Name: "test", O2: 5., Uptake: map[string]float64{"EX_glc(e)": 2.}}
	s := d.Scale(10.)
	require.Equal(t, 20., s.Uptake["EX_glc(e)"])
	require.Equal(t, 5., s.O2)
	require.Equal(t, 2., d.Uptake["EX_glc(e)"]) // source untouched
}

func TestLoad(t *testing.T) {
	fp := filepath.Join(t.TempDir(), "test.diet")
	require.NoError(t, os.WriteFile(fp, []byte("# test diet\nEX_glc(e),5\nEX_fru(e), 0.149\n\n"), 0644))
	d, err := Load(fp)
	require.NoError(t, err)
	require.Equal(t, "test", d.Name)
	require.Equal(t, 5., d.Uptake["EX_glc(e)"])
	require.Equal(t, .149, d.Uptake["EX_fru(e)"])
}

func TestLoadBadLine(t *testing.T) {
	fp := filepath.Join(t.TempDir(), "bad.diet")
	require.NoError(t, os.WriteFile(fp, []byte("EX_glc(e);5\n"), 0644))
	_, err := Load(fp)
	require.Error(t, err)
}

func TestWestern(t *testing.T) {
	d := Western()
	require.Greater(t, len(d.Uptake), 50)
	for id, u := range d.Uptake {
		require.Greaterf(t, u, 0., "uptake %s must be positive", id)
	}
}
