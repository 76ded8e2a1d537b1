package model

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

const jtoy = `{
	"id": "toy",
	"metabolites": [
		{"id": "glc[c]", "name": "glucose", "compartment": "c"},
		{"id": "atp[c]", "name": "ATP", "compartment": "c"}
	],
	"reactions": [
		{"id": "EX_glc(e)", "metabolites": {"glc[c]": -1}, "lower_bound": -10, "upper_bound": 0},
		{"id": "GLCK", "metabolites": {"glc[c]": -1, "atp[c]": 2}, "lower_bound": 0, "upper_bound": 1000}
	]
}`

func writeTemp(t *testing.T, name, dat string) string {
	t.Helper()
	fp := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(fp, []byte(dat), 0644))
	return fp
}

func TestLoadJSON(t *testing.T) {
	m, err := Load(writeTemp(t, "toy.json", jtoy))
	require.NoError(t, err)
	require.Equal(t, "toy", m.ID)
	require.Len(t, m.Mets, 2)
	require.Len(t, m.Rxns, 2)
	require.Equal(t, -10., m.Rxn("EX_glc(e)").LB)
	require.Equal(t, 2., m.Rxn("GLCK").Mets["atp[c]"])
	require.Nil(t, m.Rxn("nope"))
}

func TestLoadJSONDefaultBounds(t *testing.T) {
	m, err := Load(writeTemp(t, "toy.json", `{"id":"t","metabolites":[{"id":"a[c]"}],"reactions":[{"id":"R","metabolites":{"a[c]":1}}]}`))
	require.NoError(t, err)
	require.Equal(t, -DefaultBound, m.Rxn("R").LB)
	require.Equal(t, DefaultBound, m.Rxn("R").UB)
}

func TestLoadUnknownExtension(t *testing.T) {
	_, err := Load(writeTemp(t, "toy.mat", "x"))
	require.Error(t, err)
}

func TestExchanges(t *testing.T) {
	m, err := Load(writeTemp(t, "toy.json", jtoy))
	require.NoError(t, err)
	ex := m.Exchanges()
	require.Len(t, ex, 1)
	require.Equal(t, "EX_glc(e)", ex[0].ID)
}

const jcofac = `{
	"id": "cofac",
	"metabolites": [
		{"id": "atp[c]"}, {"id": "adp[c]"}, {"id": "h2o[c]"},
		{"id": "h[c]"}, {"id": "pi[c]"}
	],
	"reactions": []
}`

func TestEnsureATPDemandAppends(t *testing.T) {
	m, err := Load(writeTemp(t, "toy.json", jcofac))
	require.NoError(t, err)
	id, err := m.EnsureATPDemand()
	require.NoError(t, err)
	require.Equal(t, "DM_atp[c]", id)
	require.NotNil(t, m.Rxn(id))

	// full hydrolysis: atp + h2o -> adp + h + pi
	require.Equal(t, map[string]float64{
		"atp[c]": -1., "h2o[c]": -1.,
		"adp[c]": 1., "h[c]": 1., "pi[c]": 1.,
	}, m.Rxn(id).Mets)

	// second call finds the appended demand
	id2, err := m.EnsureATPDemand()
	require.NoError(t, err)
	require.Equal(t, id, id2)
	require.Len(t, m.Rxns, 1)
}

func TestEnsureATPDemandUnderscoreIDs(t *testing.T) {
	m, err := Load(writeTemp(t, "toy.json", `{"id":"t",
		"metabolites":[{"id":"atp_c"},{"id":"adp_c"},{"id":"h2o_c"},{"id":"h_c"},{"id":"pi_c"}],
		"reactions":[]}`))
	require.NoError(t, err)
	id, err := m.EnsureATPDemand()
	require.NoError(t, err)
	require.Equal(t, -1., m.Rxn(id).Mets["h2o_c"])
	require.Equal(t, 1., m.Rxn(id).Mets["adp_c"])
}

func TestEnsureATPDemandMissingCofactor(t *testing.T) {
	// atp present but no adp/h2o/h/pi: an unbalanceable demand is an
	// error, not a silent sink
	m, err := Load(writeTemp(t, "toy.json", jtoy))
	require.NoError(t, err)
	_, err = m.EnsureATPDemand()
	require.Error(t, err)
	require.Len(t, m.Rxns, 2)
}

func TestEnsureATPDemandFindsATPM(t *testing.T) {
	m, err := Load(writeTemp(t, "toy.json", `{"id":"t",
		"metabolites":[{"id":"atp[c]"}],
		"reactions":[{"id":"ATPM","metabolites":{"atp[c]":-1},"lower_bound":0,"upper_bound":1000}]}`))
	require.NoError(t, err)
	id, err := m.EnsureATPDemand()
	require.NoError(t, err)
	require.Equal(t, "ATPM", id)
}

func TestEnsureATPDemandNoATP(t *testing.T) {
	m, err := Load(writeTemp(t, "toy.json", `{"id":"t","metabolites":[{"id":"a[c]"}],"reactions":[]}`))
	require.NoError(t, err)
	_, err = m.EnsureATPDemand()
	require.Error(t, err)
}

func TestSetObjective(t *testing.T) {
	m, err := Load(writeTemp(t, "toy.json", jtoy))
	require.NoError(t, err)
	require.NoError(t, m.SetObjective("GLCK"))
	require.Equal(t, 1., m.Rxn("GLCK").ObjCoef)
	require.Equal(t, 0., m.Rxn("EX_glc(e)").ObjCoef)
	require.Error(t, m.SetObjective("nope"))
}

func TestGobRoundtrip(t *testing.T) {
	m, err := Load(writeTemp(t, "toy.json", jtoy))
	require.NoError(t, err)
	fp := filepath.Join(t.TempDir(), "toy.gob")
	require.NoError(t, m.SaveGob(fp))
	m2, err := Load(fp)
	require.NoError(t, err)
	require.Equal(t, m.ID, m2.ID)
	require.Len(t, m2.Rxns, len(m.Rxns))
	require.Equal(t, m.Rxn("GLCK").Mets, m2.Rxn("GLCK").Mets)
}

const stoy = `<?xml version="1.0" encoding="UTF-8"?>
<sbml xmlns="http://www.sbml.org/sbml/level3/version1/core" level="3" version="1">
  <model id="stoy">
    <listOfParameters>
      <parameter id="lb_ex" value="-10" constant="true"/>
      <parameter id="ub_def" value="1000" constant="true"/>
    </listOfParameters>
    <listOfSpecies>
      <species id="glc_c" name="glucose" compartment="c"/>
      <species id="atp_c" name="ATP" compartment="c"/>
      <species id="glc_b" compartment="e" boundaryCondition="true"/>
    </listOfSpecies>
    <listOfReactions>
      <reaction id="EX_glc_e" reversible="true" lowerFluxBound="lb_ex" upperFluxBound="ub_def">
        <listOfReactants><speciesReference species="glc_c" stoichiometry="1"/></listOfReactants>
        <listOfProducts><speciesReference species="glc_b" stoichiometry="1"/></listOfProducts>
      </reaction>
      <reaction id="GLCK" reversible="false">
        <listOfReactants><speciesReference species="glc_c" stoichiometry="1"/></listOfReactants>
        <listOfProducts><speciesReference species="atp_c" stoichiometry="2"/></listOfProducts>
      </reaction>
    </listOfReactions>
  </model>
</sbml>`

func TestLoadSBML(t *testing.T) {
	m, err := Load(writeTemp(t, "stoy.xml", stoy))
	require.NoError(t, err)
	require.Equal(t, "stoy", m.ID)
	require.Len(t, m.Mets, 2) // boundary species dropped
	require.Equal(t, -10., m.Rxn("EX_glc_e").LB)
	require.Equal(t, 1000., m.Rxn("EX_glc_e").UB)
	require.Equal(t, -1., m.Rxn("EX_glc_e").Mets["glc_c"])
	require.NotContains(t, m.Rxn("EX_glc_e").Mets, "glc_b")
	require.Equal(t, 0., m.Rxn("GLCK").LB) // irreversible default
	require.Equal(t, 2., m.Rxn("GLCK").Mets["atp_c"])
}
