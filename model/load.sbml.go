package model

import (
	"encoding/xml"
	"fmt"
	"os"
)

// SBML level-3 subset: species, reactions with fbc flux bounds.
// Gene products, annotations and unit definitions are ignored.
type sbmlDoc struct {
	Model struct {
		ID         string `xml:"id,attr"`
		Parameters []struct {
			ID    string  `xml:"id,attr"`
			Value float64 `xml:"value,attr"`
		} `xml:"listOfParameters>parameter"`
		Species []struct {
			ID          string `xml:"id,attr"`
			Name        string `xml:"name,attr"`
			Compartment string `xml:"compartment,attr"`
			Boundary    bool   `xml:"boundaryCondition,attr"`
		} `xml:"listOfSpecies>species"`
		Reactions []struct {
			ID         string           `xml:"id,attr"`
			Name       string           `xml:"name,attr"`
			Reversible bool             `xml:"reversible,attr"`
			LBParam    string           `xml:"lowerFluxBound,attr"`
			UBParam    string           `xml:"upperFluxBound,attr"`
			Reactants  []sbmlSpeciesRef `xml:"listOfReactants>speciesReference"`
			Products   []sbmlSpeciesRef `xml:"listOfProducts>speciesReference"`
		} `xml:"listOfReactions>reaction"`
	} `xml:"model"`
}

type sbmlSpeciesRef struct {
	Species string  `xml:"species,attr"`
	Stoich  float64 `xml:"stoichiometry,attr"`
}

func loadSBML(fp string) (*Model, error) {
	b, err := os.ReadFile(fp)
	if err != nil {
		return nil, fmt.Errorf("model.loadSBML: %v", err)
	}
	var doc sbmlDoc
	if err := xml.Unmarshal(b, &doc); err != nil {
		return nil, fmt.Errorf("model.loadSBML %s: %v", fp, err)
	}

	pars := make(map[string]float64, len(doc.Model.Parameters))
	for _, p := range doc.Model.Parameters {
		pars[p.ID] = p.Value
	}

	m := Model{ID: doc.Model.ID}
	if len(m.ID) == 0 {
		m.ID = Name(fp)
	}
	bnd := make(map[string]bool, len(doc.Model.Species))
	for _, s := range doc.Model.Species {
		if s.Boundary { // boundary species are outside the balanced system
			bnd[s.ID] = true
			continue
		}
		m.Mets = append(m.Mets, Metabolite{ID: s.ID, Name: s.Name, Compartment: s.Compartment})
	}
	m.Rxns = make([]Reaction, len(doc.Model.Reactions))
	for i, r := range doc.Model.Reactions {
		mets := make(map[string]float64, len(r.Reactants)+len(r.Products))
		for _, sr := range r.Reactants {
			if bnd[sr.Species] {
				continue
			}
			v := sr.Stoich
			if v == 0. {
				v = 1.
			}
			mets[sr.Species] -= v
		}
		for _, sr := range r.Products {
			if bnd[sr.Species] {
				continue
			}
			v := sr.Stoich
			if v == 0. {
				v = 1.
			}
			mets[sr.Species] += v
		}
		lb, ub := 0., DefaultBound
		if r.Reversible {
			lb = -DefaultBound
		}
		if v, ok := pars[r.LBParam]; ok {
			lb = v
		}
		if v, ok := pars[r.UBParam]; ok {
			ub = v
		}
		m.Rxns[i] = Reaction{ID: r.ID, Name: r.Name, Mets: mets, LB: lb, UB: ub}
	}
	m.Index()
	if err := m.ClampBounds(); err != nil {
		return nil, err
	}
	return &m, nil
}
