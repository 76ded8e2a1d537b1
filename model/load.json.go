package model

import (
	"encoding/json"
	"fmt"
	"os"
)

// cobrapy JSON schema v1
type jsonModel struct {
	ID          string `json:"id"`
	Metabolites []struct {
		ID          string `json:"id"`
		Name        string `json:"name"`
		Compartment string `json:"compartment"`
	} `json:"metabolites"`
	Reactions []struct {
		ID          string             `json:"id"`
		Name        string             `json:"name"`
		Metabolites map[string]float64 `json:"metabolites"`
		LB          *float64           `json:"lower_bound"`
		UB          *float64           `json:"upper_bound"`
		ObjCoef     float64            `json:"objective_coefficient"`
	} `json:"reactions"`
}

func loadJSON(fp string) (*Model, error) {
	b, err := os.ReadFile(fp)
	if err != nil {
		return nil, fmt.Errorf("model.loadJSON: %v", err)
	}
	var jm jsonModel
	if err := json.Unmarshal(b, &jm); err != nil {
		return nil, fmt.Errorf("model.loadJSON %s: %v", fp, err)
	}

	m := Model{ID: jm.ID}
	if len(m.ID) == 0 {
		m.ID = Name(fp)
	}
	m.Mets = make([]Metabolite, len(jm.Metabolites))
	for i, s := range jm.Metabolites {
		m.Mets[i] = Metabolite{ID: s.ID, Name: s.Name, Compartment: s.Compartment}
	}
	m.Rxns = make([]Reaction, len(jm.Reactions))
	for i, r := range jm.Reactions {
		lb, ub := -DefaultBound, DefaultBound
		if r.LB != nil {
			lb = *r.LB
		}
		if r.UB != nil {
			ub = *r.UB
		}
		m.Rxns[i] = Reaction{ID: r.ID, Name: r.Name, Mets: r.Metabolites, LB: lb, UB: ub, ObjCoef: r.ObjCoef}
	}
	m.Index()
	if err := m.ClampBounds(); err != nil {
		return nil, err
	}
	return &m, nil
}
