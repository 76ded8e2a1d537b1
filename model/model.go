package model

import (
	"fmt"
	"strings"
)

const DefaultBound = 1000. // COBRA convention [mmol/gDW/h]

type Metabolite struct {
	ID, Name, Compartment string
}

type Reaction struct {
	ID, Name string
	Mets     map[string]float64 // metabolite ID to stoichiometric coefficient
	LB, UB   float64
	ObjCoef  float64
}

type Model struct {
	ID   string
	Mets []Metabolite
	Rxns []Reaction

	mxr map[string]int // metabolite ID cross-reference
	rxr map[string]int
}

func (m *Model) Index() {
	m.mxr = make(map[string]int, len(m.Mets))
	for i, s := range m.Mets {
		m.mxr[s.ID] = i
	}
	m.rxr = make(map[string]int, len(m.Rxns))
	for i, r := range m.Rxns {
		m.rxr[r.ID] = i
	}
}

func (m *Model) Rxn(id string) *Reaction {
	if m.rxr == nil {
		m.Index()
	}
	if i, ok := m.rxr[id]; ok {
		return &m.Rxns[i]
	}
	return nil
}

func (m *Model) Met(id string) *Metabolite {
	if m.mxr == nil {
		m.Index()
	}
	if i, ok := m.mxr[id]; ok {
		return &m.Mets[i]
	}
	return nil
}

// RxnAny returns the first reaction matching any of the given IDs,
// covering the ID dialects found across published reconstructions.
func (m *Model) RxnAny(ids ...string) *Reaction {
	for _, id := range ids {
		if r := m.Rxn(id); r != nil {
			return r
		}
	}
	return nil
}

// Exchanges lists boundary reactions: single-metabolite reactions
// carrying the EX_ prefix.
func (m *Model) Exchanges() []*Reaction {
	var o []*Reaction
	for i := range m.Rxns {
		r := &m.Rxns[i]
		if len(r.Mets) == 1 && strings.HasPrefix(r.ID, "EX_") {
			o = append(o, r)
		}
	}
	return o
}

// SetObjective points the FBA objective at a single reaction.
func (m *Model) SetObjective(rxnID string) error {
	if m.Rxn(rxnID) == nil {
		return fmt.Errorf("SetObjective: reaction %s not found in %s", rxnID, m.ID)
	}
	for i := range m.Rxns {
		m.Rxns[i].ObjCoef = 0.
	}
	m.Rxn(rxnID).ObjCoef = 1.
	return nil
}

// EnsureATPDemand returns the ID of the cytosolic ATP demand reaction,
// appending the hydrolysis demand atp + h2o -> adp + h + pi when the
// reconstruction carries none. A bare sink will not do: it never
// regenerates adp, pinning demand flux to zero wherever ATP synthesis
// consumes it.
func (m *Model) EnsureATPDemand() (string, error) {
	if r := m.RxnAny("DM_atp_c_", "DM_atp(c)", "DM_atp[c]", "DM_atp_c", "ATPM"); r != nil {
		return r.ID, nil
	}
	atpID := ""
	for _, id := range []string{"atp[c]", "atp_c", "M_atp_c"} {
		if m.Met(id) != nil {
			atpID = id
			break
		}
	}
	if len(atpID) == 0 {
		return "", fmt.Errorf("EnsureATPDemand: no cytosolic atp metabolite in %s", m.ID)
	}
	mets := map[string]float64{atpID: -1.}
	for sp, coef := range map[string]float64{"h2o": -1., "adp": 1., "h": 1., "pi": 1.} {
		id := strings.Replace(atpID, "atp", sp, 1) // same ID dialect as the atp species
		if m.Met(id) == nil {
			return "", fmt.Errorf("EnsureATPDemand: no %s metabolite in %s to balance the ATP hydrolysis demand", id, m.ID)
		}
		mets[id] = coef
	}
	m.Rxns = append(m.Rxns, Reaction{
		ID:   "DM_atp[c]",
		Name: "ATP hydrolysis demand",
		Mets: mets,
		LB:   0.,
		UB:   DefaultBound,
	})
	m.Index()
	return "DM_atp[c]", nil
}

// ClampBounds replaces unset or infinite bounds with the COBRA default
// and checks bound ordering.
func (m *Model) ClampBounds() error {
	for i := range m.Rxns {
		r := &m.Rxns[i]
		if r.LB < -DefaultBound {
			r.LB = -DefaultBound
		}
		if r.UB > DefaultBound {
			r.UB = DefaultBound
		}
		if r.LB > r.UB {
			return fmt.Errorf("ClampBounds: %s.%s bounds reversed (%f > %f)", m.ID, r.ID, r.LB, r.UB)
		}
	}
	return nil
}
