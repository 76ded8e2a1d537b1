// Package fba solves flux-balance-analysis programs:
// maximize c·v subject to S·v = 0, lb ≤ v ≤ ub.
package fba

import (
	"errors"
	"fmt"

	"github.com/WegrzynAB/cobratoolbox/model"
	"gonum.org/v1/gonum/optimize/convex/lp"
)

const tol = 1e-9

type Status int

const (
	Optimal Status = iota
	Infeasible
	Unbounded
)

var (
	ErrInfeasible = errors.New("fba: infeasible")
	ErrUnbounded  = errors.New("fba: unbounded")
)

type Solution struct {
	Objective float64
	Fluxes    []float64 // per reaction, model order [mmol/gDW/h]
	Status    Status
}

// Solve maximizes the model objective at steady state.
func Solve(m *model.Model) (Solution, error) {
	if err := m.ClampBounds(); err != nil {
		return Solution{}, err
	}
	c, a, b, lbs, err := standardForm(m)
	if err != nil {
		if errors.Is(err, ErrInfeasible) {
			return Solution{Status: Infeasible}, ErrInfeasible
		}
		return Solution{}, err
	}

	optF, optX, err := lp.Simplex(c, a, b, tol, nil)
	if err != nil {
		switch {
		case errors.Is(err, lp.ErrInfeasible):
			return Solution{Status: Infeasible}, ErrInfeasible
		case errors.Is(err, lp.ErrUnbounded):
			return Solution{Status: Unbounded}, ErrUnbounded
		default:
			return Solution{}, fmt.Errorf("fba.Solve %s: %v", m.ID, err)
		}
	}

	n := len(m.Rxns)
	sol := Solution{Fluxes: make([]float64, n), Status: Optimal}
	for j := 0; j < n; j++ {
		sol.Fluxes[j] = optX[j] + lbs[j]
	}
	sol.Objective = -optF
	for j, r := range m.Rxns {
		sol.Objective += r.ObjCoef * lbs[j] // shift back to v-space
	}
	return sol, nil
}
