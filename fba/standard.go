package fba

import (
	"math"

	"github.com/WegrzynAB/cobratoolbox/model"
	"gonum.org/v1/gonum/mat"
)

// standardForm converts the bounded steady-state program to LP standard
// form (min c·x s.t. A·x = b, x ≥ 0). Each flux is shifted by its lower
// bound and paired with a slack column enforcing the upper bound:
//
//	x_j = v_j - lb_j,  x_j + s_j = ub_j - lb_j
//
// The metabolite balance S·v = 0 becomes S·x = -S·lb, reduced to an
// independent row set first: conserved moieties (atp/adp, nad/nadh,
// proton balance) leave S rank-deficient in every realistic
// reconstruction, and the simplex requires full row rank.
func standardForm(m *model.Model) (c []float64, a *mat.Dense, b, lbs []float64, err error) {
	n, nm := len(m.Rxns), len(m.Mets)

	mxr := make(map[string]int, nm)
	for i, s := range m.Mets {
		mxr[s.ID] = i
	}

	c = make([]float64, 2*n)
	lbs = make([]float64, n)
	s := make([][]float64, nm)
	bs := make([]float64, nm)
	for i := range s {
		s[i] = make([]float64, n)
	}
	for j, r := range m.Rxns {
		lbs[j] = r.LB
		c[j] = -r.ObjCoef // maximize
		for sid, coef := range r.Mets {
			i, ok := mxr[sid]
			if !ok {
				continue // boundary species dropped at load
			}
			s[i][j] = coef
			bs[i] -= coef * r.LB
		}
	}

	if s, bs, err = reduceBalance(s, bs); err != nil {
		return nil, nil, nil, nil, err
	}

	nb := len(s)
	nrow, ncol := nb+n, 2*n
	a = mat.NewDense(nrow, ncol, nil)
	b = make([]float64, nrow)
	for i, row := range s {
		a.SetRow(i, append(row, make([]float64, n)...))
		b[i] = bs[i]
	}
	for j, r := range m.Rxns {
		a.Set(nb+j, j, 1.)
		a.Set(nb+j, n+j, 1.)
		b[nb+j] = r.UB - r.LB
	}
	return
}

// reduceBalance eliminates linearly dependent balance rows by gaussian
// elimination with partial pivoting, returning a row-equivalent
// independent system. A dropped row with a nonzero constant marks the
// equalities inconsistent.
func reduceBalance(s [][]float64, b []float64) ([][]float64, []float64, error) {
	nr := len(s)
	n := 0
	if nr > 0 {
		n = len(s[0])
	}
	r0 := 0
	for col := 0; col < n && r0 < nr; col++ {
		p, pmax := -1, tol
		for r := r0; r < nr; r++ {
			if v := math.Abs(s[r][col]); v > pmax {
				p, pmax = r, v
			}
		}
		if p < 0 {
			continue
		}
		s[r0], s[p] = s[p], s[r0]
		b[r0], b[p] = b[p], b[r0]
		for r := r0 + 1; r < nr; r++ {
			f := s[r][col] / s[r0][col]
			if f == 0. {
				continue
			}
			for j := col; j < n; j++ {
				s[r][j] -= f * s[r0][j]
			}
			b[r] -= f * b[r0]
		}
		r0++
	}
	for r := r0; r < nr; r++ {
		if math.Abs(b[r]) > tol {
			return nil, nil, ErrInfeasible
		}
	}
	return s[:r0], b[:r0], nil
}
