package cobra

import (
	"fmt"

	"github.com/WegrzynAB/cobratoolbox/fba"
	"github.com/WegrzynAB/cobratoolbox/model"
)

// TestATP computes the maximal ATP demand flux of a reconstruction
// under the screener diet, aerobically then anaerobically.
func (s *Screener) TestATP(m *model.Model) (aero, ana float64, err error) {
	s.D.Apply(m)
	did, err := m.EnsureATPDemand()
	if err != nil {
		return 0., 0., err
	}
	if err := m.SetObjective(did); err != nil {
		return 0., 0., err
	}

	s.D.Aerobic(m)
	sol, err := fba.Solve(m)
	if err != nil {
		return 0., 0., fmt.Errorf("TestATP %s aerobic: %v", m.ID, err)
	}
	aero = sol.Objective

	s.D.Anaerobic(m)
	sol, err = fba.Solve(m)
	if err != nil {
		return 0., 0., fmt.Errorf("TestATP %s anaerobic: %v", m.ID, err)
	}
	ana = sol.Objective
	return aero, ana, nil
}

// testFile loads and screens one model file. Failures are folded into
// the result so one bad reconstruction cannot abort a batch.
func (s *Screener) testFile(fp string) Result {
	nam := model.Name(fp)
	m, err := model.Load(fp)
	if err != nil {
		fmt.Printf("  WARNING %s: %v\n", nam, err)
		return failed(nam)
	}
	aero, ana, err := s.TestATP(m)
	if err != nil {
		fmt.Printf("  WARNING %s: %v\n", nam, err)
		return failed(nam)
	}
	return Result{Name: nam, Aerobic: aero, Anaerobic: ana}
}
