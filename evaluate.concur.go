package cobra

import (
	"runtime"
	"sync"

	"github.com/gosuri/uiprogress"
)

// Screen evaluates a batch of model files across a worker pool.
// Results hold input order regardless of pool scheduling.
func (s *Screener) Screen(fps []string, nwrkrs int, outdirprfx string) []Result {
	if nwrkrs < 1 {
		nwrkrs = runtime.GOMAXPROCS(0)
	}

	uiprogress.Start()
	bar := uiprogress.AddBar(len(fps)).AppendCompleted().PrependElapsed()
	res := s.screen(fps, nwrkrs, func() { bar.Incr() })
	uiprogress.Stop()

	if len(outdirprfx) > 0 {
		s.saveResults(res, outdirprfx)
	}
	return res
}

// screen is the pool kernel shared by Screen, GenerateSamples and the
// diet calibrator.
func (s *Screener) screen(fps []string, nwrkrs int, tick func()) []Result {
	res := make([]Result, len(fps))
	kin := make(chan int, nwrkrs)

	var wg sync.WaitGroup
	for w := 0; w < nwrkrs; w++ {
		go func() {
			for k := range kin {
				res[k] = s.testFile(fps[k])
				if tick != nil {
					tick()
				}
				wg.Done()
			}
		}()
	}
	for k := range fps {
		wg.Add(1)
		kin <- k
	}
	close(kin)
	wg.Wait()
	return res
}
