package cobra

import (
	"github.com/WegrzynAB/cobratoolbox/model"
	"github.com/gosuri/uiprogress"
)

// ScreenSerial evaluates a batch of model files, no concurrency.
func (s *Screener) ScreenSerial(fps []string, outdirprfx string) []Result {

	uiprogress.Start()
	nam := make(chan string, 1)
	bar := uiprogress.AddBar(len(fps)).AppendCompleted().PrependElapsed()
	bar.PrependFunc(func(b *uiprogress.Bar) string {
		select {
		case n := <-nam:
			return n
		default:
			return ""
		}
	})

	res := make([]Result, len(fps))
	for k, fp := range fps {
		select {
		case nam <- model.Name(fp):
		default:
		}
		res[k] = s.testFile(fp)
		bar.Incr()
	}
	uiprogress.Stop()

	if len(outdirprfx) > 0 {
		s.saveResults(res, outdirprfx)
	}
	return res
}
