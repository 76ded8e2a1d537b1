package main

import (
	"fmt"
	"log"
	"runtime"

	cobra "github.com/WegrzynAB/cobratoolbox"
	"github.com/WegrzynAB/cobratoolbox/diet"
	"github.com/WegrzynAB/cobratoolbox/model"
	"github.com/maseology/mmio"
)

func main() {

	const (
		mdlDir  = "M:/AGORA/models/"  // reconstruction directory (json/sbml/gob)
		outPrfx = "M:/AGORA/out/atp." // output file prefix
		dietFP  = ""                  // blank = built-in western diet
		nwrkrs  = 0                   // 0 = GOMAXPROCS
	)

	fmt.Println("")
	tt := mmio.NewTimer()
	defer tt.Lap(fmt.Sprintf("\nScreen complete. n processes: %v", runtime.GOMAXPROCS(0)))

	fps := model.FileList(mdlDir)
	if len(fps) == 0 {
		log.Fatalf("no model files found in %s", mdlDir)
	}
	fmt.Printf(" %s model files found in %s\n", mmio.Thousands(int64(len(fps))), mdlDir)

	d := diet.Western()
	if len(dietFP) > 0 {
		var err error
		if d, err = diet.Load(dietFP); err != nil {
			log.Fatalf("%v", err)
		}
	}

	s := cobra.NewScreener(d)
	res := s.Screen(fps, nwrkrs, "")
	tt.Print("batch evaluation complete\n")

	if err := s.WriteReport(res, outPrfx); err != nil {
		log.Fatalf("%v", err)
	}
	if err := cobra.PlotFluxes(res, outPrfx+"fluxes.png"); err != nil {
		log.Fatalf("%v", err)
	}
	cobra.PlotScatter(res, outPrfx+"scatter.png")
	s.PrintSummary(res)
}
