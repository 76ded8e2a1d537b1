package main

import (
	"fmt"
	"log"

	"github.com/WegrzynAB/cobratoolbox/model"
	"github.com/maseology/mmio"
)

// converts a directory of json/sbml reconstructions to gob caches
func main() {

	const (
		srcDir = "M:/AGORA/models/"
		dstDir = "M:/AGORA/gob/"
	)

	tt := mmio.NewTimer()
	defer tt.Print("gob build complete!")

	mmio.MakeDir(dstDir)

	var fps []string
	for _, ext := range []string{".json", ".xml", ".sbml"} {
		lst, _ := mmio.FileListExt(srcDir, ext)
		fps = append(fps, lst...)
	}
	if len(fps) == 0 {
		log.Fatalf("no model files found in %s", srcDir)
	}

	nskip := 0
	for _, fp := range fps {
		gfp := dstDir + mmio.FileName(fp, false) + ".gob"
		if _, ok := mmio.FileExists(gfp); ok {
			nskip++
			continue
		}
		m, err := model.Load(fp)
		if err != nil {
			log.Fatalf(" gobBuilder %s: %v", fp, err)
		}
		if err := m.SaveGob(gfp); err != nil {
			log.Fatalf(" gobBuilder %s: %v", fp, err)
		}
		fmt.Printf(" %s: %d metabolites, %d reactions\n", m.ID, len(m.Mets), len(m.Rxns))
	}
	if nskip > 0 {
		fmt.Printf(" %d cached models skipped\n", nskip)
	}
}
