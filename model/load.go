package model

import (
	"fmt"
	"sort"
	"strings"

	"github.com/maseology/mmio"
)

// Load reads a reconstruction, dispatching on file extension.
func Load(fp string) (*Model, error) {
	switch strings.ToLower(mmio.GetExtension(fp)) {
	case ".json":
		return loadJSON(fp)
	case ".xml", ".sbml":
		return loadSBML(fp)
	case ".gob":
		return LoadGob(fp)
	default:
		return nil, fmt.Errorf("model.Load: unrecognized model file %s", fp)
	}
}

// FileList collects the model files held in a directory.
func FileList(dir string) []string {
	var fps []string
	for _, ext := range []string{".json", ".xml", ".sbml", ".gob"} {
		lst, _ := mmio.FileListExt(dir, ext)
		fps = append(fps, lst...)
	}
	sort.Strings(fps)
	return fps
}

// Name reports the model identifier used in summaries: the file name
// stripped of its extension.
func Name(fp string) string { return mmio.FileName(fp, false) }
