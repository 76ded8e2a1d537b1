package model

import (
	"encoding/gob"
	"fmt"
	"os"
)

// SaveGob caches a parsed reconstruction beside its source file.
func (m *Model) SaveGob(fp string) error {
	f, err := os.Create(fp)
	if err != nil {
		return fmt.Errorf("model.SaveGob: %v", err)
	}
	defer f.Close()
	if err := gob.NewEncoder(f).Encode(*m); err != nil {
		return fmt.Errorf("model.SaveGob %s: %v", fp, err)
	}
	return nil
}

func LoadGob(fp string) (*Model, error) {
	f, err := os.Open(fp)
	if err != nil {
		return nil, fmt.Errorf("model.LoadGob: %v", err)
	}
	defer f.Close()
	var m Model
	if err := gob.NewDecoder(f).Decode(&m); err != nil {
		return nil, fmt.Errorf("model.LoadGob %s: %v", fp, err)
	}
	m.Index()
	return &m, nil
}
