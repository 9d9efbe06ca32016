package storage

import (
	"encoding/json"
	"io"
	"os"
	"path/filepath"

	"github.com/san-kum/gravsim/internal/metrics"
)

type ExportData struct {
	Run     RunMetadata      `json:"run"`
	Columns []string         `json:"columns"`
	Samples []metrics.Sample `json:"samples"`
}

// ExportJSON writes a run's metadata and samples as one JSON document.
func (s *Store) ExportJSON(w io.Writer, runID string) error {
	meta, err := s.Load(runID)
	if err != nil {
		return err
	}
	samples, err := s.LoadSamples(runID)
	if err != nil {
		return err
	}

	data := ExportData{
		Run:     *meta,
		Columns: metrics.SampleColumns,
		Samples: samples,
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}

// ExportCSV copies a run's samples file to w.
func (s *Store) ExportCSV(w io.Writer, runID string) error {
	file, err := os.Open(filepath.Join(s.baseDir, runID, samplesFile))
	if err != nil {
		return err
	}
	defer file.Close()

	_, err = io.Copy(w, file)
	return err
}
