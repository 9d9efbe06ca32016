package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"

	"github.com/san-kum/gravsim/internal/config"
	"github.com/san-kum/gravsim/internal/dynamo"
	"github.com/san-kum/gravsim/internal/metrics"
	"go.uber.org/multierr"
)

const (
	metadataFile = "metadata.json"
	samplesFile  = "samples.csv"
)

// Store keeps recorded runs on disk, one directory per run.
type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type RunMetadata struct {
	ID           string             `json:"id"`
	Name         string             `json:"name"`
	Timestamp    time.Time          `json:"timestamp"`
	Seed         int64              `json:"seed"`
	Boundary     string             `json:"boundary"`
	Generator    string             `json:"generator"`
	Ticks        int                `json:"ticks"`
	TicksTaken   int                `json:"ticks_taken"`
	InitialCount int                `json:"initial_count"`
	FinalCount   int                `json:"final_count"`
	Merges       int                `json:"merges"`
	Metrics      map[string]float64 `json:"metrics"`
	Config       *config.Config     `json:"config,omitempty"`
}

func (s *Store) Save(name string, cfg *config.Config, result *dynamo.Result, samples []metrics.Sample) (string, error) {
	now := time.Now()
	runID, runDir, err := s.newRunDir(fmt.Sprintf("%s_%d", name, now.Unix()))
	if err != nil {
		return "", err
	}

	meta := RunMetadata{
		ID:           runID,
		Name:         name,
		Timestamp:    now,
		Seed:         cfg.Seed,
		Boundary:     cfg.Boundary.Mode,
		Generator:    cfg.Generator.Mode,
		Ticks:        cfg.Ticks,
		TicksTaken:   result.TicksTaken,
		InitialCount: result.InitialCount,
		FinalCount:   result.FinalCount,
		Merges:       result.Merges,
		Metrics:      result.Metrics,
		Config:       cfg,
	}

	err = writeFile(filepath.Join(runDir, metadataFile), func(w io.Writer) error {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(meta)
	})
	if err != nil {
		return "", err
	}
	err = writeFile(filepath.Join(runDir, samplesFile), func(w io.Writer) error {
		return WriteSamplesCSV(w, samples)
	})
	if err != nil {
		return "", err
	}
	return runID, nil
}

// writeFile creates path and fills it with write. A failed close is
// reported like a failed write.
func writeFile(path string, write func(io.Writer) error) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer multierr.AppendInvoke(&err, multierr.Close(f))
	return write(f)
}

// newRunDir creates a fresh run directory, suffixing id when a run with the
// same name was saved within the same second.
func (s *Store) newRunDir(id string) (string, string, error) {
	candidate := id
	for i := 1; ; i++ {
		dir := filepath.Join(s.baseDir, candidate)
		err := os.Mkdir(dir, 0755)
		if err == nil {
			return candidate, dir, nil
		}
		if os.IsNotExist(err) {
			if err := s.Init(); err != nil {
				return "", "", err
			}
			continue
		}
		if !os.IsExist(err) {
			return "", "", err
		}
		candidate = fmt.Sprintf("%s_%d", id, i)
	}
}

func WriteSamplesCSV(w io.Writer, samples []metrics.Sample) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(metrics.SampleColumns); err != nil {
		return err
	}
	for _, smp := range samples {
		vals := smp.Row()
		row := make([]string, len(vals))
		for i, v := range vals {
			row[i] = strconv.FormatFloat(v, 'g', -1, 64)
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// List returns every readable run, oldest first.
func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RunMetadata{}, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		meta, err := s.Load(entry.Name())
		if err != nil {
			continue
		}
		runs = append(runs, *meta)
	}

	sort.SliceStable(runs, func(i, j int) bool {
		return runs[i].Timestamp.Before(runs[j].Timestamp)
	})
	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, metadataFile))
	if err != nil {
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, fmt.Errorf("run %s: %w", runID, err)
	}

	return &meta, nil
}

func (s *Store) LoadSamples(runID string) ([]metrics.Sample, error) {
	file, err := os.Open(filepath.Join(s.baseDir, runID, samplesFile))
	if err != nil {
		return nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	r.FieldsPerRecord = -1

	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("run %s: %w", runID, err)
	}

	if len(records) < 2 {
		return []metrics.Sample{}, nil
	}

	samples := make([]metrics.Sample, 0, len(records)-1)
	for i, record := range records[1:] {
		row := make([]float64, 0, len(record))
		for col, field := range record {
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				// i+2: one for the header, one for 1-based lines.
				return nil, fmt.Errorf("run %s: %s line %d column %d: %w", runID, samplesFile, i+2, col+1, err)
			}
			row = append(row, v)
		}
		if len(row) == 0 {
			continue
		}
		samples = append(samples, metrics.SampleFromRow(row))
	}

	return samples, nil
}
