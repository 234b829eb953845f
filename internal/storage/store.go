package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/san-kum/pdegrid/internal/pricer"
)

// Store persists pricing runs under a base directory, one directory per run
// holding metadata.json and the value surface as surface.csv.
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
	ID            string    `json:"id"`
	Timestamp     time.Time `json:"timestamp"`
	Strike        float64   `json:"strike"`
	Expiry        float64   `json:"expiry"`
	Rate          float64   `json:"rate"`
	Volatility    float64   `json:"volatility"`
	Dividend      float64   `json:"dividend"`
	Steps         int       `json:"steps"`
	Exercises     int       `json:"exercises"`
	Refine        int       `json:"refine"`
	Scheme        string    `json:"scheme"`
	PriceAtStrike float64   `json:"price_at_strike"`

	Metrics map[string]float64 `json:"metrics"`
}

func (s *Store) Save(sc pricer.Scenario, run *pricer.Run) (string, error) {
	runID := fmt.Sprintf("bermudan_%d", time.Now().Unix())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	scheme := sc.Scheme
	if scheme == "" {
		scheme = "bdf2"
	}
	meta := RunMetadata{
		ID:            runID,
		Timestamp:     time.Now(),
		Strike:        sc.Strike,
		Expiry:        sc.Expiry,
		Rate:          sc.Rate,
		Volatility:    sc.Volatility,
		Dividend:      sc.Dividend,
		Steps:         sc.Steps,
		Exercises:     sc.Exercises,
		Refine:        sc.Refine,
		Scheme:        scheme,
		PriceAtStrike: run.At(sc.Strike),
		Metrics:       run.Result.Metrics,
	}

	metaFile, err := os.Create(filepath.Join(runDir, "metadata.json"))
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	csvFile, err := os.Create(filepath.Join(runDir, "surface.csv"))
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	defer w.Flush()

	if err := w.Write([]string{"spot", "value"}); err != nil {
		return "", err
	}
	axis := run.Grid.Axis(0)
	for i, v := range run.Values {
		row := []string{
			strconv.FormatFloat(axis.At(i), 'f', 6, 64),
			strconv.FormatFloat(v, 'f', 6, 64),
		}
		if err := w.Write(row); err != nil {
			return "", err
		}
	}

	return runID, nil
}

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
	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, "metadata.json"))
	if err != nil {
		return nil, err
	}
	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}
	return &meta, nil
}

// LoadSurface reads back the persisted value surface as parallel spot/value
// slices.
func (s *Store) LoadSurface(runID string) ([]float64, []float64, error) {
	file, err := os.Open(filepath.Join(s.baseDir, runID, "surface.csv"))
	if err != nil {
		return nil, nil, err
	}
	defer file.Close()

	records, err := csv.NewReader(file).ReadAll()
	if err != nil {
		return nil, nil, err
	}
	if len(records) < 2 {
		return []float64{}, []float64{}, nil
	}

	spots := make([]float64, 0, len(records)-1)
	values := make([]float64, 0, len(records)-1)
	for _, rec := range records[1:] {
		if len(rec) < 2 {
			continue
		}
		spot, err := strconv.ParseFloat(rec[0], 64)
		if err != nil {
			return nil, nil, err
		}
		val, err := strconv.ParseFloat(rec[1], 64)
		if err != nil {
			return nil, nil, err
		}
		spots = append(spots, spot)
		values = append(values, val)
	}
	return spots, values, nil
}
