// Package storage persists equilibrium runs as a metadata.json plus a
// fractions.csv per run directory.
package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/san-kum/ioneq/internal/ioneq"
	"github.com/san-kum/ioneq/internal/rates"
)

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
	ID           string    `json:"id"`
	Element      string    `json:"element"`
	AtomicNumber int       `json:"atomic_number"`
	Stages       int       `json:"stages"`
	Timestamp    time.Time `json:"timestamp"`
	TMin         float64   `json:"tmin"`
	TMax         float64   `json:"tmax"`
	Points       int       `json:"points"`
	Dataset      string    `json:"dataset"`
}

// Save writes one equilibrium run and returns its run ID.
func (s *Store) Save(symbol string, z int, dataset string, frac *ioneq.FractionTable) (string, error) {
	runID := fmt.Sprintf("%s_%d", strings.ToLower(symbol), time.Now().Unix())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	grid := frac.Temperature
	meta := RunMetadata{
		ID:           runID,
		Element:      symbol,
		AtomicNumber: z,
		Stages:       frac.Stages(),
		Timestamp:    time.Now(),
		TMin:         grid[0],
		TMax:         grid[len(grid)-1],
		Points:       len(grid),
		Dataset:      dataset,
	}

	metaPath := filepath.Join(runDir, "metadata.json")
	metaFile, err := os.Create(metaPath)
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	csvPath := filepath.Join(runDir, "fractions.csv")
	csvFile, err := os.Create(csvPath)
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	defer w.Flush()

	header := []string{"temperature_K"}
	for i := 0; i < frac.Stages(); i++ {
		header = append(header, fmt.Sprintf("%s %d", symbol, i+1))
	}
	if err := w.Write(header); err != nil {
		return "", err
	}

	for t, row := range frac.Fractions {
		record := []string{strconv.FormatFloat(grid[t], 'e', 6, 64)}
		for _, v := range row {
			record = append(record, strconv.FormatFloat(v, 'e', 8, 64))
		}
		if err := w.Write(record); err != nil {
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

		metaPath := filepath.Join(s.baseDir, entry.Name(), "metadata.json")
		data, err := os.ReadFile(metaPath)
		if err != nil {
			continue
		}

		var meta RunMetadata
		if err := json.Unmarshal(data, &meta); err != nil {
			continue
		}

		runs = append(runs, meta)
	}

	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	metaPath := filepath.Join(s.baseDir, runID, "metadata.json")
	data, err := os.ReadFile(metaPath)
	if err != nil {
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}

	return &meta, nil
}

// LoadFractions reads a run's fraction table back from its CSV.
func (s *Store) LoadFractions(runID string) (*ioneq.FractionTable, error) {
	csvPath := filepath.Join(s.baseDir, runID, "fractions.csv")
	file, err := os.Open(csvPath)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) < 2 {
		return &ioneq.FractionTable{}, nil
	}

	frac := &ioneq.FractionTable{
		Temperature: make(rates.TemperatureGrid, 0, len(records)-1),
		Fractions:   make([][]float64, 0, len(records)-1),
	}
	for _, record := range records[1:] {
		if len(record) < 2 {
			continue
		}
		temp, err := strconv.ParseFloat(record[0], 64)
		if err != nil {
			continue
		}
		row := make([]float64, 0, len(record)-1)
		for _, field := range record[1:] {
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, fmt.Errorf("run %s: bad fraction %q: %w", runID, field, err)
			}
			row = append(row, v)
		}
		frac.Temperature = append(frac.Temperature, temp)
		frac.Fractions = append(frac.Fractions, row)
	}

	return frac, nil
}
