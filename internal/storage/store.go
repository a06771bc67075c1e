package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"

	"github.com/san-kum/bishop/internal/bishop"
)

const (
	metaFile  = "metadata.json"
	fieldFile = "field.csv"
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

// Record describes a stored walk. Width and Height are filled from the
// result on Save.
type Record struct {
	ID        string    `json:"id"`
	Timestamp time.Time `json:"timestamp"`
	Width     int       `json:"width"`
	Height    int       `json:"height"`
	Chars     string    `json:"chars"`
	Top       string    `json:"top"`
	Bottom    string    `json:"bottom"`
	Input     string    `json:"input"`
	Hash      string    `json:"hash,omitempty"`
	Source    string    `json:"source"`
	Bytes     int64     `json:"bytes"`
}

// Save writes rec and the field of res into a new run directory and
// returns its id.
func (s *Store) Save(rec Record, res *bishop.Result) (string, error) {
	now := time.Now()
	rec.ID = fmt.Sprintf("art_%d", now.UnixNano())
	rec.Timestamp = now
	rec.Width = res.Width()
	rec.Height = res.Height()

	runDir := filepath.Join(s.baseDir, rec.ID)
	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	metaOut, err := os.Create(filepath.Join(runDir, metaFile))
	if err != nil {
		return "", err
	}
	defer metaOut.Close()

	enc := json.NewEncoder(metaOut)
	enc.SetIndent("", "  ")
	if err := enc.Encode(rec); err != nil {
		return "", err
	}

	csvOut, err := os.Create(filepath.Join(runDir, fieldFile))
	if err != nil {
		return "", err
	}
	defer csvOut.Close()

	w := csv.NewWriter(csvOut)
	row := make([]string, res.Width())
	for y := 0; y < res.Height(); y++ {
		for x := range row {
			row[x] = strconv.Itoa(res.At(x, y))
		}
		if err := w.Write(row); err != nil {
			return "", err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", err
	}

	return rec.ID, nil
}

// List returns all readable records, oldest first.
func (s *Store) List() ([]Record, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []Record{}, nil
		}
		return nil, err
	}

	runs := make([]Record, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		rec, err := s.Load(entry.Name())
		if err != nil {
			continue
		}
		runs = append(runs, *rec)
	}

	sort.Slice(runs, func(i, j int) bool {
		return runs[i].Timestamp.Before(runs[j].Timestamp)
	})
	return runs, nil
}

func (s *Store) Load(id string) (*Record, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, id, metaFile))
	if err != nil {
		return nil, err
	}

	var rec Record
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, err
	}
	return &rec, nil
}

// LoadResult rebuilds the stored field so it can be drawn again.
func (s *Store) LoadResult(id string) (*Record, *bishop.Result, error) {
	rec, err := s.Load(id)
	if err != nil {
		return nil, nil, err
	}

	file, err := os.Open(filepath.Join(s.baseDir, id, fieldFile))
	if err != nil {
		return nil, nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	r.FieldsPerRecord = rec.Width

	records, err := r.ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("storage: %s: %w", id, err)
	}

	cells := make([]int, 0, rec.Width*rec.Height)
	for _, record := range records {
		for _, field := range record {
			v, err := strconv.Atoi(field)
			if err != nil {
				return nil, nil, fmt.Errorf("storage: %s: %w", id, err)
			}
			cells = append(cells, v)
		}
	}

	res, err := bishop.ResultFromCells(rec.Width, rec.Height, cells)
	if err != nil {
		return nil, nil, fmt.Errorf("storage: %s: %w", id, err)
	}
	return rec, res, nil
}

// Options returns the stored palette and captions.
func (r *Record) Options() (bishop.Options, error) {
	return bishop.NewOptions(r.Chars, r.Top, r.Bottom)
}
