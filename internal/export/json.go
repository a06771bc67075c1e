package export

import (
	"encoding/json"
	"os"

	"github.com/san-kum/bishop/internal/bishop"
	"github.com/san-kum/bishop/internal/storage"
)

type ExportData struct {
	storage.Record
	Start [2]int   `json:"start"`
	End   [2]int   `json:"end"`
	Cells [][]int  `json:"cells"`
	Lines []string `json:"lines"`
}

func NewExportData(rec storage.Record, res *bishop.Result, opts bishop.Options) (*ExportData, error) {
	if res == nil {
		return nil, ErrNoResult
	}
	seq, err := res.Lines(opts)
	if err != nil {
		return nil, err
	}

	data := &ExportData{
		Record: rec,
		Cells:  make([][]int, res.Height()),
	}
	data.Start[0], data.Start[1] = res.Start()
	data.End[0], data.End[1] = res.End()

	for y := range data.Cells {
		row := make([]int, res.Width())
		for x := range row {
			row[x] = res.At(x, y)
		}
		data.Cells[y] = row
	}
	for line := range seq {
		data.Lines = append(data.Lines, line)
	}
	return data, nil
}

func ExportJSON(path string, rec storage.Record, res *bishop.Result, opts bishop.Options) error {
	data, err := NewExportData(rec, res, opts)
	if err != nil {
		return err
	}

	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}
