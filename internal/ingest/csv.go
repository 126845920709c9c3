// Package ingest reads the modification register from disk and splits each
// compound modification code into its year and identifier parts.
package ingest

import (
	"encoding/csv"
	"os"
	"strings"

	"github.com/rotisserie/eris"

	"github.com/andrisbotar/factory-analysis/internal/model"
)

// Column names as exported by the register. The project column is exported
// as "Project No" and renamed to Project on ingestion.
const (
	colModNo     = "Mod_No"
	colArea      = "Area"
	colPlant     = "Plant"
	colTemporary = "Temporary Mod"
	colStatus    = "Status"
	colProjectNo = "Project No"
)

var requiredCols = []string{colModNo, colArea, colPlant, colTemporary, colStatus, colProjectNo}

// Read loads the register in the given format ("csv" or "xlsx"; empty
// defaults to csv).
func Read(path, format string) ([]model.RawRecord, error) {
	switch format {
	case "", "csv":
		return ReadCSV(path)
	case "xlsx":
		return ReadXLSX(path)
	default:
		return nil, eris.Errorf("ingest: unsupported input format %q", format)
	}
}

// ReadCSV reads the register from a CSV file. A missing file and an
// unreadable file are reported as distinct failures; both abort the run.
func ReadCSV(path string) ([]model.RawRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, eris.Wrapf(err, "ingest: open %s", path)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.LazyQuotes = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, eris.Wrapf(err, "ingest: read %s", path)
	}

	return fromRows(rows)
}

// fromRows converts a header row plus data rows into raw records. The
// project field keeps its surrounding whitespace: trimming it is a
// normalization rule, not an ingestion concern.
func fromRows(rows [][]string) ([]model.RawRecord, error) {
	if len(rows) < 2 {
		return nil, eris.New("ingest: register has no data rows")
	}

	header := rows[0]
	colIdx := make(map[string]int, len(header))
	for i, col := range header {
		colIdx[strings.TrimSpace(col)] = i
	}
	for _, col := range requiredCols {
		if _, ok := colIdx[col]; !ok {
			return nil, eris.Errorf("ingest: missing required column %q", col)
		}
	}

	raws := make([]model.RawRecord, 0, len(rows)-1)
	for _, row := range rows[1:] {
		raws = append(raws, model.RawRecord{
			ModNo:     getCol(row, colIdx, colModNo),
			Area:      getCol(row, colIdx, colArea),
			Plant:     getCol(row, colIdx, colPlant),
			Temporary: getCol(row, colIdx, colTemporary),
			Status:    getCol(row, colIdx, colStatus),
			Project:   getColRaw(row, colIdx, colProjectNo),
		})
	}
	return raws, nil
}

// getCol safely retrieves a trimmed column value from a row.
func getCol(row []string, colIdx map[string]int, col string) string {
	return strings.TrimSpace(getColRaw(row, colIdx, col))
}

// getColRaw retrieves a column value without trimming.
func getColRaw(row []string, colIdx map[string]int, col string) string {
	idx, ok := colIdx[col]
	if !ok || idx >= len(row) {
		return ""
	}
	return row[idx]
}
