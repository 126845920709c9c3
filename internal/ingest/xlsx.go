package ingest

import (
	"github.com/rotisserie/eris"
	"github.com/tealeg/xlsx/v2"

	"github.com/andrisbotar/factory-analysis/internal/model"
)

// ReadXLSX reads the register from the first sheet of an XLSX workbook.
// The sheet must carry the same header row as the CSV export.
func ReadXLSX(path string) ([]model.RawRecord, error) {
	f, err := xlsx.OpenFile(path)
	if err != nil {
		return nil, eris.Wrapf(err, "ingest: open %s", path)
	}
	if len(f.Sheets) == 0 {
		return nil, eris.Errorf("ingest: workbook %s has no sheets", path)
	}

	sheet := f.Sheets[0]
	rows := make([][]string, 0, len(sheet.Rows))
	for _, row := range sheet.Rows {
		cells := make([]string, len(row.Cells))
		for i, cell := range row.Cells {
			cells[i] = cell.String()
		}
		rows = append(rows, cells)
	}

	return fromRows(rows)
}
