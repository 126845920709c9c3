// Package render writes report tables as file artifacts for the downstream
// charting collaborator. It only emits the tables a chart would be drawn
// from; the visual encoding itself lives outside this program.
package render

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strconv"

	"github.com/rotisserie/eris"
	"github.com/tealeg/xlsx/v2"
	"go.uber.org/zap"

	"github.com/andrisbotar/factory-analysis/internal/aggregate"
	"github.com/andrisbotar/factory-analysis/internal/report"
)

// Write emits one CSV per table plus a single XLSX workbook holding every
// view, into dir. The directory is created if missing.
func Write(rep *report.Report, dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return eris.Wrapf(err, "render: create %s", dir)
	}

	tables := namedTables(rep)
	for _, nt := range tables {
		if err := writeTableCSV(filepath.Join(dir, nt.name+".csv"), nt.header, nt.table); err != nil {
			return err
		}
	}
	if err := writeMatrixCSV(filepath.Join(dir, "mods_per_area_per_year.csv"), rep.YearMatrix); err != nil {
		return err
	}
	if err := writePercentCSV(filepath.Join(dir, "mods_per_area_per_year_pct.csv"), rep.YearPercent); err != nil {
		return err
	}
	if err := writeWorkbook(filepath.Join(dir, "report.xlsx"), rep, tables); err != nil {
		return err
	}

	zap.L().Info("render: artifacts written",
		zap.String("dir", dir),
		zap.Int("tables", len(tables)+2),
	)
	return nil
}

type namedTable struct {
	name   string
	header []string
	table  *aggregate.Table
}

func namedTables(rep *report.Report) []namedTable {
	tables := []namedTable{
		{"mods_per_year", []string{"Year", "Modifications"}, rep.ByYear},
		{"mods_per_area", []string{"Area", "Modifications"}, rep.ByArea},
		{"mods_per_temporary", []string{"Temporary", "Modifications"}, rep.ByTemporary},
		{"mods_per_project", []string{"Project", "Modifications"}, rep.ProjectDisplay},
	}
	for _, area := range rep.BreakdownAreas {
		tables = append(tables,
			namedTable{"plants_" + area, []string{"Plant", "Modifications"}, rep.PlantsByArea[area]},
			namedTable{"years_" + area, []string{"Year", "Modifications"}, rep.YearsByArea[area]},
		)
	}
	if rep.PlantDrilldown != nil {
		tables = append(tables, namedTable{
			"years_plant_" + rep.DrilldownPlant,
			[]string{"Year", "Modifications"},
			rep.PlantDrilldown,
		})
	}
	return tables
}

func writeTableCSV(path string, header []string, t *aggregate.Table) error {
	f, err := os.Create(path)
	if err != nil {
		return eris.Wrapf(err, "render: create %s", path)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(header); err != nil {
		return eris.Wrapf(err, "render: write %s", path)
	}
	for _, key := range t.Keys() {
		if err := w.Write([]string{key, strconv.Itoa(t.Get(key))}); err != nil {
			return eris.Wrapf(err, "render: write %s", path)
		}
	}
	w.Flush()
	return eris.Wrapf(w.Error(), "render: flush %s", path)
}

func writeMatrixCSV(path string, m *aggregate.Matrix) error {
	f, err := os.Create(path)
	if err != nil {
		return eris.Wrapf(err, "render: create %s", path)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(append([]string{"Year"}, m.Areas...)); err != nil {
		return eris.Wrapf(err, "render: write %s", path)
	}
	for _, year := range m.Years {
		row := []string{year}
		for _, area := range m.Areas {
			row = append(row, strconv.Itoa(m.Get(year, area)))
		}
		if err := w.Write(row); err != nil {
			return eris.Wrapf(err, "render: write %s", path)
		}
	}
	w.Flush()
	return eris.Wrapf(w.Error(), "render: flush %s", path)
}

func writePercentCSV(path string, m *aggregate.PercentMatrix) error {
	f, err := os.Create(path)
	if err != nil {
		return eris.Wrapf(err, "render: create %s", path)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(append([]string{"Year"}, m.Areas...)); err != nil {
		return eris.Wrapf(err, "render: write %s", path)
	}
	for _, year := range m.Years {
		row := []string{year}
		for _, area := range m.Areas {
			row = append(row, strconv.FormatFloat(m.Get(year, area), 'f', 2, 64))
		}
		if err := w.Write(row); err != nil {
			return eris.Wrapf(err, "render: write %s", path)
		}
	}
	w.Flush()
	return eris.Wrapf(w.Error(), "render: flush %s", path)
}

func writeWorkbook(path string, rep *report.Report, tables []namedTable) error {
	f := xlsx.NewFile()

	for _, nt := range tables {
		sheet, err := f.AddSheet(sheetName(nt.name))
		if err != nil {
			return eris.Wrapf(err, "render: add sheet %s", nt.name)
		}
		header := sheet.AddRow()
		for _, h := range nt.header {
			header.AddCell().SetString(h)
		}
		for _, key := range nt.table.Keys() {
			row := sheet.AddRow()
			row.AddCell().SetString(key)
			row.AddCell().SetInt(nt.table.Get(key))
		}
	}

	sheet, err := f.AddSheet("area_by_year")
	if err != nil {
		return eris.Wrap(err, "render: add sheet area_by_year")
	}
	header := sheet.AddRow()
	header.AddCell().SetString("Year")
	for _, area := range rep.YearMatrix.Areas {
		header.AddCell().SetString(area)
	}
	for _, year := range rep.YearMatrix.Years {
		row := sheet.AddRow()
		row.AddCell().SetString(year)
		for _, area := range rep.YearMatrix.Areas {
			row.AddCell().SetInt(rep.YearMatrix.Get(year, area))
		}
	}

	if err := f.Save(path); err != nil {
		return eris.Wrapf(err, "render: save %s", path)
	}
	return nil
}

// sheetName keeps sheet names inside the 31-character XLSX limit.
func sheetName(name string) string {
	if len(name) > 31 {
		return name[:31]
	}
	return name
}
