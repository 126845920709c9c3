package aggregate

import (
	"sort"

	"github.com/andrisbotar/factory-analysis/internal/model"
)

// Matrix is a year-by-area count grid. The year axis is the union of every
// year observed in the record set: a year with no modifications in some
// area carries an explicit zero cell rather than a missing key.
type Matrix struct {
	Years []string
	Areas []string
	Cells map[string]map[string]int
}

// Get returns the cell for (year, area), zero when absent.
func (m *Matrix) Get(year, area string) int {
	return m.Cells[year][area]
}

// YearAreaMatrix joins the per-area yearly counts over a common,
// fully-populated year axis spanning all records, cancelled-and-filtered
// set only. Column order follows the areas argument.
func YearAreaMatrix(records []model.Record, areas []string) *Matrix {
	m := &Matrix{
		Areas: append([]string(nil), areas...),
		Cells: make(map[string]map[string]int),
	}

	seen := make(map[string]bool)
	for _, rec := range records {
		if !seen[rec.ModYear] {
			seen[rec.ModYear] = true
			m.Years = append(m.Years, rec.ModYear)
		}
	}
	sort.Strings(m.Years)

	for _, year := range m.Years {
		row := make(map[string]int, len(m.Areas))
		for _, area := range m.Areas {
			row[area] = 0
		}
		m.Cells[year] = row
	}
	for _, rec := range records {
		if _, ok := m.Cells[rec.ModYear][rec.Area]; ok {
			m.Cells[rec.ModYear][rec.Area]++
		}
	}
	return m
}

// PercentMatrix is the percentage-normalized counterpart of Matrix.
type PercentMatrix struct {
	Years []string
	Areas []string
	Cells map[string]map[string]float64
}

// Get returns the cell for (year, area), zero when absent.
func (m *PercentMatrix) Get(year, area string) float64 {
	return m.Cells[year][area]
}

// Percentages scales each row of the matrix so the three primary areas sum
// to 100. The row total is a fixed three-way sum over the primary areas;
// Services and any other column never contribute to it, and the output
// carries only the primary-area columns. A year whose primary-area total is
// zero keeps its row with every cell at zero: the ratio is undefined there
// and zero is the documented sentinel.
func Percentages(m *Matrix) *PercentMatrix {
	out := &PercentMatrix{
		Years: append([]string(nil), m.Years...),
		Areas: append([]string(nil), model.PrimaryAreas...),
		Cells: make(map[string]map[string]float64, len(m.Years)),
	}
	for _, year := range m.Years {
		total := 0
		for _, area := range model.PrimaryAreas {
			total += m.Get(year, area)
		}
		row := make(map[string]float64, len(out.Areas))
		for _, area := range out.Areas {
			if total == 0 {
				row[area] = 0
				continue
			}
			row[area] = float64(m.Get(year, area)) / float64(total) * 100
		}
		out.Cells[year] = row
	}
	return out
}
