package aggregate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrisbotar/factory-analysis/internal/model"
)

func TestYearAreaMatrix_FullYearAxis(t *testing.T) {
	records := []model.Record{
		rec("2019", model.AreaCyanides, "CYN1", "No", "N/A"),
		rec("2019", model.AreaCyanides, "CYN1", "No", "N/A"),
		rec("2020", model.AreaMM8, "ACH8", "No", "N/A"),
		// 2021 only has Services records: the primary-area cells for 2021
		// must still exist as explicit zeros.
		rec("2021", model.AreaServices, "SVC1", "No", "N/A"),
	}

	m := YearAreaMatrix(records, model.PrimaryAreas)
	require.Equal(t, []string{"2019", "2020", "2021"}, m.Years)

	assert.Equal(t, 2, m.Get("2019", model.AreaCyanides))
	assert.Equal(t, 0, m.Get("2019", model.AreaMM8))
	assert.Equal(t, 1, m.Get("2020", model.AreaMM8))
	for _, area := range model.PrimaryAreas {
		assert.Equal(t, 0, m.Get("2021", area), "2021 %s", area)
	}
}

func TestYearAreaMatrix_IgnoresColumnsOutsideAxis(t *testing.T) {
	records := []model.Record{
		rec("2019", model.AreaServices, "SVC1", "No", "N/A"),
	}
	m := YearAreaMatrix(records, model.PrimaryAreas)
	require.Equal(t, []string{"2019"}, m.Years)
	assert.Equal(t, 0, m.Get("2019", model.AreaServices))
}

func TestPercentages_RowsSumTo100(t *testing.T) {
	records := []model.Record{
		rec("2019", model.AreaCyanides, "CYN1", "No", "N/A"),
		rec("2019", model.AreaCyanides, "CYN1", "No", "N/A"),
		rec("2019", model.AreaMM8, "ACH8", "No", "N/A"),
		rec("2019", model.AreaMethacrylates, "MMA2", "No", "N/A"),
		rec("2020", model.AreaMM8, "ACH8", "No", "N/A"),
	}

	pct := Percentages(YearAreaMatrix(records, model.PrimaryAreas))

	assert.InDelta(t, 50, pct.Get("2019", model.AreaCyanides), 1e-9)
	assert.InDelta(t, 25, pct.Get("2019", model.AreaMM8), 1e-9)
	assert.InDelta(t, 100, pct.Get("2020", model.AreaMM8), 1e-9)

	for _, year := range pct.Years {
		sum := 0.0
		for _, area := range pct.Areas {
			sum += pct.Get(year, area)
		}
		assert.InDelta(t, 100, sum, 1e-9, "year %s", year)
	}
}

func TestPercentages_ServicesNeverInRowTotal(t *testing.T) {
	records := []model.Record{
		rec("2019", model.AreaCyanides, "CYN1", "No", "N/A"),
		rec("2019", model.AreaServices, "SVC1", "No", "N/A"),
	}

	// Even with Services as a matrix column, the denominator is the fixed
	// three-way primary-area sum.
	areas := append(append([]string(nil), model.PrimaryAreas...), model.AreaServices)
	pct := Percentages(YearAreaMatrix(records, areas))

	assert.Equal(t, model.PrimaryAreas, pct.Areas)
	assert.InDelta(t, 100, pct.Get("2019", model.AreaCyanides), 1e-9)
}

func TestPercentages_ZeroTotalYearKeepsZeroRow(t *testing.T) {
	records := []model.Record{
		rec("2019", model.AreaCyanides, "CYN1", "No", "N/A"),
		rec("2020", model.AreaServices, "SVC1", "No", "N/A"),
	}

	pct := Percentages(YearAreaMatrix(records, model.PrimaryAreas))
	require.Contains(t, pct.Years, "2020")
	for _, area := range pct.Areas {
		assert.Zero(t, pct.Get("2020", area), "2020 %s", area)
	}
}
