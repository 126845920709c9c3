package aggregate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrisbotar/factory-analysis/internal/model"
)

func rec(year, area, plant, temporary, project string) model.Record {
	return model.Record{
		ModNo:     year + "-0001",
		ModYear:   year,
		HasID:     true,
		Area:      area,
		Plant:     plant,
		Temporary: temporary,
		Status:    "Active",
		Project:   project,
	}
}

func sampleRecords() []model.Record {
	return []model.Record{
		rec("2019", model.AreaCyanides, "CYN1", "No", "5228285"),
		rec("2019", model.AreaCyanides, "HCN6", "No", "5228285"),
		rec("2020", model.AreaMM8, "ACH8", "Yes", model.NA),
		rec("2020", model.AreaMethacrylates, "MMA2", "No", "5111111"),
		rec("2021", model.AreaServices, "SVC1", "No", model.NA),
	}
}

func TestByYear(t *testing.T) {
	tab := ByYear(sampleRecords())
	assert.Equal(t, []string{"2019", "2020", "2021"}, tab.Keys())
	assert.Equal(t, 2, tab.Get("2019"))
	assert.Equal(t, 2, tab.Get("2020"))
	assert.Equal(t, 1, tab.Get("2021"))
}

func TestByArea_SumsToTotal(t *testing.T) {
	records := sampleRecords()
	tab := ByArea(records)
	assert.Equal(t, len(records), tab.Total())
	assert.Equal(t, 2, tab.Get(model.AreaCyanides))
}

func TestByProject_IncludesNABucket(t *testing.T) {
	records := sampleRecords()
	tab := ByProject(records)
	assert.Equal(t, len(records), tab.Total())
	assert.Equal(t, 2, tab.Get(model.NA))
	assert.Equal(t, 2, tab.Get("5228285"))
}

func TestByTemporary(t *testing.T) {
	tab := ByTemporary(sampleRecords())
	assert.Equal(t, 4, tab.Get("No"))
	assert.Equal(t, 1, tab.Get("Yes"))
}

func TestPlantsInArea(t *testing.T) {
	tab := PlantsInArea(sampleRecords(), model.AreaCyanides)
	assert.ElementsMatch(t, []string{"CYN1", "HCN6"}, tab.Keys())
	assert.Equal(t, 2, tab.Total())
}

func TestYearsInArea(t *testing.T) {
	tab := YearsInArea(sampleRecords(), model.AreaMM8)
	assert.Equal(t, []string{"2020"}, tab.Keys())
}

func TestYearsForPlant(t *testing.T) {
	tab := YearsForPlant(sampleRecords(), "HCN6")
	assert.Equal(t, []string{"2019"}, tab.Keys())
	assert.Equal(t, 1, tab.Get("2019"))
}

func TestTopProject(t *testing.T) {
	project, count, ok := TopProject(ByProject(sampleRecords()))
	require.True(t, ok)
	assert.Equal(t, "5228285", project)
	assert.Equal(t, 2, count)
}

func TestTopProject_SkipsNA(t *testing.T) {
	records := []model.Record{
		rec("2019", model.AreaMM8, "ACH8", "No", model.NA),
		rec("2020", model.AreaMM8, "ACH8", "No", model.NA),
		rec("2021", model.AreaMM8, "ACH8", "No", "5222222"),
	}
	project, count, ok := TopProject(ByProject(records))
	require.True(t, ok)
	assert.Equal(t, "5222222", project)
	assert.Equal(t, 1, count)
}

func TestTopProject_TieBreaksToSmallestKey(t *testing.T) {
	records := []model.Record{
		rec("2019", model.AreaMM8, "ACH8", "No", "5222222"),
		rec("2020", model.AreaMM8, "ACH8", "No", "5111111"),
	}
	project, count, ok := TopProject(ByProject(records))
	require.True(t, ok)
	assert.Equal(t, "5111111", project)
	assert.Equal(t, 1, count)
}

func TestTopProject_NoProjects(t *testing.T) {
	records := []model.Record{rec("2019", model.AreaMM8, "ACH8", "No", model.NA)}
	_, _, ok := TopProject(ByProject(records))
	assert.False(t, ok)
}
