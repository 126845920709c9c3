package aggregate

import "github.com/andrisbotar/factory-analysis/internal/model"

// CountBy builds a table counting records by the given key function.
func CountBy(records []model.Record, key func(model.Record) string) *Table {
	t := NewTable()
	for _, rec := range records {
		t.Add(key(rec))
	}
	return t
}

// ByYear counts modifications per year, chronologically ordered.
func ByYear(records []model.Record) *Table {
	return CountBy(records, func(r model.Record) string { return r.ModYear }).SortKeys()
}

// ByArea counts modifications per area, busiest first.
func ByArea(records []model.Record) *Table {
	return CountBy(records, func(r model.Record) string { return r.Area }).SortByCount()
}

// ByProject counts modifications per project, busiest first. The N/A
// sentinel forms its own bucket.
func ByProject(records []model.Record) *Table {
	return CountBy(records, func(r model.Record) string { return r.Project }).SortByCount()
}

// ByTemporary counts modifications by the temporary-mod flag.
func ByTemporary(records []model.Record) *Table {
	return CountBy(records, func(r model.Record) string { return r.Temporary }).SortByCount()
}

// FilterArea returns the records belonging to one area.
func FilterArea(records []model.Record, area string) []model.Record {
	var out []model.Record
	for _, rec := range records {
		if rec.Area == area {
			out = append(out, rec)
		}
	}
	return out
}

// FilterPlant returns the records belonging to one plant.
func FilterPlant(records []model.Record, plant string) []model.Record {
	var out []model.Record
	for _, rec := range records {
		if rec.Plant == plant {
			out = append(out, rec)
		}
	}
	return out
}

// PlantsInArea counts modifications per plant within one area.
func PlantsInArea(records []model.Record, area string) *Table {
	return CountBy(FilterArea(records, area), func(r model.Record) string { return r.Plant }).SortByCount()
}

// YearsInArea counts modifications per year within one area.
func YearsInArea(records []model.Record, area string) *Table {
	return CountBy(FilterArea(records, area), func(r model.Record) string { return r.ModYear }).SortKeys()
}

// YearsForPlant counts modifications per year for one plant.
func YearsForPlant(records []model.Record, plant string) *Table {
	return CountBy(FilterPlant(records, plant), func(r model.Record) string { return r.ModYear }).SortKeys()
}

// TopProject returns the project with the most modifications and its count.
// Ties break to the lexicographically smallest project key. The N/A bucket
// is never selected: a sentinel is not a project. Returns ok=false when the
// table holds no real project.
func TopProject(t *Table) (project string, count int, ok bool) {
	for _, key := range t.Keys() {
		if key == model.NA {
			continue
		}
		n := t.Get(key)
		switch {
		case !ok, n > count, n == count && key < project:
			project, count, ok = key, n, true
		}
	}
	return project, count, ok
}
