package normalize

import (
	"sort"

	"go.uber.org/zap"

	"github.com/andrisbotar/factory-analysis/internal/model"
)

// PlantAreaFinding records a plant observed under more than one area.
type PlantAreaFinding struct {
	Plant string
	Areas []string
}

// ValidatePlantAreas checks the single-area-per-plant assumption over a
// normalized record set. Violations are data-quality warnings surfaced to
// the caller and the log, never a pipeline failure, and nothing is
// corrected silently.
func ValidatePlantAreas(records []model.Record) []PlantAreaFinding {
	areasByPlant := make(map[string]map[string]bool)
	var order []string
	for _, rec := range records {
		areas, ok := areasByPlant[rec.Plant]
		if !ok {
			areas = make(map[string]bool)
			areasByPlant[rec.Plant] = areas
			order = append(order, rec.Plant)
		}
		areas[rec.Area] = true
	}

	var findings []PlantAreaFinding
	for _, plant := range order {
		if len(areasByPlant[plant]) < 2 {
			continue
		}
		areas := make([]string, 0, len(areasByPlant[plant]))
		for area := range areasByPlant[plant] {
			areas = append(areas, area)
		}
		sort.Strings(areas)
		findings = append(findings, PlantAreaFinding{Plant: plant, Areas: areas})
		zap.L().Warn("normalize: plant observed under multiple areas",
			zap.String("plant", plant),
			zap.Strings("areas", areas),
		)
	}
	return findings
}
