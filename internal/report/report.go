// Package report assembles every count view and the scalar text summaries
// from a finalized normalized record set.
package report

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/andrisbotar/factory-analysis/internal/aggregate"
	"github.com/andrisbotar/factory-analysis/internal/model"
)

// Options is the configuration surface the pipeline honors. These arrive
// from config or flags, never from constants baked into the logic.
type Options struct {
	// IncludeServices controls whether the Services area appears in the
	// per-area yearly and plant breakdown views.
	IncludeServices bool
	// ProjectThreshold is the minimum count for a project to appear in the
	// display table. Aggregate totals always use the unfiltered table.
	ProjectThreshold int
	// DrilldownPlant, when set, adds a per-year view for that one plant.
	DrilldownPlant string
}

// Report holds every aggregate view of one pipeline run. Building it never
// mutates the record set, so it can be rebuilt any number of times from the
// same frozen records.
type Report struct {
	TotalRecords int

	ByYear      *aggregate.Table
	ByArea      *aggregate.Table
	ByTemporary *aggregate.Table

	// ByProject is the full per-project table including the N/A bucket;
	// ProjectDisplay is its thresholded display variant.
	ByProject      *aggregate.Table
	ProjectDisplay *aggregate.Table

	// BreakdownAreas lists the areas covered by PlantsByArea and
	// YearsByArea, busiest first, Services gated by Options.
	BreakdownAreas []string
	PlantsByArea   map[string]*aggregate.Table
	YearsByArea    map[string]*aggregate.Table

	YearMatrix  *aggregate.Matrix
	YearPercent *aggregate.PercentMatrix

	DrilldownPlant string
	PlantDrilldown *aggregate.Table

	TopProject      string
	TopProjectCount int
	HasTopProject   bool
}

// Build assembles a report from the normalized, filtered record set.
func Build(records []model.Record, opts Options) *Report {
	rep := &Report{
		TotalRecords: len(records),
		ByYear:       aggregate.ByYear(records),
		ByArea:       aggregate.ByArea(records),
		ByTemporary:  aggregate.ByTemporary(records),
		ByProject:    aggregate.ByProject(records),
		PlantsByArea: make(map[string]*aggregate.Table),
		YearsByArea:  make(map[string]*aggregate.Table),
	}
	rep.ProjectDisplay = rep.ByProject.Filter(opts.ProjectThreshold)

	for _, area := range rep.ByArea.Keys() {
		if area == model.AreaServices && !opts.IncludeServices {
			continue
		}
		rep.BreakdownAreas = append(rep.BreakdownAreas, area)
		rep.PlantsByArea[area] = aggregate.PlantsInArea(records, area)
		rep.YearsByArea[area] = aggregate.YearsInArea(records, area)
	}

	rep.YearMatrix = aggregate.YearAreaMatrix(records, model.PrimaryAreas)
	rep.YearPercent = aggregate.Percentages(rep.YearMatrix)

	if opts.DrilldownPlant != "" {
		rep.DrilldownPlant = opts.DrilldownPlant
		rep.PlantDrilldown = aggregate.YearsForPlant(records, opts.DrilldownPlant)
	}

	rep.TopProject, rep.TopProjectCount, rep.HasTopProject = aggregate.TopProject(rep.ByProject)
	return rep
}

// Summary returns the scalar text lines: how many modifications relate to
// how many projects, and the largest project.
func (r *Report) Summary() []string {
	p := message.NewPrinter(language.English)

	withProject := r.TotalRecords - r.ByProject.Get(model.NA)
	projects := r.ByProject.Len()
	if r.ByProject.Has(model.NA) {
		projects--
	}

	lines := []string{
		p.Sprintf("There were a total of %d modifications related to %d projects out of the %d total.",
			withProject, projects, r.TotalRecords),
	}
	if r.HasTopProject {
		lines = append(lines,
			p.Sprintf("The %s project included %d modifications, the most out of all the projects!",
				r.TopProject, r.TopProjectCount))
	}
	return lines
}
