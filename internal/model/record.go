// Package model defines the record types that flow through the pipeline.
package model

// Canonical area names. The site is grouped into three primary production
// areas; everything else (third-party equipment, utilities) is collapsed
// under Services during normalization.
const (
	AreaCyanides      = "Cyanides"
	AreaMethacrylates = "Methacrylates"
	AreaMM8           = "MM8"
	AreaServices      = "Services"
)

// PrimaryAreas are the production areas whose combined total is the
// denominator for percentage-normalized yearly breakdowns. Services is
// deliberately excluded.
var PrimaryAreas = []string{AreaCyanides, AreaMethacrylates, AreaMM8}

// NA is the sentinel for "no associated project". Several independent
// normalization rules all map to it.
const NA = "N/A"

// StatusCancelled marks modifications abandoned before execution. Cancelled
// records never reach aggregation.
const StatusCancelled = "Cancelled"

// RawRecord is one row of the input register, untouched apart from the
// "Project No" -> Project column rename done at ingestion.
type RawRecord struct {
	ModNo     string
	Area      string
	Plant     string
	Temporary string
	Status    string
	Project   string
}

// Record is a modification after the compound code split. Genuine codes are
// "YYYY-nnnn"; ModYear and ModID rejoined with "-" reconstruct ModNo exactly.
// A code with no separator leaves HasID false and the whole raw value in
// ModYear. ModNo is retained because the self-referential project filter
// compares against it after the split.
type Record struct {
	ModNo     string
	ModYear   string
	ModID     string
	HasID     bool
	Area      string
	Plant     string
	Temporary string
	Status    string
	Project   string
}
