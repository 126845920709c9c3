package ingest

import (
	"strings"

	"github.com/andrisbotar/factory-analysis/internal/model"
)

// Parse splits each compound modification code into its year and in-year
// identifier on the first "-" only. A code with no separator keeps the whole
// raw value as the year and leaves the identifier absent; the batch never
// fails on a malformed code, the degraded value flows downstream instead.
func Parse(raws []model.RawRecord) []model.Record {
	records := make([]model.Record, 0, len(raws))
	for _, raw := range raws {
		rec := model.Record{
			ModNo:     raw.ModNo,
			Area:      raw.Area,
			Plant:     raw.Plant,
			Temporary: raw.Temporary,
			Status:    raw.Status,
			Project:   raw.Project,
		}
		year, id, found := strings.Cut(raw.ModNo, "-")
		rec.ModYear = year
		if found {
			rec.ModID = id
			rec.HasID = true
		}
		records = append(records, rec)
	}
	return records
}
