package ingest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrisbotar/factory-analysis/internal/model"
)

func TestParse_SplitsCompoundCode(t *testing.T) {
	records := Parse([]model.RawRecord{
		{ModNo: "2019-0001", Area: "Cyanides", Plant: "CYN1", Temporary: "No", Status: "Active", Project: "5228285"},
	})
	require.Len(t, records, 1)

	rec := records[0]
	assert.Equal(t, "2019", rec.ModYear)
	assert.Equal(t, "0001", rec.ModID)
	assert.True(t, rec.HasID)
	assert.Equal(t, "2019-0001", rec.ModNo)
	assert.Equal(t, "Cyanides", rec.Area)
	assert.Equal(t, "CYN1", rec.Plant)
}

func TestParse_RoundTrip(t *testing.T) {
	codes := []string{"2003-0001", "2021-9999", "2005-", "1999-0-1", "2010-00-00-00"}
	for _, code := range codes {
		records := Parse([]model.RawRecord{{ModNo: code}})
		rec := records[0]
		require.True(t, rec.HasID, "code %q should split", code)
		assert.Equal(t, code, rec.ModYear+"-"+rec.ModID, "rejoining must reproduce %q", code)
	}
}

func TestParse_NoSeparator(t *testing.T) {
	records := Parse([]model.RawRecord{{ModNo: "20190001"}})
	rec := records[0]
	assert.Equal(t, "20190001", rec.ModYear)
	assert.Empty(t, rec.ModID)
	assert.False(t, rec.HasID)
}

func TestParse_MultipleSeparatorsSplitOnce(t *testing.T) {
	records := Parse([]model.RawRecord{{ModNo: "2019-0001-A"}})
	rec := records[0]
	assert.Equal(t, "2019", rec.ModYear)
	assert.Equal(t, "0001-A", rec.ModID)
	assert.True(t, rec.HasID)
}

func TestParse_EmptyInput(t *testing.T) {
	assert.Empty(t, Parse(nil))
}
