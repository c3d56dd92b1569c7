package ui

import (
	"bytes"
	"math"
	"testing"

	"github.com/pterm/pterm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fr4nk3nst1ner/payscalesleuth/internal/models"
)

func TestFormatRange(t *testing.T) {
	assert.Equal(t, "$23,966 - $60,278", FormatRange(models.Range{23966, 60278}))
	assert.Equal(t, "$9.07", FormatRange(models.Range{9.07}))
	assert.Equal(t, "$0 - Not Available", FormatRange(models.Range{0, math.NaN()}))
	assert.Equal(t, "Not Available", FormatRange(nil))
}

func TestColorizeSalary(t *testing.T) {
	pterm.DisableColor()
	t.Cleanup(pterm.EnableColor)

	assert.Equal(t, "$90,000 - $160,000", ColorizeSalary(models.Range{90000, 160000}))
	assert.Equal(t, "Not Available", ColorizeSalary(models.Range{math.NaN()}))
}

func TestRenderSalaryTable(t *testing.T) {
	pterm.DisableColor()
	t.Cleanup(pterm.EnableColor)

	jobs := []models.JobStub{{
		Name: "Actuary",
		Salary: models.SalaryRecord{
			Annual: models.FieldMap{"salary": {23966, 60278}, "bonus": {1750}},
			Hourly: models.FieldMap{"hourly_rate": {9.07, 18.97}},
			Footnote: models.FootnoteMap{
				"country":               models.TextValue("United States"),
				"updated":               models.DateValue(1451606400),
				"individuals_reporting": models.NumberValue(1043),
			},
		},
	}}

	out, err := RenderSalaryTable(jobs)
	require.NoError(t, err)
	assert.Contains(t, out, "Actuary")
	assert.Contains(t, out, "$23,966 - $60,278")
	assert.Contains(t, out, "hourly_rate")
	assert.Contains(t, out, "$9.07 - $18.97")
	assert.Less(t, bytes.Index([]byte(out), []byte("bonus")), bytes.Index([]byte(out), []byte("salary")))
	assert.Contains(t, out, "footnote")
	assert.Contains(t, out, "United States")
	assert.Contains(t, out, "1 Jan 2016")
	assert.Contains(t, out, "1,043")
}

func TestFormatFootnote(t *testing.T) {
	assert.Equal(t, "12 Feb 2016", FormatFootnote(models.DateValue(1455235200)))
	assert.Equal(t, "180", FormatFootnote(models.NumberValue(180)))
	assert.Equal(t, "Not Available", FormatFootnote(models.NumberValue(math.Inf(1))))
	assert.Equal(t, "USD", FormatFootnote(models.TextValue("USD")))
}

func TestPrintBannerSilence(t *testing.T) {
	var buf bytes.Buffer
	PrintBanner(&buf, true)
	assert.Empty(t, buf.String())

	PrintBanner(&buf, false)
	assert.NotEmpty(t, buf.String())
}

func TestRenderIndexTable(t *testing.T) {
	pterm.DisableColor()
	t.Cleanup(pterm.EnableColor)

	out, err := RenderIndexTable(map[string]models.PageIndexEntry{
		"B": {ID: "B", Self: "http://www.payscale.com/research/US/Job/B"},
		"A": {ID: "A", Self: "http://www.payscale.com/research/US/Job/A"},
	})
	require.NoError(t, err)
	assert.Less(t, bytes.Index([]byte(out), []byte("Job/A")), bytes.Index([]byte(out), []byte("Job/B")))
}

func TestRenderJobList(t *testing.T) {
	pterm.DisableColor()
	t.Cleanup(pterm.EnableColor)

	out, err := RenderJobList([]models.JobStub{
		{Name: "Accountant", DataProfilesNumber: "48,201", Self: "http://www.payscale.com/a"},
	})
	require.NoError(t, err)
	assert.Contains(t, out, "Accountant")
	assert.Contains(t, out, "48,201")
}
