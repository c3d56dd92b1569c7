package scraper

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fr4nk3nst1ner/payscalesleuth/internal/dom"
	"github.com/fr4nk3nst1ner/payscalesleuth/internal/models"
)

func tableFixture(t *testing.T, rows string) *dom.Document {
	t.Helper()
	doc, err := dom.Parse("<table>" + rows + "</table>")
	require.NoError(t, err)
	return doc
}

var allRows = dom.MustCompile(dom.Tag("tr"))

func TestExtractTable(t *testing.T) {
	doc := tableFixture(t, `
		<tr><th><strong>Salary</strong></th><td>$23,966 - $60,278</td><td>ignored</td></tr>
		<tr><th><strong>Bonus</strong></th><td>$1,750</td></tr>
		<tr><th><strong>Total Pay <span>(?)</span></strong></th><td>$24,416 - $61,905.80</td></tr>`)

	fields, issues := ExtractTable(doc.Select(allRows))
	assert.Empty(t, issues)

	expected := models.FieldMap{
		"salary":    {23966, 60278},
		"bonus":     {1750},
		"total_pay": {24416, 61905.80},
	}
	if diff := cmp.Diff(expected, fields); diff != "" {
		t.Errorf("ExtractTable mismatch (-want +got):\n%s", diff)
	}
}

func TestExtractTableUnparseable(t *testing.T) {
	doc := tableFixture(t, `
		<tr><th><strong>Commission</strong></th><td>N/A</td></tr>
		<tr><th><strong>Profit Sharing</strong></th><td></td></tr>
		<tr><th><strong>Bonus</strong></th><td>$0.00 - -</td></tr>`)

	fields, issues := ExtractTable(doc.Select(allRows))

	expected := models.FieldMap{
		"commission":     {math.NaN()},
		"profit_sharing": {math.NaN()},
		"bonus":          {0, math.NaN()},
	}
	if diff := cmp.Diff(expected, fields, cmpopts.EquateNaNs()); diff != "" {
		t.Errorf("ExtractTable mismatch (-want +got):\n%s", diff)
	}
	assert.False(t, fields["bonus"].Valid())

	require.Len(t, issues, 3)
	for _, is := range issues {
		assert.Equal(t, models.UnparseableNumber, is.Kind)
	}
	assert.Equal(t, "commission", issues[0].Field)
}

func TestExtractTableEmpty(t *testing.T) {
	doc := tableFixture(t, "")
	fields, issues := ExtractTable(doc.Select(allRows))
	assert.NotNil(t, fields)
	assert.Empty(t, fields)
	assert.Empty(t, issues)
}

func TestParseRange(t *testing.T) {
	assert.Equal(t, models.Range{23966, 60278}, ParseRange("$23,966 - $60,278"))
	assert.Equal(t, models.Range{1750}, ParseRange("$1,750"))
	// a hyphen without surrounding spaces is not a range separator
	assert.Equal(t, models.Range{10}, ParseRange("$10-$20"))
	r := ParseRange("")
	require.Len(t, r, 1)
	assert.True(t, math.IsNaN(r[0]))
}
