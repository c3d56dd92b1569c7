package scraper

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/fr4nk3nst1ner/payscalesleuth/internal/dom"
	"github.com/fr4nk3nst1ner/payscalesleuth/internal/models"
	"github.com/fr4nk3nst1ner/payscalesleuth/internal/utils"
)

// rangeSeparator splits "$23,966 - $60,278" into its bounds
const rangeSeparator = " - "

// ExtractTable turns salary table rows into a field map. Each row carries its
// label in th > strong (child elements such as a help icon are ignored) and
// its figure in the first td. Unparseable bounds stay NaN and are reported.
//
//	| Salary        | $23,966 - $60,278 |   =>  salary:    [23966, 60278]
//	| Bonus         | $1,750            |   =>  bonus:     [1750]
//	| Total Pay (?) | $24,416 - $61,905 |   =>  total_pay: [24416, 61905]
func ExtractTable(rows *goquery.Selection) (models.FieldMap, []models.Issue) {
	fields := make(models.FieldMap)
	var issues []models.Issue

	rows.Each(func(i int, tr *goquery.Selection) {
		field := utils.NormalizeFieldName(dom.OwnText(tr.Find("th strong")))
		value := tr.Find("td").First().Text()

		r := ParseRange(value)
		if !r.Valid() {
			issues = append(issues, models.Issue{
				Kind:   models.UnparseableNumber,
				Field:  field,
				Detail: fmt.Sprintf("row %d value %q", i+1, strings.TrimSpace(value)),
			})
		}
		fields[field] = r
	})

	return fields, issues
}

// ParseRange converts "$24,416 - $61,905.80" to [24416, 61905.80]. A value
// without the separator gives a single bound.
func ParseRange(value string) models.Range {
	pieces := strings.Split(value, rangeSeparator)
	r := make(models.Range, len(pieces))
	for i, piece := range pieces {
		r[i] = utils.ExtractNumericValue(piece)
	}
	return r
}
