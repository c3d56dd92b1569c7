package scraper

import (
	"strings"
	"time"

	"github.com/fr4nk3nst1ner/payscalesleuth/internal/models"
	"github.com/fr4nk3nst1ner/payscalesleuth/internal/utils"
)

// footnoteDateLayouts are tried in order for "1 Jan 2016" style values
var footnoteDateLayouts = []string{
	"2 Jan 2006",
	"2 January 2006",
}

// ExtractFootnote parses the metadata line under a salary table, e.g.
//
//	Country: USA | Currency: USD | Updated: 1 Jan 2016 | Individuals Reporting: 180
//
// Each value becomes a number if it parses as one once commas are dropped,
// otherwise a date (seconds since the epoch, UTC) if it reads as D MMM YYYY,
// otherwise the trimmed text. The first match wins, so "2020" is a number.
func ExtractFootnote(text string) models.FootnoteMap {
	footnote := make(models.FootnoteMap)

	for _, segment := range strings.Split(strings.TrimSpace(text), "|") {
		label, value, _ := strings.Cut(segment, ":")
		field := utils.NormalizeFieldName(label)
		if field == "" {
			continue
		}
		footnote[field] = classifyFootnoteValue(strings.TrimSpace(value))
	}

	return footnote
}

func classifyFootnoteValue(value string) models.FootnoteValue {
	if n, ok := utils.ParseStrictNumber(value); ok {
		return models.NumberValue(n)
	}
	if t, ok := parseFootnoteDate(value); ok {
		return models.DateValue(t.Unix())
	}
	return models.TextValue(value)
}

func parseFootnoteDate(value string) (time.Time, bool) {
	for _, layout := range footnoteDateLayouts {
		if t, err := time.ParseInLocation(layout, value, time.UTC); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
