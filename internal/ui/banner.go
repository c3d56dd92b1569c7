package ui

import (
	"fmt"
	"io"
	"math"
	"math/rand"
	"sort"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/pterm/pterm"

	"github.com/fr4nk3nst1ner/payscalesleuth/internal/models"
	"github.com/fr4nk3nst1ner/payscalesleuth/internal/utils"
)

const bannerText = `
 ___  ___  __ __  ___  ___  ___  _     ___    ___  _     ___  _ _  ___  _ _
| . \| . ||  |  |/ __>|  _>| . || |   | __>  / __>| |   | __>| | ||_ _|| | |
|  _/|   | \   / \__ \| <__|   || |_  | _>   \__ \| |_  | _> | ' | | | |   |
|_|  |_|_|  |_|  <___/\___/|_|_||___| |___>  <___/|___| |___>\___/ |_| |_|_|
`

// ColorizeText applies random colors to the input text
func ColorizeText(text string) string {
	source := rand.NewSource(time.Now().UnixNano())
	random := rand.New(source)

	startColor := pterm.NewRGB(uint8(random.Intn(256)), uint8(random.Intn(256)), uint8(random.Intn(256)))
	firstPoint := pterm.NewRGB(uint8(random.Intn(256)), uint8(random.Intn(256)), uint8(random.Intn(256)))

	var b strings.Builder
	runes := []rune(text)
	half := len(runes)/2 + 1
	for i, r := range runes {
		b.WriteString(startColor.Fade(0, float32(len(runes)), float32(i%half), firstPoint).Sprint(string(r)))
	}
	return b.String()
}

// PrintBanner writes the application banner to w
func PrintBanner(w io.Writer, silence bool) {
	if !silence {
		fmt.Fprintln(w, ColorizeText(bannerText))
	}
}

// FormatRange renders a salary range such as "$23,966 - $60,278"
func FormatRange(r models.Range) string {
	if len(r) == 0 {
		return "Not Available"
	}
	parts := make([]string, len(r))
	for i, v := range r {
		parts[i] = utils.FormatSalary(v)
	}
	return strings.Join(parts, " - ")
}

// ColorizeSalary applies color formatting to an annual salary range, keyed on its upper bound
func ColorizeSalary(r models.Range) string {
	formatted := FormatRange(r)
	if !r.Valid() {
		return pterm.Red(formatted)
	}

	switch high := r.High(); {
	case high >= 150000:
		return pterm.Green(formatted)
	case high >= 80000:
		return pterm.LightGreen(formatted)
	case high >= 40000:
		return pterm.Yellow(formatted)
	default:
		return pterm.Red(formatted)
	}
}

// RenderSalaryTable renders one row per salary field of each job: job, period, field, range.
// Footnote entries follow under the "footnote" period.
func RenderSalaryTable(jobs []models.JobStub) (string, error) {
	data := pterm.TableData{{"Job", "Period", "Field", "Range"}}
	for _, job := range jobs {
		data = appendFields(data, job.Name, "annual", job.Salary.Annual, true)
		data = appendFields(data, job.Name, "hourly", job.Salary.Hourly, false)
		data = appendFootnote(data, job.Name, job.Salary.Footnote)
	}
	return pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
}

func appendFields(data pterm.TableData, name, period string, fields models.FieldMap, colorize bool) pterm.TableData {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		value := FormatRange(fields[k])
		if colorize && k == "salary" {
			value = ColorizeSalary(fields[k])
		}
		data = append(data, []string{name, period, k, value})
	}
	return data
}

func appendFootnote(data pterm.TableData, name string, footnote models.FootnoteMap) pterm.TableData {
	keys := make([]string, 0, len(footnote))
	for k := range footnote {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		data = append(data, []string{name, "footnote", k, FormatFootnote(footnote[k])})
	}
	return data
}

// FormatFootnote renders a footnote value: dates as "1 Jan 2016", numbers with separators
func FormatFootnote(v models.FootnoteValue) string {
	switch v.Kind {
	case models.KindDate:
		return time.Unix(v.Epoch, 0).UTC().Format("2 Jan 2006")
	case models.KindNumber:
		if math.IsNaN(v.Number) || math.IsInf(v.Number, 0) {
			return "Not Available"
		}
		return humanize.Commaf(v.Number)
	default:
		return v.Text
	}
}

// RenderIndexTable renders the letter pages found on the index, in letter order
func RenderIndexTable(index map[string]models.PageIndexEntry) (string, error) {
	letters := make([]string, 0, len(index))
	for k := range index {
		letters = append(letters, k)
	}
	sort.Strings(letters)

	data := pterm.TableData{{"Letter", "URL"}}
	for _, l := range letters {
		data = append(data, []string{index[l].ID, index[l].Self})
	}
	return pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
}

// RenderJobList renders the jobs of a letter page in page order
func RenderJobList(jobs []models.JobStub) (string, error) {
	data := pterm.TableData{{"Job", "Data Profiles", "URL"}}
	for _, job := range jobs {
		data = append(data, []string{job.Name, job.DataProfilesNumber, job.Self})
	}
	return pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
}
