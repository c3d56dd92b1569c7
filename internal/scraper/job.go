package scraper

import (
	"github.com/PuerkitoBio/goquery"

	"github.com/fr4nk3nst1ner/payscalesleuth/internal/models"
)

// ParseJob reads a job detail page and returns its annual and hourly salary
// tables plus the footnote line. It never fails; missing sections come back
// empty and are listed as issues.
func (p *Parser) ParseJob(markup string) (models.SalaryRecord, []models.Issue) {
	doc, issues := parseDocument(markup)

	annual := doc.Select(annualRows)
	if annual.Length() == 0 {
		// Hourly-only pages have no annual container. Their bonus, total pay
		// and footnote rows sit in a second table of the hourly container.
		annual = doc.Select(hourlyTrailingRows)
	}
	if annual.Length() == 0 {
		issues = append(issues, models.Issue{
			Kind:   models.SelectorMiss,
			Field:  "annual",
			Detail: "no rows under " + annualRows.String() + " or " + hourlyTrailingRows.String(),
		})
	}

	hourly := doc.Select(hourlyRows)
	if hourly.Length() == 0 {
		issues = append(issues, models.Issue{
			Kind:   models.SelectorMiss,
			Field:  "hourly",
			Detail: "no rows under " + hourlyRows.String(),
		})
	}

	var rec models.SalaryRecord
	var tableIssues []models.Issue

	footnoteRow, annualFields := splitFootnoteRow(annual)
	rec.Annual, tableIssues = ExtractTable(annualFields)
	issues = append(issues, tableIssues...)

	rec.Hourly, tableIssues = ExtractTable(hourly)
	issues = append(issues, tableIssues...)

	rec.Footnote = ExtractFootnote(footnoteRow.Find("td").Text())

	p.report("job", issues)
	return rec, issues
}

// ApplyJob parses a job page and writes the result onto stub.
func (p *Parser) ApplyJob(stub *models.JobStub, markup string) []models.Issue {
	rec, issues := p.ParseJob(markup)
	stub.SetSalary(rec)
	return issues
}

// splitFootnoteRow separates the trailing footnote row from the salary rows
func splitFootnoteRow(rows *goquery.Selection) (footnote, fields *goquery.Selection) {
	n := rows.Length()
	if n == 0 {
		return rows, rows
	}
	return rows.Slice(n-1, n), rows.Slice(0, n-1)
}
