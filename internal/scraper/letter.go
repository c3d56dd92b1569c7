package scraper

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/fr4nk3nst1ner/payscalesleuth/internal/dom"
	"github.com/fr4nk3nst1ner/payscalesleuth/internal/models"
)

// ParseLetter reads one letter's listing table and returns a stub per data
// row, in page order. Salary records are left empty.
func (p *Parser) ParseLetter(markup string) ([]models.JobStub, []models.Issue) {
	doc, issues := parseDocument(markup)
	jobs := []models.JobStub{}

	rows := doc.Select(letterRows)
	if rows.Length() == 0 {
		issues = append(issues, models.Issue{
			Kind:   models.SelectorMiss,
			Detail: "no job rows under " + letterRows.String(),
		})
	}

	rows.Each(func(i int, tr *goquery.Selection) {
		if !withinLimit(i, p.jobLimit) {
			return
		}
		links := tr.Find("td a")
		if links.Length() == 0 {
			issues = append(issues, models.Issue{
				Kind:   models.SelectorMiss,
				Field:  "name",
				Detail: fmt.Sprintf("row %d has no job link", i+1),
			})
		}
		jobs = append(jobs, models.JobStub{
			Name:               strings.TrimSpace(links.Text()),
			DataProfilesNumber: strings.TrimSpace(tr.Find("td").Last().Text()),
			Self:               p.baseURL + dom.Href(links),
		})
	})

	p.report("letter", issues)
	return jobs, issues
}
