package scraper

import (
	"github.com/PuerkitoBio/goquery"

	"github.com/fr4nk3nst1ner/payscalesleuth/internal/dom"
	"github.com/fr4nk3nst1ner/payscalesleuth/internal/models"
)

// ParseIndex reads the alphabetical index and returns one entry per letter
// link, keyed by the link text. A repeated letter overwrites the earlier one.
func (p *Parser) ParseIndex(markup string) (map[string]models.PageIndexEntry, []models.Issue) {
	doc, issues := parseDocument(markup)
	pages := make(map[string]models.PageIndexEntry)

	anchors := doc.Select(indexAnchors)
	if anchors.Length() == 0 {
		issues = append(issues, models.Issue{
			Kind:   models.SelectorMiss,
			Detail: "no index links under " + indexAnchors.String(),
		})
	}

	anchors.Each(func(i int, s *goquery.Selection) {
		if !withinLimit(i, p.letterLimit) {
			return
		}
		letter := s.Text()
		pages[letter] = models.PageIndexEntry{
			ID:   letter,
			Self: p.baseURL + dom.Href(s),
			Jobs: []models.JobStub{},
		}
	})

	p.report("index", issues)
	return pages, issues
}
