package scraper

import (
	"go.uber.org/zap"

	"github.com/fr4nk3nst1ner/payscalesleuth/internal/dom"
	"github.com/fr4nk3nst1ner/payscalesleuth/internal/models"
)

// DefaultBaseURL is prepended to every relative href found on a page
const DefaultBaseURL = "http://www.payscale.com"

// Page structure of the PayScale research section
var (
	indexAnchors = dom.MustCompile(dom.Class("rcindex"), dom.Class("rcIndexBrowse"), dom.Tag("a"))
	letterRows   = dom.MustCompile(dom.Class("rcindex"), dom.Tag("table"), dom.Tag("tr").FromChild(2))

	annualRows         = tableRows("m_summaryReport", 0)
	hourlyRows         = tableRows("m_summaryReport_hourly", 0)
	hourlyTrailingRows = tableRows("m_summaryReport_hourly", 1)
)

// tableRows selects the data rows (header skipped) of the n-th table inside a container
func tableRows(containerID string, n int) *dom.Query {
	return dom.MustCompile(dom.ID(containerID), dom.Tag("table").At(n), dom.Tag("tr").FromChild(2))
}

// Parser extracts job listings and salary figures from PayScale pages.
// It keeps no state between calls and is safe for concurrent use.
type Parser struct {
	options
}

type options struct {
	baseURL     string
	letterLimit int
	jobLimit    int
	logger      *zap.Logger
}

var defaultOptions = options{
	baseURL: DefaultBaseURL,
	logger:  zap.NewNop(),
}

type Option func(opts *options)

// WithBaseURL sets the prefix used to turn hrefs into absolute URLs
func WithBaseURL(baseURL string) Option {
	return func(opts *options) {
		opts.baseURL = baseURL
	}
}

// WithLetterLimit caps how many index letters are read; n <= 0 means no cap
func WithLetterLimit(n int) Option {
	return func(opts *options) {
		opts.letterLimit = n
	}
}

// WithJobLimit caps how many jobs are read per letter page; n <= 0 means no cap
func WithJobLimit(n int) Option {
	return func(opts *options) {
		opts.jobLimit = n
	}
}

func WithLogger(logger *zap.Logger) Option {
	return func(opts *options) {
		if logger != nil {
			opts.logger = logger
		}
	}
}

func New(opts ...Option) *Parser {
	options := defaultOptions
	for _, opt := range opts {
		opt(&options)
	}
	return &Parser{options: options}
}

// BaseURL returns the configured URL prefix
func (p *Parser) BaseURL() string {
	return p.baseURL
}

func withinLimit(i, limit int) bool {
	return limit <= 0 || i < limit
}

func (p *Parser) report(page string, issues []models.Issue) {
	for _, is := range issues {
		p.logger.Debug("parse issue",
			zap.String("page", page),
			zap.String("kind", string(is.Kind)),
			zap.String("field", is.Field),
			zap.String("detail", is.Detail))
	}
}

func parseDocument(markup string) (*dom.Document, []models.Issue) {
	doc, err := dom.Parse(markup)
	if err != nil {
		return doc, []models.Issue{{Kind: models.SelectorMiss, Detail: "unreadable markup: " + err.Error()}}
	}
	return doc, nil
}
