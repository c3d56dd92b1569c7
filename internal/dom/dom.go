// Package dom wraps goquery with structured queries. A Query is a chain of
// steps (tag, id, class, position) compiled once into cascadia matchers, so
// parsers never build selector strings by hand.
package dom

import (
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/cascadia"
	"golang.org/x/net/html"
)

// Step narrows the current selection to matching descendants
type Step struct {
	tag     string
	id      string
	class   string
	nthFrom int // keep elements with child position >= nthFrom, 0 disables
	index   int // keep only the index-th match, -1 keeps all
}

// Tag matches descendant elements by tag name
func Tag(name string) Step { return Step{tag: name, index: -1} }

// ID matches the descendant element with the given id
func ID(id string) Step { return Step{id: id, index: -1} }

// Class matches descendant elements carrying the given class
func Class(class string) Step { return Step{class: class, index: -1} }

// At keeps only the i-th match of the step (zero based)
func (s Step) At(i int) Step {
	s.index = i
	return s
}

// FromChild keeps matches that are at least the k-th child of their parent (one based)
func (s Step) FromChild(k int) Step {
	s.nthFrom = k
	return s
}

// Selector renders the step as a CSS compound selector
func (s Step) Selector() string {
	var b strings.Builder
	b.WriteString(s.tag)
	if s.id != "" {
		b.WriteString("#" + s.id)
	}
	if s.class != "" {
		b.WriteString("." + s.class)
	}
	if s.nthFrom > 0 {
		b.WriteString(":nth-child(n+" + strconv.Itoa(s.nthFrom) + ")")
	}
	if b.Len() == 0 {
		return "*"
	}
	return b.String()
}

// Query is a compiled chain of steps
type Query struct {
	steps    []Step
	matchers []cascadia.Selector
}

// Compile builds a query from its steps
func Compile(steps ...Step) (*Query, error) {
	q := &Query{steps: steps}
	for _, s := range steps {
		m, err := cascadia.Compile(s.Selector())
		if err != nil {
			return nil, err
		}
		q.matchers = append(q.matchers, m)
	}
	return q, nil
}

// MustCompile is Compile for package level queries
func MustCompile(steps ...Step) *Query {
	q, err := Compile(steps...)
	if err != nil {
		panic("dom: " + err.Error())
	}
	return q
}

func (q *Query) String() string {
	parts := make([]string, len(q.steps))
	for i, s := range q.steps {
		parts[i] = s.Selector()
		if s.index >= 0 {
			parts[i] += "[" + strconv.Itoa(s.index) + "]"
		}
	}
	return strings.Join(parts, " ")
}

// Select runs the query below root. A miss yields an empty selection.
func (q *Query) Select(root *goquery.Selection) *goquery.Selection {
	sel := root
	for i, m := range q.matchers {
		sel = sel.FindMatcher(m)
		if idx := q.steps[i].index; idx >= 0 {
			sel = sel.Eq(idx)
		}
	}
	return sel
}

// Document is a parsed page
type Document struct {
	doc *goquery.Document
}

// Parse builds a document tree. The HTML5 parser recovers from malformed
// markup, so only a failing reader can produce an error here; in that case
// an empty document is returned along with it.
func Parse(markup string) (*Document, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	if err != nil {
		empty, _ := html.Parse(strings.NewReader(""))
		return &Document{doc: goquery.NewDocumentFromNode(empty)}, err
	}
	return &Document{doc: doc}, nil
}

// Root returns the document selection
func (d *Document) Root() *goquery.Selection {
	return d.doc.Selection
}

// Select runs q from the document root
func (d *Document) Select(q *Query) *goquery.Selection {
	return q.Select(d.doc.Selection)
}

// OwnText returns the text of the selection's direct text children, leaving
// out nested elements such as help icons.
func OwnText(sel *goquery.Selection) string {
	var b strings.Builder
	for _, n := range sel.Nodes {
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if c.Type == html.TextNode {
				b.WriteString(c.Data)
			}
		}
	}
	return b.String()
}

// Href returns the href of the first element, or "" when there is none
func Href(sel *goquery.Selection) string {
	href, _ := sel.First().Attr("href")
	return href
}
