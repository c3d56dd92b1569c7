package models

import (
	"encoding/json"
	"math"
)

// PageIndexEntry represents one letter of the alphabetical job index
type PageIndexEntry struct {
	ID   string    `json:"id" yaml:"id"`
	Self string    `json:"self" yaml:"self"`
	Jobs []JobStub `json:"jobs" yaml:"jobs"`
}

// JobStub represents a job title listed on a letter page
type JobStub struct {
	Name               string       `json:"name" yaml:"name"`
	DataProfilesNumber string       `json:"data_profiles_number" yaml:"data_profiles_number"`
	Self               string       `json:"self" yaml:"self"`
	Salary             SalaryRecord `json:"salary" yaml:"salary"`
}

// SetSalary copies a parsed record onto the stub: annual, hourly, then footnote.
func (j *JobStub) SetSalary(rec SalaryRecord) {
	j.Salary.Annual = rec.Annual
	j.Salary.Hourly = rec.Hourly
	j.Salary.Footnote = rec.Footnote
}

// SalaryRecord holds everything parsed from a job detail page
type SalaryRecord struct {
	Annual   FieldMap    `json:"annual,omitempty" yaml:"annual,omitempty"`
	Hourly   FieldMap    `json:"hourly,omitempty" yaml:"hourly,omitempty"`
	Footnote FootnoteMap `json:"footnote,omitempty" yaml:"footnote,omitempty"`
}

// Empty reports whether no section of the record was populated
func (r SalaryRecord) Empty() bool {
	return len(r.Annual) == 0 && len(r.Hourly) == 0 && len(r.Footnote) == 0
}

// FieldMap maps a normalized field name to a single value or a [low, high] range
type FieldMap map[string]Range

// Range is one or two salary bounds. A bound that could not be parsed is NaN.
type Range []float64

// Valid reports whether every bound in the range parsed to a number
func (r Range) Valid() bool {
	if len(r) == 0 {
		return false
	}
	for _, v := range r {
		if math.IsNaN(v) {
			return false
		}
	}
	return true
}

// Low returns the first bound
func (r Range) Low() float64 {
	if len(r) == 0 {
		return math.NaN()
	}
	return r[0]
}

// High returns the last bound, which equals Low for single values
func (r Range) High() float64 {
	if len(r) == 0 {
		return math.NaN()
	}
	return r[len(r)-1]
}

func (r Range) bounds() []*float64 {
	out := make([]*float64, len(r))
	for i := range r {
		if !math.IsNaN(r[i]) && !math.IsInf(r[i], 0) {
			v := r[i]
			out[i] = &v
		}
	}
	return out
}

// MarshalJSON writes unparseable bounds as null
func (r Range) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.bounds())
}

// MarshalYAML writes unparseable bounds as null
func (r Range) MarshalYAML() (interface{}, error) {
	return r.bounds(), nil
}

// FootnoteKind tells which field of a FootnoteValue is set
type FootnoteKind int

const (
	KindText FootnoteKind = iota
	KindNumber
	KindDate
)

func (k FootnoteKind) String() string {
	switch k {
	case KindNumber:
		return "number"
	case KindDate:
		return "date"
	default:
		return "text"
	}
}

// FootnoteValue is a classified footnote value
type FootnoteValue struct {
	Kind   FootnoteKind
	Number float64
	Epoch  int64 // seconds since the Unix epoch
	Text   string
}

// NumberValue builds a numeric footnote value
func NumberValue(n float64) FootnoteValue { return FootnoteValue{Kind: KindNumber, Number: n} }

// DateValue builds a date footnote value from epoch seconds
func DateValue(epoch int64) FootnoteValue { return FootnoteValue{Kind: KindDate, Epoch: epoch} }

// TextValue builds a string footnote value
func TextValue(s string) FootnoteValue { return FootnoteValue{Kind: KindText, Text: s} }

// Value returns the underlying scalar: float64, int64 or string. A number
// that is not finite comes back as nil so it encodes as null.
func (v FootnoteValue) Value() interface{} {
	switch v.Kind {
	case KindNumber:
		if math.IsNaN(v.Number) || math.IsInf(v.Number, 0) {
			return nil
		}
		return v.Number
	case KindDate:
		return v.Epoch
	default:
		return v.Text
	}
}

func (v FootnoteValue) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.Value())
}

func (v FootnoteValue) MarshalYAML() (interface{}, error) {
	return v.Value(), nil
}

// FootnoteMap maps a normalized field name to its classified value
type FootnoteMap map[string]FootnoteValue

// IssueKind classifies a non-fatal parse problem
type IssueKind string

const (
	// SelectorMiss means an expected part of the markup was absent
	SelectorMiss IssueKind = "selector_miss"
	// UnparseableNumber means a table value held no parseable number
	UnparseableNumber IssueKind = "unparseable_number"
)

// Issue is a non-fatal problem met while parsing a page
type Issue struct {
	Kind   IssueKind `json:"kind" yaml:"kind"`
	Field  string    `json:"field,omitempty" yaml:"field,omitempty"`
	Detail string    `json:"detail" yaml:"detail"`
}

// ParseSummary is what the batch command reports per file
type ParseSummary struct {
	File   string       `json:"file" yaml:"file"`
	Salary SalaryRecord `json:"salary" yaml:"salary"`
	Issues []Issue      `json:"issues,omitempty" yaml:"issues,omitempty"`
}
