package utils

import (
	"errors"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
)

var (
	nonNumeric   = regexp.MustCompile(`[^\d.-]`)
	leadingFloat = regexp.MustCompile(`^-?(?:\d+\.?\d*|\.\d+)`)
)

// NormalizeFieldName turns a label into a field name: trimmed, first space
// replaced by an underscore, lowercased. "Individuals Reporting" becomes
// "individuals_reporting".
func NormalizeFieldName(label string) string {
	return strings.ToLower(strings.Replace(strings.TrimSpace(label), " ", "_", 1))
}

// ExtractNumericValue strips everything but digits, dots and minus signs from
// a figure such as "$61,905.80" and parses the longest leading number.
// A figure without digits yields NaN, never zero.
func ExtractNumericValue(figure string) float64 {
	cleaned := nonNumeric.ReplaceAllString(figure, "")
	match := leadingFloat.FindString(cleaned)
	if match == "" {
		return math.NaN()
	}
	v, err := strconv.ParseFloat(match, 64)
	if err != nil {
		return math.NaN()
	}
	return v
}

// ParseStrictNumber parses a whole value as a number after dropping
// thousands separators. ok is false for empty, partial or NaN input.
// Infinity is only accepted spelled out as "Infinity", optionally signed;
// "inf" and "INF" are not numbers. Out of range figures saturate to ±Inf.
func ParseStrictNumber(value string) (float64, bool) {
	n := strings.TrimSpace(strings.ReplaceAll(value, ",", ""))
	if n == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(n, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, false
	}
	if math.IsNaN(v) {
		return 0, false
	}
	if math.IsInf(v, 0) && err == nil && strings.TrimLeft(n, "+-") != "Infinity" {
		return 0, false
	}
	return v, true
}

// FormatSalary renders a figure with comma separators and a dollar sign
func FormatSalary(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return "Not Available"
	}
	if v < 0 {
		return "-$" + humanize.Commaf(-v)
	}
	return "$" + humanize.Commaf(v)
}

// IsValidFormat checks if the output format is supported
func IsValidFormat(format string) bool {
	validFormats := map[string]bool{
		"json":  true,
		"yaml":  true,
		"table": true,
	}
	return validFormats[strings.ToLower(format)]
}
