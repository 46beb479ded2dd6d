// Package structured parses the flat key="value" input mini-language that
// the procurement tools accept from the agent.
//
// An input is a single line of comma-separated assignments, for example:
//
//	buyer_part_number="3010228002", order_quantity="32100.000", requested_fulfillment_date="02/13/2025"
//
// The grammar is deliberately simple and carries two documented quirks that
// downstream behavior depends on: the comma split is not quote-aware (a
// literal comma inside a quoted value splits it), and a key appearing twice
// silently overwrites the earlier value.
package structured

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Kind classifies how a field's raw value is validated and converted.
type Kind int

const (
	// NonEmptyString rejects values that are empty after trimming.
	NonEmptyString Kind = iota
	// PositiveInteger accepts decimal input such as "32100.000",
	// truncates toward zero, and rejects results <= 0.
	PositiveInteger
	// PositiveFloat accepts any numeric value. Despite the name there is
	// no positivity check; quantities are checked but prices are not, and
	// that asymmetry is kept as-is rather than guessing the intended rule.
	PositiveFloat
	// Date accepts MM/DD/YY and MM/DD/YYYY (month and day may be
	// unpadded) and normalizes to YYYY-MM-DD.
	Date
)

// Field is one expected key in the input string.
type Field struct {
	Name string
	Kind Kind
}

// Schema is the ordered, fixed set of fields one parsing context expects.
// Schemas are declared at the call site and are not user input.
type Schema struct {
	Fields []Field
}

// Format renders the expected input shape for error messages,
// e.g. `buyer_part_number="...", po_price="..."`.
func (s Schema) Format() string {
	names := make([]string, len(s.Fields))
	for i, f := range s.Fields {
		names[i] = f.Name + `="..."`
	}
	return strings.Join(names, ", ")
}

// Record holds the converted value for every schema field: string for
// NonEmptyString, int for PositiveInteger, float64 for PositiveFloat, and
// an ISO YYYY-MM-DD string for Date.
type Record map[string]any

// ParseError is the single human-readable failure message produced when
// any parsing or validation step fails. The message text is displayed to
// the end user verbatim, so its wording is a stable contract.
type ParseError struct {
	Message string
}

func (e *ParseError) Error() string { return e.Message }

func failf(format string, args ...any) *ParseError {
	return &ParseError{Message: fmt.Sprintf(format, args...)}
}

// Two-digit years first; both layouts accept unpadded month and day.
var dateLayouts = []string{"1/2/06", "1/2/2006"}

// Parse tokenizes input against schema and returns either a fully
// converted Record or the first ParseError encountered. It never returns
// both, aggregates nothing, and has no side effects.
func Parse(input string, schema Schema) (Record, *ParseError) {
	segments := strings.Split(strings.TrimSpace(input), ",")
	if len(segments) != len(schema.Fields) {
		return nil, failf("Expected exactly %d comma-separated segments. Format: %s",
			len(schema.Fields), schema.Format())
	}

	known := make(map[string]bool, len(schema.Fields))
	for _, f := range schema.Fields {
		known[f.Name] = true
	}

	// Segments may appear in any order; only the count is fixed.
	raw := make(map[string]string, len(schema.Fields))
	for _, segment := range segments {
		key, value, ok := strings.Cut(strings.TrimSpace(segment), "=")
		if !ok {
			return nil, failf("Could not parse segment: %s", segment)
		}
		key = strings.TrimSpace(key)
		if !known[key] {
			return nil, failf("Unrecognized key '%s' in segment: %s", key, segment)
		}
		// A repeated key overwrites the earlier assignment.
		raw[key] = stripQuotes(strings.TrimSpace(value))
	}

	record := make(Record, len(schema.Fields))
	for _, field := range schema.Fields {
		value, assigned := raw[field.Name]
		switch field.Kind {
		case NonEmptyString:
			if !assigned || strings.TrimSpace(value) == "" {
				return nil, failf("'%s' must be a non-empty string.", field.Name)
			}
			record[field.Name] = value
		case PositiveInteger:
			f, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
			if err != nil {
				return nil, failf("'%s' must be a valid integer (e.g., '32100', '32100.000').", field.Name)
			}
			n := int(f)
			if n <= 0 {
				return nil, failf("'%s' must be a positive integer.", field.Name)
			}
			record[field.Name] = n
		case PositiveFloat:
			f, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
			if err != nil {
				return nil, failf("'%s' must be a valid number (e.g., '125.50').", field.Name)
			}
			record[field.Name] = f
		case Date:
			normalized, ok := parseDate(value)
			if !ok {
				return nil, failf("'%s' must be in 'MM/DD/YY' or 'MM/DD/YYYY' format (e.g., '5/1/25' or '5/1/2025').", field.Name)
			}
			record[field.Name] = normalized
		}
	}

	return record, nil
}

// stripQuotes removes one layer of surrounding double quotes. Interior
// characters are never un-escaped.
func stripQuotes(value string) string {
	value = strings.TrimPrefix(value, `"`)
	return strings.TrimSuffix(value, `"`)
}

func parseDate(value string) (string, bool) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.Format("2006-01-02"), true
		}
	}
	return "", false
}
