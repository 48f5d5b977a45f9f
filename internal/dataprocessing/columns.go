package dataprocessing

import (
	"strings"

	"rkcli/internal/errors"
)

// Field patterns recognized in activity exports. Callers pass these to
// ResolveColumns in the order they want row fields projected.
const (
	FieldDate     = "date"
	FieldDuration = "duration"
	FieldDistance = "distance"
)

// ActivityFields is the projection order the aggregator consumes.
var ActivityFields = []string{FieldDate, FieldDuration, FieldDistance}

// Accessor is a precomputed, ordered list of column indices ("speed dials")
// used to project a raw row to just the requested fields. It is built once
// per header and reused for every data row, so row access never repeats
// string comparisons.
type Accessor []int

// Project reduces a raw row to the resolved fields, in the order the
// patterns were requested. A row shorter than the header leaves some indices
// out of range; those fields are skipped and the result comes back short, so
// the parser's field-count guard flags the row as malformed instead of the
// projection panicking.
func (a Accessor) Project(row []string) []string {
	fields := make([]string, 0, len(a))
	for _, index := range a {
		if index >= len(row) {
			continue
		}
		fields = append(fields, row[index])
	}
	return fields
}

// ResolveColumns maps field patterns to column indices in header.
//
// With a rename table, resolution is exact-match only: each table entry maps
// a literal header name to a pattern, and a header name absent from the
// header row fails with UnresolvedColumnError. Without one, each pattern is
// matched against the header entries in their original index order, taking
// the first entry whose lowercase form has the pattern as a prefix; this
// first-match rule is the deliberate tie-break for ambiguous headers such as
// "Date Created" next to "Date Started". No match fails with
// UnresolvedPatternError.
//
// The returned accessor is aligned index-for-index with patterns, which may
// repeat or omit entries relative to the rename table. A pattern the table
// never produced fails with UnresolvedAccessorError.
func ResolveColumns(header []string, patterns []string, rename map[string]string) (Accessor, error) {
	nameToIndex := make(map[string]int, len(header))
	for i, name := range header {
		nameToIndex[name] = i
	}

	speedDials := make(map[string]int, len(patterns))

	if len(rename) > 0 {
		for columnName, pattern := range rename {
			index, ok := nameToIndex[columnName]
			if !ok {
				return nil, &errors.UnresolvedColumnError{Column: columnName}
			}
			speedDials[pattern] = index
		}
	} else {
		for _, pattern := range patterns {
			matched := false
			for index, columnName := range header {
				if strings.HasPrefix(strings.ToLower(columnName), pattern) {
					speedDials[pattern] = index
					matched = true
					break
				}
			}
			if !matched {
				return nil, &errors.UnresolvedPatternError{Pattern: pattern}
			}
		}
	}

	accessor := make(Accessor, 0, len(patterns))
	for _, pattern := range patterns {
		index, ok := speedDials[pattern]
		if !ok {
			return nil, &errors.UnresolvedAccessorError{Pattern: pattern}
		}
		accessor = append(accessor, index)
	}

	return accessor, nil
}
