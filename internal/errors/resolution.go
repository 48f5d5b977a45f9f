package errors

import (
	"fmt"
)

// Resolution errors are raised while mapping an export's header row to the
// requested field patterns. They are fatal: resolution happens once, before
// any data row is processed, and a failure aborts the whole run.

// UnresolvedColumnError reports a rename-table header name that does not
// appear in the export's header row. Rename lookups are exact-match only,
// so the missing header is named, not the pattern it maps to.
type UnresolvedColumnError struct {
	Column string
}

func (e *UnresolvedColumnError) Error() string {
	return fmt.Sprintf("no match for column: %q", e.Column)
}

// UnresolvedPatternError reports a field pattern with no case-insensitive
// prefix match anywhere in the header row.
type UnresolvedPatternError struct {
	Pattern string
}

func (e *UnresolvedPatternError) Error() string {
	return fmt.Sprintf("no match for pattern: %q", e.Pattern)
}

// UnresolvedAccessorError reports a requested field pattern that resolution
// never produced an index for. This can only happen when a rename table is
// in use and the pattern list asks for a pattern absent from the table.
type UnresolvedAccessorError struct {
	Pattern string
}

func (e *UnresolvedAccessorError) Error() string {
	return fmt.Sprintf("no match for speed dial: %q", e.Pattern)
}
