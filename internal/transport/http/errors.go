package http

import (
	"errors"
	"io/fs"

	apierrors "rkcli/internal/errors"
)

// isResolutionError reports whether err stems from header resolution,
// meaning the export's columns could not be mapped to the required fields.
func isResolutionError(err error) bool {
	var columnErr *apierrors.UnresolvedColumnError
	var patternErr *apierrors.UnresolvedPatternError
	var accessorErr *apierrors.UnresolvedAccessorError
	return errors.As(err, &columnErr) ||
		errors.As(err, &patternErr) ||
		errors.As(err, &accessorErr)
}

// isNotFound reports whether err stems from a missing export file.
func isNotFound(err error) bool {
	return errors.Is(err, fs.ErrNotExist)
}
