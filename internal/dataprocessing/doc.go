// Package dataprocessing implements the core of rkcli: resolving the
// free-form column headers of a fitness activity export to fixed semantic
// fields, and folding the export's rows into aggregate statistics over a
// date window.
//
// # Architecture
//
// The package has three layers:
//
//  1. Columns: maps header names to field patterns, producing a positional
//     accessor ("speed dials") built once per header and reused for every row
//  2. Parser: converts projected (date, duration, distance) strings into a
//     typed per-row result
//  3. Aggregator: a single-pass fold that filters by date window, accumulates
//     totals and records non-fatal per-row warnings
//
// # Usage
//
//	accessor, err := dataprocessing.ResolveColumns(header, dataprocessing.ActivityFields, nil)
//	if err != nil {
//	    return err // fatal: nothing was aggregated
//	}
//	agg := dataprocessing.NewAggregator(start, end, logger)
//	if err := agg.Process(ctx, rows, accessor); err != nil {
//	    return err
//	}
//	summary := agg.Snapshot()
//
// # Error handling
//
// Resolution failures (see rkcli/internal/errors) are fatal and happen before
// any row is read. Everything row-level is recoverable: malformed rows and
// zero-valued metrics become warnings on the summary, and processing
// continues. Only an upstream read failure aborts a run.
package dataprocessing
