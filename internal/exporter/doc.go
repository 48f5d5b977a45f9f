// Package exporter renders aggregate activity summaries: a human-readable
// text report plus CSV and JSON files. The numeric formatting contract
// (centi-km distances, h:mm:ss durations, truncated pace) is fixed; anything
// consuming a summary renders through these helpers so output stays
// consistent across the CLI and the HTTP API.
package exporter
