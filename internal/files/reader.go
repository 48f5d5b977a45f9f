package files

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"rkcli/internal/errors"
)

// StdinName is the conventional path meaning "read the export from stdin".
const StdinName = "-"

// ExportSource is a positioned row stream over one activity export: a header
// row followed by a lazy, finite, single-pass sequence of data rows aligned
// with it. Close releases the underlying file on every exit path; a source
// wrapping the process stdin never closes it, since that descriptor is
// shared process-wide.
type ExportSource interface {
	Header() []string
	Next() ([]string, error)
	Close() error
}

// OpenExport opens an activity export by path, dispatching on the file
// extension: .xlsx is read via excelize, everything else as CSV. The path
// "-" reads CSV from stdin.
func OpenExport(path string) (ExportSource, error) {
	if path == StdinName {
		return NewCSVSource(os.Stdin, nil)
	}
	if strings.EqualFold(filepath.Ext(path), ".xlsx") {
		return OpenXLSX(path)
	}
	return OpenCSV(path)
}

// CSVSource reads an activity export from a CSV stream.
type CSVSource struct {
	reader *csv.Reader
	header []string
	closer io.Closer // nil when the source does not own the stream
}

// OpenCSV opens a CSV export file and reads its header row.
func OpenCSV(path string) (*CSVSource, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.NewStorageError(fmt.Sprintf("failed to open export %s", path), err)
	}

	source, err := NewCSVSource(file, file)
	if err != nil {
		file.Close()
		return nil, err
	}
	return source, nil
}

// NewCSVSource wraps an open CSV stream. closer may be nil for streams the
// source does not own, such as stdin.
func NewCSVSource(r io.Reader, closer io.Closer) (*CSVSource, error) {
	reader := csv.NewReader(r)
	// Positional alignment with the header is the caller's concern; don't
	// enforce a fixed field count here.
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, errors.NewParsingError("failed to read export header row", err)
	}

	return &CSVSource{
		reader: reader,
		header: header,
		closer: closer,
	}, nil
}

// Header returns the header row read at open time.
func (s *CSVSource) Header() []string {
	return s.header
}

// Next returns the next data row, or io.EOF at end of stream.
func (s *CSVSource) Next() ([]string, error) {
	return s.reader.Read()
}

// Close releases the underlying file, if the source owns one.
func (s *CSVSource) Close() error {
	if s.closer == nil {
		return nil
	}
	return s.closer.Close()
}

// XLSXSource reads an activity export from the first sheet of a spreadsheet.
// Rows are materialized at open time; exports are bounded by what a fitness
// app emits, not warehouse-sized.
type XLSXSource struct {
	file   *excelize.File
	header []string
	rows   [][]string
	pos    int
}

// OpenXLSX opens a spreadsheet export and reads its header row.
func OpenXLSX(path string) (*XLSXSource, error) {
	file, err := excelize.OpenFile(path)
	if err != nil {
		return nil, errors.NewStorageError(fmt.Sprintf("failed to open export %s", path), err)
	}

	sheets := file.GetSheetList()
	if len(sheets) == 0 {
		file.Close()
		return nil, errors.NewParsingError("export has no sheets", nil)
	}

	rows, err := file.GetRows(sheets[0])
	if err != nil {
		file.Close()
		return nil, errors.NewParsingError(fmt.Sprintf("failed to read sheet %s", sheets[0]), err)
	}
	if len(rows) == 0 {
		file.Close()
		return nil, errors.NewParsingError("export has no header row", nil)
	}

	return &XLSXSource{
		file:   file,
		header: rows[0],
		rows:   rows[1:],
	}, nil
}

// Header returns the header row read at open time.
func (s *XLSXSource) Header() []string {
	return s.header
}

// Next returns the next data row, or io.EOF at end of stream. Spreadsheet
// rows arrive with trailing empty cells trimmed, so rows are padded back to
// header width to keep the positional-alignment contract.
func (s *XLSXSource) Next() ([]string, error) {
	if s.pos >= len(s.rows) {
		return nil, io.EOF
	}
	row := s.rows[s.pos]
	s.pos++
	for len(row) < len(s.header) {
		row = append(row, "")
	}
	return row, nil
}

// Close releases the underlying spreadsheet file.
func (s *XLSXSource) Close() error {
	return s.file.Close()
}
