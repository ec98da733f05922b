// Package sheet is the spreadsheet codec: it decodes uploaded .xlsx and .csv
// files into loosely-typed rows for the importer, and encodes vehicle lists
// into downloadable .xlsx reports.
package sheet

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/fairental/fleet/internal/importer"
	"github.com/xuri/excelize/v2"
)

// ErrUnsupportedFormat is returned for file extensions the codec cannot read.
var ErrUnsupportedFormat = errors.New("unsupported file format (expected .xlsx or .csv)")

// Decode reads an uploaded spreadsheet into rows keyed by header text.
// The first sheet (or the CSV header line) supplies the column headers;
// cells arrive as the displayed text, which the importer's date coercion
// understands for the common date formats.
func Decode(r io.Reader, fileName string) ([]importer.Row, error) {
	switch strings.ToLower(filepath.Ext(fileName)) {
	case ".xlsx", ".xlsm":
		return decodeXLSX(r)
	case ".csv":
		return decodeCSV(r)
	default:
		return nil, ErrUnsupportedFormat
	}
}

func decodeXLSX(r io.Reader) ([]importer.Row, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, errors.New("workbook has no sheets")
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheets[0], err)
	}

	return rowsFromCells(rows), nil
}

func decodeCSV(r io.Reader) ([]importer.Row, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}

	return rowsFromCells(records), nil
}

// rowsFromCells pairs each data row with the header row. Cells beyond the
// header width are dropped; rows with no non-empty cell are skipped.
func rowsFromCells(cells [][]string) []importer.Row {
	if len(cells) < 2 {
		return nil
	}

	headers := cells[0]
	var out []importer.Row
	for _, rec := range cells[1:] {
		row := make(importer.Row, len(headers))
		empty := true
		for i, h := range headers {
			if h == "" || i >= len(rec) {
				continue
			}
			row[h] = rec[i]
			if strings.TrimSpace(rec[i]) != "" {
				empty = false
			}
		}
		if !empty {
			out = append(out, row)
		}
	}
	return out
}
