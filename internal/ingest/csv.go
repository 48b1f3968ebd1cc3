// Package ingest reads and reshapes projection CSVs: the draft sheet the
// interactive session consumes, and the raw projection exports the prep
// tools turn into draft sheets.
package ingest

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// row is one CSV record with header-keyed access.
type row struct {
	line   int
	fields map[string]string
}

func (r row) str(col string) (string, error) {
	v, ok := r.fields[col]
	if !ok {
		return "", fmt.Errorf("line %d: missing column %s", r.line, col)
	}
	return strings.TrimSpace(v), nil
}

func (r row) float(col string) (float64, error) {
	s, err := r.str(col)
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("line %d: bad %s value %q", r.line, col, s)
	}
	return v, nil
}

func (r row) int(col string) (int, error) {
	s, err := r.str(col)
	if err != nil {
		return 0, err
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("line %d: bad %s value %q", r.line, col, s)
	}
	return v, nil
}

// readRows decodes a headered CSV into keyed rows. Projection exports often
// carry a UTF-8 BOM, which is stripped from the first header cell.
func readRows(r io.Reader) ([]row, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("reading CSV header: %w", err)
	}
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], "\uFEFF")
	}
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}

	var rows []row
	line := 1
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading CSV record: %w", err)
		}
		line++
		fields := make(map[string]string, len(header))
		for i, col := range header {
			if i < len(record) {
				fields[col] = record[i]
			}
		}
		rows = append(rows, row{line: line, fields: fields})
	}
	return rows, nil
}
