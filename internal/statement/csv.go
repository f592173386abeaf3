package statement

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/faturai-dev/faturai/internal/model"
)

// Header is the CSV header for the consolidated expanded table.
const Header = "data_vcto,lancamento,categoria,valor,parcela"

const (
	numFields   = 5
	dateFormat  = "2006-01-02"
	colDueDate  = 0
	colTitle    = 1
	colCategory = 2
	colAmount   = 3
	colLabel    = 4
)

// ReadRawTable reads one bank export into memory. The field separator is
// sniffed from the header line (Inter ships semicolons, Nubank commas) and
// short rows are padded to the header width so summary lines survive the
// read; normalizers filter them by content.
func ReadRawTable(file string, r io.Reader) (model.RawTable, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return model.RawTable{}, fmt.Errorf("reading %s: %w", file, err)
	}

	cr := csv.NewReader(bytes.NewReader(data))
	cr.Comma = sniffSeparator(data)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	records, err := cr.ReadAll()
	if err != nil {
		return model.RawTable{}, fmt.Errorf("reading %s: %w", file, err)
	}
	if len(records) == 0 {
		return model.RawTable{}, fmt.Errorf("%s: empty file", file)
	}

	cols := records[0]
	rows := records[1:]
	for i, rec := range rows {
		if len(rec) < len(cols) {
			padded := make([]string, len(cols))
			copy(padded, rec)
			rows[i] = padded
		}
	}
	return model.RawTable{File: file, Columns: cols, Rows: rows}, nil
}

// sniffSeparator picks the separator with more hits on the header line.
func sniffSeparator(data []byte) rune {
	head, _, _ := strings.Cut(string(data), "\n")
	if strings.Count(head, ";") > strings.Count(head, ",") {
		return ';'
	}
	return ','
}

// WriteExpanded writes the consolidated expanded table (including header).
func WriteExpanded(w io.Writer, rows []model.ExpandedRow) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(strings.Split(Header, ",")); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, row := range rows {
		if err := cw.Write(MarshalRow(row)); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	return cw.Error()
}

// MarshalRow converts an ExpandedRow to a CSV record.
func MarshalRow(row model.ExpandedRow) []string {
	rec := make([]string, numFields)
	rec[colDueDate] = row.DueDate.Format(dateFormat)
	rec[colTitle] = row.Title
	rec[colCategory] = string(row.Category)
	rec[colAmount] = row.Amount.StringFixed(2)
	rec[colLabel] = row.Label
	return rec
}
