package installment

import (
	"fmt"
	"regexp"
	"strconv"
	"time"

	"github.com/faturai-dev/faturai/internal/model"
)

var markerPattern = regexp.MustCompile(`(\d+)\s*/\s*(\d+)`)

// Extract finds the first "current/total" marker in text, e.g. the "2/10"
// in "NETSHOES 2/10". Missing or malformed markers are not an error: the
// purchase is treated as a single occurrence, {1, 1}.
func Extract(text string) model.Installment {
	single := model.Installment{Current: 1, Total: 1}

	m := markerPattern.FindStringSubmatch(text)
	if m == nil {
		return single
	}

	current, err := strconv.Atoi(m[1])
	if err != nil {
		return single
	}
	total, err := strconv.Atoi(m[2])
	if err != nil {
		return single
	}
	return model.Installment{Current: current, Total: total}
}

// Expand materializes the rows a purchase puts on this and future
// statements. A single-occurrence purchase (total <= 1, which covers "1/1"
// markers, or a regressive marker) yields one row due on the reference
// date with no label. An installment purchase yields total-current+1 rows
// with consecutive monthly due dates starting at the reference date,
// labeled "current/total" through "total/total".
//
// Each emitted row is a fresh copy of the source; Expand never drops or
// merges rows.
func Expand(row model.CanonicalTransaction, m model.Installment, dueDate time.Time) []model.ExpandedRow {
	if m.Total <= 1 || m.Current > m.Total {
		return []model.ExpandedRow{{CanonicalTransaction: row, DueDate: dueDate}}
	}

	remaining := m.Total - m.Current
	rows := make([]model.ExpandedRow, 0, remaining+1)
	for i := 0; i <= remaining; i++ {
		rows = append(rows, model.ExpandedRow{
			CanonicalTransaction: row,
			DueDate:              addMonths(dueDate, i),
			Label:                fmt.Sprintf("%d/%d", m.Current+i, m.Total),
		})
	}
	return rows
}

// ExpandAll fans out a normalized batch against one reference due date,
// reading each row's marker from its installment-hint field.
func ExpandAll(rows []model.CanonicalTransaction, dueDate time.Time) []model.ExpandedRow {
	var out []model.ExpandedRow
	for _, row := range rows {
		out = append(out, Expand(row, Extract(row.InstallmentHint), dueDate)...)
	}
	return out
}

// addMonths advances t by whole calendar months, clamping the day to the
// last day of shorter months (Jan 31 + 1 month = Feb 28, not Mar 3).
func addMonths(t time.Time, months int) time.Time {
	first := time.Date(t.Year(), t.Month()+time.Month(months), 1, 0, 0, 0, 0, t.Location())
	day := t.Day()
	if last := first.AddDate(0, 1, -1).Day(); day > last {
		day = last
	}
	return time.Date(first.Year(), first.Month(), day, 0, 0, 0, 0, t.Location())
}
