package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// RawTable is one statement export loaded into memory: named columns and
// string cells exactly as the bank wrote them. Callers load files; the
// core packages only ever see a RawTable.
type RawTable struct {
	File    string // source file name, used in error messages
	Columns []string
	Rows    [][]string
}

// CanonicalTransaction is the normalized form every layout converges on.
// Amount is always positive: refunds and credits are filtered out by the
// normalizers before a CanonicalTransaction exists.
type CanonicalTransaction struct {
	Title           string
	Amount          decimal.Decimal
	Date            time.Time // original purchase date, not the due date
	Category        Category
	InstallmentHint string // the field the installment marker is read from
}

// Installment is a "current/total" marker parsed from statement text.
// {1, 1} means a single-occurrence purchase.
type Installment struct {
	Current int
	Total   int
}

// ExpandedRow is a CanonicalTransaction pinned to the statement cycle it
// is billed in. Label is "k/total" for installment rows, empty otherwise.
type ExpandedRow struct {
	CanonicalTransaction
	DueDate time.Time
	Label   string
}
