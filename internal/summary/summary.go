package summary

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/faturai-dev/faturai/internal/model"
)

// Monthly is the total billed spend for one calendar month of due dates.
// PercentualRenda is the share of monthly income that spend consumes,
// rounded to one decimal; it stays zero when no income was supplied.
type Monthly struct {
	Month           string // "2006-01"
	TotalGastos     decimal.Decimal
	PercentualRenda decimal.Decimal
}

// CategoryMonth is the spend of one category within one month.
type CategoryMonth struct {
	Month      string
	Category   model.Category
	TotalGasto decimal.Decimal
}

// MonthKey formats the grouping key for a due date.
func MonthKey(t time.Time) string { return t.Format("2006-01") }

var hundred = decimal.NewFromInt(100)

// Summarize groups expanded rows by due-date month and by month plus
// category. Months are sorted ascending; within a month, categories sort
// by label. The per-category totals of a month always sum to that month's
// TotalGastos.
func Summarize(rows []model.ExpandedRow, monthlyIncome decimal.Decimal) ([]Monthly, []CategoryMonth) {
	totals := make(map[string]decimal.Decimal)
	catTotals := make(map[string]map[model.Category]decimal.Decimal)

	for _, row := range rows {
		k := MonthKey(row.DueDate)
		totals[k] = totals[k].Add(row.Amount)
		if catTotals[k] == nil {
			catTotals[k] = make(map[model.Category]decimal.Decimal)
		}
		catTotals[k][row.Category] = catTotals[k][row.Category].Add(row.Amount)
	}

	months := make([]string, 0, len(totals))
	for k := range totals {
		months = append(months, k)
	}
	sort.Strings(months)

	monthly := make([]Monthly, 0, len(months))
	var cats []CategoryMonth
	for _, m := range months {
		s := Monthly{Month: m, TotalGastos: totals[m]}
		if monthlyIncome.IsPositive() {
			s.PercentualRenda = totals[m].Div(monthlyIncome).Mul(hundred).Round(1)
		}
		monthly = append(monthly, s)

		labels := make([]model.Category, 0, len(catTotals[m]))
		for c := range catTotals[m] {
			labels = append(labels, c)
		}
		sort.Slice(labels, func(i, j int) bool { return labels[i] < labels[j] })
		for _, c := range labels {
			cats = append(cats, CategoryMonth{Month: m, Category: c, TotalGasto: catTotals[m][c]})
		}
	}
	return monthly, cats
}

// PivotTable is the month by category spend matrix, with combinations that
// never occurred filled with zero.
type PivotTable struct {
	Months     []string
	Categories []model.Category
	cells      map[string]map[model.Category]decimal.Decimal
}

// Pivot arranges per-category month totals into a PivotTable. Only
// categories that occur at least once get a column.
func Pivot(cats []CategoryMonth) PivotTable {
	p := PivotTable{cells: make(map[string]map[model.Category]decimal.Decimal)}

	seenCat := make(map[model.Category]bool)
	for _, cm := range cats {
		if p.cells[cm.Month] == nil {
			p.cells[cm.Month] = make(map[model.Category]decimal.Decimal)
			p.Months = append(p.Months, cm.Month)
		}
		p.cells[cm.Month][cm.Category] = p.cells[cm.Month][cm.Category].Add(cm.TotalGasto)
		seenCat[cm.Category] = true
	}

	sort.Strings(p.Months)
	for _, c := range model.Categories() {
		if seenCat[c] {
			p.Categories = append(p.Categories, c)
		}
	}
	return p
}

// Cell returns the total for (month, category), zero when absent.
func (p PivotTable) Cell(month string, c model.Category) decimal.Decimal {
	return p.cells[month][c]
}
