package normalizer

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/faturai-dev/faturai/internal/category"
	"github.com/faturai-dev/faturai/internal/model"
)

// NubankNormalizer handles the Nubank credit card export: columns
// date,title,amount, ISO dates, plain decimal amounts.
type NubankNormalizer struct{}

const nubankDateFormat = "2006-01-02"

// Layout returns the normalizer name.
func (n *NubankNormalizer) Layout() string { return "nubank" }

// Normalize converts a Nubank table into canonical transactions. Credits
// and refunds (amount <= 0) are filtered out. Categories come from the
// title keyword table, and the title doubles as the installment-marker
// source. A date or amount that fails to parse aborts the whole file:
// this export is machine generated, so a bad value means a wrong file.
func (n *NubankNormalizer) Normalize(t model.RawTable) ([]model.CanonicalTransaction, error) {
	dateCol, err := requireColumn(t, "date")
	if err != nil {
		return nil, err
	}
	titleCol, err := requireColumn(t, "title")
	if err != nil {
		return nil, err
	}
	amountCol, err := requireColumn(t, "amount")
	if err != nil {
		return nil, err
	}

	var txns []model.CanonicalTransaction
	for i, rec := range t.Rows {
		date, err := time.Parse(nubankDateFormat, strings.TrimSpace(rec[dateCol]))
		if err != nil {
			return nil, &ParseError{File: t.File, Row: i + 1, Field: "date", Value: rec[dateCol], Err: err}
		}

		amount, err := decimal.NewFromString(strings.TrimSpace(rec[amountCol]))
		if err != nil {
			return nil, &ParseError{File: t.File, Row: i + 1, Field: "amount", Value: rec[amountCol], Err: err}
		}
		if !amount.IsPositive() {
			continue
		}

		title := strings.TrimSpace(rec[titleCol])
		txns = append(txns, model.CanonicalTransaction{
			Title:           title,
			Amount:          amount,
			Date:            date,
			Category:        category.Classify(title, category.TitleRules),
			InstallmentHint: title,
		})
	}
	return txns, nil
}
