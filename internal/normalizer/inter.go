package normalizer

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/faturai-dev/faturai/internal/category"
	"github.com/faturai-dev/faturai/internal/model"
)

// InterNormalizer handles the Banco Inter credit card export: localized
// headers (Data, Lançamento, Categoria, Tipo, Valor), dd/mm/yyyy dates and
// "R$ 1.234,56" amounts.
type InterNormalizer struct{}

const (
	interDateFormat = "02/01/2006"

	// autoDebitTitle is the statement-payment line Inter includes in every
	// export. It is not spending and is always excluded.
	autoDebitTitle = "PAGTO DEBITO AUTOMATICO"
)

// interAmountCleaner strips the currency symbol, non-breaking and plain
// spaces, and thousands separators; the decimal comma is converted after.
var interAmountCleaner = strings.NewReplacer("R$", "", " ", "", " ", "", ".", "")

// Layout returns the normalizer name.
func (n *InterNormalizer) Layout() string { return "inter" }

// Normalize converts an Inter table into canonical transactions. Headers
// are cleaned of BOM, quotes and whitespace before matching. Rows whose
// date does not parse are coerced out (skipped) rather than failing the
// file, because Inter interleaves summary lines with transactions; an
// unparseable amount still aborts the batch. Non-debit rows (amount <= 0)
// and the automatic-debit payment line are excluded. Categories come from
// the bank's own Categoria code, and Tipo carries the installment marker.
func (n *InterNormalizer) Normalize(t model.RawTable) ([]model.CanonicalTransaction, error) {
	dateCol, err := requireColumn(t, "Data")
	if err != nil {
		return nil, err
	}
	titleCol, err := requireColumn(t, "Lançamento")
	if err != nil {
		return nil, err
	}
	catCol, err := requireColumn(t, "Categoria")
	if err != nil {
		return nil, err
	}
	tipoCol, err := requireColumn(t, "Tipo")
	if err != nil {
		return nil, err
	}
	amountCol, err := requireColumn(t, "Valor")
	if err != nil {
		return nil, err
	}

	var txns []model.CanonicalTransaction
	for i, rec := range t.Rows {
		title := strings.TrimSpace(rec[titleCol])
		if title == autoDebitTitle {
			continue
		}

		date, err := time.Parse(interDateFormat, strings.TrimSpace(rec[dateCol]))
		if err != nil {
			continue
		}

		amount, err := parseInterAmount(rec[amountCol])
		if err != nil {
			return nil, &ParseError{File: t.File, Row: i + 1, Field: "Valor", Value: rec[amountCol], Err: err}
		}
		if !amount.IsPositive() {
			continue
		}

		txns = append(txns, model.CanonicalTransaction{
			Title:           title,
			Amount:          amount,
			Date:            date,
			Category:        category.Classify(rec[catCol], category.InterTypeRules),
			InstallmentHint: rec[tipoCol],
		})
	}
	return txns, nil
}

// parseInterAmount turns "R$ 1.234,56" into a decimal.
func parseInterAmount(s string) (decimal.Decimal, error) {
	s = interAmountCleaner.Replace(s)
	s = strings.ReplaceAll(s, ",", ".")
	return decimal.NewFromString(strings.TrimSpace(s))
}
