package normalizer

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/faturai-dev/faturai/internal/model"
)

func interTable(rows ...[]string) model.RawTable {
	return model.RawTable{
		File:    "extrato.csv",
		Columns: []string{"Data", "Lançamento", "Categoria", "Tipo", "Valor"},
		Rows:    rows,
	}
}

func TestInterNormalize(t *testing.T) {
	table := interTable(
		[]string{"05/06/2025", "DROGARIA SAO JOAO", "Drogaria", "Compra parcelada 2/3", "R$ 120,00"},
		[]string{"07/06/2025", "SUPERMERCADO NACIONAL", "Supermercado", "Compra a vista", "R$ 1.234,56"},
	)

	n := &InterNormalizer{}
	txns, err := n.Normalize(table)
	require.NoError(t, err)
	require.Len(t, txns, 2)

	first := txns[0]
	assert.Equal(t, "DROGARIA SAO JOAO", first.Title)
	assert.Equal(t, "120.00", first.Amount.StringFixed(2))
	assert.Equal(t, time.Date(2025, time.June, 5, 0, 0, 0, 0, time.UTC), first.Date)
	assert.Equal(t, model.CategoryFarmacia, first.Category)
	assert.Equal(t, "Compra parcelada 2/3", first.InstallmentHint)

	// Thousands separator stripped, decimal comma converted.
	assert.Equal(t, "1234.56", txns[1].Amount.StringFixed(2))
	assert.Equal(t, model.CategoryMercado, txns[1].Category)
}

func TestInterNormalize_DirtyHeaders(t *testing.T) {
	table := model.RawTable{
		File:    "extrato.csv",
		Columns: []string{"\ufeff\"Data\"", " Lançamento ", "Categoria", "Tipo", "\"Valor\""},
		Rows: [][]string{
			{"05/06/2025", "UBER TRIP", "Transporte", "Compra a vista", "R$ 32,90"},
		},
	}

	n := &InterNormalizer{}
	txns, err := n.Normalize(table)
	require.NoError(t, err)
	require.Len(t, txns, 1)
	assert.Equal(t, model.CategoryMobilidade, txns[0].Category)
}

func TestInterNormalize_ExcludesAutoDebitPayment(t *testing.T) {
	table := interTable(
		[]string{"10/06/2025", "PAGTO DEBITO AUTOMATICO", "Pagamentos", "Pagamento", "-R$ 2.500,00"},
		[]string{"12/06/2025", "UBER TRIP", "Transporte", "Compra a vista", "R$ 32,90"},
	)

	n := &InterNormalizer{}
	txns, err := n.Normalize(table)
	require.NoError(t, err)
	require.Len(t, txns, 1)
	assert.Equal(t, "UBER TRIP", txns[0].Title)
}

func TestInterNormalize_SkipsUnparseableDates(t *testing.T) {
	// Summary lines interleaved by the export have no valid date; they are
	// coerced out instead of failing the batch.
	table := interTable(
		[]string{"05/06/2025", "DROGARIA SAO JOAO", "Drogaria", "Compra a vista", "R$ 10,00"},
		[]string{"Total", "", "", "", "R$ 10,00"},
	)

	n := &InterNormalizer{}
	txns, err := n.Normalize(table)
	require.NoError(t, err)
	require.Len(t, txns, 1)
}

func TestInterNormalize_FiltersNonDebits(t *testing.T) {
	table := interTable(
		[]string{"15/06/2025", "ESTORNO COMPRA", "Compras", "Estorno", "-R$ 80,00"},
	)

	n := &InterNormalizer{}
	txns, err := n.Normalize(table)
	require.NoError(t, err)
	assert.Empty(t, txns)
}

func TestInterNormalize_BadAmountAbortsBatch(t *testing.T) {
	table := interTable(
		[]string{"05/06/2025", "LOJA", "Compras", "Compra a vista", "R$ abc"},
	)

	n := &InterNormalizer{}
	_, err := n.Normalize(table)
	require.Error(t, err)

	var perr *ParseError
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, "Valor", perr.Field)
	assert.Equal(t, 1, perr.Row)
}

func TestParseInterAmount(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"R$ 1.234,56", "1234.56"},
		{"R$ 120,00", "120.00"},
		{"-R$ 2.500,00", "-2500.00"},
		{"32,90", "32.90"},
	}
	for _, tt := range tests {
		got, err := parseInterAmount(tt.in)
		require.NoError(t, err, "input %q", tt.in)
		assert.Equal(t, tt.want, got.StringFixed(2), "input %q", tt.in)
	}
}
