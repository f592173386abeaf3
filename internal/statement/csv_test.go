package statement

import (
	"bytes"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/faturai-dev/faturai/internal/model"
)

func TestReadRawTable_CommaSeparated(t *testing.T) {
	data, err := os.ReadFile("../../testdata/nubank.csv")
	require.NoError(t, err)

	table, err := ReadRawTable("nubank.csv", bytes.NewReader(data))
	require.NoError(t, err)

	assert.Equal(t, "nubank.csv", table.File)
	assert.Equal(t, []string{"date", "title", "amount"}, table.Columns)
	require.Len(t, table.Rows, 6)
	assert.Equal(t, "AMAZON MARKETPLACE 2/4", table.Rows[0][1])
}

func TestReadRawTable_SemicolonSeparated(t *testing.T) {
	data, err := os.ReadFile("../../testdata/inter.csv")
	require.NoError(t, err)

	table, err := ReadRawTable("inter.csv", bytes.NewReader(data))
	require.NoError(t, err)

	require.Len(t, table.Columns, 5)
	// The BOM sticks to the first header cell; cleanup is the
	// normalizer's job, the reader hands cells through verbatim.
	assert.Contains(t, table.Columns[0], "Data")
	assert.Equal(t, "Lançamento", table.Columns[1])
	require.Len(t, table.Rows, 6)
	assert.Equal(t, "DROGARIA SAO JOAO", table.Rows[0][1])
}

func TestReadRawTable_PadsShortRows(t *testing.T) {
	in := "a;b;c\n1;2;3\nTotal\n"
	table, err := ReadRawTable("x.csv", strings.NewReader(in))
	require.NoError(t, err)

	require.Len(t, table.Rows, 2)
	assert.Equal(t, []string{"Total", "", ""}, table.Rows[1])
}

func TestReadRawTable_EmptyFile(t *testing.T) {
	_, err := ReadRawTable("x.csv", strings.NewReader(""))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "empty file")
}

func TestWriteExpanded(t *testing.T) {
	rows := []model.ExpandedRow{
		{
			CanonicalTransaction: model.CanonicalTransaction{
				Title:    "AMAZON MARKETPLACE 2/4",
				Amount:   decimal.NewFromInt(100),
				Category: model.CategoryLazer,
			},
			DueDate: time.Date(2025, time.July, 8, 0, 0, 0, 0, time.UTC),
			Label:   "2/4",
		},
		{
			CanonicalTransaction: model.CanonicalTransaction{
				Title:    "PADARIA",
				Amount:   decimal.RequireFromString("15.50"),
				Category: model.CategoryOutros,
			},
			DueDate: time.Date(2025, time.July, 8, 0, 0, 0, 0, time.UTC),
		},
	}

	var buf bytes.Buffer
	err := WriteExpanded(&buf, rows)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, Header, lines[0])
	assert.Equal(t, "2025-07-08,AMAZON MARKETPLACE 2/4,Lazer,100.00,2/4", lines[1])
	assert.Equal(t, "2025-07-08,PADARIA,Outros,15.50,", lines[2])
}
