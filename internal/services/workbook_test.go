package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLooksLikeSpreadsheet(t *testing.T) {
	assert.True(t, LooksLikeSpreadsheet("leads.xlsx", ""))
	assert.True(t, LooksLikeSpreadsheet("LEADS.XLSX", "text/plain"))
	assert.True(t, LooksLikeSpreadsheet("leads.bin",
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"))
	assert.False(t, LooksLikeSpreadsheet("leads.txt", "text/plain"))
	assert.False(t, LooksLikeSpreadsheet("leads", ""))
}

func TestParseWorkbookDropsEmptyRowsKeepsNumbers(t *testing.T) {
	path := writeWorkbook(t, [][]interface{}{
		{"phone", "email"},
		{"9034955557", "a@example.com"},
		{"", ""},
		{"9812345670", ""},
	})
	rows, err := parseWorkbook(path)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "9034955557", rows[0].cells["phone"])
	assert.Equal(t, "9812345670", rows[1].cells["phone"])

	// dropped rows leave a gap, they do not renumber what follows
	assert.Equal(t, 2, rows[0].num)
	assert.Equal(t, 4, rows[1].num)
}
