package internal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rm-hull/prop-firms-api/internal/models"
)

func TestParseCSV(t *testing.T) {
	t.Run("Empty input", func(t *testing.T) {
		assert.Empty(t, ParseCSV(""))
		assert.Empty(t, ParseCSV("   \n\t\n"))
		assert.NotNil(t, ParseCSV(""))
	})

	t.Run("Header only", func(t *testing.T) {
		assert.Empty(t, ParseCSV("name,key\n"))
	})

	t.Run("Empty header cells", func(t *testing.T) {
		assert.Empty(t, ParseCSV(" , ,\nApex,apex\n"))
	})

	t.Run("Row count matches non-blank data lines", func(t *testing.T) {
		text := "name,key\r\nApex,apex\r\n\r\n   \r\nTopstep,topstep\nTradeify,tradeify"
		rows := ParseCSV(text)
		require.Len(t, rows, 3)
		assert.Equal(t, models.Row{"name": "Apex", "key": "apex"}, rows[0])
		assert.Equal(t, "tradeify", rows[2]["key"])
	})

	t.Run("Byte order mark is stripped", func(t *testing.T) {
		rows := ParseCSV("\ufeffname,key\nApex,apex\n")
		require.Len(t, rows, 1)
		assert.Equal(t, "Apex", rows[0]["name"])
	})

	t.Run("Header cells are trimmed", func(t *testing.T) {
		rows := ParseCSV(" Firm Name , payout_split_pct \nApex, 90 \n")
		require.Len(t, rows, 1)
		assert.Equal(t, "Apex", rows[0]["Firm Name"])
		assert.Equal(t, "90", rows[0]["payout_split_pct"])
	})

	t.Run("Quoted fields", func(t *testing.T) {
		rows := ParseCSV("name,platforms,notes\n\"Apex, LLC\",\"Rithmic, NinjaTrader\",\"say \"\"hi\"\"\"\n")
		require.Len(t, rows, 1)
		assert.Equal(t, "Apex, LLC", rows[0]["name"])
		assert.Equal(t, "Rithmic, NinjaTrader", rows[0]["platforms"])
		assert.Equal(t, `say "hi"`, rows[0]["notes"])
	})

	t.Run("Quoted header is split naively", func(t *testing.T) {
		result := Parse("\"a,b\",c\n1,2,3\n")
		assert.Equal(t, []string{`"a`, `b"`, "c"}, result.Columns)
	})
}

func TestParseColumnMismatch(t *testing.T) {
	result := Parse("a,b,c\n1\n1,2,3,4\n")
	require.Len(t, result.Rows, 2)

	assert.Equal(t, models.Row{"a": "1", "b": "", "c": ""}, result.Rows[0])
	assert.Equal(t, models.Row{"a": "1", "b": "2", "c": "3"}, result.Rows[1])

	require.Len(t, result.Errors, 2)
	assert.Equal(t, 1, result.Errors[0].Row)
	assert.Equal(t, models.TooFewFields, result.Errors[0].Code)
	assert.Equal(t, 2, result.Errors[1].Row)
	assert.Equal(t, models.TooManyFields, result.Errors[1].Code)
}
