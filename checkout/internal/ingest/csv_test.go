package ingest

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRecord(t *testing.T) {
	t.Run("valid row", func(t *testing.T) {
		tx, err := ParseRecord([]string{
			"2026-06-10", "Aged Cheddar Cheese", "2026-06-20", "2", "8.50", "Store", "Cash",
		})
		require.NoError(t, err)
		assert.Equal(t, time.Date(2026, time.June, 10, 0, 0, 0, 0, time.UTC), tx.OccurredOn)
		assert.Equal(t, "Aged Cheddar Cheese", tx.ProductName)
		assert.Equal(t, 2, tx.Quantity)
		assert.Equal(t, 8.50, tx.UnitPrice)
		assert.Equal(t, "Store", tx.Channel)
		assert.Equal(t, "Cash", tx.PaymentMethod)
	})

	t.Run("trims surrounding whitespace", func(t *testing.T) {
		tx, err := ParseRecord([]string{
			" 2026-06-10 ", " Milk ", " 2026-07-10 ", " 1 ", " 3.00 ", " App ", " Visa ",
		})
		require.NoError(t, err)
		assert.Equal(t, "Milk", tx.ProductName)
		assert.Equal(t, "App", tx.Channel)
	})

	cases := []struct {
		name   string
		fields []string
	}{
		{"wrong column count", []string{"2026-06-10", "Milk"}},
		{"bad occurred_on", []string{"10/06/2026", "Milk", "2026-07-10", "1", "3.00", "Store", "Cash"}},
		{"bad expires_on", []string{"2026-06-10", "Milk", "someday", "1", "3.00", "Store", "Cash"}},
		{"non-integer quantity", []string{"2026-06-10", "Milk", "2026-07-10", "1.5", "3.00", "Store", "Cash"}},
		{"negative quantity", []string{"2026-06-10", "Milk", "2026-07-10", "-1", "3.00", "Store", "Cash"}},
		{"bad unit_price", []string{"2026-06-10", "Milk", "2026-07-10", "1", "free", "Store", "Cash"}},
		{"negative unit_price", []string{"2026-06-10", "Milk", "2026-07-10", "1", "-3.00", "Store", "Cash"}},
		{"empty product", []string{"2026-06-10", "  ", "2026-07-10", "1", "3.00", "Store", "Cash"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseRecord(tc.fields)
			assert.Error(t, err)
		})
	}
}

func TestReadAll(t *testing.T) {
	feed := strings.Join([]string{
		"occurred_on,product_name,expires_on,quantity,unit_price,channel,payment_method",
		"2026-06-10,Aged Cheddar Cheese,2026-06-20,2,8.50,Store,Cash",
		"2026-06-10,Milk,not-a-date,1,3.00,Store,Cash",
		"2026-06-11,Red Wine,2027-06-11,12,15.00,App,Visa",
	}, "\n")

	records, skipped, err := ReadAll(strings.NewReader(feed))
	require.NoError(t, err)
	require.Len(t, records, 2)
	require.Len(t, skipped, 1)
	assert.Equal(t, 3, skipped[0].Line)
	assert.Equal(t, "Aged Cheddar Cheese", records[0].ProductName)
	assert.Equal(t, "Red Wine", records[1].ProductName)
}

func TestReadAllWithoutHeader(t *testing.T) {
	feed := "2026-06-10,Milk,2026-07-10,1,3.00,Store,Cash\n"
	records, skipped, err := ReadAll(strings.NewReader(feed))
	require.NoError(t, err)
	assert.Empty(t, skipped)
	require.Len(t, records, 1)
	assert.Equal(t, "Milk", records[0].ProductName)
}
