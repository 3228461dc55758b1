package domain

import (
	"errors"
	"testing"

	apperrors "billing-service/pkg/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func line(packingQty, units, rate string) Item {
	return Item{
		PackingQty: Quantity(packingQty),
		Units:      Quantity(units),
		RatePerKg:  Quantity(rate),
	}
}

func TestCalculateTotals_SingleLine(t *testing.T) {
	totals, err := CalculateTotals([]Item{line("10", "2", "5")})

	require.NoError(t, err)
	require.Len(t, totals.Items, 1)

	qty, _ := totals.Items[0].TotalQty.Float()
	amount, _ := totals.Items[0].Amount.Float()
	assert.Equal(t, 20.0, qty)
	assert.Equal(t, 100.0, amount)
	assert.Equal(t, 100.0, totals.Subtotal)
	assert.Equal(t, 9.0, totals.CGST)
	assert.Equal(t, 9.0, totals.SGST)
	assert.Equal(t, 118.0, totals.TotalAmount)
}

func TestCalculateTotals_Invariants(t *testing.T) {
	testCases := []struct {
		name  string
		items []Item
	}{
		{"two lines", []Item{line("25", "4", "82.5"), line("50", "1", "61")}},
		{"fractional", []Item{line("0.5", "3", "19.99")}},
		{"zero rate", []Item{line("10", "10", "0"), line("1", "1", "1")}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			totals, err := CalculateTotals(tc.items)
			require.NoError(t, err)

			sum := 0.0
			for _, item := range totals.Items {
				amount, ok := item.Amount.Float()
				require.True(t, ok)
				sum += amount
			}
			assert.InDelta(t, sum, totals.Subtotal, 1e-9)
			assert.Equal(t, totals.CGST, totals.SGST)
			assert.InDelta(t, 0.09*totals.Subtotal, totals.CGST, 1e-9)
			assert.InDelta(t, totals.Subtotal+totals.CGST+totals.SGST, totals.TotalAmount, 1e-9)
		})
	}
}

func TestCalculateTotals_AcceptsNumericStrings(t *testing.T) {
	totals, err := CalculateTotals([]Item{line(`"10"`, `"2"`, `"5"`)})

	require.NoError(t, err)
	assert.Equal(t, 118.0, totals.TotalAmount)
}

func TestCalculateTotals_NoOfUnitsAlias(t *testing.T) {
	item := Item{PackingQty: Quantity("10"), NoOfUnits: Quantity("2"), RatePerKg: Quantity("5")}

	totals, err := CalculateTotals([]Item{item})

	require.NoError(t, err)
	assert.Equal(t, 100.0, totals.Subtotal)
	assert.Equal(t, "2", string(totals.Items[0].Units))
}

func TestCalculateTotals_EmptyItems(t *testing.T) {
	_, err := CalculateTotals(nil)

	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrValidation))
}

func TestCalculateTotals_ReportsEveryInvalidField(t *testing.T) {
	items := []Item{
		{PackingQty: Quantity("10"), Units: Quantity(`"abc"`)},
		line("1", "1", "null"),
	}

	_, err := CalculateTotals(items)

	var stdErr *apperrors.StandardError
	require.True(t, errors.As(err, &stdErr))
	assert.Equal(t, []string{
		"items[0].units",
		"items[0].rate_per_kg",
		"items[1].rate_per_kg",
	}, stdErr.Fields)
}
