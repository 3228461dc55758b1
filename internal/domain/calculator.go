package domain

import (
	"fmt"

	apperrors "billing-service/pkg/errors"

	"github.com/shopspring/decimal"
)

// Central and state GST are each charged at 9% of the subtotal.
var (
	CGSTRate = decimal.RequireFromString("0.09")
	SGSTRate = decimal.RequireFromString("0.09")
)

// Totals is the calculator output for a list of lines.
type Totals struct {
	Items       []Item  `json:"items"`
	Subtotal    float64 `json:"subtotal"`
	CGST        float64 `json:"cgst"`
	SGST        float64 `json:"sgst"`
	TotalAmount float64 `json:"total_amount"`
}

// CalculateTotals enriches each line with total_qty = packing_qty * units and
// amount = total_qty * rate_per_kg, then derives subtotal, both taxes and the
// grand total. An empty list is rejected; every missing or non-numeric line
// attribute is reported.
func CalculateTotals(items []Item) (Totals, error) {
	if len(items) == 0 {
		return Totals{}, apperrors.NewValidationError("items must contain at least one line", "items")
	}

	var invalid []string
	enriched := make([]Item, len(items))
	subtotal := decimal.Zero

	for i, item := range items {
		packingQty, okPacking := item.PackingQty.Decimal()
		units, okUnits := item.unitCount().Decimal()
		rate, okRate := item.RatePerKg.Decimal()

		if !okPacking {
			invalid = append(invalid, fmt.Sprintf("items[%d].packing_qty", i))
		}
		if !okUnits {
			invalid = append(invalid, fmt.Sprintf("items[%d].units", i))
		}
		if !okRate {
			invalid = append(invalid, fmt.Sprintf("items[%d].rate_per_kg", i))
		}
		if !okPacking || !okUnits || !okRate {
			continue
		}

		totalQty := packingQty.Mul(units)
		amount := totalQty.Mul(rate)
		subtotal = subtotal.Add(amount)

		item.Units = item.unitCount()
		item.TotalQty = quantityFromDecimal(totalQty)
		item.Amount = quantityFromDecimal(amount)
		enriched[i] = item
	}

	if len(invalid) > 0 {
		return Totals{}, apperrors.NewValidationError("items have missing or non-numeric fields", invalid...)
	}

	cgst := subtotal.Mul(CGSTRate)
	sgst := subtotal.Mul(SGSTRate)

	return Totals{
		Items:       enriched,
		Subtotal:    subtotal.InexactFloat64(),
		CGST:        cgst.InexactFloat64(),
		SGST:        sgst.InexactFloat64(),
		TotalAmount: subtotal.Add(cgst).Add(sgst).InexactFloat64(),
	}, nil
}
