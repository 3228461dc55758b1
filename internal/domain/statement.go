package domain

import (
	"sort"

	"github.com/shopspring/decimal"
)

// StatementFilter bounds a statement by invoice date, inclusive on both ends.
// A nil bound is open.
type StatementFilter struct {
	StartDate *string `json:"start_date"`
	EndDate   *string `json:"end_date"`
}

// NewStatementFilter validates the optional bounds. Empty strings mean "not supplied".
func NewStatementFilter(startDate, endDate string) (StatementFilter, error) {
	var f StatementFilter
	if startDate != "" {
		if _, err := ParseDate("start_date", startDate); err != nil {
			return StatementFilter{}, err
		}
		f.StartDate = &startDate
	}
	if endDate != "" {
		if _, err := ParseDate("end_date", endDate); err != nil {
			return StatementFilter{}, err
		}
		f.EndDate = &endDate
	}
	return f, nil
}

// StatementInvoice is the part of an invoice a statement lists.
type StatementInvoice struct {
	ID          string  `json:"id"`
	InvoiceNo   string  `json:"invoice_no"`
	Date        string  `json:"date"`
	Items       []Item  `json:"items"`
	TotalAmount float64 `json:"total_amount"`
}

// Statement summarizes a buyer's invoices.
type Statement struct {
	Buyer        string             `json:"buyer"`
	BuyerID      string             `json:"buyer_id"`
	BuyerGSTIN   string             `json:"buyer_gstin"`
	InvoiceCount int                `json:"invoice_count"`
	TotalQty     float64            `json:"total_qty"`
	TotalAmount  float64            `json:"total_amount"`
	Invoices     []StatementInvoice `json:"invoices"`
	Filter       StatementFilter    `json:"filter"`
}

// BuildStatement reduces invoices into a statement for buyer. Line quantities
// that cannot be read as numbers are skipped, not reported.
func BuildStatement(buyer Buyer, invoices []Invoice, filter StatementFilter) Statement {
	st := Statement{
		Buyer:      buyer.Name,
		BuyerID:    buyer.ID,
		BuyerGSTIN: buyer.GSTIN,
		Invoices:   make([]StatementInvoice, 0, len(invoices)),
		Filter:     filter,
	}

	sorted := make([]Invoice, len(invoices))
	copy(sorted, invoices)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Date < sorted[j].Date })

	totalQty := decimal.Zero
	totalAmount := decimal.Zero
	for _, inv := range sorted {
		totalAmount = totalAmount.Add(decimal.NewFromFloat(inv.TotalAmount))
		for _, item := range inv.Items {
			if qty, ok := item.TotalQty.Decimal(); ok {
				totalQty = totalQty.Add(qty)
			}
		}

		items := inv.Items
		if items == nil {
			items = []Item{}
		}
		st.Invoices = append(st.Invoices, StatementInvoice{
			ID:          inv.ID,
			InvoiceNo:   inv.InvoiceNo,
			Date:        inv.Date,
			Items:       items,
			TotalAmount: inv.TotalAmount,
		})
	}

	st.InvoiceCount = len(st.Invoices)
	st.TotalQty = totalQty.InexactFloat64()
	st.TotalAmount = totalAmount.InexactFloat64()
	return st
}
