package domain

import (
	"encoding/json"
	"reflect"
	"time"
)

// GSTINLength is the expected length of a tax identifier. Other lengths are
// accepted and only logged.
const GSTINLength = 15

// Invoice is a billing document. BuyerID links it to a Buyer; BuyerName is a
// display copy taken when the invoice was written.
type Invoice struct {
	ID          string    `json:"id"`
	InvoiceNo   string    `json:"invoice_no"`
	Date        string    `json:"date" validate:"datetime=2006-01-02"`
	BuyerID     string    `json:"buyer_id,omitempty" validate:"omitempty,uuid"`
	BuyerName   string    `json:"buyer_name"`
	Address     string    `json:"address"`
	GSTIN       string    `json:"gstin"`
	Items       []Item    `json:"items"`
	Subtotal    float64   `json:"subtotal"`
	CGST        float64   `json:"cgst"`
	SGST        float64   `json:"sgst"`
	TotalAmount float64   `json:"total_amount"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
	Extras      Extras    `json:"-"`
}

// Item is one invoice line. Numeric attributes are Quantities so that stored
// lines keep the representation they were written with.
type Item struct {
	ProductName string   `json:"product_name,omitempty"`
	Description string   `json:"description,omitempty"`
	HSNCode     string   `json:"hsn_code,omitempty"`
	PackingQty  Quantity `json:"packing_qty,omitempty"`
	Units       Quantity `json:"units,omitempty"`
	NoOfUnits   Quantity `json:"no_of_units,omitempty"`
	RatePerKg   Quantity `json:"rate_per_kg,omitempty"`
	TotalQty    Quantity `json:"total_qty,omitempty"`
	Amount      Quantity `json:"amount,omitempty"`
}

// Required attributes for each way of creating an invoice.
var (
	PassthroughInvoiceFields = []string{
		"invoice_no", "date", "buyer_name", "address", "items", "subtotal", "cgst", "sgst", "total_amount",
	}
	ComputedInvoiceFields = []string{"invoice_no", "date", "buyer_name", "address", "items"}
)

// unitCount returns units, falling back to no_of_units.
func (it Item) unitCount() Quantity {
	if it.Units.IsSet() {
		return it.Units
	}
	return it.NoOfUnits
}

// Validate checks the invoice date and the buyer reference.
func (inv *Invoice) Validate() error {
	return validateStruct(inv)
}

// HasValidGSTIN reports whether the tax identifier is empty or well-sized.
func (inv *Invoice) HasValidGSTIN() bool {
	return inv.GSTIN == "" || len(inv.GSTIN) == GSTINLength
}

// ApplyTotals replaces the lines and totals with calculator output.
func (inv *Invoice) ApplyTotals(t Totals) {
	inv.Items = t.Items
	inv.Subtotal = t.Subtotal
	inv.CGST = t.CGST
	inv.SGST = t.SGST
	inv.TotalAmount = t.TotalAmount
}

// Projected drops attributes outside the invoice schema.
func (inv Invoice) Projected() Invoice {
	inv.Extras = nil
	if inv.Items == nil {
		inv.Items = []Item{}
	}
	return inv
}

// MarshalJSON implements json.Marshaler
func (inv Invoice) MarshalJSON() ([]byte, error) {
	type invoice Invoice
	return marshalWithExtras(invoice(inv), inv.Extras)
}

// UnmarshalJSON implements json.Unmarshaler
func (inv *Invoice) UnmarshalJSON(b []byte) error {
	type invoice Invoice
	var v invoice
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	extras, err := collectExtras(b, reflect.TypeOf(v))
	if err != nil {
		return err
	}
	*inv = Invoice(v)
	inv.Extras = extras
	return nil
}
