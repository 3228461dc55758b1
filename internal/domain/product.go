package domain

import (
	"encoding/json"
	"reflect"
	"time"
)

// Product is a catalogue entry with a running stock level. Records written
// before stock and HSN tracking existed decode with zero stock, zero rate and
// an empty HSN code.
type Product struct {
	ID               string    `json:"id"`
	Name             string    `json:"name" validate:"required"`
	StockQuantity    float64   `json:"stock_quantity"`
	DefaultRatePerKg float64   `json:"default_rate_per_kg"`
	HSNCode          string    `json:"hsn_code"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
	Extras           Extras    `json:"-"`
}

var (
	ProductFields = []string{"name"}
	// ProductPatchFields are the only attributes an update may change.
	ProductPatchFields = []string{"name", "hsn_code", "stock_quantity", "default_rate_per_kg"}
)

func (p *Product) Validate() error {
	return validateStruct(p)
}

// AdjustStock adds delta to the stock level. The result may go below zero:
// overselling is recorded, not blocked.
func (p *Product) AdjustStock(delta float64) {
	p.StockQuantity += delta
	p.UpdatedAt = time.Now().UTC()
}

func (p Product) Projected() Product {
	p.Extras = nil
	return p
}

// MarshalJSON implements json.Marshaler
func (p Product) MarshalJSON() ([]byte, error) {
	type product Product
	return marshalWithExtras(product(p), p.Extras)
}

// UnmarshalJSON implements json.Unmarshaler
func (p *Product) UnmarshalJSON(data []byte) error {
	type product Product
	var v product
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	extras, err := collectExtras(data, reflect.TypeOf(v))
	if err != nil {
		return err
	}
	*p = Product(v)
	p.Extras = extras
	return nil
}
