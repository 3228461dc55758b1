package domain

import (
	"encoding/json"
	"reflect"
	"time"
)

// Buyer is a customer invoices are issued to.
type Buyer struct {
	ID        string    `json:"id"`
	Name      string    `json:"name" validate:"required"`
	Address   string    `json:"address" validate:"required"`
	GSTIN     string    `json:"gstin"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	Extras    Extras    `json:"-"`
}

var BuyerFields = []string{"name", "address"}

func (b *Buyer) Validate() error {
	return validateStruct(b)
}

func (b Buyer) Projected() Buyer {
	b.Extras = nil
	return b
}

// MarshalJSON implements json.Marshaler
func (b Buyer) MarshalJSON() ([]byte, error) {
	type buyer Buyer
	return marshalWithExtras(buyer(b), b.Extras)
}

// UnmarshalJSON implements json.Unmarshaler
func (b *Buyer) UnmarshalJSON(data []byte) error {
	type buyer Buyer
	var v buyer
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	extras, err := collectExtras(data, reflect.TypeOf(v))
	if err != nil {
		return err
	}
	*b = Buyer(v)
	b.Extras = extras
	return nil
}
