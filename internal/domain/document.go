package domain

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	apperrors "billing-service/pkg/errors"
)

// Extras holds attributes a record was written with that are not part of its
// schema. They are stored and returned by single-record reads.
type Extras map[string]json.RawMessage

// Attributes managed by the store; a client can never set them.
var protectedAttributes = map[string]struct{}{
	"id":         {},
	"_id":        {},
	"created_at": {},
	"updated_at": {},
}

var schemaCache sync.Map // reflect.Type -> map[string]struct{}

// schemaFields returns the JSON attribute names declared by struct type t.
func schemaFields(t reflect.Type) map[string]struct{} {
	if cached, ok := schemaCache.Load(t); ok {
		return cached.(map[string]struct{})
	}
	fields := make(map[string]struct{}, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		if name := jsonName(t.Field(i)); name != "" {
			fields[name] = struct{}{}
		}
	}
	schemaCache.Store(t, fields)
	return fields
}

func jsonName(f reflect.StructField) string {
	name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	if name == "" {
		return f.Name
	}
	return name
}

func marshalWithExtras(v interface{}, extras Extras) ([]byte, error) {
	b, err := json.Marshal(v)
	if err != nil || len(extras) == 0 {
		return b, err
	}
	var attrs map[string]json.RawMessage
	if err := json.Unmarshal(b, &attrs); err != nil {
		return nil, err
	}
	for k, raw := range extras {
		if _, ok := attrs[k]; !ok {
			attrs[k] = raw
		}
	}
	return json.Marshal(attrs)
}

func collectExtras(b []byte, schema reflect.Type) (Extras, error) {
	var attrs map[string]json.RawMessage
	if err := json.Unmarshal(b, &attrs); err != nil {
		return nil, err
	}
	known := schemaFields(schema)
	var extras Extras
	for k, raw := range attrs {
		if _, ok := known[k]; ok {
			continue
		}
		if _, ok := protectedAttributes[k]; ok {
			continue
		}
		if extras == nil {
			extras = make(Extras)
		}
		extras[k] = raw
	}
	return extras, nil
}

// DecodeObject parses a request body that must be a JSON object.
func DecodeObject(body []byte) (map[string]json.RawMessage, error) {
	var attrs map[string]json.RawMessage
	if err := json.Unmarshal(body, &attrs); err != nil || attrs == nil {
		return nil, apperrors.NewValidationError("request body must be a JSON object")
	}
	return attrs, nil
}

// MissingFields returns, in order, every field that is absent or null.
func MissingFields(attrs map[string]json.RawMessage, required ...string) []string {
	var missing []string
	for _, field := range required {
		raw, ok := attrs[field]
		if !ok || bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
			missing = append(missing, field)
		}
	}
	return missing
}

// Decode fills out from attrs, reporting type mismatches as validation errors.
func Decode(attrs map[string]json.RawMessage, out interface{}) error {
	b, err := json.Marshal(attrs)
	if err != nil {
		return fmt.Errorf("encode attributes: %w", err)
	}
	if err := json.Unmarshal(b, out); err != nil {
		return decodeError(err)
	}
	return nil
}

// Merge overlays patch on the stored form of current and decodes the result
// into out. Attributes missing from patch keep their current value.
func Merge(current interface{}, patch map[string]json.RawMessage, out interface{}) error {
	b, err := json.Marshal(current)
	if err != nil {
		return fmt.Errorf("encode current document: %w", err)
	}
	var attrs map[string]json.RawMessage
	if err := json.Unmarshal(b, &attrs); err != nil {
		return fmt.Errorf("decode current document: %w", err)
	}
	for k, raw := range Writable(patch) {
		attrs[k] = raw
	}
	return Decode(attrs, out)
}

// Writable returns the attributes of patch a client may set.
func Writable(patch map[string]json.RawMessage) map[string]json.RawMessage {
	out := make(map[string]json.RawMessage, len(patch))
	for k, raw := range patch {
		if _, ok := protectedAttributes[k]; ok {
			continue
		}
		out[k] = raw
	}
	return out
}

// Only keeps the attributes of patch named in allowed.
func Only(patch map[string]json.RawMessage, allowed ...string) map[string]json.RawMessage {
	out := make(map[string]json.RawMessage, len(allowed))
	for _, k := range allowed {
		if raw, ok := patch[k]; ok {
			out[k] = raw
		}
	}
	return out
}

func decodeError(err error) error {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		return apperrors.NewValidationError(
			fmt.Sprintf("invalid value for %s: expected %s", typeErr.Field, typeErr.Type), typeErr.Field)
	}
	return apperrors.NewValidationError("malformed document: " + err.Error())
}
