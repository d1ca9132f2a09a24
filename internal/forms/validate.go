package forms

import (
	"net/url"

	"github.com/shopspring/decimal"

	"github.com/aknur/careadmin/pkg/models"
)

// Values holds the typed result of a successful validation, keyed by field
// name. A nil entry means the field was submitted empty and is stored as
// null.
type Values map[string]any

// String returns the value for key as a string, or "" when absent or nil.
func (v Values) String(key string) string {
	if s, ok := v[key].(string); ok {
		return s
	}
	return ""
}

// NullString returns the value for key as a nullable string.
func (v Values) NullString(key string) *string {
	if s, ok := v[key].(string); ok {
		return &s
	}
	return nil
}

// Int64 returns the value for key as an int64, or 0 when absent or nil.
func (v Values) Int64(key string) int64 {
	if n, ok := v[key].(int64); ok {
		return n
	}
	return 0
}

// Bool returns the value for key as a bool, or false when absent or nil.
func (v Values) Bool(key string) bool {
	if b, ok := v[key].(bool); ok {
		return b
	}
	return false
}

// Decimal returns the value for key as a decimal, or zero when absent or nil.
func (v Values) Decimal(key string) decimal.Decimal {
	if d, ok := v[key].(decimal.Decimal); ok {
		return d
	}
	return decimal.Zero
}

// Validate applies the required/nullable checks and coercion of every field
// visible in mode. The returned error map is keyed by field name; any entry
// means the submission must be rejected and re-rendered.
func Validate(entity models.Entity, raw url.Values, mode Mode) (Values, map[string]string) {
	data := Values{}
	errs := map[string]string{}

	for _, f := range FieldsFor(entity) {
		if !f.visibleIn(mode) {
			continue
		}

		rawValue := raw.Get(f.Name)

		if f.Required && rawValue == "" {
			errs[f.Name] = "This field is required."
			continue
		}
		if rawValue == "" {
			if f.NotEmpty {
				errs[f.Name] = "This field cannot be empty."
			} else {
				data[f.Name] = nil
			}
			continue
		}

		if f.Coerce == nil {
			data[f.Name] = rawValue
			continue
		}
		typed, err := f.Coerce(rawValue)
		if err != nil {
			errs[f.Name] = err.Error()
			continue
		}
		data[f.Name] = typed
	}

	return data, errs
}
