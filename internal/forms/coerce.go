package forms

import (
	"errors"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
)

// Coercer converts raw form input into a typed value. Empty input always
// maps to nil with no error; the required check happens before coercion.
type Coercer func(raw string) (any, error)

var (
	errNumeric = errors.New("Expecting numeric value")
	errDate    = errors.New("Invalid date format. Use YYYY-MM-DD")
	errTime    = errors.New("Invalid time format. Use HH:MM")
	errInt     = errors.New("Expecting integer value")
)

// Numeric parses a fixed-point decimal such as an hourly rate or work hours.
func Numeric(raw string) (any, error) {
	if raw == "" {
		return nil, nil
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return nil, errNumeric
	}
	return d, nil
}

// Date validates YYYY-MM-DD input and returns it in canonical form.
func Date(raw string) (any, error) {
	if raw == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return nil, errDate
	}
	return t.Format("2006-01-02"), nil
}

// Time validates HH:MM input and returns it in canonical form.
func Time(raw string) (any, error) {
	if raw == "" {
		return nil, nil
	}
	t, err := time.Parse("15:04", raw)
	if err != nil {
		return nil, errTime
	}
	return t.Format("15:04"), nil
}

// Int parses an integer, typically a foreign-key id from a select.
func Int(raw string) (any, error) {
	if raw == "" {
		return nil, nil
	}
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil, errInt
	}
	return n, nil
}

// Bool treats "true", "True" and "1" as true and any other non-empty input
// as false. The leniency is kept on purpose: the only boolean field is fed
// by a select whose options submit "True" or "False".
func Bool(raw string) (any, error) {
	if raw == "" {
		return nil, nil
	}
	switch raw {
	case "true", "True", "1":
		return true, nil
	}
	return false, nil
}
