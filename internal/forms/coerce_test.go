package forms_test

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/aknur/careadmin/internal/forms"
)

func TestCoercers_EmptyInputIsNil(t *testing.T) {
	coercers := map[string]forms.Coercer{
		"Numeric": forms.Numeric,
		"Date":    forms.Date,
		"Time":    forms.Time,
		"Int":     forms.Int,
		"Bool":    forms.Bool,
	}
	for name, c := range coercers {
		v, err := c("")
		if err != nil {
			t.Fatalf("%s(\"\") returned error: %v", name, err)
		}
		if v != nil {
			t.Fatalf("%s(\"\") = %v, want nil", name, v)
		}
	}
}

func TestNumeric(t *testing.T) {
	v, err := forms.Numeric("12.50")
	if err != nil {
		t.Fatalf("Numeric returned error: %v", err)
	}
	d, ok := v.(decimal.Decimal)
	if !ok {
		t.Fatalf("Numeric returned %T, want decimal.Decimal", v)
	}
	if d.StringFixed(2) != "12.50" {
		t.Fatalf("Numeric(\"12.50\") = %s, want 12.50", d.StringFixed(2))
	}

	if _, err := forms.Numeric("abc"); err == nil {
		t.Fatalf("expected error for non-numeric input")
	} else if err.Error() != "Expecting numeric value" {
		t.Fatalf("unexpected error message: %q", err.Error())
	}
}

func TestDate(t *testing.T) {
	v, err := forms.Date("2025-03-09")
	if err != nil {
		t.Fatalf("Date returned error: %v", err)
	}
	if v != "2025-03-09" {
		t.Fatalf("Date = %v, want 2025-03-09", v)
	}

	for _, bad := range []string{"09-03-2025", "2025/03/09", "yesterday"} {
		if _, err := forms.Date(bad); err == nil {
			t.Fatalf("expected error for %q", bad)
		} else if err.Error() != "Invalid date format. Use YYYY-MM-DD" {
			t.Fatalf("unexpected error message: %q", err.Error())
		}
	}
}

func TestTime(t *testing.T) {
	v, err := forms.Time("09:30")
	if err != nil {
		t.Fatalf("Time returned error: %v", err)
	}
	if v != "09:30" {
		t.Fatalf("Time = %v, want 09:30", v)
	}

	if _, err := forms.Time("9:30pm"); err == nil {
		t.Fatalf("expected error for invalid time")
	} else if err.Error() != "Invalid time format. Use HH:MM" {
		t.Fatalf("unexpected error message: %q", err.Error())
	}
}

func TestInt(t *testing.T) {
	v, err := forms.Int("42")
	if err != nil {
		t.Fatalf("Int returned error: %v", err)
	}
	if v != int64(42) {
		t.Fatalf("Int(\"42\") = %v, want 42", v)
	}

	if _, err := forms.Int("4.2"); err == nil {
		t.Fatalf("expected error for non-integer input")
	} else if err.Error() != "Expecting integer value" {
		t.Fatalf("unexpected error message: %q", err.Error())
	}
}

func TestBool_Leniency(t *testing.T) {
	truthy := []string{"true", "True", "1"}
	for _, raw := range truthy {
		v, err := forms.Bool(raw)
		if err != nil {
			t.Fatalf("Bool(%q) returned error: %v", raw, err)
		}
		if v != true {
			t.Fatalf("Bool(%q) = %v, want true", raw, v)
		}
	}

	// Any other non-empty input is false, never an error.
	falsy := []string{"false", "False", "0", "banana", "TRUE"}
	for _, raw := range falsy {
		v, err := forms.Bool(raw)
		if err != nil {
			t.Fatalf("Bool(%q) returned error: %v", raw, err)
		}
		if v != false {
			t.Fatalf("Bool(%q) = %v, want false", raw, v)
		}
	}
}
