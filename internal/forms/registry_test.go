package forms_test

import (
	"testing"

	"github.com/aknur/careadmin/internal/forms"
	"github.com/aknur/careadmin/pkg/models"
)

func TestFieldsFor_AllEntitiesConfigured(t *testing.T) {
	for _, e := range models.Entities() {
		fields := forms.FieldsFor(e)
		if len(fields) == 0 {
			t.Fatalf("no fields configured for %s", e)
		}
		seen := map[string]bool{}
		for _, f := range fields {
			if f.Name == "" || f.Label == "" {
				t.Fatalf("%s has a field with empty name or label", e)
			}
			if seen[f.Name] {
				t.Fatalf("%s declares %s twice", e, f.Name)
			}
			seen[f.Name] = true
			if f.Kind == forms.KindSelect && f.Choices == forms.ChoicesNone {
				t.Fatalf("%s.%s is a select without a choice source", e, f.Name)
			}
		}
	}
}

func TestFieldsFor_UnknownEntity(t *testing.T) {
	if fields := forms.FieldsFor(models.Entity("bogus")); fields != nil {
		t.Fatalf("expected nil for unknown entity, got %v", fields)
	}
}

func TestFieldsFor_CaregiverShape(t *testing.T) {
	fields := forms.FieldsFor(models.EntityCaregiver)

	wantOrder := []string{
		"caregiver_user_id", "photo", "gender",
		"caregiving_type", "hourly_rate", "commission_applied",
	}
	if len(fields) != len(wantOrder) {
		t.Fatalf("caregiver fields = %d, want %d", len(fields), len(wantOrder))
	}
	for i, name := range wantOrder {
		if fields[i].Name != name {
			t.Fatalf("field %d = %s, want %s", i, fields[i].Name, name)
		}
	}

	rate := fields[4]
	if rate.Step != "0.01" {
		t.Fatalf("hourly_rate step = %q, want 0.01", rate.Step)
	}
	if !rate.Required {
		t.Fatalf("hourly_rate should be required")
	}
}
