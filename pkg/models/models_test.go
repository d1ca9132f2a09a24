package models_test

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/aknur/careadmin/pkg/models"
)

func TestParseEntity(t *testing.T) {
	for _, e := range models.Entities() {
		got, err := models.ParseEntity(string(e))
		if err != nil {
			t.Fatalf("ParseEntity(%s) returned error: %v", e, err)
		}
		if got != e {
			t.Fatalf("ParseEntity(%s) = %s", e, got)
		}
	}

	if _, err := models.ParseEntity("bogus"); !errors.Is(err, models.ErrUnknownEntity) {
		t.Fatalf("ParseEntity(bogus) error = %v, want ErrUnknownEntity", err)
	}
}

func TestEntityLabelsAndKeys(t *testing.T) {
	if got := models.EntityUserAccount.Label(); got != "Users" {
		t.Fatalf("user_account label = %q, want Users", got)
	}
	if got := models.EntityJobApplication.Label(); got != "Job Applications" {
		t.Fatalf("job_application label = %q", got)
	}
	if got := models.EntityCaregiver.PrimaryKey(); got != "caregiver_user_id" {
		t.Fatalf("caregiver pk = %q", got)
	}
	if got := models.EntityAppointment.PrimaryKey(); got != "appointment_id" {
		t.Fatalf("appointment pk = %q", got)
	}
}

func TestDisplayName(t *testing.T) {
	u := &models.UserAccount{UserID: 7, GivenName: "Arman", Surname: "Armanov"}
	if got := u.DisplayName(); got != "Arman Armanov (ID: 7)" {
		t.Fatalf("DisplayName = %q", got)
	}
}

func TestFullAddress_SkipsEmptyParts(t *testing.T) {
	street := "Kabanbay Batyr"
	town := "Astana"
	empty := ""
	a := &models.Address{HouseNumber: &empty, Street: &street, Town: &town}
	if got := a.FullAddress(); got != "Kabanbay Batyr, Astana" {
		t.Fatalf("FullAddress = %q", got)
	}
}

func TestTotalCost(t *testing.T) {
	a := &models.Appointment{WorkHours: decimal.RequireFromString("3.00")}
	rate := decimal.RequireFromString("20.00")
	if got := a.TotalCost(rate).StringFixed(2); got != "60.00" {
		t.Fatalf("TotalCost = %s, want 60.00", got)
	}
}
