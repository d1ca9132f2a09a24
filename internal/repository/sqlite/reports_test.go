package sqlite_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/aknur/careadmin/internal/repository/sqlite"
	"github.com/aknur/careadmin/pkg/models"
)

// reportFixture builds two caregivers, one member, a job with one
// application, and confirmed appointments with known hours and rates.
func reportFixture(t *testing.T, s *sqlite.Store) (cgA, cgB, mem, job int64) {
	t.Helper()
	ctx := context.Background()

	cgA = addUser(t, s, "Aigerim", "Satybaldy")
	addCaregiver(t, s, cgA, "20.00")
	cgB = addUser(t, s, "Dana", "Danina")
	addCaregiver(t, s, cgB, "8.00")
	mem = addUser(t, s, "Amina", "Aminova")
	addMember(t, s, mem)
	job = addJob(t, s, mem)

	if _, err := s.CreateJobApplication(ctx, &models.JobApplication{
		CaregiverUserID: cgA, JobID: job, DateApplied: "2025-01-11",
	}); err != nil {
		t.Fatalf("CreateJobApplication returned error: %v", err)
	}

	appts := []models.Appointment{
		{CaregiverUserID: cgA, MemberUserID: mem, AppointmentDate: "2025-02-01", AppointmentTime: "09:00",
			WorkHours: decimal.RequireFromString("3.00"), Status: models.StatusConfirmed},
		{CaregiverUserID: cgA, MemberUserID: mem, AppointmentDate: "2025-02-02", AppointmentTime: "10:00",
			WorkHours: decimal.RequireFromString("2.00"), Status: models.StatusConfirmed},
		{CaregiverUserID: cgB, MemberUserID: mem, AppointmentDate: "2025-02-03", AppointmentTime: "11:00",
			WorkHours: decimal.RequireFromString("1.00"), Status: models.StatusConfirmed},
		{CaregiverUserID: cgB, MemberUserID: mem, AppointmentDate: "2025-02-04", AppointmentTime: "12:00",
			WorkHours: decimal.RequireFromString("8.00"), Status: models.StatusPending},
	}
	for i := range appts {
		if _, err := s.CreateAppointment(ctx, &appts[i]); err != nil {
			t.Fatalf("CreateAppointment %d returned error: %v", i, err)
		}
	}
	return cgA, cgB, mem, job
}

func TestConfirmedPairings(t *testing.T) {
	s := newStore(t)
	reportFixture(t, s)

	pairings, err := s.ConfirmedPairings(context.Background())
	if err != nil {
		t.Fatalf("ConfirmedPairings returned error: %v", err)
	}
	if len(pairings) != 3 {
		t.Fatalf("pairings = %d, want 3 (pending excluded)", len(pairings))
	}
	// Most recent confirmed appointment first.
	if pairings[0].Date != "2025-02-03" {
		t.Fatalf("first pairing date = %s, want 2025-02-03", pairings[0].Date)
	}
	if pairings[0].CaregiverName != "Dana Danina" {
		t.Fatalf("first pairing caregiver = %q", pairings[0].CaregiverName)
	}
}

func TestJobApplicantCounts(t *testing.T) {
	s := newStore(t)
	_, _, mem, job := reportFixture(t, s)

	// A second job with no applicants.
	empty := addJob(t, s, mem)

	counts, err := s.JobApplicantCounts(context.Background())
	if err != nil {
		t.Fatalf("JobApplicantCounts returned error: %v", err)
	}
	if len(counts) != 2 {
		t.Fatalf("counts = %d, want 2", len(counts))
	}
	if counts[0].JobID != job || counts[0].Applicants != 1 {
		t.Fatalf("first row = %+v, want job %d with 1 applicant", counts[0], job)
	}
	if counts[1].JobID != empty || counts[1].Applicants != 0 {
		t.Fatalf("second row = %+v, want job %d with 0 applicants", counts[1], empty)
	}
}

func TestConfirmedHoursByCaregiver(t *testing.T) {
	s := newStore(t)
	cgA, cgB, _, _ := reportFixture(t, s)

	hours, err := s.ConfirmedHoursByCaregiver(context.Background())
	if err != nil {
		t.Fatalf("ConfirmedHoursByCaregiver returned error: %v", err)
	}
	if len(hours) != 2 {
		t.Fatalf("rows = %d, want 2", len(hours))
	}
	if hours[0].CaregiverUserID != cgA || hours[0].TotalHours.StringFixed(2) != "5.00" {
		t.Fatalf("first row = %+v, want caregiver %d with 5.00 hours", hours[0], cgA)
	}
	if hours[1].CaregiverUserID != cgB || hours[1].TotalHours.StringFixed(2) != "1.00" {
		t.Fatalf("second row = %+v, want caregiver %d with 1.00 hours", hours[1], cgB)
	}
}

func TestAboveAverageEarners(t *testing.T) {
	s := newStore(t)
	cgA, _, _, _ := reportFixture(t, s)

	// Earnings: cgA = 5.00 x 20.00 = 100.00, cgB = 1.00 x 8.00 = 8.00,
	// average 54.00; only cgA clears it.
	earners, err := s.AboveAverageEarners(context.Background())
	if err != nil {
		t.Fatalf("AboveAverageEarners returned error: %v", err)
	}
	if len(earners) != 1 {
		t.Fatalf("earners = %d, want 1", len(earners))
	}
	if earners[0].CaregiverUserID != cgA || earners[0].Total.StringFixed(2) != "100.00" {
		t.Fatalf("earner = %+v, want caregiver %d earning 100.00", earners[0], cgA)
	}
}

func TestConfirmedAppointmentCosts(t *testing.T) {
	s := newStore(t)
	reportFixture(t, s)

	costs, err := s.ConfirmedAppointmentCosts(context.Background())
	if err != nil {
		t.Fatalf("ConfirmedAppointmentCosts returned error: %v", err)
	}
	if len(costs) != 3 {
		t.Fatalf("costs = %d, want 3", len(costs))
	}
	// Highest cost first: 3.00 x 20.00.
	if costs[0].TotalCost.StringFixed(2) != "60.00" {
		t.Fatalf("top cost = %s, want 60.00", costs[0].TotalCost.StringFixed(2))
	}
	if costs[2].TotalCost.StringFixed(2) != "8.00" {
		t.Fatalf("bottom cost = %s, want 8.00", costs[2].TotalCost.StringFixed(2))
	}
}

func TestApplicationsOverview(t *testing.T) {
	s := newStore(t)
	_, _, _, job := reportFixture(t, s)

	apps, err := s.ApplicationsOverview(context.Background(), 10)
	if err != nil {
		t.Fatalf("ApplicationsOverview returned error: %v", err)
	}
	if len(apps) != 1 {
		t.Fatalf("overview rows = %d, want 1", len(apps))
	}
	a := apps[0]
	if a.JobID != job {
		t.Fatalf("JobID = %d, want %d", a.JobID, job)
	}
	if a.EmployerName != "Amina Aminova" {
		t.Fatalf("EmployerName = %q", a.EmployerName)
	}
	if a.ApplicantName != "Aigerim Satybaldy" {
		t.Fatalf("ApplicantName = %q", a.ApplicantName)
	}
	if a.CaregivingType != models.CaregivingBabysitter {
		t.Fatalf("CaregivingType = %q", a.CaregivingType)
	}
	if a.HourlyRate.StringFixed(2) != "20.00" {
		t.Fatalf("HourlyRate = %s, want 20.00", a.HourlyRate.StringFixed(2))
	}
}

func TestDeduplicateJobApplications_NoDuplicates(t *testing.T) {
	s := newStore(t)
	reportFixture(t, s)
	ctx := context.Background()

	// The unique constraint blocks new duplicates, so a clean database
	// must come back untouched.
	removed, err := s.DeduplicateJobApplications(ctx)
	if err != nil {
		t.Fatalf("DeduplicateJobApplications returned error: %v", err)
	}
	if removed != 0 {
		t.Fatalf("removed = %d, want 0", removed)
	}
	apps, err := s.ListJobApplications(ctx)
	if err != nil {
		t.Fatalf("ListJobApplications returned error: %v", err)
	}
	if len(apps) != 1 {
		t.Fatalf("applications = %d, want 1", len(apps))
	}
}

func TestApplyCommission_OncePerCaregiver(t *testing.T) {
	s := newStore(t)
	cgA, cgB, _, _ := reportFixture(t, s)
	ctx := context.Background()

	updated, err := s.ApplyCommission(ctx)
	if err != nil {
		t.Fatalf("ApplyCommission returned error: %v", err)
	}
	if updated != 2 {
		t.Fatalf("updated = %d, want 2", updated)
	}

	a, err := s.GetCaregiver(ctx, cgA)
	if err != nil {
		t.Fatalf("GetCaregiver returned error: %v", err)
	}
	// 20.00 >= 10, so +10%.
	if got := a.HourlyRate.StringFixed(2); got != "22.00" {
		t.Fatalf("cgA rate = %s, want 22.00", got)
	}
	if !a.CommissionApplied {
		t.Fatalf("cgA commission flag not set")
	}

	b, err := s.GetCaregiver(ctx, cgB)
	if err != nil {
		t.Fatalf("GetCaregiver returned error: %v", err)
	}
	// 8.00 < 10, so +0.30 flat.
	if got := b.HourlyRate.StringFixed(2); got != "8.30" {
		t.Fatalf("cgB rate = %s, want 8.30", got)
	}

	// A second run is a no-op.
	updated, err = s.ApplyCommission(ctx)
	if err != nil {
		t.Fatalf("second ApplyCommission returned error: %v", err)
	}
	if updated != 0 {
		t.Fatalf("second run updated = %d, want 0", updated)
	}
}

func TestAddress_FullAddressAndCRUD(t *testing.T) {
	s := newStore(t)
	ctx := context.Background()

	mem := addUser(t, s, "Amina", "Aminova")
	addMember(t, s, mem)

	id, err := s.CreateAddress(ctx, &models.Address{
		MemberUserID: mem,
		HouseNumber:  ptr("12"),
		Street:       ptr("Kabanbay Batyr"),
		Town:         ptr("Astana"),
	})
	if err != nil {
		t.Fatalf("CreateAddress returned error: %v", err)
	}

	a, err := s.GetAddress(ctx, id)
	if err != nil {
		t.Fatalf("GetAddress returned error: %v", err)
	}
	if got := a.FullAddress(); got != "12, Kabanbay Batyr, Astana" {
		t.Fatalf("FullAddress = %q", got)
	}

	a.Town = nil
	if err := s.UpdateAddress(ctx, a); err != nil {
		t.Fatalf("UpdateAddress returned error: %v", err)
	}
	a2, err := s.GetAddress(ctx, id)
	if err != nil {
		t.Fatalf("GetAddress returned error: %v", err)
	}
	if got := a2.FullAddress(); got != "12, Kabanbay Batyr" {
		t.Fatalf("FullAddress after update = %q", got)
	}
}
