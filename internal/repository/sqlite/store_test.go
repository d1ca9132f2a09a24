package sqlite_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"

	dbfs "github.com/aknur/careadmin/db"
	dbpkg "github.com/aknur/careadmin/internal/db"
	"github.com/aknur/careadmin/internal/repository/sqlite"
	"github.com/aknur/careadmin/pkg/models"
	"github.com/aknur/careadmin/pkg/repository"
)

func newStore(t *testing.T) *sqlite.Store {
	t.Helper()
	ctx := context.Background()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_pragma=foreign_keys(1)", t.Name())
	d, err := dbpkg.New(ctx, dsn)
	if err != nil {
		t.Fatalf("db.New returned error: %v", err)
	}
	t.Cleanup(func() { d.Close() })
	if err := dbpkg.Migrate(ctx, d, dbfs.Migrations); err != nil {
		t.Fatalf("Migrate returned error: %v", err)
	}
	return sqlite.New(d, nil)
}

func ptr(s string) *string { return &s }

func addUser(t *testing.T, s *sqlite.Store, given, surname string) int64 {
	t.Helper()
	id, err := s.CreateUserAccount(context.Background(), &models.UserAccount{
		Email:     fmt.Sprintf("%s.%s@example.com", given, surname),
		GivenName: given,
		Surname:   surname,
		Password:  "secret",
	})
	if err != nil {
		t.Fatalf("CreateUserAccount returned error: %v", err)
	}
	return id
}

func addCaregiver(t *testing.T, s *sqlite.Store, userID int64, rate string) {
	t.Helper()
	r, err := decimal.NewFromString(rate)
	if err != nil {
		t.Fatalf("bad rate %q: %v", rate, err)
	}
	_, err = s.CreateCaregiver(context.Background(), &models.Caregiver{
		CaregiverUserID: userID,
		CaregivingType:  models.CaregivingBabysitter,
		HourlyRate:      r,
	})
	if err != nil {
		t.Fatalf("CreateCaregiver returned error: %v", err)
	}
}

func addMember(t *testing.T, s *sqlite.Store, userID int64) {
	t.Helper()
	_, err := s.CreateMember(context.Background(), &models.Member{
		MemberUserID: userID,
		HouseRules:   ptr("No pets."),
	})
	if err != nil {
		t.Fatalf("CreateMember returned error: %v", err)
	}
}

func addJob(t *testing.T, s *sqlite.Store, memberID int64) int64 {
	t.Helper()
	id, err := s.CreateJob(context.Background(), &models.Job{
		MemberUserID:           memberID,
		RequiredCaregivingType: models.CaregivingBabysitter,
		DatePosted:             "2025-01-10",
	})
	if err != nil {
		t.Fatalf("CreateJob returned error: %v", err)
	}
	return id
}

func TestUserAccount_CRUD(t *testing.T) {
	s := newStore(t)
	ctx := context.Background()

	id, err := s.CreateUserAccount(ctx, &models.UserAccount{
		Email:     "arman@example.com",
		GivenName: "Arman",
		Surname:   "Armanov",
		City:      ptr("Astana"),
		Password:  "secret",
	})
	if err != nil {
		t.Fatalf("CreateUserAccount returned error: %v", err)
	}

	got, err := s.GetUserAccount(ctx, id)
	if err != nil {
		t.Fatalf("GetUserAccount returned error: %v", err)
	}
	want := &models.UserAccount{
		UserID:    id,
		Email:     "arman@example.com",
		GivenName: "Arman",
		Surname:   "Armanov",
		City:      ptr("Astana"),
		Password:  "secret",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("user mismatch (-want +got):\n%s", diff)
	}

	got.City = nil
	got.PhoneNumber = ptr("+7 701 000 0000")
	if err := s.UpdateUserAccount(ctx, got); err != nil {
		t.Fatalf("UpdateUserAccount returned error: %v", err)
	}
	got2, err := s.GetUserAccount(ctx, id)
	if err != nil {
		t.Fatalf("GetUserAccount returned error: %v", err)
	}
	if got2.City != nil {
		t.Fatalf("City should be null after update")
	}
	if got2.PhoneNumber == nil || *got2.PhoneNumber != "+7 701 000 0000" {
		t.Fatalf("PhoneNumber not updated: %v", got2.PhoneNumber)
	}

	if err := s.DeleteUserAccount(ctx, id); err != nil {
		t.Fatalf("DeleteUserAccount returned error: %v", err)
	}
	gone, err := s.GetUserAccount(ctx, id)
	if err != nil {
		t.Fatalf("GetUserAccount returned error: %v", err)
	}
	if gone != nil {
		t.Fatalf("expected nil for deleted user, got %+v", gone)
	}
}

func TestGet_MissingRowIsNilNil(t *testing.T) {
	s := newStore(t)
	u, err := s.GetUserAccount(context.Background(), 9999)
	if err != nil {
		t.Fatalf("GetUserAccount returned error: %v", err)
	}
	if u != nil {
		t.Fatalf("expected nil user, got %+v", u)
	}
}

func TestUpdateDelete_MissingRowIsErrNotFound(t *testing.T) {
	s := newStore(t)
	ctx := context.Background()

	err := s.UpdateUserAccount(ctx, &models.UserAccount{
		UserID: 9999, Email: "x@example.com", GivenName: "X", Surname: "Y", Password: "p",
	})
	if err != repository.ErrNotFound {
		t.Fatalf("Update error = %v, want ErrNotFound", err)
	}
	if err := s.DeleteUserAccount(ctx, 9999); err != repository.ErrNotFound {
		t.Fatalf("Delete error = %v, want ErrNotFound", err)
	}
}

func TestList_OrderedByPrimaryKey(t *testing.T) {
	s := newStore(t)
	ctx := context.Background()

	ids := []int64{
		addUser(t, s, "Arman", "Armanov"),
		addUser(t, s, "Amina", "Aminova"),
		addUser(t, s, "Dana", "Danina"),
	}

	users, err := s.ListUserAccounts(ctx)
	if err != nil {
		t.Fatalf("ListUserAccounts returned error: %v", err)
	}
	if len(users) != 3 {
		t.Fatalf("list length = %d, want 3", len(users))
	}
	for i, u := range users {
		if u.UserID != ids[i] {
			t.Fatalf("position %d has id %d, want %d", i, u.UserID, ids[i])
		}
	}
}

func TestCaregiver_RateRoundTrip(t *testing.T) {
	s := newStore(t)
	ctx := context.Background()

	uid := addUser(t, s, "Aigerim", "Satybaldy")
	addCaregiver(t, s, uid, "12.5")

	c, err := s.GetCaregiver(ctx, uid)
	if err != nil {
		t.Fatalf("GetCaregiver returned error: %v", err)
	}
	if c == nil {
		t.Fatalf("caregiver not found")
	}
	if got := c.HourlyRate.StringFixed(2); got != "12.50" {
		t.Fatalf("hourly_rate = %s, want 12.50", got)
	}
	if c.CommissionApplied {
		t.Fatalf("commission_applied should default to false")
	}

	// Update leaves the identifying key alone and overwrites the rest.
	c.HourlyRate = decimal.RequireFromString("15")
	c.Gender = ptr("F")
	if err := s.UpdateCaregiver(ctx, c); err != nil {
		t.Fatalf("UpdateCaregiver returned error: %v", err)
	}
	c2, err := s.GetCaregiver(ctx, uid)
	if err != nil {
		t.Fatalf("GetCaregiver returned error: %v", err)
	}
	if got := c2.HourlyRate.StringFixed(2); got != "15.00" {
		t.Fatalf("hourly_rate after update = %s, want 15.00", got)
	}
}

func TestJobApplication_DuplicatePairRejected(t *testing.T) {
	s := newStore(t)
	ctx := context.Background()

	cgUser := addUser(t, s, "Aigerim", "Satybaldy")
	addCaregiver(t, s, cgUser, "10.00")
	memUser := addUser(t, s, "Amina", "Aminova")
	addMember(t, s, memUser)
	jobID := addJob(t, s, memUser)

	first := &models.JobApplication{CaregiverUserID: cgUser, JobID: jobID, DateApplied: "2025-01-11"}
	if _, err := s.CreateJobApplication(ctx, first); err != nil {
		t.Fatalf("first application returned error: %v", err)
	}

	dup := &models.JobApplication{CaregiverUserID: cgUser, JobID: jobID, DateApplied: "2025-01-12"}
	if _, err := s.CreateJobApplication(ctx, dup); err == nil {
		t.Fatalf("duplicate (caregiver, job) application should fail")
	}

	apps, err := s.ListJobApplications(ctx)
	if err != nil {
		t.Fatalf("ListJobApplications returned error: %v", err)
	}
	if len(apps) != 1 {
		t.Fatalf("application count = %d, want 1", len(apps))
	}
}

func TestUpdateJob_ClearedDateRejected(t *testing.T) {
	s := newStore(t)
	ctx := context.Background()

	mem := addUser(t, s, "Amina", "Aminova")
	addMember(t, s, mem)
	jobID := addJob(t, s, mem)

	j, err := s.GetJob(ctx, jobID)
	if err != nil {
		t.Fatalf("GetJob returned error: %v", err)
	}

	j.DatePosted = ""
	if err := s.UpdateJob(ctx, j); err == nil {
		t.Fatalf("clearing date_posted should violate the NOT NULL constraint")
	}

	after, err := s.GetJob(ctx, jobID)
	if err != nil {
		t.Fatalf("GetJob returned error: %v", err)
	}
	if after.DatePosted != "2025-01-10" {
		t.Fatalf("date_posted = %q, want the original 2025-01-10", after.DatePosted)
	}
}

func TestDeleteUserAccount_CascadesToCaregiverAndAppointments(t *testing.T) {
	s := newStore(t)
	ctx := context.Background()

	cgUser := addUser(t, s, "Aigerim", "Satybaldy")
	addCaregiver(t, s, cgUser, "20.00")
	memUser := addUser(t, s, "Amina", "Aminova")
	addMember(t, s, memUser)

	_, err := s.CreateAppointment(ctx, &models.Appointment{
		CaregiverUserID: cgUser,
		MemberUserID:    memUser,
		AppointmentDate: "2025-02-01",
		AppointmentTime: "09:00",
		WorkHours:       decimal.RequireFromString("3"),
		Status:          models.StatusConfirmed,
	})
	if err != nil {
		t.Fatalf("CreateAppointment returned error: %v", err)
	}

	if err := s.DeleteUserAccount(ctx, cgUser); err != nil {
		t.Fatalf("DeleteUserAccount returned error: %v", err)
	}

	c, err := s.GetCaregiver(ctx, cgUser)
	if err != nil {
		t.Fatalf("GetCaregiver returned error: %v", err)
	}
	if c != nil {
		t.Fatalf("caregiver row should cascade away")
	}
	appts, err := s.ListAppointments(ctx)
	if err != nil {
		t.Fatalf("ListAppointments returned error: %v", err)
	}
	if len(appts) != 0 {
		t.Fatalf("appointments should cascade away, got %d", len(appts))
	}
}

func TestAppointment_TotalCost(t *testing.T) {
	a := &models.Appointment{WorkHours: decimal.RequireFromString("3.00")}
	rate := decimal.RequireFromString("20.00")
	if got := a.TotalCost(rate).StringFixed(2); got != "60.00" {
		t.Fatalf("TotalCost = %s, want 60.00", got)
	}
}

func TestChoices_LabelFormats(t *testing.T) {
	s := newStore(t)
	ctx := context.Background()

	uid := addUser(t, s, "Arman", "Armanov")
	addMember(t, s, uid)
	jobID := addJob(t, s, uid)

	users, err := s.UserChoices(ctx)
	if err != nil {
		t.Fatalf("UserChoices returned error: %v", err)
	}
	wantUser := fmt.Sprintf("Arman Armanov (ID: %d)", uid)
	if len(users) != 1 || users[0].Label != wantUser {
		t.Fatalf("user choice = %v, want label %q", users, wantUser)
	}

	members, err := s.MemberChoices(ctx)
	if err != nil {
		t.Fatalf("MemberChoices returned error: %v", err)
	}
	if len(members) != 1 || members[0].Value != fmt.Sprintf("%d", uid) {
		t.Fatalf("member choice = %v", members)
	}

	jobs, err := s.JobChoices(ctx)
	if err != nil {
		t.Fatalf("JobChoices returned error: %v", err)
	}
	wantJob := fmt.Sprintf("Job #%d (babysitter) - Arman", jobID)
	if len(jobs) != 1 || jobs[0].Label != wantJob {
		t.Fatalf("job choice = %v, want label %q", jobs, wantJob)
	}

	caregivers, err := s.CaregiverChoices(ctx)
	if err != nil {
		t.Fatalf("CaregiverChoices returned error: %v", err)
	}
	if len(caregivers) != 0 {
		t.Fatalf("expected no caregiver choices, got %v", caregivers)
	}
}

func TestCount(t *testing.T) {
	s := newStore(t)
	ctx := context.Background()

	for _, e := range models.Entities() {
		n, err := s.Count(ctx, e)
		if err != nil {
			t.Fatalf("Count(%s) returned error: %v", e, err)
		}
		if n != 0 {
			t.Fatalf("Count(%s) = %d, want 0", e, n)
		}
	}

	addUser(t, s, "Arman", "Armanov")
	n, err := s.Count(ctx, models.EntityUserAccount)
	if err != nil {
		t.Fatalf("Count returned error: %v", err)
	}
	if n != 1 {
		t.Fatalf("Count = %d, want 1", n)
	}
}
