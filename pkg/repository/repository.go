package repository

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"

	"github.com/aknur/careadmin/internal/forms"
	"github.com/aknur/careadmin/pkg/models"
)

// Repository interfaces for domain entities. These are the public contracts
// consumers should depend on; concrete implementations live under internal/.

// ErrNotFound is returned by Update/Delete when the row does not exist.
// Get methods return (nil, nil) instead; handlers translate both into the
// not-found response.
var ErrNotFound = errors.New("record not found")

type UserAccountRepo interface {
	CreateUserAccount(ctx context.Context, u *models.UserAccount) (int64, error)
	GetUserAccount(ctx context.Context, id int64) (*models.UserAccount, error)
	ListUserAccounts(ctx context.Context) ([]models.UserAccount, error)
	UpdateUserAccount(ctx context.Context, u *models.UserAccount) error
	DeleteUserAccount(ctx context.Context, id int64) error
}

type CaregiverRepo interface {
	CreateCaregiver(ctx context.Context, c *models.Caregiver) (int64, error)
	GetCaregiver(ctx context.Context, id int64) (*models.Caregiver, error)
	ListCaregivers(ctx context.Context) ([]models.Caregiver, error)
	UpdateCaregiver(ctx context.Context, c *models.Caregiver) error
	DeleteCaregiver(ctx context.Context, id int64) error
}

type MemberRepo interface {
	CreateMember(ctx context.Context, m *models.Member) (int64, error)
	GetMember(ctx context.Context, id int64) (*models.Member, error)
	ListMembers(ctx context.Context) ([]models.Member, error)
	UpdateMember(ctx context.Context, m *models.Member) error
	DeleteMember(ctx context.Context, id int64) error
}

type AddressRepo interface {
	CreateAddress(ctx context.Context, a *models.Address) (int64, error)
	GetAddress(ctx context.Context, id int64) (*models.Address, error)
	ListAddresses(ctx context.Context) ([]models.Address, error)
	UpdateAddress(ctx context.Context, a *models.Address) error
	DeleteAddress(ctx context.Context, id int64) error
}

type JobRepo interface {
	CreateJob(ctx context.Context, j *models.Job) (int64, error)
	GetJob(ctx context.Context, id int64) (*models.Job, error)
	ListJobs(ctx context.Context) ([]models.Job, error)
	UpdateJob(ctx context.Context, j *models.Job) error
	DeleteJob(ctx context.Context, id int64) error
}

type JobApplicationRepo interface {
	CreateJobApplication(ctx context.Context, a *models.JobApplication) (int64, error)
	GetJobApplication(ctx context.Context, id int64) (*models.JobApplication, error)
	ListJobApplications(ctx context.Context) ([]models.JobApplication, error)
	UpdateJobApplication(ctx context.Context, a *models.JobApplication) error
	DeleteJobApplication(ctx context.Context, id int64) error
}

type AppointmentRepo interface {
	CreateAppointment(ctx context.Context, a *models.Appointment) (int64, error)
	GetAppointment(ctx context.Context, id int64) (*models.Appointment, error)
	ListAppointments(ctx context.Context) ([]models.Appointment, error)
	UpdateAppointment(ctx context.Context, a *models.Appointment) error
	DeleteAppointment(ctx context.Context, id int64) error
}

// Counter serves the dashboard's per-entity row counts.
type Counter interface {
	Count(ctx context.Context, entity models.Entity) (int64, error)
}

// ConfirmedPairing is one confirmed appointment with both parties' names.
type ConfirmedPairing struct {
	CaregiverUserID int64
	CaregiverName   string
	MemberUserID    int64
	MemberName      string
	Date            string
	Time            string
}

// JobApplicantCount is the number of applicants for one job posting.
type JobApplicantCount struct {
	JobID          int64
	MemberName     string
	CaregivingType string
	Applicants     int64
}

// CaregiverHours aggregates confirmed work hours per caregiver.
type CaregiverHours struct {
	CaregiverUserID int64
	CaregiverName   string
	CaregivingType  string
	TotalHours      decimal.Decimal
}

// CaregiverEarnings aggregates confirmed earnings per caregiver.
type CaregiverEarnings struct {
	CaregiverUserID int64
	CaregiverName   string
	CaregivingType  string
	Total           decimal.Decimal
}

// AppointmentCost is the derived total-cost row for a confirmed appointment.
type AppointmentCost struct {
	AppointmentID int64
	CaregiverName string
	MemberName    string
	WorkHours     decimal.Decimal
	HourlyRate    decimal.Decimal
	TotalCost     decimal.Decimal
}

// ApplicationOverview is one row of job_applications_view.
type ApplicationOverview struct {
	JobApplicationID int64
	JobID            int64
	CaregivingType   string
	EmployerName     string
	ApplicantName    string
	ApplicantType    string
	HourlyRate       decimal.Decimal
	DateApplied      string
}

// Reporter exposes the analytical and maintenance operations used by the
// reporting script.
type Reporter interface {
	ConfirmedPairings(ctx context.Context) ([]ConfirmedPairing, error)
	JobApplicantCounts(ctx context.Context) ([]JobApplicantCount, error)
	ConfirmedHoursByCaregiver(ctx context.Context) ([]CaregiverHours, error)
	AboveAverageEarners(ctx context.Context) ([]CaregiverEarnings, error)
	ConfirmedAppointmentCosts(ctx context.Context) ([]AppointmentCost, error)
	ApplicationsOverview(ctx context.Context, limit int) ([]ApplicationOverview, error)
	DeduplicateJobApplications(ctx context.Context) (int64, error)
	ApplyCommission(ctx context.Context) (int64, error)
}

// Store is the full persistence surface the web layer wires against.
type Store interface {
	UserAccountRepo
	CaregiverRepo
	MemberRepo
	AddressRepo
	JobRepo
	JobApplicationRepo
	AppointmentRepo
	Counter
	Reporter
	forms.ChoiceSource
}
