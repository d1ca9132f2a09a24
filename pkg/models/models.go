package models

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Caregiving types accepted for Caregiver.CaregivingType and
// Job.RequiredCaregivingType.
const (
	CaregivingBabysitter = "babysitter"
	CaregivingElderly    = "elderly"
	CaregivingPlaymate   = "playmate"
)

// Appointment statuses. The schema enforces the same closed set with a
// CHECK constraint.
const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusDeclined  = "declined"
	StatusCancelled = "cancelled"
)

// UserAccount is the identity record both Caregiver and Member extend.
type UserAccount struct {
	UserID             int64
	Email              string
	GivenName          string
	Surname            string
	City               *string
	PhoneNumber        *string
	ProfileDescription *string
	Password           string
}

// DisplayName is the form used in dropdown option labels.
func (u *UserAccount) DisplayName() string {
	return fmt.Sprintf("%s %s (ID: %d)", u.GivenName, u.Surname, u.UserID)
}

// Caregiver extends a UserAccount; its primary key is the user's id.
type Caregiver struct {
	CaregiverUserID   int64
	Photo             *string
	Gender            *string
	CaregivingType    string
	HourlyRate        decimal.Decimal
	CommissionApplied bool
}

// Member extends a UserAccount; its primary key is the user's id.
type Member struct {
	MemberUserID         int64
	HouseRules           *string
	DependentDescription *string
}

// Address belongs to exactly one Member.
type Address struct {
	AddressID    int64
	MemberUserID int64
	HouseNumber  *string
	Street       *string
	Town         *string
}

// FullAddress joins the non-empty address parts with commas.
func (a *Address) FullAddress() string {
	parts := make([]string, 0, 3)
	for _, p := range []*string{a.HouseNumber, a.Street, a.Town} {
		if p != nil && *p != "" {
			parts = append(parts, *p)
		}
	}
	return strings.Join(parts, ", ")
}

// Job is a posting by a Member. DatePosted is a canonical YYYY-MM-DD string.
type Job struct {
	JobID                  int64
	MemberUserID           int64
	RequiredCaregivingType string
	OtherRequirements      *string
	DatePosted             string
}

// JobApplication links a Caregiver to a Job. The (caregiver, job) pair is
// unique; a caregiver applies to a given job at most once.
type JobApplication struct {
	JobApplicationID int64
	CaregiverUserID  int64
	JobID            int64
	DateApplied      string
}

// Appointment links a Caregiver and a Member. AppointmentDate and
// AppointmentTime are canonical YYYY-MM-DD and HH:MM strings.
type Appointment struct {
	AppointmentID   int64
	CaregiverUserID int64
	MemberUserID    int64
	AppointmentDate string
	AppointmentTime string
	WorkHours       decimal.Decimal
	Status          string
}

// TotalCost is the derived work_hours x hourly_rate attribute. It is
// computed on read and never persisted.
func (a *Appointment) TotalCost(hourlyRate decimal.Decimal) decimal.Decimal {
	return a.WorkHours.Mul(hourlyRate)
}
