package models

import (
	"errors"
	"fmt"
)

// Entity identifies one of the seven persisted record kinds. The set is
// closed: every value flowing through routing, forms and persistence is
// produced by ParseEntity or one of the constants below.
type Entity string

const (
	EntityUserAccount    Entity = "user_account"
	EntityCaregiver      Entity = "caregiver"
	EntityMember         Entity = "member"
	EntityAddress        Entity = "address"
	EntityJob            Entity = "job"
	EntityJobApplication Entity = "job_application"
	EntityAppointment    Entity = "appointment"
)

// ErrUnknownEntity is returned by ParseEntity for names outside the closed set.
var ErrUnknownEntity = errors.New("unknown entity")

// Entities returns all entity kinds in dashboard/navigation order.
func Entities() []Entity {
	return []Entity{
		EntityUserAccount,
		EntityCaregiver,
		EntityMember,
		EntityAddress,
		EntityJob,
		EntityJobApplication,
		EntityAppointment,
	}
}

// ParseEntity maps a path segment to an Entity.
func ParseEntity(name string) (Entity, error) {
	switch Entity(name) {
	case EntityUserAccount, EntityCaregiver, EntityMember, EntityAddress,
		EntityJob, EntityJobApplication, EntityAppointment:
		return Entity(name), nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownEntity, name)
}

// Label returns the human heading used on list pages and notices.
func (e Entity) Label() string {
	switch e {
	case EntityUserAccount:
		return "Users"
	case EntityCaregiver:
		return "Caregivers"
	case EntityMember:
		return "Members"
	case EntityAddress:
		return "Addresses"
	case EntityJob:
		return "Jobs"
	case EntityJobApplication:
		return "Job Applications"
	case EntityAppointment:
		return "Appointments"
	}
	return string(e)
}

// PrimaryKey returns the column name of the entity's integer primary key.
func (e Entity) PrimaryKey() string {
	switch e {
	case EntityUserAccount:
		return "user_id"
	case EntityCaregiver:
		return "caregiver_user_id"
	case EntityMember:
		return "member_user_id"
	case EntityAddress:
		return "address_id"
	case EntityJob:
		return "job_id"
	case EntityJobApplication:
		return "job_application_id"
	case EntityAppointment:
		return "appointment_id"
	}
	return "id"
}
