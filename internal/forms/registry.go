package forms

import (
	"time"

	"github.com/aknur/careadmin/pkg/models"
)

func today() string {
	return time.Now().Format("2006-01-02")
}

var caregivingChoices = []Choice{
	{Value: models.CaregivingBabysitter, Label: "Babysitter"},
	{Value: models.CaregivingElderly, Label: "Elderly Care"},
	{Value: models.CaregivingPlaymate, Label: "Playmate"},
}

var statusChoices = []Choice{
	{Value: models.StatusPending, Label: "Pending"},
	{Value: models.StatusConfirmed, Label: "Confirmed"},
	{Value: models.StatusDeclined, Label: "Declined"},
	{Value: models.StatusCancelled, Label: "Cancelled"},
}

// FieldsFor returns the ordered field configuration for an entity. The
// registry is fixed at compile time; routing guarantees the entity is one
// of the seven known kinds.
func FieldsFor(entity models.Entity) []Field {
	switch entity {
	case models.EntityUserAccount:
		return []Field{
			{Name: "email", Label: "Email", Kind: KindEmail, Required: true},
			{Name: "given_name", Label: "First Name", Kind: KindText, Required: true},
			{Name: "surname", Label: "Last Name", Kind: KindText, Required: true},
			{Name: "city", Label: "City", Kind: KindText},
			{Name: "phone_number", Label: "Phone Number", Kind: KindText},
			{Name: "profile_description", Label: "Profile Description", Kind: KindTextarea},
			{Name: "password", Label: "Password", Kind: KindPassword, Required: true},
		}
	case models.EntityCaregiver:
		return []Field{
			{
				Name: "caregiver_user_id", Label: "User Account", Kind: KindSelect,
				Choices: ChoicesUsers, Required: true, Coerce: Int, ShowIn: ShowCreateOnly,
			},
			{Name: "photo", Label: "Photo URL", Kind: KindText},
			{
				Name: "gender", Label: "Gender", Kind: KindSelect, Choices: ChoicesStatic,
				Static: []Choice{
					{Value: "M", Label: "Male"},
					{Value: "F", Label: "Female"},
					{Value: "Other", Label: "Other"},
				},
			},
			{
				Name: "caregiving_type", Label: "Caregiving Type", Kind: KindSelect,
				Choices: ChoicesStatic, Static: caregivingChoices, Required: true,
			},
			{
				Name: "hourly_rate", Label: "Hourly Rate", Kind: KindNumber,
				Required: true, Coerce: Numeric, Step: "0.01",
			},
			{
				Name: "commission_applied", Label: "Commission Applied", Kind: KindSelect,
				Choices: ChoicesStatic, Static: []Choice{
					{Value: "True", Label: "Yes"},
					{Value: "False", Label: "No"},
				},
				Coerce: Bool,
			},
		}
	case models.EntityMember:
		return []Field{
			{
				Name: "member_user_id", Label: "User Account", Kind: KindSelect,
				Choices: ChoicesUsers, Required: true, Coerce: Int, ShowIn: ShowCreateOnly,
			},
			{Name: "house_rules", Label: "House Rules", Kind: KindTextarea},
			{Name: "dependent_description", Label: "Dependent Description", Kind: KindTextarea},
		}
	case models.EntityAddress:
		return []Field{
			{
				Name: "member_user_id", Label: "Member", Kind: KindSelect,
				Choices: ChoicesMembers, Required: true, Coerce: Int,
			},
			{Name: "house_number", Label: "House Number", Kind: KindText},
			{Name: "street", Label: "Street", Kind: KindText},
			{Name: "town", Label: "Town", Kind: KindText},
		}
	case models.EntityJob:
		return []Field{
			{
				Name: "member_user_id", Label: "Member", Kind: KindSelect,
				Choices: ChoicesMembers, Required: true, Coerce: Int,
			},
			{
				Name: "required_caregiving_type", Label: "Required Caregiving Type",
				Kind: KindSelect, Choices: ChoicesStatic, Static: caregivingChoices,
				Required: true,
			},
			{Name: "other_requirements", Label: "Other Requirements", Kind: KindTextarea},
			{
				Name: "date_posted", Label: "Date Posted", Kind: KindDate,
				Coerce: Date, Default: today,
			},
		}
	case models.EntityJobApplication:
		return []Field{
			{
				Name: "caregiver_user_id", Label: "Caregiver", Kind: KindSelect,
				Choices: ChoicesCaregivers, Required: true, Coerce: Int,
			},
			{
				Name: "job_id", Label: "Job", Kind: KindSelect,
				Choices: ChoicesJobs, Required: true, Coerce: Int,
			},
			{
				Name: "date_applied", Label: "Date Applied", Kind: KindDate,
				Required: true, Coerce: Date, Default: today,
			},
		}
	case models.EntityAppointment:
		return []Field{
			{
				Name: "caregiver_user_id", Label: "Caregiver", Kind: KindSelect,
				Choices: ChoicesCaregivers, Required: true, Coerce: Int,
			},
			{
				Name: "member_user_id", Label: "Member", Kind: KindSelect,
				Choices: ChoicesMembers, Required: true, Coerce: Int,
			},
			{
				Name: "appointment_date", Label: "Appointment Date", Kind: KindDate,
				Required: true, Coerce: Date,
			},
			{
				Name: "appointment_time", Label: "Appointment Time", Kind: KindTime,
				Required: true, Coerce: Time,
			},
			{
				Name: "work_hours", Label: "Work Hours", Kind: KindNumber,
				Required: true, Coerce: Numeric, Step: "0.25",
			},
			{
				Name: "status", Label: "Status", Kind: KindSelect,
				Choices: ChoicesStatic, Static: statusChoices, Required: true,
			},
		}
	}
	return nil
}
