package web

import (
	"context"
	"strconv"

	"github.com/aknur/careadmin/internal/forms"
	"github.com/aknur/careadmin/pkg/models"
	"github.com/aknur/careadmin/pkg/repository"
)

type column struct {
	Name  string
	Label string
}

type row struct {
	ID    int64
	Cells []string
}

// binding ties one entity kind to its list/form/persistence operations.
// The seven bindings are constructed at startup from the closed Entity
// set, so dispatch never involves a runtime registry lookup that can fail.
type binding struct {
	entity  models.Entity
	columns []column
	list    func(ctx context.Context) ([]row, error)
	// get returns the serialized field values of one row, or nil when the
	// id does not exist.
	get    func(ctx context.Context, id int64) (map[string]string, error)
	create func(ctx context.Context, v forms.Values) error
	update func(ctx context.Context, id int64, v forms.Values) error
	remove func(ctx context.Context, id int64) error
}

// str renders a nullable column for display; nil shows as empty.
func str(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

func boolString(b bool) string {
	if b {
		return "True"
	}
	return "False"
}

// fieldColumns derives the list/table columns from the field registry:
// the primary key first, then every configured field except the one that
// doubles as the key.
func fieldColumns(entity models.Entity) []column {
	pk := entity.PrimaryKey()
	cols := []column{{Name: pk, Label: "ID"}}
	for _, f := range forms.FieldsFor(entity) {
		if f.Name == pk {
			continue
		}
		cols = append(cols, column{Name: f.Name, Label: f.Label})
	}
	return cols
}

// cellsFor aligns a serialized record with the column order.
func cellsFor(cols []column, id int64, vals map[string]string) []string {
	cells := make([]string, 0, len(cols))
	for _, c := range cols {
		if c.Name == cols[0].Name {
			cells = append(cells, strconv.FormatInt(id, 10))
			continue
		}
		cells = append(cells, vals[c.Name])
	}
	return cells
}

func userAccountVals(u *models.UserAccount) map[string]string {
	return map[string]string{
		"email":               u.Email,
		"given_name":          u.GivenName,
		"surname":             u.Surname,
		"city":                str(u.City),
		"phone_number":        str(u.PhoneNumber),
		"profile_description": str(u.ProfileDescription),
		"password":            u.Password,
	}
}

func caregiverVals(c *models.Caregiver) map[string]string {
	return map[string]string{
		"caregiver_user_id":  strconv.FormatInt(c.CaregiverUserID, 10),
		"photo":              str(c.Photo),
		"gender":             str(c.Gender),
		"caregiving_type":    c.CaregivingType,
		"hourly_rate":        c.HourlyRate.StringFixed(2),
		"commission_applied": boolString(c.CommissionApplied),
	}
}

func memberVals(m *models.Member) map[string]string {
	return map[string]string{
		"member_user_id":        strconv.FormatInt(m.MemberUserID, 10),
		"house_rules":           str(m.HouseRules),
		"dependent_description": str(m.DependentDescription),
	}
}

func addressVals(a *models.Address) map[string]string {
	return map[string]string{
		"member_user_id": strconv.FormatInt(a.MemberUserID, 10),
		"house_number":   str(a.HouseNumber),
		"street":         str(a.Street),
		"town":           str(a.Town),
	}
}

func jobVals(j *models.Job) map[string]string {
	return map[string]string{
		"member_user_id":           strconv.FormatInt(j.MemberUserID, 10),
		"required_caregiving_type": j.RequiredCaregivingType,
		"other_requirements":       str(j.OtherRequirements),
		"date_posted":              j.DatePosted,
	}
}

func jobApplicationVals(a *models.JobApplication) map[string]string {
	return map[string]string{
		"caregiver_user_id": strconv.FormatInt(a.CaregiverUserID, 10),
		"job_id":            strconv.FormatInt(a.JobID, 10),
		"date_applied":      a.DateApplied,
	}
}

func appointmentVals(a *models.Appointment) map[string]string {
	return map[string]string{
		"caregiver_user_id": strconv.FormatInt(a.CaregiverUserID, 10),
		"member_user_id":    strconv.FormatInt(a.MemberUserID, 10),
		"appointment_date":  a.AppointmentDate,
		"appointment_time":  a.AppointmentTime,
		"work_hours":        a.WorkHours.StringFixed(2),
		"status":            a.Status,
	}
}

// bindings builds the dispatch table for all seven entities.
func bindings(store repository.Store) map[models.Entity]*binding {
	out := map[models.Entity]*binding{}

	userAccount := &binding{
		entity:  models.EntityUserAccount,
		columns: fieldColumns(models.EntityUserAccount),
		create: func(ctx context.Context, v forms.Values) error {
			_, err := store.CreateUserAccount(ctx, &models.UserAccount{
				Email:              v.String("email"),
				GivenName:          v.String("given_name"),
				Surname:            v.String("surname"),
				City:               v.NullString("city"),
				PhoneNumber:        v.NullString("phone_number"),
				ProfileDescription: v.NullString("profile_description"),
				Password:           v.String("password"),
			})
			return err
		},
		update: func(ctx context.Context, id int64, v forms.Values) error {
			return store.UpdateUserAccount(ctx, &models.UserAccount{
				UserID:             id,
				Email:              v.String("email"),
				GivenName:          v.String("given_name"),
				Surname:            v.String("surname"),
				City:               v.NullString("city"),
				PhoneNumber:        v.NullString("phone_number"),
				ProfileDescription: v.NullString("profile_description"),
				Password:           v.String("password"),
			})
		},
		remove: store.DeleteUserAccount,
	}
	userAccount.list = func(ctx context.Context) ([]row, error) {
		users, err := store.ListUserAccounts(ctx)
		if err != nil {
			return nil, err
		}
		rows := make([]row, 0, len(users))
		for i := range users {
			u := &users[i]
			rows = append(rows, row{ID: u.UserID, Cells: cellsFor(userAccount.columns, u.UserID, userAccountVals(u))})
		}
		return rows, nil
	}
	userAccount.get = func(ctx context.Context, id int64) (map[string]string, error) {
		u, err := store.GetUserAccount(ctx, id)
		if err != nil || u == nil {
			return nil, err
		}
		return userAccountVals(u), nil
	}
	out[models.EntityUserAccount] = userAccount

	caregiver := &binding{
		entity:  models.EntityCaregiver,
		columns: fieldColumns(models.EntityCaregiver),
		create: func(ctx context.Context, v forms.Values) error {
			_, err := store.CreateCaregiver(ctx, &models.Caregiver{
				CaregiverUserID:   v.Int64("caregiver_user_id"),
				Photo:             v.NullString("photo"),
				Gender:            v.NullString("gender"),
				CaregivingType:    v.String("caregiving_type"),
				HourlyRate:        v.Decimal("hourly_rate"),
				CommissionApplied: v.Bool("commission_applied"),
			})
			return err
		},
		update: func(ctx context.Context, id int64, v forms.Values) error {
			return store.UpdateCaregiver(ctx, &models.Caregiver{
				CaregiverUserID:   id,
				Photo:             v.NullString("photo"),
				Gender:            v.NullString("gender"),
				CaregivingType:    v.String("caregiving_type"),
				HourlyRate:        v.Decimal("hourly_rate"),
				CommissionApplied: v.Bool("commission_applied"),
			})
		},
		remove: store.DeleteCaregiver,
	}
	caregiver.list = func(ctx context.Context) ([]row, error) {
		caregivers, err := store.ListCaregivers(ctx)
		if err != nil {
			return nil, err
		}
		rows := make([]row, 0, len(caregivers))
		for i := range caregivers {
			c := &caregivers[i]
			rows = append(rows, row{ID: c.CaregiverUserID, Cells: cellsFor(caregiver.columns, c.CaregiverUserID, caregiverVals(c))})
		}
		return rows, nil
	}
	caregiver.get = func(ctx context.Context, id int64) (map[string]string, error) {
		c, err := store.GetCaregiver(ctx, id)
		if err != nil || c == nil {
			return nil, err
		}
		return caregiverVals(c), nil
	}
	out[models.EntityCaregiver] = caregiver

	member := &binding{
		entity:  models.EntityMember,
		columns: fieldColumns(models.EntityMember),
		create: func(ctx context.Context, v forms.Values) error {
			_, err := store.CreateMember(ctx, &models.Member{
				MemberUserID:         v.Int64("member_user_id"),
				HouseRules:           v.NullString("house_rules"),
				DependentDescription: v.NullString("dependent_description"),
			})
			return err
		},
		update: func(ctx context.Context, id int64, v forms.Values) error {
			return store.UpdateMember(ctx, &models.Member{
				MemberUserID:         id,
				HouseRules:           v.NullString("house_rules"),
				DependentDescription: v.NullString("dependent_description"),
			})
		},
		remove: store.DeleteMember,
	}
	member.list = func(ctx context.Context) ([]row, error) {
		members, err := store.ListMembers(ctx)
		if err != nil {
			return nil, err
		}
		rows := make([]row, 0, len(members))
		for i := range members {
			m := &members[i]
			rows = append(rows, row{ID: m.MemberUserID, Cells: cellsFor(member.columns, m.MemberUserID, memberVals(m))})
		}
		return rows, nil
	}
	member.get = func(ctx context.Context, id int64) (map[string]string, error) {
		m, err := store.GetMember(ctx, id)
		if err != nil || m == nil {
			return nil, err
		}
		return memberVals(m), nil
	}
	out[models.EntityMember] = member

	address := &binding{
		entity:  models.EntityAddress,
		columns: fieldColumns(models.EntityAddress),
		create: func(ctx context.Context, v forms.Values) error {
			_, err := store.CreateAddress(ctx, &models.Address{
				MemberUserID: v.Int64("member_user_id"),
				HouseNumber:  v.NullString("house_number"),
				Street:       v.NullString("street"),
				Town:         v.NullString("town"),
			})
			return err
		},
		update: func(ctx context.Context, id int64, v forms.Values) error {
			return store.UpdateAddress(ctx, &models.Address{
				AddressID:    id,
				MemberUserID: v.Int64("member_user_id"),
				HouseNumber:  v.NullString("house_number"),
				Street:       v.NullString("street"),
				Town:         v.NullString("town"),
			})
		},
		remove: store.DeleteAddress,
	}
	address.list = func(ctx context.Context) ([]row, error) {
		addresses, err := store.ListAddresses(ctx)
		if err != nil {
			return nil, err
		}
		rows := make([]row, 0, len(addresses))
		for i := range addresses {
			a := &addresses[i]
			rows = append(rows, row{ID: a.AddressID, Cells: cellsFor(address.columns, a.AddressID, addressVals(a))})
		}
		return rows, nil
	}
	address.get = func(ctx context.Context, id int64) (map[string]string, error) {
		a, err := store.GetAddress(ctx, id)
		if err != nil || a == nil {
			return nil, err
		}
		return addressVals(a), nil
	}
	out[models.EntityAddress] = address

	job := &binding{
		entity:  models.EntityJob,
		columns: fieldColumns(models.EntityJob),
		create: func(ctx context.Context, v forms.Values) error {
			_, err := store.CreateJob(ctx, &models.Job{
				MemberUserID:           v.Int64("member_user_id"),
				RequiredCaregivingType: v.String("required_caregiving_type"),
				OtherRequirements:      v.NullString("other_requirements"),
				DatePosted:             v.String("date_posted"),
			})
			return err
		},
		update: func(ctx context.Context, id int64, v forms.Values) error {
			return store.UpdateJob(ctx, &models.Job{
				JobID:                  id,
				MemberUserID:           v.Int64("member_user_id"),
				RequiredCaregivingType: v.String("required_caregiving_type"),
				OtherRequirements:      v.NullString("other_requirements"),
				DatePosted:             v.String("date_posted"),
			})
		},
		remove: store.DeleteJob,
	}
	job.list = func(ctx context.Context) ([]row, error) {
		jobs, err := store.ListJobs(ctx)
		if err != nil {
			return nil, err
		}
		rows := make([]row, 0, len(jobs))
		for i := range jobs {
			j := &jobs[i]
			rows = append(rows, row{ID: j.JobID, Cells: cellsFor(job.columns, j.JobID, jobVals(j))})
		}
		return rows, nil
	}
	job.get = func(ctx context.Context, id int64) (map[string]string, error) {
		j, err := store.GetJob(ctx, id)
		if err != nil || j == nil {
			return nil, err
		}
		return jobVals(j), nil
	}
	out[models.EntityJob] = job

	jobApplication := &binding{
		entity:  models.EntityJobApplication,
		columns: fieldColumns(models.EntityJobApplication),
		create: func(ctx context.Context, v forms.Values) error {
			_, err := store.CreateJobApplication(ctx, &models.JobApplication{
				CaregiverUserID: v.Int64("caregiver_user_id"),
				JobID:           v.Int64("job_id"),
				DateApplied:     v.String("date_applied"),
			})
			return err
		},
		update: func(ctx context.Context, id int64, v forms.Values) error {
			return store.UpdateJobApplication(ctx, &models.JobApplication{
				JobApplicationID: id,
				CaregiverUserID:  v.Int64("caregiver_user_id"),
				JobID:            v.Int64("job_id"),
				DateApplied:      v.String("date_applied"),
			})
		},
		remove: store.DeleteJobApplication,
	}
	jobApplication.list = func(ctx context.Context) ([]row, error) {
		applications, err := store.ListJobApplications(ctx)
		if err != nil {
			return nil, err
		}
		rows := make([]row, 0, len(applications))
		for i := range applications {
			a := &applications[i]
			rows = append(rows, row{ID: a.JobApplicationID, Cells: cellsFor(jobApplication.columns, a.JobApplicationID, jobApplicationVals(a))})
		}
		return rows, nil
	}
	jobApplication.get = func(ctx context.Context, id int64) (map[string]string, error) {
		a, err := store.GetJobApplication(ctx, id)
		if err != nil || a == nil {
			return nil, err
		}
		return jobApplicationVals(a), nil
	}
	out[models.EntityJobApplication] = jobApplication

	appointment := &binding{
		entity: models.EntityAppointment,
		// the derived total-cost column is list-only
		columns: append(fieldColumns(models.EntityAppointment), column{Name: "total_cost", Label: "Total Cost"}),
		create: func(ctx context.Context, v forms.Values) error {
			_, err := store.CreateAppointment(ctx, &models.Appointment{
				CaregiverUserID: v.Int64("caregiver_user_id"),
				MemberUserID:    v.Int64("member_user_id"),
				AppointmentDate: v.String("appointment_date"),
				AppointmentTime: v.String("appointment_time"),
				WorkHours:       v.Decimal("work_hours"),
				Status:          v.String("status"),
			})
			return err
		},
		update: func(ctx context.Context, id int64, v forms.Values) error {
			return store.UpdateAppointment(ctx, &models.Appointment{
				AppointmentID:   id,
				CaregiverUserID: v.Int64("caregiver_user_id"),
				MemberUserID:    v.Int64("member_user_id"),
				AppointmentDate: v.String("appointment_date"),
				AppointmentTime: v.String("appointment_time"),
				WorkHours:       v.Decimal("work_hours"),
				Status:          v.String("status"),
			})
		},
		remove: store.DeleteAppointment,
	}
	appointment.list = func(ctx context.Context) ([]row, error) {
		appointments, err := store.ListAppointments(ctx)
		if err != nil {
			return nil, err
		}
		caregivers, err := store.ListCaregivers(ctx)
		if err != nil {
			return nil, err
		}
		rates := make(map[int64]models.Caregiver, len(caregivers))
		for _, c := range caregivers {
			rates[c.CaregiverUserID] = c
		}
		rows := make([]row, 0, len(appointments))
		for i := range appointments {
			a := &appointments[i]
			vals := appointmentVals(a)
			vals["total_cost"] = a.TotalCost(rates[a.CaregiverUserID].HourlyRate).StringFixed(2)
			rows = append(rows, row{ID: a.AppointmentID, Cells: cellsFor(appointment.columns, a.AppointmentID, vals)})
		}
		return rows, nil
	}
	appointment.get = func(ctx context.Context, id int64) (map[string]string, error) {
		a, err := store.GetAppointment(ctx, id)
		if err != nil || a == nil {
			return nil, err
		}
		return appointmentVals(a), nil
	}
	out[models.EntityAppointment] = appointment

	return out
}
