package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/aknur/careadmin/pkg/models"
	"github.com/aknur/careadmin/pkg/repository"
)

func (s *Store) CreateAppointment(ctx context.Context, a *models.Appointment) (int64, error) {
	if a == nil {
		return 0, fmt.Errorf("appointment is nil")
	}

	var id int64
	err := s.conn.WithTx(ctx, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx,
			`INSERT INTO appointment (caregiver_user_id, member_user_id, appointment_date, appointment_time, work_hours, status) VALUES (?, ?, ?, ?, ?, ?)`,
			a.CaregiverUserID, a.MemberUserID, a.AppointmentDate, a.AppointmentTime, money(a.WorkHours), a.Status)
		if err != nil {
			return err
		}
		id, err = res.LastInsertId()
		return err
	})
	if err != nil {
		return 0, err
	}
	return id, nil
}

func scanAppointment(row interface{ Scan(dest ...any) error }) (*models.Appointment, error) {
	var a models.Appointment
	var hours float64
	if err := row.Scan(&a.AppointmentID, &a.CaregiverUserID, &a.MemberUserID, &a.AppointmentDate, &a.AppointmentTime, &hours, &a.Status); err != nil {
		return nil, err
	}
	a.WorkHours = dec(hours)
	return &a, nil
}

func (s *Store) GetAppointment(ctx context.Context, id int64) (*models.Appointment, error) {
	row := s.conn.QueryRow(ctx,
		`SELECT appointment_id, caregiver_user_id, member_user_id, appointment_date, appointment_time, work_hours, status FROM appointment WHERE appointment_id = ?`, id)
	a, err := scanAppointment(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return a, nil
}

func (s *Store) ListAppointments(ctx context.Context) ([]models.Appointment, error) {
	rows, err := s.conn.QueryRows(ctx,
		`SELECT appointment_id, caregiver_user_id, member_user_id, appointment_date, appointment_time, work_hours, status FROM appointment ORDER BY appointment_id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.Appointment
	for rows.Next() {
		a, err := scanAppointment(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *a)
	}
	return out, rows.Err()
}

func (s *Store) UpdateAppointment(ctx context.Context, a *models.Appointment) error {
	if a == nil {
		return fmt.Errorf("appointment is nil")
	}

	return s.conn.WithTx(ctx, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx,
			`UPDATE appointment SET caregiver_user_id = ?, member_user_id = ?, appointment_date = ?, appointment_time = ?, work_hours = ?, status = ? WHERE appointment_id = ?`,
			a.CaregiverUserID, a.MemberUserID, a.AppointmentDate, a.AppointmentTime, money(a.WorkHours), a.Status, a.AppointmentID)
		if err != nil {
			return err
		}
		n, err := res.RowsAffected()
		if err != nil {
			return err
		}
		if n == 0 {
			return repository.ErrNotFound
		}
		return nil
	})
}

func (s *Store) DeleteAppointment(ctx context.Context, id int64) error {
	return s.conn.WithTx(ctx, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx, `DELETE FROM appointment WHERE appointment_id = ?`, id)
		if err != nil {
			return err
		}
		n, err := res.RowsAffected()
		if err != nil {
			return err
		}
		if n == 0 {
			return repository.ErrNotFound
		}
		return nil
	})
}
