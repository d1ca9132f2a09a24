package sqlite

import (
	"context"
	"database/sql"

	"github.com/aknur/careadmin/pkg/repository"
)

// Reporting and maintenance queries consumed by scripts/db_report.

func (s *Store) ConfirmedPairings(ctx context.Context) ([]repository.ConfirmedPairing, error) {
	rows, err := s.conn.QueryRows(ctx, `
		SELECT c.caregiver_user_id,
		       uc.given_name || ' ' || uc.surname,
		       m.member_user_id,
		       um.given_name || ' ' || um.surname,
		       a.appointment_date,
		       a.appointment_time
		FROM appointment a
		JOIN caregiver c ON a.caregiver_user_id = c.caregiver_user_id
		JOIN user_account uc ON c.caregiver_user_id = uc.user_id
		JOIN member m ON a.member_user_id = m.member_user_id
		JOIN user_account um ON m.member_user_id = um.user_id
		WHERE a.status = 'confirmed'
		ORDER BY a.appointment_date DESC, a.appointment_time DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []repository.ConfirmedPairing
	for rows.Next() {
		var p repository.ConfirmedPairing
		if err := rows.Scan(&p.CaregiverUserID, &p.CaregiverName, &p.MemberUserID, &p.MemberName, &p.Date, &p.Time); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (s *Store) JobApplicantCounts(ctx context.Context) ([]repository.JobApplicantCount, error) {
	rows, err := s.conn.QueryRows(ctx, `
		SELECT j.job_id,
		       u.given_name || ' ' || u.surname,
		       j.required_caregiving_type,
		       COUNT(ja.caregiver_user_id)
		FROM job j
		JOIN member m ON j.member_user_id = m.member_user_id
		JOIN user_account u ON m.member_user_id = u.user_id
		LEFT JOIN job_application ja ON j.job_id = ja.job_id
		GROUP BY j.job_id, u.given_name, u.surname, j.required_caregiving_type
		ORDER BY COUNT(ja.caregiver_user_id) DESC, j.job_id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []repository.JobApplicantCount
	for rows.Next() {
		var c repository.JobApplicantCount
		if err := rows.Scan(&c.JobID, &c.MemberName, &c.CaregivingType, &c.Applicants); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (s *Store) ConfirmedHoursByCaregiver(ctx context.Context) ([]repository.CaregiverHours, error) {
	rows, err := s.conn.QueryRows(ctx, `
		SELECT c.caregiver_user_id,
		       uc.given_name || ' ' || uc.surname,
		       c.caregiving_type,
		       SUM(a.work_hours)
		FROM appointment a
		JOIN caregiver c ON a.caregiver_user_id = c.caregiver_user_id
		JOIN user_account uc ON c.caregiver_user_id = uc.user_id
		WHERE a.status = 'confirmed'
		GROUP BY c.caregiver_user_id, uc.given_name, uc.surname, c.caregiving_type
		ORDER BY SUM(a.work_hours) DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []repository.CaregiverHours
	for rows.Next() {
		var h repository.CaregiverHours
		var total float64
		if err := rows.Scan(&h.CaregiverUserID, &h.CaregiverName, &h.CaregivingType, &total); err != nil {
			return nil, err
		}
		h.TotalHours = dec(total)
		out = append(out, h)
	}
	return out, rows.Err()
}

func (s *Store) AboveAverageEarners(ctx context.Context) ([]repository.CaregiverEarnings, error) {
	rows, err := s.conn.QueryRows(ctx, `
		SELECT c.caregiver_user_id,
		       uc.given_name || ' ' || uc.surname,
		       c.caregiving_type,
		       SUM(a.work_hours * c.hourly_rate)
		FROM appointment a
		JOIN caregiver c ON a.caregiver_user_id = c.caregiver_user_id
		JOIN user_account uc ON c.caregiver_user_id = uc.user_id
		WHERE a.status = 'confirmed'
		GROUP BY c.caregiver_user_id, uc.given_name, uc.surname, c.caregiving_type
		HAVING SUM(a.work_hours * c.hourly_rate) > (
			SELECT AVG(total_pay) FROM (
				SELECT SUM(a2.work_hours * c2.hourly_rate) AS total_pay
				FROM appointment a2
				JOIN caregiver c2 ON a2.caregiver_user_id = c2.caregiver_user_id
				WHERE a2.status = 'confirmed'
				GROUP BY c2.caregiver_user_id
			)
		)
		ORDER BY SUM(a.work_hours * c.hourly_rate) DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []repository.CaregiverEarnings
	for rows.Next() {
		var e repository.CaregiverEarnings
		var total float64
		if err := rows.Scan(&e.CaregiverUserID, &e.CaregiverName, &e.CaregivingType, &total); err != nil {
			return nil, err
		}
		e.Total = dec(total)
		out = append(out, e)
	}
	return out, rows.Err()
}

func (s *Store) ConfirmedAppointmentCosts(ctx context.Context) ([]repository.AppointmentCost, error) {
	rows, err := s.conn.QueryRows(ctx, `
		SELECT a.appointment_id,
		       uc.given_name || ' ' || uc.surname,
		       um.given_name || ' ' || um.surname,
		       a.work_hours,
		       c.hourly_rate,
		       ROUND(a.work_hours * c.hourly_rate, 2)
		FROM appointment a
		JOIN caregiver c ON a.caregiver_user_id = c.caregiver_user_id
		JOIN user_account uc ON c.caregiver_user_id = uc.user_id
		JOIN member m ON a.member_user_id = m.member_user_id
		JOIN user_account um ON m.member_user_id = um.user_id
		WHERE a.status = 'confirmed'
		ORDER BY ROUND(a.work_hours * c.hourly_rate, 2) DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []repository.AppointmentCost
	for rows.Next() {
		var c repository.AppointmentCost
		var hours, rate, cost float64
		if err := rows.Scan(&c.AppointmentID, &c.CaregiverName, &c.MemberName, &hours, &rate, &cost); err != nil {
			return nil, err
		}
		c.WorkHours = dec(hours)
		c.HourlyRate = dec(rate)
		c.TotalCost = dec(cost)
		out = append(out, c)
	}
	return out, rows.Err()
}

func (s *Store) ApplicationsOverview(ctx context.Context, limit int) ([]repository.ApplicationOverview, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := s.conn.QueryRows(ctx, `
		SELECT job_application_id, job_id, required_caregiving_type, employer_name, applicant_name, applicant_type, hourly_rate, date_applied
		FROM job_applications_view
		ORDER BY date_applied DESC
		LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []repository.ApplicationOverview
	for rows.Next() {
		var o repository.ApplicationOverview
		var rate float64
		if err := rows.Scan(&o.JobApplicationID, &o.JobID, &o.CaregivingType, &o.EmployerName, &o.ApplicantName, &o.ApplicantType, &rate, &o.DateApplied); err != nil {
			return nil, err
		}
		o.HourlyRate = dec(rate)
		out = append(out, o)
	}
	return out, rows.Err()
}

// DeduplicateJobApplications removes duplicate (caregiver, job) rows,
// keeping the lowest id of each group. The unique constraint makes new
// duplicates impossible; this cleans up data imported before it existed.
func (s *Store) DeduplicateJobApplications(ctx context.Context) (int64, error) {
	var removed int64
	err := s.conn.WithTx(ctx, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx, `
			DELETE FROM job_application
			WHERE job_application_id IN (
				SELECT job_application_id FROM (
					SELECT job_application_id,
					       ROW_NUMBER() OVER (PARTITION BY caregiver_user_id, job_id ORDER BY job_application_id) AS rn
					FROM job_application
				) WHERE rn > 1
			)`)
		if err != nil {
			return err
		}
		removed, err = res.RowsAffected()
		return err
	})
	if err != nil {
		return 0, err
	}
	return removed, nil
}

// ApplyCommission bumps hourly rates once per caregiver: +0.30 under 10,
// otherwise +10%, then marks the row so a re-run is a no-op.
func (s *Store) ApplyCommission(ctx context.Context) (int64, error) {
	var updated int64
	err := s.conn.WithTx(ctx, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx, `
			UPDATE caregiver
			SET hourly_rate = CASE
				WHEN hourly_rate < 10 THEN ROUND(hourly_rate + 0.3, 2)
				ELSE ROUND(hourly_rate * 1.10, 2)
			END,
			commission_applied = 1
			WHERE COALESCE(commission_applied, 0) = 0`)
		if err != nil {
			return err
		}
		updated, err = res.RowsAffected()
		return err
	})
	if err != nil {
		return 0, err
	}
	return updated, nil
}
