package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/aknur/careadmin/pkg/models"
	"github.com/aknur/careadmin/pkg/repository"
)

func (s *Store) CreateJobApplication(ctx context.Context, a *models.JobApplication) (int64, error) {
	if a == nil {
		return 0, fmt.Errorf("job application is nil")
	}
	if a.DateApplied == "" {
		a.DateApplied = time.Now().Format("2006-01-02")
	}

	var id int64
	err := s.conn.WithTx(ctx, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx,
			`INSERT INTO job_application (caregiver_user_id, job_id, date_applied) VALUES (?, ?, ?)`,
			a.CaregiverUserID, a.JobID, a.DateApplied)
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

func scanJobApplication(row interface{ Scan(dest ...any) error }) (*models.JobApplication, error) {
	var a models.JobApplication
	if err := row.Scan(&a.JobApplicationID, &a.CaregiverUserID, &a.JobID, &a.DateApplied); err != nil {
		return nil, err
	}
	return &a, nil
}

func (s *Store) GetJobApplication(ctx context.Context, id int64) (*models.JobApplication, error) {
	row := s.conn.QueryRow(ctx,
		`SELECT job_application_id, caregiver_user_id, job_id, date_applied FROM job_application WHERE job_application_id = ?`, id)
	a, err := scanJobApplication(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return a, nil
}

func (s *Store) ListJobApplications(ctx context.Context) ([]models.JobApplication, error) {
	rows, err := s.conn.QueryRows(ctx,
		`SELECT job_application_id, caregiver_user_id, job_id, date_applied FROM job_application ORDER BY job_application_id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.JobApplication
	for rows.Next() {
		a, err := scanJobApplication(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *a)
	}
	return out, rows.Err()
}

func (s *Store) UpdateJobApplication(ctx context.Context, a *models.JobApplication) error {
	if a == nil {
		return fmt.Errorf("job application is nil")
	}

	return s.conn.WithTx(ctx, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx,
			`UPDATE job_application SET caregiver_user_id = ?, job_id = ?, date_applied = ? WHERE job_application_id = ?`,
			a.CaregiverUserID, a.JobID, a.DateApplied, a.JobApplicationID)
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

func (s *Store) DeleteJobApplication(ctx context.Context, id int64) error {
	return s.conn.WithTx(ctx, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx, `DELETE FROM job_application WHERE job_application_id = ?`, id)
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
