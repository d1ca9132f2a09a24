package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/aknur/careadmin/pkg/models"
	"github.com/aknur/careadmin/pkg/repository"
)

func (s *Store) CreateJob(ctx context.Context, j *models.Job) (int64, error) {
	if j == nil {
		return 0, fmt.Errorf("job is nil")
	}
	if j.DatePosted == "" {
		j.DatePosted = time.Now().Format("2006-01-02")
	}

	var id int64
	err := s.conn.WithTx(ctx, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx,
			`INSERT INTO job (member_user_id, required_caregiving_type, other_requirements, date_posted) VALUES (?, ?, ?, ?)`,
			j.MemberUserID, j.RequiredCaregivingType, j.OtherRequirements, j.DatePosted)
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

func scanJob(row interface{ Scan(dest ...any) error }) (*models.Job, error) {
	var j models.Job
	var reqs sql.NullString
	if err := row.Scan(&j.JobID, &j.MemberUserID, &j.RequiredCaregivingType, &reqs, &j.DatePosted); err != nil {
		return nil, err
	}
	j.OtherRequirements = nullable(reqs)
	return &j, nil
}

func (s *Store) GetJob(ctx context.Context, id int64) (*models.Job, error) {
	row := s.conn.QueryRow(ctx,
		`SELECT job_id, member_user_id, required_caregiving_type, other_requirements, date_posted FROM job WHERE job_id = ?`, id)
	j, err := scanJob(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return j, nil
}

func (s *Store) ListJobs(ctx context.Context) ([]models.Job, error) {
	rows, err := s.conn.QueryRows(ctx,
		`SELECT job_id, member_user_id, required_caregiving_type, other_requirements, date_posted FROM job ORDER BY job_id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.Job
	for rows.Next() {
		j, err := scanJob(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *j)
	}
	return out, rows.Err()
}

func (s *Store) UpdateJob(ctx context.Context, j *models.Job) error {
	if j == nil {
		return fmt.Errorf("job is nil")
	}

	// An empty DatePosted means the operator cleared the field: write NULL
	// so the NOT NULL constraint rejects the update instead of silently
	// storing a blank date.
	var datePosted any
	if j.DatePosted != "" {
		datePosted = j.DatePosted
	}

	return s.conn.WithTx(ctx, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx,
			`UPDATE job SET member_user_id = ?, required_caregiving_type = ?, other_requirements = ?, date_posted = ? WHERE job_id = ?`,
			j.MemberUserID, j.RequiredCaregivingType, j.OtherRequirements, datePosted, j.JobID)
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

func (s *Store) DeleteJob(ctx context.Context, id int64) error {
	return s.conn.WithTx(ctx, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx, `DELETE FROM job WHERE job_id = ?`, id)
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
