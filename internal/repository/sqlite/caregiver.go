package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/aknur/careadmin/pkg/models"
	"github.com/aknur/careadmin/pkg/repository"
)

func (s *Store) CreateCaregiver(ctx context.Context, c *models.Caregiver) (int64, error) {
	if c == nil {
		return 0, fmt.Errorf("caregiver is nil")
	}

	err := s.conn.WithTx(ctx, func(tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO caregiver (caregiver_user_id, photo, gender, caregiving_type, hourly_rate, commission_applied) VALUES (?, ?, ?, ?, ?, ?)`,
			c.CaregiverUserID, c.Photo, c.Gender, c.CaregivingType, money(c.HourlyRate), c.CommissionApplied)
		return err
	})
	if err != nil {
		return 0, err
	}
	return c.CaregiverUserID, nil
}

func scanCaregiver(row interface{ Scan(dest ...any) error }) (*models.Caregiver, error) {
	var c models.Caregiver
	var photo, gender sql.NullString
	var rate float64
	if err := row.Scan(&c.CaregiverUserID, &photo, &gender, &c.CaregivingType, &rate, &c.CommissionApplied); err != nil {
		return nil, err
	}
	c.Photo = nullable(photo)
	c.Gender = nullable(gender)
	c.HourlyRate = dec(rate)
	return &c, nil
}

func (s *Store) GetCaregiver(ctx context.Context, id int64) (*models.Caregiver, error) {
	row := s.conn.QueryRow(ctx,
		`SELECT caregiver_user_id, photo, gender, caregiving_type, hourly_rate, commission_applied FROM caregiver WHERE caregiver_user_id = ?`, id)
	c, err := scanCaregiver(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return c, nil
}

func (s *Store) ListCaregivers(ctx context.Context) ([]models.Caregiver, error) {
	rows, err := s.conn.QueryRows(ctx,
		`SELECT caregiver_user_id, photo, gender, caregiving_type, hourly_rate, commission_applied FROM caregiver ORDER BY caregiver_user_id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.Caregiver
	for rows.Next() {
		c, err := scanCaregiver(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *c)
	}
	return out, rows.Err()
}

// UpdateCaregiver overwrites the editable columns; the identifying
// caregiver_user_id is settable only at creation.
func (s *Store) UpdateCaregiver(ctx context.Context, c *models.Caregiver) error {
	if c == nil {
		return fmt.Errorf("caregiver is nil")
	}

	return s.conn.WithTx(ctx, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx,
			`UPDATE caregiver SET photo = ?, gender = ?, caregiving_type = ?, hourly_rate = ?, commission_applied = ? WHERE caregiver_user_id = ?`,
			c.Photo, c.Gender, c.CaregivingType, money(c.HourlyRate), c.CommissionApplied, c.CaregiverUserID)
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

func (s *Store) DeleteCaregiver(ctx context.Context, id int64) error {
	return s.conn.WithTx(ctx, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx, `DELETE FROM caregiver WHERE caregiver_user_id = ?`, id)
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
