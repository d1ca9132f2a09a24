package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/aknur/careadmin/pkg/models"
	"github.com/aknur/careadmin/pkg/repository"
)

func (s *Store) CreateUserAccount(ctx context.Context, u *models.UserAccount) (int64, error) {
	if u == nil {
		return 0, fmt.Errorf("user account is nil")
	}

	var id int64
	err := s.conn.WithTx(ctx, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx,
			`INSERT INTO user_account (email, given_name, surname, city, phone_number, profile_description, password) VALUES (?, ?, ?, ?, ?, ?, ?)`,
			u.Email, u.GivenName, u.Surname, u.City, u.PhoneNumber, u.ProfileDescription, u.Password)
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

func scanUserAccount(row interface{ Scan(dest ...any) error }) (*models.UserAccount, error) {
	var u models.UserAccount
	var city, phone, desc sql.NullString
	if err := row.Scan(&u.UserID, &u.Email, &u.GivenName, &u.Surname, &city, &phone, &desc, &u.Password); err != nil {
		return nil, err
	}
	u.City = nullable(city)
	u.PhoneNumber = nullable(phone)
	u.ProfileDescription = nullable(desc)
	return &u, nil
}

func (s *Store) GetUserAccount(ctx context.Context, id int64) (*models.UserAccount, error) {
	row := s.conn.QueryRow(ctx,
		`SELECT user_id, email, given_name, surname, city, phone_number, profile_description, password FROM user_account WHERE user_id = ?`, id)
	u, err := scanUserAccount(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return u, nil
}

func (s *Store) ListUserAccounts(ctx context.Context) ([]models.UserAccount, error) {
	rows, err := s.conn.QueryRows(ctx,
		`SELECT user_id, email, given_name, surname, city, phone_number, profile_description, password FROM user_account ORDER BY user_id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.UserAccount
	for rows.Next() {
		u, err := scanUserAccount(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *u)
	}
	return out, rows.Err()
}

// UpdateUserAccount overwrites every editable column of the row.
func (s *Store) UpdateUserAccount(ctx context.Context, u *models.UserAccount) error {
	if u == nil {
		return fmt.Errorf("user account is nil")
	}

	return s.conn.WithTx(ctx, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx,
			`UPDATE user_account SET email = ?, given_name = ?, surname = ?, city = ?, phone_number = ?, profile_description = ?, password = ? WHERE user_id = ?`,
			u.Email, u.GivenName, u.Surname, u.City, u.PhoneNumber, u.ProfileDescription, u.Password, u.UserID)
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

func (s *Store) DeleteUserAccount(ctx context.Context, id int64) error {
	return s.conn.WithTx(ctx, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx, `DELETE FROM user_account WHERE user_id = ?`, id)
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
