package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/aknur/careadmin/pkg/models"
	"github.com/aknur/careadmin/pkg/repository"
)

func (s *Store) CreateAddress(ctx context.Context, a *models.Address) (int64, error) {
	if a == nil {
		return 0, fmt.Errorf("address is nil")
	}

	var id int64
	err := s.conn.WithTx(ctx, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx,
			`INSERT INTO address (member_user_id, house_number, street, town) VALUES (?, ?, ?, ?)`,
			a.MemberUserID, a.HouseNumber, a.Street, a.Town)
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

func scanAddress(row interface{ Scan(dest ...any) error }) (*models.Address, error) {
	var a models.Address
	var houseNo, street, town sql.NullString
	if err := row.Scan(&a.AddressID, &a.MemberUserID, &houseNo, &street, &town); err != nil {
		return nil, err
	}
	a.HouseNumber = nullable(houseNo)
	a.Street = nullable(street)
	a.Town = nullable(town)
	return &a, nil
}

func (s *Store) GetAddress(ctx context.Context, id int64) (*models.Address, error) {
	row := s.conn.QueryRow(ctx,
		`SELECT address_id, member_user_id, house_number, street, town FROM address WHERE address_id = ?`, id)
	a, err := scanAddress(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return a, nil
}

func (s *Store) ListAddresses(ctx context.Context) ([]models.Address, error) {
	rows, err := s.conn.QueryRows(ctx,
		`SELECT address_id, member_user_id, house_number, street, town FROM address ORDER BY address_id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.Address
	for rows.Next() {
		a, err := scanAddress(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *a)
	}
	return out, rows.Err()
}

func (s *Store) UpdateAddress(ctx context.Context, a *models.Address) error {
	if a == nil {
		return fmt.Errorf("address is nil")
	}

	return s.conn.WithTx(ctx, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx,
			`UPDATE address SET member_user_id = ?, house_number = ?, street = ?, town = ? WHERE address_id = ?`,
			a.MemberUserID, a.HouseNumber, a.Street, a.Town, a.AddressID)
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

func (s *Store) DeleteAddress(ctx context.Context, id int64) error {
	return s.conn.WithTx(ctx, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx, `DELETE FROM address WHERE address_id = ?`, id)
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
