package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/aknur/careadmin/pkg/models"
	"github.com/aknur/careadmin/pkg/repository"
)

func (s *Store) CreateMember(ctx context.Context, m *models.Member) (int64, error) {
	if m == nil {
		return 0, fmt.Errorf("member is nil")
	}

	err := s.conn.WithTx(ctx, func(tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO member (member_user_id, house_rules, dependent_description) VALUES (?, ?, ?)`,
			m.MemberUserID, m.HouseRules, m.DependentDescription)
		return err
	})
	if err != nil {
		return 0, err
	}
	return m.MemberUserID, nil
}

func scanMember(row interface{ Scan(dest ...any) error }) (*models.Member, error) {
	var m models.Member
	var rules, dep sql.NullString
	if err := row.Scan(&m.MemberUserID, &rules, &dep); err != nil {
		return nil, err
	}
	m.HouseRules = nullable(rules)
	m.DependentDescription = nullable(dep)
	return &m, nil
}

func (s *Store) GetMember(ctx context.Context, id int64) (*models.Member, error) {
	row := s.conn.QueryRow(ctx,
		`SELECT member_user_id, house_rules, dependent_description FROM member WHERE member_user_id = ?`, id)
	m, err := scanMember(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return m, nil
}

func (s *Store) ListMembers(ctx context.Context) ([]models.Member, error) {
	rows, err := s.conn.QueryRows(ctx,
		`SELECT member_user_id, house_rules, dependent_description FROM member ORDER BY member_user_id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.Member
	for rows.Next() {
		m, err := scanMember(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *m)
	}
	return out, rows.Err()
}

func (s *Store) UpdateMember(ctx context.Context, m *models.Member) error {
	if m == nil {
		return fmt.Errorf("member is nil")
	}

	return s.conn.WithTx(ctx, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx,
			`UPDATE member SET house_rules = ?, dependent_description = ? WHERE member_user_id = ?`,
			m.HouseRules, m.DependentDescription, m.MemberUserID)
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

func (s *Store) DeleteMember(ctx context.Context, id int64) error {
	return s.conn.WithTx(ctx, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx, `DELETE FROM member WHERE member_user_id = ?`, id)
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
