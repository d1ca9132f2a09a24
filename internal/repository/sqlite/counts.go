package sqlite

import (
	"context"

	"github.com/aknur/careadmin/pkg/models"
)

// Count returns the number of rows for one entity. The table name comes
// from the closed Entity set, never from request input.
func (s *Store) Count(ctx context.Context, entity models.Entity) (int64, error) {
	var n int64
	row := s.conn.QueryRow(ctx, `SELECT COUNT(1) FROM `+string(entity))
	if err := row.Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}
