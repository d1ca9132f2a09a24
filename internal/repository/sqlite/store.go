package sqlite

import (
	"database/sql"
	"io"
	"log/slog"

	"github.com/shopspring/decimal"

	"github.com/aknur/careadmin/internal/db"
	"github.com/aknur/careadmin/pkg/repository"
)

// Store implements the repository interfaces over the internal DB wrapper.
type Store struct {
	conn   *db.DB
	logger *slog.Logger
}

// Ensure Store implements the public contracts.
var _ repository.Store = (*Store)(nil)

func New(conn *db.DB, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}
	return &Store{conn: conn, logger: logger}
}

// nullable converts a scanned NullString into the model's pointer form.
func nullable(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	s := ns.String
	return &s
}

// dec normalizes a scanned NUMERIC value to a two-decimal fixed point.
func dec(f float64) decimal.Decimal {
	return decimal.NewFromFloat(f).Round(2)
}

// money renders a decimal in the canonical two-decimal form used for
// storage and display.
func money(d decimal.Decimal) string {
	return d.StringFixed(2)
}
