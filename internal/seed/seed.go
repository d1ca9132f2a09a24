// Package seed replays a multi-statement sample-data script against the
// store, one transaction per statement, continuing past failures. The
// trade of atomicity for partial-progress resilience is deliberate: the
// script is idempotent-ish sample data, not a production migration.
package seed

import (
	"context"
	"database/sql"
	"log/slog"
	"strings"

	"github.com/aknur/careadmin/internal/db"
	"github.com/aknur/careadmin/pkg/models"
)

// Split tokenizes a script into individual statements. Full lines whose
// first non-blank characters are "--" are dropped, then the script is
// scanned tracking single/double-quote state; a semicolon outside any
// string terminates the current statement. A backslash immediately before
// a quote character suppresses boundary recognition (a simplified escaping
// rule, not SQL-standard quote doubling).
func Split(script string) []string {
	lines := strings.Split(script, "\n")
	kept := make([]string, 0, len(lines))
	for _, line := range lines {
		if strings.HasPrefix(strings.TrimSpace(line), "--") {
			continue
		}
		kept = append(kept, line)
	}
	text := strings.Join(kept, "\n")

	var (
		stmts    []string
		current  strings.Builder
		inSingle bool
		inDouble bool
		prev     rune
	)
	for _, ch := range text {
		switch {
		case ch == '\'' && !inDouble && prev != '\\':
			inSingle = !inSingle
		case ch == '"' && !inSingle && prev != '\\':
			inDouble = !inDouble
		case ch == ';' && !inSingle && !inDouble:
			if s := strings.TrimSpace(current.String()); s != "" {
				stmts = append(stmts, s)
			}
			current.Reset()
			prev = ch
			continue
		}
		current.WriteRune(ch)
		prev = ch
	}
	if s := strings.TrimSpace(current.String()); s != "" {
		stmts = append(stmts, s)
	}
	return stmts
}

// Stats summarizes one replay run.
type Stats struct {
	Executed int
	Failed   int
	Skipped  int // failures classified as non-critical
}

// nonCritical reports whether a failed statement is an expected artifact of
// replaying a script written for another store: sequence bookkeeping or
// references to objects that do not exist here. Keyword heuristic,
// best-effort.
func nonCritical(stmt string, err error) bool {
	if strings.Contains(strings.ToLower(stmt), "setval") {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "does not exist") || strings.Contains(msg, "no such")
}

// Replay executes every statement of script independently: each gets its
// own transaction, committed on success and rolled back on failure.
// Failures never abort the run.
func Replay(ctx context.Context, d *db.DB, script string, logger *slog.Logger) Stats {
	var stats Stats
	for _, stmt := range Split(script) {
		err := d.WithTx(ctx, func(tx *sql.Tx) error {
			_, execErr := tx.ExecContext(ctx, stmt)
			return execErr
		})
		if err == nil {
			stats.Executed++
			continue
		}
		if nonCritical(stmt, err) {
			stats.Skipped++
			logger.Warn("seed statement skipped",
				slog.String("statement", head(stmt)),
				slog.Any("err", err),
			)
			continue
		}
		stats.Failed++
		logger.Error("seed statement failed",
			slog.String("statement", head(stmt)),
			slog.Any("err", err),
		)
	}
	return stats
}

// head truncates a statement for log output.
func head(stmt string) string {
	stmt = strings.Join(strings.Fields(stmt), " ")
	if len(stmt) > 80 {
		return stmt[:80] + "..."
	}
	return stmt
}

// Empty reports whether every core table has zero rows; the guard for
// one-time seed replay at startup.
func Empty(ctx context.Context, d *db.DB) (bool, error) {
	for _, e := range models.Entities() {
		var n int64
		row := d.QueryRow(ctx, `SELECT COUNT(1) FROM `+string(e))
		if err := row.Scan(&n); err != nil {
			return false, err
		}
		if n > 0 {
			return false, nil
		}
	}
	return true, nil
}
