package db_test

import (
	"context"
	"fmt"
	"testing"

	dbfs "github.com/aknur/careadmin/db"
	dbpkg "github.com/aknur/careadmin/internal/db"
)

func TestMigrate_AppliesSchemaOnce(t *testing.T) {
	ctx := context.Background()
	d := open(t)

	if err := dbpkg.Migrate(ctx, d, dbfs.Migrations); err != nil {
		t.Fatalf("Migrate returned error: %v", err)
	}

	// Every core table should exist afterwards.
	tables := []string{
		"user_account", "caregiver", "member", "address",
		"job", "job_application", "appointment",
	}
	for _, table := range tables {
		var n int64
		q := fmt.Sprintf(`SELECT COUNT(1) FROM %s`, table)
		if err := d.QueryRow(ctx, q).Scan(&n); err != nil {
			t.Fatalf("table %s missing after migration: %v", table, err)
		}
	}

	// The overview view is created by the second migration.
	var n int64
	if err := d.QueryRow(ctx, `SELECT COUNT(1) FROM job_applications_view`).Scan(&n); err != nil {
		t.Fatalf("job_applications_view missing: %v", err)
	}

	// Re-running is a no-op thanks to schema_migrations tracking.
	if err := dbpkg.Migrate(ctx, d, dbfs.Migrations); err != nil {
		t.Fatalf("second Migrate returned error: %v", err)
	}

	var versions int64
	if err := d.QueryRow(ctx, `SELECT COUNT(1) FROM schema_migrations`).Scan(&versions); err != nil {
		t.Fatalf("schema_migrations scan: %v", err)
	}
	if versions != 2 {
		t.Fatalf("schema_migrations rows = %d, want 2", versions)
	}
}
