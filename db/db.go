package db

import "embed"

//go:embed migrations/*.sql
var Migrations embed.FS

//go:embed seed/seed_data.sql
var seedFiles embed.FS

// SeedScript returns the embedded sample-data script replayed by
// internal/seed when the core tables are empty.
func SeedScript() string {
	b, err := seedFiles.ReadFile("seed/seed_data.sql")
	if err != nil {
		// the file is embedded at compile time; missing means a broken build
		panic(err)
	}
	return string(b)
}
