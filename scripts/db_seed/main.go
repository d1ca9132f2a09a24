package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	dbfs "github.com/aknur/careadmin/db"
	"github.com/aknur/careadmin/internal/config"
	"github.com/aknur/careadmin/internal/db"
	"github.com/aknur/careadmin/internal/seed"
)

func main() {
	var file = flag.String("file", "", "SQL script to replay instead of the embedded seed data")
	flag.Parse()

	ctx := context.Background()
	cfg, err := config.LoadConfig("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}
	database, err := db.New(ctx, cfg.DatabaseDSN)
	if err != nil {
		fmt.Fprintf(os.Stderr, "DB open error: %v\n", err)
		os.Exit(1)
	}
	defer database.Close()

	if err := db.Migrate(ctx, database, dbfs.Migrations); err != nil {
		fmt.Fprintf(os.Stderr, "Migration runner error: %v\n", err)
		os.Exit(1)
	}

	script := dbfs.SeedScript()
	if *file != "" {
		data, err := os.ReadFile(*file)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Read error: %v\n", err)
			os.Exit(1)
		}
		script = string(data)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	stats := seed.Replay(ctx, database, script, logger)
	fmt.Printf("Seed replay done: %d executed, %d failed, %d skipped.\n",
		stats.Executed, stats.Failed, stats.Skipped)
	if stats.Failed > 0 {
		os.Exit(1)
	}
}
