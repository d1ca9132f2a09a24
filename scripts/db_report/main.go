package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"text/tabwriter"

	"github.com/aknur/careadmin/internal/config"
	"github.com/aknur/careadmin/internal/db"
	"github.com/aknur/careadmin/internal/repository/sqlite"
)

func main() {
	var (
		limit  = flag.Int("limit", 20, "Row limit for the applications overview")
		dedupe = flag.Bool("dedupe", false, "Remove duplicate job applications before reporting")
		commit = flag.Bool("commission", false, "Apply the pending commission adjustment before reporting")
	)
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

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	store := sqlite.New(database, logger)

	if *dedupe {
		n, err := store.DeduplicateJobApplications(ctx)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Dedupe error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Removed %d duplicate job applications.\n\n", n)
	}
	if *commit {
		n, err := store.ApplyCommission(ctx)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Commission error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Applied commission to %d caregivers.\n\n", n)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)

	pairings, err := store.ConfirmedPairings(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Report error: %v\n", err)
		os.Exit(1)
	}
	fmt.Fprintln(w, "CONFIRMED PAIRINGS")
	fmt.Fprintln(w, "Caregiver\tMember\tDate\tTime")
	for _, p := range pairings {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", p.CaregiverName, p.MemberName, p.Date, p.Time)
	}
	fmt.Fprintln(w)

	counts, err := store.JobApplicantCounts(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Report error: %v\n", err)
		os.Exit(1)
	}
	fmt.Fprintln(w, "APPLICANTS PER JOB")
	fmt.Fprintln(w, "Job\tPosted by\tType\tApplicants")
	for _, c := range counts {
		fmt.Fprintf(w, "#%d\t%s\t%s\t%d\n", c.JobID, c.MemberName, c.CaregivingType, c.Applicants)
	}
	fmt.Fprintln(w)

	hours, err := store.ConfirmedHoursByCaregiver(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Report error: %v\n", err)
		os.Exit(1)
	}
	fmt.Fprintln(w, "CONFIRMED HOURS PER CAREGIVER")
	fmt.Fprintln(w, "Caregiver\tType\tHours")
	for _, h := range hours {
		fmt.Fprintf(w, "%s\t%s\t%s\n", h.CaregiverName, h.CaregivingType, h.TotalHours.StringFixed(2))
	}
	fmt.Fprintln(w)

	earners, err := store.AboveAverageEarners(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Report error: %v\n", err)
		os.Exit(1)
	}
	fmt.Fprintln(w, "ABOVE-AVERAGE EARNERS")
	fmt.Fprintln(w, "Caregiver\tType\tTotal")
	for _, e := range earners {
		fmt.Fprintf(w, "%s\t%s\t%s\n", e.CaregiverName, e.CaregivingType, e.Total.StringFixed(2))
	}
	fmt.Fprintln(w)

	costs, err := store.ConfirmedAppointmentCosts(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Report error: %v\n", err)
		os.Exit(1)
	}
	fmt.Fprintln(w, "CONFIRMED APPOINTMENT COSTS")
	fmt.Fprintln(w, "Appointment\tCaregiver\tMember\tHours\tRate\tTotal")
	for _, c := range costs {
		fmt.Fprintf(w, "#%d\t%s\t%s\t%s\t%s\t%s\n",
			c.AppointmentID, c.CaregiverName, c.MemberName,
			c.WorkHours.StringFixed(2), c.HourlyRate.StringFixed(2), c.TotalCost.StringFixed(2))
	}
	fmt.Fprintln(w)

	apps, err := store.ApplicationsOverview(ctx, *limit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Report error: %v\n", err)
		os.Exit(1)
	}
	fmt.Fprintln(w, "APPLICATIONS OVERVIEW")
	fmt.Fprintln(w, "ID\tJob\tType\tEmployer\tApplicant\tApplicant type\tRate\tApplied")
	for _, a := range apps {
		fmt.Fprintf(w, "%d\t#%d\t%s\t%s\t%s\t%s\t%s\t%s\n",
			a.JobApplicationID, a.JobID, a.CaregivingType, a.EmployerName,
			a.ApplicantName, a.ApplicantType, a.HourlyRate.StringFixed(2), a.DateApplied)
	}

	w.Flush()
}
