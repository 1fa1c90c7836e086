// Command advisorctl runs migrations, seeds demo data and queries a
// student's standing directly against the database.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/yigit/advisory/internal/bootstrap"
	"github.com/yigit/advisory/internal/config"
	"github.com/yigit/advisory/internal/db"
	"github.com/yigit/advisory/internal/seed"
)

type session struct {
	cfg      *config.Config
	logger   zerolog.Logger
	database *db.PostgresDB
}

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "advisorctl",
		Short:         "Operate the academic advisory store",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().String("config", bootstrap.DefaultConfigPath, "Path to the yaml configuration")
	rootCmd.PersistentFlags().Bool("json", false, "Print machine-readable output")

	migrateCmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending database migrations",
		Args:  cobra.NoArgs,
		RunE:  runMigrate,
	}

	seedCmd := &cobra.Command{
		Use:   "seed",
		Short: "Load the demo curriculum, student and accounts",
		Args:  cobra.NoArgs,
		RunE:  runSeed,
	}
	seedCmd.Flags().String("admin-email", seed.DefaultOptions().AdminEmail, "Email of the seeded admin account")
	seedCmd.Flags().String("admin-password", seed.DefaultOptions().AdminPassword, "Password of the seeded admin account")
	seedCmd.Flags().String("student-password", seed.DefaultOptions().StudentPassword, "Password of the seeded student account")

	standingCmd := &cobra.Command{
		Use:   "standing <student-id>",
		Short: "Show a student's dashboard",
		Args:  cobra.ExactArgs(1),
		RunE:  runStanding,
	}

	eligibilityCmd := &cobra.Command{
		Use:   "eligibility <student-id> <course-id>",
		Short: "Classify one course for one student",
		Args:  cobra.ExactArgs(2),
		RunE:  runEligibility,
	}

	askCmd := &cobra.Command{
		Use:   "ask <student-id> <question...>",
		Short: "Ask the advisor a question on behalf of a student",
		Args:  cobra.MinimumNArgs(2),
		RunE:  runAsk,
	}

	rootCmd.AddCommand(migrateCmd, seedCmd, standingCmd, eligibilityCmd, askCmd)
	return rootCmd
}

func openSession(cmd *cobra.Command) (*session, error) {
	configPath, _ := cmd.Flags().GetString("config")
	cfg, lgr, err := bootstrap.LoadConfigAndSetupLogger(configPath)
	if err != nil {
		return nil, err
	}

	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}
	return &session{cfg: cfg, logger: lgr, database: database}, nil
}

func (s *session) Close() {
	s.database.Close()
}

func runMigrate(cmd *cobra.Command, _ []string) error {
	s, err := openSession(cmd)
	if err != nil {
		return err
	}
	defer s.Close()

	if err := bootstrap.RunMigrations(cmd.Context(), s.database, s.cfg.Database.MigrationsDir, s.logger); err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), "migrations applied")
	return nil
}

func runSeed(cmd *cobra.Command, _ []string) error {
	opts := seed.DefaultOptions()
	opts.AdminEmail, _ = cmd.Flags().GetString("admin-email")
	opts.AdminPassword, _ = cmd.Flags().GetString("admin-password")
	opts.StudentPassword, _ = cmd.Flags().GetString("student-password")

	s, err := openSession(cmd)
	if err != nil {
		return err
	}
	defer s.Close()

	if err := bootstrap.SeedDemoData(cmd.Context(), s.database, opts, s.logger); err != nil {
		return fmt.Errorf("seed demo data: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), "demo data ready")
	return nil
}

func runStanding(cmd *cobra.Command, args []string) error {
	studentID, err := parseID("student-id", args[0])
	if err != nil {
		return err
	}

	return withServices(cmd, func(ctx context.Context, deps *bootstrap.Dependencies) error {
		dashboard, err := deps.StandingService.Dashboard(ctx, studentID)
		if err != nil {
			return err
		}
		if asJSON(cmd) {
			return writeJSON(cmd.OutOrStdout(), dashboard)
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%s (%s)\n", dashboard.Student.FullName, dashboard.Student.Email)
		fmt.Fprintf(out, "CGPA %.2f over %d credits\n", dashboard.Cumulative.Average, dashboard.Cumulative.TotalCredits)
		for _, sem := range dashboard.Semesters {
			fmt.Fprintf(out, "  %-14s GPA %.2f  passed %d credits\n", sem.SemesterName, sem.Performance.Average, sem.PassedCredits)
		}
		for _, rec := range dashboard.Recommendations {
			fmt.Fprintf(out, "  %-8s %-9s %s\n", rec.CourseCode, rec.Status, rec.Reason)
		}
		return nil
	})
}

func runEligibility(cmd *cobra.Command, args []string) error {
	studentID, err := parseID("student-id", args[0])
	if err != nil {
		return err
	}
	courseID, err := parseID("course-id", args[1])
	if err != nil {
		return err
	}

	return withServices(cmd, func(ctx context.Context, deps *bootstrap.Dependencies) error {
		eligibility, err := deps.StandingService.Eligibility(ctx, studentID, courseID)
		if err != nil {
			return err
		}
		if asJSON(cmd) {
			return writeJSON(cmd.OutOrStdout(), eligibility)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s: %s (%s)\n", eligibility.CourseCode, eligibility.Status, eligibility.Reason)
		return nil
	})
}

func runAsk(cmd *cobra.Command, args []string) error {
	studentID, err := parseID("student-id", args[0])
	if err != nil {
		return err
	}
	question := strings.Join(args[1:], " ")

	return withServices(cmd, func(ctx context.Context, deps *bootstrap.Dependencies) error {
		reply, err := deps.AdvisorService.Answer(ctx, studentID, question)
		if err != nil {
			return err
		}
		if asJSON(cmd) {
			return writeJSON(cmd.OutOrStdout(), reply)
		}
		fmt.Fprintln(cmd.OutOrStdout(), reply.Text)
		return nil
	})
}

// withServices builds the service layer without cache or HTTP and runs fn
func withServices(cmd *cobra.Command, fn func(ctx context.Context, deps *bootstrap.Dependencies) error) error {
	s, err := openSession(cmd)
	if err != nil {
		return err
	}
	defer s.Close()

	return fn(cmd.Context(), bootstrap.BuildServices(s.cfg, s.database, nil, s.logger))
}

func parseID(name, raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid %s %q", name, raw)
	}
	return id, nil
}

func asJSON(cmd *cobra.Command) bool {
	v, _ := cmd.Flags().GetBool("json")
	return v
}

func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
