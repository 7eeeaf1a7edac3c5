package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/ontoflow-io/ontoflow-e2e/internal/platform"
	"github.com/ontoflow-io/ontoflow-e2e/internal/seed"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var (
	version = "dev"
	commit  = "none"
)

var (
	baseURLFlag string
	planFlag    string
	tokenFlag   string
	dryRunFlag  bool
)

var rootCmd = &cobra.Command{
	Use:   "ontoflow-seed",
	Short: "Seed an OntoFlow instance with E2E test fixtures",
	Long: `ontoflow-seed populates a running OntoFlow platform with the fixtures
the E2E suite expects: a sentinel ontology, an extraction job, demo
pipelines, digital twins and alert rules.

Seeding is idempotent by convention: each step checks for its sentinel
name before creating, so re-running against an already-seeded instance
is safe. Failed steps are logged and skipped; later steps still run.`,
	Version: fmt.Sprintf("%s (commit: %s)", version, commit),
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Execute the seed plan against the platform",
	RunE:  runSeed,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("ontoflow-seed %s\n", rootCmd.Version)
	},
}

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Print the resolved seed plan without contacting the platform",
	RunE: func(cmd *cobra.Command, args []string) error {
		plan, err := seed.LoadPlan(planFlag)
		if err != nil {
			return err
		}
		out, err := yaml.Marshal(plan)
		if err != nil {
			return fmt.Errorf("failed to render plan: %w", err)
		}
		fmt.Print(string(out))
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&baseURLFlag, "base-url", "", "Platform base URL (default $BASE_URL or http://localhost:8080)")
	rootCmd.PersistentFlags().StringVar(&planFlag, "plan", "testdata/seed-plan.yaml", "Path to the seed plan YAML")
	rootCmd.PersistentFlags().StringVar(&tokenFlag, "token", "", "API bearer token (default $E2E_API_TOKEN)")
	runCmd.Flags().BoolVar(&dryRunFlag, "dry-run", false, "Log what would be created without writing")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(planCmd)
	rootCmd.AddCommand(versionCmd)
}

func runSeed(cmd *cobra.Command, args []string) error {
	_ = godotenv.Load()

	baseURL := baseURLFlag
	if baseURL == "" {
		baseURL = os.Getenv("BASE_URL")
	}
	if baseURL == "" {
		baseURL = "http://localhost:8080"
	}
	token := tokenFlag
	if token == "" {
		token = os.Getenv("E2E_API_TOKEN")
	}

	plan, err := seed.LoadPlan(planFlag)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var opts []platform.Option
	if token != "" {
		opts = append(opts, platform.WithToken(token))
	}
	client := platform.New(baseURL, opts...)

	if _, err := client.Health(ctx); err != nil {
		return fmt.Errorf("platform not reachable at %s: %w", baseURL, err)
	}

	seedOpts := []seed.Option{}
	if dryRunFlag {
		seedOpts = append(seedOpts, seed.DryRun())
	}
	report := seed.New(client, seedOpts...).Run(ctx, plan)
	if report.Failed > 0 {
		fmt.Fprintf(os.Stderr, "⚠️  %d seed step(s) failed; see log above\n", report.Failed)
	}
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
