package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"enercheck/adapters/excel"
	"enercheck/app"
	"enercheck/domain/energy"
	"enercheck/domain/workflow"
	"enercheck/internal/batch"
	"enercheck/internal/benchmark"
	"enercheck/internal/config"
	"enercheck/internal/facts"
	"enercheck/internal/logging"
	"enercheck/internal/report"
	"enercheck/internal/testkit"
	"enercheck/ports"
)

func main() {
	_ = godotenv.Load()

	rootCmd := &cobra.Command{
		Use:   "enercheck-cli",
		Short: "Plausibility validation for clean-energy research results",
	}

	rootCmd.AddCommand(
		newValidateCmd(),
		newQuickCmd(),
		newDemoCmd(),
		newBenchmarksCmd(),
		newFactsCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newValidateCmd() *cobra.Command {
	var domainFlag string
	var format string

	cmd := &cobra.Command{
		Use:   "validate [file]",
		Short: "Validate a workflow JSON file or an xlsx/csv simulation-output table",
		Long: `Validate research results from a file.

JSON files are read as full workflow contexts. Excel and CSV files are read
as simulation-output tables (columns: result, output, value, unit, samples)
and validated against --domain.

Example: enercheck-cli validate outputs.xlsx --domain solar --format markdown`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			wf, err := loadContext(args[0], domainFlag)
			if err != nil {
				return err
			}

			service := app.NewValidationService(logging.Default)
			rep, err := service.ValidateWorkflow(cmd.Context(), wf)
			if err != nil {
				return err
			}
			return emit(rep, format)
		},
	}

	cmd.Flags().StringVar(&domainFlag, "domain", "", "technology domain for tabular inputs (solar, wind, battery, hydrogen, ...)")
	cmd.Flags().StringVar(&format, "format", "json", "output format: json, markdown, or html")
	return cmd
}

func newQuickCmd() *cobra.Command {
	var domainFlag string

	cmd := &cobra.Command{
		Use:   "quick [parameter] [value]",
		Short: "Single-value plausibility probe",
		Long:  `Example: enercheck-cli quick "capacity factor" 72 --domain wind`,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			value, err := strconv.ParseFloat(args[1], 64)
			if err != nil {
				return fmt.Errorf("value %q is not numeric", args[1])
			}

			service := app.NewValidationService(logging.Default)
			result := service.QuickCheck(args[0], value, energy.Parse(domainFlag))
			if result.Plausible {
				fmt.Println("plausible")
				return nil
			}
			fmt.Printf("implausible: %s\n", result.Reason)
			return nil
		},
	}

	cmd.Flags().StringVar(&domainFlag, "domain", "", "technology domain")
	return cmd
}

func newDemoCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Run the sample workflows through the engine",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			service := app.NewValidationService(logging.Default)
			runner := batch.NewRunner(service, cfg.Batch.Concurrency, logging.Default)

			contexts := testkit.NewTestKit().AllWorkflows()
			reports, err := runner.ValidateAll(context.Background(), contexts)
			if err != nil {
				return err
			}

			for i, rep := range reports {
				fmt.Printf("--- workflow %d (%s) ---\n", i+1, contexts[i].Domain)
				if err := emit(rep, format); err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&format, "format", "markdown", "output format: json, markdown, or html")
	return cmd
}

func newBenchmarksCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "benchmarks",
		Short: "List the benchmark registry",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Printf("%-14s %-16s %10s %10s %12s\n", "DOMAIN", "METRIC", "MIN", "MAX", "ABSOLUTE MAX")
			for _, e := range benchmark.All() {
				absMax := "-"
				if e.AbsoluteMax != 0 {
					absMax = fmt.Sprintf("%g", e.AbsoluteMax)
				}
				fmt.Printf("%-14s %-16s %10g %10g %12s\n", e.Domain, e.Metric, e.Min, e.Max, absMax)
			}
			return nil
		},
	}
}

func newFactsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "facts",
		Short: "List the established-facts table",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, f := range facts.All() {
				fmt.Printf("[%s/%s] %s\n", f.Field, f.Parameter, f.Statement)
			}
			return nil
		},
	}
}

// loadContext reads a workflow context from JSON, or builds one from a
// tabular simulation-output file plus the --domain flag.
func loadContext(path, domainFlag string) (workflow.Context, error) {
	if strings.HasSuffix(strings.ToLower(path), ".json") {
		raw, err := os.ReadFile(path)
		if err != nil {
			return workflow.Context{}, err
		}
		var wf workflow.Context
		if err := json.Unmarshal(raw, &wf); err != nil {
			return workflow.Context{}, fmt.Errorf("failed to decode workflow JSON: %w", err)
		}
		if domainFlag != "" {
			wf.Domain = energy.Parse(domainFlag)
		}
		return wf, nil
	}

	if domainFlag == "" {
		return workflow.Context{}, fmt.Errorf("--domain is required for tabular inputs")
	}
	results, err := excel.NewDataReader(path).ReadResults()
	if err != nil {
		return workflow.Context{}, err
	}
	return workflow.Context{
		Domain:      energy.Parse(domainFlag),
		Simulations: results,
	}, nil
}

func emit(rep *ports.Report, format string) error {
	renderer := report.NewRenderer()
	switch format {
	case "json":
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(rep)
	case "markdown":
		fmt.Println(renderer.Markdown(rep))
		return nil
	case "html":
		os.Stdout.Write(renderer.HTML(rep))
		return nil
	default:
		return fmt.Errorf("unknown format %q (use json, markdown, or html)", format)
	}
}
