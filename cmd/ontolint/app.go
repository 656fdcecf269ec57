package main

import (
	"fmt"
	"log/slog"
	"os"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/nats-io/nats.go"
	"github.com/spf13/cobra"

	"github.com/c360studio/ontolint/check"
	"github.com/c360studio/ontolint/config"
	"github.com/c360studio/ontolint/graph"
	"github.com/c360studio/ontolint/publish"
	"github.com/c360studio/ontolint/report"
)

func checkCmd() *cobra.Command {
	var (
		checkNames []string
		doPublish  bool
	)

	cmd := &cobra.Command{
		Use:   "check [paths...]",
		Short: "Run consistency checks against ontology documents",
		Long: `Check loads each ontology document and runs the consistency checks
against it. Paths may be files or doublestar glob patterns; when no
paths are given, the configured paths.ontologies patterns are used.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(args, checkNames, doPublish)
		},
	}

	cmd.Flags().StringSliceVar(&checkNames, "checks", nil, "Check names to run (default: all)")
	cmd.Flags().BoolVar(&doPublish, "publish", false, "Publish results to the configured NATS subject")

	return cmd
}

func runCheck(paths, checkNames []string, doPublish bool) error {
	cfg, err := config.NewLoader(nil).Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if len(paths) == 0 {
		paths = cfg.Paths.Ontologies
	}
	if len(checkNames) == 0 {
		checkNames = cfg.Checks.Enabled
	}

	files, err := expandPaths(paths)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return fmt.Errorf("no ontology documents matched %s", strings.Join(paths, ", "))
	}

	nc, err := connectPublisher(cfg, doPublish)
	if err != nil {
		return err
	}
	if nc != nil {
		defer nc.Close()
	}

	runner := check.NewRunner(nil, slog.Default())
	failed := 0
	for _, file := range files {
		run, err := checkFile(runner, file, checkNames)
		if err != nil {
			return err
		}
		printRun(run)
		if !run.Passed() {
			failed++
		}
		if err := publish.Run(nc, cfg.Publish.Subject, run); err != nil {
			slog.Warn("Failed to publish check run", "run_id", run.ID, "error", err)
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d documents failed", failed, len(files))
	}
	return nil
}

func reportCmd() *cobra.Command {
	var expectConforms bool

	cmd := &cobra.Command{
		Use:   "report <file>",
		Short: "Inspect a SHACL validation report",
		Long: `Report reads a SHACL validation-report graph, prints its conformance
flag and validation results, and fails when the conformance flag does
not match the expectation.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReport(args[0], expectConforms)
		},
	}

	cmd.Flags().BoolVar(&expectConforms, "expect-conforms", true, "Expected value of sh:conforms")

	return cmd
}

func runReport(path string, expectConforms bool) error {
	rep, err := report.ParseFile(path)
	if err != nil {
		return err
	}

	fmt.Printf("%s: sh:conforms %t, %d results\n", path, rep.Conforms, len(rep.Entries))
	for _, entry := range rep.Entries {
		fmt.Printf("  %s %s %s\n", entry.FocusNode, entry.ResultPath, entry.Severity)
	}

	if err := rep.Verify(report.Expectation{Conforms: expectConforms}); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}

// checkFile loads one ontology document and runs the checks on it.
func checkFile(runner *check.Runner, path string, checkNames []string) (*check.Run, error) {
	g, err := graph.LoadFile(path)
	if err != nil {
		return nil, err
	}
	return runner.Run(g, path, checkNames...)
}

func printRun(run *check.Run) {
	for _, result := range run.Results {
		switch {
		case result.Err != nil:
			fmt.Printf("✗ %s %s: error: %v\n", run.Source, result.Check, result.Err)
		case result.Passed:
			fmt.Printf("✓ %s %s\n", run.Source, result.Check)
		default:
			fmt.Printf("✗ %s %s: %d violations\n", run.Source, result.Check, len(result.Violations))
			for _, v := range result.Violations {
				fmt.Printf("    %s\n", v)
			}
		}
	}
}

// expandPaths resolves files and doublestar glob patterns into a
// sorted, deduplicated file list. Missing literal paths are an error;
// a glob matching nothing is not.
func expandPaths(patterns []string) ([]string, error) {
	seen := make(map[string]bool)
	var files []string

	add := func(path string) {
		if !seen[path] {
			seen[path] = true
			files = append(files, path)
		}
	}

	for _, pattern := range patterns {
		if !strings.ContainsAny(pattern, "*?[{") {
			if _, err := os.Stat(pattern); err != nil {
				return nil, fmt.Errorf("stat %s: %w", pattern, err)
			}
			add(pattern)
			continue
		}
		matches, err := doublestar.FilepathGlob(pattern)
		if err != nil {
			return nil, fmt.Errorf("glob %s: %w", pattern, err)
		}
		for _, m := range matches {
			add(m)
		}
	}

	sort.Strings(files)
	return files, nil
}

func connectPublisher(cfg *config.Config, doPublish bool) (*nats.Conn, error) {
	if !doPublish {
		return nil, nil
	}
	if cfg.Publish.URL == "" {
		return nil, fmt.Errorf("publishing requested but publish.url is not configured")
	}
	return publish.Connect(cfg.Publish.URL)
}
