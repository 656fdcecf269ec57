package check

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/c360studio/ontolint/graph"
)

// Run is the outcome of executing a set of checks against one graph.
type Run struct {
	// ID uniquely identifies this run in logs and published results.
	ID string

	// Source names the document the graph was loaded from.
	Source string

	StartedAt  time.Time
	FinishedAt time.Time

	// Results holds one entry per executed check.
	Results []Result
}

// Passed reports whether every check ran cleanly with no violations.
func (r *Run) Passed() bool {
	for _, result := range r.Results {
		if !result.Passed {
			return false
		}
	}
	return true
}

// ViolationCount returns the total violations across all results.
func (r *Run) ViolationCount() int {
	n := 0
	for _, result := range r.Results {
		n += len(result.Violations)
	}
	return n
}

// Runner executes registered checks against loaded graphs.
type Runner struct {
	registry *Registry
	logger   *slog.Logger
}

// NewRunner creates a runner. A nil registry uses DefaultRegistry and
// a nil logger uses slog.Default.
func NewRunner(registry *Registry, logger *slog.Logger) *Runner {
	if registry == nil {
		registry = DefaultRegistry
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Runner{registry: registry, logger: logger}
}

// Run executes the named checks against g, or every registered check
// when names is empty. Check failures are recorded in the run; only an
// unknown check name is an error.
func (r *Runner) Run(g *graph.Graph, source string, names ...string) (*Run, error) {
	if len(names) == 0 {
		names = r.registry.Names()
	}

	run := &Run{
		ID:        uuid.New().String(),
		Source:    source,
		StartedAt: time.Now(),
	}

	for _, name := range names {
		c := r.registry.Get(name)
		if c == nil {
			return nil, fmt.Errorf("unknown check %q", name)
		}

		violations, err := c.Run(g)
		result := Result{
			Check:      name,
			Passed:     err == nil && len(violations) == 0,
			Violations: violations,
			Err:        err,
		}
		run.Results = append(run.Results, result)

		switch {
		case err != nil:
			r.logger.Error("check could not run",
				"run_id", run.ID, "check", name, "source", source, "error", err)
		case !result.Passed:
			r.logger.Warn("check failed",
				"run_id", run.ID, "check", name, "source", source,
				"violations", len(violations))
		default:
			r.logger.Info("check passed",
				"run_id", run.ID, "check", name, "source", source)
		}
	}

	run.FinishedAt = time.Now()
	return run, nil
}
