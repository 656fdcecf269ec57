// Package publish sends check-run results to a NATS subject so other
// tooling can consume them.
package publish

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/nats-io/nats.go"

	"github.com/c360studio/ontolint/check"
)

// DefaultSubject is the subject check runs are published to.
const DefaultSubject = "ontolint.check.result"

// RunMessage is the wire format for a published check run.
type RunMessage struct {
	RunID      string          `json:"run_id"`
	Source     string          `json:"source"`
	Passed     bool            `json:"passed"`
	StartedAt  time.Time       `json:"started_at"`
	FinishedAt time.Time       `json:"finished_at"`
	Results    []ResultMessage `json:"results"`
}

// ResultMessage is the wire format for one check result.
type ResultMessage struct {
	Check      string   `json:"check"`
	Passed     bool     `json:"passed"`
	Error      string   `json:"error,omitempty"`
	Violations []string `json:"violations,omitempty"`
}

// NewRunMessage converts a check run into its wire format.
func NewRunMessage(run *check.Run) RunMessage {
	msg := RunMessage{
		RunID:      run.ID,
		Source:     run.Source,
		Passed:     run.Passed(),
		StartedAt:  run.StartedAt,
		FinishedAt: run.FinishedAt,
	}
	for _, result := range run.Results {
		rm := ResultMessage{
			Check:  result.Check,
			Passed: result.Passed,
		}
		if result.Err != nil {
			rm.Error = result.Err.Error()
		}
		for _, v := range result.Violations {
			rm.Violations = append(rm.Violations, v.String())
		}
		msg.Results = append(msg.Results, rm)
	}
	return msg
}

// Connect dials the NATS server used for result publishing.
func Connect(url string) (*nats.Conn, error) {
	nc, err := nats.Connect(url, nats.Name("ontolint"))
	if err != nil {
		return nil, fmt.Errorf("connect to NATS: %w", err)
	}
	return nc, nil
}

// Run publishes a check run. A nil connection skips publishing
// (graceful degradation when no NATS is configured).
func Run(nc *nats.Conn, subject string, run *check.Run) error {
	if nc == nil {
		return nil
	}
	if subject == "" {
		subject = DefaultSubject
	}

	data, err := json.Marshal(NewRunMessage(run))
	if err != nil {
		return fmt.Errorf("marshal run message: %w", err)
	}
	if err := nc.Publish(subject, data); err != nil {
		return fmt.Errorf("publish run %s: %w", run.ID, err)
	}
	return nil
}
