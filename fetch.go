package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"regexp"

	"github.com/google/uuid"
	"i4.energy/across/gsmquery/modem"
)

// fetchOnce runs a single command with the session default timeout, prints
// the outcome to w and returns the process exit code: 0 on a match, 1
// otherwise.
func fetchOnce(ctx context.Context, w io.Writer, logger *slog.Logger, session *modem.Session, publisher Publisher, command []byte, pattern *regexp.Regexp) int {
	outcome, err := session.Fetch(ctx, command, pattern, 0)
	if err != nil {
		logger.Error("Fetch failed", "error", err, "elapsed", session.LastExecutionTime())
		fmt.Fprintf(w, "Error: %v\n", err)
		return 1
	}

	report := newReport(uuid.NewString(), command, outcome)
	logger.Debug("Fetch completed", "id", report.ID, "kind", report.Kind, "elapsed", session.LastExecutionTime())
	if publisher != nil {
		if err := publisher.Publish(report); err != nil {
			logger.Warn("Failed to publish outcome", "error", err)
		}
	}

	if err := outcome.Err(); err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 1
	}
	fmt.Fprintf(w, "Result: %q\n", outcome.Value)
	return 0
}
