// Package agent implements the mission run contract: a tool-using loop
// around a single AgentSpec, and a collaborate-mode runner for the full task
// force team.
package agent

import "context"

// RunResult is what a runner hands back on success. Content may be empty:
// the dispatcher treats that as a distinct "no content" outcome rather than
// an error.
type RunResult struct {
	Content string
}

// Runner executes one mission topic and returns its textual result.
// Failures are signaled through the error return and never panic.
type Runner interface {
	Run(ctx context.Context, topic string) (*RunResult, error)
}
