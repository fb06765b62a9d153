// Package envcheck validates required environment variables against the
// process environment. It is the external collaborator the analyzer hands
// its requirement list to; the analyzer itself never touches the
// environment.
package envcheck

import (
	"os"

	"github.com/prokizzle/fastlane-context-mcp/pkg/types"
)

// Checker reports environment-variable completeness for a requirement list.
type Checker interface {
	Check(required []string) types.EnvReport
}

// ProcessChecker checks variables in the real process environment. A
// variable set to the empty string counts as present; only unset variables
// are missing.
type ProcessChecker struct{}

// Check builds an EnvReport for the given requirement list. An empty list
// is always ready.
func (ProcessChecker) Check(required []string) types.EnvReport {
	report := types.EnvReport{
		Status:   types.EnvReady,
		Required: required,
	}
	if report.Required == nil {
		report.Required = []string{}
	}
	for _, name := range required {
		if _, ok := os.LookupEnv(name); !ok {
			report.Missing = append(report.Missing, name)
		}
	}
	if len(report.Missing) > 0 {
		report.Status = types.EnvIncomplete
	}
	return report
}
