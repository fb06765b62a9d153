package analyzer

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/prokizzle/fastlane-context-mcp/pkg/types"
)

func TestSuggestedActions(t *testing.T) {
	caps := types.NewCapabilitySet()
	caps.AddBuild(types.CapGym)
	caps.AddDistribution(types.CapPilot)
	caps.AddSigning(types.CapMatch)

	got := SuggestedActions(caps)
	assert.Equal(t, []string{
		"Build the iOS app with the gym action",
		"Upload beta builds to TestFlight with pilot",
		"Sync code signing certificates with match",
	}, got)
}

func TestSuggestedActions_EmptyCapabilities(t *testing.T) {
	got := SuggestedActions(types.NewCapabilitySet())
	assert.Empty(t, got)
	assert.NotNil(t, got)
}

func TestRequiredEnvVars(t *testing.T) {
	caps := types.NewCapabilitySet()
	caps.AddSigning(types.CapMatch)
	caps.AddDistribution(types.CapSupply)

	got := RequiredEnvVars(caps)
	assert.Equal(t, []string{"MATCH_PASSWORD", "MATCH_GIT_URL", "SUPPLY_JSON_KEY"}, got)
}

func TestRequiredEnvVars_Deduplicated(t *testing.T) {
	// pilot and deliver both need the App Store Connect key; it appears once.
	caps := types.NewCapabilitySet()
	caps.AddDistribution(types.CapPilot)
	caps.AddDistribution(types.CapDeliver)

	got := RequiredEnvVars(caps)
	assert.Equal(t, []string{"APP_STORE_CONNECT_API_KEY_PATH"}, got)
}

func TestRequiredEnvVars_Empty(t *testing.T) {
	assert.Empty(t, RequiredEnvVars(types.NewCapabilitySet()))
}
