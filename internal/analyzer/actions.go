package analyzer

import (
	"github.com/prokizzle/fastlane-context-mcp/pkg/types"
)

// actionSuggestions maps detected capability tokens to human-readable next
// steps. Table order is emission order.
var actionSuggestions = []struct {
	token    types.Capability
	sentence string
}{
	{types.CapGym, "Build the iOS app with the gym action"},
	{types.CapGradle, "Build the Android app with the gradle action"},
	{types.CapXcodebuild, "Drive Xcode builds directly with xcodebuild"},
	{types.CapScan, "Run the test suite with scan before distributing"},
	{types.CapCocoapods, "Install CocoaPods dependencies with the cocoapods action"},
	{types.CapPilot, "Upload beta builds to TestFlight with pilot"},
	{types.CapDeliver, "Submit releases to the App Store with deliver"},
	{types.CapSupply, "Publish to Google Play with supply"},
	{types.CapFirebaseAppDistribution, "Distribute test builds through Firebase App Distribution"},
	{types.CapMatch, "Sync code signing certificates with match"},
	{types.CapSigh, "Fetch provisioning profiles with sigh"},
	{types.CapCert, "Manage signing certificates with cert"},
	{types.CapKeystore, "Load the Android keystore from CI secrets rather than the repository"},
}

// envRequirements maps capability tokens to the environment variables their
// actions need at runtime.
var envRequirements = []struct {
	token types.Capability
	vars  []string
}{
	{types.CapMatch, []string{"MATCH_PASSWORD", "MATCH_GIT_URL"}},
	{types.CapPilot, []string{"APP_STORE_CONNECT_API_KEY_PATH"}},
	{types.CapDeliver, []string{"APP_STORE_CONNECT_API_KEY_PATH"}},
	{types.CapSupply, []string{"SUPPLY_JSON_KEY"}},
	{types.CapFirebaseAppDistribution, []string{"FIREBASE_TOKEN"}},
}

// SuggestedActions returns next-step sentences for every detected
// capability with a table entry. No capabilities means no suggestions.
func SuggestedActions(caps types.CapabilitySet) []string {
	out := []string{}
	for _, s := range actionSuggestions {
		if caps.Has(s.token) {
			out = append(out, s.sentence)
		}
	}
	return out
}

// RequiredEnvVars returns the deduplicated environment variables the
// detected capabilities need, in table order.
func RequiredEnvVars(caps types.CapabilitySet) []string {
	out := []string{}
	seen := map[string]bool{}
	for _, req := range envRequirements {
		if !caps.Has(req.token) {
			continue
		}
		for _, v := range req.vars {
			if seen[v] {
				continue
			}
			seen[v] = true
			out = append(out, v)
		}
	}
	return out
}
