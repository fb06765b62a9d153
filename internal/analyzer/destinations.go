package analyzer

import (
	"github.com/prokizzle/fastlane-context-mcp/pkg/types"
)

// destinationRules map distribution tokens to destination names. Emission
// follows this fixed order, not token-insertion order; the cross-platform
// Firebase rule applies to every platform and always comes last.
var destinationRules = []struct {
	platform types.Platform
	token    types.Capability
	name     string
}{
	{types.PlatformIOS, types.CapPilot, "TestFlight"},
	{types.PlatformIOS, types.CapDeliver, "App Store"},
	{types.PlatformAndroid, types.CapSupply, "Google Play"},
	{types.PlatformNone, types.CapFirebaseAppDistribution, "Firebase App Distribution"},
}

// Destinations lists where builds for the platform can be distributed,
// given the merged capability set.
func Destinations(caps types.CapabilitySet, platform types.Platform) []string {
	out := []string{}
	for _, rule := range destinationRules {
		if rule.platform != types.PlatformNone && rule.platform != platform {
			continue
		}
		if caps.Has(rule.token) {
			out = append(out, rule.name)
		}
	}
	return out
}
