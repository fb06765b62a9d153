package analyzer

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/prokizzle/fastlane-context-mcp/pkg/types"
)

func TestDestinations_FixedOrder(t *testing.T) {
	caps := types.NewCapabilitySet()
	// Insertion order deliberately scrambled relative to emission order.
	caps.AddDistribution(types.CapFirebaseAppDistribution)
	caps.AddDistribution(types.CapDeliver)
	caps.AddDistribution(types.CapPilot)

	got := Destinations(caps, types.PlatformIOS)
	assert.Equal(t, []string{"TestFlight", "App Store", "Firebase App Distribution"}, got)
}

func TestDestinations_Android(t *testing.T) {
	caps := types.NewCapabilitySet()
	caps.AddDistribution(types.CapSupply)
	caps.AddDistribution(types.CapFirebaseAppDistribution)

	got := Destinations(caps, types.PlatformAndroid)
	assert.Equal(t, []string{"Google Play", "Firebase App Distribution"}, got)
}

func TestDestinations_PlatformScoping(t *testing.T) {
	caps := types.NewCapabilitySet()
	caps.AddDistribution(types.CapSupply)

	// supply is an Android destination; iOS gets nothing from it.
	assert.Empty(t, Destinations(caps, types.PlatformIOS))
	assert.Equal(t, []string{"Google Play"}, Destinations(caps, types.PlatformAndroid))
}

func TestDestinations_FirebaseCrossPlatform(t *testing.T) {
	caps := types.NewCapabilitySet()
	caps.AddDistribution(types.CapFirebaseAppDistribution)

	assert.Equal(t, []string{"Firebase App Distribution"}, Destinations(caps, types.PlatformIOS))
	assert.Equal(t, []string{"Firebase App Distribution"}, Destinations(caps, types.PlatformAndroid))
}

func TestDestinations_NoDistribution(t *testing.T) {
	assert.Empty(t, Destinations(types.NewCapabilitySet(), types.PlatformIOS))
}
