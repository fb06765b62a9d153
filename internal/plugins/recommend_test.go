package plugins

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prokizzle/fastlane-context-mcp/pkg/types"
)

func signal(category types.SignalCategory, name string) types.Signal {
	return types.Signal{Category: category, Name: name, Confidence: types.ConfidenceHigh}
}

func TestRecommend_SignalMatch(t *testing.T) {
	sigs := []types.Signal{signal(types.CategoryService, "sentry")}

	recs := Recommend(sigs, types.NewCapabilitySet())
	require.Len(t, recs, 1)

	rec := recs[0]
	assert.Equal(t, "sentry", rec.Name)
	assert.Equal(t, []string{"sentry"}, rec.MatchedSignals)
	assert.Empty(t, rec.MatchedCapabilities)
	assert.Equal(t, types.PriorityMedium, rec.Priority)
	assert.Contains(t, rec.Justification, "Detected signals: sentry.")
}

func TestRecommend_OneRecommendationPerEntry(t *testing.T) {
	// Two distinct signals relevant to the flutter entry yield a single
	// recommendation listing both.
	sigs := []types.Signal{
		signal(types.CategoryFramework, "flutter"),
		signal(types.CategoryDependency, "pub"),
	}

	recs := Recommend(sigs, types.NewCapabilitySet())
	require.Len(t, recs, 1)

	rec := recs[0]
	assert.Equal(t, "flutter", rec.Name)
	assert.Equal(t, []string{"flutter", "pub"}, rec.MatchedSignals)
	assert.Equal(t, types.PriorityHigh, rec.Priority, "two signal matches score high")
}

func TestRecommend_CapabilityMatch(t *testing.T) {
	caps := types.NewCapabilitySet()
	caps.AddMetadata(types.CapVersioning)

	recs := Recommend(nil, caps)
	require.Len(t, recs, 1)

	rec := recs[0]
	assert.Equal(t, "versioning", rec.Name)
	assert.Equal(t, []types.Capability{types.CapVersioning}, rec.MatchedCapabilities)
	assert.Equal(t, types.PriorityLow, rec.Priority, "a single capability match scores low")
	assert.Contains(t, rec.Justification, "Detected capabilities: versioning.")
}

func TestRecommend_CombinedScoring(t *testing.T) {
	// firebase signal + firebase_app_distribution capability: one signal
	// match plus one capability match lands in the medium tier.
	sigs := []types.Signal{signal(types.CategoryService, "firebase")}
	caps := types.NewCapabilitySet()
	caps.AddDistribution(types.CapFirebaseAppDistribution)

	recs := Recommend(sigs, caps)

	var firebase *types.Recommendation
	for i := range recs {
		if recs[i].Name == "firebase_app_distribution" {
			firebase = &recs[i]
		}
	}
	require.NotNil(t, firebase)
	assert.Equal(t, types.PriorityMedium, firebase.Priority)
	assert.Equal(t, []string{"firebase"}, firebase.MatchedSignals)
	assert.Equal(t, []types.Capability{types.CapFirebaseAppDistribution}, firebase.MatchedCapabilities)
}

func TestRecommend_PriorityGrouping(t *testing.T) {
	sigs := []types.Signal{
		signal(types.CategoryFramework, "flutter"),
		signal(types.CategoryDependency, "pub"),
		signal(types.CategoryService, "sentry"),
	}
	caps := types.NewCapabilitySet()
	caps.AddBuild(types.CapGym)

	recs := Recommend(sigs, caps)
	require.NotEmpty(t, recs)

	// flutter (2 signals) is high, sentry (1 signal) medium, aws_s3 (1
	// capability) low; tiers appear in that order.
	assert.Equal(t, "flutter", recs[0].Name)
	lastTier := 0
	for _, rec := range recs {
		tier := tierIndex(rec.Priority)
		assert.GreaterOrEqual(t, tier, lastTier, "recommendations are grouped by tier")
		lastTier = tier
	}
}

func TestRecommend_NoEvidence(t *testing.T) {
	assert.Empty(t, Recommend(nil, types.NewCapabilitySet()))
}

func TestRecommend_CaseInsensitiveSignalNames(t *testing.T) {
	sigs := []types.Signal{signal(types.CategoryService, "Sentry")}
	recs := Recommend(sigs, types.NewCapabilitySet())
	require.Len(t, recs, 1)
	assert.Equal(t, "sentry", recs[0].Name)
}

func TestCatalog_Static(t *testing.T) {
	entries := Catalog()
	require.Len(t, entries, 8)
	for _, entry := range entries {
		assert.NotEmpty(t, entry.Name)
		assert.NotEmpty(t, entry.Description)
		assert.NotEmpty(t, entry.Homepage)
		assert.True(t, len(entry.Signals) > 0 || len(entry.Capabilities) > 0,
			"entry %s must be reachable by evidence", entry.Name)
	}
}
