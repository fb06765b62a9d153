package integration

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/prokizzle/fastlane-context-mcp/internal/analyzer"
	"github.com/prokizzle/fastlane-context-mcp/internal/envcheck"
	"github.com/prokizzle/fastlane-context-mcp/internal/projectfs"
	"github.com/prokizzle/fastlane-context-mcp/internal/signals"
	"github.com/prokizzle/fastlane-context-mcp/internal/storage"
	"github.com/prokizzle/fastlane-context-mcp/pkg/types"
)

// AnalysisTestSuite runs the full analysis pipeline against the static
// mobile-project fixture and checks every derived artifact: capabilities,
// lanes, per-platform views, signals, recommendations, and run history.
type AnalysisTestSuite struct {
	suite.Suite
	storage     storage.Storage
	analyzer    *analyzer.Analyzer
	fixturesDir string
	ctx         context.Context
}

// SetupSuite runs once before all tests
func (s *AnalysisTestSuite) SetupSuite() {
	s.ctx = context.Background()

	// Get fixtures directory
	wd, err := os.Getwd()
	s.Require().NoError(err)
	s.fixturesDir = filepath.Join(filepath.Dir(wd), "testdata", "fixtures")

	// Verify fixtures exist
	_, err = os.Stat(s.fixturesDir)
	s.Require().NoError(err, "fixtures directory should exist")
}

// SetupTest runs before each test
func (s *AnalysisTestSuite) SetupTest() {
	// Fresh storage per test so run history never leaks between tests
	store, err := storage.NewSQLiteStorage(filepath.Join(s.T().TempDir(), "runs.db"))
	s.Require().NoError(err)
	s.storage = store

	reader := projectfs.OSReader{}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	s.analyzer = analyzer.New(&projectfs.DirWalker{}, reader, signals.New(reader), envcheck.ProcessChecker{}, logger)
}

// TearDownTest runs after each test
func (s *AnalysisTestSuite) TearDownTest() {
	if s.storage != nil {
		_ = s.storage.Close()
	}
}

// TestFullAnalysis checks the complete analysis of the fixture project.
func (s *AnalysisTestSuite) TestFullAnalysis() {
	analysis, err := s.analyzer.Analyze(s.ctx, s.fixturesDir)
	s.Require().NoError(err, "analysis should succeed")
	s.Require().NotNil(analysis)
	s.Equal(s.fixturesDir, analysis.RootPath)

	caps := analysis.Capabilities
	s.Equal([]types.Platform{types.PlatformAndroid, types.PlatformIOS}, caps.Platforms)
	s.Equal([]types.Capability{types.CapCocoapods, types.CapGradle, types.CapGym, types.CapScan}, caps.Build)
	s.Equal([]types.Capability{types.CapFirebaseAppDistribution, types.CapPilot, types.CapSupply}, caps.Distribution)
	s.Equal([]types.Capability{types.CapAppfile, types.CapVersioning}, caps.Metadata)
	s.Equal([]types.Capability{types.CapKeystore, types.CapMatch}, caps.Signing)

	s.Require().Len(analysis.Lanes, 6)
	names := make([]string, len(analysis.Lanes))
	for i, lane := range analysis.Lanes {
		names[i] = lane.Name
	}
	s.Equal([]string{"test", "beta", "bump", "release", "qa", "tag_release"}, names)

	beta := analysis.Lanes[1]
	s.Equal(types.PlatformIOS, beta.Platform)
	s.Equal("Push a beta build to testers", beta.Description)
	s.False(beta.Private)

	bump := analysis.Lanes[2]
	s.True(bump.Private, "private_lane should be marked private")
	s.Empty(bump.Description)

	tagRelease := analysis.Lanes[5]
	s.Equal(types.PlatformNone, tagRelease.Platform, "top-level lanes carry no platform")
	s.Equal("Tag the repository after a release", tagRelease.Description)

	s.Require().Len(analysis.Platforms, 2)

	ios := analysis.Platforms[types.PlatformIOS]
	s.Require().NotNil(ios)
	s.Len(ios.Lanes, 3)
	s.Equal(types.SigningAutomated, ios.Signing, "Matchfile should classify iOS signing as automated")
	s.Equal([]string{"TestFlight", "Firebase App Distribution"}, ios.Destinations)
	s.True(ios.HasMetadata)

	android := analysis.Platforms[types.PlatformAndroid]
	s.Require().NotNil(android)
	s.Len(android.Lanes, 2)
	s.Equal(types.SigningManual, android.Signing, "a committed keystore should classify Android signing as manual")
	s.Equal([]string{"Google Play", "Firebase App Distribution"}, android.Destinations)
	s.True(android.HasMetadata)

	s.Equal([]string{
		"Build the iOS app with the gym action",
		"Build the Android app with the gradle action",
		"Run the test suite with scan before distributing",
		"Install CocoaPods dependencies with the cocoapods action",
		"Upload beta builds to TestFlight with pilot",
		"Publish to Google Play with supply",
		"Distribute test builds through Firebase App Distribution",
		"Sync code signing certificates with match",
		"Load the Android keystore from CI secrets rather than the repository",
	}, analysis.SuggestedActions)

	s.Equal([]string{
		"MATCH_PASSWORD",
		"MATCH_GIT_URL",
		"APP_STORE_CONNECT_API_KEY_PATH",
		"SUPPLY_JSON_KEY",
		"FIREBASE_TOKEN",
	}, analysis.Environment.Required)
	s.Subset(analysis.Environment.Required, analysis.Environment.Missing)
}

// TestSignalInventory checks every detected signal, in emission order.
func (s *AnalysisTestSuite) TestSignalInventory() {
	analysis, err := s.analyzer.Analyze(s.ctx, s.fixturesDir)
	s.Require().NoError(err)

	type row struct {
		category types.SignalCategory
		name     string
		source   string
	}
	rows := make([]row, len(analysis.Signals))
	for i, sig := range analysis.Signals {
		rows[i] = row{sig.Category, sig.Name, sig.Source}
		s.T().Logf("signal: %-10s %-40s %s", sig.Category, sig.Name, sig.Source)
	}

	s.Equal([]row{
		{types.CategoryDependency, "cocoapods", "ios/Podfile"},
		{types.CategoryDependency, "Sentry", "ios/Podfile"},
		{types.CategoryDependency, "Alamofire", "ios/Podfile"},
		{types.CategoryDependency, "gradle", "android/app/build.gradle"},
		{types.CategoryDependency, "androidx.core:core-ktx", "android/app/build.gradle"},
		{types.CategoryDependency, "com.google.firebase:firebase-analytics", "android/app/build.gradle"},
		{types.CategoryDependency, "junit:junit", "android/app/build.gradle"},
		{types.CategoryDependency, "com.squareup.okhttp3:okhttp", "android/gradle/libs.versions.toml"},
		{types.CategoryDependency, "com.squareup.retrofit2:retrofit", "android/gradle/libs.versions.toml"},
		{types.CategoryConfig, "swiftlint", ".swiftlint.yml"},
		{types.CategoryConfig, "bundler", "Gemfile"},
		{types.CategoryService, "firebase", "android/app/google-services.json"},
		{types.CategoryFramework, "swiftui", "ios/Sources/App/ContentView.swift"},
	}, rows)

	// Manager signals are tagged; plain dependencies carry their version.
	s.Equal("manager", analysis.Signals[0].Metadata["role"])
	s.Equal("manager", analysis.Signals[3].Metadata["role"])
	s.Equal("1.12.0", analysis.Signals[4].Metadata["version"])
	s.Equal("21.5.0", analysis.Signals[5].Metadata["version"])
	s.Equal("4.13.2", analysis.Signals[6].Metadata["version"])

	// The content scan backs swiftui with medium confidence; everything
	// file-backed is high.
	s.Equal(types.ConfidenceMedium, analysis.Signals[12].Confidence)
	for _, sig := range analysis.Signals[:12] {
		s.Equal(types.ConfidenceHigh, sig.Confidence, "signal %s", sig.Name)
	}

	for i := range analysis.Signals {
		s.NoError(analysis.Signals[i].Validate())
	}
}

// TestRecommendationTiers checks plugin matching and priority ordering.
func (s *AnalysisTestSuite) TestRecommendationTiers() {
	analysis, err := s.analyzer.Analyze(s.ctx, s.fixturesDir)
	s.Require().NoError(err)

	s.Require().Len(analysis.Recommendations, 6)
	names := make([]string, len(analysis.Recommendations))
	for i, rec := range analysis.Recommendations {
		names[i] = rec.Name
		s.T().Logf("recommendation: %-26s %s", rec.Name, rec.Priority)
	}
	s.Equal([]string{"firebase_app_distribution", "sentry", "badge", "aws_s3", "versioning", "browserstack"}, names)

	firebase := analysis.Recommendations[0]
	s.Equal(types.PriorityMedium, firebase.Priority)
	s.Equal([]string{"firebase"}, firebase.MatchedSignals)
	s.Equal([]types.Capability{types.CapFirebaseAppDistribution}, firebase.MatchedCapabilities)
	s.Contains(firebase.Justification, "Detected signals: firebase.")
	s.Contains(firebase.Justification, "Detected capabilities: firebase_app_distribution.")

	sentry := analysis.Recommendations[1]
	s.Equal(types.PriorityMedium, sentry.Priority)
	s.Equal([]string{"sentry"}, sentry.MatchedSignals)
	s.Empty(sentry.MatchedCapabilities)

	awsS3 := analysis.Recommendations[3]
	s.Equal(types.PriorityMedium, awsS3.Priority)
	s.Equal([]types.Capability{types.CapGym, types.CapGradle}, awsS3.MatchedCapabilities)

	for _, rec := range analysis.Recommendations[4:] {
		s.Equal(types.PriorityLow, rec.Priority)
	}
	s.NotEmpty(analysis.Recommendations[5].Homepage)
}

// TestRunHistory records runs for two projects and reads them back.
func (s *AnalysisTestSuite) TestRunHistory() {
	analysis, err := s.analyzer.Analyze(s.ctx, s.fixturesDir)
	s.Require().NoError(err)

	first := storage.NewRun(analysis, 150*time.Millisecond)
	s.Require().NoError(s.storage.RecordRun(s.ctx, first))

	emptyRoot := s.T().TempDir()
	emptyAnalysis, err := s.analyzer.Analyze(s.ctx, emptyRoot)
	s.Require().NoError(err)

	// A fixed offset keeps the ordering assertion independent of timestamp
	// resolution in the driver.
	second := storage.NewRun(emptyAnalysis, 12*time.Millisecond)
	second.CreatedAt = first.CreatedAt.Add(time.Second)
	s.Require().NoError(s.storage.RecordRun(s.ctx, second))

	runs, err := s.storage.ListRuns(s.ctx, "", 10)
	s.Require().NoError(err)
	s.Require().Len(runs, 2)
	s.Equal(second.ID, runs[0].ID, "newest run should come first")
	s.Equal(first.ID, runs[1].ID)

	filtered, err := s.storage.ListRuns(s.ctx, s.fixturesDir, 10)
	s.Require().NoError(err)
	s.Require().Len(filtered, 1)
	s.Equal(first.ID, filtered[0].ID)

	got, err := s.storage.GetRun(s.ctx, first.ID)
	s.Require().NoError(err)
	s.Equal(s.fixturesDir, got.RootPath)
	s.Equal(2, got.Platforms)
	s.Equal(6, got.Lanes)
	s.Equal(13, got.Signals)
	s.Equal(6, got.Recommendations)
	s.Equal(int64(150), got.DurationMs)
	s.WithinDuration(first.CreatedAt, got.CreatedAt, time.Second)
}

// TestRepeatedAnalysisIsDeterministic verifies that re-analyzing an
// unchanged project yields an identical result.
func (s *AnalysisTestSuite) TestRepeatedAnalysisIsDeterministic() {
	firstPass, err := s.analyzer.Analyze(s.ctx, s.fixturesDir)
	s.Require().NoError(err)

	secondPass, err := s.analyzer.Analyze(s.ctx, s.fixturesDir)
	s.Require().NoError(err)

	s.Equal(firstPass, secondPass)
}

// TestEmptyProject verifies that a directory with nothing recognizable
// yields an empty analysis, not an error.
func (s *AnalysisTestSuite) TestEmptyProject() {
	root := s.T().TempDir()

	analysis, err := s.analyzer.Analyze(s.ctx, root)
	s.Require().NoError(err, "an empty directory is analyzable")

	s.True(analysis.Capabilities.IsEmpty())
	s.Empty(analysis.Lanes)
	s.Empty(analysis.Platforms)
	s.Empty(analysis.Signals)
	s.Empty(analysis.Recommendations)
	s.Empty(analysis.SuggestedActions)
	s.Equal(types.EnvReady, analysis.Environment.Status)
	s.Empty(analysis.Environment.Required)
}

// TestEnvironmentCompleteness checks the report against a controlled
// process environment.
func (s *AnalysisTestSuite) TestEnvironmentCompleteness() {
	required := []string{
		"MATCH_PASSWORD",
		"MATCH_GIT_URL",
		"APP_STORE_CONNECT_API_KEY_PATH",
		"SUPPLY_JSON_KEY",
		"FIREBASE_TOKEN",
	}

	// Setenv registers cleanup; the explicit unset leaves each variable
	// genuinely absent for the first pass.
	for _, name := range required {
		s.T().Setenv(name, "placeholder")
		os.Unsetenv(name)
	}

	analysis, err := s.analyzer.Analyze(s.ctx, s.fixturesDir)
	s.Require().NoError(err)
	s.Equal(types.EnvIncomplete, analysis.Environment.Status)
	s.Equal(required, analysis.Environment.Required)
	s.Equal(required, analysis.Environment.Missing)

	for _, name := range required {
		os.Setenv(name, "set-for-test")
	}
	analysis, err = s.analyzer.Analyze(s.ctx, s.fixturesDir)
	s.Require().NoError(err)
	s.Equal(types.EnvReady, analysis.Environment.Status)
	s.Empty(analysis.Environment.Missing)
}

// TestAnalysisTestSuite runs the suite
func TestAnalysisTestSuite(t *testing.T) {
	suite.Run(t, new(AnalysisTestSuite))
}
