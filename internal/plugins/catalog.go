package plugins

import (
	"github.com/prokizzle/fastlane-context-mcp/pkg/types"
)

// catalog is the static plugin table. Signal names are matched against
// lower-cased detected signal names; capability tokens against the union of
// all detected capability categories.
var catalog = []types.CatalogEntry{
	{
		Name:         "firebase_app_distribution",
		Description:  "Distribute beta builds to testers through Firebase App Distribution.",
		Signals:      []string{"firebase"},
		Capabilities: []types.Capability{types.CapFirebaseAppDistribution},
		Homepage:     "https://github.com/fastlane/fastlane-plugin-firebase_app_distribution",
	},
	{
		Name:        "sentry",
		Description: "Upload debug symbols and create releases in Sentry after each build.",
		Signals:     []string{"sentry"},
		Homepage:    "https://github.com/getsentry/sentry-fastlane-plugin",
	},
	{
		Name:        "appcenter",
		Description: "Upload builds to Visual Studio App Center for distribution and crash reporting.",
		Signals:     []string{"appcenter"},
		Homepage:    "https://github.com/microsoft/fastlane-plugin-appcenter",
	},
	{
		Name:         "versioning",
		Description:  "Manage version and build numbers beyond the built-in increment actions.",
		Capabilities: []types.Capability{types.CapVersioning},
		Homepage:     "https://github.com/SiarheiFedartsou/fastlane-plugin-versioning",
	},
	{
		Name:         "badge",
		Description:  "Overlay beta or version badges on the app icon before distributing test builds.",
		Capabilities: []types.Capability{types.CapPilot, types.CapFirebaseAppDistribution},
		Homepage:     "https://github.com/HazAT/fastlane-plugin-badge",
	},
	{
		Name:        "flutter",
		Description: "Run Flutter build and test tasks from fastlane lanes.",
		Signals:     []string{"flutter", "pub"},
		Homepage:    "https://github.com/dotdoom/fastlane-plugin-flutter",
	},
	{
		Name:         "aws_s3",
		Description:  "Upload build artifacts to an S3 bucket with generated install pages.",
		Capabilities: []types.Capability{types.CapGym, types.CapGradle},
		Homepage:     "https://github.com/joshdholtz/fastlane-plugin-aws_s3",
	},
	{
		Name:         "browserstack",
		Description:  "Upload builds to BrowserStack for automated and manual device testing.",
		Signals:      []string{"browserstack"},
		Capabilities: []types.Capability{types.CapScan},
		Homepage:     "https://github.com/browserstack/browserstack-fastlane-plugin",
	},
}

// Catalog returns the static plugin catalog. Callers must treat it as
// read-only.
func Catalog() []types.CatalogEntry {
	return catalog
}
