package fastfile

import (
	"regexp"

	"github.com/prokizzle/fastlane-context-mcp/pkg/types"
)

// actionAlias maps one fastlane action spelling to its canonical capability
// token. Multiple spellings normalize to the same token: build_app and
// build_ios_app both yield CapGym.
type actionAlias struct {
	alias     string
	canonical types.Capability
	category  types.CapabilityCategory
}

var actionAliases = []actionAlias{
	{"gym", types.CapGym, types.CategoryBuild},
	{"build_app", types.CapGym, types.CategoryBuild},
	{"build_ios_app", types.CapGym, types.CategoryBuild},
	{"gradle", types.CapGradle, types.CategoryBuild},
	{"build_android_app", types.CapGradle, types.CategoryBuild},
	{"xcodebuild", types.CapXcodebuild, types.CategoryBuild},
	{"scan", types.CapScan, types.CategoryBuild},
	{"run_tests", types.CapScan, types.CategoryBuild},
	{"cocoapods", types.CapCocoapods, types.CategoryBuild},

	{"pilot", types.CapPilot, types.CategoryDistribution},
	{"upload_to_testflight", types.CapPilot, types.CategoryDistribution},
	{"testflight", types.CapPilot, types.CategoryDistribution},
	{"deliver", types.CapDeliver, types.CategoryDistribution},
	{"upload_to_app_store", types.CapDeliver, types.CategoryDistribution},
	{"appstore", types.CapDeliver, types.CategoryDistribution},
	{"supply", types.CapSupply, types.CategoryDistribution},
	{"upload_to_play_store", types.CapSupply, types.CategoryDistribution},
	{"firebase_app_distribution", types.CapFirebaseAppDistribution, types.CategoryDistribution},

	{"snapshot", types.CapSnapshot, types.CategoryMetadata},
	{"capture_screenshots", types.CapSnapshot, types.CategoryMetadata},
	{"capture_ios_screenshots", types.CapSnapshot, types.CategoryMetadata},
	{"frameit", types.CapFrameit, types.CategoryMetadata},
	{"frame_screenshots", types.CapFrameit, types.CategoryMetadata},
	{"precheck", types.CapPrecheck, types.CategoryMetadata},
	{"check_app_store_metadata", types.CapPrecheck, types.CategoryMetadata},
	{"increment_build_number", types.CapVersioning, types.CategoryMetadata},
	{"increment_version_number", types.CapVersioning, types.CategoryMetadata},

	{"match", types.CapMatch, types.CategorySigning},
	{"sync_code_signing", types.CapMatch, types.CategorySigning},
	{"sigh", types.CapSigh, types.CategorySigning},
	{"get_provisioning_profile", types.CapSigh, types.CategorySigning},
	{"cert", types.CapCert, types.CategorySigning},
	{"get_certificates", types.CapCert, types.CategorySigning},
}

// actionMatcher pairs an alias with its compiled whole-word pattern.
type actionMatcher struct {
	re        *regexp.Regexp
	canonical types.Capability
	category  types.CapabilityCategory
}

// actionMatchers is built once at startup from the static alias table. An
// alias matches only as a whole word followed by an invocation-like
// delimiter (open parenthesis, "do", end of line, or any non-word
// character), so an identifier that merely contains the action name, such
// as gymnasium_setup, never triggers a match.
var actionMatchers = buildActionMatchers()

func buildActionMatchers() []actionMatcher {
	matchers := make([]actionMatcher, 0, len(actionAliases))
	for _, a := range actionAliases {
		matchers = append(matchers, actionMatcher{
			re:        regexp.MustCompile(`\b` + regexp.QuoteMeta(a.alias) + `\b`),
			canonical: a.canonical,
			category:  a.category,
		})
	}
	return matchers
}

// DetectActions scans Fastfile source for action calls and returns the
// canonical capability tokens they imply. Comments are stripped first, so
// an action mentioned after '#' contributes nothing.
func DetectActions(source string) types.CapabilitySet {
	stripped := StripComments(source)
	caps := types.NewCapabilitySet()
	for _, m := range actionMatchers {
		if m.re.MatchString(stripped) {
			caps.Add(m.category, m.canonical)
		}
	}
	return caps
}
