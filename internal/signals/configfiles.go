package signals

import (
	"github.com/prokizzle/fastlane-context-mcp/pkg/types"
)

// presenceEntry names one file whose mere existence is a signal.
type presenceEntry struct {
	filename string
	signal   string
}

// Tooling config files. Order is the emission order.
var configEntries = []presenceEntry{
	{".swiftlint.yml", "swiftlint"},
	{".rubocop.yml", "rubocop"},
	{"Gemfile", "bundler"},
	{".ruby-version", "ruby-version"},
	{"Dangerfile", "danger"},
}

// Third-party service integration files.
var serviceEntries = []presenceEntry{
	{"GoogleService-Info.plist", "firebase"},
	{"google-services.json", "firebase"},
	{"firebase.json", "firebase"},
	{"sentry.properties", "sentry"},
	{".sentryclirc", "sentry"},
	{"appcenter-config.json", "appcenter"},
	{"codecov.yml", "codecov"},
}

// presencePrefixes are the directories a presence file may live in, tried
// in order: project root, then the platform subtrees. android/app/ is where
// Gradle projects conventionally keep google-services.json.
var presencePrefixes = []string{"", "ios/", "android/", "android/app/", "fastlane/"}

// detectConfigFiles checks the walked path list against the tooling table.
func detectConfigFiles(paths []string) []types.Signal {
	return detectPresence(paths, configEntries, types.CategoryConfig)
}

// detectServices checks the walked path list against the service table.
func detectServices(paths []string) []types.Signal {
	return detectPresence(paths, serviceEntries, types.CategoryService)
}

// detectPresence emits one high-confidence signal per matched table entry.
// At most one signal per (category, name) even when several entries or
// locations match; the first match wins and supplies the source path.
func detectPresence(paths []string, entries []presenceEntry, category types.SignalCategory) []types.Signal {
	have := make(map[string]bool, len(paths))
	for _, p := range paths {
		have[p] = true
	}

	var out []types.Signal
	emitted := map[string]bool{}
	for _, entry := range entries {
		if emitted[entry.signal] {
			continue
		}
		for _, prefix := range presencePrefixes {
			loc := prefix + entry.filename
			if !have[loc] {
				continue
			}
			emitted[entry.signal] = true
			out = append(out, types.Signal{
				Category:   category,
				Name:       entry.signal,
				Source:     loc,
				Confidence: types.ConfidenceHigh,
			})
			break
		}
	}
	return out
}
