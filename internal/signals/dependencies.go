package signals

import (
	"context"
	"encoding/json"
	"regexp"
	"sort"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/prokizzle/fastlane-context-mcp/internal/fastfile"
	"github.com/prokizzle/fastlane-context-mcp/pkg/types"
)

// Candidate manifest locations per dependency family, tried in order. The
// first location that reads successfully wins for its family; families are
// independent of each other.
var (
	podfileLocations = []string{"Podfile", "ios/Podfile"}
	npmLocations     = []string{"package.json"}
	pubLocations     = []string{"pubspec.yaml"}
	gradleLocations  = []string{
		"android/app/build.gradle",
		"android/app/build.gradle.kts",
		"android/build.gradle",
		"android/build.gradle.kts",
		"build.gradle",
		"build.gradle.kts",
	}
	gradleCatalogLocations = []string{
		"gradle/libs.versions.toml",
		"android/gradle/libs.versions.toml",
	}
)

var (
	// pod 'Firebase/Crashlytics', '~> 8.0'
	podRe = regexp.MustCompile(`^\s*pod\s+['"]([^'"]+)['"]`)
	// implementation "com.google.firebase:firebase-bom:32.1.0" and the
	// parenthesized Kotlin-DSL spelling of the same declaration.
	gradleDepRe = regexp.MustCompile(`(?m)^\s*(?:implementation|api|compileOnly|runtimeOnly|testImplementation)\s*[( ]?\s*['"]([\w.\-]+:[\w.\-]+)(?::([\w.\-+]+))?['"]`)
)

// detectDependencies runs every dependency family in a fixed order.
func (d *Detector) detectDependencies(ctx context.Context, root string) []types.Signal {
	var out []types.Signal
	for _, family := range []func(string) []types.Signal{
		d.cocoapodsSignals,
		d.npmSignals,
		d.pubSignals,
		d.gradleSignals,
	} {
		if ctx.Err() != nil {
			return out
		}
		out = append(out, family(root)...)
	}
	return out
}

func (d *Detector) cocoapodsSignals(root string) []types.Signal {
	for _, loc := range podfileLocations {
		data, err := d.reader.ReadFile(root, loc)
		if err != nil {
			continue
		}
		sigs := []types.Signal{managerSignal("cocoapods", loc)}
		for _, line := range strings.Split(string(data), "\n") {
			if m := podRe.FindStringSubmatch(fastfile.StripComment(line)); m != nil {
				sigs = append(sigs, dependencySignal(m[1], loc, ""))
			}
		}
		return sigs
	}
	return nil
}

func (d *Detector) npmSignals(root string) []types.Signal {
	for _, loc := range npmLocations {
		data, err := d.reader.ReadFile(root, loc)
		if err != nil {
			continue
		}
		var manifest struct {
			Dependencies    map[string]string `json:"dependencies"`
			DevDependencies map[string]string `json:"devDependencies"`
		}
		if err := json.Unmarshal(data, &manifest); err != nil {
			continue
		}
		sigs := []types.Signal{managerSignal("npm", loc)}
		for _, deps := range []map[string]string{manifest.Dependencies, manifest.DevDependencies} {
			for _, name := range sortedKeys(deps) {
				sigs = append(sigs, dependencySignal(name, loc, deps[name]))
			}
		}
		return sigs
	}
	return nil
}

func (d *Detector) pubSignals(root string) []types.Signal {
	for _, loc := range pubLocations {
		data, err := d.reader.ReadFile(root, loc)
		if err != nil {
			continue
		}
		var manifest struct {
			Dependencies    map[string]any `yaml:"dependencies"`
			DevDependencies map[string]any `yaml:"dev_dependencies"`
		}
		if err := yaml.Unmarshal(data, &manifest); err != nil {
			continue
		}
		sigs := []types.Signal{managerSignal("pub", loc)}
		for _, deps := range []map[string]any{manifest.Dependencies, manifest.DevDependencies} {
			for _, name := range sortedKeys(deps) {
				version := ""
				if v, ok := deps[name].(string); ok {
					version = v
				}
				sigs = append(sigs, dependencySignal(name, loc, version))
			}
		}
		return sigs
	}
	return nil
}

// gradleSignals parses dependency coordinates from the first readable build
// script, then adds version-catalog libraries as further signals. The
// catalog is an additional source, not an alternative location, so both can
// contribute to one scan.
func (d *Detector) gradleSignals(root string) []types.Signal {
	var sigs []types.Signal
	seen := map[string]bool{}

	for _, loc := range gradleLocations {
		data, err := d.reader.ReadFile(root, loc)
		if err != nil {
			continue
		}
		sigs = append(sigs, managerSignal("gradle", loc))
		for _, m := range gradleDepRe.FindAllStringSubmatch(string(data), -1) {
			if seen[m[1]] {
				continue
			}
			seen[m[1]] = true
			sigs = append(sigs, dependencySignal(m[1], loc, m[2]))
		}
		break
	}

	for _, loc := range gradleCatalogLocations {
		data, err := d.reader.ReadFile(root, loc)
		if err != nil {
			continue
		}
		var catalog struct {
			Libraries map[string]map[string]any `toml:"libraries"`
		}
		if err := toml.Unmarshal(data, &catalog); err != nil {
			continue
		}
		if len(sigs) == 0 && len(catalog.Libraries) > 0 {
			sigs = append(sigs, managerSignal("gradle", loc))
		}
		for _, key := range sortedKeys(catalog.Libraries) {
			name := catalogModule(catalog.Libraries[key])
			if name == "" || seen[name] {
				continue
			}
			seen[name] = true
			sigs = append(sigs, dependencySignal(name, loc, ""))
		}
		break
	}

	return sigs
}

// catalogModule extracts the "group:artifact" coordinate from one
// version-catalog library entry, which spells it either as a single module
// string or as separate group and name keys.
func catalogModule(lib map[string]any) string {
	if module, ok := lib["module"].(string); ok {
		return module
	}
	group, _ := lib["group"].(string)
	name, _ := lib["name"].(string)
	if group != "" && name != "" {
		return group + ":" + name
	}
	return ""
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
