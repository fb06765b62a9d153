package detect

import (
	"path"
	"strings"

	"github.com/prokizzle/fastlane-context-mcp/pkg/types"
)

// fileToken maps a distinguished config filename to the capability it
// evidences.
type fileToken struct {
	canonical types.Capability
	category  types.CapabilityCategory
}

// configFiles is the static basename table. fastlane tool config files sit
// next to the Fastfile and name the tool they configure, so their presence
// alone evidences the capability.
var configFiles = map[string]fileToken{
	"Gymfile":      {types.CapGym, types.CategoryBuild},
	"Scanfile":     {types.CapScan, types.CategoryBuild},
	"Podfile":      {types.CapCocoapods, types.CategoryBuild},
	"Deliverfile":  {types.CapDeliver, types.CategoryDistribution},
	"Appfile":      {types.CapAppfile, types.CategoryMetadata},
	"Snapfile":     {types.CapSnapshot, types.CategoryMetadata},
	"Precheckfile": {types.CapPrecheck, types.CategoryMetadata},
	"Matchfile":    {types.CapMatch, types.CategorySigning},
}

// iosIndicators and androidIndicators are path substrings that imply a
// platform regardless of directory layout.
var iosIndicators = []string{".xcodeproj", ".xcworkspace", "Podfile", "Info.plist", ".mobileprovision"}

var androidIndicators = []string{"build.gradle", "AndroidManifest.xml", ".keystore", ".jks"}

// FromPaths maps project-relative file paths to the capabilities and
// platforms they evidence. Directory entries carry a trailing slash; the
// basename table consults only the final path element. Insertions
// deduplicate, so overlapping evidence from many paths is harmless.
func FromPaths(paths []string) types.CapabilitySet {
	caps := types.NewCapabilitySet()
	for _, p := range paths {
		p = strings.TrimSuffix(p, "/")
		if p == "" {
			continue
		}
		if tok, ok := configFiles[path.Base(p)]; ok {
			caps.Add(tok.category, tok.canonical)
		}
		if strings.HasSuffix(p, ".keystore") || strings.HasSuffix(p, ".jks") {
			caps.AddSigning(types.CapKeystore)
		}
		addPlatforms(&caps, p)
	}
	// Gradle is the only Android build tool fastlane drives, so Android
	// presence implies it even without an explicit build file.
	if caps.HasPlatform(types.PlatformAndroid) {
		caps.AddBuild(types.CapGradle)
	}
	return caps
}

// addPlatforms applies the platform-indicator and directory-convention
// rules to one path.
func addPlatforms(caps *types.CapabilitySet, p string) {
	for _, ind := range iosIndicators {
		if strings.Contains(p, ind) {
			caps.AddPlatform(types.PlatformIOS)
			break
		}
	}
	for _, ind := range androidIndicators {
		if strings.Contains(p, ind) {
			caps.AddPlatform(types.PlatformAndroid)
			break
		}
	}
	for _, seg := range strings.Split(p, "/") {
		switch seg {
		case "ios":
			caps.AddPlatform(types.PlatformIOS)
		case "android":
			caps.AddPlatform(types.PlatformAndroid)
		}
	}
}
