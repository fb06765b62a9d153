package analyzer

import (
	"path"
	"strings"

	"github.com/prokizzle/fastlane-context-mcp/pkg/types"
)

// ClassifySigning derives the signing method for one platform from the
// walked file list. For iOS the credentials-manager config (Matchfile) is
// checked first and wins over manual-signing artifacts even when both are
// present; export options or provisioning profiles alone mean manual.
// Android is manual when a keystore file exists, unknown otherwise.
func ClassifySigning(platform types.Platform, paths []string) types.SigningMethod {
	switch platform {
	case types.PlatformIOS:
		if hasBasename(paths, "Matchfile") {
			return types.SigningAutomated
		}
		if hasBasename(paths, "ExportOptions.plist") || hasSuffix(paths, ".mobileprovision") {
			return types.SigningManual
		}
	case types.PlatformAndroid:
		if hasSuffix(paths, ".keystore") || hasSuffix(paths, ".jks") {
			return types.SigningManual
		}
	}
	return types.SigningUnknown
}

func hasBasename(paths []string, name string) bool {
	for _, p := range paths {
		if path.Base(strings.TrimSuffix(p, "/")) == name {
			return true
		}
	}
	return false
}

func hasSuffix(paths []string, suffix string) bool {
	for _, p := range paths {
		if strings.HasSuffix(p, suffix) {
			return true
		}
	}
	return false
}
