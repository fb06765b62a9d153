package signals

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/prokizzle/fastlane-context-mcp/pkg/types"
)

// importPattern maps a characteristic import statement fragment to a
// framework signal name.
type importPattern struct {
	fragment string
	signal   string
}

var importPatterns = []importPattern{
	{"import SwiftUI", "swiftui"},
	{"import UIKit", "uikit"},
	{"package:flutter", "flutter"},
	{"io.flutter", "flutter"},
	{"androidx.compose", "jetpack-compose"},
	{"react-native", "react-native"},
}

// scanExtensions selects which walked files the content scan may read.
var scanExtensions = []string{".swift", ".kt", ".dart", ".js", ".tsx"}

// detectFrameworks combines manifest-implied framework signals with a
// bounded content scan over source files. The scan reads at most
// d.scanLimit files, which bounds cost on large trees; everything beyond
// the cap is simply not examined.
func (d *Detector) detectFrameworks(ctx context.Context, root string, paths []string) []types.Signal {
	var out []types.Signal
	emitted := map[string]bool{}
	emit := func(name, source string, confidence types.Confidence) {
		if emitted[name] {
			return
		}
		emitted[name] = true
		out = append(out, types.Signal{
			Category:   types.CategoryFramework,
			Name:       name,
			Source:     source,
			Confidence: confidence,
		})
	}

	// Manifest-implied frameworks come first and carry high confidence.
	if _, err := d.reader.ReadFile(root, "pubspec.yaml"); err == nil {
		emit("flutter", "pubspec.yaml", types.ConfidenceHigh)
	}
	if data, err := d.reader.ReadFile(root, "package.json"); err == nil {
		var manifest struct {
			Dependencies map[string]string `json:"dependencies"`
		}
		if json.Unmarshal(data, &manifest) == nil {
			if _, ok := manifest.Dependencies["react-native"]; ok {
				emit("react-native", "package.json", types.ConfidenceHigh)
			}
		}
	}

	scanned := 0
	for _, p := range paths {
		if scanned >= d.scanLimit || ctx.Err() != nil {
			break
		}
		if !scannable(p) {
			continue
		}
		data, err := d.reader.ReadFile(root, p)
		if err != nil {
			continue
		}
		scanned++
		content := string(data)
		for _, pat := range importPatterns {
			if strings.Contains(content, pat.fragment) {
				emit(pat.signal, p, types.ConfidenceMedium)
			}
		}
	}
	return out
}

// scannable reports whether the path is a source file the content scan may
// read. Directory entries carry a trailing slash and never match.
func scannable(p string) bool {
	for _, ext := range scanExtensions {
		if strings.HasSuffix(p, ext) {
			return true
		}
	}
	return false
}
