package fastfile

import (
	"encoding/json"
	"sort"
	"strings"

	"github.com/prokizzle/fastlane-context-mcp/pkg/types"
)

// ParseLaneList decodes the machine-readable lane listing fastlane emits
// (`fastlane lanes --json`) and converts it to lane records. Malformed JSON
// yields an empty result.
func ParseLaneList(data []byte) []types.Lane {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return []types.Lane{}
	}
	return LanesFromValue(v)
}

// LanesFromValue transforms a decoded lane listing into lane records. The
// input is expected to be an object keyed by platform name, where the empty
// string key means "no platform" and each value is an array of objects with
// "name" and optional "description" fields. Anything else, including nil, a
// bare string, or a number, yields an empty result rather than an error.
// Keys are visited in sorted order so output is deterministic.
func LanesFromValue(v any) []types.Lane {
	lanes := []types.Lane{}
	obj, ok := v.(map[string]any)
	if !ok {
		return lanes
	}

	keys := make([]string, 0, len(obj))
	for k := range obj {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, key := range keys {
		entries, ok := obj[key].([]any)
		if !ok {
			continue
		}
		platform, _ := types.ParsePlatform(key)
		for _, entry := range entries {
			rec, ok := entry.(map[string]any)
			if !ok {
				continue
			}
			name, ok := rec["name"].(string)
			if !ok || name == "" {
				continue
			}
			desc, _ := rec["description"].(string)
			lanes = append(lanes, types.Lane{
				Name:        name,
				Platform:    platform,
				Description: desc,
				Private:     strings.HasPrefix(name, types.PrivateMarker),
			})
		}
	}

	return lanes
}
