package fastfile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prokizzle/fastlane-context-mcp/pkg/types"
)

func TestLanesFromValue_NonObjectInputs(t *testing.T) {
	for _, v := range []any{nil, "fastlane", 42.0, true, []any{"ios"}} {
		assert.Empty(t, LanesFromValue(v), "input %#v must yield no lanes", v)
	}
}

func TestLanesFromValue_PlatformKeys(t *testing.T) {
	v := map[string]any{
		"ios": []any{
			map[string]any{"name": "beta", "description": "TestFlight build"},
			map[string]any{"name": "_helper"},
		},
		"android": []any{
			map[string]any{"name": "deploy"},
		},
	}

	lanes := LanesFromValue(v)
	require.Len(t, lanes, 3)

	// Keys are visited in sorted order, so android precedes ios.
	assert.Equal(t, types.Lane{Name: "deploy", Platform: types.PlatformAndroid}, lanes[0])
	assert.Equal(t, types.Lane{Name: "beta", Platform: types.PlatformIOS, Description: "TestFlight build"}, lanes[1])
	assert.Equal(t, types.Lane{Name: "_helper", Platform: types.PlatformIOS, Private: true}, lanes[2])
}

func TestLanesFromValue_UnknownPlatformKey(t *testing.T) {
	v := map[string]any{
		"no_platform": []any{
			map[string]any{"name": "lint"},
		},
	}

	lanes := LanesFromValue(v)
	require.Len(t, lanes, 1)
	assert.Equal(t, types.PlatformNone, lanes[0].Platform)
}

func TestLanesFromValue_MalformedEntriesSkipped(t *testing.T) {
	v := map[string]any{
		"ios": []any{
			"not an object",
			map[string]any{"description": "missing name"},
			map[string]any{"name": 7.0},
			map[string]any{"name": "ok"},
		},
		"android": "not a list",
	}

	lanes := LanesFromValue(v)
	require.Len(t, lanes, 1)
	assert.Equal(t, "ok", lanes[0].Name)
}

func TestParseLaneList(t *testing.T) {
	lanes := ParseLaneList([]byte(`{"ios": [{"name": "beta"}]}`))
	require.Len(t, lanes, 1)
	assert.Equal(t, "beta", lanes[0].Name)

	assert.Empty(t, ParseLaneList([]byte("not json")))
	assert.Empty(t, ParseLaneList(nil))
}
