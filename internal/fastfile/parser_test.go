package fastfile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prokizzle/fastlane-context-mcp/pkg/types"
)

func TestParseLanes_PlatformScopes(t *testing.T) {
	src := `
platform :ios do
  lane :build do
    gym
  end

  lane :test do
    scan
  end
end

platform :android do
  lane :deploy do
    gradle(task: "assembleRelease")
  end
end
`
	lanes := ParseLanes(src)
	require.Len(t, lanes, 3)

	assert.Equal(t, "build", lanes[0].Name)
	assert.Equal(t, types.PlatformIOS, lanes[0].Platform)
	assert.Equal(t, "test", lanes[1].Name)
	assert.Equal(t, types.PlatformIOS, lanes[1].Platform)
	assert.Equal(t, "deploy", lanes[2].Name)
	assert.Equal(t, types.PlatformAndroid, lanes[2].Platform)
}

func TestParseLanes_Descriptions(t *testing.T) {
	src := `
desc "Push a new beta build to TestFlight"
lane :beta do
  pilot
end

lane :undocumented do
end

desc 'Single quoted'
lane :other do
end
`
	lanes := ParseLanes(src)
	require.Len(t, lanes, 3)

	assert.Equal(t, "Push a new beta build to TestFlight", lanes[0].Description)
	assert.Empty(t, lanes[1].Description, "description must not carry over to a second lane")
	assert.Equal(t, "Single quoted", lanes[2].Description)
}

func TestParseLanes_Privacy(t *testing.T) {
	src := `
private_lane :helper do
end

lane :_internal do
end

lane :public do
end
`
	lanes := ParseLanes(src)
	require.Len(t, lanes, 3)

	assert.True(t, lanes[0].Private, "private_lane keyword marks private")
	assert.True(t, lanes[1].Private, "underscore prefix marks private regardless of keyword")
	assert.False(t, lanes[2].Private)
}

func TestParseLanes_UnknownPlatformIgnored(t *testing.T) {
	src := `
platform :tvos do
  lane :tv do
  end
end

lane :plain do
end
`
	lanes := ParseLanes(src)
	require.Len(t, lanes, 2)

	assert.Equal(t, types.PlatformNone, lanes[0].Platform, "unknown platform token must not set scope")
	assert.Equal(t, types.PlatformNone, lanes[1].Platform)
}

func TestParseLanes_ScopeClosesOnBalancedEnd(t *testing.T) {
	src := `
platform :ios do
  lane :nested do
    if ENV["CI"]
      gym
    end
  end
end

lane :after do
end
`
	lanes := ParseLanes(src)
	require.Len(t, lanes, 2)

	assert.Equal(t, types.PlatformIOS, lanes[0].Platform)
	assert.Equal(t, types.PlatformNone, lanes[1].Platform, "lane after platform block must be unscoped")
}

func TestParseLanes_CommentedLaneSkipped(t *testing.T) {
	src := `
# lane :ghost do
lane :real do
end
`
	lanes := ParseLanes(src)
	require.Len(t, lanes, 1)
	assert.Equal(t, "real", lanes[0].Name)
}

func TestParseLanes_Empty(t *testing.T) {
	assert.Empty(t, ParseLanes(""))
	assert.Empty(t, ParseLanes("# only comments\n# here"))
}

func TestParseLanes_LaneWithBlockArgs(t *testing.T) {
	lanes := ParseLanes("lane :release do |options|\nend")
	require.Len(t, lanes, 1)
	assert.Equal(t, "release", lanes[0].Name)
}
