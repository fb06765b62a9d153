package fastfile

import (
	"regexp"
	"strings"

	"github.com/prokizzle/fastlane-context-mcp/pkg/types"
)

var (
	platformRe = regexp.MustCompile(`^platform\s+:(\w+)\s+do\b`)
	laneRe     = regexp.MustCompile(`^(private_lane|lane)\s+:(\w+)\s+do\b`)
	descRe     = regexp.MustCompile(`^desc\s+(?:"([^"]*)"|'([^']*)')\s*$`)
)

// ParseLanes extracts lane records from Fastfile source in a single
// line-oriented pass. Lanes are returned in source order, tagged with the
// platform scope they were declared in and the description line that
// preceded them. The pass is deterministic and side-effect free; re-invoke
// it to parse again.
func ParseLanes(source string) []types.Lane {
	lanes := []types.Lane{}
	tracker := newScopeTracker()
	pendingDesc := ""

	for _, raw := range strings.Split(source, "\n") {
		line := strings.TrimSpace(StripComment(raw))
		if line == "" {
			continue
		}

		if m := platformRe.FindStringSubmatch(line); m != nil {
			// Unknown platform tokens leave the current scope untouched,
			// but the line still opens a block that Observe must count.
			if p, ok := types.ParsePlatform(m[1]); ok {
				tracker.Open(p)
			}
			tracker.Observe(line)
			continue
		}

		if tracker.Observe(line) {
			continue
		}

		if m := descRe.FindStringSubmatch(line); m != nil {
			if m[1] != "" {
				pendingDesc = m[1]
			} else {
				pendingDesc = m[2]
			}
			continue
		}

		if m := laneRe.FindStringSubmatch(line); m != nil {
			name := m[2]
			lanes = append(lanes, types.Lane{
				Name:        name,
				Platform:    tracker.Current(),
				Description: pendingDesc,
				Private:     m[1] == "private_lane" || strings.HasPrefix(name, types.PrivateMarker),
			})
			pendingDesc = ""
		}
	}

	return lanes
}
