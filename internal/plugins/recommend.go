package plugins

import (
	"strings"

	"github.com/prokizzle/fastlane-context-mcp/pkg/types"
)

// Recommend matches detected signals and capabilities against the catalog.
// An entry qualifies when either intersection is non-empty; each qualifying
// entry yields exactly one recommendation no matter how many rules matched.
// Output is grouped by priority tier, high first, catalog order within a
// tier.
func Recommend(sigs []types.Signal, caps types.CapabilitySet) []types.Recommendation {
	signalNames := make(map[string]bool, len(sigs))
	for _, s := range sigs {
		signalNames[strings.ToLower(s.Name)] = true
	}
	capTokens := map[types.Capability]bool{}
	for _, c := range caps.Tokens() {
		capTokens[types.Capability(strings.ToLower(string(c)))] = true
	}

	var tiers [3][]types.Recommendation
	for _, entry := range catalog {
		matchedSignals := matchSignals(entry.Signals, signalNames)
		matchedCaps := matchCapabilities(entry.Capabilities, capTokens)
		if len(matchedSignals) == 0 && len(matchedCaps) == 0 {
			continue
		}

		priority := scorePriority(len(matchedSignals), len(matchedCaps))
		rec := types.Recommendation{
			Name:                entry.Name,
			Description:         entry.Description,
			Homepage:            entry.Homepage,
			Justification:       justification(entry.Description, matchedSignals, matchedCaps),
			MatchedSignals:      matchedSignals,
			MatchedCapabilities: matchedCaps,
			Priority:            priority,
		}
		tiers[tierIndex(priority)] = append(tiers[tierIndex(priority)], rec)
	}

	out := make([]types.Recommendation, 0, len(tiers[0])+len(tiers[1])+len(tiers[2]))
	for _, tier := range tiers {
		out = append(out, tier...)
	}
	return out
}

// scorePriority tiers an entry by how much evidence matched it.
func scorePriority(signalMatches, capMatches int) types.Priority {
	combined := signalMatches + capMatches
	switch {
	case signalMatches >= 2 || combined >= 3:
		return types.PriorityHigh
	case signalMatches >= 1 || combined >= 2:
		return types.PriorityMedium
	default:
		return types.PriorityLow
	}
}

func tierIndex(p types.Priority) int {
	switch p {
	case types.PriorityHigh:
		return 0
	case types.PriorityMedium:
		return 1
	default:
		return 2
	}
}

func matchSignals(wanted []string, detected map[string]bool) []string {
	var out []string
	for _, name := range wanted {
		if detected[strings.ToLower(name)] {
			out = append(out, name)
		}
	}
	return out
}

func matchCapabilities(wanted []types.Capability, detected map[types.Capability]bool) []types.Capability {
	var out []types.Capability
	for _, c := range wanted {
		if detected[c] {
			out = append(out, c)
		}
	}
	return out
}

// justification appends matched-signal and matched-capability clauses onto
// the entry's static description.
func justification(description string, matchedSignals []string, matchedCaps []types.Capability) string {
	var b strings.Builder
	b.WriteString(description)
	if len(matchedSignals) > 0 {
		b.WriteString(" Detected signals: ")
		b.WriteString(strings.Join(matchedSignals, ", "))
		b.WriteString(".")
	}
	if len(matchedCaps) > 0 {
		tokens := make([]string, len(matchedCaps))
		for i, c := range matchedCaps {
			tokens[i] = string(c)
		}
		b.WriteString(" Detected capabilities: ")
		b.WriteString(strings.Join(tokens, ", "))
		b.WriteString(".")
	}
	return b.String()
}
