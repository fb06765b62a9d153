package fastfile

import (
	"regexp"

	"github.com/prokizzle/fastlane-context-mcp/pkg/types"
)

// scopeTracker tracks which platform block the parser is currently inside.
// Implementations approximate Ruby block structure from line-oriented input;
// the parser depends only on this interface so the heuristic can later be
// replaced by a real tokenizer without touching call sites.
type scopeTracker interface {
	// Open enters a platform scope and resets block accounting. The caller
	// feeds every line, including the opening line itself, to Observe.
	Open(p types.Platform)

	// Observe feeds one stripped, trimmed line to the tracker and reports
	// whether that line closed the current platform scope.
	Observe(line string) bool

	// Current returns the platform scope in effect.
	Current() types.Platform
}

var (
	blockOpenRe  = regexp.MustCompile(`\b(?:do|if|unless|case|def|begin|while|until)\b`)
	blockCloseRe = regexp.MustCompile(`\bend\b`)
)

// blockCounter approximates nested-block tracking with a running count of
// block-opening keywords versus "end" occurrences since the last scope open.
// A line that is exactly "end" closes the scope once closers meet or exceed
// openers. Keyword occurrences inside quoted strings are counted too; this
// is an accepted approximation, not a balanced-block parser.
type blockCounter struct {
	platform types.Platform
	openers  int
	closers  int
}

func newScopeTracker() scopeTracker {
	return &blockCounter{platform: types.PlatformNone}
}

func (b *blockCounter) Open(p types.Platform) {
	b.platform = p
	b.openers = 0
	b.closers = 0
}

func (b *blockCounter) Observe(line string) bool {
	if b.platform == types.PlatformNone {
		return false
	}
	b.openers += len(blockOpenRe.FindAllStringIndex(line, -1))
	b.closers += len(blockCloseRe.FindAllStringIndex(line, -1))
	if line == "end" && b.closers >= b.openers {
		b.platform = types.PlatformNone
		return true
	}
	return false
}

func (b *blockCounter) Current() types.Platform {
	return b.platform
}
