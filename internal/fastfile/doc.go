// Package fastfile extracts structure from Fastfile source using
// line-oriented heuristics, without invoking Ruby.
//
// The Fastfile is fastlane's build-automation DSL: Ruby source declaring
// lanes, optionally grouped into platform blocks. This package recovers
// that structure from plain text:
//
//	lanes := fastfile.ParseLanes(source)
//	caps := fastfile.DetectActions(source)
//
// # Parsing Model
//
// Parsing is a single pass over trimmed, comment-stripped lines with two
// pieces of state: the current platform scope and a pending description.
// Platform scope closure is approximated by counting block-opening keywords
// against "end" occurrences; a bare "end" line closes the scope once the
// counts balance. This is deliberately a heuristic, not a Ruby parser:
// multi-line strings, heredocs, and arbitrary nested expressions are out of
// scope, and irregular formatting can close a scope early or late. The
// heuristic lives behind the scopeTracker interface so a real tokenizer
// could replace it without touching call sites.
//
// # Action Detection
//
// DetectActions matches a curated alias table of fastlane action names
// against comment-stripped source. Aliases match as whole words only, and
// every spelling normalizes to one canonical capability token:
//
//	gym(scheme: "App")        // build token "gym"
//	build_ios_app(...)        // also "gym"
//	# gym in a comment        // nothing
//
// # Alternate Input
//
// ParseLaneList accepts the JSON lane listing that fastlane itself can emit
// and converts it to the same lane records, tolerating malformed input by
// returning an empty result.
package fastfile
