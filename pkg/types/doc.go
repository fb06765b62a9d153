// Package types provides shared type definitions for the FastlaneContext MCP server.
//
// This package defines the domain types used across multiple components of
// FastlaneContext, including lanes, capability sets, project signals, plugin
// recommendations, and analysis results.
//
// # Core Types
//
// Lane represents a fastlane lane extracted from a Fastfile by line-oriented
// parsing:
//
//	lane := types.Lane{
//	    Name:        "beta",
//	    Platform:    types.PlatformIOS,
//	    Description: "Push a new beta build to TestFlight",
//	}
//
// CapabilitySet groups canonical capability tokens by category and supports
// set-union merging across independent detectors:
//
//	merged := fileCaps.Merge(contentCaps, moreCaps)
//
// Merge is commutative, associative, and idempotent: callers may combine
// detector outputs in any order and merge the same set repeatedly without
// changing the result.
//
// # Closed Vocabularies
//
// Capability tokens, signal categories, confidence levels, and priority
// tiers are typed string constants rather than free-form strings, so alias
// tables and the recommendation matcher can be checked for exhaustiveness at
// compile time:
//
//	types.CapGym                // "gym" build capability
//	types.CategoryDependency    // signal from a dependency manifest
//	types.ConfidenceHigh        // presence-based evidence
//	types.PriorityMedium        // recommendation tier
//
// # Validation
//
// Signals implement validation methods for the closed sets:
//
//	if err := signal.Validate(); err != nil {
//	    log.Fatal(err)
//	}
//
// # Serialization
//
// All types in this package are plain value objects with JSON tags. MCP tool
// responses serialize them directly; no separate wire representation exists.
package types
