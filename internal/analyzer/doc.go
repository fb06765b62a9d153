// Package analyzer orchestrates a full project analysis.
//
// # Pipeline
//
// Analyze composes the detector packages in a fixed sequence:
//
//  1. Walk the project tree (bounded depth, denylisted subtrees skipped).
//  2. Map file paths to capabilities and platforms (detect package).
//  3. Read and parse each known Fastfile location; lanes from a
//     platform-specific location inherit that platform when untagged.
//  4. Merge file-based and content-based capability sets.
//  5. Build one PlatformAnalysis per detected platform: scoped lanes,
//     signing classification, distribution destinations, metadata flag.
//  6. Detect project signals and match them against the plugin catalog.
//  7. Compute suggested actions and hand the required environment
//     variables to the envcheck collaborator.
//
// Every filesystem read below the root treats failure as absence. A
// project with no files and no Fastfile is a valid, empty analysis.
package analyzer
