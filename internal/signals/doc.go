// Package signals detects project composition signals: declared
// dependencies, tool config files, service integrations, and UI frameworks.
//
// # Detection Model
//
// Four category detectors run concurrently and their output is concatenated
// in a fixed order, so results are deterministic regardless of scheduling:
//
//   - dependency: format-specific manifest parsers (Podfile, package.json,
//     pubspec.yaml, Gradle build scripts and version catalogs). Per family
//     the first readable manifest wins; each emits one manager-presence
//     signal plus one signal per declared dependency.
//   - config and service: pure presence checks of the walked path list
//     against static filename tables, one signal per (category, name).
//   - framework: manifest-implied signals plus a bounded content scan for
//     characteristic import statements, capped at a fixed file count.
//
// Missing or unreadable files are never errors; absence simply produces no
// signal.
package signals
