// Package plugins recommends fastlane plugins from detected project
// evidence. A static catalog maps each plugin to the signal names and
// capability tokens that make it relevant; Recommend intersects those with
// a detection run and tiers the qualifying entries by match count.
package plugins
