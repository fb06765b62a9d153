// Package detect maps project file paths to capability and platform tokens.
//
// Detection is purely name-based: a static table of distinguished fastlane
// config filenames (Gymfile, Matchfile, ...) yields capability tokens, path
// substrings such as ".xcodeproj" or "AndroidManifest.xml" yield platform
// tokens, and "ios"/"android" directory segments apply the conventional
// layout rules. No file contents are read here; content-based detection
// lives in the fastfile package.
//
//	caps := detect.FromPaths([]string{"fastlane/Gymfile", "android/build.gradle"})
//	// caps.Build contains "gym" and "gradle", caps.Platforms contains "android"
package detect
