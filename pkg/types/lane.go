package types

// Platform identifies one of the two mobile platforms a Fastfile can scope
// lanes to. The empty value means "no platform" (lanes declared outside any
// platform block).
type Platform string

const (
	PlatformIOS     Platform = "ios"
	PlatformAndroid Platform = "android"
	PlatformNone    Platform = ""
)

// KnownPlatforms lists the platforms the analyzer understands, in the order
// results are emitted.
var KnownPlatforms = []Platform{PlatformIOS, PlatformAndroid}

// ParsePlatform maps a platform token from the DSL to a known Platform.
// Unknown tokens return (PlatformNone, false) and must not affect scope.
func ParsePlatform(token string) (Platform, bool) {
	switch Platform(token) {
	case PlatformIOS:
		return PlatformIOS, true
	case PlatformAndroid:
		return PlatformAndroid, true
	default:
		return PlatformNone, false
	}
}

// Lane is a named, invokable sequence of build/release steps declared in a
// Fastfile. Lanes are collected in source order and never mutated after
// parsing.
type Lane struct {
	Name        string   `json:"name"`
	Platform    Platform `json:"platform,omitempty"`
	Description string   `json:"description,omitempty"`
	Private     bool     `json:"private"`
}

// PrivateMarker is the reserved prefix that marks a lane private regardless
// of the declaration keyword used.
const PrivateMarker = "_"
