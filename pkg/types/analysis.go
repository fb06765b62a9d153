package types

// SigningMethod classifies how a platform manages code signing, derived from
// which config files are present in the project.
type SigningMethod string

const (
	SigningAutomated SigningMethod = "automated"
	SigningManual    SigningMethod = "manual"
	SigningUnknown   SigningMethod = "unknown"
)

// EnvStatus summarizes environment-variable completeness for a project.
type EnvStatus string

const (
	EnvReady      EnvStatus = "ready"
	EnvIncomplete EnvStatus = "incomplete"
)

// EnvReport lists the environment variables the detected capabilities
// require and which of them are missing from the process environment. An
// empty requirement list is always EnvReady.
type EnvReport struct {
	Status   EnvStatus `json:"status"`
	Required []string  `json:"required"`
	Missing  []string  `json:"missing,omitempty"`
}

// PlatformAnalysis is the per-platform slice of an analysis: the lanes
// scoped to the platform, the signing classification, and where builds can
// be distributed.
type PlatformAnalysis struct {
	Platform     Platform      `json:"platform"`
	Lanes        []Lane        `json:"lanes"`
	Signing      SigningMethod `json:"signing"`
	Destinations []string      `json:"destinations"`
	HasMetadata  bool          `json:"has_metadata"`
}

// ProjectAnalysis is the complete result of analyzing one project. All
// fields are fresh value objects per invocation and directly serializable.
type ProjectAnalysis struct {
	RootPath         string                         `json:"root_path"`
	Capabilities     CapabilitySet                  `json:"capabilities"`
	Lanes            []Lane                         `json:"lanes"`
	Platforms        map[Platform]*PlatformAnalysis `json:"platforms"`
	Signals          []Signal                       `json:"signals"`
	Recommendations  []Recommendation               `json:"recommendations"`
	SuggestedActions []string                       `json:"suggested_actions"`
	Environment      EnvReport                      `json:"environment"`
}
