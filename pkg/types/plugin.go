package types

// Priority tiers a plugin recommendation by how much detected evidence
// supports it.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// CatalogEntry describes one fastlane plugin in the static recommendation
// catalog. Entries are immutable, process-wide data built once at startup.
type CatalogEntry struct {
	Name         string       `json:"name"`
	Description  string       `json:"description"`
	Signals      []string     `json:"signals,omitempty"`
	Capabilities []Capability `json:"capabilities,omitempty"`
	Homepage     string       `json:"homepage"`
}

// Recommendation pairs a catalog entry with the evidence that matched it.
// At most one recommendation is produced per catalog entry per run.
type Recommendation struct {
	Name                string       `json:"name"`
	Description         string       `json:"description"`
	Homepage            string       `json:"homepage"`
	Justification       string       `json:"justification"`
	MatchedSignals      []string     `json:"matched_signals,omitempty"`
	MatchedCapabilities []Capability `json:"matched_capabilities,omitempty"`
	Priority            Priority     `json:"priority"`
}
