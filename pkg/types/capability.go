package types

import "sort"

// Capability is a canonical token naming a detected build, distribution,
// metadata, or signing feature. Tokens are canonical action names, not raw
// spellings: build_app and build_ios_app both normalize to CapGym.
type Capability string

const (
	// Build tools
	CapGym        Capability = "gym"
	CapGradle     Capability = "gradle"
	CapXcodebuild Capability = "xcodebuild"
	CapScan       Capability = "scan"
	CapCocoapods  Capability = "cocoapods"

	// Distribution channels
	CapPilot                   Capability = "pilot"
	CapDeliver                 Capability = "deliver"
	CapSupply                  Capability = "supply"
	CapFirebaseAppDistribution Capability = "firebase_app_distribution"

	// Metadata tooling
	CapAppfile    Capability = "appfile"
	CapSnapshot   Capability = "snapshot"
	CapFrameit    Capability = "frameit"
	CapPrecheck   Capability = "precheck"
	CapVersioning Capability = "versioning"

	// Code signing
	CapMatch    Capability = "match"
	CapSigh     Capability = "sigh"
	CapCert     Capability = "cert"
	CapKeystore Capability = "keystore"
)

// CapabilityCategory names one CapabilitySet token field. Detector tables
// carry a category next to each token so insertions route to the right field.
type CapabilityCategory string

const (
	CategoryBuild        CapabilityCategory = "build"
	CategoryDistribution CapabilityCategory = "distribution"
	CategoryMetadata     CapabilityCategory = "metadata"
	CategorySigning      CapabilityCategory = "signing"
)

// CapabilitySet groups detected capability tokens by category. Each slice is
// kept sorted and deduplicated, so Merge is commutative, associative, and
// idempotent, and serialization is deterministic.
type CapabilitySet struct {
	Platforms    []Platform   `json:"platforms"`
	Build        []Capability `json:"build"`
	Distribution []Capability `json:"distribution"`
	Metadata     []Capability `json:"metadata"`
	Signing      []Capability `json:"signing"`
}

// NewCapabilitySet returns an empty set with non-nil slices so it serializes
// as empty arrays rather than null.
func NewCapabilitySet() CapabilitySet {
	return CapabilitySet{
		Platforms:    []Platform{},
		Build:        []Capability{},
		Distribution: []Capability{},
		Metadata:     []Capability{},
		Signing:      []Capability{},
	}
}

// insertSorted inserts v into a sorted slice, skipping duplicates.
func insertSorted[T ~string](list []T, v T) []T {
	i := sort.Search(len(list), func(i int) bool { return list[i] >= v })
	if i < len(list) && list[i] == v {
		return list
	}
	list = append(list, v)
	copy(list[i+1:], list[i:])
	list[i] = v
	return list
}

// AddPlatform records a detected platform.
func (cs *CapabilitySet) AddPlatform(p Platform) {
	if p == PlatformNone {
		return
	}
	cs.Platforms = insertSorted(cs.Platforms, p)
}

// AddBuild records a build capability token.
func (cs *CapabilitySet) AddBuild(c Capability) { cs.Build = insertSorted(cs.Build, c) }

// AddDistribution records a distribution capability token.
func (cs *CapabilitySet) AddDistribution(c Capability) {
	cs.Distribution = insertSorted(cs.Distribution, c)
}

// AddMetadata records a metadata capability token.
func (cs *CapabilitySet) AddMetadata(c Capability) { cs.Metadata = insertSorted(cs.Metadata, c) }

// AddSigning records a signing capability token.
func (cs *CapabilitySet) AddSigning(c Capability) { cs.Signing = insertSorted(cs.Signing, c) }

// Add records a capability token under the named category. Unknown
// categories are ignored.
func (cs *CapabilitySet) Add(cat CapabilityCategory, c Capability) {
	switch cat {
	case CategoryBuild:
		cs.AddBuild(c)
	case CategoryDistribution:
		cs.AddDistribution(c)
	case CategoryMetadata:
		cs.AddMetadata(c)
	case CategorySigning:
		cs.AddSigning(c)
	}
}

// Merge returns the per-field set union of cs and the given sets. The
// receiver is not modified. Union order does not matter.
func (cs CapabilitySet) Merge(others ...CapabilitySet) CapabilitySet {
	out := NewCapabilitySet()
	all := append([]CapabilitySet{cs}, others...)
	for _, s := range all {
		for _, p := range s.Platforms {
			out.AddPlatform(p)
		}
		for _, c := range s.Build {
			out.AddBuild(c)
		}
		for _, c := range s.Distribution {
			out.AddDistribution(c)
		}
		for _, c := range s.Metadata {
			out.AddMetadata(c)
		}
		for _, c := range s.Signing {
			out.AddSigning(c)
		}
	}
	return out
}

// HasPlatform reports whether the platform was detected.
func (cs CapabilitySet) HasPlatform(p Platform) bool {
	for _, have := range cs.Platforms {
		if have == p {
			return true
		}
	}
	return false
}

// Has reports whether the token appears in any capability category.
func (cs CapabilitySet) Has(c Capability) bool {
	for _, list := range [][]Capability{cs.Build, cs.Distribution, cs.Metadata, cs.Signing} {
		for _, have := range list {
			if have == c {
				return true
			}
		}
	}
	return false
}

// Tokens returns the deduplicated union of all capability categories, sorted.
func (cs CapabilitySet) Tokens() []Capability {
	out := []Capability{}
	for _, list := range [][]Capability{cs.Build, cs.Distribution, cs.Metadata, cs.Signing} {
		for _, c := range list {
			out = insertSorted(out, c)
		}
	}
	return out
}

// IsEmpty reports whether no platforms and no capability tokens were detected.
func (cs CapabilitySet) IsEmpty() bool {
	return len(cs.Platforms) == 0 && len(cs.Build) == 0 && len(cs.Distribution) == 0 &&
		len(cs.Metadata) == 0 && len(cs.Signing) == 0
}
