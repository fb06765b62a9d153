package analyzer

import (
	"context"
	"log/slog"
	"time"

	"github.com/prokizzle/fastlane-context-mcp/internal/detect"
	"github.com/prokizzle/fastlane-context-mcp/internal/envcheck"
	"github.com/prokizzle/fastlane-context-mcp/internal/fastfile"
	"github.com/prokizzle/fastlane-context-mcp/internal/plugins"
	"github.com/prokizzle/fastlane-context-mcp/internal/projectfs"
	"github.com/prokizzle/fastlane-context-mcp/internal/signals"
	"github.com/prokizzle/fastlane-context-mcp/pkg/types"
)

// fastfileLocations are the known Fastfile paths, tried in order. Lanes
// parsed from a platform-specific location that carry no platform tag are
// tagged with the owning platform.
var fastfileLocations = []struct {
	path     string
	platform types.Platform
}{
	{"fastlane/Fastfile", types.PlatformNone},
	{"ios/fastlane/Fastfile", types.PlatformIOS},
	{"android/fastlane/Fastfile", types.PlatformAndroid},
}

// FastfileLocations returns the known Fastfile paths in probe order.
// Callers that need to fingerprint a project's Fastfile content read the
// same locations Analyze does.
func FastfileLocations() []string {
	paths := make([]string, len(fastfileLocations))
	for i, loc := range fastfileLocations {
		paths[i] = loc.path
	}
	return paths
}

// Analyzer composes the detectors into a per-project analysis.
type Analyzer struct {
	walker   projectfs.Walker
	reader   projectfs.Reader
	detector *signals.Detector
	env      envcheck.Checker
	logger   *slog.Logger
}

// New creates an Analyzer from its collaborators.
func New(walker projectfs.Walker, reader projectfs.Reader, detector *signals.Detector, env envcheck.Checker, logger *slog.Logger) *Analyzer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Analyzer{
		walker:   walker,
		reader:   reader,
		detector: detector,
		env:      env,
		logger:   logger,
	}
}

// Analyze runs the full pipeline over the project at root: walk the tree,
// detect file-based capabilities, parse every readable Fastfile, merge
// capability sets, build per-platform analyses, detect signals, recommend
// plugins, and check environment completeness.
//
// Missing files below the root are absence, never errors. Analyze fails
// only when the root itself cannot be walked or the context is canceled.
func (a *Analyzer) Analyze(ctx context.Context, root string) (*types.ProjectAnalysis, error) {
	start := time.Now()

	paths, err := a.walker.Walk(root)
	if err != nil {
		return nil, err
	}

	caps := detect.FromPaths(paths)

	lanes := []types.Lane{}
	for _, loc := range fastfileLocations {
		data, err := a.reader.ReadFile(root, loc.path)
		if err != nil {
			continue
		}
		source := string(data)
		parsed := fastfile.ParseLanes(source)
		for i := range parsed {
			if parsed[i].Platform == types.PlatformNone {
				parsed[i].Platform = loc.platform
			}
		}
		lanes = append(lanes, parsed...)
		caps = caps.Merge(fastfile.DetectActions(source))
	}

	// Lane platform tags are platform evidence too.
	for _, lane := range lanes {
		caps.AddPlatform(lane.Platform)
	}

	platforms := make(map[types.Platform]*types.PlatformAnalysis, len(caps.Platforms))
	for _, p := range caps.Platforms {
		platforms[p] = &types.PlatformAnalysis{
			Platform:     p,
			Lanes:        lanesFor(lanes, p),
			Signing:      ClassifySigning(p, paths),
			Destinations: Destinations(caps, p),
			HasMetadata:  len(caps.Metadata) > 0,
		}
	}

	sigs, err := a.detector.Detect(ctx, root, paths)
	if err != nil {
		return nil, err
	}
	if sigs == nil {
		sigs = []types.Signal{}
	}

	recs := plugins.Recommend(sigs, caps)
	if recs == nil {
		recs = []types.Recommendation{}
	}

	analysis := &types.ProjectAnalysis{
		RootPath:         root,
		Capabilities:     caps,
		Lanes:            lanes,
		Platforms:        platforms,
		Signals:          sigs,
		Recommendations:  recs,
		SuggestedActions: SuggestedActions(caps),
		Environment:      a.env.Check(RequiredEnvVars(caps)),
	}

	a.logger.Debug("analysis complete",
		"root", root,
		"files", len(paths),
		"lanes", len(lanes),
		"platforms", len(platforms),
		"signals", len(sigs),
		"recommendations", len(recs),
		"duration", time.Since(start))

	return analysis, nil
}

// Lanes parses lane records from every readable Fastfile location without
// running the rest of the pipeline.
func (a *Analyzer) Lanes(root string) []types.Lane {
	lanes := []types.Lane{}
	for _, loc := range fastfileLocations {
		data, err := a.reader.ReadFile(root, loc.path)
		if err != nil {
			continue
		}
		parsed := fastfile.ParseLanes(string(data))
		for i := range parsed {
			if parsed[i].Platform == types.PlatformNone {
				parsed[i].Platform = loc.platform
			}
		}
		lanes = append(lanes, parsed...)
	}
	return lanes
}

func lanesFor(lanes []types.Lane, p types.Platform) []types.Lane {
	out := []types.Lane{}
	for _, lane := range lanes {
		if lane.Platform == p {
			out = append(out, lane)
		}
	}
	return out
}
