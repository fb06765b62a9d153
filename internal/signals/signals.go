package signals

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/prokizzle/fastlane-context-mcp/internal/projectfs"
	"github.com/prokizzle/fastlane-context-mcp/pkg/types"
)

// DefaultScanLimit caps how many source files the framework detector reads.
const DefaultScanLimit = 20

// Detector scans a project for composition signals: declared dependencies,
// tool config files, service integrations, and UI frameworks.
type Detector struct {
	reader    projectfs.Reader
	scanLimit int
}

// New creates a Detector reading through the given Reader.
func New(reader projectfs.Reader) *Detector {
	return &Detector{
		reader:    reader,
		scanLimit: DefaultScanLimit,
	}
}

// WithScanLimit overrides the framework-scan file cap. Non-positive values
// keep the default.
func (d *Detector) WithScanLimit(limit int) *Detector {
	if limit > 0 {
		d.scanLimit = limit
	}
	return d
}

// Detect runs all category detectors over the project and returns their
// signals concatenated in fixed category order: dependency, config,
// service, framework. The category detectors are independent and run
// concurrently; the only error ever returned is context cancellation.
func (d *Detector) Detect(ctx context.Context, root string, paths []string) ([]types.Signal, error) {
	var (
		deps       []types.Signal
		configs    []types.Signal
		services   []types.Signal
		frameworks []types.Signal
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		deps = d.detectDependencies(gctx, root)
		return gctx.Err()
	})
	g.Go(func() error {
		configs = detectConfigFiles(paths)
		return nil
	})
	g.Go(func() error {
		services = detectServices(paths)
		return nil
	})
	g.Go(func() error {
		frameworks = d.detectFrameworks(gctx, root, paths)
		return gctx.Err()
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := make([]types.Signal, 0, len(deps)+len(configs)+len(services)+len(frameworks))
	out = append(out, deps...)
	out = append(out, configs...)
	out = append(out, services...)
	out = append(out, frameworks...)
	return out, nil
}

// managerSignal marks the presence of a dependency manager itself. Manager
// and per-dependency signals are intentionally distinct.
func managerSignal(name, source string) types.Signal {
	return types.Signal{
		Category:   types.CategoryDependency,
		Name:       name,
		Source:     source,
		Confidence: types.ConfidenceHigh,
		Metadata:   map[string]string{"role": "manager"},
	}
}

func dependencySignal(name, source, version string) types.Signal {
	s := types.Signal{
		Category:   types.CategoryDependency,
		Name:       name,
		Source:     source,
		Confidence: types.ConfidenceHigh,
	}
	if version != "" {
		s.Metadata = map[string]string{"version": version}
	}
	return s
}
