package mcp

import (
	"context"
	"crypto/sha256"
	"encoding/hex"

	"github.com/prokizzle/fastlane-context-mcp/internal/analyzer"
	"github.com/prokizzle/fastlane-context-mcp/pkg/types"
)

// analyzeCached returns the cached analysis for root when its Fastfile
// content is unchanged, running the full pipeline otherwise. refresh
// skips the lookup and re-reads the project.
func (s *Server) analyzeCached(ctx context.Context, root string, refresh bool) (*types.ProjectAnalysis, error) {
	key := s.cacheKey(root)
	if !refresh {
		if cached, ok := s.cache.Get(key); ok {
			s.logger.Debug("analysis cache hit", "root", root)
			return cached, nil
		}
	}

	analysis, err := s.analyzer.Analyze(ctx, root)
	if err != nil {
		return nil, err
	}
	s.cache.Add(key, analysis)
	return analysis, nil
}

// cacheKey fingerprints a project by root path and Fastfile content.
// Editing a Fastfile changes the key immediately; changes elsewhere in
// the project are picked up through the refresh flag or LRU aging.
func (s *Server) cacheKey(root string) string {
	h := sha256.New()
	for _, rel := range analyzer.FastfileLocations() {
		data, err := s.reader.ReadFile(root, rel)
		if err != nil {
			continue
		}
		h.Write([]byte(rel))
		h.Write([]byte{0})
		h.Write(data)
	}
	return root + ":" + hex.EncodeToString(h.Sum(nil))
}
