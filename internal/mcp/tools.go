package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/prokizzle/fastlane-context-mcp/internal/storage"
	"github.com/prokizzle/fastlane-context-mcp/pkg/types"
)

// MCP error codes
const (
	ErrorCodeInvalidParams  = -32602 // Invalid method parameters
	ErrorCodeInternalError  = -32603 // Internal JSON-RPC error
	ErrorCodeAnalysisFailed = -32001 // Project could not be analyzed
)

// handleAnalyzeProject handles the analyze_project tool invocation
func (s *Server) handleAnalyzeProject(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, ok := request.Params.Arguments.(map[string]interface{})
	if !ok {
		return nil, newMCPError(ErrorCodeInvalidParams, "invalid arguments", nil)
	}

	path, err := requireProjectPath(args)
	if err != nil {
		return nil, err
	}

	refresh := getBoolDefault(args, "refresh", false)

	start := time.Now()
	analysis, err := s.analyzeCached(ctx, path, refresh)
	if err != nil {
		return nil, newMCPError(ErrorCodeAnalysisFailed, "analysis failed", map[string]interface{}{
			"error": err.Error(),
		})
	}

	// Run history is best effort; a storage failure never fails the call.
	run := storage.NewRun(analysis, time.Since(start))
	if err := s.storage.RecordRun(ctx, run); err != nil {
		s.logger.Warn("failed to record analysis run", "error", err)
	}

	return mcp.NewToolResultText(formatJSON(analysis)), nil
}

// handleListLanes handles the list_lanes tool invocation
func (s *Server) handleListLanes(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, ok := request.Params.Arguments.(map[string]interface{})
	if !ok {
		return nil, newMCPError(ErrorCodeInvalidParams, "invalid arguments", nil)
	}

	path, err := requireProjectPath(args)
	if err != nil {
		return nil, err
	}

	analysis, err := s.analyzeCached(ctx, path, false)
	if err != nil {
		return nil, newMCPError(ErrorCodeAnalysisFailed, "analysis failed", map[string]interface{}{
			"error": err.Error(),
		})
	}

	response := map[string]interface{}{
		"root":  path,
		"lanes": analysis.Lanes,
		"count": len(analysis.Lanes),
	}
	return mcp.NewToolResultText(formatJSON(response)), nil
}

// handleDetectSignals handles the detect_signals tool invocation
func (s *Server) handleDetectSignals(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, ok := request.Params.Arguments.(map[string]interface{})
	if !ok {
		return nil, newMCPError(ErrorCodeInvalidParams, "invalid arguments", nil)
	}

	path, err := requireProjectPath(args)
	if err != nil {
		return nil, err
	}

	category := getStringDefault(args, "category", "")
	if category != "" {
		switch types.SignalCategory(category) {
		case types.CategoryDependency, types.CategoryConfig, types.CategoryService, types.CategoryFramework:
		default:
			return nil, newMCPError(ErrorCodeInvalidParams, "invalid category", map[string]interface{}{
				"param":   "category",
				"value":   category,
				"allowed": []string{"dependency", "config", "service", "framework"},
			})
		}
	}

	analysis, err := s.analyzeCached(ctx, path, false)
	if err != nil {
		return nil, newMCPError(ErrorCodeAnalysisFailed, "analysis failed", map[string]interface{}{
			"error": err.Error(),
		})
	}

	sigs := analysis.Signals
	if category != "" {
		filtered := []types.Signal{}
		for _, sig := range sigs {
			if sig.Category == types.SignalCategory(category) {
				filtered = append(filtered, sig)
			}
		}
		sigs = filtered
	}

	response := map[string]interface{}{
		"root":    path,
		"signals": sigs,
		"count":   len(sigs),
	}
	return mcp.NewToolResultText(formatJSON(response)), nil
}

// handleRecommendPlugins handles the recommend_plugins tool invocation
func (s *Server) handleRecommendPlugins(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, ok := request.Params.Arguments.(map[string]interface{})
	if !ok {
		return nil, newMCPError(ErrorCodeInvalidParams, "invalid arguments", nil)
	}

	path, err := requireProjectPath(args)
	if err != nil {
		return nil, err
	}

	analysis, err := s.analyzeCached(ctx, path, false)
	if err != nil {
		return nil, newMCPError(ErrorCodeAnalysisFailed, "analysis failed", map[string]interface{}{
			"error": err.Error(),
		})
	}

	response := map[string]interface{}{
		"root":            path,
		"recommendations": analysis.Recommendations,
		"count":           len(analysis.Recommendations),
	}
	return mcp.NewToolResultText(formatJSON(response)), nil
}

// handleCheckEnvironment handles the check_environment tool invocation
func (s *Server) handleCheckEnvironment(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, ok := request.Params.Arguments.(map[string]interface{})
	if !ok {
		return nil, newMCPError(ErrorCodeInvalidParams, "invalid arguments", nil)
	}

	path, err := requireProjectPath(args)
	if err != nil {
		return nil, err
	}

	analysis, err := s.analyzeCached(ctx, path, false)
	if err != nil {
		return nil, newMCPError(ErrorCodeAnalysisFailed, "analysis failed", map[string]interface{}{
			"error": err.Error(),
		})
	}

	// Re-check against the live process environment: the cached analysis
	// may predate an export.
	report := s.env.Check(analysis.Environment.Required)

	response := map[string]interface{}{
		"root":        path,
		"environment": report,
	}
	return mcp.NewToolResultText(formatJSON(response)), nil
}

// handleAnalysisHistory handles the analysis_history tool invocation
func (s *Server) handleAnalysisHistory(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	// Both parameters are optional, so a missing arguments object is fine.
	args, _ := request.Params.Arguments.(map[string]interface{})
	if args == nil {
		args = map[string]interface{}{}
	}

	rootFilter := getStringDefault(args, "path", "")
	limit := getIntDefault(args, "limit", 10)
	if limit < 1 || limit > 100 {
		return nil, newMCPError(ErrorCodeInvalidParams, "limit must be between 1 and 100", map[string]interface{}{
			"param": "limit",
			"value": limit,
		})
	}

	runs, err := s.storage.ListRuns(ctx, rootFilter, limit)
	if err != nil {
		return nil, newMCPError(ErrorCodeInternalError, "failed to list analysis runs", map[string]interface{}{
			"error": err.Error(),
		})
	}

	response := map[string]interface{}{
		"runs":  runs,
		"count": len(runs),
	}
	return mcp.NewToolResultText(formatJSON(response)), nil
}

// Helper functions

// newMCPError creates a properly formatted MCP error
func newMCPError(code int, message string, data interface{}) error {
	// MCP errors are returned as regular errors, the framework handles encoding
	return &MCPError{
		Code:    code,
		Message: message,
		Data:    data,
	}
}

// MCPError represents an MCP protocol error
type MCPError struct {
	Code    int
	Message string
	Data    interface{}
}

func (e *MCPError) Error() string {
	return fmt.Sprintf("MCP error %d: %s", e.Code, e.Message)
}

// requireProjectPath extracts and validates the mandatory path argument.
func requireProjectPath(args map[string]interface{}) (string, error) {
	path, ok := args["path"].(string)
	if !ok || path == "" {
		return "", newMCPError(ErrorCodeInvalidParams, "path parameter is required", map[string]interface{}{
			"param":  "path",
			"reason": "missing or empty",
		})
	}
	if err := validatePath(path); err != nil {
		return "", newMCPError(ErrorCodeInvalidParams, "invalid path", map[string]interface{}{
			"param":  "path",
			"reason": err.Error(),
		})
	}
	return path, nil
}

// validatePath checks if a path exists and is accessible. Any readable
// directory is analyzable; a project with no recognizable mobile files
// yields an empty analysis rather than an error.
func validatePath(path string) error {
	if path == "" {
		return ErrPathRequired
	}

	// Check if path is absolute
	if !filepath.IsAbs(path) {
		return ErrPathNotAbsolute
	}

	// Check if path exists
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return ErrPathNotFound
	}
	if err != nil {
		return ErrPathNotReadable
	}

	// Check if it's a directory
	if !info.IsDir() {
		return ErrNotDirectory
	}

	// Check if directory is readable
	f, err := os.Open(path)
	if err != nil {
		return ErrPathNotReadable
	}
	_ = f.Close()

	return nil
}

// formatJSON formats a response as indented JSON
func formatJSON(v interface{}) string {
	bytes, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Sprintf("%v", v)
	}
	return string(bytes)
}

// getBoolDefault extracts a boolean parameter with a default value
func getBoolDefault(args map[string]interface{}, key string, defaultValue bool) bool {
	if val, ok := args[key].(bool); ok {
		return val
	}
	return defaultValue
}

// getIntDefault extracts an integer parameter with a default value
func getIntDefault(args map[string]interface{}, key string, defaultValue int) int {
	if val, ok := args[key].(float64); ok {
		return int(val)
	}
	if val, ok := args[key].(int); ok {
		return val
	}
	return defaultValue
}

// getStringDefault extracts a string parameter with a default value
func getStringDefault(args map[string]interface{}, key string, defaultValue string) string {
	if val, ok := args[key].(string); ok {
		return val
	}
	return defaultValue
}

// Validation helpers

var (
	ErrPathRequired    = errors.New("path is required")
	ErrPathNotAbsolute = errors.New("path must be absolute")
	ErrPathNotFound    = errors.New("path does not exist")
	ErrPathNotReadable = errors.New("path is not readable")
	ErrNotDirectory    = errors.New("path is not a directory")
)
