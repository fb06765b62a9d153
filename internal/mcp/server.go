package mcp

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/golang-lru/v2"
	"github.com/mark3labs/mcp-go/server"

	"github.com/prokizzle/fastlane-context-mcp/internal/analyzer"
	"github.com/prokizzle/fastlane-context-mcp/internal/config"
	"github.com/prokizzle/fastlane-context-mcp/internal/envcheck"
	"github.com/prokizzle/fastlane-context-mcp/internal/projectfs"
	"github.com/prokizzle/fastlane-context-mcp/internal/signals"
	"github.com/prokizzle/fastlane-context-mcp/internal/storage"
	"github.com/prokizzle/fastlane-context-mcp/pkg/types"
)

const (
	// ServerName is the MCP server name
	ServerName = "fastlane-context-mcp"
	// ServerVersion is the current server version
	ServerVersion = "1.0.0"
)

// Server wraps the MCP server with application dependencies
type Server struct {
	mcp      *server.MCPServer
	analyzer *analyzer.Analyzer
	storage  storage.Storage
	env      envcheck.Checker
	reader   projectfs.Reader
	cache    *lru.Cache[string, *types.ProjectAnalysis]
	logger   *slog.Logger
}

// NewServer creates a new MCP server instance. A nil config falls back to
// defaults; a nil logger gets a stderr text handler at the configured
// level (stdout carries the MCP protocol and must stay clean).
func NewServer(cfg *config.Config, logger *slog.Logger) (*Server, error) {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: cfg.SlogLevel(),
		}))
	}

	// Expand home directory if needed
	dbPath := cfg.DBPath
	if strings.HasPrefix(dbPath, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[2:])
	}

	// Create directory if it doesn't exist
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	// Initialize storage
	store, err := storage.NewSQLiteStorage(dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize storage: %w", err)
	}

	// Wire the analysis pipeline
	reader := projectfs.OSReader{}
	walker := &projectfs.DirWalker{
		MaxDepth: cfg.MaxWalkDepth,
		SkipDirs: cfg.SkipDirs,
	}
	detector := signals.New(reader).WithScanLimit(cfg.ScanLimit)
	checker := envcheck.ProcessChecker{}
	anl := analyzer.New(walker, reader, detector, checker, logger)

	// Analyses are cached per project root keyed by Fastfile content, so
	// repeated tool calls against an unchanged project skip the re-read.
	cache, err := lru.New[string, *types.ProjectAnalysis](cfg.CacheSize)
	if err != nil {
		return nil, fmt.Errorf("failed to create analysis cache: %w", err)
	}

	// Create MCP server
	mcpServer := server.NewMCPServer(
		ServerName,
		ServerVersion,
	)

	s := &Server{
		mcp:      mcpServer,
		analyzer: anl,
		storage:  store,
		env:      checker,
		reader:   reader,
		cache:    cache,
		logger:   logger,
	}

	// Register tools
	if err := s.registerTools(); err != nil {
		return nil, fmt.Errorf("failed to register tools: %w", err)
	}

	return s, nil
}

// Serve starts the MCP server on stdio and blocks until shutdown
func (s *Server) Serve(ctx context.Context) error {
	defer func() { _ = s.storage.Close() }()
	return server.ServeStdio(s.mcp)
}

// registerTools registers all MCP tools
func (s *Server) registerTools() error {
	s.mcp.AddTool(analyzeProjectTool(), s.handleAnalyzeProject)
	s.mcp.AddTool(listLanesTool(), s.handleListLanes)
	s.mcp.AddTool(detectSignalsTool(), s.handleDetectSignals)
	s.mcp.AddTool(recommendPluginsTool(), s.handleRecommendPlugins)
	s.mcp.AddTool(checkEnvironmentTool(), s.handleCheckEnvironment)
	s.mcp.AddTool(analysisHistoryTool(), s.handleAnalysisHistory)
	return nil
}
