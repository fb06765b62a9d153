package mcp

import (
	"github.com/mark3labs/mcp-go/mcp"
)

// analyzeProjectTool returns the tool definition for analyze_project
func analyzeProjectTool() mcp.Tool {
	return mcp.Tool{
		Name:        "analyze_project",
		Description: "Analyze a mobile project's fastlane setup: lanes, capabilities, signing, distribution destinations, signals, and plugin recommendations",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"path": map[string]interface{}{
					"type":        "string",
					"description": "Absolute path to the project root",
				},
				"refresh": map[string]interface{}{
					"type":        "boolean",
					"description": "If true, bypass the analysis cache and re-read the project",
					"default":     false,
				},
			},
			Required: []string{"path"},
		},
	}
}

// listLanesTool returns the tool definition for list_lanes
func listLanesTool() mcp.Tool {
	return mcp.Tool{
		Name:        "list_lanes",
		Description: "List the lanes defined in a project's Fastfiles with their platform and description",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"path": map[string]interface{}{
					"type":        "string",
					"description": "Absolute path to the project root",
				},
			},
			Required: []string{"path"},
		},
	}
}

// detectSignalsTool returns the tool definition for detect_signals
func detectSignalsTool() mcp.Tool {
	return mcp.Tool{
		Name:        "detect_signals",
		Description: "Detect project composition signals: declared dependencies, tool config files, service integrations, and UI frameworks",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"path": map[string]interface{}{
					"type":        "string",
					"description": "Absolute path to the project root",
				},
				"category": map[string]interface{}{
					"type":        "string",
					"description": "Restrict results to one signal category",
					"enum":        []string{"dependency", "config", "service", "framework"},
				},
			},
			Required: []string{"path"},
		},
	}
}

// recommendPluginsTool returns the tool definition for recommend_plugins
func recommendPluginsTool() mcp.Tool {
	return mcp.Tool{
		Name:        "recommend_plugins",
		Description: "Recommend fastlane plugins based on the project's detected signals and capabilities, ordered by priority",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"path": map[string]interface{}{
					"type":        "string",
					"description": "Absolute path to the project root",
				},
			},
			Required: []string{"path"},
		},
	}
}

// checkEnvironmentTool returns the tool definition for check_environment
func checkEnvironmentTool() mcp.Tool {
	return mcp.Tool{
		Name:        "check_environment",
		Description: "Check whether the environment variables required by the project's detected capabilities are set",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"path": map[string]interface{}{
					"type":        "string",
					"description": "Absolute path to the project root",
				},
			},
			Required: []string{"path"},
		},
	}
}

// analysisHistoryTool returns the tool definition for analysis_history
func analysisHistoryTool() mcp.Tool {
	return mcp.Tool{
		Name:        "analysis_history",
		Description: "List recent analysis runs, newest first, optionally filtered to one project root",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"path": map[string]interface{}{
					"type":        "string",
					"description": "Only return runs for this project root",
				},
				"limit": map[string]interface{}{
					"type":        "integer",
					"description": "Maximum number of runs to return (1-100)",
					"default":     10,
					"minimum":     1,
					"maximum":     100,
				},
			},
		},
	}
}
