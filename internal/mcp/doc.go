// Package mcp implements the Model Context Protocol (MCP) server for
// fastlane-context.
//
// The MCP server exposes six tools to AI coding assistants:
//   - analyze_project: Full fastlane analysis of a mobile project
//   - list_lanes: Lanes defined in the project's Fastfiles
//   - detect_signals: Dependency, config, service, and framework signals
//   - recommend_plugins: Plugin recommendations ranked by priority
//   - check_environment: Environment-variable completeness check
//   - analysis_history: Recent analysis runs from local storage
//
// # Protocol Overview
//
// MCP is a JSON-RPC 2.0 protocol over stdio transport:
//
//	Client → Server: {"method": "tools/call", "params": {...}}
//	Server → Client: {"result": {...}}
//
// The server communicates with MCP clients via standard input/output,
// making it simple to integrate with any MCP-compatible client.
//
// # Basic Usage
//
// The MCP server is typically started via the serve command:
//
//	fastlane-context serve
//
// It then listens on stdin for MCP protocol messages and writes responses
// to stdout. Logs go to stderr so the protocol stream stays clean.
//
// # Tool: analyze_project
//
// Analyze a mobile project's fastlane configuration:
//
//	Request:
//	{
//	  "name": "analyze_project",
//	  "arguments": {
//	    "path": "/path/to/project",
//	    "refresh": false
//	  }
//	}
//
//	Response:
//	{
//	  "root_path": "/path/to/project",
//	  "capabilities": {
//	    "platforms": ["ios"],
//	    "build": ["gym"],
//	    "distribution": ["pilot"],
//	    "metadata": [],
//	    "signing": ["match"]
//	  },
//	  "lanes": [
//	    {"name": "beta", "platform": "ios", "description": "Push a beta build"}
//	  ],
//	  "platforms": {
//	    "ios": {
//	      "platform": "ios",
//	      "lanes": [...],
//	      "signing": "automated",
//	      "destinations": ["TestFlight"],
//	      "has_metadata": false
//	    }
//	  },
//	  "signals": [...],
//	  "recommendations": [...],
//	  "suggested_actions": [...],
//	  "environment": {"status": "incomplete", "required": [...], "missing": [...]}
//	}
//
// Results are cached per project root, keyed by Fastfile content, so
// repeated calls on an unchanged project are cheap. Pass "refresh": true
// to force a re-read.
//
// # Tool: detect_signals
//
// Detect project composition signals, optionally filtered by category:
//
//	Request:
//	{
//	  "name": "detect_signals",
//	  "arguments": {
//	    "path": "/path/to/project",
//	    "category": "dependency"
//	  }
//	}
//
//	Response:
//	{
//	  "root": "/path/to/project",
//	  "signals": [
//	    {
//	      "category": "dependency",
//	      "name": "Sentry",
//	      "source": "Podfile",
//	      "confidence": "high"
//	    }
//	  ],
//	  "count": 1
//	}
//
// # Tool: analysis_history
//
// List recent analysis runs:
//
//	Request:
//	{
//	  "name": "analysis_history",
//	  "arguments": {
//	    "path": "/path/to/project",
//	    "limit": 10
//	  }
//	}
//
//	Response:
//	{
//	  "runs": [
//	    {
//	      "id": "6dbe9a9e-...",
//	      "root_path": "/path/to/project",
//	      "platforms": 2,
//	      "lanes": 3,
//	      "signals": 5,
//	      "recommendations": 2,
//	      "duration_ms": 12,
//	      "created_at": "2025-11-04T09:30:00Z"
//	    }
//	  ],
//	  "count": 1
//	}
//
// # MCP Client Configuration
//
// Configure in the client's MCP settings:
//
//	{
//	  "mcpServers": {
//	    "fastlane-context": {
//	      "command": "/usr/local/bin/fastlane-context",
//	      "args": ["serve"]
//	    }
//	  }
//	}
//
// # Error Handling
//
// The MCP server returns standard JSON-RPC error responses:
//
//	{
//	  "error": {
//	    "code": -32602,
//	    "message": "invalid path",
//	    "data": {
//	      "param": "path",
//	      "reason": "path does not exist"
//	    }
//	  }
//	}
//
// Error codes:
//   - -32602: Invalid params (missing/invalid arguments)
//   - -32603: Internal error (storage, filesystem, etc.)
//   - -32001: Analysis failed (project root could not be walked)
//
// A project with no Fastfile and no recognizable mobile files is not an
// error: analyze_project returns an empty analysis for it.
package mcp
