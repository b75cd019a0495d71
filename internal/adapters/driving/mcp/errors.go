// Package mcp provides an MCP (Model Context Protocol) server adapter for tagsmith.
// It lets AI assistants run the tag pipeline on text and inline CSV data.
package mcp

import "errors"

// ErrMissingTagService is returned when the tag service is not provided.
var ErrMissingTagService = errors.New("mcp: tag service is required")
