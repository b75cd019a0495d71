package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// uriScheme is the custom URI scheme for tagsmith resources.
const uriScheme = "tagsmith://"

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "settings",
		Name:        "settings",
		Description: "Current extraction, report and output settings",
		MIMEType:    "application/json",
	}, s.handleSettingsResource)
}

// settingsInfo is the JSON form of the settings resource.
type settingsInfo struct {
	Delimiter     string   `json:"delimiter"`
	Variations    []string `json:"variations"`
	MissingValues []string `json:"missing_values"`
	Primary       int      `json:"primary"`
	LongTail      int      `json:"long_tail"`
	OutputFormat  string   `json:"output_format"`
}

// handleSettingsResource returns the current settings.
func (s *Server) handleSettingsResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	settings := s.ports.settings()

	data, err := json.MarshalIndent(settingsInfo{
		Delimiter:     settings.Extract.Delimiter,
		Variations:    settings.Extract.Variations,
		MissingValues: settings.Extract.MissingValues,
		Primary:       settings.Report.PrimaryCount,
		LongTail:      settings.Report.LongTailCount,
		OutputFormat:  settings.Output.Format.String(),
	}, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling settings: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}
