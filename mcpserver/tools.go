package mcpserver

import (
	"context"
	"errors"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/AJ-Ball/lib-api/locate"
)

var errUnknownTool = errors.New("unknown tool")

// ServerInfo describes this MCP server in the initialize response.
type ServerInfo struct {
	Name    string
	Version string
}

// Bridge exposes the locator as MCP tools so catalog assistants can ask
// "where is this book" over JSON-RPC.
type Bridge struct {
	loc  *locate.Locator
	info ServerInfo
}

// New creates a Bridge over a built locator.
func New(loc *locate.Locator, info ServerInfo) *Bridge {
	if info.Name == "" {
		info.Name = "lib-api"
	}
	return &Bridge{loc: loc, info: info}
}

// toolDescriptors returns the MCP tool definitions this bridge serves.
func toolDescriptors() []mcp.Tool {
	return []mcp.Tool{
		{
			Name:        "locate_shelf",
			Description: "Locate the physical shelf for a library call number or category keyword",
			InputSchema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"q": map[string]any{
						"type":        "string",
						"description": "Call number (e.g. 370.113พ) or free-text category query",
					},
					"limit": map[string]any{
						"type":        "integer",
						"description": "Maximum number of results (1-20, default 5)",
					},
				},
				"required": []string{"q"},
			},
		},
		{
			Name:        "index_size",
			Description: "Number of shelf ranges in the catalog index",
			InputSchema: map[string]any{
				"type":       "object",
				"properties": map[string]any{},
			},
		},
	}
}

func (b *Bridge) callTool(ctx context.Context, name string, args map[string]any) (any, error) {
	switch name {
	case "locate_shelf":
		q, _ := args["q"].(string)
		if q == "" {
			return nil, errors.New("argument q is required")
		}
		limit := 0
		if n, ok := args["limit"].(float64); ok {
			limit = int(n)
		}
		return b.loc.Search(ctx, q, limit), nil

	case "index_size":
		return map[string]any{"rows": b.loc.Size()}, nil

	default:
		return nil, errUnknownTool
	}
}
