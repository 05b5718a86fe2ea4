package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"
)

// MCPRequest represents an incoming MCP JSON-RPC request.
type MCPRequest struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      any             `json:"id"`
	Method  string          `json:"method"`
	Params  json.RawMessage `json:"params,omitempty"`
}

// MCPResponse represents an MCP JSON-RPC response.
type MCPResponse struct {
	JSONRPC string    `json:"jsonrpc"`
	ID      any       `json:"id"`
	Result  any       `json:"result,omitempty"`
	Error   *MCPError `json:"error,omitempty"`
}

// MCPError is a JSON-RPC error object.
type MCPError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

// Standard JSON-RPC 2.0 error codes plus MCP extensions.
const (
	ErrCodeParseError     = -32700
	ErrCodeInvalidRequest = -32600
	ErrCodeMethodNotFound = -32601
	ErrCodeInvalidParams  = -32602
	ErrCodeInternal       = -32603
	ErrCodeToolNotFound   = -32001
)

// protocolVersion is the MCP protocol revision this bridge speaks.
const protocolVersion = "2024-11-05"

// HandleRequest processes an MCP request and returns a response.
func (b *Bridge) HandleRequest(ctx context.Context, req MCPRequest) MCPResponse {
	switch req.Method {
	case "initialize":
		return b.handleInitialize(req.ID)
	case "tools/list":
		return b.handleToolsList(req.ID)
	case "tools/call":
		return b.handleToolsCall(ctx, req.ID, req.Params)
	default:
		return errorResponse(req.ID, ErrCodeMethodNotFound,
			fmt.Sprintf("method %s not found", req.Method))
	}
}

func (b *Bridge) handleInitialize(id any) MCPResponse {
	return MCPResponse{
		JSONRPC: "2.0",
		ID:      id,
		Result: map[string]any{
			"protocolVersion": protocolVersion,
			"capabilities":    map[string]any{"tools": map[string]any{}},
			"serverInfo": map[string]any{
				"name":    b.info.Name,
				"version": b.info.Version,
			},
		},
	}
}

func (b *Bridge) handleToolsList(id any) MCPResponse {
	return MCPResponse{
		JSONRPC: "2.0",
		ID:      id,
		Result:  map[string]any{"tools": toolDescriptors()},
	}
}

type toolsCallParams struct {
	Name      string         `json:"name"`
	Arguments map[string]any `json:"arguments"`
}

func (b *Bridge) handleToolsCall(ctx context.Context, id any, params json.RawMessage) MCPResponse {
	var call toolsCallParams
	if err := json.Unmarshal(params, &call); err != nil {
		return errorResponse(id, ErrCodeInvalidParams, err.Error())
	}

	result, err := b.callTool(ctx, call.Name, call.Arguments)
	if err != nil {
		if err == errUnknownTool {
			return errorResponse(id, ErrCodeToolNotFound,
				fmt.Sprintf("tool %s not found", call.Name))
		}
		return errorResponse(id, ErrCodeInternal, err.Error())
	}

	payload, err := json.Marshal(result)
	if err != nil {
		return errorResponse(id, ErrCodeInternal, err.Error())
	}

	return MCPResponse{
		JSONRPC: "2.0",
		ID:      id,
		Result: map[string]any{
			"content": []map[string]any{
				{"type": "text", "text": string(payload)},
			},
		},
	}
}

func errorResponse(id any, code int, message string) MCPResponse {
	return MCPResponse{
		JSONRPC: "2.0",
		ID:      id,
		Error:   &MCPError{Code: code, Message: message},
	}
}
