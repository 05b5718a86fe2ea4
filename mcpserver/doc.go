// Package mcpserver exposes the shelf locator as MCP tools over JSON-RPC,
// so chat assistants can look up shelf positions with tools/call. Supported
// transports are newline-delimited stdio and plain HTTP POST.
package mcpserver
