package mcpserver

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// ServeStdio runs the bridge as an MCP server over newline-delimited
// JSON-RPC on the given reader/writer pair (typically stdin/stdout).
// Blocks until the reader is exhausted or the context is cancelled.
func ServeStdio(ctx context.Context, b *Bridge, in io.Reader, out io.Writer) error {
	scanner := bufio.NewScanner(in)
	encoder := json.NewEncoder(out)

	for scanner.Scan() {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		var req MCPRequest
		if err := json.Unmarshal(scanner.Bytes(), &req); err != nil {
			if err := encoder.Encode(errorResponse(nil, ErrCodeParseError, err.Error())); err != nil {
				return fmt.Errorf("encode error response: %w", err)
			}
			continue
		}

		if err := encoder.Encode(b.HandleRequest(ctx, req)); err != nil {
			return fmt.Errorf("encode response: %w", err)
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read request stream: %w", err)
	}
	return nil
}

// ServeHTTP returns an http.Handler that accepts POSTed JSON-RPC bodies and
// replies with JSON responses.
func ServeHTTP(b *Bridge) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}

		var req MCPRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(w).Encode(errorResponse(nil, ErrCodeParseError, err.Error()))
			return
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(b.HandleRequest(r.Context(), req))
	})
}
