package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/AJ-Ball/lib-api/config"
	"github.com/AJ-Ball/lib-api/loader"
	"github.com/AJ-Ball/lib-api/mcpserver"
	"github.com/AJ-Ball/lib-api/server"
)

const version = "1.0.0"

func main() {
	mcpStdio := flag.Bool("mcp-stdio", false, "serve MCP JSON-RPC on stdin/stdout instead of HTTP")
	flag.Parse()

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	cfg, err := config.Load()
	if err != nil {
		slog.Error("configuration error", "error", err)
		os.Exit(1)
	}

	store := loader.NewCachedStore(
		loader.NewXLSXStore(cfg.Catalog.Workbook, cfg.Catalog.Sheet),
		cfg.Search.SuggestCount,
	)

	if *mcpStdio {
		runMCPStdio(store)
		return
	}

	slog.Info("starting lib-api", "version", version, "addr", cfg.Server.Addr)

	srv := &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           server.New(store, cfg),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("listen failed", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	slog.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("forced shutdown", "error", err)
		os.Exit(1)
	}
	slog.Info("server exited")
}

func runMCPStdio(store *loader.CachedStore) {
	loc, err := store.Locator()
	if err != nil {
		slog.Error("catalog unavailable", "error", err)
		os.Exit(1)
	}

	bridge := mcpserver.New(loc, mcpserver.ServerInfo{Name: "lib-api", Version: version})
	if err := mcpserver.ServeStdio(context.Background(), bridge, os.Stdin, os.Stdout); err != nil {
		slog.Error("mcp server failed", "error", err)
		os.Exit(1)
	}
}
