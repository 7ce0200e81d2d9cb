package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Akhil-Baki/empathetic-email-helper/common/id"
	"github.com/Akhil-Baki/empathetic-email-helper/common/llm"
	"github.com/Akhil-Baki/empathetic-email-helper/common/logger"
	"github.com/Akhil-Baki/empathetic-email-helper/common/metrics"
	"github.com/Akhil-Baki/empathetic-email-helper/common/otel"
	"github.com/Akhil-Baki/empathetic-email-helper/core/config"
	httprouter "github.com/Akhil-Baki/empathetic-email-helper/internal/http/router"
	"github.com/Akhil-Baki/empathetic-email-helper/internal/service"
	"github.com/Akhil-Baki/empathetic-email-helper/internal/store"
)

func main() {
	fmt.Printf("%s\n", banner)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, nil); err != nil {
		if errors.Is(err, config.ErrMissingAPIKey) {
			slog.ErrorContext(ctx, "refusing to start without an llm api key", "error", err)
		} else {
			slog.ErrorContext(ctx, "server exited", "error", err)
		}
		os.Exit(1)
	}
}

// run wires the server from the environment and serves until ctx is done.
// listening, when set, receives the bound address once the listener is open.
// Configuration errors return before any listener exists.
func run(ctx context.Context, listening func(addr string)) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	// OTel must init before logger (logger uses OTel provider in production)
	telemetry, err := otel.Setup(ctx, cfg.OTel)
	if err != nil {
		return fmt.Errorf("initializing otel: %w", err)
	}

	logger.Setup(cfg)

	if telemetry != nil {
		slog.InfoContext(ctx, "otel initialized", "endpoint", cfg.OTel.Endpoint)
	} else {
		slog.InfoContext(ctx, "otel disabled (no endpoint configured)")
	}

	slog.InfoContext(ctx, "email helper starting", "env", cfg.Env, "service", cfg.OTel.ServiceName)
	if err := id.Init(cfg.NodeID); err != nil {
		return fmt.Errorf("initializing snowflake id generator (node %d): %w", cfg.NodeID, err)
	}

	llmClient, err := llm.New(llm.Config{
		Provider:  cfg.LLM.Provider,
		APIKey:    cfg.LLM.APIKey,
		BaseURL:   cfg.LLM.BaseURL,
		Model:     cfg.LLM.Model,
		MaxTokens: cfg.LLM.MaxTokens,
	})
	if err != nil {
		return fmt.Errorf("creating llm client: %w", err)
	}
	slog.InfoContext(ctx, "llm client ready",
		"provider", llmClient.Provider(),
		"model", llmClient.Model(),
		"timeout", cfg.LLM.Timeout.String())

	registry := metrics.NewRegistry()

	services := service.NewServices(service.ServicesConfig{
		Stores:       store.NewStores(),
		LLMClient:    llmClient,
		ReplyTimeout: cfg.LLM.Timeout,
		Metrics:      metrics.NewReplyMetrics(registry),
	})

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	engineCfg := httprouter.EngineConfig{
		AllowedOrigins: cfg.CORS.AllowedOrigins,
		MetricsHandler: metrics.Handler(registry),
	}
	if cfg.OTel.Enabled() {
		engineCfg.ServiceName = cfg.OTel.ServiceName
	}

	server := &http.Server{
		Handler:           httprouter.NewEngine(services, engineCfg),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		// A reply may wait the full upstream timeout before it is written.
		WriteTimeout: cfg.LLM.Timeout + 10*time.Second,
		IdleTimeout:  120 * time.Second,
	}

	ln, err := net.Listen("tcp", ":"+cfg.Port)
	if err != nil {
		return fmt.Errorf("listening on port %s: %w", cfg.Port, err)
	}
	slog.InfoContext(ctx, "http server starting", "addr", ln.Addr().String())
	if listening != nil {
		listening(ln.Addr().String())
	}

	serveErr := make(chan error, 1)
	go func() {
		if err := server.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	var runErr error
	select {
	case <-ctx.Done():
		slog.InfoContext(ctx, "shutting down...")
	case err := <-serveErr:
		runErr = fmt.Errorf("http server: %w", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.ErrorContext(shutdownCtx, "http server shutdown error", "error", err)
	}

	if telemetry != nil {
		if err := telemetry.Shutdown(shutdownCtx); err != nil {
			slog.ErrorContext(shutdownCtx, "otel shutdown error", "error", err)
		}
	}

	slog.InfoContext(shutdownCtx, "shutdown complete")
	return runErr
}

const banner = `
███████╗███╗   ███╗ █████╗ ██╗██╗         ██╗  ██╗███████╗██╗     ██████╗ ███████╗██████╗
██╔════╝████╗ ████║██╔══██╗██║██║         ██║  ██║██╔════╝██║     ██╔══██╗██╔════╝██╔══██╗
█████╗  ██╔████╔██║███████║██║██║         ███████║█████╗  ██║     ██████╔╝█████╗  ██████╔╝
██╔══╝  ██║╚██╔╝██║██╔══██║██║██║         ██╔══██║██╔══╝  ██║     ██╔═══╝ ██╔══╝  ██╔══██╗
███████╗██║ ╚═╝ ██║██║  ██║██║███████╗    ██║  ██║███████╗███████╗██║     ███████╗██║  ██║
╚══════╝╚═╝     ╚═╝╚═╝  ╚═╝╚═╝╚══════╝    ╚═╝  ╚═╝╚══════╝╚══════╝╚═╝     ╚══════╝╚═╝  ╚═╝
`
