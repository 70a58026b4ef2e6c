package cmd

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"minio-mcp/core/config"
	"minio-mcp/core/loader"
	"minio-mcp/core/logger"
	"minio-mcp/core/mcpserver"
	"minio-mcp/core/middleware/rayid"
	"minio-mcp/core/storage"

	"minio-mcp/feature/bucket"
	"minio-mcp/feature/object"

	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the MCP server",
	Long:  `Starts the MCP server on the configured transport and registers all enabled tool features.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		// 1. Load Configuration
		cfg, err := config.LoadConfig(".")
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}

		if !cfg.MCP.IsValidTransport() {
			return fmt.Errorf("unsupported transport %q (expected %s or %s)",
				cfg.MCP.Transport, mcpserver.TransportStdio, mcpserver.TransportHTTP)
		}

		// 2. Initialize Logger
		logg, err := logger.New(&cfg.Log)
		if err != nil {
			log.Fatalf("Failed to initialize logger: %v", err)
		}
		defer logg.Sync()
		zap.ReplaceGlobals(logg)

		// 3. Initialize Storage
		store, err := storage.NewClient(cfg.Storage)
		if err != nil {
			logg.Fatal("Failed to create storage client", zap.Error(err))
		}

		// 4. Build the MCP server with ray-id tracing and panic recovery
		srv := server.NewMCPServer(cfg.MCP.Name, cfg.MCP.Version,
			server.WithToolCapabilities(false),
			server.WithRecovery(),
			server.WithToolHandlerMiddleware(rayid.New(logg)),
		)

		// 5. Initialize Feature Loader
		mgr := loader.NewManager()

		// Register Features
		mgr.Register(bucket.NewFeature(store, logg, cfg.Storage))
		mgr.Register(object.NewFeature(store, logg, cfg.Storage))

		if err := mgr.LoadAll(srv); err != nil {
			logg.Fatal("Failed to load features", zap.Error(err))
		}

		// 6. Serve on the configured transport
		switch cfg.MCP.Transport {
		case mcpserver.TransportHTTP:
			return serveHTTP(srv, cfg.MCP, logg)
		default:
			logg.Info("MCP server listening on stdio",
				zap.String("endpoint", cfg.Storage.Endpoint),
			)
			return server.ServeStdio(srv)
		}
	},
}

// serveHTTP runs the streamable HTTP transport with graceful shutdown.
func serveHTTP(srv *server.MCPServer, cfg mcpserver.Config, logg *zap.Logger) error {
	httpSrv := server.NewStreamableHTTPServer(srv)

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	errCh := make(chan error, 1)
	go func() {
		logg.Info("MCP server listening", zap.String("addr", cfg.Addr()))
		errCh <- httpSrv.Start(cfg.Addr())
	}()

	select {
	case err := <-errCh:
		return err
	case <-done:
		logg.Info("Shutting down MCP server")
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return httpSrv.Shutdown(ctx)
	}
}

func init() {
	RootCmd.AddCommand(serveCmd)
}
