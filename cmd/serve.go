package cmd

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/installbridge/installbridge/internal/config"
	"github.com/installbridge/installbridge/internal/logger"
	"github.com/installbridge/installbridge/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the install redirect server",
	Long: `Serve the stateless redirect endpoint (/go), inline badge rendering
(/badge.svg), embed snippets (/snippets), and Prometheus metrics.
Configuration layers: built-in defaults, conf/bridge.yaml, and
BRIDGE_-prefixed environment variables.`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

// runningInTTY returns true when stdout is a character device.
func runningInTTY() bool {
	fi, err := os.Stdout.Stat()
	if err != nil {
		return false
	}
	return fi.Mode()&os.ModeCharDevice != 0
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	log, err := logger.New(cfg.Paths.Root, runningInTTY())
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	srv := server.New(cfg.HTTP.ListenAddr, server.Router(server.Options{
		MaxPayloadBytes: cfg.HTTP.MaxPayloadBytes,
	}))

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Infow("listening", "addr", cfg.HTTP.ListenAddr)
		if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		log.Infow("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		zap.S().Errorw("server exited", "err", err)
		return err
	}
	return nil
}
