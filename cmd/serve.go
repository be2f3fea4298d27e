package cmd

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	log "github.com/sirupsen/logrus"

	"github.com/rbhale-git/laser-tms/internal/server"
	"github.com/spf13/cobra"
)

var (
	serveAddr    string
	serveVerbose bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the sizing solvers over HTTP and WebSocket",
	Long: `Start the sizing API server.

Endpoints:
  GET  /healthz      - liveness probe
  GET  /v1/defaults  - the canonical default scenario
  POST /v1/solve     - solve a scenario (same JSON schema as scenario files)
  GET  /ws           - WebSocket: interactive re-solving, one report per message

The server shuts down gracefully on SIGINT or SIGTERM.

Examples:
  laser-tms serve
  laser-tms serve --addr :9100
  curl -s localhost:8090/v1/solve -d '{"loads":{"baseline_w":600}}'`,
	Run: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVar(&serveAddr, "addr", ":8090", "Listen address")
	serveCmd.Flags().BoolVarP(&serveVerbose, "verbose", "v", false, "Debug logging")
}

func runServe(cmd *cobra.Command, args []string) {
	if serveVerbose {
		log.SetLevel(log.DebugLevel)
	}

	srv := server.New(serveAddr)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := srv.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		log.WithError(err).Error("server exited")
		os.Exit(1)
	}
	log.Info("server stopped")
}
