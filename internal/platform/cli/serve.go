package cli

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"hashAnalysisBackend/internal/adapter/routes"
	"hashAnalysisBackend/internal/pkg/logging"
	"hashAnalysisBackend/internal/platform/bootstrap"
)

const shutdownTimeout = 10 * time.Second

func newServeCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return serve(ctx, a)
		},
	}

	cmd.Flags().String("host", "0.0.0.0", "listen address")
	cmd.Flags().String("port", "8080", "listen port")
	cmd.Flags().Int("workers", 0, "worker pool size (0 = one per CPU)")
	cmd.Flags().String("db-driver", "sqlite", "database driver (sqlite, mysql, none)")
	cmd.Flags().String("db-dsn", "", "database DSN (overrides the connection fields)")
	return cmd
}

func serve(ctx context.Context, a *app) error {
	rt, err := bootstrap.New(ctx, a.cfg, true)
	if err != nil {
		return err
	}
	defer func() {
		if err := rt.Close(); err != nil {
			logging.Errorf("shutdown: %v", err)
		}
	}()

	srv := &http.Server{
		Addr:              a.cfg.Server.Addr(),
		Handler:           routes.NewRouter(rt.Service, a.cfg.Server.Mode),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logging.Infof("listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logging.Infof("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
