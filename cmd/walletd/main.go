// Local wallet session server: sign-up, lock screen and notifications over HTTP.
// Usage: KEYSTORE_DIR=./accounts go run ./cmd/walletd
package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/AlexZinkM/wallet-session/internal/api"
	"github.com/AlexZinkM/wallet-session/internal/config"
	"github.com/AlexZinkM/wallet-session/internal/handler"
	"github.com/AlexZinkM/wallet-session/internal/logging"
	"github.com/AlexZinkM/wallet-session/internal/notify"
	"github.com/AlexZinkM/wallet-session/internal/session"
	"github.com/AlexZinkM/wallet-session/solana"

	"go.uber.org/zap"
)

func main() {
	if err := config.Init(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, config.Get(), nil); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run serves until ctx is done, then shuts down gracefully.
// The bound address is sent on ready once the listener is up.
func run(ctx context.Context, cfg *config.Config, ready chan<- string) error {
	logger, err := logging.New(cfg.LogLevel)
	if err != nil {
		return err
	}
	defer logger.Sync()

	keystore, err := solana.NewKeystore(cfg.KeystoreDir, solana.WithLogger(logger))
	if err != nil {
		return err
	}

	queue := notify.NewQueue(cfg.NotificationLimit)
	store := session.NewStore(keystore, notify.WithLogging(queue, logger),
		session.WithUnlocker(keystore),
		session.WithLogger(logger),
		session.WithFailureNotifications(cfg.NotifyFailures),
	)
	defer store.Close()

	router := api.SetupRouter(
		handler.NewSessionHandler(store, logger),
		handler.NewNotificationHandler(queue),
	)

	ln, err := net.Listen("tcp", net.JoinHostPort("", cfg.Port))
	if err != nil {
		return fmt.Errorf("failed to listen: %w", err)
	}

	srv := &http.Server{
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Serve(ln)
	}()
	logger.Info("server started", zap.String("addr", ln.Addr().String()), zap.String("keystore", cfg.KeystoreDir))
	if ready != nil {
		ready <- ln.Addr().String()
	}

	select {
	case <-ctx.Done():
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down: %w", err)
	}
	logger.Info("server stopped")
	return nil
}
