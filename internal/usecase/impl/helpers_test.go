package impl

import (
	"io"
	"log/slog"

	"blog/config"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig(reconcileAttempts int) *config.Config {
	return &config.Config{
		Auth: &config.AuthConfig{
			BcryptCost:        10,
			ReconcileAttempts: reconcileAttempts,
		},
	}
}
