package impl

import (
	"io"
	"log/slog"

	"venturesroom/config"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig(demoMode bool) *config.Config {
	return &config.Config{
		Auth: &config.AuthConfig{
			BcryptCost: 12,
			DemoMode:   demoMode,
		},
	}
}
