package impl

import (
	"io"
	"log/slog"
	"time"

	"vaultd/config"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	return &config.Config{
		OAuth: &config.OAuthConfig{
			FallbackRedirectURL: "https://app.example.com/connections",
			StateTTL:            10 * time.Minute,
			SweepInterval:       5 * time.Minute,
			ProviderTimeout:     10 * time.Second,
		},
		Refresh: &config.RefreshConfig{
			Enabled:  true,
			Interval: time.Hour,
			Window:   time.Hour,
		},
	}
}

func strPtr(s string) *string {
	return &s
}
