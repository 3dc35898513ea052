package impl

import (
	"io"
	"log/slog"

	"ideaforge/config"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	return &config.Config{
		Stripe: &config.StripeConfig{
			SecretKey: "sk_test_123",
			Currency:  "usd",
		},
	}
}

func strPtr(s string) *string {
	return &s
}

func floatPtr(f float64) *float64 {
	return &f
}
