package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/jusunglee/cyrtranslit/internal/client"
	"github.com/jusunglee/cyrtranslit/internal/logger"
)

// one sample per language; reversible standards must round-trip it
var samples = map[string]string{
	"Russian":    "Съешь же ещё этих мягких французских булок, да выпей чаю.",
	"Belarusian": "У рудым футры брат Гішпанскі ўсё ж з ёю шчыра жаў.",
	"Ukrainian":  "Чуєш їх, доцю, га? Кумедна ж ти, прощайся без ґольфів!",
}

func main() {
	if err := run(); err != nil {
		slog.Error("E2E FAILED", "error", err)
		os.Exit(1)
	}
	slog.Info("E2E PASSED")
}

func run() error {
	_ = godotenv.Load()

	baseURL := requireEnv("E2E_BASE_URL")

	log := logger.New()
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	c := client.New(baseURL)

	log.Info("Phase 1: Checking health...", "base_url", baseURL)
	if err := c.Health(ctx); err != nil {
		return fmt.Errorf("health check: %w", err)
	}

	log.Info("Phase 2: Listing standards...")
	standards, err := c.Standards(ctx)
	if err != nil {
		return fmt.Errorf("listing standards: %w", err)
	}
	if len(standards) == 0 {
		return errors.New("server reported no standards")
	}
	log.Info("fetched standards", "count", len(standards))

	log.Info("Phase 3: Converting samples...")
	var recorded []int64
	for _, std := range standards {
		text, ok := samples[std.Language]
		if !ok {
			return fmt.Errorf("no sample for language %q (standard %s)", std.Language, std.ID)
		}

		fwd, err := c.Convert(ctx, client.ConvertRequest{Text: text, Standard: string(std.ID)})
		if err != nil {
			return fmt.Errorf("converting with %s: %w", std.ID, err)
		}
		if fwd.Result == text {
			return fmt.Errorf("%s left the sample unchanged", std.ID)
		}
		if fwd.ID != 0 {
			recorded = append(recorded, fwd.ID)
		}

		back, err := c.Convert(ctx, client.ConvertRequest{Text: fwd.Result, Standard: string(std.ID), Direction: "from-latin"})
		switch {
		case !std.Reversible && errors.Is(err, client.ErrUnsupportedDirection):
			log.Info("forward-only standard rejected reverse as expected", "standard", std.ID)
		case !std.Reversible:
			return fmt.Errorf("%s is forward-only but reverse returned %v", std.ID, err)
		case err != nil:
			return fmt.Errorf("reversing with %s: %w", std.ID, err)
		case back.Result != text:
			return fmt.Errorf("%s round trip mismatch: got %q want %q", std.ID, back.Result, text)
		default:
			log.Info("round trip ok", "standard", std.ID, "latin", fwd.Result)
		}
	}

	log.Info("Phase 4: Verifying history...", "recorded", len(recorded))
	if len(recorded) == 0 {
		log.Warn("server has history disabled, skipping")
		return nil
	}
	for _, id := range recorded {
		if _, err := c.Conversion(ctx, id); err != nil {
			return fmt.Errorf("fetching conversion %d: %w", id, err)
		}
	}

	log.Info("all verifications passed", "standards", len(standards), "history_entries", len(recorded))
	return nil
}

func requireEnv(key string) string {
	val := os.Getenv(key)
	if val == "" {
		slog.Error("required environment variable not set", "key", key)
		os.Exit(1)
	}
	return val
}
