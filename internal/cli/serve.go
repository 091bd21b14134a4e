package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/prism-dev/prism/internal/config"
	"github.com/prism-dev/prism/internal/server"
)

func RunServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if port, _ := cmd.Flags().GetInt("port"); port != 0 {
		cfg.Port = port
	}

	logger := newLogger(cfg.LogLevel)
	if cfg.OpenAIKey == "" {
		logger.Warn("PRISM_OPENAI_API_KEY is not set; /api/ai/recommend will fail closed")
	}

	srv := server.New(cfg, cmd.Root().Version, logger)
	if err := srv.Run(cfg.Port); err != nil {
		return fmt.Errorf("server stopped: %w", err)
	}
	return nil
}

// loadConfig reads configuration and applies the shared --assets
// override used by every command that touches the assets root.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if cmd.Flags().Lookup("assets") != nil {
		if assets, _ := cmd.Flags().GetString("assets"); assets != "" {
			cfg.AssetsDir = assets
		}
	}
	return cfg, nil
}

func newLogger(level string) *slog.Logger {
	var lvl slog.Level
	switch level {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}))
}
