// Command greekgen normalizes Greek words and generates noun vocabulary
// entries from the command line.
//
// Configuration comes from a YAML file (--config, CONFIG_PATH or
// ./config.yaml) and environment variables; a .env file in the working
// directory is loaded first when present.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/heartmarshall/mygreek-backend/internal/app"
	"github.com/heartmarshall/mygreek-backend/internal/config"
)

var rootCmd = &cobra.Command{
	Use:   "greekgen",
	Short: "Generate Greek noun vocabulary entries",
	Long: `greekgen turns a Greek word into a normalized lemma and a complete noun
entry (translations, declension table, examples) using a chat completion
model, optionally cross-checked against a second model.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return err
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "config file (default: $CONFIG_PATH or ./config.yaml)")
}

// setup loads configuration and builds the application.
func setup(cmd *cobra.Command) (*app.App, *slog.Logger, error) {
	path, _ := cmd.Flags().GetString("config")

	cfg, err := config.Load(path)
	if err != nil {
		return nil, nil, err
	}

	logger := app.NewLogger(cfg.Log)

	a, err := app.New(cfg, logger)
	if err != nil {
		return nil, logger, err
	}
	return a, logger, nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		slog.Error("command failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
