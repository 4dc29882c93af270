package main

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/joseph-ayodele/ftw-report/internal/common"
)

var (
	envFile  string
	logLevel string

	cfg    *common.Config
	logger *slog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "ftw",
	Short: "Turn FTW teacher-appointment forms into reports",
	Long: `ftw reads a two-page FTW teacher-appointment form (PDF, image or OCR text),
extracts its fields with an LLM and derives the report used to notify the
appointment or cessation:

  - analyze a form and keep the result as the current report
  - show, copy to the clipboard, or export the current report as PDF/XLSX
  - reset to start over with another form`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("load %s: %w", envFile, err)
		}
		logger = newLogger(logLevel)
		slog.SetDefault(logger)

		cfg = common.LoadConfig()
		return cfg.Validate()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "dotenv file with configuration (optional)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "log level: debug, info, warn or error")

	rootCmd.AddCommand(analyzeCmd, showCmd, copyCmd, exportCmd, resetCmd, directiveCmd, ocrCmd)
}

func newLogger(level string) *slog.Logger {
	var lvl slog.Level
	switch strings.ToLower(level) {
	case "debug":
		lvl = slog.LevelDebug
	case "info":
		lvl = slog.LevelInfo
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelWarn
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}))
}
