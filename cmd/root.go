package cmd

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/s0up4200/go-furtrack/config"
	"github.com/s0up4200/go-furtrack/furtrack"
)

var (
	cfgFile string
	cfg     *config.Config
	logger  zerolog.Logger
	client  *furtrack.Client

	version   = "dev"
	buildTime = "unknown"

	// Command flags
	apiKey     string
	page       int
	filterExpr string
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "furtrack",
	Short: "Browse FurTrack from the command line",
	Long: `furtrack is a CLI for the FurTrack image board. It can look up users,
posts, tags and albums, resolve thumbnail URLs, and classify tag strings
by their type prefix. Output is JSON on stdout.`,
	PersistentPreRunE: initializeApp,
}

// SetVersion sets the version information for the application.
func SetVersion(v, bt string) {
	version = v
	buildTime = bt
	rootCmd.Version = fmt.Sprintf("%s (built %s)", version, buildTime)
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml)")
	rootCmd.PersistentFlags().StringVar(&apiKey, "api-key", "", "FurTrack API key (overrides config)")
}

// initializeApp initializes the configuration and the API client
func initializeApp(cmd *cobra.Command, args []string) error {
	var err error
	cfg, err = config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger = setupLogger(cfg.Logging)

	// Override API key from command line if specified
	if cmd.Flags().Changed("api-key") {
		cfg.Furtrack.APIKey = apiKey
	}

	opts := []furtrack.Option{
		furtrack.WithAPIKey(cfg.Furtrack.APIKey),
		furtrack.WithHeaders(cfg.Furtrack.Headers),
	}
	if cfg.Furtrack.BaseURL != "" {
		opts = append(opts, furtrack.WithBaseURL(cfg.Furtrack.BaseURL))
	}

	client, err = furtrack.NewClient(logger, opts...)
	if err != nil {
		return fmt.Errorf("failed to create FurTrack client: %w", err)
	}

	return nil
}

// setupLogger configures the zerolog logger
func setupLogger(cfg config.LoggingConfig) zerolog.Logger {
	level := zerolog.InfoLevel
	switch strings.ToLower(cfg.Level) {
	case "debug":
		level = zerolog.DebugLevel
	case "warn":
		level = zerolog.WarnLevel
	case "error":
		level = zerolog.ErrorLevel
	}

	zerolog.SetGlobalLevel(level)

	if cfg.Format == "json" {
		return zerolog.New(os.Stderr).With().Timestamp().Logger()
	}

	// Console format; only color when stderr is a terminal
	color := cfg.Color && isatty.IsTerminal(os.Stderr.Fd())
	output := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
		NoColor:    !color,
	}

	return zerolog.New(output).With().Timestamp().Logger()
}
