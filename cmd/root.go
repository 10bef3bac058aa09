package cmd

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/jvanvinkenroye/cinemaquery/cineamo"
	"github.com/jvanvinkenroye/cinemaquery/config"
)

var (
	cfgFile string
	cfg     *config.Config
	logger  zerolog.Logger
	client  *cineamo.Client

	// Persistent flags
	baseURL      string
	timeout      time.Duration
	outputFormat string
	verbose      bool
	quiet        bool

	version   = "dev"
	buildTime = "unknown"
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "cinemaquery",
	Short: "Query the public Cineamo cinema API from the command line",
	Long: `cinemaquery is a CLI client for the public Cineamo API. It lists
cinemas, movies and showtimes, paginates through HAL-JSON responses,
renders results as tables or JSON, and offers an interactive
fuzzy-menu browsing mode.`,
	PersistentPreRunE: initializeApp,
	SilenceUsage:      true,
	SilenceErrors:     true,
}

// SetVersion records build metadata injected by the linker.
func SetVersion(v, t string) {
	version = v
	buildTime = t
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, userMessage(err, verbose))
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ~/.config/cinemaquery/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&baseURL, "base-url", "", "API base URL (env CINEMAQUERY_API_BASE_URL)")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 0, "request timeout")
	rootCmd.PersistentFlags().StringVar(&outputFormat, "format", "", "output format (table|json)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "only log errors")
}

// initializeApp loads configuration, sets up logging and creates the API client
func initializeApp(cmd *cobra.Command, args []string) error {
	var err error
	cfg, err = config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger = setupLogger(cfg.Logging)

	// Command-line overrides
	if baseURL != "" {
		cfg.API.BaseURL = baseURL
	}
	if cmd.Flags().Changed("timeout") {
		cfg.API.Timeout = timeout
	}
	if outputFormat == "" {
		outputFormat = cfg.Defaults.Format
	}
	if outputFormat != "table" && outputFormat != "json" {
		return fmt.Errorf("invalid output format: %s (must be 'table' or 'json')", outputFormat)
	}

	client, err = cineamo.NewClient(cfg.API.BaseURL, logger,
		cineamo.WithTimeout(cfg.API.Timeout),
		cineamo.WithUserAgent(cfg.API.UserAgent+"/"+version),
	)
	if err != nil {
		return fmt.Errorf("failed to create API client: %w", err)
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
	if verbose {
		level = zerolog.DebugLevel
	}
	if quiet {
		level = zerolog.ErrorLevel
	}

	zerolog.SetGlobalLevel(level)

	if cfg.Format == "json" {
		return zerolog.New(os.Stderr).With().Timestamp().Logger()
	}

	output := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
		NoColor:    !cfg.Color,
	}

	return zerolog.New(output).With().Timestamp().Logger()
}
