package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"wxcli/internal/cli"
	"wxcli/internal/config"
	"wxcli/internal/env"
	"wxcli/internal/weather"
	"wxcli/pkg/logger"
)

var (
	// Version is injected at build time
	Version = "dev"
)

func main() {
	configPath := flag.String("config", "", "Path to configuration file (optional - will search in configs/ and root directory)")
	flag.Parse()

	// Load .env before reading any environment variables
	env.Load()

	cfg, err := config.LoadWithFallback(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		os.Exit(1)
	}

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid configuration: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(logger.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating logger: %v\n", err)
		os.Exit(1)
	}

	log.Debug("Starting weather lookup",
		logger.String("version", Version),
		logger.String("config_path", *configPath))

	// Interrupt cancels the in-flight request
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, log, flag.Args(), os.Stdin, os.Stdout); err != nil {
		log.Sync()
		fmt.Fprintln(os.Stderr, userMessage(err))
		os.Exit(1)
	}
	log.Sync()
}

// run performs one lookup: resolve input and credential, fetch, print.
func run(ctx context.Context, cfg *config.Config, log *logger.Logger, args []string, stdin io.Reader, stdout io.Writer) error {
	city, err := cli.ResolveCity(args, stdin, stdout)
	if err != nil {
		return err
	}

	// The credential check must happen before any network call
	apiKey, err := config.ResolveAPIKey()
	if err != nil {
		return err
	}

	log.Info("Fetching weather data", logger.String("city", city))

	client := weather.NewClient(cfg.Provider, apiKey, log)
	resp, err := client.FetchCurrent(ctx, city)
	if err != nil {
		return err
	}

	report, err := weather.BuildReport(resp)
	if err != nil {
		return err
	}

	report.Render(stdout)
	return nil
}

// userMessage maps an error to the single line printed for it.
func userMessage(err error) string {
	var (
		netErr        *weather.NetworkError
		credErr       *weather.InvalidCredentialError
		notFoundErr   *weather.CityNotFoundError
		incompleteErr *weather.IncompleteDataError
		providerErr   *weather.ProviderError
	)

	switch {
	case errors.Is(err, weather.ErrMissingInput):
		return "Error: City name cannot be empty."
	case errors.Is(err, weather.ErrMissingCredential):
		return fmt.Sprintf("Error: %s not found in environment variables. Set it or add it to a .env file.", config.EnvAPIKey)
	case errors.As(err, &netErr):
		if netErr.Timeout {
			return "Error: Request timed out. Please check your internet connection."
		}
		return "Error: Could not connect to the weather service."
	case errors.As(err, &credErr):
		return "Error: Invalid API key. Please check your credentials."
	case errors.As(err, &notFoundErr):
		return fmt.Sprintf("Error: City '%s' not found. Please check the spelling.", notFoundErr.City)
	case errors.As(err, &incompleteErr):
		return fmt.Sprintf("Error: The weather service returned incomplete data (%v).", incompleteErr)
	case errors.As(err, &providerErr):
		return fmt.Sprintf("Error: The weather service returned HTTP %d.", providerErr.StatusCode)
	default:
		return fmt.Sprintf("Error: %v", err)
	}
}
