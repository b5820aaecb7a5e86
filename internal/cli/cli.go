// Package cli implements the airly command line interface.
package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	airly "github.com/bartOssh/airly-go"
	"github.com/bartOssh/airly-go/resilience"
	"github.com/bartOssh/airly-go/telemetry"
)

const (
	defaultVerbosity = "warn"
	defaultRetries   = 3

	envAPIKey  = "AIRLY_API_KEY"
	envBaseURL = "AIRLY_BASE_URL"
)

// shutdownTimeout bounds how long a command waits for telemetry to flush.
const shutdownTimeout = 5 * time.Second

var (
	apiKey       string
	baseURL      string
	verbosity    string
	retries      int
	otelEndpoint string
)

// Run executes the root command against os.Args.
func Run(out, stderr io.Writer) error {
	c := RootCommand(out, stderr)
	return c.Execute()
}

// RootCommand builds the airly command tree. Output meant for consumption
// goes to out, logs go to stderr.
func RootCommand(out, stderr io.Writer) *cobra.Command {
	opts := &options{out: out, stderr: stderr}

	cmd := &cobra.Command{
		Use:           "airly",
		Short:         "Query the Airly air quality API",
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	cmd.SetOut(out)
	cmd.SetErr(stderr)

	cmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		// A .env file is optional, absence is not an error.
		_ = godotenv.Load()

		if apiKey == "" {
			apiKey = os.Getenv(envAPIKey)
		}
		if baseURL == "" {
			baseURL = os.Getenv(envBaseURL)
		}

		logger, err := newLogger(stderr, verbosity)
		if err != nil {
			return err
		}
		opts.logger = logger

		if otelEndpoint != "" {
			provider, err := telemetry.Init(cmd.Context(), telemetry.Config{
				ServiceName:    "airly",
				ServiceVersion: Version,
				Environment:    "cli",
				OTLPEndpoint:   otelEndpoint,
				Enabled:        true,
			})
			if err != nil {
				return fmt.Errorf("initializing telemetry: %w", err)
			}
			opts.telemetry = provider
		}

		return nil
	}

	cmd.PersistentPostRunE = func(cmd *cobra.Command, args []string) error {
		if opts.telemetry == nil {
			return nil
		}
		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return opts.telemetry.Shutdown(ctx)
	}

	cmd.AddCommand(newCmdInstallation(opts))
	cmd.AddCommand(newCmdNearest(opts))
	cmd.AddCommand(newCmdIndexes(opts))
	cmd.AddCommand(newCmdMeasurementTypes(opts))
	cmd.AddCommand(newCmdMeasurements(opts))
	cmd.AddCommand(newCmdVersion(out))

	cmd.PersistentFlags().StringVarP(&apiKey, "api-key", "k", "", "Airly API key (defaults to $AIRLY_API_KEY)")
	cmd.PersistentFlags().StringVar(&baseURL, "base-url", "", "API base URL (defaults to the public endpoint)")
	cmd.PersistentFlags().StringVarP(&verbosity, "verbosity", "v", defaultVerbosity, "Log level (trace, debug, info, warn, error)")
	cmd.PersistentFlags().IntVar(&retries, "retries", defaultRetries, "Retry budget for failed requests, 0 disables retrying")
	cmd.PersistentFlags().StringVar(&otelEndpoint, "otel-endpoint", "", "OTLP gRPC endpoint for traces and metrics")

	return cmd
}

// options carries the state shared between the root command and its
// subcommands.
type options struct {
	out       io.Writer
	stderr    io.Writer
	logger    zerolog.Logger
	telemetry *telemetry.Provider
}

// newClient assembles the API client from the persistent flags. Retries and
// telemetry wrap the transport only when asked for, so the default path is a
// plain http.DefaultClient.
func (o *options) newClient() (*airly.Client, error) {
	var doer airly.HTTPDoer = http.DefaultClient

	if retries > 0 {
		cfg := resilience.DefaultClientConfig("airly-api")
		cfg.MaxRetries = uint64(retries)
		cfg.Logger = o.logger
		doer = resilience.NewClient(cfg)
	}

	if otelEndpoint != "" {
		transport, err := telemetry.NewTransport(telemetry.TransportConfig{Base: doer})
		if err != nil {
			return nil, fmt.Errorf("instrumenting transport: %w", err)
		}
		doer = transport
	}

	return airly.NewClient(airly.ClientConfig{
		APIKey:     apiKey,
		BaseURL:    baseURL,
		HTTPClient: doer,
		Logger:     o.logger,
	})
}

// printJSON renders v as indented JSON on the command output.
func (o *options) printJSON(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(o.out, string(data))
	return err
}

func newLogger(stderr io.Writer, level string) (zerolog.Logger, error) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return zerolog.Nop(), fmt.Errorf("parsing log level %q: %w", level, err)
	}
	logger := zerolog.New(stderr).
		Level(lvl).
		With().
		Timestamp().
		Str("service", "airly").
		Logger()
	return logger, nil
}
