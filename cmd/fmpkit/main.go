// Command fmpkit fetches Financial Modeling Prep data from the command line.
//
// Main CLI entrypoint using cobra command framework.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/seenimoa/fmpkit/internal/config"
	"github.com/seenimoa/fmpkit/pkg/fmp"
	"github.com/seenimoa/fmpkit/pkg/utils"
)

// Build-time variables (set via -ldflags).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

// Global config and logger, set by the root command before any subcommand runs.
var (
	cfg    *config.Config
	logger = zerolog.Nop()
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "fmpkit",
	Short: "fmpkit — Financial Modeling Prep data as clean tables",
	Long: `fmpkit fetches Financial Modeling Prep endpoints and normalizes the
responses into tables: snake_case columns, a sensible index, optional
transposition, unit rescaling and csv/xlsx/html export.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		configFile, _ := cmd.Flags().GetString("config")
		if configFile != "" {
			cfg, err = config.LoadFromFile(configFile)
		} else {
			cfg, err = config.Load()
		}
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		if lvl, _ := cmd.Flags().GetString("log-level"); lvl != "" {
			cfg.Logging.Level = lvl
		}
		logger, err = newLogger(cfg.Logging, os.Stderr)
		return err
	},
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "config file path (default: ./config/config.yaml)")
	rootCmd.PersistentFlags().String("log-level", "", "log level override (debug, info, warn, error)")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(getCmd)
	rootCmd.AddCommand(endpointsCmd)
	rootCmd.AddCommand(statusCmd)
}

// newLogger builds the root logger from the logging section.
func newLogger(lc config.LoggingConfig, w io.Writer) (zerolog.Logger, error) {
	level, err := zerolog.ParseLevel(strings.ToLower(lc.Level))
	if err != nil {
		return zerolog.Nop(), fmt.Errorf("logging.level: %w", err)
	}
	if lc.Format != "json" {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen}
	}
	return zerolog.New(w).Level(level).With().Timestamp().Logger(), nil
}

// newClient creates an API client from the loaded configuration.
func newClient() (*fmp.Client, error) {
	if cfg.API.Key == "" {
		return nil, fmt.Errorf("%w: set FMP_API_KEY, FMPKIT_API_KEY or api.key", fmp.ErrMissingAPIKey)
	}
	return fmp.NewFromConfig(cfg.ClientConfig(), fmp.WithLogger(logger))
}

// commandContext returns the command context carrying the root logger.
func commandContext(cmd *cobra.Command) context.Context {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	return logger.WithContext(ctx)
}

// --- Version Command ---

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "fmpkit %s\n", version)
		fmt.Fprintf(out, "  commit:  %s\n", commit)
		fmt.Fprintf(out, "  built:   %s\n", date)
	},
}

// --- Endpoints Command ---

var endpointsCmd = &cobra.Command{
	Use:   "endpoints",
	Short: "List the endpoint catalog",
	RunE: func(cmd *cobra.Command, args []string) error {
		family, _ := cmd.Flags().GetString("family")
		reg := fmp.DefaultRegistry()

		eps := reg.List()
		if family != "" {
			eps = reg.Family(family)
			if len(eps) == 0 {
				return fmt.Errorf("unknown family %q (known: %s)", family, strings.Join(reg.Families(), ", "))
			}
		}

		tw := table.NewWriter()
		tw.SetOutputMirror(cmd.OutOrStdout())
		tw.SetStyle(table.StyleLight)
		tw.Style().Format.Header = text.FormatDefault
		tw.AppendHeader(table.Row{"name", "family", "version", "path", "shape", "params", "description"})
		for _, ep := range eps {
			tw.AppendRow(table.Row{
				ep.Name, ep.Family, ep.Version, ep.Path, ep.Shape.String(),
				strings.Join(ep.Params(), ","), ep.Description,
			})
		}
		tw.Render()
		return nil
	},
}

func init() {
	endpointsCmd.Flags().String("family", "", "only list endpoints of this family")
}

// --- Status Command ---

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show configuration and API key status",
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		now := utils.NowNewYork()

		fmt.Fprintln(out, "═══════════════════════════════════════")
		fmt.Fprintln(out, "  fmpkit — Status")
		fmt.Fprintln(out, "═══════════════════════════════════════")
		fmt.Fprintf(out, "  Version:       %s (%s)\n", version, commit)
		fmt.Fprintf(out, "  NYSE:          %s\n", utils.MarketStatus(now))
		fmt.Fprintf(out, "  Time (ET):     %s\n", now.Format("2006-01-02 15:04:05 MST"))
		fmt.Fprintln(out)

		fmt.Fprintln(out, "  Configuration:")
		fmt.Fprintf(out, "    Base URL v3:   %s\n", cfg.API.BaseURLV3)
		fmt.Fprintf(out, "    Base URL v4:   %s\n", cfg.API.BaseURLV4)
		fmt.Fprintf(out, "    Rate limit:    %g req/s\n", cfg.API.RateLimit)
		fmt.Fprintf(out, "    Output:        %s (%s)\n", cfg.Output.Path, cfg.Output.Datatype)
		fmt.Fprintln(out)

		fmt.Fprintln(out, "  API Keys:")
		for _, k := range config.CheckAPIKeys(cfg) {
			status := "❌ not set"
			if k.IsSet {
				status = fmt.Sprintf("✅ set (%s: %s)", k.Source, k.Masked)
			}
			fmt.Fprintf(out, "    %-25s %s\n", k.Name+":", status)
		}

		if ping, _ := cmd.Flags().GetBool("ping"); ping {
			result := "✅ reachable"
			client, err := newClient()
			if err == nil {
				err = client.Ping(commandContext(cmd))
			}
			if err != nil {
				result = "❌ " + err.Error()
			}
			fmt.Fprintf(out, "    %-25s %s\n", "Ping:", result)
		}

		fmt.Fprintln(out, "═══════════════════════════════════════")
		return nil
	},
}

func init() {
	statusCmd.Flags().Bool("ping", false, "request a quote to verify the API key")
}
