// Package cli implements the command-line interface.
package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/hightemp/countryiso3166/internal/config"
	"github.com/hightemp/countryiso3166/iso3166"
)

var (
	// Version information (set at build time)
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

// Global flags
var (
	cfgFile string
	cfg     *config.Config
	logger  *slog.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "iso3166 [identifier]",
	Short: "ISO 3166-1 country lookup by name, alpha-2, alpha-3 or numeric code",
	Long: `iso3166 looks up ISO 3166-1 countries by canonical name, alternate
name, two-letter code, three-letter code or three-digit numeric code.

For a single lookup:
  iso3166 FR
  iso3166 "United States"
  iso3166 004

For batch processing (read from stdin):
  cat codes.txt | iso3166`,
	Args:              cobra.MaximumNArgs(1),
	PersistentPreRunE: loadConfig,
	RunE:              runLookup,
	SilenceUsage:      true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file (default: ~/.config/iso3166/config.yaml)")
	rootCmd.PersistentFlags().String("data", "", "catalog file to use instead of the embedded data (.xml, .json, .yaml)")
	rootCmd.PersistentFlags().Bool("json", false, "output in JSON format")
	rootCmd.PersistentFlags().String("log-level", config.DefaultLogLevel, "log level: debug, info, warn, error")

	// Lookup-specific flags
	rootCmd.Flags().Int("concurrency", config.DefaultConcurrency, "parallel lookups for batch input")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(versionCmd)
}

func loadConfig(cmd *cobra.Command, args []string) error {
	var err error
	cfg, err = config.Load(cfgFile, cmd.Flags())
	if err != nil {
		return err
	}

	level, err := cfg.SlogLevel()
	if err != nil {
		return err
	}
	logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	return nil
}

// openCatalog returns the embedded catalog, or the one named by --data.
func openCatalog() (*iso3166.Catalog, error) {
	if cfg == nil || cfg.DataFile == "" {
		return iso3166.Default()
	}
	logger.Debug("loading catalog", "path", cfg.DataFile)
	return iso3166.LoadFile(cfg.DataFile, iso3166.WithLogger(logger))
}

// ExitCode constants
const (
	ExitSuccess      = 0
	ExitFailure      = 1
	ExitInvalidInput = 2
	ExitNoCatalog    = 3
	ExitNotFound     = 4
)

func exitWithCode(code int, msg string) {
	fmt.Fprintln(os.Stderr, msg)
	os.Exit(code)
}
