package cli

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/hightemp/countryiso3166/iso3166"
)

var validateCmd = &cobra.Command{
	Use:   "validate [file]",
	Short: "Check a catalog file for incomplete entries and duplicate identifiers",
	Long: `Validates a catalog data source: every entry must be complete, codes
must be well formed, and no name, alternate name, alpha-2, alpha-3 or
numeric code may be declared twice.

Without an argument the embedded catalog (or --data) is checked.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runValidate,
}

func runValidate(cmd *cobra.Command, args []string) error {
	path := cfg.DataFile
	if len(args) == 1 {
		path = args[0]
	}

	violations, err := validateSource(path)
	if err != nil {
		exitWithCode(ExitNoCatalog, fmt.Sprintf("Error: %v", err))
		return nil
	}

	source := path
	if source == "" {
		source = "embedded catalog"
	}
	logger.Debug("validated catalog", "source", source, "violations", len(violations))

	w := cmd.OutOrStdout()
	if cfg.JSONOutput {
		if violations == nil {
			violations = []iso3166.Violation{}
		}
		data, err := json.MarshalIndent(violations, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(w, string(data))
	} else {
		for _, v := range violations {
			fmt.Fprintln(w, v.Error())
		}
	}

	if len(violations) > 0 {
		exitWithCode(ExitFailure, fmt.Sprintf("%s: %d violation(s)", source, len(violations)))
		return nil
	}
	if !cfg.JSONOutput {
		fmt.Fprintf(w, "%s: ok\n", source)
	}
	return nil
}

func validateSource(path string) ([]iso3166.Violation, error) {
	var r io.Reader
	format := iso3166.FormatXML

	if path == "" {
		r = bytes.NewReader(iso3166.DefaultData())
	} else {
		var err error
		format, err = iso3166.FormatFromPath(path)
		if err != nil {
			return nil, err
		}
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("open catalog: %w", err)
		}
		defer f.Close()
		r = f
	}

	return iso3166.Validate(r, format)
}
