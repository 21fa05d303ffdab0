package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/hightemp/countryiso3166/internal/batch"
	"github.com/hightemp/countryiso3166/internal/output"
	"github.com/hightemp/countryiso3166/iso3166"
)

func runLookup(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	catalog, err := openCatalog()
	if err != nil {
		exitWithCode(ExitNoCatalog, fmt.Sprintf("Error loading catalog: %v", err))
		return nil
	}

	processor := batch.NewProcessor(catalog, cfg.Concurrency)

	// Check if we have an identifier argument or should read from stdin
	if len(args) == 1 {
		return lookupSingle(processor, args[0])
	}

	// Check if stdin is a terminal
	stat, _ := os.Stdin.Stat()
	if stat == nil || (stat.Mode()&os.ModeCharDevice) != 0 {
		// stdin is a terminal, show help
		return cmd.Help()
	}

	// Batch mode from stdin
	if cfg.Concurrency > 1 {
		return processor.ProcessInputConcurrent(ctx, os.Stdin, os.Stdout, cfg.JSONOutput)
	}
	return processor.ProcessInput(ctx, os.Stdin, os.Stdout, cfg.JSONOutput)
}

func lookupSingle(processor *batch.Processor, query string) error {
	if query == "" {
		exitWithCode(ExitInvalidInput, "Error: empty identifier")
		return nil
	}

	result := processor.Resolve(query)
	if result.Error != "" {
		exitWithCode(ExitNotFound, output.FormatError(query, batch.ErrNotFound))
		return nil
	}

	return printResult(result)
}

func printResult(result *output.CountryResult) error {
	if cfg.JSONOutput {
		jsonStr, err := result.FormatJSON()
		if err != nil {
			return err
		}
		fmt.Println(jsonStr)
		return nil
	}
	fmt.Println(result.FormatText())
	return nil
}

// countryResults converts countries into output rows.
func countryResults(countries []*iso3166.Country) []*output.CountryResult {
	results := make([]*output.CountryResult, 0, len(countries))
	for _, c := range countries {
		results = append(results, output.FromCountry("", c))
	}
	return results
}
