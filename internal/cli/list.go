package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hightemp/countryiso3166/internal/output"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all countries in catalog order",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func runList(cmd *cobra.Command, args []string) error {
	catalog, err := openCatalog()
	if err != nil {
		exitWithCode(ExitNoCatalog, fmt.Sprintf("Error loading catalog: %v", err))
		return nil
	}

	batch := &output.BatchResult{Results: countryResults(catalog.Countries())}
	if cfg.JSONOutput {
		jsonStr, err := batch.FormatJSON()
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), jsonStr)
		return nil
	}
	fmt.Fprintln(cmd.OutOrStdout(), batch.FormatText())
	return nil
}
