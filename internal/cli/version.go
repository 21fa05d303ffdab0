package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/hightemp/countryiso3166/internal/buildinfo"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Args:  cobra.ArbitraryArgs,
	// Never fails: configuration is not loaded for this command.
	PersistentPreRun: func(cmd *cobra.Command, args []string) {},
	Run: func(cmd *cobra.Command, args []string) {
		printVersion(cmd.OutOrStdout(), cmd.ErrOrStderr())
	},
}

// printVersion writes the banner. Errors are reported on errw only.
func printVersion(w, errw io.Writer) {
	meta, err := buildinfo.Load()
	if err != nil {
		fmt.Fprintf(errw, "Error: %v\n", err)
		meta = &buildinfo.Metadata{Version: "unknown", Date: "unknown"}
	}
	meta.Override(Version, Commit, BuildTime)

	fmt.Fprintln(w, meta.Banner())
	fmt.Fprintln(w, meta.LicenseLine())
	if meta.Commit != "" {
		fmt.Fprintf(w, "Commit: %s\n", meta.Commit)
	}
}
