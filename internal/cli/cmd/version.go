package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/tilepane/internal/domain/build"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		w := cmd.OutOrStdout()
		fmt.Fprintf(w, "tilepane %s\n", valueOr(buildInfo.Version, "dev"))
		fmt.Fprintf(w, "  commit:  %s\n", valueOr(buildInfo.Commit, "unknown"))
		fmt.Fprintf(w, "  built:   %s\n", valueOr(buildInfo.BuildDate, "unknown"))
		fmt.Fprintf(w, "  go:      %s\n", valueOr(buildInfo.GoVersion, "unknown"))
		fmt.Fprintf(w, "  source:  %s\n", build.RepoURL())
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

func valueOr(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}
