package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gpukit/jitlink/ext"
	"github.com/gpukit/jitlink/lib/consts"
)

func versionString() string {
	v := consts.FullVersion()

	if backends := ext.Backends(); len(backends) > 0 {
		v += fmt.Sprintf("\nBackends:\n  %s\n", strings.Join(backends, "\n  "))
	}
	return v
}

func getVersionCmd() *cobra.Command {
	// versionCmd represents the version command.
	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Show application version",
		Long:  "Show the application version and exit.",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "jitlink v%s\n", versionString())
		},
	}
	return versionCmd
}
