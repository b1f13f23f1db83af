package cmd

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/gpukit/jitlink/lib"
)

func getInspectCmd(logger *logrus.Logger) *cobra.Command {
	// inspectCmd represents the inspect command
	inspectCmd := &cobra.Command{
		Use:   "inspect",
		Short: "Classify device-code artifacts",
		Long:  "Report the artifact kind each input file would be linked as.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fs := afero.NewOsFs()
			for _, arg := range args {
				kind := lib.KindForPath(arg)
				if exists, _ := afero.Exists(fs, arg); !exists {
					logger.WithField("path", arg).Warn("File does not exist")
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", arg, kind)
			}
			return nil
		},
	}
	return inspectCmd
}
