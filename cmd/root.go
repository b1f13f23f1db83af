package cmd

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/gpukit/jitlink/errext"
	"github.com/gpukit/jitlink/lib/consts"
)

// This is to keep all fields needed for the main/root jitlink command
type rootCommand struct {
	logger  *logrus.Logger
	cmd     *cobra.Command
	verbose bool
	logFmt  string
}

func newRootCommand(logger *logrus.Logger) *rootCommand {
	c := &rootCommand{logger: logger}
	// the base command when called without any subcommands.
	c.cmd = &cobra.Command{
		Use:               "jitlink",
		Short:             "a device-code linker for GPU JIT programs",
		Long:              "jitlink collects compiled device-code artifacts and links them\ninto a single loadable binary for a target GPU architecture.",
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: c.persistentPreRunE,
	}
	c.cmd.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "enable verbose logging")
	c.cmd.PersistentFlags().StringVar(&c.logFmt, "log-format", "", "log output format ('text' or 'json')")
	return c
}

func (c *rootCommand) persistentPreRunE(cmd *cobra.Command, args []string) error {
	if c.verbose {
		c.logger.SetLevel(logrus.DebugLevel)
	}
	switch c.logFmt {
	case "json":
		c.logger.SetFormatter(&logrus.JSONFormatter{})
	case "text", "":
		c.logger.SetFormatter(&logrus.TextFormatter{})
	default:
		return fmt.Errorf("unknown log format '%s'", c.logFmt)
	}
	c.logger.Debugf("jitlink version: v%s", consts.FullVersion())
	return nil
}

// Execute adds all child commands to the root command sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	logger := &logrus.Logger{
		Out:       os.Stderr,
		Formatter: new(logrus.TextFormatter),
		Hooks:     make(logrus.LevelHooks),
		Level:     logrus.InfoLevel,
	}

	c := newRootCommand(logger)
	c.cmd.AddCommand(
		getLinkCmd(logger),
		getInspectCmd(logger),
		getVersionCmd(),
	)

	if err := c.cmd.Execute(); err != nil {
		msg, fields := errext.Format(err)
		logger.WithFields(logrus.Fields(fields)).Error(msg)
		os.Exit(1)
	}
}
