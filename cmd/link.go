package cmd

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	null "gopkg.in/guregu/null.v3"

	"github.com/gpukit/jitlink/ext"
	"github.com/gpukit/jitlink/lib"
	"github.com/gpukit/jitlink/linker"
	"github.com/gpukit/jitlink/nvlink"
)

//nolint:gochecknoglobals
var linkOut = "a.cubin"

func getLinkCmd(logger *logrus.Logger) *cobra.Command {
	var (
		archStr      string
		maxRegisters int64
		lineInfo     bool
		lto          bool
		extraFlags   []string
	)

	linkCmd := &cobra.Command{
		Use:   "link",
		Short: "Link device-code artifacts into one binary",
		Long: `Link compiled device-code artifacts into a single loadable binary.

Each input file is classified by extension (.ptx, .cubin, .fatbin, .a, .o,
.ltoir) and fed to the native linker for the given target architecture.`,
		Example: `
  # Link intermediate assembly and an object file for an sm_75 device.
  jitlink link --arch 7.5 -o kernels.cubin module.ptx helpers.o`[1:],
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ro, err := getRuntimeOptions(cmd.Flags())
			if err != nil {
				return err
			}
			open, err := lookupBackend(ro.Backend.String)
			if err != nil {
				return err
			}

			cc, err := lib.ParseTargetArch(archStr)
			if err != nil {
				return err
			}
			opts := lib.SessionOptions{
				CC:         cc,
				LineInfo:   null.BoolFrom(lineInfo),
				LTO:        null.BoolFrom(lto),
				ExtraFlags: extraFlags,
			}
			if cmd.Flags().Changed("max-registers") {
				opts.MaxRegisters = null.IntFrom(maxRegisters)
			}

			fs := afero.NewOsFs()
			session, err := linker.New(linker.Params{
				Options:      opts,
				Open:         open,
				FS:           fs,
				Logger:       logger,
				DumpAssembly: ro.DumpAssembly.Bool,
			})
			if err != nil {
				return err
			}

			for _, arg := range args {
				kind := lib.KindForPath(arg)
				if kind == lib.ObjectKindUnknown {
					return fmt.Errorf("cannot classify %s by its extension", arg)
				}
				if err := session.AddFile(arg, kind); err != nil {
					return err
				}
			}

			bin, err := session.Complete()
			if err != nil {
				return err
			}
			if err := afero.WriteFile(fs, linkOut, bin, 0o644); err != nil {
				return err
			}
			logger.WithFields(logrus.Fields{"output": linkOut, "size": len(bin)}).
				Info("Linked binary written")
			return nil
		},
	}

	linkCmd.Flags().SortFlags = false
	linkCmd.Flags().AddFlagSet(linkCmdFlagSet(&archStr, &maxRegisters, &lineInfo, &lto, &extraFlags))
	return linkCmd
}

func linkCmdFlagSet(
	archStr *string, maxRegisters *int64, lineInfo, lto *bool, extraFlags *[]string,
) *pflag.FlagSet {
	flags := pflag.NewFlagSet("", pflag.ContinueOnError)
	flags.SortFlags = false
	flags.StringVarP(archStr, "arch", "a", "", "target compute capability, e.g. 7.5 (required)")
	flags.Int64Var(maxRegisters, "max-registers", 0, "per-thread register count cap")
	flags.BoolVar(lineInfo, "lineinfo", false, "generate line info in the linked binary")
	flags.BoolVar(lto, "lto", false, "enable link-time optimization")
	flags.StringArrayVar(extraFlags, "flag", nil, "extra flag passed to the native linker verbatim")
	flags.StringVarP(&linkOut, "output", "o", linkOut, "output file for the linked binary")
	flags.AddFlagSet(runtimeOptionFlagSet())
	return flags
}

func lookupBackend(name string) (nvlink.OpenFunc, error) {
	if name == "" {
		name = ext.DefaultBackendName
	}
	open, ok := ext.FindBackend(name)
	if !ok {
		available := strings.Join(ext.Backends(), ", ")
		if available == "" {
			available = "none"
		}
		return nil, fmt.Errorf("no native link backend named '%s' (available: %s)", name, available)
	}
	return open, nil
}
