package cmd

import (
	"github.com/mstoykov/envconfig"
	"github.com/spf13/pflag"
	null "gopkg.in/guregu/null.v3"

	"github.com/gpukit/jitlink/lib"
)

func runtimeOptionFlagSet() *pflag.FlagSet {
	flags := pflag.NewFlagSet("", pflag.ContinueOnError)
	flags.Bool("dump-assembly", false, "echo runtime-compiled assembly to stdout")
	flags.String("backend", "", "native link backend to use")
	return flags
}

// getRuntimeOptions consolidates the environment-derived runtime options with
// any explicitly set CLI flags, the flags winning.
func getRuntimeOptions(flags *pflag.FlagSet) (lib.RuntimeOptions, error) {
	opts := lib.RuntimeOptions{}
	if err := envconfig.Process("jitlink", &opts); err != nil {
		return opts, err
	}

	if flags.Changed("dump-assembly") {
		dump, err := flags.GetBool("dump-assembly")
		if err != nil {
			return opts, err
		}
		opts.DumpAssembly = null.BoolFrom(dump)
	}
	if flags.Changed("backend") {
		backend, err := flags.GetString("backend")
		if err != nil {
			return opts, err
		}
		opts.Backend = null.StringFrom(backend)
	}

	return opts, nil
}
