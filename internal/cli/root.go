package cli

import (
	"github.com/spf13/cobra"

	"github.com/osvaldoandrade/ulid/internal/platform"
	"github.com/osvaldoandrade/ulid/pkg/ulid"
)

// Version is reported by --version. Release builds override it with
// -ldflags "-X github.com/osvaldoandrade/ulid/internal/cli.Version=...".
var Version = "dev"

const longHelp = `Generate a ULID, or check the ULIDs given as arguments.

With no arguments a new ULID is printed. With arguments every value is
parsed; all invalid values are reported together and the exit code is 1.

Exit codes:
  0  success
  1  invalid ULID argument or internal failure
  2  usage error
  3  strict generation exhausted the current millisecond`

type RootOptions struct {
	JSONOutput  bool
	LogLevel    string
	LogFormat   string
	Verbose     bool
	Count       int
	Strict      bool
	ShowSchema  bool
	ShowVersion bool
}

func newRootCmd(genOpts ...ulid.Option) (*cobra.Command, *RootOptions) {
	opts := &RootOptions{
		JSONOutput: platform.EnvBoolDefault("ULID_JSON", false),
		LogLevel:   platform.EnvDefault("ULID_LOG_LEVEL", "info"),
		LogFormat:  platform.EnvDefault("ULID_LOG_FORMAT", "text"),
		Count:      1,
	}
	cmd := &cobra.Command{
		Use:           "ulid [flags] [ULID...]",
		Short:         "Generate and validate ULIDs",
		Long:          longHelp,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if _, err := platform.ConfigureLogger(opts.LogLevel, opts.LogFormat, cmd.ErrOrStderr()); err != nil {
				return usageError(err)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRoot(cmd, opts, args, genOpts)
		},
	}
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return usageError(err)
	})

	flags := cmd.Flags()
	flags.BoolVar(&opts.JSONOutput, "json", opts.JSONOutput, "Emit JSON output")
	flags.StringVar(&opts.LogLevel, "log-level", opts.LogLevel, "Log level (debug, info, warn, error)")
	flags.StringVar(&opts.LogFormat, "log-format", opts.LogFormat, "Log format (text, json)")
	flags.BoolVarP(&opts.Verbose, "verbose", "v", false, "Print the timestamp of each ULID")
	flags.IntVarP(&opts.Count, "count", "n", opts.Count, "Number of ULIDs to generate (at most 1048576)")
	flags.BoolVar(&opts.Strict, "strict", false, "Fail instead of wrapping when a millisecond is exhausted")
	flags.BoolVar(&opts.ShowSchema, "schema", false, "Print the JSON schema of a ULID string and exit")
	flags.BoolVarP(&opts.ShowVersion, "version", "V", false, "Print version info and exit")

	return cmd, opts
}
