package cli

import (
	"errors"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

func Execute() int {
	cmd, opts := newRootCmd()
	return execute(cmd, opts)
}

func execute(cmd *cobra.Command, opts *RootOptions) int {
	if err := cmd.Execute(); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return 0
		}
		exitErr := NormalizeError(err)
		_ = writeCLIError(cmd.ErrOrStderr(), exitErr, opts.JSONOutput)
		return exitErr.Code
	}
	return 0
}
