package ulidtool

import "github.com/osvaldoandrade/ulid/internal/cli"

// Execute runs the ulid command line tool and returns its exit code.
func Execute() int {
	return cli.Execute()
}
