package main

import (
	"os"

	"github.com/osvaldoandrade/ulid/pkg/ulidtool"
)

func main() {
	os.Exit(ulidtool.Execute())
}
