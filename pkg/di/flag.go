package di

import (
	"github.com/suzuki-shunsuke/yala/pkg/cli/flag"
)

// Flags holds the command line flags of `yala run` and `yala dump-config`.
type Flags struct {
	*flag.GlobalFlags

	Linters []string
	Jobs    int
	Timeout string
	Format  string
	Color   string
	Args    []string
}

const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)
