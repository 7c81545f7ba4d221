package di

import (
	"github.com/suzuki-shunsuke/quality-audit/pkg/cli/flag"
)

// Flags holds command-line flags and positional arguments.
type Flags struct {
	*flag.GlobalFlags

	Args []string
}
