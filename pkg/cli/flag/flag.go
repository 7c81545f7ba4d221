package flag

import "github.com/urfave/cli/v3"

type GlobalFlags struct {
	LogLevel string
}

func (gf *GlobalFlags) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "log-level",
			Usage:       "log level (trace, debug, info, warn, error)",
			Destination: &gf.LogLevel,
		},
	}
}
