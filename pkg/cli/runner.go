// Package cli defines the command line interface of quality-audit.
package cli

import (
	"context"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/suzuki-shunsuke/go-stdutil"
	"github.com/suzuki-shunsuke/quality-audit/pkg/cli/flag"
	"github.com/suzuki-shunsuke/quality-audit/pkg/di"
	"github.com/suzuki-shunsuke/urfave-cli-v3-util/urfave"
	"github.com/urfave/cli/v3"
)

const description = `Check front-end source files (*.tsx, *.ts, *.css) against the design and performance guidelines.

If no argument is passed, quality-audit checks src, app, and components in the current directory.
If none of them exist, it checks the current directory.

$ quality-audit

You can also pass file and directory paths as arguments.
Files passed as arguments are checked regardless of their extensions.

e.g.

$ quality-audit src/components/button.tsx styles

node_modules and .next directories are never checked.
An argument naming an existing file or directory is always checked,
even if it has the same name as a subcommand such as help or version.
`

type Runner struct {
	Stdout  io.Writer
	LDFlags *stdutil.LDFlags
	LogE    *logrus.Entry
}

// Run runs the quality-audit command with os.Stdout.
func Run(ctx context.Context, logE *logrus.Entry, ldFlags *stdutil.LDFlags, args ...string) error {
	r := &Runner{
		Stdout:  os.Stdout,
		LDFlags: ldFlags,
		LogE:    logE,
	}
	return r.Run(ctx, args...)
}

func (r *Runner) Run(ctx context.Context, args ...string) error {
	gFlags := &flag.GlobalFlags{}
	cmd := urfave.Command(r.LDFlags, &cli.Command{
		Name:               "quality-audit",
		Usage:              "Audit front-end source files for design and performance guideline violations",
		ArgsUsage:          "[<file or directory> ...]",
		Description:        description,
		Flags:              gFlags.Flags(),
		Writer:             r.Stdout,
		HideHelpCommand:    true,
		SuggestCommandFunc: preferPath,
		Action: func(ctx context.Context, c *cli.Command) error {
			return di.Run(ctx, r.LogE, &di.Flags{ //nolint:wrapcheck
				GlobalFlags: gFlags,
				Args:        c.Args().Slice(),
			}, r.Stdout)
		},
	})
	return cmd.Run(ctx, args) //nolint:wrapcheck
}

// preferPath keeps a positional argument from being dispatched to a subcommand
// when a file or directory with that name exists.
func preferPath(_ []*cli.Command, name string) string {
	if _, err := os.Lstat(name); err == nil {
		return ""
	}
	return name
}
