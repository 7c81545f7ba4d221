// Package di provides dependency injection for the quality-audit CLI.
// It creates and wires together the dependencies needed to run the audit.
package di

import (
	"context"
	"io"

	"github.com/fatih/color"
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/suzuki-shunsuke/quality-audit/pkg/controller/audit"
	"github.com/suzuki-shunsuke/quality-audit/pkg/log"
)

// Run configures logging, sets up the controller with the OS filesystem, and runs the audit.
// Colors are disabled if stdout isn't a terminal or NO_COLOR is set.
func Run(ctx context.Context, logE *logrus.Entry, flags *Flags, stdout io.Writer) error {
	if flags.GlobalFlags != nil {
		log.SetLevel(flags.LogLevel, logE)
	}
	ctrl := audit.New(afero.NewOsFs(), buildParam(flags, stdout))
	return ctrl.Run(ctx, logE) //nolint:wrapcheck
}

func buildParam(flags *Flags, stdout io.Writer) *audit.ParamRun {
	return &audit.ParamRun{
		Paths:   flags.Args,
		Stdout:  stdout,
		NoColor: color.NoColor,
	}
}
