// Package audit implements the quality audit of front-end source files.
// It discovers target files from positional arguments or the default source
// roots, applies line-level style checks (4px spacing grid, symmetric padding
// utilities and a narrow await-in-loop performance check) to each file, and
// renders a plain-text report grouped by file.
package audit

import (
	"io"

	"github.com/spf13/afero"
)

type Controller struct {
	fs       afero.Fs
	param    *ParamRun
	reporter *Reporter
}

type ParamRun struct {
	Paths   []string
	Stdout  io.Writer
	NoColor bool
}

func New(fs afero.Fs, param *ParamRun) *Controller {
	return &Controller{
		fs:       fs,
		param:    param,
		reporter: NewReporter(param.Stdout, param.NoColor),
	}
}
