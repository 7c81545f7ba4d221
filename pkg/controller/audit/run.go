package audit

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
)

// Run checks target files and outputs the report.
// A file which can't be read is reported as a finding, so Run fails only if
// it is cancelled or the report can't be output.
func (c *Controller) Run(ctx context.Context, logE *logrus.Entry) error {
	reports := c.Scan(ctx, logE)
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("check files: %w", err)
	}
	return c.reporter.Report(reports)
}

// Scan checks target files and returns findings of files which have at least one finding.
func (c *Controller) Scan(ctx context.Context, logE *logrus.Entry) ReportSet {
	reports := ReportSet{}
	for _, target := range c.searchTargets(logE) {
		if ctx.Err() != nil {
			return reports
		}
		c.searchFiles(logE.WithField("target", target), target, func(filePath string) {
			logE := logE.WithField("file", filePath)
			logE.Debug("check a file")
			if findings := c.checkFile(logE, filePath); len(findings) > 0 {
				reports[filePath] = findings
			}
		})
	}
	return reports
}
