// Package log creates and configures the logger of quality-audit.
package log

import (
	"github.com/sirupsen/logrus"
	"github.com/suzuki-shunsuke/logrus-error/logerr"
)

func New(version string) *logrus.Entry {
	return logrus.WithFields(logrus.Fields{
		"version": version,
		"program": "quality-audit",
	})
}

// SetLevel sets the log level.
// If the level is empty the current level is kept.
// If the level is invalid, an error is logged and the current level is kept.
func SetLevel(level string, logE *logrus.Entry) {
	if level == "" {
		return
	}
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		logerr.WithError(logE, err).WithField("log_level", level).Error("the log level is invalid")
		return
	}
	logE.Logger.SetLevel(lvl)
}
