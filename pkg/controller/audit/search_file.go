package audit

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/suzuki-shunsuke/logrus-error/logerr"
)

const (
	targetFilePattern      = "*.{tsx,ts,css}"
	declarationFilePattern = "*.d.ts"
)

func defaultRoots() []string {
	return []string{"src", "app", "components"}
}

func isExcludedDir(name string) bool {
	return name == "node_modules" || name == ".next"
}

// searchTargets returns paths passed via positional arguments.
// If no path is passed, it returns default source roots which exist, or the current directory.
func (c *Controller) searchTargets(logE *logrus.Entry) []string {
	if len(c.param.Paths) != 0 {
		return c.param.Paths
	}
	targets := []string{}
	for _, root := range defaultRoots() {
		f, err := afero.Exists(c.fs, root)
		if err != nil {
			logerr.WithError(logE, err).WithField("path", root).Debug("check if a directory exists")
			continue
		}
		if f {
			targets = append(targets, root)
		}
	}
	if len(targets) == 0 {
		return []string{"."}
	}
	return targets
}

// searchFiles calls handle for each file to be checked in a target.
// A regular file is checked regardless of its extension.
func (c *Controller) searchFiles(logE *logrus.Entry, target string, handle func(filePath string)) {
	info, err := c.fs.Stat(target)
	if err == nil && info.Mode().IsRegular() {
		handle(target)
		return
	}
	c.walk(logE, target, handle)
}

// walk traverses dir recursively.
// Excluded directories are removed from the children before descending into them.
// Symbolic links to directories aren't followed.
func (c *Controller) walk(logE *logrus.Entry, dir string, handle func(filePath string)) {
	entries, err := afero.ReadDir(c.fs, dir)
	if err != nil {
		logerr.WithError(logE, err).WithField("path", dir).Debug("read a directory")
		return
	}
	dirs := make([]string, 0, len(entries))
	for _, entry := range entries {
		name := entry.Name()
		if c.isDir(dir, entry) {
			if isExcludedDir(name) {
				logE.WithField("path", joinPath(dir, name)).Debug("ignore a directory")
				continue
			}
			if entry.IsDir() {
				dirs = append(dirs, name)
			}
			continue
		}
		if isTargetFile(name) {
			handle(joinPath(dir, name))
		}
	}
	for _, name := range dirs {
		c.walk(logE, joinPath(dir, name), handle)
	}
}

func (c *Controller) isDir(dir string, entry os.FileInfo) bool {
	if entry.IsDir() {
		return true
	}
	if entry.Mode()&os.ModeSymlink == 0 {
		return false
	}
	info, err := c.fs.Stat(joinPath(dir, entry.Name()))
	if err != nil {
		return false
	}
	return info.IsDir()
}

func isTargetFile(name string) bool {
	if ok, _ := doublestar.Match(declarationFilePattern, name); ok {
		return false
	}
	ok, _ := doublestar.Match(targetFilePattern, name)
	return ok
}

// joinPath joins a directory and a name without cleaning the directory,
// so paths under "." keep the "./" prefix.
func joinPath(dir, name string) string {
	if strings.HasSuffix(dir, string(filepath.Separator)) || strings.HasSuffix(dir, "/") {
		return dir + name
	}
	return dir + string(filepath.Separator) + name
}
