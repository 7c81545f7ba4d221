package audit

import (
	"bufio"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/suzuki-shunsuke/logrus-error/logerr"
)

var errInvalidUTF8 = errors.New("the file isn't valid UTF-8 text")

// checkFile returns the findings of a file.
// If the file can't be read, a single unnumbered finding describing the error is returned.
func (c *Controller) checkFile(logE *logrus.Entry, filePath string) []Finding {
	lines, err := c.readLines(filePath)
	if err != nil {
		logerr.WithError(logE, err).Debug("read a file")
		return []Finding{
			{
				Message: "Could not read file: " + err.Error(),
			},
		}
	}
	var findings []Finding
	for i, line := range lines {
		findings = append(findings, checkLine(logE, i+1, line)...)
	}
	return findings
}

func (c *Controller) readLines(filePath string) ([]string, error) {
	b, err := afero.ReadFile(c.fs, filePath)
	if err != nil {
		// the error already has the operation and the path
		return nil, err //nolint:wrapcheck
	}
	if !utf8.Valid(b) {
		return nil, errInvalidUTF8
	}
	return splitLines(string(b))
}

// splitLines splits text into lines.
// \n, \r\n, and \r are all treated as line terminators.
func splitLines(text string) ([]string, error) {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	scanner := bufio.NewScanner(strings.NewReader(text))
	// minified sources can have a very long line
	scanner.Buffer(make([]byte, 0, bufio.MaxScanTokenSize), len(text)+1)
	lines := []string{}
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan a file: %w", err)
	}
	return lines, nil
}
