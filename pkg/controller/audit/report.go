package audit

import (
	"bytes"
	"fmt"
	"io"
	"maps"
	"slices"

	"github.com/fatih/color"
)

// maxListedFiles is compared with the number of files already listed before listing the next one,
// so up to maxListedFiles+1 files are listed.
const maxListedFiles = 50

type colorFunc func(a ...any) string

type Reporter struct {
	stdout io.Writer
	bold   colorFunc
	cyan   colorFunc
	green  colorFunc
}

func NewReporter(stdout io.Writer, noColor bool) *Reporter {
	return &Reporter{
		stdout: stdout,
		bold:   newColorFunc(noColor, color.Bold),
		cyan:   newColorFunc(noColor, color.FgCyan),
		green:  newColorFunc(noColor, color.FgGreen),
	}
}

func newColorFunc(noColor bool, attrs ...color.Attribute) colorFunc {
	c := color.New(attrs...)
	if noColor {
		c.DisableColor()
	}
	return c.SprintFunc()
}

// Report outputs findings grouped by file in the lexicographic order of file paths.
func (r *Reporter) Report(reports ReportSet) error {
	buf := &bytes.Buffer{}
	r.render(buf, reports)
	if _, err := r.stdout.Write(buf.Bytes()); err != nil {
		return fmt.Errorf("output a report: %w", err)
	}
	return nil
}

func (r *Reporter) render(buf *bytes.Buffer, reports ReportSet) {
	if len(reports) == 0 {
		fmt.Fprintf(buf, "\n%s\n", r.green("✅ All quality gates passed! (Design + Performance)"))
		return
	}
	fmt.Fprintf(buf, "\n%s\n\n", r.bold("=== PREMIUM QUALITY AUDIT REPORT ==="))
	count := 0
	for _, filePath := range slices.Sorted(maps.Keys(reports)) {
		if count > maxListedFiles {
			buf.WriteString("... (and more files)\n")
			break
		}
		fmt.Fprintf(buf, "%s %s\n", r.cyan("FILE:"), filePath)
		for _, finding := range reports[filePath] {
			fmt.Fprintf(buf, "  - %s\n", finding)
		}
		buf.WriteString("\n")
		count++
	}
	fmt.Fprintf(buf, "%s\n", r.bold(fmt.Sprintf("Total files with quality issues: %d", len(reports))))
}
