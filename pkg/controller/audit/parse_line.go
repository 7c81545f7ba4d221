package audit

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/suzuki-shunsuke/logrus-error/logerr"
)

var (
	arbitraryValuePattern = regexp.MustCompile(`\[(\d+)px\]`)
	declarationPattern    = regexp.MustCompile(`(padding|margin|gap|top|left|right|bottom)(?:-[\w]+)?:\s*(\d+)px`)
	paddingXPattern       = regexp.MustCompile(`px-(\d+)`)
	paddingYPattern       = regexp.MustCompile(`py-(\d+)`)
)

// checkLine applies all checks to a line and returns the findings in check order.
// number is the 1-based line number.
func checkLine(logE *logrus.Entry, number int, line string) []Finding {
	var findings []Finding
	findings = append(findings, checkArbitraryValues(logE, number, line)...)
	findings = append(findings, checkDeclarations(logE, number, line)...)
	if f := checkSymmetry(number, line); f != nil {
		findings = append(findings, *f)
	}
	if f := checkAwaitInLoop(number, line); f != nil {
		findings = append(findings, *f)
	}
	return findings
}

// checkArbitraryValues checks Tailwind arbitrary values such as `p-[13px]`.
func checkArbitraryValues(logE *logrus.Entry, number int, line string) []Finding {
	var findings []Finding
	for _, matches := range arbitraryValuePattern.FindAllStringSubmatch(line, -1) {
		value := matches[1]
		v, err := parseValue(value)
		if err != nil {
			logerr.WithError(logE, err).WithField("line_number", number).Debug("skip an arbitrary value")
			continue
		}
		if onGrid(v) {
			continue
		}
		findings = append(findings, Finding{
			Line:    number,
			Message: fmt.Sprintf("Grid Violation - Arbitrary value [%spx] is not a multiple of 4.", value),
		})
	}
	return findings
}

// checkDeclarations checks spacing declarations such as `padding-left: 13px`.
func checkDeclarations(logE *logrus.Entry, number int, line string) []Finding {
	var findings []Finding
	for _, matches := range declarationPattern.FindAllStringSubmatch(line, -1) {
		prop := matches[1]
		value := matches[2]
		v, err := parseValue(value)
		if err != nil {
			logerr.WithError(logE, err).WithFields(logrus.Fields{
				"line_number": number,
				"property":    prop,
			}).Debug("skip a declaration")
			continue
		}
		if onGrid(v) {
			continue
		}
		findings = append(findings, Finding{
			Line:    number,
			Message: fmt.Sprintf("Grid Violation - %s value %spx is not a multiple of 4.", prop, value),
		})
	}
	return findings
}

// checkSymmetry compares the first px-N and py-N utilities of the line as text,
// so px-4 and py-04 are asymmetric.
func checkSymmetry(number int, line string) *Finding {
	px := paddingXPattern.FindStringSubmatch(line)
	if px == nil {
		return nil
	}
	py := paddingYPattern.FindStringSubmatch(line)
	if py == nil {
		return nil
	}
	if px[1] == py[1] {
		return nil
	}
	return &Finding{
		Line:    number,
		Message: fmt.Sprintf("Symmetry Violation - Asymmetric padding (px-%s vs py-%s).", px[1], py[1]),
	}
}

func checkAwaitInLoop(number int, line string) *Finding {
	if !strings.Contains(line, "await") {
		return nil
	}
	if !strings.Contains(line, ".map(") && !strings.Contains(strings.ToLower(line), "foreach") {
		return nil
	}
	return &Finding{
		Line:    number,
		Message: "Perf Warning - Possible 'await' in a synchronous-looking loop.",
	}
}

func parseValue(s string) (uint64, error) {
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parse a value as an unsigned integer: %w", logerr.WithFields(err, logrus.Fields{
			"value": s,
		}))
	}
	return v, nil
}
