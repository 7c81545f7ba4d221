package audit

import "fmt"

// Finding represents a single violation detected in a file.
// Line is 1-based. A Finding with Line 0 isn't bound to a line and is
// rendered as a system message.
type Finding struct {
	Line    int
	Message string
}

func (f Finding) String() string {
	if f.Line == 0 {
		return "System: " + f.Message
	}
	return fmt.Sprintf("L%d: %s", f.Line, f.Message)
}

// ReportSet maps a file path to the findings detected in the file.
// Files without findings aren't included.
type ReportSet map[string][]Finding
