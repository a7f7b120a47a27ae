package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"
)

// PreflightError is a user-facing error with guidance.
type PreflightError struct {
	Message  string
	Hint     string
	NextStep string
}

func (e *PreflightError) Error() string {
	return e.Message
}

// PrintError writes err to out, including hints for a PreflightError.
func PrintError(out io.Writer, err error) {
	var preflight *PreflightError
	if !errors.As(err, &preflight) {
		fmt.Fprintf(out, "Error: %v\n", err)
		return
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Error: %s\n", preflight.Message)
	if preflight.Hint != "" {
		fmt.Fprintf(&b, "Hint: %s\n", preflight.Hint)
	}
	if preflight.NextStep != "" {
		fmt.Fprintf(&b, "Next: %s\n", preflight.NextStep)
	}
	fmt.Fprint(out, b.String())
}
