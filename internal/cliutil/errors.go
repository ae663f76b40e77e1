package cliutil

import (
	"fmt"
	"io"

	"github.com/foppl-lang/foppl/internal/ferr"
)

// FormatError prints err to w the way the teacher's cli/errors.go
// FormatError prints a *CLIError/*planner.PlanError: a colorized "Error: "
// prefix and the message; for a *ferr.Error, a "caused by" line when it
// wraps a cause, then a "kind" line naming its Kind.
func FormatError(w io.Writer, err error, useColor bool) {
	if err == nil {
		return
	}
	fe, ok := err.(*ferr.Error)
	if !ok {
		fmt.Fprintf(w, "%s%s\n", Colorize("Error: ", ColorRed, useColor), err.Error())
		return
	}
	fmt.Fprintf(w, "%s%s\n", Colorize("Error: ", ColorRed, useColor), fe.Message)
	if fe.Cause != nil {
		fmt.Fprintf(w, "%s%s\n", Colorize("  caused by: ", ColorGray, useColor), fe.Cause.Error())
	}
	fmt.Fprintf(w, "%s%s\n", Colorize("  kind: ", ColorYellow, useColor), fe.Kind)
}
