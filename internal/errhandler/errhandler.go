package errhandler

import (
	"context"
	"errors"
	"strings"
	"unicode"

	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/charmbracelet/huh"
	"github.com/pterm/pterm"
)

// IsCancel reports whether err comes from the user aborting a prompt.
func IsCancel(err error) bool {
	if err == nil {
		return false
	}
	return errors.Is(err, terminal.InterruptErr) ||
		errors.Is(err, huh.ErrUserAborted) ||
		strings.Contains(err.Error(), "interrupt")
}

// ExitCode maps a command error to the process exit status. A cancelled
// prompt or an interrupted context exits cleanly.
func ExitCode(err error) int {
	if err == nil || IsCancel(err) || errors.Is(err, context.Canceled) {
		return 0
	}
	return 1
}

// HandleError reports err to the user and returns the exit status to use.
func HandleError(err error) int {
	code := ExitCode(err)
	switch {
	case err == nil:
	case code == 0:
		pterm.Warning.Println("Operation Cancelled")
	default:
		pterm.Error.Println(capitalize(err.Error()))
	}
	return code
}

func capitalize(s string) string {
	if len(s) == 0 {
		return s
	}
	r := []rune(s)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}
