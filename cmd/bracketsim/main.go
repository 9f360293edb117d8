package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spboyer/bracketsim/internal/models"
)

// Exit codes for different failure modes
const (
	ExitSuccess  = 0 // Tournament played
	ExitBadInput = 1 // Teams file or odds rejected
	ExitError    = 2 // Configuration, runtime or internal error
)

func main() {
	if err := execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitCode(err))
	}
}

// exitCode maps an error returned by a command to the process exit code.
func exitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var oddsErr *models.InvalidOddsError
	var malformedErr *models.MalformedInputError
	if errors.As(err, &oddsErr) || errors.As(err, &malformedErr) {
		return ExitBadInput
	}
	return ExitError
}
