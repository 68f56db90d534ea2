package main

import (
	"errors"
	"fmt"
	"os"
)

// Exit codes. Scripts distinguish "the inputs are bad" (1) from "the tool
// itself could not run" (2).
const (
	ExitSuccess          = 0
	ExitValidationFailed = 1
	ExitError            = 2
)

// ValidationFailureError marks a run where the command completed but one
// or more model files failed validation. It exists so main can map that
// case to ExitValidationFailed instead of the generic error exit.
type ValidationFailureError struct {
	Message string
}

func (e *ValidationFailureError) Error() string {
	return e.Message
}

func main() {
	if err := execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)

		var validationErr *ValidationFailureError
		if errors.As(err, &validationErr) {
			os.Exit(ExitValidationFailed)
		}
		os.Exit(ExitError)
	}
}
