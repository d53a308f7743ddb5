// Package main provides the vctr CLI: construct, format, and tabulate
// validated vectors, and keep named frames in a local store.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/ijlyttle/vctrs/internal/store"
	"github.com/ijlyttle/vctrs/pkg/vctrs"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitCode(err))
	}
}

// exitCode classifies an error: validation failures and missing frames
// are user errors, everything else is a system error.
func exitCode(err error) int {
	switch {
	case vctrs.IsTypeErr(err), vctrs.IsDomainErr(err), vctrs.IsInvariantErr(err):
		return exitUserError
	case errors.Is(err, vctrs.ErrUnknownKind), errors.Is(err, store.ErrFrameNotFound):
		return exitUserError
	default:
		return exitSysError
	}
}
