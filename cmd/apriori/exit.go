package main

import (
	"fmt"
	"io"
	"os"
)

// Exit codes for each stage of a command
const (
	exitValidation = 1
	exitMetadata   = 2
	exitInput      = 3
	exitMining     = 4
	exitRules      = 5
	exitOutput     = 6
	exitRedis      = 7
)

// stageError is an error along the exit code for the stage it happened on
type stageError struct {
	code int
	err  error
}

func (se *stageError) Error() string {
	return se.err.Error()
}

func failAt(code int, err error) error {
	return &stageError{code, err}
}

func failAtf(code int, format string, a ...interface{}) error {
	return &stageError{code, fmt.Errorf(format, a...)}
}

// exitOn prints err on w and exits with its stage's code, does nothing if err is nil
func exitOn(w io.Writer, err error) {
	if err == nil {
		return
	}
	fmt.Fprintln(w, err)
	if se, ok := err.(*stageError); ok {
		os.Exit(se.code)
	}
	os.Exit(1)
}
