package main

import (
	"fmt"
	"io"
	"os"
)

type logger bool

func (l logger) Logf(format string, a ...interface{}) {
	if !l {
		return
	}
	fmt.Fprintf(os.Stderr, format, a...)
	fmt.Fprintln(os.Stderr, "")
}

// warnf prints a warning on w regardless of verbosity
func warnf(w io.Writer, format string, a ...interface{}) {
	fmt.Fprintf(w, "warning: "+format+"\n", a...)
}
