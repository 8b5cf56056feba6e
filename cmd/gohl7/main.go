// Command gohl7 is a small CLI over the gohl7 library: validate, get,
// set and pretty-print HL7 v2.x messages.
//
// Input is read from --file, the positional [file] argument, or stdin,
// in that order of precedence.
package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		fmt.Fprintf(os.Stderr, "gohl7: failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if err := newRootCmd(logger).Execute(); err != nil {
		os.Exit(1)
	}
}
