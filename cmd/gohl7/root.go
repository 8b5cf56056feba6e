package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newRootCmd(logger *zap.Logger) *cobra.Command {
	root := &cobra.Command{
		Use:   "gohl7",
		Short: "Inspect and edit HL7 v2.x messages",
	}

	var inputFile string
	root.PersistentFlags().StringVarP(&inputFile, "file", "f", "", "HL7 input file")

	root.AddCommand(
		newValidateCmd(logger, &inputFile),
		newGetCmd(logger, &inputFile),
		newSetCmd(logger, &inputFile),
		newPrettyCmd(logger, &inputFile),
	)
	return root
}

// readInput reads HL7 text from file, the first of args, or stdin, in
// that order of precedence.
func readInput(file string, args []string) ([]byte, error) {
	if file != "" {
		return os.ReadFile(file)
	}
	if len(args) > 0 {
		return os.ReadFile(args[0])
	}
	return io.ReadAll(os.Stdin)
}
