package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/hl7kit/gohl7/hl7"
)

func newPrettyCmd(logger *zap.Logger, inputFile *string) *cobra.Command {
	return &cobra.Command{
		Use:   "pretty [file]",
		Short: "Print a message with one segment per line",
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := readInput(*inputFile, args)
			if err != nil {
				logger.Error("reading input failed", zap.Error(err))
				return err
			}

			msg, err := hl7.Parse(string(raw))
			if err != nil {
				return err
			}

			text := msg.String()
			for _, line := range strings.Split(text, "\r") {
				if line == "" {
					continue
				}
				fmt.Fprintln(cmd.OutOrStdout(), line)
			}
			return nil
		},
	}
}
