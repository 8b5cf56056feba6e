package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/hl7kit/gohl7/hl7"
)

func newValidateCmd(logger *zap.Logger, inputFile *string) *cobra.Command {
	return &cobra.Command{
		Use:   "validate [file]",
		Short: "Check a message for structural validity",
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := readInput(*inputFile, args)
			if err != nil {
				logger.Error("reading input failed", zap.Error(err))
				return err
			}

			msg, err := hl7.Parse(string(raw))
			if err != nil {
				fmt.Fprintln(cmd.OutOrStdout(), "invalid:", err)
				return err
			}

			details := msg.Details()
			if details.ErrorOrNil() == nil {
				fmt.Fprintln(cmd.OutOrStdout(), "valid")
				return nil
			}

			fmt.Fprintln(cmd.OutOrStdout(), "invalid:")
			for _, e := range details.Errors {
				fmt.Fprintln(cmd.OutOrStdout(), " -", e)
			}
			return fmt.Errorf("validation failed")
		},
	}
}
