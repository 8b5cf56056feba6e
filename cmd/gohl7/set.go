package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/hl7kit/gohl7/hl7"
)

func newSetCmd(logger *zap.Logger, inputFile *string) *cobra.Command {
	var path, value string
	cmd := &cobra.Command{
		Use:   "set --path SEG-F[.R][.C][.S] --value TEXT [file]",
		Short: "Write a value into a message by location path and print the result",
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := readInput(*inputFile, args)
			if err != nil {
				logger.Error("reading input failed", zap.Error(err))
				return err
			}

			msg, err := hl7.Build(string(raw))
			if err != nil {
				return err
			}

			seg, indices, err := parseLocation(path)
			if err != nil {
				return err
			}

			segEl, err := msg.Segment(seg)
			if err != nil {
				return err
			}

			target, err := descend(segEl, indices)
			if err != nil {
				return err
			}
			if err := target.SetValue(stringValue(value)); err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), msg.String())
			return nil
		},
	}
	cmd.Flags().StringVar(&path, "path", "", "location path, e.g. PID-3.1")
	cmd.Flags().StringVar(&value, "value", "", "text to write")
	cmd.MarkFlagRequired("path")
	cmd.MarkFlagRequired("value")
	return cmd
}
