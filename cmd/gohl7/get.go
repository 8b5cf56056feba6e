package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/hl7kit/gohl7/hl7"
)

func newGetCmd(logger *zap.Logger, inputFile *string) *cobra.Command {
	var path string
	cmd := &cobra.Command{
		Use:   "get --path SEG-F[.R][.C][.S] [file]",
		Short: "Read a value from a message by location path",
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

			seg, indices, err := parseLocation(path)
			if err != nil {
				return err
			}

			segEl, err := msg.Segment(seg)
			if err != nil {
				return err
			}

			v, err := segEl.GetValue(indices...)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), v)
			return nil
		},
	}
	cmd.Flags().StringVar(&path, "path", "", "location path, e.g. PID-3.1")
	cmd.MarkFlagRequired("path")
	return cmd
}

// parseLocation splits a location string like "PID-3.1.2" into its
// segment name and the numeric path beneath it (field, repetition,
// component, subcomponent).
func parseLocation(loc string) (string, []int, error) {
	dash := strings.SplitN(loc, "-", 2)
	if len(dash) != 2 {
		return "", nil, fmt.Errorf("gohl7: location %q must be SEG-path", loc)
	}
	parts := strings.Split(dash[1], ".")
	indices := make([]int, 0, len(parts))
	for _, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			return "", nil, fmt.Errorf("gohl7: invalid index %q in %q", p, loc)
		}
		indices = append(indices, n)
	}
	return dash[0], indices, nil
}
