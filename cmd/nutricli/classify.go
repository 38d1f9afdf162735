package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"nutricoach/internal/classifier"
	"nutricoach/internal/model"
)

func newClassifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "classify [text]",
		Short: "Classify advice text as beneficial, avoid or neutral",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c := classifier.Classify(strings.Join(args, " "))
			if c == model.ClassificationNone {
				fmt.Fprintln(cmd.OutOrStdout(), "none")
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), c)
			return nil
		},
	}
}
