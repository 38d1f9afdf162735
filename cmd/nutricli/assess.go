package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"nutricoach/pkg/usda"
)

func newAssessCmd(root *rootOptions) *cobra.Command {
	var apiKey, baseURL string

	cmd := &cobra.Command{
		Use:   "assess [food]",
		Short: "Assess a food from USDA nutrient data",
		Long: `Looks the food up in FoodData Central and applies the sugar, sodium,
fat and protein thresholds. The key defaults to $USDA_API_KEY.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if apiKey == "" {
				apiKey = os.Getenv("USDA_API_KEY")
			}
			client, err := usda.New(usda.Config{APIKey: apiKey, BaseURL: baseURL, Timeout: root.timeout})
			if err != nil {
				return fmt.Errorf("assess: %w", err)
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), root.timeout)
			defer cancel()

			text, err := usda.Lookup(ctx, client, strings.Join(args, " "))
			if err != nil {
				return fmt.Errorf("assess: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), text)
			return nil
		},
	}

	cmd.Flags().StringVar(&apiKey, "usda-key", "", "USDA FoodData Central API key")
	cmd.Flags().StringVar(&baseURL, "base-url", "", "Override the USDA base URL")
	return cmd
}
