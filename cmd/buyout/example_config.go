package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rpgo/buyout-calculator/internal/config"
	"github.com/rpgo/buyout-calculator/internal/output"
)

func newExampleConfigCmd() *cobra.Command {
	var path string
	cmd := &cobra.Command{
		Use:   "example-config",
		Short: "Print or save an example configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := config.NewInputParser().CreateExampleConfiguration()
			if path == "" {
				return output.WriteConfiguration(cmd.OutOrStdout(), cfg)
			}
			if err := output.SaveConfiguration(cfg, path); err != nil {
				return fmt.Errorf("failed to save configuration: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Example configuration written to %s\n", path)
			return nil
		},
	}
	cmd.Flags().StringVarP(&path, "output", "o", "", "write to this file instead of stdout")
	return cmd
}
