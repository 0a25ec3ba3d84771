package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func prefsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "prefs",
		Short: "Print the effective preferences",
		Long: `Print the preferences loaders start from, after defaults and
TERMLOAD_* environment overrides are applied.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			data, err := yaml.Marshal(a.store.Load())
			if err != nil {
				return fmt.Errorf("failed to encode preferences: %w", err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "# %s\n", a.store.Path())
			_, err = out.Write(data)
			return err
		},
	}
}
