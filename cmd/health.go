package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newHealthCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Check that the backend is reachable",
		RunE: func(cmd *cobra.Command, _ []string) error {
			status, err := app.client.Health(cmd.Context())
			if err != nil {
				return fmt.Errorf("backend %s: %w", app.client.BaseURL(), err)
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", app.client.BaseURL(), status.Status)
			return err
		},
	}
}
