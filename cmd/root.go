package cmd

import (
	"errors"

	"github.com/spf13/cobra"
)

const skipWireAnnotation = "omp/skip-wire"

func Execute() error {
	rootCmd, app := newRootCmd()
	return run(rootCmd, app)
}

// run executes the command tree and releases what wiring opened, also when
// the command fails.
func run(rootCmd *cobra.Command, app *app) error {
	err := rootCmd.Execute()
	return errors.Join(err, app.close())
}

func newRootCmd() (*cobra.Command, *app) {
	app := &app{}
	opts := wireOptions{}

	rootCmd := &cobra.Command{
		Use:           "omp",
		Short:         "One Million Preachers CLI (omp): workshops, ministry assistants and donations",
		Long:          "omp is a terminal client for the One Million Preachers platform. Sign in, chat with the ministry assistants, follow the workshop catalog and support the mission with a donation.",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Annotations[skipWireAnnotation] == "true" {
				return nil
			}

			opts.stdout = cmd.OutOrStdout()
			opts.stderr = cmd.ErrOrStderr()
			wired, err := wireApp(cmd.Context(), opts)
			if err != nil {
				return err
			}
			*app = *wired

			app.progress.Load(cmd.Context())
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVar(&opts.configDir, "config-dir", "", "Configuration directory (default ~/.omp)")
	rootCmd.PersistentFlags().StringVar(&opts.envFile, "env-file", "", "Dotenv file with OMP_* overrides (default ./.env)")
	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Log debug details to stderr")

	rootCmd.AddCommand(
		newVersionCmd(),
		newAuthCmd(app),
		newChatCmd(app),
		newWorkshopsCmd(app),
		newDonateCmd(app),
		newDashboardCmd(app),
		newHealthCmd(app),
	)

	return rootCmd, app
}
