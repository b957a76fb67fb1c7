package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/bnema/omp-cli/internal/domain"
	"github.com/spf13/cobra"
)

func newAuthCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "auth",
		Short: "Sign in, register and manage the session",
	}

	cmd.AddCommand(
		newAuthLoginCmd(app),
		newAuthRegisterCmd(app),
		newAuthFacebookCmd(app),
		newAuthLogoutCmd(app),
		newAuthWhoamiCmd(app),
	)

	return cmd
}

func newAuthLoginCmd(app *app) *cobra.Command {
	var email string
	var password string
	var passwordStdin bool

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in with email and password",
		RunE: func(cmd *cobra.Command, _ []string) error {
			secret, err := resolvePassword(cmd.InOrStdin(), password, passwordStdin)
			if err != nil {
				return err
			}

			identity, err := app.session.Login(cmd.Context(), email, secret)
			if err != nil {
				return fmt.Errorf("login: %w", err)
			}

			return writeWelcome(cmd, identity)
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "Account email")
	cmd.Flags().StringVar(&password, "password", "", "Account password")
	cmd.Flags().BoolVar(&passwordStdin, "password-stdin", false, "Read the password from stdin")
	_ = cmd.MarkFlagRequired("email")

	return cmd
}

func newAuthRegisterCmd(app *app) *cobra.Command {
	var email string
	var password string
	var fullName string
	var passwordStdin bool

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create an account and sign in",
		RunE: func(cmd *cobra.Command, _ []string) error {
			secret, err := resolvePassword(cmd.InOrStdin(), password, passwordStdin)
			if err != nil {
				return err
			}

			identity, err := app.session.Register(cmd.Context(), email, secret, fullName)
			if err != nil {
				return fmt.Errorf("register: %w", err)
			}

			return writeWelcome(cmd, identity)
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "Account email")
	cmd.Flags().StringVar(&password, "password", "", "Account password")
	cmd.Flags().StringVar(&fullName, "name", "", "Full name")
	cmd.Flags().BoolVar(&passwordStdin, "password-stdin", false, "Read the password from stdin")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func newAuthFacebookCmd(app *app) *cobra.Command {
	var accessToken string

	cmd := &cobra.Command{
		Use:   "facebook",
		Short: "Sign in with a Facebook user access token",
		RunE: func(cmd *cobra.Command, _ []string) error {
			profile, err := app.facebook.Profile(cmd.Context(), accessToken)
			if err != nil {
				return fmt.Errorf("resolve facebook profile: %w", err)
			}

			identity, err := app.session.LoginWithFacebook(cmd.Context(), profile)
			if err != nil {
				return fmt.Errorf("facebook login: %w", err)
			}

			return writeWelcome(cmd, identity)
		},
	}

	cmd.Flags().StringVar(&accessToken, "access-token", "", "Facebook user access token")
	_ = cmd.MarkFlagRequired("access-token")

	return cmd
}

func newAuthLogoutCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Forget the stored session token",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := app.session.Logout(cmd.Context()); err != nil {
				return fmt.Errorf("logout: %w", err)
			}

			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Signed out")
			return nil
		},
	}
}

func newAuthWhoamiCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the signed-in user",
		RunE: func(cmd *cobra.Command, _ []string) error {
			identity, err := app.requireIdentity(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(out, "Name:  %s\n", identity.FullName)
			_, _ = fmt.Fprintf(out, "Email: %s\n", identity.Email)
			if identity.Role != "" {
				_, _ = fmt.Fprintf(out, "Role:  %s\n", identity.Role)
			}
			if !identity.CreatedAt.IsZero() {
				_, _ = fmt.Fprintf(out, "Since: %s\n", identity.CreatedAt.In(app.settings.Location).Format("2006-01-02"))
			}
			return nil
		},
	}
}

func resolvePassword(in io.Reader, flagValue string, fromStdin bool) (string, error) {
	if !fromStdin {
		return flagValue, nil
	}
	if flagValue != "" {
		return "", errors.New("--password and --password-stdin are mutually exclusive")
	}

	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("read password from stdin: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func writeWelcome(cmd *cobra.Command, identity domain.Identity) error {
	name := identity.FullName
	if name == "" {
		name = identity.Email
	}
	_, err := fmt.Fprintf(cmd.OutOrStdout(), "¡Bienvenido, %s! Signed in as %s\n", name, identity.Email)
	return err
}
