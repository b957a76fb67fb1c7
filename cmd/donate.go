package cmd

import (
	"errors"
	"fmt"
	"time"

	"github.com/bnema/omp-cli/internal/adapters/render/view"
	"github.com/bnema/omp-cli/internal/domain"
	"github.com/spf13/cobra"
)

func newDonateCmd(app *app) *cobra.Command {
	var amount string
	var preset int
	var provider string
	var donor domain.Donor

	cmd := &cobra.Command{
		Use:   "donate",
		Short: "Support the mission with a donation",
		Long:  "Make a one-time donation in USD with a card (Stripe) or PayPal. The payment step opens in your browser and reports back to a local callback address.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := selectDonationAmount(app, cmd, amount, preset); err != nil {
				return err
			}
			if err := app.payments.SetDonor(donor); err != nil {
				return err
			}

			method, err := domain.ParseProvider(provider)
			if err != nil {
				return err
			}
			if err := app.payments.SelectProvider(method); err != nil {
				return err
			}

			if _, err := app.requireIdentity(cmd.Context()); err != nil {
				return err
			}

			receipt, err := app.payments.Submit(cmd.Context())
			if err != nil {
				return fmt.Errorf("donation failed: %w", err)
			}

			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(out, "¡Gracias por tu donación de %s %s!\n", receipt.Amount, domain.Currency)
			_, _ = fmt.Fprintf(out, "Donation: %s\n", receipt.DonationID)
			_, _ = fmt.Fprintf(out, "Payment:  %s (%s)\n", receipt.PaymentID, receipt.Provider)
			if receipt.Message != "" {
				_, _ = fmt.Fprintln(out, receipt.Message)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&amount, "amount", "", "Custom amount in USD, e.g. 40 or 12.50")
	cmd.Flags().IntVar(&preset, "preset", 0, "Preset amount in USD: 25, 50, 100, 250 or 500")
	cmd.Flags().StringVar(&provider, "provider", string(domain.ProviderStripe), "Payment method: stripe or paypal")
	cmd.Flags().StringVar(&donor.Name, "name", "", "Donor name")
	cmd.Flags().StringVar(&donor.Email, "email", "", "Donor email for the receipt")
	cmd.Flags().StringVar(&donor.Message, "message", "", "Optional message to the ministry")
	cmd.MarkFlagsMutuallyExclusive("amount", "preset")
	cmd.MarkFlagsOneRequired("amount", "preset")

	cmd.AddCommand(newDonateHistoryCmd(app), newDonateShowCmd(app))

	return cmd
}

func selectDonationAmount(app *app, cmd *cobra.Command, amount string, preset int) error {
	if cmd.Flags().Changed("preset") {
		return app.payments.SelectPreset(preset)
	}
	if amount == "" {
		return errors.New("an amount is required: use --amount or --preset")
	}
	return app.payments.SelectAmount(amount)
}

func newDonateHistoryCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "history",
		Short: "List your past donations",
		RunE: func(cmd *cobra.Command, _ []string) error {
			donations, err := app.payments.ListDonations(cmd.Context())
			if err != nil {
				return err
			}

			output, err := view.RenderDonations(view.Donations{Donations: donations, Location: app.settings.Location})
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), output)
			return err
		},
	}
}

func newDonateShowCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show <donation-id>",
		Short: "Show one donation",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			donation, err := app.payments.GetDonation(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(out, "Donation: %s\n", donation.ID)
			_, _ = fmt.Fprintf(out, "Amount:   %s %s\n", donation.Amount, donation.Currency)
			_, _ = fmt.Fprintf(out, "Method:   %s\n", donation.PaymentMethod)
			_, _ = fmt.Fprintf(out, "Status:   %s\n", donation.Status)
			if !donation.CreatedAt.IsZero() {
				_, _ = fmt.Fprintf(out, "Created:  %s\n", donation.CreatedAt.In(app.settings.Location).Format(time.DateTime))
			}
			if !donation.CompletedAt.IsZero() {
				_, _ = fmt.Fprintf(out, "Completed: %s\n", donation.CompletedAt.In(app.settings.Location).Format(time.DateTime))
			}
			if donation.Message != "" {
				_, _ = fmt.Fprintf(out, "Message:  %s\n", view.PlainText(donation.Message))
			}
			return nil
		},
	}
}
