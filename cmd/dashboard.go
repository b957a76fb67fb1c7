package cmd

import (
	"context"
	"fmt"

	"github.com/bnema/omp-cli/internal/adapters/render/view"
	"github.com/bnema/omp-cli/internal/domain"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

type dashboardData struct {
	workshops     []domain.Workshop
	conversations []domain.Conversation
	donations     []domain.Donation
}

func newDashboardCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Show progress, recent conversations and donations",
		RunE: func(cmd *cobra.Command, _ []string) error {
			identity, err := app.requireIdentity(cmd.Context())
			if err != nil {
				return err
			}

			var data dashboardData
			err = runWithSpinner(cmd.Context(), cmd.ErrOrStderr(), "Cargando panel...", func(ctx context.Context) error {
				loaded, err := loadDashboard(ctx, app)
				data = loaded
				return err
			})
			if err != nil {
				return err
			}

			summary := app.catalog.Summarize(data.workshops)
			output, err := view.RenderDashboard(view.Dashboard{
				Identity:       identity,
				Percentage:     summary.Percentage,
				CompletedCount: summary.CompletedCount,
				TotalWorkshops: summary.Total,
				StudyMinutes:   summary.StudyMinutes,
				NextWorkshop:   summary.Next,
				Conversations:  data.conversations,
				Donations:      data.donations,
				Now:            app.now(),
				Location:       app.settings.Location,
			})
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), output)
			return err
		},
	}
}

// loadDashboard fetches the independent dashboard sections concurrently. The
// first failure cancels the rest.
func loadDashboard(ctx context.Context, app *app) (dashboardData, error) {
	var data dashboardData
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		workshops, err := app.catalog.List(ctx)
		if err != nil {
			return err
		}
		data.workshops = workshops
		return nil
	})
	g.Go(func() error {
		conversations, err := app.client.ListConversations(ctx)
		if err != nil {
			return fmt.Errorf("list conversations: %w", err)
		}
		data.conversations = conversations
		return nil
	})
	g.Go(func() error {
		donations, err := app.payments.ListDonations(ctx)
		if err != nil {
			return err
		}
		data.donations = donations
		return nil
	})

	if err := g.Wait(); err != nil {
		return dashboardData{}, err
	}
	return data, nil
}
