package cmd

import (
	"fmt"

	"github.com/bnema/omp-cli/internal/adapters/render/view"
	"github.com/bnema/omp-cli/internal/application"
	"github.com/bnema/omp-cli/internal/domain"
	"github.com/spf13/cobra"
)

func newWorkshopsCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "workshops",
		Aliases: []string{"talleres"},
		Short:   "Browse the training workshops and track progress",
	}

	cmd.AddCommand(
		newWorkshopsListCmd(app),
		newWorkshopsShowCmd(app),
		newWorkshopsCompleteCmd(app),
		newWorkshopsProgressCmd(app),
	)

	return cmd
}

func newWorkshopsListCmd(app *app) *cobra.Command {
	var category string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List workshops with completion and lock markers",
		RunE: func(cmd *cobra.Command, _ []string) error {
			selected, err := domain.ParseCategory(category)
			if err != nil {
				return err
			}

			page, err := app.catalog.Page(cmd.Context(), selected)
			if err != nil {
				return err
			}

			output, err := view.RenderCatalog(catalogView(page))
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), output)
			return err
		},
	}

	cmd.Flags().StringVarP(&category, "category", "c", string(domain.CategoryAll),
		"Category: all, fundamentals, preaching, leadership, pastoral or evangelism")
	return cmd
}

func newWorkshopsShowCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show <workshop-id>",
		Short: "Show a workshop's content",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			page, err := app.catalog.Workshop(cmd.Context(), domain.WorkshopID(args[0]))
			if err != nil {
				return err
			}

			output, err := view.RenderWorkshop(view.WorkshopDetail{
				Workshop:  page.Workshop,
				Completed: page.Completed,
				Locked:    page.Locked,
				Previous:  page.Previous,
				Next:      page.Next,
			})
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), output)
			return err
		},
	}
}

func newWorkshopsCompleteCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "complete <workshop-id>",
		Short: "Mark a workshop as completed on this device",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			workshop, err := app.catalog.Complete(cmd.Context(), domain.WorkshopID(args[0]))
			if err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Completed: %s\n", workshop.Title)
			return err
		},
	}
}

func newWorkshopsProgressCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "progress",
		Short: "Show overall workshop progress",
		RunE: func(cmd *cobra.Command, _ []string) error {
			workshops, err := app.catalog.List(cmd.Context())
			if err != nil {
				return err
			}

			summary := app.catalog.Summarize(workshops)
			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(out, "%d%% completed (%d de %d talleres)\n", summary.Percentage, summary.CompletedCount, summary.Total)
			if summary.Next != nil {
				_, _ = fmt.Fprintf(out, "Next: %s (%s)\n", summary.Next.Title, summary.Next.ID)
			}
			return nil
		},
	}
}

func catalogView(page application.CatalogPage) view.Catalog {
	entries := make([]view.CatalogEntry, 0, len(page.Entries))
	for _, entry := range page.Entries {
		entries = append(entries, view.CatalogEntry{
			Workshop:  entry.Workshop,
			Completed: entry.Completed,
			Locked:    entry.Locked,
		})
	}

	return view.Catalog{
		Category:       page.Category,
		Entries:        entries,
		Percentage:     page.Percentage,
		CompletedCount: page.CompletedCount,
		Total:          page.Total,
	}
}
