package view

import (
	"fmt"
	"strings"

	"github.com/bnema/omp-cli/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

type CatalogEntry struct {
	Workshop  domain.Workshop
	Completed bool
	Locked    bool
}

// Catalog is the workshop list as displayed: already filtered and ordered.
type Catalog struct {
	Category       domain.Category
	Entries        []CatalogEntry
	Percentage     int
	CompletedCount int
	Total          int
}

type WorkshopDetail struct {
	Workshop  domain.Workshop
	Completed bool
	Locked    bool
	Previous  *domain.Workshop
	Next      *domain.Workshop
}

func RenderCatalog(c Catalog) (string, error) {
	return render(func(s styles) string {
		return catalogView(c, s)
	})
}

func RenderWorkshop(d WorkshopDetail) (string, error) {
	return render(func(s styles) string {
		return workshopView(d, s)
	})
}

func catalogView(c Catalog, s styles) string {
	category := c.Category
	if category == "" {
		category = domain.CategoryAll
	}

	lines := []string{
		s.title.Render("Talleres: " + category.Label()),
		progressLine("Progreso:", c.Percentage, c.CompletedCount, c.Total, s),
	}

	if len(c.Entries) == 0 {
		lines = append(lines, s.empty.Render("No hay talleres en esta categoría."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	rows := make([]string, 0, len(c.Entries))
	for _, entry := range c.Entries {
		rows = append(rows, catalogRow(entry, s))
	}
	lines = append(lines, s.section.Render(lipgloss.JoinVertical(lipgloss.Left, rows...)))

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func catalogRow(entry CatalogEntry, s styles) string {
	w := entry.Workshop
	title := fmt.Sprintf("%d. %s", w.Order, w.Title)
	meta := s.header.Render(fmt.Sprintf("%s · %s · id %s", durationLabel(w.DurationMinutes), w.Category.Label(), w.ID))

	switch {
	case entry.Completed:
		return lipgloss.JoinHorizontal(lipgloss.Top, s.completed.Render("[x] "+title), " ", meta)
	case entry.Locked:
		return lipgloss.JoinHorizontal(lipgloss.Top, s.locked.Render("[locked] "+title), " ", meta)
	default:
		return lipgloss.JoinHorizontal(lipgloss.Top, s.item.Render("[ ] "+title), " ", meta)
	}
}

func workshopView(d WorkshopDetail, s styles) string {
	w := d.Workshop
	status := "pendiente"
	if d.Completed {
		status = "completado"
	}

	lines := []string{
		s.title.Render(fmt.Sprintf("Taller %d: %s", w.Order, w.Title)),
		s.header.Render(fmt.Sprintf("%s · %s · %s", w.Category.Label(), durationLabel(w.DurationMinutes), status)),
	}

	if d.Locked {
		lines = append(lines, s.warning.Render("Completa el taller anterior para desbloquear este."))
	}

	if description := PlainText(w.Description); description != "" {
		lines = append(lines, s.section.Render(s.detail.Render(description)))
	}
	if content := PlainText(w.Content); content != "" {
		lines = append(lines, s.section.Render(content))
	}

	if len(w.Resources) > 0 {
		resources := []string{s.title.Render("Recursos")}
		for _, r := range w.Resources {
			resources = append(resources, "- "+PlainText(r))
		}
		lines = append(lines, s.section.Render(lipgloss.JoinVertical(lipgloss.Left, resources...)))
	}

	if nav := navigationLine(d.Previous, d.Next); nav != "" {
		lines = append(lines, s.section.Render(s.header.Render(nav)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func navigationLine(prev, next *domain.Workshop) string {
	parts := make([]string, 0, 2)
	if prev != nil {
		parts = append(parts, fmt.Sprintf("< anterior: %s (%s)", prev.Title, prev.ID))
	}
	if next != nil {
		parts = append(parts, fmt.Sprintf("siguiente: %s (%s) >", next.Title, next.ID))
	}
	return strings.Join(parts, "   ")
}

func durationLabel(minutes int) string {
	if minutes <= 0 {
		return "duración n/d"
	}
	return fmt.Sprintf("%d min", minutes)
}
