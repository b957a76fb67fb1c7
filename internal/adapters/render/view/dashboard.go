package view

import (
	"fmt"
	"sort"
	"time"

	"github.com/bnema/omp-cli/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

const recentActivityLimit = 3

type Dashboard struct {
	Identity       domain.Identity
	Percentage     int
	CompletedCount int
	TotalWorkshops int
	StudyMinutes   int
	NextWorkshop   *domain.Workshop
	Conversations  []domain.Conversation
	Donations      []domain.Donation
	Now            time.Time
	Location       *time.Location
}

type Donations struct {
	Donations []domain.Donation
	Location  *time.Location
}

func RenderDashboard(d Dashboard) (string, error) {
	return render(func(s styles) string {
		return dashboardView(d, s)
	})
}

func RenderDonations(d Donations) (string, error) {
	return render(func(s styles) string {
		return donationsView(d, s)
	})
}

func dashboardView(d Dashboard, s styles) string {
	name := d.Identity.FullName
	if name == "" {
		name = d.Identity.Email
	}

	lines := []string{
		s.title.Render(fmt.Sprintf("¡Bienvenido, %s!", name)),
		s.header.Render("Continúa tu formación ministerial con nuestros recursos y asistentes ministeriales."),
		s.section.Render(progressLine("Progreso Total:", d.Percentage, d.CompletedCount, d.TotalWorkshops, s)),
		s.detail.Render(fmt.Sprintf("Talleres Completados: %d/%d", d.CompletedCount, d.TotalWorkshops)),
		s.detail.Render("Tiempo de Estudio: " + studyTimeLabel(d.StudyMinutes)),
		s.detail.Render(fmt.Sprintf("Conversaciones IA: %d", len(d.Conversations))),
	}

	if d.NextWorkshop != nil {
		lines = append(lines, s.detail.Render(fmt.Sprintf("Siguiente taller: %d. %s (%s)", d.NextWorkshop.Order, d.NextWorkshop.Title, d.NextWorkshop.ID)))
	}

	lines = append(lines, s.section.Render(s.title.Render("Actividad Reciente")))
	activity := recentActivity(d.Conversations, d.Now)
	if len(activity) == 0 {
		lines = append(lines, s.empty.Render("Sin actividad reciente."))
	}
	for _, entry := range activity {
		lines = append(lines, s.item.Render("- "+entry))
	}

	if len(d.Donations) > 0 {
		lines = append(lines, s.section.Render(donationsView(Donations{Donations: d.Donations, Location: d.Location}, s)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func recentActivity(conversations []domain.Conversation, now time.Time) []string {
	type activity struct {
		label string
		at    time.Time
	}

	entries := make([]activity, 0, len(conversations))
	for _, c := range conversations {
		at := c.CreatedAt
		if n := len(c.Messages); n > 0 && c.Messages[n-1].Timestamp.After(at) {
			at = c.Messages[n-1].Timestamp
		}
		entries = append(entries, activity{label: "Conversación con " + c.AssistantType.DisplayName(), at: at})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].at.After(entries[j].at)
	})
	if len(entries) > recentActivityLimit {
		entries = entries[:recentActivityLimit]
	}

	out := make([]string, 0, len(entries))
	for _, e := range entries {
		out = append(out, fmt.Sprintf("%s (%s)", e.label, relativeTime(e.at, now)))
	}
	return out
}

func relativeTime(at, now time.Time) string {
	if at.IsZero() || now.IsZero() {
		return "fecha desconocida"
	}

	elapsed := now.Sub(at)
	switch {
	case elapsed < time.Minute:
		return "hace un momento"
	case elapsed < time.Hour:
		return fmt.Sprintf("hace %d min", int(elapsed.Minutes()))
	case elapsed < 24*time.Hour:
		hours := int(elapsed.Hours())
		if hours == 1 {
			return "hace 1 hora"
		}
		return fmt.Sprintf("hace %d horas", hours)
	case elapsed < 48*time.Hour:
		return "ayer"
	default:
		return fmt.Sprintf("hace %d días", int(elapsed.Hours()/24))
	}
}

func studyTimeLabel(minutes int) string {
	if minutes < 60 {
		return fmt.Sprintf("%dmin", minutes)
	}
	if minutes%60 == 0 {
		return fmt.Sprintf("%dh", minutes/60)
	}
	return fmt.Sprintf("%dh %dmin", minutes/60, minutes%60)
}

func donationsView(d Donations, s styles) string {
	lines := []string{s.title.Render("Donaciones")}
	if len(d.Donations) == 0 {
		lines = append(lines, s.empty.Render("Aún no hay donaciones registradas."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	location := d.Location
	if location == nil {
		location = time.Local
	}

	for _, donation := range d.Donations {
		date := "n/d"
		if !donation.CreatedAt.IsZero() {
			date = donation.CreatedAt.In(location).Format("2006-01-02")
		}
		status := s.detail
		switch donation.Status {
		case domain.DonationCompleted:
			status = s.completed
		case domain.DonationFailed:
			status = s.warning
		}
		line := lipgloss.JoinHorizontal(
			lipgloss.Top,
			s.timestamp.Render(date),
			" ",
			s.item.Render(fmt.Sprintf("%s %s", donation.Amount, donation.Currency)),
			" ",
			s.header.Render(string(donation.PaymentMethod)),
			" ",
			status.Render(string(donation.Status)),
		)
		if message := PlainText(donation.Message); message != "" {
			line += " " + s.detail.Render("\""+message+"\"")
		}
		lines = append(lines, line)
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}
