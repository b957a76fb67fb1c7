package view

import (
	"fmt"
	"time"

	"github.com/bnema/omp-cli/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

type Transcript struct {
	Assistant domain.AssistantType
	Messages  []domain.Message
	Pending   bool
	Location  *time.Location
}

func RenderTranscript(t Transcript) (string, error) {
	return render(func(s styles) string {
		return transcriptView(t, s)
	})
}

// RenderAssistants lists the assistants a conversation can be held with.
func RenderAssistants(active domain.AssistantType) (string, error) {
	return render(func(s styles) string {
		lines := []string{s.title.Render("Asistentes Ministeriales")}
		for _, a := range domain.AssistantTypes() {
			marker := "  "
			if a == active {
				marker = "* "
			}
			lines = append(lines,
				s.item.Render(fmt.Sprintf("%s%s (%s)", marker, a.DisplayName(), a)),
				s.detail.Render("    "+a.Description()),
			)
		}
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	})
}

func transcriptView(t Transcript, s styles) string {
	lines := []string{
		s.title.Render(t.Assistant.DisplayName()),
		s.header.Render(t.Assistant.Description()),
	}

	if len(t.Messages) == 0 {
		lines = append(lines, s.section.Render(s.empty.Render("Todavía no hay mensajes en esta conversación.")))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	location := t.Location
	if location == nil {
		location = time.Local
	}

	for _, msg := range t.Messages {
		label := s.botLabel
		if msg.Role == domain.RoleUser {
			label = s.userLabel
		}
		header := lipgloss.JoinHorizontal(
			lipgloss.Top,
			s.timestamp.Render("["+msg.Timestamp.In(location).Format(transcriptTimeLayout)+"]"),
			" ",
			label.Render(msg.Speaker(t.Assistant)+":"),
		)
		lines = append(lines, s.section.Render(lipgloss.JoinVertical(lipgloss.Left, header, PlainText(msg.Content))))
	}

	if t.Pending {
		lines = append(lines, s.section.Render(s.empty.Render(t.Assistant.DisplayName()+" está escribiendo...")))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}
