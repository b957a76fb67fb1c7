package application

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/bnema/omp-cli/internal/domain"
	"github.com/bnema/omp-cli/internal/ports"
)

const exportTimestampLayout = "2/1/2006, 15:04:05"

// ConversationExport is a plain-text transcript ready to be written to disk.
type ConversationExport struct {
	FileName string
	Content  string
}

type assistantView struct {
	messages     []domain.Message
	conversation *domain.Conversation
	inFlight     bool
	generation   uint64
}

// ConversationManager keeps one message sequence per assistant and reconciles
// it with the server history.
type ConversationManager struct {
	chat     ports.ChatAPI
	clock    ports.Clock
	location *time.Location
	logger   *slog.Logger

	mu     sync.Mutex
	active domain.AssistantType
	views  map[domain.AssistantType]*assistantView
}

func NewConversationManager(chat ports.ChatAPI, clock ports.Clock, location *time.Location, logger *slog.Logger) *ConversationManager {
	if clock == nil {
		clock = ports.SystemClock{}
	}
	if location == nil {
		location = time.Local
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &ConversationManager{
		chat:     chat,
		clock:    clock,
		location: location,
		logger:   logger.With("component", "conversation"),
		active:   domain.AssistantBibleMentor,
		views:    make(map[domain.AssistantType]*assistantView),
	}
}

func (m *ConversationManager) Active() domain.AssistantType {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.active
}

// Messages returns a copy of the active assistant's sequence.
func (m *ConversationManager) Messages() []domain.Message {
	m.mu.Lock()
	defer m.mu.Unlock()

	return cloneMessages(m.viewLocked(m.active).messages)
}

// Pending reports whether a send for the active assistant awaits its reply.
func (m *ConversationManager) Pending() bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.viewLocked(m.active).inFlight
}

func (m *ConversationManager) SelectAssistant(ctx context.Context, assistant domain.AssistantType) error {
	if !assistant.Valid() {
		return domain.NewValidationError("assistant", fmt.Sprintf("unknown assistant %q", assistant))
	}

	m.mu.Lock()
	m.active = assistant
	m.mu.Unlock()

	return m.Reload(ctx, assistant)
}

// Reload replaces the assistant's sequence with the server history. Only the
// most recently issued reload per assistant may apply its result.
func (m *ConversationManager) Reload(ctx context.Context, assistant domain.AssistantType) error {
	if !assistant.Valid() {
		return domain.NewValidationError("assistant", fmt.Sprintf("unknown assistant %q", assistant))
	}

	m.mu.Lock()
	view := m.viewLocked(assistant)
	view.generation++
	generation := view.generation
	m.mu.Unlock()

	conversations, err := m.chat.ListConversations(ctx)

	m.mu.Lock()
	defer m.mu.Unlock()

	if view.generation != generation {
		m.logger.Debug("discarding stale conversation listing", "assistant", assistant)
		return nil
	}
	if err != nil {
		return fmt.Errorf("list conversations: %w", err)
	}

	conversation, ok := domain.FindConversation(conversations, assistant)
	if !ok {
		view.conversation = nil
		view.messages = nil
		return nil
	}

	view.conversation = &conversation
	view.messages = cloneMessages(conversation.Messages)
	return nil
}

// Send appends the user message optimistically and then the reply. On
// failure the user message stays in the sequence.
func (m *ConversationManager) Send(ctx context.Context, text string) (domain.Message, error) {
	if strings.TrimSpace(text) == "" {
		return domain.Message{}, domain.ErrEmptyInput
	}

	m.mu.Lock()
	assistant := m.active
	view := m.viewLocked(assistant)
	if view.inFlight {
		m.mu.Unlock()
		return domain.Message{}, domain.ErrBusy
	}
	view.inFlight = true
	view.messages = append(view.messages, domain.Message{
		Role:      domain.RoleUser,
		Content:   text,
		Timestamp: m.clock.Now(),
	})
	m.mu.Unlock()

	reply, err := m.chat.SendChat(ctx, assistant, text)

	m.mu.Lock()
	view.inFlight = false
	if err != nil {
		m.mu.Unlock()
		return domain.Message{}, fmt.Errorf("send chat message: %w", err)
	}
	message := domain.Message{
		Role:      domain.RoleAssistant,
		Content:   reply.Content,
		Timestamp: m.clock.Now(),
	}
	view.messages = append(view.messages, message)
	m.mu.Unlock()

	if err := m.Reload(ctx, assistant); err != nil {
		m.logger.Warn("reconcile conversation after send", "assistant", assistant, "error", err)
	}

	return message, nil
}

// Clear empties the active sequence locally. Server history is untouched.
func (m *ConversationManager) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.viewLocked(m.active).messages = nil
}

// Export renders the active sequence as a transcript. It needs a server-side
// conversation for the active assistant.
func (m *ConversationManager) Export() (ConversationExport, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	view := m.viewLocked(m.active)
	if view.conversation == nil {
		return ConversationExport{}, domain.ErrNothingToExport
	}

	blocks := make([]string, 0, len(view.messages))
	for _, msg := range view.messages {
		blocks = append(blocks, fmt.Sprintf("[%s] %s: %s",
			msg.Timestamp.In(m.location).Format(exportTimestampLayout),
			msg.Speaker(m.active),
			msg.Content,
		))
	}

	return ConversationExport{
		FileName: exportFileName(m.active, m.clock.Now()),
		Content:  strings.Join(blocks, "\n\n"),
	}, nil
}

func (m *ConversationManager) viewLocked(assistant domain.AssistantType) *assistantView {
	view, ok := m.views[assistant]
	if !ok {
		view = &assistantView{}
		m.views[assistant] = view
	}
	return view
}

func exportFileName(assistant domain.AssistantType, now time.Time) string {
	slug := strings.Join(strings.Fields(strings.ToLower(assistant.DisplayName())), "-")
	return fmt.Sprintf("conversacion-%s-%s.txt", slug, now.UTC().Format("2006-01-02"))
}

func cloneMessages(messages []domain.Message) []domain.Message {
	if len(messages) == 0 {
		return nil
	}
	out := make([]domain.Message, len(messages))
	copy(out, messages)
	return out
}
