package application

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/bnema/omp-cli/internal/domain"
	"github.com/bnema/omp-cli/internal/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var conversationNow = time.Date(2026, 3, 14, 9, 5, 3, 0, time.UTC)

func newTestConversationManager(t *testing.T) (*ConversationManager, *mocks.MockChatAPI) {
	t.Helper()

	chat := mocks.NewMockChatAPI(t)
	clock := mocks.NewMockClock(t)
	clock.EXPECT().Now().Return(conversationNow).Maybe()

	return NewConversationManager(chat, clock, time.UTC, nil), chat
}

func serverConversation(assistant domain.AssistantType, contents ...string) domain.Conversation {
	conv := domain.Conversation{ID: domain.ConversationID("c-" + string(assistant)), AssistantType: assistant}
	for i, content := range contents {
		role := domain.RoleUser
		if i%2 == 1 {
			role = domain.RoleAssistant
		}
		conv.Messages = append(conv.Messages, domain.Message{
			Role:      role,
			Content:   content,
			Timestamp: conversationNow.Add(time.Duration(i) * time.Minute),
		})
	}
	return conv
}

func TestConversationSendEmptyMakesNoRequest(t *testing.T) {
	manager, _ := newTestConversationManager(t)

	_, err := manager.Send(context.Background(), "   ")
	assert.ErrorIs(t, err, domain.ErrEmptyInput)
	assert.Empty(t, manager.Messages())
}

func TestConversationSendAppendsReplyAndReconciles(t *testing.T) {
	manager, chat := newTestConversationManager(t)
	server := serverConversation(domain.AssistantBibleMentor, "¿Qué es la gracia?", "La gracia es...")

	chat.EXPECT().SendChat(mockAnyContext(), domain.AssistantBibleMentor, "¿Qué es la gracia?").
		Return(domain.ChatReply{Content: "La gracia es..."}, nil).Once()
	chat.EXPECT().ListConversations(mockAnyContext()).Return([]domain.Conversation{server}, nil).Once()

	reply, err := manager.Send(context.Background(), "¿Qué es la gracia?")
	require.NoError(t, err)
	assert.Equal(t, domain.RoleAssistant, reply.Role)
	assert.Equal(t, "La gracia es...", reply.Content)
	assert.Equal(t, server.Messages, manager.Messages())
	assert.False(t, manager.Pending())
}

func TestConversationSendKeepsOptimisticMessageOnFailure(t *testing.T) {
	manager, chat := newTestConversationManager(t)
	sendErr := &domain.RemoteError{Status: 500, Message: "Error communicating with AI"}

	chat.EXPECT().SendChat(mockAnyContext(), domain.AssistantBibleMentor, "hola").
		Return(domain.ChatReply{}, sendErr).Once()

	_, err := manager.Send(context.Background(), "hola")
	require.ErrorIs(t, err, sendErr)

	messages := manager.Messages()
	require.Len(t, messages, 1)
	assert.Equal(t, domain.RoleUser, messages[0].Role)
	assert.Equal(t, "hola", messages[0].Content)
	assert.False(t, manager.Pending())
}

func TestConversationSendIgnoresReconcileFailure(t *testing.T) {
	manager, chat := newTestConversationManager(t)

	chat.EXPECT().SendChat(mockAnyContext(), domain.AssistantBibleMentor, "hola").
		Return(domain.ChatReply{Content: "paz"}, nil).Once()
	chat.EXPECT().ListConversations(mockAnyContext()).Return(nil, errors.New("boom")).Once()

	_, err := manager.Send(context.Background(), "hola")
	require.NoError(t, err)

	messages := manager.Messages()
	require.Len(t, messages, 2)
	assert.Equal(t, "paz", messages[1].Content)
}

func TestConversationSendWhileInFlightIsBusy(t *testing.T) {
	manager, chat := newTestConversationManager(t)
	entered := make(chan struct{})
	release := make(chan struct{})

	chat.EXPECT().SendChat(mockAnyContext(), domain.AssistantBibleMentor, "primero").
		RunAndReturn(func(context.Context, domain.AssistantType, string) (domain.ChatReply, error) {
			close(entered)
			<-release
			return domain.ChatReply{Content: "ok"}, nil
		}).Once()
	chat.EXPECT().ListConversations(mockAnyContext()).Return(nil, nil).Once()

	done := make(chan error, 1)
	go func() {
		_, err := manager.Send(context.Background(), "primero")
		done <- err
	}()

	<-entered
	assert.True(t, manager.Pending())
	_, err := manager.Send(context.Background(), "segundo")
	assert.ErrorIs(t, err, domain.ErrBusy)

	close(release)
	require.NoError(t, <-done)
}

func TestConversationSelectAssistantRejectsUnknownType(t *testing.T) {
	manager, _ := newTestConversationManager(t)

	err := manager.SelectAssistant(context.Background(), "oracle")
	var validation *domain.ValidationError
	assert.ErrorAs(t, err, &validation)
	assert.Equal(t, domain.AssistantBibleMentor, manager.Active())
}

func TestConversationClearThenSelectRestoresHistory(t *testing.T) {
	manager, chat := newTestConversationManager(t)
	server := serverConversation(domain.AssistantSermonCoach, "estructura", "introducción, cuerpo, conclusión")

	chat.EXPECT().ListConversations(mockAnyContext()).Return([]domain.Conversation{server}, nil).Twice()

	require.NoError(t, manager.SelectAssistant(context.Background(), domain.AssistantSermonCoach))
	require.Len(t, manager.Messages(), 2)

	manager.Clear()
	assert.Empty(t, manager.Messages())

	require.NoError(t, manager.SelectAssistant(context.Background(), domain.AssistantSermonCoach))
	assert.Equal(t, server.Messages, manager.Messages())
}

func TestConversationViewsAreIndependentPerAssistant(t *testing.T) {
	manager, chat := newTestConversationManager(t)
	mentor := serverConversation(domain.AssistantBibleMentor, "a", "b")
	coach := serverConversation(domain.AssistantSermonCoach, "c", "d", "e")

	chat.EXPECT().ListConversations(mockAnyContext()).Return([]domain.Conversation{mentor, coach}, nil)

	require.NoError(t, manager.SelectAssistant(context.Background(), domain.AssistantSermonCoach))
	assert.Len(t, manager.Messages(), 3)

	require.NoError(t, manager.SelectAssistant(context.Background(), domain.AssistantBibleMentor))
	assert.Len(t, manager.Messages(), 2)

	require.NoError(t, manager.SelectAssistant(context.Background(), domain.AssistantExegesisGuide))
	assert.Empty(t, manager.Messages())
}

func TestConversationStaleReloadIsDiscarded(t *testing.T) {
	manager, chat := newTestConversationManager(t)
	stale := serverConversation(domain.AssistantBibleMentor, "viejo")
	fresh := serverConversation(domain.AssistantBibleMentor, "nuevo", "respuesta")

	firstEntered := make(chan struct{})
	releaseFirst := make(chan struct{})
	chat.EXPECT().ListConversations(mockAnyContext()).
		RunAndReturn(func(context.Context) ([]domain.Conversation, error) {
			close(firstEntered)
			<-releaseFirst
			return []domain.Conversation{stale}, nil
		}).Once()
	chat.EXPECT().ListConversations(mockAnyContext()).Return([]domain.Conversation{fresh}, nil).Once()

	done := make(chan error, 1)
	go func() {
		done <- manager.Reload(context.Background(), domain.AssistantBibleMentor)
	}()
	<-firstEntered

	require.NoError(t, manager.Reload(context.Background(), domain.AssistantBibleMentor))
	close(releaseFirst)
	require.NoError(t, <-done)

	assert.Equal(t, fresh.Messages, manager.Messages())
}

func TestConversationReloadErrorKeepsMessages(t *testing.T) {
	manager, chat := newTestConversationManager(t)
	server := serverConversation(domain.AssistantBibleMentor, "a", "b")

	chat.EXPECT().ListConversations(mockAnyContext()).Return([]domain.Conversation{server}, nil).Once()
	chat.EXPECT().ListConversations(mockAnyContext()).Return(nil, &domain.NetworkError{Op: "GET /chat/conversations", Err: errors.New("offline")}).Once()

	require.NoError(t, manager.Reload(context.Background(), domain.AssistantBibleMentor))
	err := manager.Reload(context.Background(), domain.AssistantBibleMentor)
	require.Error(t, err)
	assert.Len(t, manager.Messages(), 2)
}

func TestConversationExportWithoutServerConversation(t *testing.T) {
	manager, chat := newTestConversationManager(t)

	_, err := manager.Export()
	assert.ErrorIs(t, err, domain.ErrNothingToExport)

	chat.EXPECT().ListConversations(mockAnyContext()).Return([]domain.Conversation{
		serverConversation(domain.AssistantSermonCoach, "x"),
	}, nil).Once()
	require.NoError(t, manager.SelectAssistant(context.Background(), domain.AssistantExegesisGuide))

	_, err = manager.Export()
	assert.ErrorIs(t, err, domain.ErrNothingToExport)
}

func TestConversationExportFormatsTranscript(t *testing.T) {
	manager, chat := newTestConversationManager(t)
	server := serverConversation(domain.AssistantExegesisGuide, "Juan 1:1", "En el principio era el Verbo")

	chat.EXPECT().ListConversations(mockAnyContext()).Return([]domain.Conversation{server}, nil).Once()
	require.NoError(t, manager.SelectAssistant(context.Background(), domain.AssistantExegesisGuide))

	export, err := manager.Export()
	require.NoError(t, err)
	assert.Equal(t, "conversacion-guía-de-exégesis-2026-03-14.txt", export.FileName)
	assert.Equal(t,
		"[14/3/2026, 09:05:03] Usuario: Juan 1:1\n\n[14/3/2026, 09:06:03] Guía de Exégesis: En el principio era el Verbo",
		export.Content,
	)
}
