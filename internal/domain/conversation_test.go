package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAssistantType(t *testing.T) {
	for _, assistant := range AssistantTypes() {
		got, err := ParseAssistantType(string(assistant))
		require.NoError(t, err)
		assert.Equal(t, assistant, got)
		assert.NotEmpty(t, got.Description())
	}

	_, err := ParseAssistantType("oracle")
	var validation *ValidationError
	assert.ErrorAs(t, err, &validation)
}

func TestMessageSpeaker(t *testing.T) {
	assert.Equal(t, "Usuario", Message{Role: RoleUser}.Speaker(AssistantSermonCoach))
	assert.Equal(t, "Entrenador de Sermones", Message{Role: RoleAssistant}.Speaker(AssistantSermonCoach))
	assert.Equal(t, "Guía de Exégesis", AssistantExegesisGuide.DisplayName())
}

func TestFindConversation(t *testing.T) {
	list := []Conversation{
		{ID: "c1", AssistantType: AssistantBibleMentor},
		{ID: "c2", AssistantType: AssistantSermonCoach},
	}

	got, ok := FindConversation(list, AssistantSermonCoach)
	require.True(t, ok)
	assert.Equal(t, ConversationID("c2"), got.ID)

	_, ok = FindConversation(list, AssistantExegesisGuide)
	assert.False(t, ok)
}
