package domain

import (
	"fmt"
	"strings"
	"time"
)

type AssistantType string

const (
	AssistantBibleMentor   AssistantType = "bible_mentor"
	AssistantSermonCoach   AssistantType = "sermon_coach"
	AssistantExegesisGuide AssistantType = "exegesis_guide"
)

// UserDisplayName labels the person's own messages in transcripts.
const UserDisplayName = "Usuario"

var assistantProfiles = map[AssistantType]struct {
	name        string
	description string
}{
	AssistantBibleMentor: {
		name:        "Mentor Bíblico",
		description: "Tu guía personal para interpretación bíblica y orientación pastoral",
	},
	AssistantSermonCoach: {
		name:        "Entrenador de Sermones",
		description: "Mejora tus sermones con estructura, técnicas y engagement",
	},
	AssistantExegesisGuide: {
		name:        "Guía de Exégesis",
		description: "Análisis profundo de textos bíblicos con contexto histórico",
	},
}

func AssistantTypes() []AssistantType {
	return []AssistantType{AssistantBibleMentor, AssistantSermonCoach, AssistantExegesisGuide}
}

func ParseAssistantType(raw string) (AssistantType, error) {
	t := AssistantType(strings.TrimSpace(raw))
	if !t.Valid() {
		return "", NewValidationError("assistant", fmt.Sprintf("unknown assistant %q", raw))
	}
	return t, nil
}

func (t AssistantType) Valid() bool {
	_, ok := assistantProfiles[t]
	return ok
}

func (t AssistantType) DisplayName() string {
	if p, ok := assistantProfiles[t]; ok {
		return p.name
	}
	return string(t)
}

func (t AssistantType) Description() string {
	return assistantProfiles[t].description
}

type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

type Message struct {
	Role      Role
	Content   string
	Timestamp time.Time
}

// Speaker is the transcript label for the message author.
func (m Message) Speaker(assistant AssistantType) string {
	if m.Role == RoleUser {
		return UserDisplayName
	}
	return assistant.DisplayName()
}

type ConversationID string

type Conversation struct {
	ID            ConversationID
	AssistantType AssistantType
	Messages      []Message
	CreatedAt     time.Time
}

// FindConversation returns the conversation kept for assistant, if any.
func FindConversation(conversations []Conversation, assistant AssistantType) (Conversation, bool) {
	for _, c := range conversations {
		if c.AssistantType == assistant {
			return c, true
		}
	}
	return Conversation{}, false
}

// ChatReply is the backend's answer to a chat message.
type ChatReply struct {
	Content string
}
