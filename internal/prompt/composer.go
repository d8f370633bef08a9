// Package prompt builds the completion-request string sent to the
// completion gateway. Composition is a pure function of its inputs so the
// same document, window, and question always produce a byte-identical
// prompt.
package prompt

import (
	"strings"

	"github.com/kumamoto2401-netizen/document-qa/internal/model"
)

// DefaultRecentTurns is how many prior turns are carried into each prompt
// unless configured otherwise.
const DefaultRecentTurns = 5

const instruction = "You are a helpful assistant. Answer the question using only the reference document below. " +
	"If the document does not contain the answer, say so."

const (
	userLabel      = "User"
	assistantLabel = "Assistant"
)

// RoleLabel maps a stored turn role to its display label. Unrecognized
// roles fall back to the user label.
func RoleLabel(role string) string {
	if role == model.RoleAssistant {
		return assistantLabel
	}
	return userLabel
}

// Compose renders one completion request: the fixed instruction, the full
// document verbatim, the caller-truncated window of prior turns in
// ascending order, and the new question followed by an open assistant
// label for the model to complete.
func Compose(documentContent string, recentTurns []model.Turn, question string) string {
	var b strings.Builder

	b.WriteString(instruction)
	b.WriteString("\n\nDocument:\n")
	b.WriteString(documentContent)
	b.WriteString("\n")

	if len(recentTurns) > 0 {
		b.WriteString("\nConversation so far:\n")
		for _, t := range recentTurns {
			b.WriteString(RoleLabel(t.Role))
			b.WriteString(": ")
			b.WriteString(t.Content)
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(userLabel)
	b.WriteString(": ")
	b.WriteString(question)
	b.WriteString("\n")
	b.WriteString(assistantLabel)
	b.WriteString(":")

	return b.String()
}
