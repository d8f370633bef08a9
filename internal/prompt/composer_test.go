package prompt

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kumamoto2401-netizen/document-qa/internal/model"
)

func TestComposeDeterministic(t *testing.T) {
	turns := []model.Turn{
		{Role: model.RoleUser, Content: "What color is the sky?"},
		{Role: model.RoleAssistant, Content: "The document says it is blue."},
	}

	first := Compose("The sky is blue.", turns, "Is that always true?")
	for i := 0; i < 10; i++ {
		again := Compose("The sky is blue.", turns, "Is that always true?")
		require.Equal(t, first, again)
	}
}

func TestComposeContainsDocumentAndQuestion(t *testing.T) {
	out := Compose("The sky is blue.", nil, "What color is the sky?")

	assert.Contains(t, out, "The sky is blue.")
	assert.Contains(t, out, "User: What color is the sky?")
	assert.True(t, strings.HasSuffix(out, "Assistant:"), "prompt must end with an open assistant label")
}

func TestComposeRendersTurnsInOrder(t *testing.T) {
	turns := []model.Turn{
		{Role: model.RoleUser, Content: "first question"},
		{Role: model.RoleAssistant, Content: "first answer"},
		{Role: model.RoleUser, Content: "second question"},
	}

	out := Compose("doc body", turns, "third question")

	iq1 := strings.Index(out, "User: first question")
	ia1 := strings.Index(out, "Assistant: first answer")
	iq2 := strings.Index(out, "User: second question")
	iq3 := strings.Index(out, "User: third question")

	require.NotEqual(t, -1, iq1)
	require.NotEqual(t, -1, ia1)
	require.NotEqual(t, -1, iq2)
	require.NotEqual(t, -1, iq3)
	assert.Less(t, iq1, ia1)
	assert.Less(t, ia1, iq2)
	assert.Less(t, iq2, iq3)
}

func TestComposeWindowExcludesOlderTurns(t *testing.T) {
	// The caller truncates to the window; Compose must render exactly what
	// it is given and nothing else.
	var window []model.Turn
	for i := 8; i <= 12; i++ {
		role := model.RoleUser
		if i%2 == 0 {
			role = model.RoleAssistant
		}
		window = append(window, model.Turn{Role: role, Content: fmt.Sprintf("turn number %d", i)})
	}

	out := Compose("doc body", window, "new question")

	for i := 8; i <= 12; i++ {
		assert.Contains(t, out, fmt.Sprintf("turn number %d", i))
	}
	assert.NotContains(t, out, "turn number 1\n")
	assert.NotContains(t, out, "turn number 7")
}

func TestComposeOmitsConversationSectionWhenEmpty(t *testing.T) {
	out := Compose("doc body", nil, "hello")
	assert.NotContains(t, out, "Conversation so far:")
}

func TestRoleLabel(t *testing.T) {
	assert.Equal(t, "User", RoleLabel(model.RoleUser))
	assert.Equal(t, "Assistant", RoleLabel(model.RoleAssistant))
	assert.Equal(t, "User", RoleLabel("something-else"))
}

func TestDefaultRecentTurns(t *testing.T) {
	assert.Equal(t, 5, DefaultRecentTurns)
}
