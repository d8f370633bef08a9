package repository

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kumamoto2401-netizen/document-qa/internal/model"
)

func TestTurnRepositoryAppendUnknownDocument(t *testing.T) {
	repo := NewTurnRepository(newTestDB(t))

	turn, err := repo.Append(9999, model.RoleUser, "hello?")
	assert.Nil(t, turn)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownDocument))

	// Nothing may be stored after a failed append.
	turns, err := repo.ListByDocumentID(9999)
	require.NoError(t, err)
	assert.Empty(t, turns)
}

func TestTurnRepositoryAppendOrdering(t *testing.T) {
	db := newTestDB(t)
	docRepo := NewDocumentRepository(db)
	turnRepo := NewTurnRepository(db)

	doc := &model.Document{Name: "a.txt", Content: "a"}
	require.NoError(t, docRepo.Create(doc))

	// Rapid successive appends must keep a stable total order even when
	// wall-clock timestamps collide.
	for i := 1; i <= 10; i++ {
		role := model.RoleUser
		if i%2 == 0 {
			role = model.RoleAssistant
		}
		turn, err := turnRepo.Append(doc.ID, role, fmt.Sprintf("turn %d", i))
		require.NoError(t, err)
		assert.Equal(t, uint(i), turn.Seq)
	}

	turns, err := turnRepo.ListByDocumentID(doc.ID)
	require.NoError(t, err)
	require.Len(t, turns, 10)
	for i, turn := range turns {
		assert.Equal(t, uint(i+1), turn.Seq)
		assert.Equal(t, fmt.Sprintf("turn %d", i+1), turn.Content)
	}
}

func TestTurnRepositoryListUnknownDocumentIsEmpty(t *testing.T) {
	repo := NewTurnRepository(newTestDB(t))

	turns, err := repo.ListByDocumentID(12345)
	require.NoError(t, err)
	assert.NotNil(t, turns)
	assert.Empty(t, turns)
}

func TestTurnRepositoryListRecent(t *testing.T) {
	db := newTestDB(t)
	docRepo := NewDocumentRepository(db)
	turnRepo := NewTurnRepository(db)

	doc := &model.Document{Name: "a.txt", Content: "a"}
	require.NoError(t, docRepo.Create(doc))

	for i := 1; i <= 8; i++ {
		_, err := turnRepo.Append(doc.ID, model.RoleUser, fmt.Sprintf("turn %d", i))
		require.NoError(t, err)
	}

	recent, err := turnRepo.ListRecentByDocumentID(doc.ID, 5)
	require.NoError(t, err)
	require.Len(t, recent, 5)
	// Ascending order, last five only.
	for i, turn := range recent {
		assert.Equal(t, fmt.Sprintf("turn %d", i+4), turn.Content)
	}

	// Fewer stored than requested returns all of them.
	all, err := turnRepo.ListRecentByDocumentID(doc.ID, 50)
	require.NoError(t, err)
	assert.Len(t, all, 8)

	none, err := turnRepo.ListRecentByDocumentID(doc.ID, 0)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestTurnRepositoryTurnsAreScopedByDocument(t *testing.T) {
	db := newTestDB(t)
	docRepo := NewDocumentRepository(db)
	turnRepo := NewTurnRepository(db)

	first := &model.Document{Name: "first.txt", Content: "first"}
	second := &model.Document{Name: "second.txt", Content: "second"}
	require.NoError(t, docRepo.Create(first))
	require.NoError(t, docRepo.Create(second))

	_, err := turnRepo.Append(first.ID, model.RoleUser, "about first")
	require.NoError(t, err)
	_, err = turnRepo.Append(second.ID, model.RoleUser, "about second")
	require.NoError(t, err)

	firstTurns, err := turnRepo.ListByDocumentID(first.ID)
	require.NoError(t, err)
	require.Len(t, firstTurns, 1)
	assert.Equal(t, "about first", firstTurns[0].Content)

	// Each document's sequence starts at 1.
	secondTurns, err := turnRepo.ListByDocumentID(second.ID)
	require.NoError(t, err)
	require.Len(t, secondTurns, 1)
	assert.Equal(t, uint(1), secondTurns[0].Seq)
}
