package repository

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kumamoto2401-netizen/document-qa/internal/model"
)

func TestDocumentRepositoryGetCurrentEmpty(t *testing.T) {
	repo := NewDocumentRepository(newTestDB(t))

	doc, err := repo.GetCurrent()
	require.NoError(t, err)
	assert.Nil(t, doc)
}

func TestDocumentRepositoryPutThenGetCurrent(t *testing.T) {
	repo := NewDocumentRepository(newTestDB(t))

	doc := &model.Document{Name: "notes.txt", Content: "The sky is blue."}
	require.NoError(t, repo.Create(doc))
	require.NotZero(t, doc.ID)

	current, err := repo.GetCurrent()
	require.NoError(t, err)
	require.NotNil(t, current)
	assert.Equal(t, "notes.txt", current.Name)
	assert.Equal(t, "The sky is blue.", current.Content)
}

func TestDocumentRepositoryNewUploadBecomesCurrent(t *testing.T) {
	repo := NewDocumentRepository(newTestDB(t))

	require.NoError(t, repo.Create(&model.Document{Name: "first.txt", Content: "first"}))
	second := &model.Document{Name: "second.txt", Content: "second"}
	require.NoError(t, repo.Create(second))

	current, err := repo.GetCurrent()
	require.NoError(t, err)
	require.NotNil(t, current)
	assert.Equal(t, second.ID, current.ID)
	assert.Equal(t, "second.txt", current.Name)
}

func TestDocumentRepositorySurvivesRestart(t *testing.T) {
	path := filepath.Join(t.TempDir(), "restart_test.db")

	db := openTestDB(t, path)
	repo := NewDocumentRepository(db)
	require.NoError(t, repo.Create(&model.Document{Name: "durable.txt", Content: "still here"}))
	closeTestDB(t, db)

	// Reopen the same file as a fresh process would.
	db2 := openTestDB(t, path)
	defer closeTestDB(t, db2)

	current, err := NewDocumentRepository(db2).GetCurrent()
	require.NoError(t, err)
	require.NotNil(t, current)
	assert.Equal(t, "durable.txt", current.Name)
	assert.Equal(t, "still here", current.Content)
}

func TestDocumentRepositoryExists(t *testing.T) {
	repo := NewDocumentRepository(newTestDB(t))

	doc := &model.Document{Name: "a.txt", Content: "a"}
	require.NoError(t, repo.Create(doc))

	ok, err := repo.Exists(doc.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = repo.Exists(doc.ID + 100)
	require.NoError(t, err)
	assert.False(t, ok)
}
