package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kumamoto2401-netizen/document-qa/internal/model"
)

func TestInventoryRepositoryCRUD(t *testing.T) {
	repo := NewInventoryRepository(newTestDB(t))

	item := &model.InventoryItem{
		ItemName:     "Bottled Water (500ml)",
		Price:        1.50,
		UnitsSold:    115,
		UnitsLeft:    15,
		CostPrice:    0.80,
		ReorderPoint: 16,
		Description:  "Hydrating bottled water",
	}
	require.NoError(t, repo.Create(item))
	require.NotZero(t, item.ID)

	got, err := repo.GetByID(item.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Bottled Water (500ml)", got.ItemName)

	got.UnitsLeft = 30
	require.NoError(t, repo.Update(got))

	updated, err := repo.GetByID(item.ID)
	require.NoError(t, err)
	assert.Equal(t, 30, updated.UnitsLeft)

	require.NoError(t, repo.DeleteByID(item.ID))
	gone, err := repo.GetByID(item.ID)
	require.NoError(t, err)
	assert.Nil(t, gone)
}

func TestInventoryRepositoryListBelowReorderPoint(t *testing.T) {
	repo := NewInventoryRepository(newTestDB(t))

	low := &model.InventoryItem{ItemName: "Soda (355ml)", UnitsLeft: 8, ReorderPoint: 10}
	ok := &model.InventoryItem{ItemName: "Candy Bar", UnitsLeft: 19, ReorderPoint: 15}
	boundary := &model.InventoryItem{ItemName: "Newspaper", UnitsLeft: 5, ReorderPoint: 5}
	require.NoError(t, repo.Create(low))
	require.NoError(t, repo.Create(ok))
	require.NoError(t, repo.Create(boundary))

	alerts, err := repo.ListBelowReorderPoint()
	require.NoError(t, err)
	require.Len(t, alerts, 1)
	// Strictly below: an item sitting exactly at its reorder point is fine.
	assert.Equal(t, "Soda (355ml)", alerts[0].ItemName)
}
