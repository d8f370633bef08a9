package repository

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/kumamoto2401-netizen/document-qa/internal/model"
)

type InventoryRepository struct {
	db *gorm.DB
}

func NewInventoryRepository(db *gorm.DB) *InventoryRepository {
	return &InventoryRepository{db: db}
}

func (r *InventoryRepository) Create(item *model.InventoryItem) error {
	if err := r.db.Create(item).Error; err != nil {
		return fmt.Errorf("create inventory item failed: %w", err)
	}
	return nil
}

func (r *InventoryRepository) List() ([]model.InventoryItem, error) {
	var items []model.InventoryItem
	if err := r.db.Order("id ASC").Find(&items).Error; err != nil {
		return nil, fmt.Errorf("list inventory failed: %w", err)
	}
	return items, nil
}

func (r *InventoryRepository) GetByID(id uint) (*model.InventoryItem, error) {
	var item model.InventoryItem
	if err := r.db.First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("get inventory item failed: %w", err)
	}
	return &item, nil
}

func (r *InventoryRepository) Update(item *model.InventoryItem) error {
	if err := r.db.Save(item).Error; err != nil {
		return fmt.Errorf("update inventory item failed: %w", err)
	}
	return nil
}

func (r *InventoryRepository) DeleteByID(id uint) error {
	if err := r.db.Delete(&model.InventoryItem{}, id).Error; err != nil {
		return fmt.Errorf("delete inventory item failed: %w", err)
	}
	return nil
}

// ListBelowReorderPoint returns items whose stock has fallen below their
// reorder point.
func (r *InventoryRepository) ListBelowReorderPoint() ([]model.InventoryItem, error) {
	var items []model.InventoryItem
	if err := r.db.Where("units_left < reorder_point").Order("id ASC").Find(&items).Error; err != nil {
		return nil, fmt.Errorf("list reorder items failed: %w", err)
	}
	return items, nil
}

func (r *InventoryRepository) Count() (int64, error) {
	var count int64
	if err := r.db.Model(&model.InventoryItem{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("count inventory failed: %w", err)
	}
	return count, nil
}
