package app

import (
	"errors"
	"strings"

	"github.com/kumamoto2401-netizen/document-qa/internal/model"
	"github.com/kumamoto2401-netizen/document-qa/internal/repository"
)

var ErrItemNotFound = errors.New("inventory item not found")

// InventoryService backs the editable inventory dashboard.
type InventoryService struct {
	repo *repository.InventoryRepository
}

func NewInventoryService(repo *repository.InventoryRepository) *InventoryService {
	return &InventoryService{repo: repo}
}

type InventoryItemInput struct {
	ItemName     string  `json:"item_name"`
	Price        float64 `json:"price"`
	UnitsSold    int     `json:"units_sold"`
	UnitsLeft    int     `json:"units_left"`
	CostPrice    float64 `json:"cost_price"`
	ReorderPoint int     `json:"reorder_point"`
	Description  string  `json:"description"`
}

func (s *InventoryService) CreateItem(input InventoryItemInput) (*model.InventoryItem, error) {
	name := strings.TrimSpace(input.ItemName)
	if name == "" {
		return nil, ErrInvalidInput
	}
	if input.Price < 0 || input.UnitsSold < 0 || input.UnitsLeft < 0 || input.ReorderPoint < 0 {
		return nil, ErrInvalidInput
	}

	item := &model.InventoryItem{
		ItemName:     name,
		Price:        input.Price,
		UnitsSold:    input.UnitsSold,
		UnitsLeft:    input.UnitsLeft,
		CostPrice:    input.CostPrice,
		ReorderPoint: input.ReorderPoint,
		Description:  strings.TrimSpace(input.Description),
	}
	if err := s.repo.Create(item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *InventoryService) ListItems() ([]model.InventoryItem, error) {
	return s.repo.List()
}

// UpdateItem replaces every editable field of an item; the id itself is
// immutable.
func (s *InventoryService) UpdateItem(id uint, input InventoryItemInput) (*model.InventoryItem, error) {
	if id == 0 {
		return nil, ErrInvalidInput
	}
	name := strings.TrimSpace(input.ItemName)
	if name == "" {
		return nil, ErrInvalidInput
	}

	item, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, ErrItemNotFound
	}

	item.ItemName = name
	item.Price = input.Price
	item.UnitsSold = input.UnitsSold
	item.UnitsLeft = input.UnitsLeft
	item.CostPrice = input.CostPrice
	item.ReorderPoint = input.ReorderPoint
	item.Description = strings.TrimSpace(input.Description)

	if err := s.repo.Update(item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *InventoryService) DeleteItem(id uint) error {
	if id == 0 {
		return ErrInvalidInput
	}
	item, err := s.repo.GetByID(id)
	if err != nil {
		return err
	}
	if item == nil {
		return ErrItemNotFound
	}
	return s.repo.DeleteByID(id)
}

// ReorderAlerts returns the items running below their reorder point.
func (s *InventoryService) ReorderAlerts() ([]model.InventoryItem, error) {
	return s.repo.ListBelowReorderPoint()
}

// SeedIfEmpty inserts the starter dataset when the table has no rows.
func (s *InventoryService) SeedIfEmpty() error {
	count, err := s.repo.Count()
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	for i := range seedItems {
		item := seedItems[i]
		if err := s.repo.Create(&item); err != nil {
			return err
		}
	}
	return nil
}

var seedItems = []model.InventoryItem{
	{ItemName: "Bottled Water (500ml)", Price: 1.50, UnitsSold: 115, UnitsLeft: 15, CostPrice: 0.80, ReorderPoint: 16, Description: "Hydrating bottled water"},
	{ItemName: "Soda (355ml)", Price: 2.00, UnitsSold: 93, UnitsLeft: 8, CostPrice: 1.20, ReorderPoint: 10, Description: "Carbonated soft drink"},
	{ItemName: "Energy Drink (250ml)", Price: 2.50, UnitsSold: 12, UnitsLeft: 18, CostPrice: 1.50, ReorderPoint: 8, Description: "High-caffeine energy drink"},
	{ItemName: "Coffee (hot, large)", Price: 2.75, UnitsSold: 11, UnitsLeft: 14, CostPrice: 1.80, ReorderPoint: 5, Description: "Freshly brewed hot coffee"},
	{ItemName: "Potato Chips (small)", Price: 2.00, UnitsSold: 34, UnitsLeft: 16, CostPrice: 1.00, ReorderPoint: 10, Description: "Salted and crispy potato chips"},
	{ItemName: "Candy Bar", Price: 1.50, UnitsSold: 6, UnitsLeft: 19, CostPrice: 0.80, ReorderPoint: 15, Description: "Chocolate and candy bar"},
	{ItemName: "Granola Bar", Price: 2.25, UnitsSold: 3, UnitsLeft: 12, CostPrice: 1.30, ReorderPoint: 8, Description: "Healthy and nutritious granola bar"},
	{ItemName: "Toothpaste", Price: 3.50, UnitsSold: 1, UnitsLeft: 9, CostPrice: 2.00, ReorderPoint: 5, Description: "Minty toothpaste for oral hygiene"},
	{ItemName: "Batteries (AA, pack of 4)", Price: 4.00, UnitsSold: 1, UnitsLeft: 5, CostPrice: 2.50, ReorderPoint: 3, Description: "Pack of 4 AA batteries"},
	{ItemName: "Light Bulbs (LED, 2-pack)", Price: 6.00, UnitsSold: 3, UnitsLeft: 3, CostPrice: 4.00, ReorderPoint: 2, Description: "Energy-efficient LED light bulbs"},
	{ItemName: "Trash Bags (small, 10-pack)", Price: 3.00, UnitsSold: 5, UnitsLeft: 10, CostPrice: 2.00, ReorderPoint: 5, Description: "Small trash bags for everyday use"},
	{ItemName: "Newspaper", Price: 1.50, UnitsSold: 22, UnitsLeft: 20, CostPrice: 1.00, ReorderPoint: 5, Description: "Daily newspaper"},
}
