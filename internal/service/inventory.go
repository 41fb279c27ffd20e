package service

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/rasoighar/backend/internal/kitchen"
	"github.com/rasoighar/backend/internal/model"
)

// InventoryService handles inventory item operations
type InventoryService struct {
	db *gorm.DB
}

// NewInventoryService creates a new InventoryService instance
func NewInventoryService(db *gorm.DB) *InventoryService {
	return &InventoryService{db: db}
}

// ListItems returns all inventory items, newest first.
func (s *InventoryService) ListItems(ctx context.Context) ([]model.InventoryItem, error) {
	var items []model.InventoryItem
	if err := s.db.WithContext(ctx).Order("created_at DESC").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// GetItem retrieves an inventory item by ID
func (s *InventoryService) GetItem(ctx context.Context, id uuid.UUID) (*model.InventoryItem, error) {
	var item model.InventoryItem
	if err := s.db.WithContext(ctx).First(&item, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// CreateItem validates and stores a new inventory item.
func (s *InventoryService) CreateItem(ctx context.Context, item *model.InventoryItem) (*model.InventoryItem, error) {
	if err := item.Validate(); err != nil {
		return nil, err
	}
	if err := s.db.WithContext(ctx).Create(item).Error; err != nil {
		return nil, err
	}
	return item, nil
}

// UpdateItem applies changes to an existing item and returns the stored
// state.
func (s *InventoryService) UpdateItem(ctx context.Context, id uuid.UUID, item *model.InventoryItem) (*model.InventoryItem, error) {
	var existing model.InventoryItem
	if err := s.db.WithContext(ctx).First(&existing, "id = ?", id).Error; err != nil {
		return nil, err
	}

	item.ID = id
	if err := item.Validate(); err != nil {
		return nil, err
	}
	if err := s.db.WithContext(ctx).Model(&existing).Select(
		"name", "category", "current_quantity", "unit", "threshold", "perishable",
	).Updates(item).Error; err != nil {
		return nil, err
	}
	return s.GetItem(ctx, id)
}

// DeleteItem removes an inventory item by ID.
func (s *InventoryService) DeleteItem(ctx context.Context, id uuid.UUID) error {
	var item model.InventoryItem
	if err := s.db.WithContext(ctx).First(&item, "id = ?", id).Error; err != nil {
		return err
	}
	return s.db.WithContext(ctx).Delete(&item).Error
}

// PredictWaste classifies the over/under-stock risk of the whole
// inventory.
func (s *InventoryService) PredictWaste(ctx context.Context) ([]kitchen.WasteFlag, error) {
	items, err := s.ListItems(ctx)
	if err != nil {
		return nil, err
	}
	return kitchen.PredictWaste(items), nil
}
