// ABOUTME: Inventory mutations with caller-side low-stock event decision
// ABOUTME: Derived status always comes from models.StockStatusFor
package store

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/harperreed/careops/events"
	"github.com/harperreed/careops/models"
)

// InventoryInput carries caller-supplied item fields; status is derived,
// never supplied.
type InventoryInput struct {
	Name      string
	SKU       string
	Category  string
	Quantity  int
	Threshold int
}

// AddInventoryItem persists a new item. No event; only quantity updates are
// eligible to raise INVENTORY_LOW.
func (s *Store) AddInventoryItem(input InventoryInput) (*models.InventoryItem, error) {
	if input.Name == "" || input.SKU == "" {
		return nil, fmt.Errorf("inventory name and sku are required")
	}

	item := &models.InventoryItem{
		Name:      input.Name,
		SKU:       input.SKU,
		Category:  input.Category,
		Quantity:  input.Quantity,
		Threshold: input.Threshold,
	}

	if err := s.p.CreateInventoryItem(item); err != nil {
		return nil, fmt.Errorf("failed to create inventory item: %w", err)
	}

	s.mu.Lock()
	s.inventory = append(s.inventory, *item)
	s.mu.Unlock()
	return item, nil
}

// UpdateInventoryQuantity sets the quantity and recomputes the derived
// status. The mutation, not the handler, decides whether the update warrants
// INVENTORY_LOW: any derived status other than in_stock does.
func (s *Store) UpdateInventoryQuantity(id uuid.UUID, quantity int) (*models.InventoryItem, error) {
	updated, err := s.p.UpdateInventoryQuantity(id, quantity)
	if err != nil {
		return nil, fmt.Errorf("failed to update inventory: %w", err)
	}

	s.mu.Lock()
	for i := range s.inventory {
		if s.inventory[i].ID == id {
			s.inventory[i] = *updated
			break
		}
	}
	s.mu.Unlock()

	if updated.Status != models.StockInStock {
		s.bus.Dispatch(events.InventoryLow, *updated)
	}
	return updated, nil
}

// DeleteInventoryItem removes the item. No event.
func (s *Store) DeleteInventoryItem(id uuid.UUID) error {
	if err := s.p.DeleteInventoryItem(id); err != nil {
		return fmt.Errorf("failed to delete inventory item: %w", err)
	}

	s.mu.Lock()
	for i := range s.inventory {
		if s.inventory[i].ID == id {
			s.inventory = append(s.inventory[:i], s.inventory[i+1:]...)
			break
		}
	}
	s.mu.Unlock()
	return nil
}
