// ABOUTME: Tests for inventory database operations
// ABOUTME: Covers derived status on create and update, and deletion
package db

import (
	"testing"

	"github.com/google/uuid"
	"github.com/harperreed/careops/models"
)

func TestCreateInventoryItemDerivesStatus(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	cases := []struct {
		name     string
		quantity int
		want     string
	}{
		{"Gloves", 100, models.StockInStock},
		{"Gowns", 10, models.StockLowStock},
		{"Syringes", 0, models.StockOutOfStock},
	}

	for _, c := range cases {
		item := &models.InventoryItem{Name: c.name, SKU: c.name, Quantity: c.quantity, Threshold: 10}
		if err := CreateInventoryItem(db, item); err != nil {
			t.Fatalf("CreateInventoryItem failed: %v", err)
		}
		if item.Status != c.want {
			t.Errorf("%s: expected status %s, got %s", c.name, c.want, item.Status)
		}
	}
}

func TestUpdateInventoryQuantity(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	item := &models.InventoryItem{Name: "Bandages", SKU: "BND-1", Quantity: 50, Threshold: 10}
	if err := CreateInventoryItem(db, item); err != nil {
		t.Fatalf("CreateInventoryItem failed: %v", err)
	}

	updated, err := UpdateInventoryQuantity(db, item.ID, 8)
	if err != nil {
		t.Fatalf("UpdateInventoryQuantity failed: %v", err)
	}
	if updated.Quantity != 8 {
		t.Errorf("Expected quantity 8, got %d", updated.Quantity)
	}
	if updated.Status != models.StockLowStock {
		t.Errorf("Expected status low_stock, got %s", updated.Status)
	}

	// Verify persisted row matches
	found, err := GetInventoryItem(db, item.ID)
	if err != nil {
		t.Fatalf("GetInventoryItem failed: %v", err)
	}
	if found.Status != models.StockLowStock {
		t.Errorf("Persisted status mismatch: %s", found.Status)
	}
}

func TestUpdateInventoryQuantityMissingItem(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	if _, err := UpdateInventoryQuantity(db, uuid.New(), 5); err == nil {
		t.Error("Expected error for missing item")
	}
}

func TestDeleteInventoryItem(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	item := &models.InventoryItem{Name: "Tape", SKU: "TPE-1", Quantity: 5, Threshold: 2}
	if err := CreateInventoryItem(db, item); err != nil {
		t.Fatalf("CreateInventoryItem failed: %v", err)
	}

	if err := DeleteInventoryItem(db, item.ID); err != nil {
		t.Fatalf("DeleteInventoryItem failed: %v", err)
	}

	found, err := GetInventoryItem(db, item.ID)
	if err != nil {
		t.Fatalf("GetInventoryItem failed: %v", err)
	}
	if found != nil {
		t.Error("Expected item to be deleted")
	}
}
