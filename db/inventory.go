// ABOUTME: Inventory database operations
// ABOUTME: Quantity mutations always recompute the derived stock status
package db

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/harperreed/careops/models"
)

func CreateInventoryItem(db *sql.DB, item *models.InventoryItem) error {
	item.ID = uuid.New()
	item.Status = models.StockStatusFor(item.Quantity, item.Threshold)
	item.LastUpdated = time.Now()

	_, err := db.Exec(`
		INSERT INTO inventory_items (id, name, sku, category, quantity, threshold, status, last_updated)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, item.ID.String(), item.Name, item.SKU, item.Category, item.Quantity, item.Threshold, item.Status, item.LastUpdated)

	return err
}

func GetInventoryItem(db *sql.DB, id uuid.UUID) (*models.InventoryItem, error) {
	item := &models.InventoryItem{}

	err := db.QueryRow(`
		SELECT id, name, sku, category, quantity, threshold, status, last_updated
		FROM inventory_items WHERE id = ?
	`, id.String()).Scan(
		&item.ID,
		&item.Name,
		&item.SKU,
		&item.Category,
		&item.Quantity,
		&item.Threshold,
		&item.Status,
		&item.LastUpdated,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return item, nil
}

func AllInventoryItems(db *sql.DB) ([]models.InventoryItem, error) {
	rows, err := db.Query(`
		SELECT id, name, sku, category, quantity, threshold, status, last_updated
		FROM inventory_items
		ORDER BY name ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []models.InventoryItem
	for rows.Next() {
		var it models.InventoryItem
		if err := rows.Scan(&it.ID, &it.Name, &it.SKU, &it.Category, &it.Quantity, &it.Threshold, &it.Status, &it.LastUpdated); err != nil {
			return nil, err
		}
		items = append(items, it)
	}

	return items, rows.Err()
}

// UpdateInventoryQuantity sets the quantity, recomputes the derived status
// from the stored threshold, and returns the updated row.
func UpdateInventoryQuantity(db *sql.DB, id uuid.UUID, quantity int) (*models.InventoryItem, error) {
	item, err := GetInventoryItem(db, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, fmt.Errorf("inventory item not found: %s", id)
	}

	status := models.StockStatusFor(quantity, item.Threshold)
	now := time.Now()

	_, err = db.Exec(`
		UPDATE inventory_items
		SET quantity = ?, status = ?, last_updated = ?
		WHERE id = ?
	`, quantity, status, now, id.String())
	if err != nil {
		return nil, err
	}

	item.Quantity = quantity
	item.Status = status
	item.LastUpdated = now
	return item, nil
}

func DeleteInventoryItem(db *sql.DB, id uuid.UUID) error {
	_, err := db.Exec(`DELETE FROM inventory_items WHERE id = ?`, id.String())
	return err
}
