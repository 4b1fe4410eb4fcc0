// ABOUTME: Activity log database operations
// ABOUTME: Append-only audit trail with a capped read-side window
package db

import (
	"database/sql"
	"encoding/json"
	"math/rand"
	"time"

	"github.com/harperreed/careops/models"
	"github.com/oklog/ulid/v2"
)

// RecentActivityLimit is the display window for the activity feed. Storage
// itself is uncapped.
const RecentActivityLimit = 50

func newActivityID() string {
	entropy := ulid.Monotonic(rand.New(rand.NewSource(time.Now().UnixNano())), 0)
	return ulid.MustNew(ulid.Timestamp(time.Now()), entropy).String()
}

func LogActivity(db *sql.DB, item *models.ActivityItem) error {
	item.ID = newActivityID()
	item.Timestamp = time.Now()

	metadataJSON, err := json.Marshal(item.Metadata)
	if err != nil {
		return err
	}

	_, err = db.Exec(`
		INSERT INTO activity_log (id, type, title, description, timestamp, metadata)
		VALUES (?, ?, ?, ?, ?, ?)
	`, item.ID, item.Type, item.Title, item.Description, item.Timestamp, string(metadataJSON))

	return err
}

// RecentActivity returns the newest entries, most recent first. A limit of 0
// or less uses RecentActivityLimit.
func RecentActivity(db *sql.DB, limit int) ([]models.ActivityItem, error) {
	if limit <= 0 {
		limit = RecentActivityLimit
	}

	rows, err := db.Query(`
		SELECT id, type, title, description, timestamp, metadata
		FROM activity_log
		ORDER BY timestamp DESC, id DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []models.ActivityItem
	for rows.Next() {
		var a models.ActivityItem
		var metadataJSON sql.NullString

		if err := rows.Scan(&a.ID, &a.Type, &a.Title, &a.Description, &a.Timestamp, &metadataJSON); err != nil {
			return nil, err
		}

		if metadataJSON.Valid && metadataJSON.String != "" && metadataJSON.String != "null" {
			if err := json.Unmarshal([]byte(metadataJSON.String), &a.Metadata); err != nil {
				return nil, err
			}
		}

		items = append(items, a)
	}

	return items, rows.Err()
}
