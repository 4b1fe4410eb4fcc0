// ABOUTME: Message database operations
// ABOUTME: Handles the append-only message log and read receipts
package db

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/harperreed/careops/models"
)

// CreateMessage appends a message to the lead's thread and bumps the lead's
// last_activity_at in the same transaction.
func CreateMessage(db *sql.DB, message *models.Message) error {
	lead, err := GetLead(db, message.LeadID)
	if err != nil {
		return fmt.Errorf("failed to lookup lead: %w", err)
	}
	if lead == nil {
		return fmt.Errorf("lead not found: %s", message.LeadID)
	}

	message.ID = uuid.New()
	message.CreatedAt = time.Now()

	attachmentsJSON, err := json.Marshal(message.Attachments)
	if err != nil {
		return err
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback() // Safe even after commit
	}()

	_, err = tx.Exec(`
		INSERT INTO messages (id, lead_id, sender_id, content, attachments, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`, message.ID.String(), message.LeadID.String(), message.SenderID, message.Content, string(attachmentsJSON), message.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert message: %w", err)
	}

	_, err = tx.Exec(`
		UPDATE leads SET last_activity_at = ? WHERE id = ?
	`, message.CreatedAt, message.LeadID.String())
	if err != nil {
		return fmt.Errorf("failed to bump lead activity: %w", err)
	}

	return tx.Commit()
}

func FindMessages(db *sql.DB, leadID *uuid.UUID) ([]models.Message, error) {
	var rows *sql.Rows
	var err error

	if leadID != nil {
		rows, err = db.Query(`
			SELECT id, lead_id, sender_id, content, attachments, created_at, read_at
			FROM messages
			WHERE lead_id = ?
			ORDER BY created_at ASC
		`, leadID.String())
	} else {
		rows, err = db.Query(`
			SELECT id, lead_id, sender_id, content, attachments, created_at, read_at
			FROM messages
			ORDER BY created_at DESC
		`)
	}

	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var messages []models.Message
	for rows.Next() {
		var m models.Message
		var attachmentsJSON sql.NullString

		if err := rows.Scan(&m.ID, &m.LeadID, &m.SenderID, &m.Content, &attachmentsJSON, &m.CreatedAt, &m.ReadAt); err != nil {
			return nil, err
		}

		if attachmentsJSON.Valid && attachmentsJSON.String != "" {
			if err := json.Unmarshal([]byte(attachmentsJSON.String), &m.Attachments); err != nil {
				return nil, err
			}
		}

		messages = append(messages, m)
	}

	return messages, rows.Err()
}

func MarkMessageRead(db *sql.DB, id uuid.UUID) error {
	_, err := db.Exec(`
		UPDATE messages
		SET read_at = ?
		WHERE id = ? AND read_at IS NULL
	`, time.Now(), id.String())

	return err
}
