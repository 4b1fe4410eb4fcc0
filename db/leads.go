// ABOUTME: Lead database operations
// ABOUTME: Handles CRUD operations, status transitions, and activity bumps
package db

import (
	"database/sql"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/harperreed/careops/models"
)

func CreateLead(db *sql.DB, lead *models.Lead) error {
	lead.ID = uuid.New()
	now := time.Now()
	lead.CreatedAt = now
	lead.LastActivityAt = now
	if lead.Status == "" {
		lead.Status = models.LeadStatusNew
	}
	if lead.Source == "" {
		lead.Source = "Manual"
	}

	_, err := db.Exec(`
		INSERT INTO leads (id, name, email, phone, company, status, source, notes, starred, archived, created_at, last_activity_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, lead.ID.String(), lead.Name, lead.Email, lead.Phone, lead.Company, lead.Status, lead.Source, lead.Notes, lead.Starred, lead.Archived, lead.CreatedAt, lead.LastActivityAt)

	return err
}

func GetLead(db *sql.DB, id uuid.UUID) (*models.Lead, error) {
	lead := &models.Lead{}

	err := db.QueryRow(`
		SELECT id, name, email, phone, company, status, source, notes, starred, archived, created_at, last_activity_at
		FROM leads WHERE id = ?
	`, id.String()).Scan(
		&lead.ID,
		&lead.Name,
		&lead.Email,
		&lead.Phone,
		&lead.Company,
		&lead.Status,
		&lead.Source,
		&lead.Notes,
		&lead.Starred,
		&lead.Archived,
		&lead.CreatedAt,
		&lead.LastActivityAt,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return lead, nil
}

func FindLeads(db *sql.DB, query string, limit int) ([]models.Lead, error) {
	if limit <= 0 {
		limit = 50
	}

	var rows *sql.Rows
	var err error

	if query != "" {
		searchPattern := "%" + strings.ToLower(query) + "%"
		rows, err = db.Query(`
			SELECT id, name, email, phone, company, status, source, notes, starred, archived, created_at, last_activity_at
			FROM leads
			WHERE LOWER(name) LIKE ? OR LOWER(email) LIKE ?
			ORDER BY created_at DESC
			LIMIT ?
		`, searchPattern, searchPattern, limit)
	} else {
		rows, err = db.Query(`
			SELECT id, name, email, phone, company, status, source, notes, starred, archived, created_at, last_activity_at
			FROM leads
			ORDER BY created_at DESC
			LIMIT ?
		`, limit)
	}

	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanLeads(rows)
}

func AllLeads(db *sql.DB) ([]models.Lead, error) {
	rows, err := db.Query(`
		SELECT id, name, email, phone, company, status, source, notes, starred, archived, created_at, last_activity_at
		FROM leads
		ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanLeads(rows)
}

func scanLeads(rows *sql.Rows) ([]models.Lead, error) {
	var leads []models.Lead
	for rows.Next() {
		var l models.Lead
		if err := rows.Scan(&l.ID, &l.Name, &l.Email, &l.Phone, &l.Company, &l.Status, &l.Source, &l.Notes, &l.Starred, &l.Archived, &l.CreatedAt, &l.LastActivityAt); err != nil {
			return nil, err
		}
		leads = append(leads, l)
	}
	return leads, rows.Err()
}

// UpdateLeadStatus sets the status and bumps last_activity_at, returning the
// updated row.
func UpdateLeadStatus(db *sql.DB, id uuid.UUID, status string) (*models.Lead, error) {
	_, err := db.Exec(`
		UPDATE leads
		SET status = ?, last_activity_at = ?
		WHERE id = ?
	`, status, time.Now(), id.String())
	if err != nil {
		return nil, err
	}

	return GetLead(db, id)
}

func SetLeadStarred(db *sql.DB, id uuid.UUID, starred bool) error {
	_, err := db.Exec(`
		UPDATE leads
		SET starred = ?, last_activity_at = ?
		WHERE id = ?
	`, starred, time.Now(), id.String())

	return err
}

func SetLeadArchived(db *sql.DB, id uuid.UUID, archived bool) error {
	_, err := db.Exec(`
		UPDATE leads
		SET archived = ?, last_activity_at = ?
		WHERE id = ?
	`, archived, time.Now(), id.String())

	return err
}

// TouchLead bumps last_activity_at, used when a message arrives on the
// lead's thread.
func TouchLead(db *sql.DB, id uuid.UUID, at time.Time) error {
	_, err := db.Exec(`
		UPDATE leads
		SET last_activity_at = ?
		WHERE id = ?
	`, at, id.String())

	return err
}
