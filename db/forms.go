// ABOUTME: Form and form submission database operations
// ABOUTME: Stores form designs as JSON field lists plus submission records
package db

import (
	"database/sql"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/harperreed/careops/models"
)

// SaveForm inserts a new form or updates an existing one by id.
func SaveForm(db *sql.DB, form *models.Form) error {
	now := time.Now()
	if form.ID == uuid.Nil {
		form.ID = uuid.New()
		form.CreatedAt = now
	}
	form.UpdatedAt = now

	fieldsJSON, err := json.Marshal(form.Fields)
	if err != nil {
		return err
	}

	_, err = db.Exec(`
		INSERT INTO forms (id, title, description, type, fields, published, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			title = excluded.title,
			description = excluded.description,
			type = excluded.type,
			fields = excluded.fields,
			published = excluded.published,
			updated_at = excluded.updated_at
	`, form.ID.String(), form.Title, form.Description, form.Type, string(fieldsJSON), form.Published, form.CreatedAt, form.UpdatedAt)

	return err
}

func AllForms(db *sql.DB) ([]models.Form, error) {
	rows, err := db.Query(`
		SELECT id, title, description, type, fields, published, created_at, updated_at
		FROM forms
		ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var forms []models.Form
	for rows.Next() {
		var f models.Form
		var fieldsJSON string

		if err := rows.Scan(&f.ID, &f.Title, &f.Description, &f.Type, &fieldsJSON, &f.Published, &f.CreatedAt, &f.UpdatedAt); err != nil {
			return nil, err
		}

		if fieldsJSON != "" {
			if err := json.Unmarshal([]byte(fieldsJSON), &f.Fields); err != nil {
				return nil, err
			}
		}

		forms = append(forms, f)
	}

	return forms, rows.Err()
}

func CreateFormSubmission(db *sql.DB, submission *models.FormSubmission) error {
	submission.ID = uuid.New()
	submission.SubmittedAt = time.Now()

	dataJSON, err := json.Marshal(submission.Data)
	if err != nil {
		return err
	}

	var leadID *string
	if submission.LeadID != nil {
		s := submission.LeadID.String()
		leadID = &s
	}

	_, err = db.Exec(`
		INSERT INTO form_submissions (id, form_id, lead_id, data, submitted_at)
		VALUES (?, ?, ?, ?, ?)
	`, submission.ID.String(), submission.FormID.String(), leadID, string(dataJSON), submission.SubmittedAt)

	return err
}
