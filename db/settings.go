// ABOUTME: Business settings database operations
// ABOUTME: Handles the singleton settings row with JSON sub-documents
package db

import (
	"database/sql"
	"encoding/json"

	"github.com/harperreed/careops/models"
)

// GetSettings returns the singleton settings row, or defaults when the row
// has never been written.
func GetSettings(db *sql.DB) (*models.BusinessSettings, error) {
	settings := &models.BusinessSettings{
		Currency: "USD",
		Availability: models.Availability{
			Start: "09:00",
			End:   "17:00",
		},
	}

	var availabilityJSON, integrationsJSON string
	var contactPhone sql.NullString

	err := db.QueryRow(`
		SELECT business_name, contact_email, contact_phone, currency, availability, integrations
		FROM settings WHERE id = 1
	`).Scan(&settings.BusinessName, &settings.ContactEmail, &contactPhone, &settings.Currency, &availabilityJSON, &integrationsJSON)

	if err == sql.ErrNoRows {
		return settings, nil
	}
	if err != nil {
		return nil, err
	}

	if contactPhone.Valid {
		settings.ContactPhone = contactPhone.String
	}
	if availabilityJSON != "" && availabilityJSON != "{}" {
		if err := json.Unmarshal([]byte(availabilityJSON), &settings.Availability); err != nil {
			return nil, err
		}
	}
	if integrationsJSON != "" && integrationsJSON != "{}" {
		if err := json.Unmarshal([]byte(integrationsJSON), &settings.Integrations); err != nil {
			return nil, err
		}
	}

	return settings, nil
}

func SaveSettings(db *sql.DB, settings *models.BusinessSettings) error {
	availabilityJSON, err := json.Marshal(settings.Availability)
	if err != nil {
		return err
	}
	integrationsJSON, err := json.Marshal(settings.Integrations)
	if err != nil {
		return err
	}

	_, err = db.Exec(`
		INSERT INTO settings (id, business_name, contact_email, contact_phone, currency, availability, integrations)
		VALUES (1, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			business_name = excluded.business_name,
			contact_email = excluded.contact_email,
			contact_phone = excluded.contact_phone,
			currency = excluded.currency,
			availability = excluded.availability,
			integrations = excluded.integrations
	`, settings.BusinessName, settings.ContactEmail, settings.ContactPhone, settings.Currency, string(availabilityJSON), string(integrationsJSON))

	return err
}
