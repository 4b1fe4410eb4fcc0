// ABOUTME: Service catalog database operations
// ABOUTME: Handles bookable service CRUD and intake form links
package db

import (
	"database/sql"

	"github.com/google/uuid"
	"github.com/harperreed/careops/models"
)

func CreateService(db *sql.DB, service *models.Service) error {
	service.ID = uuid.New()

	var intakeFormID *string
	if service.IntakeFormID != nil {
		s := service.IntakeFormID.String()
		intakeFormID = &s
	}

	_, err := db.Exec(`
		INSERT INTO services (id, name, description, duration, price, intake_form_id)
		VALUES (?, ?, ?, ?, ?, ?)
	`, service.ID.String(), service.Name, service.Description, service.Duration, service.Price, intakeFormID)

	return err
}

func GetService(db *sql.DB, id uuid.UUID) (*models.Service, error) {
	service := &models.Service{}
	var intakeFormID sql.NullString

	err := db.QueryRow(`
		SELECT id, name, description, duration, price, intake_form_id
		FROM services WHERE id = ?
	`, id.String()).Scan(&service.ID, &service.Name, &service.Description, &service.Duration, &service.Price, &intakeFormID)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	if intakeFormID.Valid {
		fid, err := uuid.Parse(intakeFormID.String)
		if err == nil {
			service.IntakeFormID = &fid
		}
	}

	return service, nil
}

func AllServices(db *sql.DB) ([]models.Service, error) {
	rows, err := db.Query(`
		SELECT id, name, description, duration, price, intake_form_id
		FROM services
		ORDER BY name ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var services []models.Service
	for rows.Next() {
		var s models.Service
		var intakeFormID sql.NullString

		if err := rows.Scan(&s.ID, &s.Name, &s.Description, &s.Duration, &s.Price, &intakeFormID); err != nil {
			return nil, err
		}

		if intakeFormID.Valid {
			fid, err := uuid.Parse(intakeFormID.String)
			if err == nil {
				s.IntakeFormID = &fid
			}
		}

		services = append(services, s)
	}

	return services, rows.Err()
}

func UpdateService(db *sql.DB, service *models.Service) error {
	var intakeFormID *string
	if service.IntakeFormID != nil {
		s := service.IntakeFormID.String()
		intakeFormID = &s
	}

	_, err := db.Exec(`
		UPDATE services
		SET name = ?, description = ?, duration = ?, price = ?, intake_form_id = ?
		WHERE id = ?
	`, service.Name, service.Description, service.Duration, service.Price, intakeFormID, service.ID.String())

	return err
}

func DeleteService(db *sql.DB, id uuid.UUID) error {
	_, err := db.Exec(`DELETE FROM services WHERE id = ?`, id.String())
	return err
}
