// ABOUTME: Booking database operations
// ABOUTME: Handles booking creation, lookups, and status transitions
package db

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/harperreed/careops/models"
)

// CreateBooking validates the referenced lead and service before inserting.
// New bookings always start pending.
func CreateBooking(db *sql.DB, booking *models.Booking) error {
	lead, err := GetLead(db, booking.LeadID)
	if err != nil {
		return fmt.Errorf("failed to lookup lead: %w", err)
	}
	if lead == nil {
		return fmt.Errorf("lead not found: %s", booking.LeadID)
	}

	service, err := GetService(db, booking.ServiceID)
	if err != nil {
		return fmt.Errorf("failed to lookup service: %w", err)
	}
	if service == nil {
		return fmt.Errorf("service not found: %s", booking.ServiceID)
	}

	booking.ID = uuid.New()
	booking.Status = models.BookingStatusPending
	booking.CreatedAt = time.Now()

	var staffID *string
	if booking.StaffID != nil {
		s := booking.StaffID.String()
		staffID = &s
	}

	_, err = db.Exec(`
		INSERT INTO bookings (id, lead_id, service_id, date, time, duration, status, staff_id, notes, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, booking.ID.String(), booking.LeadID.String(), booking.ServiceID.String(), booking.Date, booking.Time, booking.Duration, booking.Status, staffID, booking.Notes, booking.CreatedAt)

	return err
}

func GetBooking(db *sql.DB, id uuid.UUID) (*models.Booking, error) {
	booking := &models.Booking{}
	var staffID sql.NullString

	err := db.QueryRow(`
		SELECT id, lead_id, service_id, date, time, duration, status, staff_id, notes, created_at
		FROM bookings WHERE id = ?
	`, id.String()).Scan(
		&booking.ID,
		&booking.LeadID,
		&booking.ServiceID,
		&booking.Date,
		&booking.Time,
		&booking.Duration,
		&booking.Status,
		&staffID,
		&booking.Notes,
		&booking.CreatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	if staffID.Valid {
		sid, err := uuid.Parse(staffID.String)
		if err == nil {
			booking.StaffID = &sid
		}
	}

	return booking, nil
}

func AllBookings(db *sql.DB) ([]models.Booking, error) {
	rows, err := db.Query(`
		SELECT id, lead_id, service_id, date, time, duration, status, staff_id, notes, created_at
		FROM bookings
		ORDER BY date ASC, time ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var bookings []models.Booking
	for rows.Next() {
		var b models.Booking
		var staffID sql.NullString

		if err := rows.Scan(&b.ID, &b.LeadID, &b.ServiceID, &b.Date, &b.Time, &b.Duration, &b.Status, &staffID, &b.Notes, &b.CreatedAt); err != nil {
			return nil, err
		}

		if staffID.Valid {
			sid, err := uuid.Parse(staffID.String)
			if err == nil {
				b.StaffID = &sid
			}
		}

		bookings = append(bookings, b)
	}

	return bookings, rows.Err()
}

// UpdateBookingStatus sets the status and returns the updated row.
func UpdateBookingStatus(db *sql.DB, id uuid.UUID, status string) (*models.Booking, error) {
	_, err := db.Exec(`
		UPDATE bookings
		SET status = ?
		WHERE id = ?
	`, status, id.String())
	if err != nil {
		return nil, err
	}

	return GetBooking(db, id)
}
