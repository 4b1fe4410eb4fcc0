// ABOUTME: Tests for booking database operations
// ABOUTME: Covers referential validation, forced pending status, and transitions
package db

import (
	"database/sql"
	"testing"

	"github.com/google/uuid"
	"github.com/harperreed/careops/models"
)

func createTestLeadAndService(t *testing.T, db *sql.DB) (*models.Lead, *models.Service) {
	t.Helper()

	lead := &models.Lead{Name: "Booking Lead", Email: "booking@example.com"}
	if err := CreateLead(db, lead); err != nil {
		t.Fatalf("CreateLead failed: %v", err)
	}

	service := &models.Service{Name: "Consultation", Duration: 60, Price: 15000}
	if err := CreateService(db, service); err != nil {
		t.Fatalf("CreateService failed: %v", err)
	}

	return lead, service
}

func TestCreateBooking(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	lead, service := createTestLeadAndService(t, db)

	booking := &models.Booking{
		LeadID:    lead.ID,
		ServiceID: service.ID,
		Date:      "2026-09-01",
		Time:      "10:00",
		Duration:  60,
		Status:    models.BookingStatusConfirmed, // must be overridden
	}

	if err := CreateBooking(db, booking); err != nil {
		t.Fatalf("CreateBooking failed: %v", err)
	}

	if booking.ID == uuid.Nil {
		t.Error("Booking ID was not set")
	}
	if booking.Status != models.BookingStatusPending {
		t.Errorf("Expected status pending, got %s", booking.Status)
	}
}

func TestCreateBookingMissingLead(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	service := &models.Service{Name: "Orphan Service", Duration: 30}
	if err := CreateService(db, service); err != nil {
		t.Fatalf("CreateService failed: %v", err)
	}

	booking := &models.Booking{
		LeadID:    uuid.New(),
		ServiceID: service.ID,
		Date:      "2026-09-01",
		Time:      "10:00",
	}

	if err := CreateBooking(db, booking); err == nil {
		t.Error("Expected error for missing lead")
	}
}

func TestCreateBookingMissingService(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	lead := &models.Lead{Name: "Lonely Lead", Email: "lonely@example.com"}
	if err := CreateLead(db, lead); err != nil {
		t.Fatalf("CreateLead failed: %v", err)
	}

	booking := &models.Booking{
		LeadID:    lead.ID,
		ServiceID: uuid.New(),
		Date:      "2026-09-01",
		Time:      "10:00",
	}

	if err := CreateBooking(db, booking); err == nil {
		t.Error("Expected error for missing service")
	}
}

func TestGetBookingWithStaff(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	lead, service := createTestLeadAndService(t, db)

	staff := &models.User{Name: "Dr. Kim", Email: "kim@example.com", Role: models.RoleStaff}
	if err := CreateStaff(db, staff); err != nil {
		t.Fatalf("CreateStaff failed: %v", err)
	}

	booking := &models.Booking{
		LeadID:    lead.ID,
		ServiceID: service.ID,
		Date:      "2026-09-02",
		Time:      "11:30",
		Duration:  60,
		StaffID:   &staff.ID,
	}
	if err := CreateBooking(db, booking); err != nil {
		t.Fatalf("CreateBooking failed: %v", err)
	}

	found, err := GetBooking(db, booking.ID)
	if err != nil {
		t.Fatalf("GetBooking failed: %v", err)
	}
	if found == nil {
		t.Fatal("GetBooking returned nil for existing booking")
	}
	if found.StaffID == nil || *found.StaffID != staff.ID {
		t.Error("StaffID was not round-tripped")
	}
	if found.Time != "11:30" {
		t.Errorf("Expected time 11:30, got %s", found.Time)
	}
}

func TestAllBookingsOrderedBySlot(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	lead, service := createTestLeadAndService(t, db)

	slots := []struct{ date, tm string }{
		{"2026-09-03", "15:00"},
		{"2026-09-02", "09:00"},
		{"2026-09-03", "08:00"},
	}
	for _, s := range slots {
		booking := &models.Booking{LeadID: lead.ID, ServiceID: service.ID, Date: s.date, Time: s.tm, Duration: 30}
		if err := CreateBooking(db, booking); err != nil {
			t.Fatalf("CreateBooking failed: %v", err)
		}
	}

	bookings, err := AllBookings(db)
	if err != nil {
		t.Fatalf("AllBookings failed: %v", err)
	}
	if len(bookings) != 3 {
		t.Fatalf("Expected 3 bookings, got %d", len(bookings))
	}
	if bookings[0].Date != "2026-09-02" {
		t.Errorf("Expected earliest date first, got %s", bookings[0].Date)
	}
	if bookings[1].Time != "08:00" {
		t.Errorf("Expected 08:00 before 15:00 on same date, got %s", bookings[1].Time)
	}
}

func TestUpdateBookingStatus(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	lead, service := createTestLeadAndService(t, db)

	booking := &models.Booking{LeadID: lead.ID, ServiceID: service.ID, Date: "2026-09-04", Time: "12:00", Duration: 45}
	if err := CreateBooking(db, booking); err != nil {
		t.Fatalf("CreateBooking failed: %v", err)
	}

	updated, err := UpdateBookingStatus(db, booking.ID, models.BookingStatusConfirmed)
	if err != nil {
		t.Fatalf("UpdateBookingStatus failed: %v", err)
	}
	if updated.Status != models.BookingStatusConfirmed {
		t.Errorf("Expected status confirmed, got %s", updated.Status)
	}
}
