// ABOUTME: Booking mutations with the confirmation-only dispatch asymmetry
// ABOUTME: Creation always announces; status changes only announce confirmed
package store

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/harperreed/careops/events"
	"github.com/harperreed/careops/models"
)

// BookingInput carries caller-supplied booking fields. Bookings are always
// created pending.
type BookingInput struct {
	LeadID    uuid.UUID
	ServiceID uuid.UUID
	Date      string // YYYY-MM-DD
	Time      string // HH:mm
	Duration  int
	StaffID   *uuid.UUID
	Notes     string
}

// AddBooking persists a pending booking and dispatches BOOKING_CREATED.
func (s *Store) AddBooking(input BookingInput) (*models.Booking, error) {
	if input.Date == "" || input.Time == "" {
		return nil, fmt.Errorf("booking date and time are required")
	}

	booking := &models.Booking{
		LeadID:    input.LeadID,
		ServiceID: input.ServiceID,
		Date:      input.Date,
		Time:      input.Time,
		Duration:  input.Duration,
		StaffID:   input.StaffID,
		Notes:     input.Notes,
	}

	if err := s.p.CreateBooking(booking); err != nil {
		return nil, fmt.Errorf("failed to create booking: %w", err)
	}

	s.mu.Lock()
	s.bookings = append(s.bookings, *booking)
	s.mu.Unlock()

	s.bus.Dispatch(events.BookingCreated, *booking)
	return booking, nil
}

// UpdateBookingStatus transitions the booking's status. Only a transition to
// confirmed dispatches an event; cancellation and completion stay silent so
// that no automation runs for them.
func (s *Store) UpdateBookingStatus(id uuid.UUID, status string) (*models.Booking, error) {
	updated, err := s.p.UpdateBookingStatus(id, status)
	if err != nil {
		return nil, fmt.Errorf("failed to update booking status: %w", err)
	}
	if updated == nil {
		return nil, fmt.Errorf("booking not found: %s", id)
	}

	s.mu.Lock()
	for i := range s.bookings {
		if s.bookings[i].ID == id {
			s.bookings[i].Status = updated.Status
			break
		}
	}
	s.mu.Unlock()

	if updated.Status == models.BookingStatusConfirmed {
		s.bus.Dispatch(events.BookingConfirmed, *updated)
	}
	return updated, nil
}
