// ABOUTME: Domain event type enumeration and payload contracts
// ABOUTME: Defines the closed set of automation events and composite payloads
package events

import "github.com/google/uuid"

// Type names a domain event. The set below is closed; publishers and
// subscribers agree on each event's payload shape out-of-band.
type Type string

const (
	LeadCreated       Type = "LEAD_CREATED"        // payload: models.Lead
	LeadStatusChanged Type = "LEAD_STATUS_CHANGED" // payload: events.LeadStatusChange
	BookingCreated    Type = "BOOKING_CREATED"     // payload: models.Booking
	BookingConfirmed  Type = "BOOKING_CONFIRMED"   // payload: models.Booking
	IntakeFormSent    Type = "INTAKE_FORM_SENT"    // payload: events.IntakeForm
	MessageSent       Type = "MESSAGE_SENT"        // payload: models.Message
	InventoryLow      Type = "INVENTORY_LOW"       // payload: models.InventoryItem
)

// LeadStatusChange is the payload for LeadStatusChanged.
type LeadStatusChange struct {
	ID     uuid.UUID
	Name   string
	Status string
}

// IntakeForm is the payload for IntakeFormSent. The event currently has no
// registered subscriber; it is reserved for the intake-form delivery flow.
type IntakeForm struct {
	LeadID uuid.UUID
}
