// ABOUTME: Data models for operations console entities
// ABOUTME: Defines Lead, Booking, Message, InventoryItem, and related structs
package models

import (
	"time"

	"github.com/google/uuid"
)

// SystemSender is the distinguished sender identity for automated messages.
// Messages authored by it never re-trigger the message automation.
const SystemSender = "system"

// LeadStatus constants.
const (
	LeadStatusNew       = "new"
	LeadStatusContacted = "contacted"
	LeadStatusQualified = "qualified"
	LeadStatusProposal  = "proposal"
	LeadStatusWon       = "won"
	LeadStatusLost      = "lost"
)

type Lead struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	Phone          string    `json:"phone,omitempty"`
	Company        string    `json:"company,omitempty"`
	Status         string    `json:"status"`
	Source         string    `json:"source,omitempty"`
	Notes          string    `json:"notes,omitempty"`
	Starred        bool      `json:"starred,omitempty"`
	Archived       bool      `json:"archived,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	LastActivityAt time.Time `json:"last_activity_at"`
}

// BookingStatus constants.
const (
	BookingStatusPending   = "pending"
	BookingStatusConfirmed = "confirmed"
	BookingStatusCompleted = "completed"
	BookingStatusCancelled = "cancelled"
)

type Booking struct {
	ID        uuid.UUID  `json:"id"`
	LeadID    uuid.UUID  `json:"lead_id"`
	ServiceID uuid.UUID  `json:"service_id"`
	Date      string     `json:"date"`     // YYYY-MM-DD
	Time      string     `json:"time"`     // HH:mm
	Duration  int        `json:"duration"` // in minutes
	Status    string     `json:"status"`
	StaffID   *uuid.UUID `json:"staff_id,omitempty"`
	Notes     string     `json:"notes,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}

type Attachment struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
	URL  string    `json:"url"`
	Type string    `json:"type"`
	Size int64     `json:"size"`
}

type Message struct {
	ID          uuid.UUID    `json:"id"`
	LeadID      uuid.UUID    `json:"lead_id"`
	SenderID    string       `json:"sender_id"` // SystemSender or a user id
	Content     string       `json:"content"`
	Attachments []Attachment `json:"attachments,omitempty"`
	CreatedAt   time.Time    `json:"created_at"`
	ReadAt      *time.Time   `json:"read_at,omitempty"`
}

// IsSystem reports whether the message was authored by automation.
func (m *Message) IsSystem() bool {
	return m.SenderID == SystemSender
}

// StockStatus constants.
const (
	StockInStock    = "in_stock"
	StockLowStock   = "low_stock"
	StockOutOfStock = "out_of_stock"
)

// StockStatusFor derives the inventory status from quantity and threshold.
// Every mutation path must go through this function; status is never
// assigned independently.
func StockStatusFor(quantity, threshold int) string {
	switch {
	case quantity == 0:
		return StockOutOfStock
	case quantity <= threshold:
		return StockLowStock
	default:
		return StockInStock
	}
}

type InventoryItem struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	SKU         string    `json:"sku"`
	Category    string    `json:"category,omitempty"`
	Quantity    int       `json:"quantity"`
	Threshold   int       `json:"threshold"`
	Status      string    `json:"status"` // derived, see StockStatusFor
	LastUpdated time.Time `json:"last_updated"`
}

// ActivityType constants.
const (
	ActivityLead    = "lead"
	ActivityBooking = "booking"
	ActivityMessage = "message"
	ActivitySystem  = "system"
)

type ActivityItem struct {
	ID          string                 `json:"id"` // ULID, sortable by creation time
	Type        string                 `json:"type"`
	Title       string                 `json:"title"`
	Description string                 `json:"description,omitempty"`
	Timestamp   time.Time              `json:"timestamp"`
	Metadata    map[string]interface{} `json:"metadata,omitempty"`
}

// UserRole constants.
const (
	RoleOwner   = "owner"
	RoleManager = "manager"
	RoleStaff   = "staff"
)

type User struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	AvatarURL string    `json:"avatar_url,omitempty"`
}

type Service struct {
	ID           uuid.UUID  `json:"id"`
	Name         string     `json:"name"`
	Description  string     `json:"description,omitempty"`
	Duration     int        `json:"duration"` // minutes
	Price        int64      `json:"price"`    // in cents, 0 for free
	IntakeFormID *uuid.UUID `json:"intake_form_id,omitempty"`
}

type Availability struct {
	Days  []string `json:"days"`  // e.g. ["Mon", "Tue", "Wed"]
	Start string   `json:"start"` // HH:mm
	End   string   `json:"end"`   // HH:mm
}

type Integrations struct {
	EmailProvider bool `json:"email_provider"`
	SMSProvider   bool `json:"sms_provider"`
	Calendar      bool `json:"calendar"`
}

// BusinessSettings is the singleton configuration row. ContactEmail is the
// delivery target for admin notifications raised by automation.
type BusinessSettings struct {
	BusinessName string       `json:"business_name"`
	ContactEmail string       `json:"contact_email"`
	ContactPhone string       `json:"contact_phone,omitempty"`
	Currency     string       `json:"currency"`
	Availability Availability `json:"availability"`
	Integrations Integrations `json:"integrations"`
}

// FormField type constants.
const (
	FieldText     = "text"
	FieldEmail    = "email"
	FieldTextarea = "textarea"
	FieldCheckbox = "checkbox"
	FieldDate     = "date"
	FieldPhone    = "phone"
)

type FormField struct {
	ID       string   `json:"id"`
	Type     string   `json:"type"`
	Label    string   `json:"label"`
	Required bool     `json:"required"`
	Options  []string `json:"options,omitempty"`
}

// Form type constants.
const (
	FormContact = "contact"
	FormIntake  = "intake"
)

type Form struct {
	ID          uuid.UUID   `json:"id"`
	Title       string      `json:"title"`
	Description string      `json:"description,omitempty"`
	Type        string      `json:"type"`
	Fields      []FormField `json:"fields"`
	Published   bool        `json:"published"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}

type FormSubmission struct {
	ID          uuid.UUID              `json:"id"`
	FormID      uuid.UUID              `json:"form_id"`
	LeadID      *uuid.UUID             `json:"lead_id,omitempty"`
	Data        map[string]interface{} `json:"data"`
	SubmittedAt time.Time              `json:"submitted_at"`
}
