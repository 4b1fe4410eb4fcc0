// ABOUTME: Repo adapts the package-level database operations to the domain
// ABOUTME: store's persistence contract, binding them to one connection
package db

import (
	"database/sql"

	"github.com/google/uuid"
	"github.com/harperreed/careops/models"
)

// Repo is the SQLite-backed persistence collaborator handed to the store.
type Repo struct {
	db *sql.DB
}

func NewRepo(db *sql.DB) *Repo {
	return &Repo{db: db}
}

func (r *Repo) CreateLead(lead *models.Lead) error { return CreateLead(r.db, lead) }

func (r *Repo) UpdateLeadStatus(id uuid.UUID, status string) (*models.Lead, error) {
	return UpdateLeadStatus(r.db, id, status)
}

func (r *Repo) SetLeadStarred(id uuid.UUID, starred bool) error {
	return SetLeadStarred(r.db, id, starred)
}

func (r *Repo) SetLeadArchived(id uuid.UUID, archived bool) error {
	return SetLeadArchived(r.db, id, archived)
}

func (r *Repo) CreateBooking(booking *models.Booking) error { return CreateBooking(r.db, booking) }

func (r *Repo) UpdateBookingStatus(id uuid.UUID, status string) (*models.Booking, error) {
	return UpdateBookingStatus(r.db, id, status)
}

func (r *Repo) CreateMessage(message *models.Message) error { return CreateMessage(r.db, message) }

func (r *Repo) MarkMessageRead(id uuid.UUID) error { return MarkMessageRead(r.db, id) }

func (r *Repo) CreateInventoryItem(item *models.InventoryItem) error {
	return CreateInventoryItem(r.db, item)
}

func (r *Repo) UpdateInventoryQuantity(id uuid.UUID, quantity int) (*models.InventoryItem, error) {
	return UpdateInventoryQuantity(r.db, id, quantity)
}

func (r *Repo) DeleteInventoryItem(id uuid.UUID) error { return DeleteInventoryItem(r.db, id) }

func (r *Repo) LogActivity(item *models.ActivityItem) error { return LogActivity(r.db, item) }

func (r *Repo) CreateStaff(user *models.User) error { return CreateStaff(r.db, user) }

func (r *Repo) UpdateStaffRole(id uuid.UUID, role string) (*models.User, error) {
	return UpdateStaffRole(r.db, id, role)
}

func (r *Repo) DeleteStaff(id uuid.UUID) error { return DeleteStaff(r.db, id) }

func (r *Repo) CreateService(service *models.Service) error { return CreateService(r.db, service) }

func (r *Repo) UpdateService(service *models.Service) error { return UpdateService(r.db, service) }

func (r *Repo) DeleteService(id uuid.UUID) error { return DeleteService(r.db, id) }

func (r *Repo) SaveSettings(settings *models.BusinessSettings) error {
	return SaveSettings(r.db, settings)
}

func (r *Repo) SaveForm(form *models.Form) error { return SaveForm(r.db, form) }

func (r *Repo) CreateFormSubmission(submission *models.FormSubmission) error {
	return CreateFormSubmission(r.db, submission)
}

func (r *Repo) AllLeads() ([]models.Lead, error) { return AllLeads(r.db) }

func (r *Repo) AllBookings() ([]models.Booking, error) { return AllBookings(r.db) }

func (r *Repo) AllMessages() ([]models.Message, error) { return FindMessages(r.db, nil) }

func (r *Repo) AllInventoryItems() ([]models.InventoryItem, error) { return AllInventoryItems(r.db) }

func (r *Repo) RecentActivity(limit int) ([]models.ActivityItem, error) {
	return RecentActivity(r.db, limit)
}

func (r *Repo) AllStaff() ([]models.User, error) { return AllStaff(r.db) }

func (r *Repo) AllServices() ([]models.Service, error) { return AllServices(r.db) }

func (r *Repo) GetSettings() (*models.BusinessSettings, error) { return GetSettings(r.db) }

func (r *Repo) AllForms() ([]models.Form, error) { return AllForms(r.db) }
