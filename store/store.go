// ABOUTME: Domain store holding canonical in-memory state for the console
// ABOUTME: Mutations persist first, merge on success, then dispatch one event
package store

import (
	"sync"

	"github.com/google/uuid"
	"github.com/harperreed/careops/db"
	"github.com/harperreed/careops/email"
	"github.com/harperreed/careops/events"
	"github.com/harperreed/careops/models"
)

// Persister is the persistence collaborator behind every mutation. Create
// operations fill in server-assigned ids and timestamps on the passed struct;
// update operations return the canonical row. A failed call must leave no
// partial effects the store would need to compensate for.
type Persister interface {
	CreateLead(lead *models.Lead) error
	UpdateLeadStatus(id uuid.UUID, status string) (*models.Lead, error)
	SetLeadStarred(id uuid.UUID, starred bool) error
	SetLeadArchived(id uuid.UUID, archived bool) error

	CreateBooking(booking *models.Booking) error
	UpdateBookingStatus(id uuid.UUID, status string) (*models.Booking, error)

	CreateMessage(message *models.Message) error
	MarkMessageRead(id uuid.UUID) error

	CreateInventoryItem(item *models.InventoryItem) error
	UpdateInventoryQuantity(id uuid.UUID, quantity int) (*models.InventoryItem, error)
	DeleteInventoryItem(id uuid.UUID) error

	LogActivity(item *models.ActivityItem) error

	CreateStaff(user *models.User) error
	UpdateStaffRole(id uuid.UUID, role string) (*models.User, error)
	DeleteStaff(id uuid.UUID) error

	CreateService(service *models.Service) error
	UpdateService(service *models.Service) error
	DeleteService(id uuid.UUID) error

	SaveSettings(settings *models.BusinessSettings) error
	SaveForm(form *models.Form) error
	CreateFormSubmission(submission *models.FormSubmission) error

	AllLeads() ([]models.Lead, error)
	AllBookings() ([]models.Booking, error)
	AllMessages() ([]models.Message, error)
	AllInventoryItems() ([]models.InventoryItem, error)
	RecentActivity(limit int) ([]models.ActivityItem, error)
	AllStaff() ([]models.User, error)
	AllServices() ([]models.Service, error)
	GetSettings() (*models.BusinessSettings, error)
	AllForms() ([]models.Form, error)
}

var _ Persister = (*db.Repo)(nil)

// Metrics summarizes the dashboard counters derived from store state.
type Metrics struct {
	TotalLeads     int
	TotalBookings  int
	ConversionRate float64
}

// Store owns the in-memory copies of all console entities. The mutex guards
// the in-memory state only; events are dispatched after the lock is released
// so that reactions can call back into the store. Mutation flows are expected
// to run on one logical thread of control, which is what keeps the
// persist-merge-dispatch sequence atomic in practice.
type Store struct {
	mu  sync.Mutex
	p   Persister
	bus *events.Bus

	// notifier, when set, emails leads their system-authored messages.
	// Best-effort; failures are logged and swallowed.
	notifier email.Sender

	leads     []models.Lead
	bookings  []models.Booking
	messages  []models.Message
	inventory []models.InventoryItem
	activity  []models.ActivityItem
	staff     []models.User
	services  []models.Service
	forms     []models.Form
	settings  models.BusinessSettings
}

func New(p Persister, bus *events.Bus) *Store {
	return &Store{
		p:   p,
		bus: bus,
		settings: models.BusinessSettings{
			Currency: "USD",
			Availability: models.Availability{
				Start: "09:00",
				End:   "17:00",
			},
		},
	}
}

// SetNotifier installs the sender used for lead-facing copies of system
// messages.
func (s *Store) SetNotifier(sender email.Sender) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.notifier = sender
}

// Hydrate loads all entities from the persister, replacing local state.
func (s *Store) Hydrate() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	leads, err := s.p.AllLeads()
	if err != nil {
		return err
	}
	bookings, err := s.p.AllBookings()
	if err != nil {
		return err
	}
	messages, err := s.p.AllMessages()
	if err != nil {
		return err
	}
	inventory, err := s.p.AllInventoryItems()
	if err != nil {
		return err
	}
	activity, err := s.p.RecentActivity(ActivityFeedLimit)
	if err != nil {
		return err
	}
	staff, err := s.p.AllStaff()
	if err != nil {
		return err
	}
	services, err := s.p.AllServices()
	if err != nil {
		return err
	}
	settings, err := s.p.GetSettings()
	if err != nil {
		return err
	}
	forms, err := s.p.AllForms()
	if err != nil {
		return err
	}

	s.leads = leads
	s.bookings = bookings
	s.messages = messages
	s.inventory = inventory
	s.activity = activity
	s.staff = staff
	s.services = services
	s.settings = *settings
	s.forms = forms
	return nil
}

// Leads returns a copy of the lead list, newest first.
func (s *Store) Leads() []models.Lead {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Lead(nil), s.leads...)
}

func (s *Store) Bookings() []models.Booking {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Booking(nil), s.bookings...)
}

func (s *Store) Messages() []models.Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Message(nil), s.messages...)
}

func (s *Store) Inventory() []models.InventoryItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.InventoryItem(nil), s.inventory...)
}

// ActivityFeed returns the display window of the activity feed, newest
// first.
func (s *Store) ActivityFeed() []models.ActivityItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.ActivityItem(nil), s.activity...)
}

func (s *Store) Staff() []models.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.User(nil), s.staff...)
}

func (s *Store) Services() []models.Service {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Service(nil), s.services...)
}

func (s *Store) Forms() []models.Form {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Form(nil), s.forms...)
}

func (s *Store) Settings() models.BusinessSettings {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.settings
}

// Metrics recomputes the dashboard counters from current state.
func (s *Store) Metrics() Metrics {
	s.mu.Lock()
	defer s.mu.Unlock()

	total := len(s.leads)
	won := 0
	for _, l := range s.leads {
		if l.Status == models.LeadStatusWon {
			won++
		}
	}

	rate := 0.0
	if total > 0 {
		rate = float64(won) / float64(total) * 100
	}

	return Metrics{
		TotalLeads:     total,
		TotalBookings:  len(s.bookings),
		ConversionRate: rate,
	}
}
