// ABOUTME: Tests for the domain store mutation/dispatch contract
// ABOUTME: Covers at-most-once dispatch, abort-on-failure, and derived status
package store

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harperreed/careops/db"
	"github.com/harperreed/careops/events"
	"github.com/harperreed/careops/models"
)

func setupTestStore(t *testing.T) (*Store, *events.Bus) {
	t.Helper()

	database, err := db.OpenDatabase(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close() })

	bus := events.NewBus()
	return New(db.NewRepo(database), bus), bus
}

// countEvents subscribes a counter for the given type.
func countEvents(bus *events.Bus, eventType events.Type) *int {
	count := 0
	bus.Subscribe(eventType, func(any) { count++ })
	return &count
}

func TestAddLeadDispatchesExactlyOnce(t *testing.T) {
	s, bus := setupTestStore(t)

	created := countEvents(bus, events.LeadCreated)
	var payload models.Lead
	bus.Subscribe(events.LeadCreated, func(p any) {
		payload = p.(models.Lead)
	})

	lead, err := s.AddLead(LeadInput{Name: "Alice", Email: "e@x.com", Source: "Website"})
	require.NoError(t, err)

	assert.Equal(t, 1, *created)
	assert.Equal(t, lead.ID, payload.ID)
	assert.Equal(t, "Alice", payload.Name)
	assert.Equal(t, models.LeadStatusNew, lead.Status)
	assert.False(t, lead.CreatedAt.IsZero())
	assert.Len(t, s.Leads(), 1)
}

type failingPersister struct {
	Persister
}

func (failingPersister) CreateLead(*models.Lead) error {
	return errors.New("database unavailable")
}

func TestAddLeadAbortsOnPersistenceFailure(t *testing.T) {
	s, bus := setupTestStore(t)
	s.p = failingPersister{s.p}

	created := countEvents(bus, events.LeadCreated)

	_, err := s.AddLead(LeadInput{Name: "Alice", Email: "e@x.com"})
	require.Error(t, err)

	// No event, no local state change.
	assert.Equal(t, 0, *created)
	assert.Empty(t, s.Leads())
}

func TestAddLeadValidatesInput(t *testing.T) {
	s, _ := setupTestStore(t)

	_, err := s.AddLead(LeadInput{Email: "e@x.com"})
	assert.Error(t, err)

	_, err = s.AddLead(LeadInput{Name: "Alice"})
	assert.Error(t, err)
}

func TestUpdateLeadStatusDispatchesChange(t *testing.T) {
	s, bus := setupTestStore(t)

	lead, err := s.AddLead(LeadInput{Name: "Bob", Email: "bob@x.com"})
	require.NoError(t, err)

	var change events.LeadStatusChange
	bus.Subscribe(events.LeadStatusChanged, func(p any) {
		change = p.(events.LeadStatusChange)
	})

	before := lead.LastActivityAt
	updated, err := s.UpdateLeadStatus(lead.ID, models.LeadStatusQualified)
	require.NoError(t, err)

	assert.Equal(t, models.LeadStatusQualified, updated.Status)
	assert.Equal(t, lead.ID, change.ID)
	assert.Equal(t, "Bob", change.Name)
	assert.Equal(t, models.LeadStatusQualified, change.Status)
	assert.False(t, updated.LastActivityAt.Before(before))
	assert.Equal(t, models.LeadStatusQualified, s.Leads()[0].Status)
}

func addBookingFixtures(t *testing.T, s *Store) (*models.Lead, *models.Service) {
	t.Helper()

	lead, err := s.AddLead(LeadInput{Name: "Carol", Email: "carol@x.com"})
	require.NoError(t, err)

	service, err := s.AddService(models.Service{Name: "Consultation", Duration: 30})
	require.NoError(t, err)

	return lead, service
}

func TestAddBookingStartsPendingAndDispatchesCreated(t *testing.T) {
	s, bus := setupTestStore(t)
	lead, service := addBookingFixtures(t, s)

	created := countEvents(bus, events.BookingCreated)

	booking, err := s.AddBooking(BookingInput{
		LeadID:    lead.ID,
		ServiceID: service.ID,
		Date:      "2026-09-01",
		Time:      "10:00",
		Duration:  30,
	})
	require.NoError(t, err)

	assert.Equal(t, models.BookingStatusPending, booking.Status)
	assert.Equal(t, 1, *created)
	assert.Len(t, s.Bookings(), 1)
}

func TestBookingStatusDispatchAsymmetry(t *testing.T) {
	s, bus := setupTestStore(t)
	lead, service := addBookingFixtures(t, s)

	booking, err := s.AddBooking(BookingInput{
		LeadID:    lead.ID,
		ServiceID: service.ID,
		Date:      "2026-09-01",
		Time:      "10:00",
		Duration:  30,
	})
	require.NoError(t, err)

	confirmed := countEvents(bus, events.BookingConfirmed)

	// Cancelling and completing never announce.
	_, err = s.UpdateBookingStatus(booking.ID, models.BookingStatusCancelled)
	require.NoError(t, err)
	assert.Equal(t, 0, *confirmed)

	_, err = s.UpdateBookingStatus(booking.ID, models.BookingStatusCompleted)
	require.NoError(t, err)
	assert.Equal(t, 0, *confirmed)

	// Confirmation does, exactly once.
	updated, err := s.UpdateBookingStatus(booking.ID, models.BookingStatusConfirmed)
	require.NoError(t, err)
	assert.Equal(t, models.BookingStatusConfirmed, updated.Status)
	assert.Equal(t, 1, *confirmed)
}

func TestSendMessageDispatchDependsOnSender(t *testing.T) {
	s, bus := setupTestStore(t)
	lead, err := s.AddLead(LeadInput{Name: "Dave", Email: "dave@x.com"})
	require.NoError(t, err)

	sent := countEvents(bus, events.MessageSent)

	// System-authored: no event.
	_, err = s.SendMessage("Welcome aboard", lead.ID, models.SystemSender, nil)
	require.NoError(t, err)
	assert.Equal(t, 0, *sent)

	// Human-authored: one event.
	msg, err := s.SendMessage("Hello, when are you open?", lead.ID, "user-1", nil)
	require.NoError(t, err)
	assert.Equal(t, 1, *sent)
	assert.Equal(t, "user-1", msg.SenderID)

	// A message arriving bumps the lead's last activity.
	assert.False(t, s.Leads()[0].LastActivityAt.Before(msg.CreatedAt))
}

func TestUpdateInventoryQuantityDerivedStatus(t *testing.T) {
	s, bus := setupTestStore(t)

	item, err := s.AddInventoryItem(InventoryInput{
		Name:      "Gloves",
		SKU:       "GLV-1",
		Quantity:  50,
		Threshold: 10,
	})
	require.NoError(t, err)
	assert.Equal(t, models.StockInStock, item.Status)

	low := countEvents(bus, events.InventoryLow)

	// threshold+1: in stock, no event.
	updated, err := s.UpdateInventoryQuantity(item.ID, 11)
	require.NoError(t, err)
	assert.Equal(t, models.StockInStock, updated.Status)
	assert.Equal(t, 0, *low)

	// exactly threshold: low stock, event.
	updated, err = s.UpdateInventoryQuantity(item.ID, 10)
	require.NoError(t, err)
	assert.Equal(t, models.StockLowStock, updated.Status)
	assert.Equal(t, 1, *low)

	// zero: out of stock, event.
	updated, err = s.UpdateInventoryQuantity(item.ID, 0)
	require.NoError(t, err)
	assert.Equal(t, models.StockOutOfStock, updated.Status)
	assert.Equal(t, 2, *low)
}

func TestActivityFeedWindow(t *testing.T) {
	s, _ := setupTestStore(t)

	for i := 0; i < ActivityFeedLimit+5; i++ {
		_, err := s.AddActivity(ActivityInput{
			Type:  models.ActivitySystem,
			Title: "tick",
		})
		require.NoError(t, err)
	}

	assert.Len(t, s.ActivityFeed(), ActivityFeedLimit)
}

func TestSubmitFormCreatesLeadThroughIntake(t *testing.T) {
	s, bus := setupTestStore(t)

	form, err := s.SaveForm(models.Form{Title: "Contact Us", Type: models.FormContact})
	require.NoError(t, err)

	created := countEvents(bus, events.LeadCreated)

	submission, err := s.SubmitForm(form.ID, map[string]interface{}{
		"name":  "Erin",
		"email": "erin@x.com",
	})
	require.NoError(t, err)

	require.NotNil(t, submission.LeadID)
	assert.Equal(t, 1, *created)

	leads := s.Leads()
	require.Len(t, leads, 1)
	assert.Equal(t, "Form Submission", leads[0].Source)
}

func TestMetrics(t *testing.T) {
	s, _ := setupTestStore(t)

	m := s.Metrics()
	assert.Equal(t, 0, m.TotalLeads)
	assert.Equal(t, 0.0, m.ConversionRate)

	lead1, err := s.AddLead(LeadInput{Name: "A", Email: "a@x.com"})
	require.NoError(t, err)
	_, err = s.AddLead(LeadInput{Name: "B", Email: "b@x.com"})
	require.NoError(t, err)

	_, err = s.UpdateLeadStatus(lead1.ID, models.LeadStatusWon)
	require.NoError(t, err)

	m = s.Metrics()
	assert.Equal(t, 2, m.TotalLeads)
	assert.Equal(t, 50.0, m.ConversionRate)
}

func TestHydrateLoadsPersistedState(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	database, err := db.OpenDatabase(dbPath)
	require.NoError(t, err)

	first := New(db.NewRepo(database), events.NewBus())
	_, err = first.AddLead(LeadInput{Name: "Persisted", Email: "p@x.com"})
	require.NoError(t, err)
	require.NoError(t, first.UpdateSettings(models.BusinessSettings{
		BusinessName: "CareOps",
		ContactEmail: "owner@careops.com",
		Currency:     "USD",
	}))
	require.NoError(t, database.Close())

	database, err = db.OpenDatabase(dbPath)
	require.NoError(t, err)
	defer database.Close()

	second := New(db.NewRepo(database), events.NewBus())
	require.NoError(t, second.Hydrate())

	require.Len(t, second.Leads(), 1)
	assert.Equal(t, "Persisted", second.Leads()[0].Name)
	assert.Equal(t, "owner@careops.com", second.Settings().ContactEmail)
}
