// ABOUTME: Demo data seeding command
// ABOUTME: Populates a fresh database with a small working data set
package cli

import (
	"fmt"

	"github.com/harperreed/careops/models"
	"github.com/harperreed/careops/store"
)

// SeedCommand loads demo data through the store, so the seeded leads and
// bookings run through the normal automation.
func SeedCommand(st *store.Store) error {
	if len(st.Leads()) > 0 || len(st.Services()) > 0 {
		return fmt.Errorf("database is not empty, refusing to seed")
	}

	if err := st.UpdateSettings(models.BusinessSettings{
		BusinessName: "CareOps Demo",
		ContactEmail: "contact@careops.demo",
		Currency:     "USD",
		Availability: models.Availability{
			Days:  []string{"Mon", "Tue", "Wed", "Thu", "Fri"},
			Start: "09:00",
			End:   "17:00",
		},
		Integrations: models.Integrations{EmailProvider: true},
	}); err != nil {
		return fmt.Errorf("failed to seed settings: %w", err)
	}

	consultation, err := st.AddService(models.Service{
		Name:        "Standard Consultation",
		Description: "A basic check-up and consultation.",
		Duration:    60,
		Price:       15000,
	})
	if err != nil {
		return fmt.Errorf("failed to seed services: %w", err)
	}
	if _, err := st.AddService(models.Service{
		Name:        "Premium Care Package",
		Description: "Full comprehensive care package.",
		Duration:    90,
		Price:       29900,
	}); err != nil {
		return fmt.Errorf("failed to seed services: %w", err)
	}

	if _, err := st.AddStaff("Demo Owner", "owner@careops.demo", models.RoleOwner, "https://i.pravatar.cc/150?u=owner"); err != nil {
		return fmt.Errorf("failed to seed staff: %w", err)
	}
	staff, err := st.AddStaff("Sarah Staff", "sarah@careops.demo", models.RoleStaff, "https://i.pravatar.cc/150?u=sarah")
	if err != nil {
		return fmt.Errorf("failed to seed staff: %w", err)
	}

	alice, err := st.AddLead(store.LeadInput{
		Name:   "Alice Anderson",
		Email:  "alice@example.com",
		Phone:  "555-0101",
		Source: "Website",
		Notes:  "Interested in premium package",
	})
	if err != nil {
		return fmt.Errorf("failed to seed leads: %w", err)
	}
	if _, err := st.AddLead(store.LeadInput{
		Name:   "Bob Brown",
		Email:  "bob@example.com",
		Source: "Referral",
		Status: models.LeadStatusContacted,
	}); err != nil {
		return fmt.Errorf("failed to seed leads: %w", err)
	}

	if _, err := st.AddBooking(store.BookingInput{
		LeadID:    alice.ID,
		ServiceID: consultation.ID,
		Date:      "2026-09-01",
		Time:      "10:00",
		Duration:  60,
		StaffID:   &staff.ID,
	}); err != nil {
		return fmt.Errorf("failed to seed bookings: %w", err)
	}

	if _, err := st.AddInventoryItem(store.InventoryInput{
		Name:      "Exam Gloves",
		SKU:       "GLV-100",
		Category:  "Supplies",
		Quantity:  200,
		Threshold: 50,
	}); err != nil {
		return fmt.Errorf("failed to seed inventory: %w", err)
	}

	if _, err := st.SaveForm(models.Form{
		Title:     "Contact Us",
		Type:      models.FormContact,
		Published: true,
		Fields: []models.FormField{
			{ID: "name", Type: models.FieldText, Label: "Name", Required: true},
			{ID: "email", Type: models.FieldEmail, Label: "Email", Required: true},
			{ID: "message", Type: models.FieldTextarea, Label: "How can we help?"},
		},
	}); err != nil {
		return fmt.Errorf("failed to seed forms: %w", err)
	}

	fmt.Println("✓ Demo data seeded")
	return nil
}
