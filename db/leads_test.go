// ABOUTME: Tests for lead database operations
// ABOUTME: Covers creation defaults, lookup, search, and status transitions
package db

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/harperreed/careops/models"
)

func TestCreateLead(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	lead := &models.Lead{
		Name:  "Jane Doe",
		Email: "jane@example.com",
	}

	if err := CreateLead(db, lead); err != nil {
		t.Fatalf("CreateLead failed: %v", err)
	}

	if lead.ID == uuid.Nil {
		t.Error("Lead ID was not set")
	}
	if lead.Status != models.LeadStatusNew {
		t.Errorf("Expected status %s, got %s", models.LeadStatusNew, lead.Status)
	}
	if lead.Source != "Manual" {
		t.Errorf("Expected default source Manual, got %s", lead.Source)
	}
	if lead.CreatedAt.IsZero() {
		t.Error("CreatedAt was not set")
	}
	if lead.LastActivityAt.IsZero() {
		t.Error("LastActivityAt was not set")
	}
}

func TestGetLead(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	lead := &models.Lead{
		Name:    "John Smith",
		Email:   "john@example.com",
		Phone:   "555-0100",
		Company: "Smith Co",
		Source:  "Website",
	}
	if err := CreateLead(db, lead); err != nil {
		t.Fatalf("CreateLead failed: %v", err)
	}

	found, err := GetLead(db, lead.ID)
	if err != nil {
		t.Fatalf("GetLead failed: %v", err)
	}
	if found == nil {
		t.Fatal("GetLead returned nil for existing lead")
	}
	if found.Name != "John Smith" {
		t.Errorf("Expected name John Smith, got %s", found.Name)
	}
	if found.Phone != "555-0100" {
		t.Errorf("Expected phone 555-0100, got %s", found.Phone)
	}
	if found.Source != "Website" {
		t.Errorf("Expected source Website, got %s", found.Source)
	}
}

func TestGetLeadNotFound(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	found, err := GetLead(db, uuid.New())
	if err != nil {
		t.Fatalf("GetLead failed: %v", err)
	}
	if found != nil {
		t.Error("Expected nil for missing lead")
	}
}

func TestFindLeads(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	names := []string{"Alice Adams", "Bob Brown", "Alicia Keys"}
	for _, name := range names {
		lead := &models.Lead{Name: name, Email: name + "@example.com"}
		if err := CreateLead(db, lead); err != nil {
			t.Fatalf("CreateLead failed: %v", err)
		}
	}

	// Case-insensitive substring match on name
	results, err := FindLeads(db, "ali", 10)
	if err != nil {
		t.Fatalf("FindLeads failed: %v", err)
	}
	if len(results) != 2 {
		t.Errorf("Expected 2 results for 'ali', got %d", len(results))
	}

	// Empty query returns everything up to the limit
	results, err = FindLeads(db, "", 2)
	if err != nil {
		t.Fatalf("FindLeads failed: %v", err)
	}
	if len(results) != 2 {
		t.Errorf("Expected 2 results with limit 2, got %d", len(results))
	}
}

func TestUpdateLeadStatus(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	lead := &models.Lead{Name: "Status Lead", Email: "status@example.com"}
	if err := CreateLead(db, lead); err != nil {
		t.Fatalf("CreateLead failed: %v", err)
	}

	before := lead.LastActivityAt
	time.Sleep(5 * time.Millisecond)

	updated, err := UpdateLeadStatus(db, lead.ID, models.LeadStatusQualified)
	if err != nil {
		t.Fatalf("UpdateLeadStatus failed: %v", err)
	}
	if updated.Status != models.LeadStatusQualified {
		t.Errorf("Expected status %s, got %s", models.LeadStatusQualified, updated.Status)
	}
	if !updated.LastActivityAt.After(before) {
		t.Error("LastActivityAt was not bumped")
	}
}

func TestSetLeadStarredAndArchived(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	lead := &models.Lead{Name: "Flag Lead", Email: "flag@example.com"}
	if err := CreateLead(db, lead); err != nil {
		t.Fatalf("CreateLead failed: %v", err)
	}

	if err := SetLeadStarred(db, lead.ID, true); err != nil {
		t.Fatalf("SetLeadStarred failed: %v", err)
	}
	if err := SetLeadArchived(db, lead.ID, true); err != nil {
		t.Fatalf("SetLeadArchived failed: %v", err)
	}

	found, err := GetLead(db, lead.ID)
	if err != nil {
		t.Fatalf("GetLead failed: %v", err)
	}
	if !found.Starred {
		t.Error("Expected lead to be starred")
	}
	if !found.Archived {
		t.Error("Expected lead to be archived")
	}
}
