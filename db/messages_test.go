// ABOUTME: Tests for message database operations
// ABOUTME: Covers thread append, activity bump, ordering, and read receipts
package db

import (
	"database/sql"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/harperreed/careops/models"
)

func createMessageLead(t *testing.T, db *sql.DB) *models.Lead {
	t.Helper()

	lead := &models.Lead{Name: "Thread Lead", Email: "thread@example.com"}
	if err := CreateLead(db, lead); err != nil {
		t.Fatalf("CreateLead failed: %v", err)
	}
	return lead
}

func TestCreateMessageBumpsLeadActivity(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	lead := createMessageLead(t, db)
	before := lead.LastActivityAt
	time.Sleep(5 * time.Millisecond)

	message := &models.Message{
		LeadID:   lead.ID,
		SenderID: models.SystemSender,
		Content:  "Welcome aboard",
	}
	if err := CreateMessage(db, message); err != nil {
		t.Fatalf("CreateMessage failed: %v", err)
	}

	found, err := GetLead(db, lead.ID)
	if err != nil {
		t.Fatalf("GetLead failed: %v", err)
	}
	if !found.LastActivityAt.After(before) {
		t.Error("Lead LastActivityAt was not bumped by the message")
	}
}

func TestCreateMessageMissingLead(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	message := &models.Message{
		LeadID:   uuid.New(),
		SenderID: "user-1",
		Content:  "hello",
	}
	if err := CreateMessage(db, message); err == nil {
		t.Error("Expected error for missing lead")
	}
}

func TestFindMessagesPerLeadAscending(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	lead := createMessageLead(t, db)

	for _, content := range []string{"first", "second", "third"} {
		message := &models.Message{LeadID: lead.ID, SenderID: "user-1", Content: content}
		if err := CreateMessage(db, message); err != nil {
			t.Fatalf("CreateMessage failed: %v", err)
		}
		time.Sleep(2 * time.Millisecond)
	}

	messages, err := FindMessages(db, &lead.ID)
	if err != nil {
		t.Fatalf("FindMessages failed: %v", err)
	}
	if len(messages) != 3 {
		t.Fatalf("Expected 3 messages, got %d", len(messages))
	}
	if messages[0].Content != "first" || messages[2].Content != "third" {
		t.Errorf("Thread not in chronological order: %s .. %s", messages[0].Content, messages[2].Content)
	}
}

func TestMessageAttachmentsRoundTrip(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	lead := createMessageLead(t, db)

	message := &models.Message{
		LeadID:   lead.ID,
		SenderID: "user-1",
		Content:  "see attached",
		Attachments: []models.Attachment{
			{Name: "quote.pdf", URL: "/files/quote.pdf", Type: "application/pdf", Size: 2048},
		},
	}
	if err := CreateMessage(db, message); err != nil {
		t.Fatalf("CreateMessage failed: %v", err)
	}

	messages, err := FindMessages(db, &lead.ID)
	if err != nil {
		t.Fatalf("FindMessages failed: %v", err)
	}
	if len(messages) != 1 {
		t.Fatalf("Expected 1 message, got %d", len(messages))
	}
	if len(messages[0].Attachments) != 1 {
		t.Fatalf("Expected 1 attachment, got %d", len(messages[0].Attachments))
	}
	if messages[0].Attachments[0].Name != "quote.pdf" {
		t.Errorf("Expected attachment quote.pdf, got %s", messages[0].Attachments[0].Name)
	}
}

func TestMarkMessageRead(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	lead := createMessageLead(t, db)

	message := &models.Message{LeadID: lead.ID, SenderID: "user-1", Content: "unread"}
	if err := CreateMessage(db, message); err != nil {
		t.Fatalf("CreateMessage failed: %v", err)
	}

	if err := MarkMessageRead(db, message.ID); err != nil {
		t.Fatalf("MarkMessageRead failed: %v", err)
	}

	messages, err := FindMessages(db, &lead.ID)
	if err != nil {
		t.Fatalf("FindMessages failed: %v", err)
	}
	if messages[0].ReadAt == nil {
		t.Fatal("ReadAt was not set")
	}

	// Marking again must not move the original receipt
	first := *messages[0].ReadAt
	time.Sleep(5 * time.Millisecond)
	if err := MarkMessageRead(db, message.ID); err != nil {
		t.Fatalf("Second MarkMessageRead failed: %v", err)
	}

	messages, err = FindMessages(db, &lead.ID)
	if err != nil {
		t.Fatalf("FindMessages failed: %v", err)
	}
	if !messages[0].ReadAt.Equal(first) {
		t.Error("ReadAt changed on a second mark")
	}
}
