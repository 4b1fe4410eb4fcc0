// ABOUTME: Message mutations for the shared inbox
// ABOUTME: Only human-authored messages dispatch MESSAGE_SENT
package store

import (
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/harperreed/careops/events"
	"github.com/harperreed/careops/models"
)

// SendMessage appends a message to a lead's thread. The sender defaults to
// the system identity. System-authored messages never dispatch MESSAGE_SENT;
// that guard is what keeps automation from notifying itself in a loop.
func (s *Store) SendMessage(content string, leadID uuid.UUID, senderID string, attachments []models.Attachment) (*models.Message, error) {
	if content == "" {
		return nil, fmt.Errorf("message content is required")
	}
	if senderID == "" {
		senderID = models.SystemSender
	}

	message := &models.Message{
		LeadID:      leadID,
		SenderID:    senderID,
		Content:     content,
		Attachments: attachments,
	}

	if err := s.p.CreateMessage(message); err != nil {
		return nil, fmt.Errorf("failed to send message: %w", err)
	}

	s.mu.Lock()
	s.messages = append(s.messages, *message)
	var leadEmail string
	for i := range s.leads {
		if s.leads[i].ID == leadID {
			s.leads[i].LastActivityAt = message.CreatedAt
			leadEmail = s.leads[i].Email
			break
		}
	}
	notifier := s.notifier
	s.mu.Unlock()

	// A system message is the business talking to the lead, so the lead gets
	// an email copy. Best-effort only.
	if message.IsSystem() && notifier != nil && leadEmail != "" {
		if _, err := notifier.Send(leadEmail, "New Message from CareOps", "<p>"+message.Content+"</p>"); err != nil {
			log.Printf("warning: lead notification email failed: %v", err)
		}
	}

	if !message.IsSystem() {
		s.bus.Dispatch(events.MessageSent, *message)
	}
	return message, nil
}

// MarkMessageRead records the read receipt. No event.
func (s *Store) MarkMessageRead(id uuid.UUID) error {
	if err := s.p.MarkMessageRead(id); err != nil {
		return fmt.Errorf("failed to mark message read: %w", err)
	}

	s.mu.Lock()
	for i := range s.messages {
		if s.messages[i].ID == id && s.messages[i].ReadAt == nil {
			now := time.Now()
			s.messages[i].ReadAt = &now
			break
		}
	}
	s.mu.Unlock()
	return nil
}
