// ABOUTME: Lead mutations following the persist-merge-dispatch contract
// ABOUTME: Creation and status changes publish their primary domain event
package store

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/harperreed/careops/events"
	"github.com/harperreed/careops/models"
)

// LeadInput carries caller-supplied lead fields; ids and timestamps are
// server-assigned.
type LeadInput struct {
	Name    string
	Email   string
	Phone   string
	Company string
	Source  string
	Status  string
	Notes   string
}

// AddLead persists a new lead, merges the canonical row into local state,
// and dispatches LEAD_CREATED exactly once.
func (s *Store) AddLead(input LeadInput) (*models.Lead, error) {
	if input.Name == "" {
		return nil, fmt.Errorf("lead name is required")
	}
	if input.Email == "" {
		return nil, fmt.Errorf("lead email is required")
	}

	lead := &models.Lead{
		Name:    input.Name,
		Email:   input.Email,
		Phone:   input.Phone,
		Company: input.Company,
		Source:  input.Source,
		Status:  input.Status,
		Notes:   input.Notes,
	}

	if err := s.p.CreateLead(lead); err != nil {
		return nil, fmt.Errorf("failed to create lead: %w", err)
	}

	s.mu.Lock()
	s.leads = append([]models.Lead{*lead}, s.leads...)
	s.mu.Unlock()

	s.bus.Dispatch(events.LeadCreated, *lead)
	return lead, nil
}

// UpdateLeadStatus transitions the lead's status and dispatches
// LEAD_STATUS_CHANGED. Every status transition dispatches; contrast with
// booking status updates, which only announce confirmation.
func (s *Store) UpdateLeadStatus(id uuid.UUID, status string) (*models.Lead, error) {
	updated, err := s.p.UpdateLeadStatus(id, status)
	if err != nil {
		return nil, fmt.Errorf("failed to update lead status: %w", err)
	}
	if updated == nil {
		return nil, fmt.Errorf("lead not found: %s", id)
	}

	s.mu.Lock()
	for i := range s.leads {
		if s.leads[i].ID == id {
			s.leads[i].Status = updated.Status
			s.leads[i].LastActivityAt = updated.LastActivityAt
			break
		}
	}
	s.mu.Unlock()

	s.bus.Dispatch(events.LeadStatusChanged, events.LeadStatusChange{
		ID:     updated.ID,
		Name:   updated.Name,
		Status: updated.Status,
	})
	return updated, nil
}

// ToggleLeadStar flips the starred flag. No event; starring is not an
// automation trigger.
func (s *Store) ToggleLeadStar(id uuid.UUID, starred bool) error {
	if err := s.p.SetLeadStarred(id, starred); err != nil {
		return fmt.Errorf("failed to update lead: %w", err)
	}

	s.mu.Lock()
	for i := range s.leads {
		if s.leads[i].ID == id {
			s.leads[i].Starred = starred
			s.leads[i].LastActivityAt = time.Now()
			break
		}
	}
	s.mu.Unlock()
	return nil
}

// ToggleLeadArchive flips the archived flag. No event.
func (s *Store) ToggleLeadArchive(id uuid.UUID, archived bool) error {
	if err := s.p.SetLeadArchived(id, archived); err != nil {
		return fmt.Errorf("failed to update lead: %w", err)
	}

	s.mu.Lock()
	for i := range s.leads {
		if s.leads[i].ID == id {
			s.leads[i].Archived = archived
			s.leads[i].LastActivityAt = time.Now()
			break
		}
	}
	s.mu.Unlock()
	return nil
}
