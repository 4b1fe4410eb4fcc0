// ABOUTME: Staff, service, settings, and form mutations
// ABOUTME: Plain persist-then-merge operations without domain events
package store

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/harperreed/careops/models"
)

func (s *Store) AddStaff(name, email, role, avatarURL string) (*models.User, error) {
	if name == "" || email == "" {
		return nil, fmt.Errorf("staff name and email are required")
	}

	user := &models.User{
		Name:      name,
		Email:     email,
		Role:      role,
		AvatarURL: avatarURL,
	}

	if err := s.p.CreateStaff(user); err != nil {
		return nil, fmt.Errorf("failed to create staff: %w", err)
	}

	s.mu.Lock()
	s.staff = append(s.staff, *user)
	s.mu.Unlock()
	return user, nil
}

func (s *Store) UpdateStaffRole(id uuid.UUID, role string) (*models.User, error) {
	updated, err := s.p.UpdateStaffRole(id, role)
	if err != nil {
		return nil, fmt.Errorf("failed to update staff role: %w", err)
	}
	if updated == nil {
		return nil, fmt.Errorf("staff not found: %s", id)
	}

	s.mu.Lock()
	for i := range s.staff {
		if s.staff[i].ID == id {
			s.staff[i].Role = updated.Role
			break
		}
	}
	s.mu.Unlock()
	return updated, nil
}

func (s *Store) RemoveStaff(id uuid.UUID) error {
	if err := s.p.DeleteStaff(id); err != nil {
		return fmt.Errorf("failed to remove staff: %w", err)
	}

	s.mu.Lock()
	for i := range s.staff {
		if s.staff[i].ID == id {
			s.staff = append(s.staff[:i], s.staff[i+1:]...)
			break
		}
	}
	s.mu.Unlock()
	return nil
}

func (s *Store) AddService(service models.Service) (*models.Service, error) {
	if service.Name == "" {
		return nil, fmt.Errorf("service name is required")
	}

	if err := s.p.CreateService(&service); err != nil {
		return nil, fmt.Errorf("failed to create service: %w", err)
	}

	s.mu.Lock()
	s.services = append(s.services, service)
	s.mu.Unlock()
	return &service, nil
}

func (s *Store) UpdateService(service models.Service) error {
	if err := s.p.UpdateService(&service); err != nil {
		return fmt.Errorf("failed to update service: %w", err)
	}

	s.mu.Lock()
	for i := range s.services {
		if s.services[i].ID == service.ID {
			s.services[i] = service
			break
		}
	}
	s.mu.Unlock()
	return nil
}

func (s *Store) DeleteService(id uuid.UUID) error {
	if err := s.p.DeleteService(id); err != nil {
		return fmt.Errorf("failed to delete service: %w", err)
	}

	s.mu.Lock()
	for i := range s.services {
		if s.services[i].ID == id {
			s.services = append(s.services[:i], s.services[i+1:]...)
			break
		}
	}
	s.mu.Unlock()
	return nil
}

// UpdateSettings merges the given fields into the singleton settings row.
func (s *Store) UpdateSettings(settings models.BusinessSettings) error {
	if err := s.p.SaveSettings(&settings); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}

	s.mu.Lock()
	s.settings = settings
	s.mu.Unlock()
	return nil
}

// SaveForm creates or updates a form design.
func (s *Store) SaveForm(form models.Form) (*models.Form, error) {
	if form.Title == "" {
		return nil, fmt.Errorf("form title is required")
	}

	if err := s.p.SaveForm(&form); err != nil {
		return nil, fmt.Errorf("failed to save form: %w", err)
	}

	s.mu.Lock()
	replaced := false
	for i := range s.forms {
		if s.forms[i].ID == form.ID {
			s.forms[i] = form
			replaced = true
			break
		}
	}
	if !replaced {
		s.forms = append(s.forms, form)
	}
	s.mu.Unlock()
	return &form, nil
}

// SubmitForm records a public form submission and routes it through the
// standard lead intake, so LEAD_CREATED automation fires for it.
func (s *Store) SubmitForm(formID uuid.UUID, data map[string]interface{}) (*models.FormSubmission, error) {
	name, _ := data["name"].(string)
	email, _ := data["email"].(string)
	phone, _ := data["phone"].(string)
	company, _ := data["company"].(string)

	submission := &models.FormSubmission{
		FormID: formID,
		Data:   data,
	}

	if name != "" && email != "" {
		lead, err := s.AddLead(LeadInput{
			Name:    name,
			Email:   email,
			Phone:   phone,
			Company: company,
			Source:  "Form Submission",
		})
		if err != nil {
			return nil, err
		}
		submission.LeadID = &lead.ID
	}

	if err := s.p.CreateFormSubmission(submission); err != nil {
		return nil, fmt.Errorf("failed to record form submission: %w", err)
	}
	return submission, nil
}
