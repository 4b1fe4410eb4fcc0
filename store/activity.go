// ABOUTME: Activity feed mutations
// ABOUTME: Append-only log with a fixed display window
package store

import (
	"fmt"

	"github.com/harperreed/careops/models"
)

// ActivityFeedLimit is the number of entries kept in the in-memory feed.
// Storage is append-only and uncapped; this is the display window.
const ActivityFeedLimit = 50

// ActivityInput carries caller-supplied activity fields.
type ActivityInput struct {
	Type        string
	Title       string
	Description string
	Metadata    map[string]interface{}
}

// AddActivity appends an entry to the audit trail. Activity logging is
// fire-and-forget from the callers' perspective but still follows the
// persist-then-merge contract. No event.
func (s *Store) AddActivity(input ActivityInput) (*models.ActivityItem, error) {
	item := &models.ActivityItem{
		Type:        input.Type,
		Title:       input.Title,
		Description: input.Description,
		Metadata:    input.Metadata,
	}

	if err := s.p.LogActivity(item); err != nil {
		return nil, fmt.Errorf("failed to log activity: %w", err)
	}

	s.mu.Lock()
	s.activity = append([]models.ActivityItem{*item}, s.activity...)
	if len(s.activity) > ActivityFeedLimit {
		s.activity = s.activity[:ActivityFeedLimit]
	}
	s.mu.Unlock()
	return item, nil
}
