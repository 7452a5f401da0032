package services

import (
	"context"
	"fmt"
	"time"

	"github.com/mergington-hs/activity-signup/internal/models"
	"github.com/sirupsen/logrus"
)

// RosterEventStore is the persistence contract for the roster audit trail.
type RosterEventStore interface {
	CreateEvent(ctx context.Context, event *models.RosterEvent) error
	GetActivityEvents(ctx context.Context, activity string, limit int64) ([]models.RosterEvent, error)
	GetEventsSince(ctx context.Context, since time.Time) ([]models.RosterEvent, error)
}

// RosterEventService records and reads the audit trail of roster changes.
type RosterEventService struct {
	store RosterEventStore
}

func NewRosterEventService(store RosterEventStore) *RosterEventService {
	return &RosterEventService{store: store}
}

// Record appends an audit event. Audit failures are logged but never fail
// the mutation that triggered them.
func (s *RosterEventService) Record(ctx context.Context, activity, email, action string) {
	event := &models.RosterEvent{
		Activity:  activity,
		Email:     email,
		Action:    action,
		Timestamp: time.Now(),
	}

	if err := s.store.CreateEvent(ctx, event); err != nil {
		logrus.WithError(err).WithFields(logrus.Fields{
			"activity": activity,
			"action":   action,
		}).Error("Failed to record roster event")
	}
}

// RecentEvents returns the latest events for an activity, newest first.
func (s *RosterEventService) RecentEvents(ctx context.Context, activity string, limit int64) ([]models.RosterEvent, error) {
	events, err := s.store.GetActivityEvents(ctx, activity, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch roster events: %v", err)
	}
	if events == nil {
		events = []models.RosterEvent{}
	}
	return events, nil
}

// EventsSince returns all events recorded at or after the given time.
func (s *RosterEventService) EventsSince(ctx context.Context, since time.Time) ([]models.RosterEvent, error) {
	events, err := s.store.GetEventsSince(ctx, since)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch roster events: %v", err)
	}
	return events, nil
}
