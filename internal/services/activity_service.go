package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/mergington-hs/activity-signup/internal/models"
	"github.com/mergington-hs/activity-signup/pkg/logger"
	"github.com/sirupsen/logrus"
)

// ActivityStore is the persistence contract the service depends on. It is
// satisfied by the MongoDB repository and by the in-memory store used in
// tests.
type ActivityStore interface {
	ListActivities(ctx context.Context) ([]models.Activity, error)
	GetActivity(ctx context.Context, name string) (*models.Activity, error)
	AddParticipant(ctx context.Context, name, email string) error
	RemoveParticipant(ctx context.Context, name, email string) error
	CountActivities(ctx context.Context) (int64, error)
	InsertActivities(ctx context.Context, activities []models.Activity) error
}

// Broadcaster pushes roster-change notifications to connected clients.
type Broadcaster interface {
	BroadcastRosterUpdate(activity string)
}

// ActivityService encapsulates the business logic for the activity roster.
type ActivityService struct {
	store       ActivityStore
	events      *RosterEventService
	broadcaster Broadcaster
}

// NewActivityService creates a new instance of ActivityService. The
// broadcaster may be nil when live updates are not wired (e.g. in tests).
func NewActivityService(store ActivityStore, events *RosterEventService, broadcaster Broadcaster) *ActivityService {
	return &ActivityService{
		store:       store,
		events:      events,
		broadcaster: broadcaster,
	}
}

// ListActivities returns every activity keyed by name, the shape the
// frontend consumes. Rosters are normalized so an empty roster marshals as
// an empty list rather than null.
func (s *ActivityService) ListActivities(ctx context.Context) (map[string]models.Activity, error) {
	activities, err := s.store.ListActivities(ctx)
	if err != nil {
		logger.Log.WithError(err).Error("Failed to list activities")
		return nil, fmt.Errorf("failed to list activities: %v", err)
	}

	result := make(map[string]models.Activity, len(activities))
	for _, a := range activities {
		if a.Participants == nil {
			a.Participants = []string{}
		}
		result[a.Name] = a
	}
	return result, nil
}

// GetActivity returns a single activity by name.
func (s *ActivityService) GetActivity(ctx context.Context, name string) (*models.Activity, error) {
	activity, err := s.store.GetActivity(ctx, name)
	if err != nil {
		if errors.Is(err, models.ErrActivityNotFound) {
			return nil, err
		}
		logger.Log.WithError(err).WithField("activity", name).Error("Failed to get activity")
		return nil, fmt.Errorf("failed to get activity: %v", err)
	}
	if activity.Participants == nil {
		activity.Participants = []string{}
	}
	return activity, nil
}

// Signup adds a student to an activity's roster. Duplicate signups are
// rejected before any write. Returns the confirmation message shown to the
// user.
func (s *ActivityService) Signup(ctx context.Context, name, email string) (string, error) {
	activity, err := s.store.GetActivity(ctx, name)
	if err != nil {
		return "", err
	}

	if activity.HasParticipant(email) {
		logrus.WithFields(logrus.Fields{
			"activity": name,
			"email":    email,
		}).Warn("Duplicate signup rejected")
		return "", models.ErrAlreadySignedUp
	}

	if err := s.store.AddParticipant(ctx, name, email); err != nil {
		return "", fmt.Errorf("failed to sign up: %v", err)
	}

	s.events.Record(ctx, name, email, models.RosterActionSignup)
	if s.broadcaster != nil {
		s.broadcaster.BroadcastRosterUpdate(name)
	}

	logrus.WithFields(logrus.Fields{
		"activity": name,
		"email":    email,
	}).Info("Student signed up")
	return fmt.Sprintf("Signed up %s for %s", email, name), nil
}

// RemoveParticipant takes a student off an activity's roster. Returns the
// confirmation message shown to the user.
func (s *ActivityService) RemoveParticipant(ctx context.Context, name, email string) (string, error) {
	activity, err := s.store.GetActivity(ctx, name)
	if err != nil {
		return "", err
	}

	if !activity.HasParticipant(email) {
		logrus.WithFields(logrus.Fields{
			"activity": name,
			"email":    email,
		}).Warn("Removal of unknown participant rejected")
		return "", models.ErrParticipantNotFound
	}

	if err := s.store.RemoveParticipant(ctx, name, email); err != nil {
		return "", fmt.Errorf("failed to remove participant: %v", err)
	}

	s.events.Record(ctx, name, email, models.RosterActionRemoval)
	if s.broadcaster != nil {
		s.broadcaster.BroadcastRosterUpdate(name)
	}

	logrus.WithFields(logrus.Fields{
		"activity": name,
		"email":    email,
	}).Info("Participant removed")
	return fmt.Sprintf("Removed %s from %s", email, name), nil
}

// SeedDefaults inserts the default activity roster when the store is empty.
// Safe to call on every startup.
func (s *ActivityService) SeedDefaults(ctx context.Context) error {
	count, err := s.store.CountActivities(ctx)
	if err != nil {
		return fmt.Errorf("failed to count activities: %v", err)
	}
	if count > 0 {
		return nil
	}

	if err := s.store.InsertActivities(ctx, models.DefaultActivities()); err != nil {
		return fmt.Errorf("failed to seed activities: %v", err)
	}

	logger.Log.Info("Seeded default activities")
	return nil
}
