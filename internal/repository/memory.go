package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/mergington-hs/activity-signup/internal/models"
)

// InMemoryActivityStore keeps activities in memory for local development and
// tests, without a MongoDB instance.
type InMemoryActivityStore struct {
	mu         sync.RWMutex
	activities map[string]*models.Activity
}

func NewInMemoryActivityStore() *InMemoryActivityStore {
	return &InMemoryActivityStore{
		activities: make(map[string]*models.Activity),
	}
}

func (s *InMemoryActivityStore) ListActivities(ctx context.Context) ([]models.Activity, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	activities := make([]models.Activity, 0, len(s.activities))
	for _, a := range s.activities {
		copied := *a
		copied.Participants = append([]string(nil), a.Participants...)
		activities = append(activities, copied)
	}
	sort.Slice(activities, func(i, j int) bool {
		return activities[i].Name < activities[j].Name
	})
	return activities, nil
}

func (s *InMemoryActivityStore) GetActivity(ctx context.Context, name string) (*models.Activity, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	a, ok := s.activities[name]
	if !ok {
		return nil, models.ErrActivityNotFound
	}
	copied := *a
	copied.Participants = append([]string(nil), a.Participants...)
	return &copied, nil
}

func (s *InMemoryActivityStore) AddParticipant(ctx context.Context, name, email string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	a, ok := s.activities[name]
	if !ok {
		return models.ErrActivityNotFound
	}
	a.Participants = append(a.Participants, email)
	return nil
}

func (s *InMemoryActivityStore) RemoveParticipant(ctx context.Context, name, email string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	a, ok := s.activities[name]
	if !ok {
		return models.ErrActivityNotFound
	}
	for i, p := range a.Participants {
		if p == email {
			a.Participants = append(a.Participants[:i], a.Participants[i+1:]...)
			return nil
		}
	}
	return models.ErrParticipantNotFound
}

func (s *InMemoryActivityStore) CountActivities(ctx context.Context) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return int64(len(s.activities)), nil
}

func (s *InMemoryActivityStore) InsertActivities(ctx context.Context, activities []models.Activity) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, a := range activities {
		copied := a
		copied.Participants = append([]string(nil), a.Participants...)
		s.activities[a.Name] = &copied
	}
	return nil
}

// InMemoryRosterEventStore keeps roster events in memory for tests.
type InMemoryRosterEventStore struct {
	mu     sync.RWMutex
	events []models.RosterEvent
}

func NewInMemoryRosterEventStore() *InMemoryRosterEventStore {
	return &InMemoryRosterEventStore{}
}

func (s *InMemoryRosterEventStore) CreateEvent(ctx context.Context, event *models.RosterEvent) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, *event)
	return nil
}

func (s *InMemoryRosterEventStore) GetActivityEvents(ctx context.Context, activity string, limit int64) ([]models.RosterEvent, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var events []models.RosterEvent
	for i := len(s.events) - 1; i >= 0; i-- {
		if s.events[i].Activity == activity {
			events = append(events, s.events[i])
			if limit > 0 && int64(len(events)) >= limit {
				break
			}
		}
	}
	return events, nil
}

func (s *InMemoryRosterEventStore) GetEventsSince(ctx context.Context, since time.Time) ([]models.RosterEvent, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var events []models.RosterEvent
	for _, e := range s.events {
		if !e.Timestamp.Before(since) {
			events = append(events, e)
		}
	}
	return events, nil
}
