package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/mergington-hs/activity-signup/internal/models"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// RosterEventRepository stores the audit trail of roster mutations.
type RosterEventRepository struct {
	collection *mongo.Collection
}

func NewRosterEventRepository(db *mongo.Database) *RosterEventRepository {
	return &RosterEventRepository{
		collection: db.Collection("roster_events"),
	}
}

// CreateEvent inserts a new roster event.
func (r *RosterEventRepository) CreateEvent(ctx context.Context, event *models.RosterEvent) error {
	_, err := r.collection.InsertOne(ctx, event)
	if err != nil {
		logrus.WithError(err).Error("Failed to insert roster event")
		return fmt.Errorf("failed to insert roster event: %v", err)
	}
	return nil
}

// GetActivityEvents fetches recent events for a specific activity, newest first.
func (r *RosterEventRepository) GetActivityEvents(ctx context.Context, activity string, limit int64) ([]models.RosterEvent, error) {
	sort := bson.D{{Key: "timestamp", Value: -1}}
	opts := options.Find().SetSort(sort).SetLimit(limit)

	cursor, err := r.collection.Find(ctx, bson.M{"activity": activity}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch roster events: %v", err)
	}
	defer cursor.Close(ctx)

	var events []models.RosterEvent
	if err := cursor.All(ctx, &events); err != nil {
		return nil, fmt.Errorf("failed to decode roster events: %v", err)
	}
	return events, nil
}

// GetEventsSince fetches all events recorded at or after the given time.
func (r *RosterEventRepository) GetEventsSince(ctx context.Context, since time.Time) ([]models.RosterEvent, error) {
	filter := bson.M{"timestamp": bson.M{"$gte": since}}

	cursor, err := r.collection.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch roster events: %v", err)
	}
	defer cursor.Close(ctx)

	var events []models.RosterEvent
	if err := cursor.All(ctx, &events); err != nil {
		return nil, fmt.Errorf("failed to decode roster events: %v", err)
	}
	return events, nil
}
