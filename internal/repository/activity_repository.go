package repository

import (
	"context"
	"errors"

	"github.com/mergington-hs/activity-signup/internal/models"
	"github.com/mergington-hs/activity-signup/pkg/logger"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ActivityRepository handles database operations related to activities.
type ActivityRepository struct {
	collection *mongo.Collection
}

// NewActivityRepository creates a new instance of ActivityRepository.
func NewActivityRepository(db *mongo.Database) *ActivityRepository {
	return &ActivityRepository{
		collection: db.Collection("activities"),
	}
}

// ListActivities fetches all activities sorted by name.
func (r *ActivityRepository) ListActivities(ctx context.Context) ([]models.Activity, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	cursor, err := r.collection.Find(ctx, bson.M{}, findOptions)
	if err != nil {
		logger.Log.WithError(err).Error("Failed to fetch activities")
		return nil, err
	}
	defer cursor.Close(ctx)

	var activities []models.Activity
	if err := cursor.All(ctx, &activities); err != nil {
		logger.Log.WithError(err).Error("Failed to decode activities")
		return nil, err
	}

	return activities, nil
}

// GetActivity fetches a single activity by its name.
func (r *ActivityRepository) GetActivity(ctx context.Context, name string) (*models.Activity, error) {
	var activity models.Activity

	err := r.collection.FindOne(ctx, bson.M{"name": name}).Decode(&activity)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, models.ErrActivityNotFound
		}
		logger.Log.WithError(err).WithField("activity", name).Error("Failed to find activity")
		return nil, err
	}

	return &activity, nil
}

// AddParticipant appends an email to an activity's roster, preserving
// insertion order.
func (r *ActivityRepository) AddParticipant(ctx context.Context, name, email string) error {
	result, err := r.collection.UpdateOne(
		ctx,
		bson.M{"name": name},
		bson.M{"$push": bson.M{"participants": email}},
	)
	if err != nil {
		logger.Log.WithError(err).WithField("activity", name).Error("Failed to add participant")
		return err
	}
	if result.MatchedCount == 0 {
		return models.ErrActivityNotFound
	}

	logger.Log.WithFields(map[string]interface{}{
		"activity": name,
		"email":    email,
	}).Info("Participant added to activity")
	return nil
}

// RemoveParticipant pulls an email from an activity's roster.
func (r *ActivityRepository) RemoveParticipant(ctx context.Context, name, email string) error {
	result, err := r.collection.UpdateOne(
		ctx,
		bson.M{"name": name},
		bson.M{"$pull": bson.M{"participants": email}},
	)
	if err != nil {
		logger.Log.WithError(err).WithField("activity", name).Error("Failed to remove participant")
		return err
	}
	if result.MatchedCount == 0 {
		return models.ErrActivityNotFound
	}
	if result.ModifiedCount == 0 {
		return models.ErrParticipantNotFound
	}

	logger.Log.WithFields(map[string]interface{}{
		"activity": name,
		"email":    email,
	}).Info("Participant removed from activity")
	return nil
}

// CountActivities returns the number of stored activities.
func (r *ActivityRepository) CountActivities(ctx context.Context) (int64, error) {
	count, err := r.collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		logger.Log.WithError(err).Error("Failed to count activities")
		return 0, err
	}
	return count, nil
}

// InsertActivities bulk-inserts the given activities. Used for seeding.
func (r *ActivityRepository) InsertActivities(ctx context.Context, activities []models.Activity) error {
	docs := make([]interface{}, 0, len(activities))
	for _, a := range activities {
		docs = append(docs, a)
	}

	opts := options.InsertMany().SetOrdered(true)
	_, err := r.collection.InsertMany(ctx, docs, opts)
	if err != nil {
		logger.Log.WithError(err).Error("Failed to insert activities")
		return err
	}

	logger.Log.WithField("count", len(activities)).Info("Activities inserted")
	return nil
}
