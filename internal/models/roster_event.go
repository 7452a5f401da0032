package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	RosterActionSignup  = "signup"
	RosterActionRemoval = "removal"
)

// RosterEvent is an audit record of a single roster mutation.
type RosterEvent struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Activity  string             `bson:"activity" json:"activity"`
	Email     string             `bson:"email" json:"email"`
	Action    string             `bson:"action" json:"action"` // "signup" or "removal"
	Timestamp time.Time          `bson:"timestamp" json:"timestamp"`
}
