package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Activity represents an extracurricular activity students can sign up for.
// The name is the unique key; API responses are keyed by it, so it is
// excluded from the JSON body of each entry.
type Activity struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	Name            string             `bson:"name" json:"-"`
	Description     string             `bson:"description" json:"description"`
	Schedule        string             `bson:"schedule" json:"schedule"`
	MaxParticipants int                `bson:"max_participants" json:"max_participants"`
	Participants    []string           `bson:"participants" json:"participants"`
}

// SpotsLeft returns the remaining capacity. It can go negative if the stored
// roster exceeds max_participants; callers display it as-is.
func (a Activity) SpotsLeft() int {
	return a.MaxParticipants - len(a.Participants)
}

// HasParticipant reports whether the email is already on the roster.
func (a Activity) HasParticipant(email string) bool {
	for _, p := range a.Participants {
		if p == email {
			return true
		}
	}
	return false
}
