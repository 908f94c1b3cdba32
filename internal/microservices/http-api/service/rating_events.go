package service

import (
	"time"

	"dormhub/internal/microservices/http-api/models"
)

// Rating event kinds
const (
	RatingCreated  = "created"
	RatingAdjusted = "adjusted"
	RatingDeleted  = "deleted"
)

// RatingEvent describes one committed change to a rating
type RatingEvent struct {
	Kind       string                `json:"kind"`
	ChangeType string                `json:"change_type,omitempty"`
	Rating     models.ResidentRating `json:"rating"`
	At         time.Time             `json:"at"`
}

// RatingNotifier receives rating events after the change is stored.
// PublishRating must not block the caller.
type RatingNotifier interface {
	PublishRating(event RatingEvent)
}

type noopRatingNotifier struct{}

func (noopRatingNotifier) PublishRating(RatingEvent) {}

func orNoop(notifier RatingNotifier) RatingNotifier {
	if notifier == nil {
		return noopRatingNotifier{}
	}
	return notifier
}

func publishRating(notifier RatingNotifier, kind, changeType string, rating models.ResidentRating) {
	notifier.PublishRating(RatingEvent{
		Kind:       kind,
		ChangeType: changeType,
		Rating:     rating,
		At:         time.Now().UTC(),
	})
}
