package service

import (
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"dormhub/internal/microservices/http-api/models"
	"dormhub/internal/microservices/http-api/repository"
	"dormhub/internal/testutil"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// recordingNotifier keeps every published rating event
type recordingNotifier struct {
	mu     sync.Mutex
	events []RatingEvent
}

func (n *recordingNotifier) PublishRating(event RatingEvent) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.events = append(n.events, event)
}

func (n *recordingNotifier) Events() []RatingEvent {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]RatingEvent(nil), n.events...)
}

type testStore struct {
	db        *gorm.DB
	ratings   RatingService
	residents ResidentService
	events    *recordingNotifier
}

func newTestStore(t *testing.T) *testStore {
	t.Helper()
	db := testutil.OpenTestDB(t)
	log := discardLogger()
	events := &recordingNotifier{}
	return &testStore{
		db:        db,
		ratings:   NewRatingService(repository.NewRatingRepository(db), log, events),
		residents: NewResidentService(repository.NewResidentRepository(db), log, events),
		events:    events,
	}
}

func newResident(name string) *models.Resident {
	return &models.Resident{
		FullName:      name,
		Gender:        "female",
		Citizenship:   "EE",
		Role:          "student",
		DateOfCheckIn: time.Date(2024, 9, 1, 0, 0, 0, 0, time.UTC),
		Email:         "resident@example.com",
		Status:        "active",
	}
}

// seedRating creates a resident (and so its default rating) and returns the rating
func (s *testStore) seedRating(t *testing.T, name string) *models.ResidentRating {
	t.Helper()
	resident, err := s.residents.CreateResident(t.Context(), newResident(name))
	require.NoError(t, err)

	rating, err := s.ratings.GetRatingByResident(t.Context(), resident.ID)
	require.NoError(t, err)
	return rating
}

// setOverall forces a rating into a given state
func (s *testStore) setOverall(t *testing.T, ratingID int64, overall float64) {
	t.Helper()
	require.NoError(t, s.db.Model(&models.ResidentRating{}).
		Where("id = ?", ratingID).
		Update("overall_score", overall).Error)
}
