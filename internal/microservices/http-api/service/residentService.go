package service

import (
	"context"
	"log/slog"

	"dormhub/internal/microservices/http-api/models"
	"dormhub/internal/microservices/http-api/repository"
)

type ResidentService interface {
	ListResidents(ctx context.Context) ([]models.Resident, error)
	ListResidentsWithoutRoom(ctx context.Context) ([]models.Resident, error)
	ListRoomResidents(ctx context.Context, roomID int64) ([]models.RoomResidentView, error)
	GetResident(ctx context.Context, residentID int64) (*models.Resident, error)
	CreateResident(ctx context.Context, resident *models.Resident) (*models.Resident, error)
	UpdateResident(ctx context.Context, residentID int64, fields map[string]any) (*models.Resident, error)
	DeleteResident(ctx context.Context, residentID int64) error
}

type residentService struct {
	residentRepo repository.ResidentRepository
	log          *slog.Logger
	notifier     RatingNotifier
}

// NewResidentService builds the resident service. notifier receives the
// rating changes that come with creating and deleting residents; it may be nil.
func NewResidentService(residentRepo repository.ResidentRepository, log *slog.Logger, notifier RatingNotifier) ResidentService {
	return &residentService{
		residentRepo: residentRepo,
		log:          log,
		notifier:     orNoop(notifier),
	}
}

func (s *residentService) ListResidents(ctx context.Context) ([]models.Resident, error) {
	return s.residentRepo.List(ctx)
}

func (s *residentService) ListResidentsWithoutRoom(ctx context.Context) ([]models.Resident, error) {
	return s.residentRepo.ListWithoutRoom(ctx)
}

func (s *residentService) ListRoomResidents(ctx context.Context, roomID int64) ([]models.RoomResidentView, error) {
	return s.residentRepo.ListByRoom(ctx, roomID)
}

func (s *residentService) GetResident(ctx context.Context, residentID int64) (*models.Resident, error) {
	resident, err := s.residentRepo.GetByID(ctx, residentID)
	if err != nil {
		return nil, translate(err, "resident")
	}
	return resident, nil
}

// CreateResident registers a resident together with the default rating
// (no achievements, no infractions, overall 3).
func (s *residentService) CreateResident(ctx context.Context, resident *models.Resident) (*models.Resident, error) {
	rating := NewInitialRating(0)
	if err := s.residentRepo.CreateWithRating(ctx, resident, rating); err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "resident created",
		"resident_id", resident.ID,
		"rating_id", rating.ID,
	)
	publishRating(s.notifier, RatingCreated, "", *rating)
	return resident, nil
}

func (s *residentService) UpdateResident(ctx context.Context, residentID int64, fields map[string]any) (*models.Resident, error) {
	resident, err := s.residentRepo.Update(ctx, residentID, fields)
	if err != nil {
		return nil, translate(err, "resident")
	}
	return resident, nil
}

// DeleteResident removes the resident and every rating it owns
func (s *residentService) DeleteResident(ctx context.Context, residentID int64) error {
	ratings, err := s.residentRepo.DeleteWithRatings(ctx, residentID)
	if err != nil {
		return translate(err, "resident")
	}

	s.log.InfoContext(ctx, "resident deleted",
		"resident_id", residentID,
		"ratings_removed", len(ratings),
	)
	for _, rating := range ratings {
		publishRating(s.notifier, RatingDeleted, "", rating)
	}
	return nil
}
