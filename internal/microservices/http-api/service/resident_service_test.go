package service

import (
	"context"
	"testing"

	"dormhub/internal/microservices/http-api/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResidentService_CreateAddsDefaultRating(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	resident, err := s.residents.CreateResident(ctx, newResident("Hana"))
	require.NoError(t, err)
	assert.NotZero(t, resident.ID)

	rating, err := s.ratings.GetRatingByResident(ctx, resident.ID)
	require.NoError(t, err)
	assert.Equal(t, resident.ID, rating.ResidentID)
	assert.Equal(t, 0.0, rating.AchievementScore)
	assert.Equal(t, 0.0, rating.InfractionScore)
	assert.Equal(t, 3.0, rating.OverallScore)
}

func TestResidentService_DeleteRemovesRating(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	resident, err := s.residents.CreateResident(ctx, newResident("Ivan"))
	require.NoError(t, err)

	require.NoError(t, s.residents.DeleteResident(ctx, resident.ID))

	_, err = s.ratings.GetRatingByResident(ctx, resident.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	var count int64
	require.NoError(t, s.db.Model(&models.Resident{}).Where("id = ?", resident.ID).Count(&count).Error)
	assert.Zero(t, count)
}

func TestResidentService_DeleteMissing(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	kept := s.seedRating(t, "Jana")

	err := s.residents.DeleteResident(ctx, 9999)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = s.ratings.GetRatingByResident(ctx, kept.ResidentID)
	assert.NoError(t, err)
}

func TestResidentService_UpdateMissing(t *testing.T) {
	s := newTestStore(t)

	_, err := s.residents.UpdateResident(context.Background(), 9999, map[string]any{"status": "left"})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestResidentService_ListWithoutRoom(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	floor := &models.Floor{FloorNumber: 1}
	require.NoError(t, s.db.Create(floor).Error)
	block := &models.Block{FloorID: floor.ID, BlockName: "A"}
	require.NoError(t, s.db.Create(block).Error)
	room := &models.Room{BlockID: block.ID, RoomNumber: 101, MaxCapacity: 2}
	require.NoError(t, s.db.Create(room).Error)

	housed := newResident("Kai")
	housed.RoomID = &room.ID
	_, err := s.residents.CreateResident(ctx, housed)
	require.NoError(t, err)
	homeless, err := s.residents.CreateResident(ctx, newResident("Lea"))
	require.NoError(t, err)

	unassigned, err := s.residents.ListResidentsWithoutRoom(ctx)
	require.NoError(t, err)
	require.Len(t, unassigned, 1)
	assert.Equal(t, homeless.ID, unassigned[0].ID)
	assert.Nil(t, unassigned[0].RoomID)
}

func TestResidentService_PublishesRatingChanges(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	resident, err := s.residents.CreateResident(ctx, newResident("Mira"))
	require.NoError(t, err)

	events := s.events.Events()
	require.Len(t, events, 1)
	assert.Equal(t, RatingCreated, events[0].Kind)
	assert.Equal(t, resident.ID, events[0].Rating.ResidentID)
	assert.NotZero(t, events[0].Rating.ID)
	assert.Equal(t, 3.0, events[0].Rating.OverallScore)
	ratingID := events[0].Rating.ID

	require.NoError(t, s.residents.DeleteResident(ctx, resident.ID))

	events = s.events.Events()
	require.Len(t, events, 2)
	assert.Equal(t, RatingDeleted, events[1].Kind)
	assert.Equal(t, ratingID, events[1].Rating.ID)
	assert.Equal(t, resident.ID, events[1].Rating.ResidentID)

	// failures publish nothing
	assert.ErrorIs(t, s.residents.DeleteResident(ctx, resident.ID), ErrNotFound)
	assert.Len(t, s.events.Events(), 2)
}
