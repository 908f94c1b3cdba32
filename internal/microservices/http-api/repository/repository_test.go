package repository

import (
	"context"
	"strings"
	"testing"
	"time"

	"dormhub/internal/microservices/http-api/models"
	"dormhub/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func seedResident(t *testing.T, db *gorm.DB, roomID *int64) (*models.Resident, *models.ResidentRating) {
	t.Helper()
	resident := &models.Resident{
		FullName:      "Noor",
		Gender:        "female",
		Citizenship:   "NL",
		Role:          "student",
		DateOfCheckIn: time.Date(2024, 9, 1, 0, 0, 0, 0, time.UTC),
		RoomID:        roomID,
		Email:         "noor@example.com",
		Status:        "active",
	}
	rating := &models.ResidentRating{OverallScore: 3}
	require.NoError(t, NewResidentRepository(db).CreateWithRating(context.Background(), resident, rating))
	return resident, rating
}

func TestRatingRepository_Adjust(t *testing.T) {
	db := testutil.OpenTestDB(t)
	repo := NewRatingRepository(db)
	ctx := context.Background()
	_, rating := seedResident(t, db, nil)

	got, err := repo.Adjust(ctx, rating.ID, func(r *models.ResidentRating) {
		r.AchievementScore += 0.5
		r.OverallScore = 0 // zero values are written too
	})
	require.NoError(t, err)
	assert.Equal(t, 0.5, got.AchievementScore)

	stored, err := repo.GetByID(ctx, rating.ID)
	require.NoError(t, err)
	assert.Equal(t, 0.5, stored.AchievementScore)
	assert.Equal(t, 0.0, stored.OverallScore)

	_, err = repo.Adjust(ctx, 9999, func(*models.ResidentRating) { t.Fatal("apply called for a missing rating") })
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

// SQLite drops row locks from the generated SQL, so the lock is checked
// against the postgres dialect without a server.
func TestRatingRepository_AdjustLocksRowOnPostgres(t *testing.T) {
	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN: "host=localhost user=dormhub dbname=dormhub sslmode=disable",
	}), &gorm.Config{
		DryRun:               true,
		DisableAutomaticPing: true,
		Logger:               logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	var rating models.ResidentRating
	stmt := lockRating(db.Session(&gorm.Session{}), 7, &rating).Statement
	query := strings.TrimSpace(stmt.SQL.String())

	assert.True(t, strings.HasPrefix(query, `SELECT * FROM "residents_ratings"`), query)
	assert.True(t, strings.HasSuffix(query, "FOR UPDATE"), query)
}

func TestRatingRepository_CreateDuplicateResident(t *testing.T) {
	db := testutil.OpenTestDB(t)
	repo := NewRatingRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &models.ResidentRating{ResidentID: 5, OverallScore: 3}))
	err := repo.Create(ctx, &models.ResidentRating{ResidentID: 5, OverallScore: 4})
	assert.ErrorIs(t, err, ErrDuplicate)

	all, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, 3.0, all[0].OverallScore)
}

func TestResidentRepository_CreateWithRatingRollsBack(t *testing.T) {
	db := testutil.OpenTestDB(t)
	ctx := context.Background()

	// the first resident gets id 1, whose rating slot is already taken
	require.NoError(t, db.Create(&models.ResidentRating{ResidentID: 1, OverallScore: 3}).Error)

	resident := &models.Resident{
		FullName:      "Otto",
		Gender:        "male",
		Citizenship:   "DE",
		Role:          "student",
		DateOfCheckIn: time.Date(2024, 9, 1, 0, 0, 0, 0, time.UTC),
		Email:         "otto@example.com",
		Status:        "active",
	}
	err := NewResidentRepository(db).CreateWithRating(ctx, resident, &models.ResidentRating{OverallScore: 3})
	require.Error(t, err)
	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)
	assert.Equal(t, int64(1), resident.ID)

	var count int64
	require.NoError(t, db.Model(&models.Resident{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestResidentRepository_CreateWithRatingLinksRating(t *testing.T) {
	db := testutil.OpenTestDB(t)
	resident, rating := seedResident(t, db, nil)

	assert.NotZero(t, resident.ID)
	assert.Equal(t, resident.ID, rating.ResidentID)

	stored, err := NewRatingRepository(db).GetByResident(context.Background(), resident.ID)
	require.NoError(t, err)
	assert.Equal(t, rating.ID, stored.ID)
}

func TestResidentRepository_DeleteWithRatings(t *testing.T) {
	db := testutil.OpenTestDB(t)
	repo := NewResidentRepository(db)
	ctx := context.Background()
	resident, rating := seedResident(t, db, nil)

	removed, err := repo.DeleteWithRatings(ctx, resident.ID)
	require.NoError(t, err)
	require.Len(t, removed, 1)
	assert.Equal(t, rating.ID, removed[0].ID)
	assert.Equal(t, resident.ID, removed[0].ResidentID)

	_, err = NewRatingRepository(db).GetByResident(ctx, resident.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	removed, err = repo.DeleteWithRatings(ctx, resident.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	assert.Empty(t, removed)
}

func TestResidentRepository_NoticeRowsMissing(t *testing.T) {
	db := testutil.OpenTestDB(t)
	repo := NewResidentRepository(db)
	ctx := context.Background()

	// a resident without a room has nothing to render
	resident, _ := seedResident(t, db, nil)

	_, err := repo.CheckInRow(ctx, resident.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	_, err = repo.RelocationRow(ctx, resident.ID, 1)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	_, err = repo.CheckInRow(ctx, 9999)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestResidentRepository_RelocationRowOuterJoin(t *testing.T) {
	db := testutil.OpenTestDB(t)
	ctx := context.Background()

	floor := &models.Floor{FloorNumber: 2}
	require.NoError(t, db.Create(floor).Error)
	block := &models.Block{FloorID: floor.ID, BlockName: "B"}
	require.NoError(t, db.Create(block).Error)
	oldRoom := &models.Room{BlockID: block.ID, RoomNumber: 201, MaxCapacity: 2}
	require.NoError(t, db.Create(oldRoom).Error)
	newRoom := &models.Room{BlockID: block.ID, RoomNumber: 202, MaxCapacity: 2}
	require.NoError(t, db.Create(newRoom).Error)
	resident, _ := seedResident(t, db, &newRoom.ID)

	row, err := NewResidentRepository(db).RelocationRow(ctx, resident.ID, oldRoom.ID)
	require.NoError(t, err)
	assert.Equal(t, "Noor", row.FullName)
	assert.Equal(t, 202, row.CurrentRoomNumber)
	require.NotNil(t, row.OldRoomNumber)
	assert.Equal(t, 201, *row.OldRoomNumber)

	row, err = NewResidentRepository(db).RelocationRow(ctx, resident.ID, 9999)
	require.NoError(t, err)
	assert.Nil(t, row.OldRoomNumber)
	assert.Nil(t, row.OldBlockName)
}

func TestSessionDenylist_NoopWithoutRedis(t *testing.T) {
	denylist := NewSessionDenylist(nil)
	ctx := context.Background()

	require.NoError(t, denylist.Revoke(ctx, "jti-1", time.Hour))
	revoked, err := denylist.IsRevoked(ctx, "jti-1")
	require.NoError(t, err)
	assert.False(t, revoked)
}
