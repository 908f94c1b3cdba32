package repository

import (
	"context"
	"fmt"

	"dormhub/internal/microservices/http-api/models"

	"gorm.io/gorm"
)

type ResidentRepository interface {
	CreateWithRating(ctx context.Context, resident *models.Resident, rating *models.ResidentRating) error
	Update(ctx context.Context, residentID int64, fields map[string]any) (*models.Resident, error)
	DeleteWithRatings(ctx context.Context, residentID int64) ([]models.ResidentRating, error)
	GetByID(ctx context.Context, residentID int64) (*models.Resident, error)
	List(ctx context.Context) ([]models.Resident, error)
	ListWithoutRoom(ctx context.Context) ([]models.Resident, error)
	ListByRoom(ctx context.Context, roomID int64) ([]models.RoomResidentView, error)
	CheckInRow(ctx context.Context, residentID int64) (*models.CheckInRow, error)
	RelocationRow(ctx context.Context, residentID, oldRoomID int64) (*models.RelocationRow, error)
}

type residentRepository struct {
	db *gorm.DB
}

func NewResidentRepository(db *gorm.DB) ResidentRepository {
	return &residentRepository{db: db}
}

// CreateWithRating inserts the resident and its initial rating as one unit
func (r *residentRepository) CreateWithRating(ctx context.Context, resident *models.Resident, rating *models.ResidentRating) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(resident).Error; err != nil {
			return fmt.Errorf("create resident: %w", err)
		}
		rating.ResidentID = resident.ID
		if err := tx.Create(rating).Error; err != nil {
			return fmt.Errorf("create rating: %w", err)
		}
		return nil
	})
}

func (r *residentRepository) Update(ctx context.Context, residentID int64, fields map[string]any) (*models.Resident, error) {
	return updateByID[models.Resident](ctx, r.db, residentID, fields)
}

// DeleteWithRatings removes the dependent ratings first, then the resident,
// and returns the ratings that were removed.
// Nothing is deleted when the resident does not exist.
func (r *residentRepository) DeleteWithRatings(ctx context.Context, residentID int64) ([]models.ResidentRating, error) {
	var ratings []models.ResidentRating
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("resident_id = ?", residentID).Order("id").Find(&ratings).Error; err != nil {
			return fmt.Errorf("load ratings: %w", err)
		}
		if err := tx.Where("resident_id = ?", residentID).Delete(&models.ResidentRating{}).Error; err != nil {
			return fmt.Errorf("delete ratings: %w", err)
		}
		result := tx.Delete(&models.Resident{}, residentID)
		if result.Error != nil {
			return fmt.Errorf("delete resident: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return ratings, nil
}

func (r *residentRepository) GetByID(ctx context.Context, residentID int64) (*models.Resident, error) {
	return getByID[models.Resident](ctx, r.db, residentID)
}

func (r *residentRepository) List(ctx context.Context) ([]models.Resident, error) {
	var residents []models.Resident
	if err := r.db.WithContext(ctx).Order("id").Find(&residents).Error; err != nil {
		return nil, err
	}
	return residents, nil
}

// ListWithoutRoom returns residents not assigned to any room
func (r *residentRepository) ListWithoutRoom(ctx context.Context) ([]models.Resident, error) {
	var residents []models.Resident
	if err := r.db.WithContext(ctx).Where("room_id IS NULL").Order("id").Find(&residents).Error; err != nil {
		return nil, err
	}
	return residents, nil
}

func (r *residentRepository) ListByRoom(ctx context.Context, roomID int64) ([]models.RoomResidentView, error) {
	var list []models.RoomResidentView
	err := r.db.WithContext(ctx).
		Table("residents").
		Select(`residents.id, residents.full_name, residents.gender, residents.role, residents.citizenship,
			residents.faculty, residents.group_number, residents.date_of_check_in, residents.date_of_check_out,
			residents.email, residents.status, rooms.room_number, rooms.max_capacity, rooms.current_occupancy,
			blocks.block_name, floors.floor_number`).
		Joins("JOIN rooms ON rooms.id = residents.room_id").
		Joins("JOIN blocks ON blocks.id = rooms.block_id").
		Joins("JOIN floors ON floors.id = blocks.floor_id").
		Where("rooms.id = ?", roomID).
		Order("residents.id").
		Scan(&list).Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

// CheckInRow joins the resident with its current room, block and floor
func (r *residentRepository) CheckInRow(ctx context.Context, residentID int64) (*models.CheckInRow, error) {
	var rows []models.CheckInRow
	err := r.db.WithContext(ctx).
		Table("residents").
		Select(`residents.full_name, residents.date_of_check_in, residents.date_of_check_out,
			rooms.room_number, blocks.block_name, floors.floor_number`).
		Joins("JOIN rooms ON rooms.id = residents.room_id").
		Joins("JOIN blocks ON blocks.id = rooms.block_id").
		Joins("JOIN floors ON floors.id = blocks.floor_id").
		Where("residents.id = ?", residentID).
		Limit(1).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &rows[0], nil
}

// RelocationRow joins the resident's current room and, optionally, its previous one
func (r *residentRepository) RelocationRow(ctx context.Context, residentID, oldRoomID int64) (*models.RelocationRow, error) {
	var rows []models.RelocationRow
	err := r.db.WithContext(ctx).
		Table("residents").
		Select(`residents.full_name,
			rooms.room_number AS current_room_number,
			blocks.block_name AS current_block_name,
			floors.floor_number AS current_floor_number,
			old_rooms.room_number AS old_room_number,
			old_blocks.block_name AS old_block_name,
			old_floors.floor_number AS old_floor_number`).
		Joins("JOIN rooms ON rooms.id = residents.room_id").
		Joins("JOIN blocks ON blocks.id = rooms.block_id").
		Joins("JOIN floors ON floors.id = blocks.floor_id").
		Joins("LEFT JOIN rooms AS old_rooms ON old_rooms.id = ?", oldRoomID).
		Joins("LEFT JOIN blocks AS old_blocks ON old_blocks.id = old_rooms.block_id").
		Joins("LEFT JOIN floors AS old_floors ON old_floors.id = old_blocks.floor_id").
		Where("residents.id = ?", residentID).
		Limit(1).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &rows[0], nil
}
