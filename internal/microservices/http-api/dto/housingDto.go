package dto

import "dormhub/internal/microservices/http-api/models"

// Floors

type CreateFloorDTO struct {
	FloorNumber *int `json:"floor_number" binding:"required"`
}

func (in CreateFloorDTO) ToModel() models.Floor {
	return models.Floor{FloorNumber: *in.FloorNumber}
}

type UpdateFloorDTO struct {
	FloorNumber *int `json:"floor_number"`
}

func (in UpdateFloorDTO) ToUpdates() map[string]any {
	fields := map[string]any{}
	setIfPresent(fields, "floor_number", in.FloorNumber)
	return fields
}

// Blocks

type CreateBlockDTO struct {
	FloorID   int64  `json:"floor_id" binding:"required,min=1"`
	BlockName string `json:"block_name" binding:"required,max=100"`
}

func (in CreateBlockDTO) ToModel() models.Block {
	return models.Block{FloorID: in.FloorID, BlockName: in.BlockName}
}

type UpdateBlockDTO struct {
	FloorID   *int64  `json:"floor_id" binding:"omitempty,min=1"`
	BlockName *string `json:"block_name" binding:"omitempty,min=1,max=100"`
}

func (in UpdateBlockDTO) ToUpdates() map[string]any {
	fields := map[string]any{}
	setIfPresent(fields, "floor_id", in.FloorID)
	setIfPresent(fields, "block_name", in.BlockName)
	return fields
}

// Rooms

type CreateRoomDTO struct {
	BlockID          int64 `json:"block_id" binding:"required,min=1"`
	RoomNumber       *int  `json:"room_number" binding:"required"`
	MaxCapacity      *int  `json:"max_capacity" binding:"required,min=0"`
	CurrentOccupancy *int  `json:"current_occupancy" binding:"required,min=0"`
}

func (in CreateRoomDTO) ToModel() models.Room {
	return models.Room{
		BlockID:          in.BlockID,
		RoomNumber:       *in.RoomNumber,
		MaxCapacity:      *in.MaxCapacity,
		CurrentOccupancy: *in.CurrentOccupancy,
	}
}

type UpdateRoomDTO struct {
	BlockID          *int64 `json:"block_id" binding:"omitempty,min=1"`
	RoomNumber       *int   `json:"room_number"`
	MaxCapacity      *int   `json:"max_capacity" binding:"omitempty,min=0"`
	CurrentOccupancy *int   `json:"current_occupancy" binding:"omitempty,min=0"`
}

func (in UpdateRoomDTO) ToUpdates() map[string]any {
	fields := map[string]any{}
	setIfPresent(fields, "block_id", in.BlockID)
	setIfPresent(fields, "room_number", in.RoomNumber)
	setIfPresent(fields, "max_capacity", in.MaxCapacity)
	setIfPresent(fields, "current_occupancy", in.CurrentOccupancy)
	return fields
}
