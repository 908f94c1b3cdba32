package dto

import "dormhub/internal/microservices/http-api/models"

type CreatePublicRoomDTO struct {
	TypeID      int64   `json:"type_id" binding:"required,min=1"`
	RoomName    string  `json:"room_name" binding:"required,max=255"`
	FloorID     int64   `json:"floor_id" binding:"required,min=1"`
	BlockID     *int64  `json:"block_id" binding:"omitempty,min=1"`
	Description *string `json:"description"`
	Capacity    int     `json:"capacity" binding:"min=0"`
}

func (in CreatePublicRoomDTO) ToModel() models.PublicRoom {
	return models.PublicRoom{
		TypeID:      in.TypeID,
		RoomName:    in.RoomName,
		FloorID:     in.FloorID,
		BlockID:     in.BlockID,
		Description: in.Description,
		Capacity:    in.Capacity,
	}
}

type UpdatePublicRoomDTO struct {
	TypeID      *int64  `json:"type_id" binding:"omitempty,min=1"`
	RoomName    *string `json:"room_name" binding:"omitempty,min=1,max=255"`
	FloorID     *int64  `json:"floor_id" binding:"omitempty,min=1"`
	BlockID     *int64  `json:"block_id" binding:"omitempty,min=1"`
	Description *string `json:"description"`
	Capacity    *int    `json:"capacity" binding:"omitempty,min=0"`
}

func (in UpdatePublicRoomDTO) ToUpdates() map[string]any {
	fields := map[string]any{}
	setIfPresent(fields, "type_id", in.TypeID)
	setIfPresent(fields, "room_name", in.RoomName)
	setIfPresent(fields, "floor_id", in.FloorID)
	setIfPresent(fields, "block_id", in.BlockID)
	setIfPresent(fields, "description", in.Description)
	setIfPresent(fields, "capacity", in.Capacity)
	return fields
}
