package dto

// CreateCommentDTO for creating a comment on a room
type CreateCommentDTO struct {
	RoomID int64  `json:"room_id" binding:"required,min=1"`
	Text   string `json:"text" binding:"required,min=1,max=5000"`
}

// UpdateCommentDTO for updating a comment
type UpdateCommentDTO struct {
	Text *string `json:"text" binding:"omitempty,min=1,max=5000"`
}
