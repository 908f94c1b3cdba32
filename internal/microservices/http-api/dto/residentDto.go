package dto

import (
	"time"

	"dormhub/internal/microservices/http-api/models"
)

// CreateResidentDTO for registering a resident
type CreateResidentDTO struct {
	UserID         *int64  `json:"user_id" binding:"omitempty,min=1"`
	FullName       string  `json:"full_name" binding:"required,max=255"`
	Gender         string  `json:"gender" binding:"required,max=50"`
	Citizenship    string  `json:"citizenship" binding:"required,max=100"`
	Role           string  `json:"role" binding:"required,max=100"`
	Faculty        *string `json:"faculty" binding:"omitempty,max=100"`
	GroupNumber    *string `json:"group_number" binding:"omitempty,max=50"`
	DateOfCheckIn  *string `json:"date_of_check_in" binding:"omitempty,datetime=2006-01-02"`
	DateOfCheckOut *string `json:"date_of_check_out" binding:"omitempty,datetime=2006-01-02"`
	RoomID         *int64  `json:"room_id" binding:"omitempty,min=1"`
	Email          string  `json:"email" binding:"required,email,max=255"`
	Status         string  `json:"status" binding:"required,max=100"`
}

// ToModel converts the payload; check-in defaults to the given day
func (in CreateResidentDTO) ToModel(today time.Time) (models.Resident, error) {
	checkIn, err := parseDate("date_of_check_in", in.DateOfCheckIn)
	if err != nil {
		return models.Resident{}, err
	}
	checkOut, err := parseDate("date_of_check_out", in.DateOfCheckOut)
	if err != nil {
		return models.Resident{}, err
	}
	if checkIn == nil {
		y, m, d := today.Date()
		day := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
		checkIn = &day
	}

	return models.Resident{
		UserID:         in.UserID,
		FullName:       in.FullName,
		Gender:         in.Gender,
		Citizenship:    in.Citizenship,
		Role:           in.Role,
		Faculty:        in.Faculty,
		GroupNumber:    in.GroupNumber,
		DateOfCheckIn:  *checkIn,
		DateOfCheckOut: checkOut,
		RoomID:         in.RoomID,
		Email:          in.Email,
		Status:         in.Status,
	}, nil
}

// UpdateResidentDTO only changes the supplied fields
type UpdateResidentDTO struct {
	FullName       *string `json:"full_name" binding:"omitempty,min=1,max=255"`
	Gender         *string `json:"gender" binding:"omitempty,min=1,max=50"`
	Citizenship    *string `json:"citizenship" binding:"omitempty,min=1,max=100"`
	Role           *string `json:"role" binding:"omitempty,min=1,max=100"`
	Faculty        *string `json:"faculty" binding:"omitempty,max=100"`
	GroupNumber    *string `json:"group_number" binding:"omitempty,max=50"`
	DateOfCheckIn  *string `json:"date_of_check_in" binding:"omitempty,datetime=2006-01-02"`
	DateOfCheckOut *string `json:"date_of_check_out" binding:"omitempty,datetime=2006-01-02"`
	RoomID         *int64  `json:"room_id" binding:"omitempty,min=1"`
	Email          *string `json:"email" binding:"omitempty,email,max=255"`
	Status         *string `json:"status" binding:"omitempty,min=1,max=100"`
}

// ToUpdates returns the column → value map of supplied fields
func (in UpdateResidentDTO) ToUpdates() (map[string]any, error) {
	fields := map[string]any{}
	setIfPresent(fields, "full_name", in.FullName)
	setIfPresent(fields, "gender", in.Gender)
	setIfPresent(fields, "citizenship", in.Citizenship)
	setIfPresent(fields, "role", in.Role)
	setIfPresent(fields, "faculty", in.Faculty)
	setIfPresent(fields, "group_number", in.GroupNumber)
	setIfPresent(fields, "room_id", in.RoomID)
	setIfPresent(fields, "email", in.Email)
	setIfPresent(fields, "status", in.Status)

	checkIn, err := parseDate("date_of_check_in", in.DateOfCheckIn)
	if err != nil {
		return nil, err
	}
	setIfPresent(fields, "date_of_check_in", checkIn)

	checkOut, err := parseDate("date_of_check_out", in.DateOfCheckOut)
	if err != nil {
		return nil, err
	}
	setIfPresent(fields, "date_of_check_out", checkOut)

	return fields, nil
}

func setIfPresent[T any](fields map[string]any, column string, value *T) {
	if value != nil {
		fields[column] = *value
	}
}
