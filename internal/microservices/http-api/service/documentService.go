package service

import (
	"context"
	"fmt"
	"time"

	"dormhub/internal/document"
	"dormhub/internal/microservices/http-api/repository"
)

// NoticeRenderer turns a notice into a file and returns its path
type NoticeRenderer interface {
	Render(name string, notice document.Notice) (string, error)
}

type DocumentService interface {
	CheckInNotice(ctx context.Context, residentID int64) (string, error)
	RelocationNotice(ctx context.Context, residentID, oldRoomID int64) (string, error)
}

type documentService struct {
	residentRepo repository.ResidentRepository
	renderer     NoticeRenderer
}

func NewDocumentService(residentRepo repository.ResidentRepository, renderer NoticeRenderer) DocumentService {
	return &documentService{residentRepo: residentRepo, renderer: renderer}
}

// CheckInNotice renders the check-in notice of a resident living in a room
func (s *documentService) CheckInNotice(ctx context.Context, residentID int64) (string, error) {
	row, err := s.residentRepo.CheckInRow(ctx, residentID)
	if err != nil {
		return "", translate(err, "resident or room")
	}

	checkOut := "not set"
	if row.DateOfCheckOut != nil {
		checkOut = formatDate(*row.DateOfCheckOut)
	}

	notice := document.Notice{
		Title: "Check-In Notification",
		Lines: []document.Line{
			{Label: "Resident Name", Value: row.FullName},
			{Label: "Room Number", Value: roomLabel(row.RoomNumber, row.BlockName, row.FloorNumber)},
			{Label: "Date of Check-In", Value: formatDate(row.DateOfCheckIn)},
			{Label: "Date of Check-Out", Value: checkOut},
		},
	}
	return s.renderer.Render(fmt.Sprintf("check_in_notice_%d.pdf", residentID), notice)
}

// RelocationNotice renders the move from oldRoomID to the resident's current room
func (s *documentService) RelocationNotice(ctx context.Context, residentID, oldRoomID int64) (string, error) {
	row, err := s.residentRepo.RelocationRow(ctx, residentID, oldRoomID)
	if err != nil {
		return "", translate(err, "resident or room")
	}

	from := "unknown"
	if row.OldRoomNumber != nil && row.OldBlockName != nil && row.OldFloorNumber != nil {
		from = roomLabel(*row.OldRoomNumber, *row.OldBlockName, *row.OldFloorNumber)
	}

	notice := document.Notice{
		Title: "Notification of Relocation",
		Lines: []document.Line{
			{Label: "Resident Name", Value: row.FullName},
			{Label: "From Room", Value: from},
			{Label: "To Room", Value: roomLabel(row.CurrentRoomNumber, row.CurrentBlockName, row.CurrentFloorNumber)},
		},
	}
	return s.renderer.Render(fmt.Sprintf("relocation_notice_%d.pdf", residentID), notice)
}

func roomLabel(room int, block string, floor int) string {
	return fmt.Sprintf("%d (Block: %s, Floor: %d)", room, block, floor)
}

func formatDate(t time.Time) string {
	return t.Format("2006-01-02")
}
