package service

import (
	"context"
	"fmt"

	"github.com/cwrk-planet/rooms-api/internal/domain"
)

type RoomRepository interface {
	ListSummaries(ctx context.Context) ([]domain.RoomSummary, error)
}

type RoomService struct {
	roomRepo RoomRepository
}

func NewRoomService(roomRepo RoomRepository) *RoomService {
	return &RoomService{roomRepo: roomRepo}
}

// ListRooms возвращает все комнаты с количеством вопросов, старые первыми.
// Ошибки хранилища пробрасываются без повторов.
func (s *RoomService) ListRooms(ctx context.Context) ([]domain.RoomSummary, error) {
	rooms, err := s.roomRepo.ListSummaries(ctx)
	if err != nil {
		return nil, fmt.Errorf("roomRepo.ListSummaries: %w", err)
	}
	return rooms, nil
}
