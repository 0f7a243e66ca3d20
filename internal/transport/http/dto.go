package http

import (
	"time"

	"github.com/cwrk-planet/rooms-api/internal/domain"
)

type RoomItem struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
	Questions   int64     `json:"questions"`
}

func toRoomItems(rooms []domain.RoomSummary) []RoomItem {
	out := make([]RoomItem, 0, len(rooms))
	for _, rm := range rooms {
		out = append(out, RoomItem{
			ID:          rm.ID,
			Name:        rm.Name,
			Description: rm.Description,
			CreatedAt:   rm.CreatedAt,
			Questions:   rm.Questions,
		})
	}
	return out
}
