package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/cwrk-planet/rooms-api/internal/domain"
	"github.com/cwrk-planet/rooms-api/internal/metrics"
)

type RoomRepository struct {
	db querier
}

func NewRoomRepository(db querier) *RoomRepository {
	return &RoomRepository{db: db}
}

// ListSummaries возвращает все комнаты с количеством вопросов, по возрастанию created_at.
// Любая ошибка хранилища оборачивается в domain.ErrStoreQuery, частичного результата нет.
func (r *RoomRepository) ListSummaries(ctx context.Context) (out []domain.RoomSummary, err error) {
	defer func(start time.Time) {
		metrics.ObserveQuery("list_room_summaries", start, err)
	}(time.Now())

	rows, err := r.db.Query(ctx, queryListRoomSummaries)
	if err != nil {
		return nil, fmt.Errorf("%w: list room summaries: %w", domain.ErrStoreQuery, err)
	}
	defer rows.Close()

	out = make([]domain.RoomSummary, 0, 16)
	for rows.Next() {
		var s domain.RoomSummary
		if err := rows.Scan(&s.ID, &s.Name, &s.Description, &s.CreatedAt, &s.Questions); err != nil {
			return nil, fmt.Errorf("%w: scan room summary: %w", domain.ErrStoreQuery, err)
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterate room summaries: %w", domain.ErrStoreQuery, err)
	}

	return out, nil
}
