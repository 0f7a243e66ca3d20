package postgres

import (
	"context"
	"fmt"

	"github.com/cwrk-planet/rooms-api/internal/domain"
	"github.com/cwrk-planet/rooms-api/internal/schema"

	"github.com/jackc/pgx/v5"
)

// Seeder очищает и заполняет rooms/questions. Только для dev/test окружений.
type Seeder struct {
	db txBeginner
}

func NewSeeder(db txBeginner) *Seeder {
	return &Seeder{db: db}
}

// Reset удаляет все строки из questions и rooms.
func (s *Seeder) Reset(ctx context.Context) error {
	if _, err := s.db.Exec(ctx, queryResetSeedTables); err != nil {
		return fmt.Errorf("truncate: %w", err)
	}
	return nil
}

// Seed заливает комнаты и вопросы одной транзакцией через COPY.
// Комнаты пишутся первыми: на них ссылаются вопросы.
func (s *Seeder) Seed(ctx context.Context, rooms []domain.Room, questions []domain.Question) error {
	tx, err := s.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback(ctx)

	roomRows := make([][]any, 0, len(rooms))
	for _, rm := range rooms {
		roomRows = append(roomRows, []any{rm.ID, rm.Name, rm.Description, rm.CreatedAt})
	}
	if _, err := tx.CopyFrom(ctx,
		pgx.Identifier{schema.Rooms.Name},
		schema.Rooms.Columns(),
		pgx.CopyFromRows(roomRows),
	); err != nil {
		return fmt.Errorf("copy %s: %w", schema.Rooms.Name, err)
	}

	questionRows := make([][]any, 0, len(questions))
	for _, qn := range questions {
		questionRows = append(questionRows, []any{qn.ID, qn.RoomID, qn.Question, qn.Answer, qn.CreatedAt})
	}
	if _, err := tx.CopyFrom(ctx,
		pgx.Identifier{schema.Questions.Name},
		schema.Questions.Columns(),
		pgx.CopyFromRows(questionRows),
	); err != nil {
		return fmt.Errorf("copy %s: %w", schema.Questions.Name, err)
	}

	return tx.Commit(ctx)
}
