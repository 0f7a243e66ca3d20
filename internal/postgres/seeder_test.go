package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/cwrk-planet/rooms-api/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/require"
)

func setupSeeder(t *testing.T) (pgxmock.PgxPoolIface, *Seeder) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)

	return mock, NewSeeder(mock)
}

func fixtures() ([]domain.Room, []domain.Question) {
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	rooms := []domain.Room{
		{ID: "r1", Name: "Acme", Description: "lorem", CreatedAt: now},
	}
	questions := []domain.Question{
		{ID: "q1", RoomID: "r1", Question: "why?", CreatedAt: now},
		{ID: "q2", RoomID: "r1", Question: "how?", CreatedAt: now},
	}
	return rooms, questions
}

func TestSeeder_Reset(t *testing.T) {
	mock, s := setupSeeder(t)

	mock.ExpectExec(`TRUNCATE TABLE questions, rooms CASCADE`).
		WillReturnResult(pgxmock.NewResult("TRUNCATE", 0))

	require.NoError(t, s.Reset(context.Background()))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSeeder_Seed_CopiesRoomsBeforeQuestions(t *testing.T) {
	mock, s := setupSeeder(t)
	rooms, questions := fixtures()

	mock.ExpectBegin()
	mock.ExpectCopyFrom(pgx.Identifier{"rooms"}, []string{"id", "name", "description", "created_at"}).
		WillReturnResult(1)
	mock.ExpectCopyFrom(pgx.Identifier{"questions"}, []string{"id", "room_id", "question", "answer", "created_at"}).
		WillReturnResult(2)
	mock.ExpectCommit()

	require.NoError(t, s.Seed(context.Background(), rooms, questions))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSeeder_Seed_RollsBackOnCopyError(t *testing.T) {
	mock, s := setupSeeder(t)
	rooms, questions := fixtures()

	mock.ExpectBegin()
	mock.ExpectCopyFrom(pgx.Identifier{"rooms"}, []string{"id", "name", "description", "created_at"}).
		WillReturnError(errors.New("fk violation"))
	mock.ExpectRollback()

	err := s.Seed(context.Background(), rooms, questions)
	require.ErrorContains(t, err, "copy rooms")
	require.NoError(t, mock.ExpectationsWereMet())
}
