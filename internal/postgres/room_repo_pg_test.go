package postgres

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/cwrk-planet/rooms-api/internal/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Временные таблицы живут в pg_temp соединения и перекрывают public.rooms/questions,
// поэтому тест не трогает реальные данные.
const createTempSchema = `
	CREATE TEMP TABLE rooms (
		id          uuid PRIMARY KEY,
		name        text NOT NULL,
		description text NOT NULL,
		created_at  timestamptz NOT NULL DEFAULT now()
	);
	CREATE TEMP TABLE questions (
		id         uuid PRIMARY KEY,
		room_id    uuid NOT NULL REFERENCES rooms (id),
		question   text NOT NULL,
		answer     text,
		created_at timestamptz NOT NULL DEFAULT now()
	);`

// setupPostgres — одно соединение (temp-таблицы видны только ему); без DATABASE_URL тест пропускается.
func setupPostgres(t *testing.T) *pgx.Conn {
	t.Helper()
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" || testing.Short() {
		t.Skip("DATABASE_URL not set")
	}

	ctx := context.Background()
	conn, err := pgx.Connect(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close(context.Background()) })

	_, err = conn.Exec(ctx, createTempSchema)
	require.NoError(t, err)

	return conn
}

func TestListSummaries_Postgres(t *testing.T) {
	conn := setupPostgres(t)
	ctx := context.Background()
	repo := NewRoomRepository(conn)
	seeder := NewSeeder(conn)

	got, err := repo.ListSummaries(ctx)
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)

	t1 := time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC)
	t2 := t1.Add(time.Hour)
	roomA := domain.Room{ID: uuid.NewString(), Name: "Room A", Description: "no questions", CreatedAt: t1}
	roomB := domain.Room{ID: uuid.NewString(), Name: "Room B", Description: "three questions", CreatedAt: t2}

	questions := make([]domain.Question, 0, 3)
	for i := 0; i < 3; i++ {
		questions = append(questions, domain.Question{
			ID:        uuid.NewString(),
			RoomID:    roomB.ID,
			Question:  "question?",
			CreatedAt: t2,
		})
	}

	require.NoError(t, seeder.Reset(ctx))
	// B вставляется раньше A: порядок выдачи должен идти от created_at, а не от вставки
	require.NoError(t, seeder.Seed(ctx, []domain.Room{roomB, roomA}, questions))

	got, err = repo.ListSummaries(ctx)
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Equal(t, roomA.ID, got[0].ID)
	assert.Equal(t, "Room A", got[0].Name)
	assert.True(t, got[0].CreatedAt.Equal(t1), "created_at %v", got[0].CreatedAt)
	assert.EqualValues(t, 0, got[0].Questions)

	assert.Equal(t, roomB.ID, got[1].ID)
	assert.True(t, got[1].CreatedAt.Equal(t2), "created_at %v", got[1].CreatedAt)
	assert.EqualValues(t, 3, got[1].Questions)

	again, err := repo.ListSummaries(ctx)
	require.NoError(t, err)
	assert.Equal(t, got, again)

	require.NoError(t, seeder.Reset(ctx))
	got, err = repo.ListSummaries(ctx)
	require.NoError(t, err)
	assert.Empty(t, got)
}
