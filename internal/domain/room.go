package domain

import "time"

type Room struct {
	ID          string    `db:"id"`
	Name        string    `db:"name"`
	Description string    `db:"description"`
	CreatedAt   time.Time `db:"created_at"`
}

type Question struct {
	ID        string    `db:"id"`
	RoomID    string    `db:"room_id"`
	Question  string    `db:"question"`
	Answer    *string   `db:"answer"`
	CreatedAt time.Time `db:"created_at"`
}

// RoomSummary — комната вместе с количеством её вопросов (0, если вопросов нет).
type RoomSummary struct {
	Room
	Questions int64 `db:"questions"`
}
