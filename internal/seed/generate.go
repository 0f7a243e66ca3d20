// Package seed генерирует фикстуры для dev/test базы: комнаты с названием
// компании и lorem-описанием и вопросы, привязанные к этим комнатам.
package seed

import (
	"errors"
	"time"

	"github.com/brianvoe/gofakeit/v7"

	"github.com/cwrk-planet/rooms-api/internal/domain"
)

const (
	DefaultRooms     = 5
	DefaultQuestions = 20
)

var (
	ErrNegativeCount = errors.New("seed: counts must be >= 0")
	ErrNoRooms       = errors.New("seed: questions require at least one room")
)

type Config struct {
	Rooms     int
	Questions int
	// Seed — зерно генератора; одинаковое ненулевое зерно даёт одинаковые
	// данные, 0 — случайное зерно.
	Seed uint64
	// BaseTime — created_at последней комнаты; ноль — текущее время.
	BaseTime time.Time
}

type Data struct {
	Rooms     []domain.Room
	Questions []domain.Question
}

func Generate(cfg Config) (*Data, error) {
	if cfg.Rooms < 0 || cfg.Questions < 0 {
		return nil, ErrNegativeCount
	}
	if cfg.Questions > 0 && cfg.Rooms == 0 {
		return nil, ErrNoRooms
	}

	base := cfg.BaseTime
	if base.IsZero() {
		base = time.Now().UTC()
	}
	// postgres хранит timestamptz с точностью до микросекунд
	base = base.Truncate(time.Microsecond)

	f := gofakeit.New(cfg.Seed)

	data := &Data{
		Rooms:     make([]domain.Room, 0, cfg.Rooms),
		Questions: make([]domain.Question, 0, cfg.Questions),
	}

	// комнаты идут с шагом в час, последняя — в base
	for i := 0; i < cfg.Rooms; i++ {
		data.Rooms = append(data.Rooms, domain.Room{
			ID:          f.UUID(),
			Name:        f.Company(),
			Description: f.LoremIpsumSentence(12),
			CreatedAt:   base.Add(-time.Duration(cfg.Rooms-1-i) * time.Hour),
		})
	}

	for i := 0; i < cfg.Questions; i++ {
		room := data.Rooms[f.Number(0, len(data.Rooms)-1)]

		var answer *string
		if f.Bool() {
			a := f.LoremIpsumSentence(8)
			answer = &a
		}

		data.Questions = append(data.Questions, domain.Question{
			ID:        f.UUID(),
			RoomID:    room.ID,
			Question:  f.Question(),
			Answer:    answer,
			CreatedAt: room.CreatedAt.Add(time.Duration(f.Number(1, 60)) * time.Minute),
		})
	}

	return data, nil
}
