// Package schema — общее описание таблиц rooms и questions.
// Из этих имён собираются и запрос на чтение, и сидер.
package schema

type roomsTable struct {
	Name        string
	ID          string
	RoomName    string
	Description string
	CreatedAt   string
}

// Columns — колонки в порядке вставки.
func (t roomsTable) Columns() []string {
	return []string{t.ID, t.RoomName, t.Description, t.CreatedAt}
}

type questionsTable struct {
	Name      string
	ID        string
	RoomID    string
	Question  string
	Answer    string
	CreatedAt string
}

// Columns — колонки в порядке вставки.
func (t questionsTable) Columns() []string {
	return []string{t.ID, t.RoomID, t.Question, t.Answer, t.CreatedAt}
}

var Rooms = roomsTable{
	Name:        "rooms",
	ID:          "id",
	RoomName:    "name",
	Description: "description",
	CreatedAt:   "created_at",
}

// Questions.RoomID ссылается на Rooms.ID (many-to-one).
var Questions = questionsTable{
	Name:      "questions",
	ID:        "id",
	RoomID:    "room_id",
	Question:  "question",
	Answer:    "answer",
	CreatedAt: "created_at",
}
