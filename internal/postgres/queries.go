package postgres

import (
	"fmt"

	"github.com/cwrk-planet/rooms-api/internal/schema"
)

var (
	// COUNT(q.id) не считает NULL-строки левого соединения,
	// поэтому комната без вопросов получает 0.
	// Порядок при равном created_at не задан.
	queryListRoomSummaries = fmt.Sprintf(`
		SELECT r.%[3]s, r.%[4]s, r.%[5]s, r.%[6]s, COUNT(q.%[7]s) AS questions
		FROM %[1]s AS r
		LEFT JOIN %[2]s AS q ON q.%[8]s = r.%[3]s
		GROUP BY r.%[3]s
		ORDER BY r.%[6]s`,
		schema.Rooms.Name, schema.Questions.Name,
		schema.Rooms.ID, schema.Rooms.RoomName, schema.Rooms.Description, schema.Rooms.CreatedAt,
		schema.Questions.ID, schema.Questions.RoomID,
	)

	// CASCADE на случай других таблиц, ссылающихся на rooms.
	queryResetSeedTables = fmt.Sprintf(`TRUNCATE TABLE %s, %s CASCADE`,
		schema.Questions.Name, schema.Rooms.Name)
)
