package state

// UserState представляет текущее состояние пользователя в диалоге
type UserState string

const (
	StateNone UserState = "" // Нет активного состояния

	// Создание клуба
	StateCreateClubName UserState = "create_club_name"

	// Редактирование расписания клуба: каждое сообщение - строка окна или команда черновика
	StateEditingHours UserState = "editing_hours"
)

// Ключи временных данных диалога
const (
	KeyClubID   = "club_id"
	KeyClubName = "club_name"
	KeyDraft    = "draft"
)

// UserData хранит временные данные пользователя во время диалога
type UserData struct {
	State UserState
	Data  map[string]interface{}
}
