package common

import (
	"errors"

	"github.com/jswmusik/youthclub/internal/controller/callbacks/common/formatting"
	"github.com/jswmusik/youthclub/internal/schedule"
	"github.com/jswmusik/youthclub/internal/service"
)

// Общие ошибки для обработчиков
var (
	ErrNotAdmin      = errors.New("user is not an admin")
	ErrNoMessage     = errors.New("no message in callback")
	ErrInvalidFormat = errors.New("invalid callback format")
	ErrNotEditing    = errors.New("no schedule is being edited")
	ErrWindowFormat  = errors.New("unrecognised window line")
)

// ErrorMessage возвращает пользовательское сообщение для ошибки
func ErrorMessage(err error) string {
	var conflict *schedule.Conflict
	if errors.As(err, &conflict) {
		return formatting.FormatConflict(conflict)
	}

	switch {
	case errors.Is(err, ErrNotAdmin):
		return "❌ Эта функция доступна только администраторам"
	case errors.Is(err, ErrNoMessage):
		return "❌ Ошибка обработки сообщения"
	case errors.Is(err, ErrInvalidFormat):
		return "❌ Неверный формат данных"
	case errors.Is(err, ErrNotEditing):
		return "❌ Нет открытого черновика. Начните с /edithours"
	case errors.Is(err, ErrWindowFormat):
		return "❌ Не понял строку. Формат: <code>день [every|odd|even] ЧЧ:ММ-ЧЧ:ММ [girls|boys|other] [age:мин-макс|grade:мин-макс] [название]</code>"
	case errors.Is(err, service.ErrClubNotFound):
		return "❌ Клуб не найден"
	case errors.Is(err, service.ErrInvalidClubName):
		return "❌ Название клуба должно быть от 2 до 100 символов"
	case errors.Is(err, schedule.ErrEmptyRange):
		return "❌ Время открытия совпадает со временем закрытия"
	case errors.Is(err, schedule.ErrInvertedRange):
		return "❌ Время открытия должно быть раньше времени закрытия"
	case errors.Is(err, schedule.ErrInvalidClock):
		return "❌ Неверное время. Используйте формат ЧЧ:ММ"
	case errors.Is(err, schedule.ErrInvalidWeekday):
		return "❌ Неверный день недели"
	case errors.Is(err, schedule.ErrInvalidCycle):
		return "❌ Неверный шаблон недель: every, odd или even"
	case errors.Is(err, schedule.ErrInvalidBounds):
		return "❌ Неверные границы ограничения: минимум не больше максимума, без отрицательных"
	case errors.Is(err, schedule.ErrIndexOutOfRange):
		return "❌ Окна с таким номером нет"
	case errors.Is(err, service.ErrInvalidSchedule):
		return "❌ Расписание не прошло проверку"
	default:
		return "❌ Произошла ошибка"
	}
}
