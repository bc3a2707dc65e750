package keyboard

import (
	"github.com/go-telegram/bot/models"
	"github.com/google/uuid"
	"github.com/jswmusik/youthclub/internal/controller/callbacks/callbacktypes"
	"github.com/jswmusik/youthclub/internal/schedule"
)

// BackButton создаёт кнопку "Назад"
func BackButton(callbackData string) models.InlineKeyboardButton {
	return Button("⬅️ Назад", callbackData)
}

// BackToClubsButton возвращает к списку клубов
func BackToClubsButton() models.InlineKeyboardButton {
	return Button("⬅️ К списку клубов", callbacktypes.ClubsPage+"0")
}

// ClubButton открывает карточку клуба с расписанием
func ClubButton(text string, clubID uuid.UUID) models.InlineKeyboardButton {
	return Button(text, callbacktypes.ViewHours+clubID.String())
}

// VisitorFilterButtons фильтр расписания по полу посетителя; active подсвечивается,
// а вместо него появляется кнопка "Все окна"
func VisitorFilterButtons(clubID uuid.UUID, active schedule.Gender) []models.InlineKeyboardButton {
	filters := []struct {
		gender schedule.Gender
		text   string
	}{
		{schedule.GenderGirls, "👧 Для девочек"},
		{schedule.GenderBoys, "👦 Для мальчиков"},
	}

	row := make([]models.InlineKeyboardButton, 0, len(filters)+1)
	for _, f := range filters {
		if f.gender == active {
			continue
		}
		row = append(row, Button(f.text, callbacktypes.ViewFor+clubID.String()+":"+string(f.gender)))
	}
	if active != "" {
		row = append(row, Button("👥 Все окна", callbacktypes.ViewHours+clubID.String()))
	}
	return row
}

// EditHoursButton открывает редактор расписания клуба
func EditHoursButton(clubID uuid.UUID) models.InlineKeyboardButton {
	return Button("✏️ Изменить расписание", callbacktypes.EditHours+clubID.String())
}

// DraftButtons ряд действий над черновиком
func DraftButtons() []models.InlineKeyboardButton {
	return []models.InlineKeyboardButton{
		Button("💾 Сохранить", callbacktypes.DraftSave),
		Button("❌ Отмена", callbacktypes.DraftCancel),
		Button("🔄 Обновить", callbacktypes.DraftShow),
	}
}

// AddBackToClubsButton добавляет кнопку "К списку клубов" к builder
func (b *Builder) AddBackToClubsButton() *Builder {
	return b.Row(BackToClubsButton())
}
