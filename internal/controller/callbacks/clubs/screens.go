package clubs

import (
	"context"
	"fmt"

	"github.com/go-telegram/bot/models"
	"github.com/google/uuid"
	"github.com/jswmusik/youthclub/internal/controller/callbacks/callbacktypes"
	"github.com/jswmusik/youthclub/internal/controller/callbacks/common/formatting"
	"github.com/jswmusik/youthclub/internal/controller/callbacks/common/keyboard"
	"github.com/jswmusik/youthclub/internal/schedule"
	"github.com/jswmusik/youthclub/internal/service"
)

// ClubsPerPage сколько клубов помещается на одной странице списка
const ClubsPerPage = 8

// OverviewScreen список клубов со статусом "открыт/закрыт" прямо сейчас
func OverviewScreen(ctx context.Context, h *callbacktypes.Handler, page int) (string, *models.InlineKeyboardMarkup, error) {
	overview, err := h.HoursService.Overview(ctx, h.Now())
	if err != nil {
		return "", nil, err
	}

	from, to, current, pages := keyboard.Page(len(overview), ClubsPerPage, page)
	visible := overview[from:to]

	kb := keyboard.NewBuilder()
	for _, c := range visible {
		kb.Row(keyboard.ClubButton(formatting.StatusEmoji(c.IsOpen)+" "+c.Club.Name, c.Club.ID))
	}
	kb.AddPagination(callbacktypes.ClubsPage, current, pages)

	return formatting.FormatOverview(overview), kb.Build(), nil
}

// ProfileScreen карточка клуба: статус, следующее открытие, расписание на неделю.
// С visitor показываются только окна, доступные посетителю.
func ProfileScreen(ctx context.Context, h *callbacktypes.Handler, clubID uuid.UUID, isAdmin bool, visitor *schedule.Visitor) (string, *models.InlineKeyboardMarkup, error) {
	now := h.Now()

	var (
		report *service.Report
		err    error
		active schedule.Gender
	)
	if visitor != nil {
		report, err = h.HoursService.StatusFor(ctx, clubID, now, *visitor)
		active = visitor.Gender
	} else {
		report, err = h.HoursService.Status(ctx, clubID, now)
	}
	if err != nil {
		return "", nil, err
	}

	text := formatting.FormatClubProfile(report, now)
	if visitor != nil {
		text += "\n\n" + formatting.FormatVisitorFilter(active)
	}

	kb := keyboard.NewBuilder()
	kb.Row(keyboard.VisitorFilterButtons(clubID, active)...)
	if isAdmin {
		kb.Row(keyboard.EditHoursButton(clubID))
	}
	kb.AddBackToClubsButton()

	return text, kb.Build(), nil
}

// DraftScreen черновик с кнопками сохранения и отмены
func DraftScreen(clubName string, draft schedule.WindowSet) (string, *models.InlineKeyboardMarkup) {
	text := formatting.FormatDraft(clubName, draft) + "\n\n" + EditorHelp
	return text, keyboard.NewBuilder().Row(keyboard.DraftButtons()...).Build()
}

// EditorHelp подсказка по формату строк редактора
var EditorHelp = fmt.Sprint(
	"Отправьте строку окна:\n",
	"<code>день [every|odd|even] ЧЧ:ММ-ЧЧ:ММ [girls|boys|other] [age:мин-макс|grade:мин-макс] [название]</code>\n",
	"Например: <code>пт 18:00-22:00 age:13-17 Вечер подростков</code>\n\n",
	"<code>-N</code> удалить окно N, /draft показать черновик, /save сохранить, /cancel отменить",
)
