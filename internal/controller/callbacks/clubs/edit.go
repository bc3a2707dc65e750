package clubs

import (
	"context"
	"fmt"
	"html"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/google/uuid"
	"github.com/jswmusik/youthclub/internal/controller/callbacks/callbacktypes"
	"github.com/jswmusik/youthclub/internal/controller/callbacks/common"
	"github.com/jswmusik/youthclub/internal/controller/callbacks/common/formatting"
	"go.uber.org/zap"
)

// StartEditing загружает расписание клуба в черновик и открывает редактор
func StartEditing(ctx context.Context, h *callbacktypes.Handler, telegramID int64, clubID uuid.UUID) (string, *models.InlineKeyboardMarkup, error) {
	club, err := h.ClubService.GetClub(ctx, clubID)
	if err != nil {
		return "", nil, err
	}

	draft, err := h.HoursService.OpenDraft(ctx, clubID)
	if err != nil {
		return "", nil, err
	}

	h.StateManager.StartEditing(telegramID, club.ID, club.Name, draft)

	h.Logger.Info("Schedule editing started",
		zap.Int64("telegram_id", telegramID),
		zap.String("club_id", club.ID.String()),
		zap.Int("windows", draft.Len()))

	text, kb := DraftScreen(club.Name, draft)
	return text, kb, nil
}

// SaveDraft сохраняет черновик пользователя и закрывает редактор.
// При ошибке проверки черновик остаётся открытым.
func SaveDraft(ctx context.Context, h *callbacktypes.Handler, telegramID int64) (string, error) {
	clubID, clubName, ok := h.StateManager.EditingClub(telegramID)
	if !ok {
		return "", common.ErrNotEditing
	}
	draft, ok := h.StateManager.Draft(telegramID)
	if !ok {
		return "", common.ErrNotEditing
	}

	revision, err := h.HoursService.SaveSchedule(ctx, clubID, draft)
	if err != nil {
		return "", err
	}

	h.StateManager.ClearState(telegramID)

	h.Logger.Info("Schedule saved from editor",
		zap.Int64("telegram_id", telegramID),
		zap.String("club_id", clubID.String()),
		zap.String("revision", revision.String()))

	return fmt.Sprintf("✅ Расписание клуба <b>%s</b> сохранено: %d %s",
		html.EscapeString(clubName), draft.Len(), formatting.PluralizeWindows(draft.Len())), nil
}

// HandleEditHours открывает редактор расписания по кнопке из карточки клуба
func HandleEditHours(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	common.WithAdmin(ctx, b, callback, h, func(hc *common.HandlerContext) {
		clubID, err := common.ParseClubIDFromCallback(callback.Data, callbacktypes.EditHours)
		if err != nil {
			common.HandleError(hc, err, "edit_hours")
			return
		}

		text, kb, err := StartEditing(ctx, h, hc.TelegramID, clubID)
		if err != nil {
			common.HandleError(hc, err, "edit_hours")
			return
		}

		if err := hc.SendMessage(text, kb); err != nil {
			h.Logger.Error("Failed to send draft", zap.Error(err))
		}
		hc.Answer("")
	})
}

// HandleDraftShow показывает текущий черновик
func HandleDraftShow(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	common.WithAdmin(ctx, b, callback, h, func(hc *common.HandlerContext) {
		_, clubName, ok := h.StateManager.EditingClub(hc.TelegramID)
		draft, hasDraft := h.StateManager.Draft(hc.TelegramID)
		if !ok || !hasDraft {
			hc.AnswerAlert(common.ErrorMessage(common.ErrNotEditing))
			return
		}

		text, kb := DraftScreen(clubName, draft)
		if err := hc.EditMessage(text, kb); err != nil {
			h.Logger.Error("Failed to show draft", zap.Error(err))
		}
		hc.Answer("")
	})
}

// HandleDraftSave сохраняет черновик по кнопке
func HandleDraftSave(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	common.WithAdmin(ctx, b, callback, h, func(hc *common.HandlerContext) {
		text, err := SaveDraft(ctx, h, hc.TelegramID)
		if err != nil {
			common.HandleError(hc, err, "draft_save")
			return
		}

		if err := hc.EditMessage(text, nil); err != nil {
			h.Logger.Error("Failed to confirm save", zap.Error(err))
		}
		hc.Answer("💾 Сохранено")
	})
}

// HandleDraftCancel отменяет редактирование без сохранения
func HandleDraftCancel(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	common.WithContext(ctx, b, callback, h, func(hc *common.HandlerContext) {
		h.StateManager.ClearState(hc.TelegramID)

		if err := hc.EditMessage("✅ Редактирование отменено. Расписание не изменилось.", nil); err != nil {
			h.Logger.Error("Failed to confirm cancel", zap.Error(err))
		}
		hc.Answer("")
	})
}
