package handlers

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/jswmusik/youthclub/internal/controller/callbacks/callbacktypes"
	"github.com/jswmusik/youthclub/internal/controller/callbacks/clubs"
	"github.com/jswmusik/youthclub/internal/controller/callbacks/common"
	"github.com/jswmusik/youthclub/internal/controller/callbacks/common/formatting"
	"github.com/jswmusik/youthclub/internal/controller/callbacks/common/keyboard"
	"github.com/jswmusik/youthclub/internal/schedule"
	"go.uber.org/zap"
)

// HandleEditHours обрабатывает /edithours - выбор клуба для редактирования
func (h *Handlers) HandleEditHours(ctx context.Context, b *bot.Bot, update *models.Update) {
	if !h.requireAdmin(ctx, b, update) {
		return
	}

	list, err := h.clubService.ListClubs(ctx)
	if err != nil {
		h.logger.Error("Failed to list clubs", zap.Error(err))
		h.sendError(ctx, b, update.Message.Chat.ID, common.ErrorMessage(err))
		return
	}

	if len(list) == 0 {
		h.sendMessage(ctx, b, update.Message.Chat.ID, "Клубов пока нет. Добавьте первый: /newclub")
		return
	}

	kb := keyboard.NewBuilder()
	for _, club := range list {
		kb.Row(keyboard.Button("✏️ "+club.Name, callbacktypes.EditHours+club.ID.String()))
	}

	h.sendHTML(ctx, b, update.Message.Chat.ID, "Расписание какого клуба изменить?", kb.Build())
}

// HandleDraft обрабатывает /draft - показать черновик
func (h *Handlers) HandleDraft(ctx context.Context, b *bot.Bot, update *models.Update) {
	if !h.requireAdmin(ctx, b, update) {
		return
	}

	telegramID := update.Message.From.ID
	_, clubName, ok := h.stateManager.EditingClub(telegramID)
	draft, hasDraft := h.stateManager.Draft(telegramID)
	if !ok || !hasDraft {
		h.sendError(ctx, b, update.Message.Chat.ID, common.ErrorMessage(common.ErrNotEditing))
		return
	}

	text, kb := clubs.DraftScreen(clubName, draft)
	h.sendHTML(ctx, b, update.Message.Chat.ID, text, kb)
}

// HandleSave обрабатывает /save - сохранить черновик
func (h *Handlers) HandleSave(ctx context.Context, b *bot.Bot, update *models.Update) {
	if !h.requireAdmin(ctx, b, update) {
		return
	}

	text, err := clubs.SaveDraft(ctx, h.screens, update.Message.From.ID)
	if err != nil {
		h.logger.Warn("Draft save failed",
			zap.Int64("telegram_id", update.Message.From.ID),
			zap.Error(err))
		h.sendError(ctx, b, update.Message.Chat.ID, common.ErrorMessage(err))
		return
	}

	h.sendMessage(ctx, b, update.Message.Chat.ID, text)
}

// handleEditorInput одна строка редактора: "-N" удаляет окно, иначе добавляет новое.
// При ошибке черновик не меняется.
func (h *Handlers) handleEditorInput(ctx context.Context, b *bot.Bot, update *models.Update) {
	telegramID := update.Message.From.ID
	chatID := update.Message.Chat.ID

	if !h.isAdmin(telegramID) {
		h.stateManager.ClearState(telegramID)
		h.sendError(ctx, b, chatID, common.ErrorMessage(common.ErrNotAdmin))
		return
	}

	clubID, clubName, ok := h.stateManager.EditingClub(telegramID)
	if !ok {
		h.sendError(ctx, b, chatID, common.ErrorMessage(common.ErrNotEditing))
		return
	}

	var summary string
	next, hasDraft, err := h.stateManager.UpdateDraft(telegramID, func(draft schedule.WindowSet) (schedule.WindowSet, error) {
		updated, done, err := applyEditorLine(draft, update.Message.Text)
		summary = done
		return updated, err
	})
	if !hasDraft {
		h.sendError(ctx, b, chatID, common.ErrorMessage(common.ErrNotEditing))
		return
	}
	if err != nil {
		h.logger.Info("Draft edit rejected",
			zap.Int64("telegram_id", telegramID),
			zap.String("club_id", clubID.String()),
			zap.String("line", update.Message.Text),
			zap.Error(err))
		h.sendError(ctx, b, chatID, common.ErrorMessage(err))
		return
	}

	text, kb := clubs.DraftScreen(clubName, next)
	h.sendHTML(ctx, b, chatID, summary+"\n\n"+text, kb)
}

// applyEditorLine применяет строку к черновику и возвращает новый набор с кратким итогом.
// Конфликт пересечения возвращается как *schedule.Conflict.
func applyEditorLine(draft schedule.WindowSet, line string) (schedule.WindowSet, string, error) {
	line = strings.TrimSpace(line)

	if index, ok := parseRemoval(line); ok {
		windows := draft.Windows()
		next, err := draft.Remove(index)
		if err != nil {
			return draft, "", err
		}
		removed := windows[index]
		return next, fmt.Sprintf("🗑 Удалено: %s %s",
			formatting.GetWeekdayShort(removed.Weekday), formatting.FormatWindow(removed)), nil
	}

	w, err := parseWindowLine(line)
	if err != nil {
		return draft, "", err
	}

	next, err := draft.Add(w)
	if err != nil {
		return draft, "", err
	}

	return next, fmt.Sprintf("✅ Добавлено: %s %s",
		formatting.GetWeekdayShort(w.Weekday), formatting.FormatWindow(w)), nil
}
