package handlers

import (
	"context"
	"fmt"
	"html"
	"strings"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/jswmusik/youthclub/internal/controller/callbacks/common"
	"github.com/jswmusik/youthclub/internal/controller/callbacks/common/keyboard"
	"github.com/jswmusik/youthclub/internal/controller/state"
	"github.com/jswmusik/youthclub/internal/service"
	"go.uber.org/zap"
)

// HandleNewClubStart начинает создание клуба
func (h *Handlers) HandleNewClubStart(ctx context.Context, b *bot.Bot, update *models.Update) {
	if !h.requireAdmin(ctx, b, update) {
		return
	}

	telegramID := update.Message.From.ID
	h.stateManager.SetState(telegramID, state.StateCreateClubName)

	h.logger.Info("Starting club creation", zap.Int64("telegram_id", telegramID))

	h.sendMessage(ctx, b, update.Message.Chat.ID,
		"🏠 Новый клуб\n\n"+
			fmt.Sprintf("Как называется клуб? (%d-%d символов)\n\n", service.ClubNameMinLength, service.ClubNameMaxLength)+
			"Для отмены используйте /cancel")
}

// handleCreateClubNameStep обрабатывает ввод названия клуба
func (h *Handlers) handleCreateClubNameStep(ctx context.Context, b *bot.Bot, update *models.Update) {
	telegramID := update.Message.From.ID
	name := strings.TrimSpace(update.Message.Text)

	club, err := h.clubService.CreateClub(ctx, name)
	if err != nil {
		h.logger.Warn("Club creation failed",
			zap.Int64("telegram_id", telegramID),
			zap.String("name", name),
			zap.Error(err))
		h.sendError(ctx, b, update.Message.Chat.ID, common.ErrorMessage(err)+"\n\nПопробуйте ещё раз:")
		return
	}

	h.stateManager.ClearState(telegramID)

	kb := keyboard.NewBuilder().Row(keyboard.EditHoursButton(club.ID)).Build()
	h.sendHTML(ctx, b, update.Message.Chat.ID,
		fmt.Sprintf("✅ Клуб <b>%s</b> создан. Расписание пока пустое.", html.EscapeString(club.Name)), kb)
}
