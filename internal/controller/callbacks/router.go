package callbacks

import (
	"context"
	"strings"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/jswmusik/youthclub/internal/controller/callbacks/callbacktypes"
	"github.com/jswmusik/youthclub/internal/controller/callbacks/clubs"
	"github.com/jswmusik/youthclub/internal/controller/callbacks/common"
	"go.uber.org/zap"
)

// Route распределяет callback query по соответствующим обработчикам
func Route(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	data := callback.Data

	h.Logger.Debug("Routing callback",
		zap.String("data", data),
		zap.Int64("user_id", callback.From.ID))

	switch {
	case data == callbacktypes.Noop:
		common.AnswerCallback(ctx, b, callback.ID, "")

	// ===== Просмотр =====
	case strings.HasPrefix(data, callbacktypes.ClubsPage):
		clubs.HandleClubsPage(ctx, b, callback, h)
	case strings.HasPrefix(data, callbacktypes.ViewHours):
		clubs.HandleViewHours(ctx, b, callback, h)
	case strings.HasPrefix(data, callbacktypes.ViewFor):
		clubs.HandleViewHoursFor(ctx, b, callback, h)

	// ===== Редактирование (администраторы) =====
	case strings.HasPrefix(data, callbacktypes.EditHours):
		clubs.HandleEditHours(ctx, b, callback, h)
	case data == callbacktypes.DraftShow:
		clubs.HandleDraftShow(ctx, b, callback, h)
	case data == callbacktypes.DraftSave:
		clubs.HandleDraftSave(ctx, b, callback, h)
	case data == callbacktypes.DraftCancel:
		clubs.HandleDraftCancel(ctx, b, callback, h)

	default:
		h.Logger.Warn("Unknown callback", zap.String("data", data))
		common.AnswerCallback(ctx, b, callback.ID, "❌ Неизвестное действие")
	}
}
