package clubs

import (
	"context"
	"strconv"
	"strings"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/jswmusik/youthclub/internal/controller/callbacks/callbacktypes"
	"github.com/jswmusik/youthclub/internal/controller/callbacks/common"
	"github.com/jswmusik/youthclub/internal/schedule"
	"go.uber.org/zap"
)

// HandleClubsPage показывает страницу списка клубов
func HandleClubsPage(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	common.WithContext(ctx, b, callback, h, func(hc *common.HandlerContext) {
		page, err := strconv.Atoi(strings.TrimPrefix(callback.Data, callbacktypes.ClubsPage))
		if err != nil {
			common.HandleError(hc, common.ErrInvalidFormat, "clubs_page")
			return
		}

		text, kb, err := OverviewScreen(ctx, h, page)
		if err != nil {
			common.HandleError(hc, err, "clubs_page")
			return
		}

		if err := hc.EditMessage(text, kb); err != nil {
			h.Logger.Error("Failed to show clubs page", zap.Error(err))
		}
		hc.Answer("")
	})
}

// HandleViewHours показывает карточку клуба с расписанием
func HandleViewHours(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	common.WithContext(ctx, b, callback, h, func(hc *common.HandlerContext) {
		clubID, err := common.ParseClubIDFromCallback(callback.Data, callbacktypes.ViewHours)
		if err != nil {
			common.HandleError(hc, err, "view_hours")
			return
		}

		text, kb, err := ProfileScreen(ctx, h, clubID, hc.IsAdmin(), nil)
		if err != nil {
			common.HandleError(hc, err, "view_hours")
			return
		}

		if err := hc.EditMessage(text, kb); err != nil {
			h.Logger.Error("Failed to show club hours",
				zap.String("club_id", clubID.String()),
				zap.Error(err))
		}
		hc.Answer("")
	})
}

// HandleViewHoursFor показывает карточку клуба только с окнами для выбранного пола
func HandleViewHoursFor(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	common.WithContext(ctx, b, callback, h, func(hc *common.HandlerContext) {
		clubID, gender, err := common.ParseVisitorFilterCallback(callback.Data)
		if err != nil {
			common.HandleError(hc, err, "view_hours_for")
			return
		}

		text, kb, err := ProfileScreen(ctx, h, clubID, hc.IsAdmin(), &schedule.Visitor{Gender: gender})
		if err != nil {
			common.HandleError(hc, err, "view_hours_for")
			return
		}

		if err := hc.EditMessage(text, kb); err != nil {
			h.Logger.Error("Failed to show filtered club hours",
				zap.String("club_id", clubID.String()),
				zap.String("gender", string(gender)),
				zap.Error(err))
		}
		hc.Answer("")
	})
}
