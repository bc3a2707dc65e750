package callbacks

import (
	"context"
	"time"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/jswmusik/youthclub/internal/controller/callbacks/callbacktypes"
	"github.com/jswmusik/youthclub/internal/service"
	"go.uber.org/zap"
)

// Handler обертка для callbacktypes.Handler с методами
type Handler struct {
	*callbacktypes.Handler
}

// NewHandler создаёт новый обработчик callbacks с зависимостями
func NewHandler(
	clubService *service.ClubService,
	hoursService *service.HoursService,
	stateManager callbacktypes.StateManager,
	isAdmin func(telegramID int64) bool,
	now func() time.Time,
	logger *zap.Logger,
) *Handler {
	inner := &callbacktypes.Handler{
		ClubService:  clubService,
		HoursService: hoursService,
		StateManager: stateManager,
		Logger:       logger,
		IsAdmin:      isAdmin,
		Now:          now,
	}
	return &Handler{Handler: inner}
}

// HandleCallbackQuery - главный обработчик callback queries
func (h *Handler) HandleCallbackQuery(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.CallbackQuery == nil {
		return
	}

	Route(ctx, b, update.CallbackQuery, h.Handler)
}
