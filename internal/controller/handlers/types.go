package handlers

import (
	"github.com/jswmusik/youthclub/internal/controller/callbacks/callbacktypes"
	"github.com/jswmusik/youthclub/internal/controller/state"
	"github.com/jswmusik/youthclub/internal/service"
	"go.uber.org/zap"
)

// Handlers содержит все зависимости для обработки команд
type Handlers struct {
	clubService  *service.ClubService
	hoursService *service.HoursService
	stateManager *state.Manager
	logger       *zap.Logger

	// screens общие с callback handlers зависимости для экранов клубов
	screens *callbacktypes.Handler
}

// NewHandlers создаёт новый обработчик команд
func NewHandlers(
	stateManager *state.Manager,
	screens *callbacktypes.Handler,
) *Handlers {
	return &Handlers{
		clubService:  screens.ClubService,
		hoursService: screens.HoursService,
		stateManager: stateManager,
		logger:       screens.Logger,
		screens:      screens,
	}
}

func (h *Handlers) isAdmin(telegramID int64) bool {
	return h.screens.IsAdmin != nil && h.screens.IsAdmin(telegramID)
}
