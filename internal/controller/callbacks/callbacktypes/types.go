package callbacktypes

import (
	"time"

	"github.com/google/uuid"
	"github.com/jswmusik/youthclub/internal/schedule"
	"github.com/jswmusik/youthclub/internal/service"
	"go.uber.org/zap"
)

// UserState представляет текущее состояние пользователя в диалоге
type UserState string

// StateManager интерфейс для управления состоянием пользователей
type StateManager interface {
	GetState(telegramID int64) UserState
	ClearState(telegramID int64)
	StartEditing(telegramID int64, clubID uuid.UUID, clubName string, draft schedule.WindowSet)
	EditingClub(telegramID int64) (uuid.UUID, string, bool)
	Draft(telegramID int64) (schedule.WindowSet, bool)
}

// Handler содержит общие зависимости для всех callback handlers
type Handler struct {
	ClubService  *service.ClubService
	HoursService *service.HoursService
	StateManager StateManager
	Logger       *zap.Logger

	// IsAdmin может ли пользователь Telegram редактировать клубы
	IsAdmin func(telegramID int64) bool
	// Now текущее местное время клуба
	Now func() time.Time
}

// Форматы callback data
const (
	Noop        = "noop"
	ClubsPage   = "clubs_page:"  // clubs_page:0
	ViewHours   = "hours:"       // hours:<club uuid>
	ViewFor     = "hours_for:"   // hours_for:<club uuid>:<GIRLS|BOYS|OTHER>
	EditHours   = "edit:"        // edit:<club uuid>
	DraftSave   = "draft_save"   // сохранить черновик
	DraftCancel = "draft_cancel" // отменить редактирование
	DraftShow   = "draft_show"   // показать черновик
)
