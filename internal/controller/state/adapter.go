package state

import (
	"github.com/google/uuid"
	"github.com/jswmusik/youthclub/internal/controller/callbacks/callbacktypes"
	"github.com/jswmusik/youthclub/internal/schedule"
)

// Adapter адаптирует state.Manager к интерфейсу callbacktypes.StateManager
type Adapter struct {
	sm *Manager
}

// NewAdapter создает адаптер для Manager
func NewAdapter(sm *Manager) *Adapter {
	return &Adapter{sm: sm}
}

func (a *Adapter) GetState(telegramID int64) callbacktypes.UserState {
	return callbacktypes.UserState(a.sm.GetState(telegramID))
}

func (a *Adapter) ClearState(telegramID int64) {
	a.sm.ClearState(telegramID)
}

func (a *Adapter) StartEditing(telegramID int64, clubID uuid.UUID, clubName string, draft schedule.WindowSet) {
	a.sm.StartEditing(telegramID, clubID, clubName, draft)
}

func (a *Adapter) EditingClub(telegramID int64) (uuid.UUID, string, bool) {
	return a.sm.EditingClub(telegramID)
}

func (a *Adapter) Draft(telegramID int64) (schedule.WindowSet, bool) {
	return a.sm.Draft(telegramID)
}
