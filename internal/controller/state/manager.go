package state

import (
	"sync"

	"github.com/google/uuid"
	"github.com/jswmusik/youthclub/internal/schedule"
)

// Manager управляет состояниями пользователей
type Manager struct {
	mu     sync.RWMutex
	states map[int64]*UserData // telegramID -> UserData
}

// NewManager создаёт новый менеджер состояний
func NewManager() *Manager {
	return &Manager{
		states: make(map[int64]*UserData),
	}
}

// GetState получает текущее состояние пользователя
func (sm *Manager) GetState(telegramID int64) UserState {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	if userData, exists := sm.states[telegramID]; exists {
		return userData.State
	}
	return StateNone
}

// SetState устанавливает состояние пользователя; StateNone удаляет запись целиком
func (sm *Manager) SetState(telegramID int64, state UserState) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if state == StateNone {
		delete(sm.states, telegramID)
		return
	}

	sm.entry(telegramID).State = state
}

// GetData получает временные данные пользователя
func (sm *Manager) GetData(telegramID int64, key string) (interface{}, bool) {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	if userData, exists := sm.states[telegramID]; exists {
		value, ok := userData.Data[key]
		return value, ok
	}
	return nil, false
}

// SetData устанавливает временные данные пользователя
func (sm *Manager) SetData(telegramID int64, key string, value interface{}) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	sm.entry(telegramID).Data[key] = value
}

// ClearState очищает состояние и данные пользователя
func (sm *Manager) ClearState(telegramID int64) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	delete(sm.states, telegramID)
}

// StartEditing открывает редактор расписания клуба с черновиком draft
func (sm *Manager) StartEditing(telegramID int64, clubID uuid.UUID, clubName string, draft schedule.WindowSet) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	sm.states[telegramID] = &UserData{
		State: StateEditingHours,
		Data: map[string]interface{}{
			KeyClubID:   clubID,
			KeyClubName: clubName,
			KeyDraft:    draft,
		},
	}
}

// EditingClub возвращает клуб, расписание которого редактирует пользователь
func (sm *Manager) EditingClub(telegramID int64) (uuid.UUID, string, bool) {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	userData, exists := sm.states[telegramID]
	if !exists || userData.State != StateEditingHours {
		return uuid.Nil, "", false
	}

	clubID, ok := userData.Data[KeyClubID].(uuid.UUID)
	if !ok {
		return uuid.Nil, "", false
	}
	name, _ := userData.Data[KeyClubName].(string)
	return clubID, name, true
}

// Draft текущий черновик расписания пользователя
func (sm *Manager) Draft(telegramID int64) (schedule.WindowSet, bool) {
	value, ok := sm.GetData(telegramID, KeyDraft)
	if !ok {
		return schedule.WindowSet{}, false
	}
	draft, ok := value.(schedule.WindowSet)
	return draft, ok
}

// UpdateDraft применяет apply к черновику под одной блокировкой. При ошибке apply
// черновик не меняется. false означает, что черновика нет.
func (sm *Manager) UpdateDraft(telegramID int64, apply func(schedule.WindowSet) (schedule.WindowSet, error)) (schedule.WindowSet, bool, error) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	userData, exists := sm.states[telegramID]
	if !exists {
		return schedule.WindowSet{}, false, nil
	}
	draft, ok := userData.Data[KeyDraft].(schedule.WindowSet)
	if !ok {
		return schedule.WindowSet{}, false, nil
	}

	next, err := apply(draft)
	if err != nil {
		return draft, true, err
	}
	userData.Data[KeyDraft] = next
	return next, true, nil
}

func (sm *Manager) entry(telegramID int64) *UserData {
	userData, exists := sm.states[telegramID]
	if !exists {
		userData = &UserData{
			State: StateNone,
			Data:  make(map[string]interface{}),
		}
		sm.states[telegramID] = userData
	}
	return userData
}
