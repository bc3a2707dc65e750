package model

import (
	"time"

	"github.com/google/uuid"
)

// Club клуб, которому принадлежит расписание работы
type Club struct {
	ID                uuid.UUID     `json:"id"`
	Name              string        `json:"name"`
	ScheduleRevision  uuid.NullUUID `json:"schedule_revision"`   // меняется при каждом сохранении расписания
	ScheduleUpdatedAt *time.Time    `json:"schedule_updated_at"` // nil, если расписание ещё не сохраняли
	CreatedAt         time.Time     `json:"created_at"`
}
