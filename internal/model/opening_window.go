package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/jswmusik/youthclub/internal/schedule"
)

// OpeningWindow сохранённое окно работы клуба
type OpeningWindow struct {
	ID                int64     `json:"id"`
	ClubID            uuid.UUID `json:"club_id"`
	Revision          uuid.UUID `json:"revision"` // ревизия сохранения, в которой окно записано
	Position          int       `json:"position"` // порядок внутри набора
	Weekday           int       `json:"weekday"`  // 1 = Monday, 7 = Sunday
	WeekCycle         string    `json:"week_cycle"`
	OpenTime          string    `json:"open_time"`  // "HH:MM:SS" как вернула база
	CloseTime         string    `json:"close_time"` // "HH:MM:SS" как вернула база
	Title             string    `json:"title"`
	GenderRestriction string    `json:"gender_restriction"`
	RestrictionMode   string    `json:"restriction_mode"`
	MinValue          *int      `json:"min_value"`
	MaxValue          *int      `json:"max_value"`
	CreatedAt         time.Time `json:"created_at"`
}

// Record внешнее представление строки для движка расписания
func (w *OpeningWindow) Record() schedule.Record {
	id := w.ID
	return schedule.Record{
		ID:                &id,
		Weekday:           w.Weekday,
		WeekCycle:         w.WeekCycle,
		OpenTime:          w.OpenTime,
		CloseTime:         w.CloseTime,
		Title:             w.Title,
		GenderRestriction: w.GenderRestriction,
		RestrictionMode:   w.RestrictionMode,
		MinValue:          w.MinValue,
		MaxValue:          w.MaxValue,
	}
}
