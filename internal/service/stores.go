package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jswmusik/youthclub/internal/model"
	"github.com/jswmusik/youthclub/internal/schedule"
)

var (
	ErrClubNotFound    = errors.New("club not found")
	ErrInvalidClubName = errors.New("invalid club name")
	ErrInvalidSchedule = errors.New("invalid schedule")
)

// ClubStore хранилище клубов
type ClubStore interface {
	Create(ctx context.Context, club *model.Club) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.Club, error)
	List(ctx context.Context) ([]*model.Club, error)
}

// WindowStore хранилище расписаний. Запись только целиком (replace-all);
// повторная проверка инварианта пересечений выполняется в HoursService до записи.
type WindowStore interface {
	GetByClubID(ctx context.Context, clubID uuid.UUID) ([]*model.OpeningWindow, error)
	ReplaceAll(ctx context.Context, clubID, revision uuid.UUID, records []schedule.Record) error
}
