package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jswmusik/youthclub/internal/model"
	"github.com/jswmusik/youthclub/internal/schedule"
	"go.uber.org/zap"
)

// Report состояние клуба для отображения
type Report struct {
	Club    *model.Club
	Windows []schedule.Window
	Status  schedule.Status
	Next    *schedule.Opening // считается только если клуб закрыт; nil = следующее открытие неизвестно
}

// ClubStatus строка общего списка клубов
type ClubStatus struct {
	Club   *model.Club
	IsOpen bool
}

// HoursService расписание работы клубов: чтение, статус, сохранение
type HoursService struct {
	clubs   ClubStore
	windows WindowStore
	logger  *zap.Logger
}

func NewHoursService(clubs ClubStore, windows WindowStore, logger *zap.Logger) *HoursService {
	return &HoursService{
		clubs:   clubs,
		windows: windows,
		logger:  logger,
	}
}

// Schedule возвращает окна клуба. Битые строки пропускаются с предупреждением в логе.
func (s *HoursService) Schedule(ctx context.Context, clubID uuid.UUID) ([]schedule.Window, error) {
	rows, err := s.windows.GetByClubID(ctx, clubID)
	if err != nil {
		return nil, fmt.Errorf("get opening windows: %w", err)
	}

	records := make([]schedule.Record, 0, len(rows))
	for _, row := range rows {
		records = append(records, row.Record())
	}

	windows, skipped := schedule.DecodeRecords(records)
	for _, sk := range skipped {
		fields := []zap.Field{
			zap.String("club_id", clubID.String()),
			zap.Int("index", sk.Index),
			zap.Error(sk.Err),
		}
		if sk.ID != nil {
			fields = append(fields, zap.Int64("window_id", *sk.ID))
		}
		s.logger.Warn("Skipping malformed opening window", fields...)
	}

	return windows, nil
}

// Status считает, открыт ли клуб в момент now, и если закрыт, когда откроется
func (s *HoursService) Status(ctx context.Context, clubID uuid.UUID, now time.Time) (*Report, error) {
	return s.report(ctx, clubID, now, nil)
}

// StatusFor то же, что Status, но только по окнам, доступным посетителю
func (s *HoursService) StatusFor(ctx context.Context, clubID uuid.UUID, now time.Time, visitor schedule.Visitor) (*Report, error) {
	return s.report(ctx, clubID, now, &visitor)
}

func (s *HoursService) report(ctx context.Context, clubID uuid.UUID, now time.Time, visitor *schedule.Visitor) (*Report, error) {
	club, err := s.requireClub(ctx, clubID)
	if err != nil {
		return nil, err
	}

	windows, err := s.Schedule(ctx, clubID)
	if err != nil {
		return nil, err
	}
	if visitor != nil {
		windows = schedule.Admitted(windows, *visitor)
	}

	report := &Report{
		Club:    club,
		Windows: windows,
		Status:  schedule.Evaluate(now, windows),
	}

	if !report.Status.IsOpen {
		if next, ok := schedule.NextOpening(now, windows); ok {
			report.Next = &next
		}
	}

	return report, nil
}

// Overview статус всех клубов в момент now. Клуб, расписание которого не удалось
// прочитать, показывается закрытым.
func (s *HoursService) Overview(ctx context.Context, now time.Time) ([]ClubStatus, error) {
	clubs, err := s.clubs.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list clubs: %w", err)
	}

	out := make([]ClubStatus, 0, len(clubs))
	for _, club := range clubs {
		windows, err := s.Schedule(ctx, club.ID)
		if err != nil {
			s.logger.Error("Failed to load club schedule",
				zap.String("club_id", club.ID.String()),
				zap.Error(err))
			out = append(out, ClubStatus{Club: club})
			continue
		}
		out = append(out, ClubStatus{
			Club:   club,
			IsOpen: schedule.Evaluate(now, windows).IsOpen,
		})
	}

	return out, nil
}

// OpenDraft возвращает текущее расписание клуба как черновик для редактирования
func (s *HoursService) OpenDraft(ctx context.Context, clubID uuid.UUID) (schedule.WindowSet, error) {
	if _, err := s.requireClub(ctx, clubID); err != nil {
		return schedule.WindowSet{}, err
	}

	windows, err := s.Schedule(ctx, clubID)
	if err != nil {
		return schedule.WindowSet{}, err
	}

	return schedule.NewWindowSet(windows...), nil
}

// SaveSchedule заново проверяет весь черновик и заменяет им расписание клуба.
// Проверка в редакторе видит только свой снимок, поэтому здесь она повторяется
// перед записью. Одновременные сохранения разрешаются по принципу "последний побеждает".
func (s *HoursService) SaveSchedule(ctx context.Context, clubID uuid.UUID, draft schedule.WindowSet) (uuid.UUID, error) {
	if _, err := s.requireClub(ctx, clubID); err != nil {
		return uuid.Nil, err
	}

	windows := draft.Windows()
	if err := schedule.ValidateAll(windows); err != nil {
		s.logger.Warn("Rejected schedule save",
			zap.String("club_id", clubID.String()),
			zap.Error(err))
		return uuid.Nil, fmt.Errorf("%w: %w", ErrInvalidSchedule, err)
	}

	revision := uuid.New()
	if err := s.windows.ReplaceAll(ctx, clubID, revision, schedule.NewRecords(windows)); err != nil {
		s.logger.Error("Failed to save schedule",
			zap.String("club_id", clubID.String()),
			zap.Error(err))
		return uuid.Nil, fmt.Errorf("save schedule: %w", err)
	}

	s.logger.Info("Schedule saved",
		zap.String("club_id", clubID.String()),
		zap.String("revision", revision.String()),
		zap.Int("windows", len(windows)))

	return revision, nil
}

// AuditSchedules проверяет все сохранённые расписания на нарушение инварианта
// пересечений и возвращает число клубов с нарушениями
func (s *HoursService) AuditSchedules(ctx context.Context) (int, error) {
	clubs, err := s.clubs.List(ctx)
	if err != nil {
		return 0, fmt.Errorf("list clubs: %w", err)
	}

	invalid := 0
	for _, club := range clubs {
		windows, err := s.Schedule(ctx, club.ID)
		if err != nil {
			s.logger.Error("Failed to load schedule for audit",
				zap.String("club_id", club.ID.String()),
				zap.Error(err))
			continue
		}

		if err := schedule.ValidateAll(windows); err != nil {
			invalid++
			fields := []zap.Field{
				zap.String("club_id", club.ID.String()),
				zap.String("club_name", club.Name),
				zap.Error(err),
			}
			var conflict *schedule.Conflict
			if errors.As(err, &conflict) {
				fields = append(fields,
					zap.String("conflict_weekday", conflict.Existing.Weekday.String()),
					zap.String("conflict_range", conflict.Existing.Range()))
			}
			s.logger.Warn("Stored schedule violates overlap invariant", fields...)
		}
	}

	s.logger.Info("Schedule audit completed",
		zap.Int("clubs", len(clubs)),
		zap.Int("invalid", invalid))

	return invalid, nil
}

func (s *HoursService) requireClub(ctx context.Context, clubID uuid.UUID) (*model.Club, error) {
	club, err := s.clubs.GetByID(ctx, clubID)
	if err != nil {
		return nil, fmt.Errorf("get club: %w", err)
	}
	if club == nil {
		return nil, ErrClubNotFound
	}
	return club, nil
}
