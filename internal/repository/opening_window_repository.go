package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jswmusik/youthclub/internal/model"
	"github.com/jswmusik/youthclub/internal/repository/base"
	"github.com/jswmusik/youthclub/internal/schedule"
	"go.uber.org/zap"
)

// OpeningWindowRepository хранит расписание клуба. Расписание пишется только целиком:
// ReplaceAll удаляет старый набор и вставляет новый в одной транзакции.
type OpeningWindowRepository struct {
	*base.Repository
	logger *zap.Logger
}

// NewOpeningWindowRepository создаёт новый репозиторий
func NewOpeningWindowRepository(pool *pgxpool.Pool, logger *zap.Logger) *OpeningWindowRepository {
	return &OpeningWindowRepository{
		Repository: base.NewRepository(pool),
		logger:     logger,
	}
}

// GetByClubID получает окна клуба в том порядке, в котором их сохранили
func (r *OpeningWindowRepository) GetByClubID(ctx context.Context, clubID uuid.UUID) ([]*model.OpeningWindow, error) {
	query := `
		SELECT id, club_id, revision, position, weekday, week_cycle,
		       to_char(open_time, 'HH24:MI:SS'), to_char(close_time, 'HH24:MI:SS'),
		       title, gender_restriction, restriction_mode, min_value, max_value, created_at
		FROM opening_windows
		WHERE club_id = $1
		ORDER BY position, id
	`

	rows, err := r.Pool().Query(ctx, query, clubID)
	if err != nil {
		return nil, fmt.Errorf("get opening windows by club: %w", err)
	}
	defer rows.Close()

	var windows []*model.OpeningWindow
	for rows.Next() {
		w := &model.OpeningWindow{}
		err := rows.Scan(
			&w.ID,
			&w.ClubID,
			&w.Revision,
			&w.Position,
			&w.Weekday,
			&w.WeekCycle,
			&w.OpenTime,
			&w.CloseTime,
			&w.Title,
			&w.GenderRestriction,
			&w.RestrictionMode,
			&w.MinValue,
			&w.MaxValue,
			&w.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan opening window: %w", err)
		}
		windows = append(windows, w)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("get opening windows by club: %w", err)
	}

	return windows, nil
}

// ReplaceAll атомарно заменяет всё расписание клуба и проставляет ему новую ревизию.
// Строка клуба блокируется UPDATE, поэтому одновременные сохранения выполняются по очереди
// и побеждает последнее.
func (r *OpeningWindowRepository) ReplaceAll(ctx context.Context, clubID, revision uuid.UUID, records []schedule.Record) error {
	err := r.InTx(ctx, func(tx pgx.Tx) error {
		tag, err := tx.Exec(ctx,
			`UPDATE clubs SET schedule_revision = $2, schedule_updated_at = now() WHERE id = $1`,
			clubID, revision)
		if err != nil {
			return fmt.Errorf("stamp club revision: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return fmt.Errorf("club %s: %w", clubID, base.ErrNotFound)
		}

		if _, err := tx.Exec(ctx, `DELETE FROM opening_windows WHERE club_id = $1`, clubID); err != nil {
			return fmt.Errorf("delete opening windows: %w", err)
		}

		if len(records) == 0 {
			return nil
		}

		insert := `
			INSERT INTO opening_windows (club_id, revision, position, weekday, week_cycle,
			                             open_time, close_time, title, gender_restriction,
			                             restriction_mode, min_value, max_value)
			VALUES ($1, $2, $3, $4, $5, $6::text::time, $7::text::time, $8, $9, $10, $11, $12)
		`

		batch := &pgx.Batch{}
		for i, rec := range records {
			batch.Queue(insert,
				clubID,
				revision,
				i,
				rec.Weekday,
				rec.WeekCycle,
				rec.OpenTime,
				rec.CloseTime,
				rec.Title,
				rec.GenderRestriction,
				rec.RestrictionMode,
				rec.MinValue,
				rec.MaxValue,
			)
		}

		results := tx.SendBatch(ctx, batch)
		for i := range records {
			if _, err := results.Exec(); err != nil {
				results.Close()
				return fmt.Errorf("insert opening window %d: %w", i+1, err)
			}
		}
		if err := results.Close(); err != nil {
			return fmt.Errorf("close insert batch: %w", err)
		}

		return nil
	})
	if err != nil {
		return fmt.Errorf("replace opening windows: %w", err)
	}

	r.logger.Debug("Opening windows replaced",
		zap.String("club_id", clubID.String()),
		zap.String("revision", revision.String()),
		zap.Int("count", len(records)))

	return nil
}
