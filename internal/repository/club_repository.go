package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jswmusik/youthclub/internal/model"
	"github.com/jswmusik/youthclub/internal/repository/base"
	"go.uber.org/zap"
)

// ClubRepository управляет клубами в базе данных
type ClubRepository struct {
	*base.Repository
	logger *zap.Logger
}

// NewClubRepository создаёт новый репозиторий
func NewClubRepository(pool *pgxpool.Pool, logger *zap.Logger) *ClubRepository {
	return &ClubRepository{
		Repository: base.NewRepository(pool),
		logger:     logger,
	}
}

const clubColumns = `id, name, schedule_revision, schedule_updated_at, created_at`

// Create создаёт клуб; ID задаётся вызывающим
func (r *ClubRepository) Create(ctx context.Context, club *model.Club) error {
	query := `
		INSERT INTO clubs (id, name)
		VALUES ($1, $2)
		RETURNING created_at
	`

	err := r.Pool().QueryRow(ctx, query, club.ID, club.Name).Scan(&club.CreatedAt)
	if err != nil {
		return fmt.Errorf("create club: %w", err)
	}

	return nil
}

// GetByID получает клуб по ID; nil, если клуба нет
func (r *ClubRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Club, error) {
	query := `SELECT ` + clubColumns + ` FROM clubs WHERE id = $1`

	club, err := scanClub(r.Pool().QueryRow(ctx, query, id))
	if base.IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get club by id: %w", err)
	}

	return club, nil
}

// List получает все клубы по алфавиту
func (r *ClubRepository) List(ctx context.Context) ([]*model.Club, error) {
	query := `SELECT ` + clubColumns + ` FROM clubs ORDER BY name, id`

	rows, err := r.Pool().Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list clubs: %w", err)
	}
	defer rows.Close()

	var clubs []*model.Club
	for rows.Next() {
		club, err := scanClub(rows)
		if err != nil {
			return nil, fmt.Errorf("scan club: %w", err)
		}
		clubs = append(clubs, club)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list clubs: %w", err)
	}

	return clubs, nil
}

func scanClub(row pgx.Row) (*model.Club, error) {
	club := &model.Club{}
	err := row.Scan(
		&club.ID,
		&club.Name,
		&club.ScheduleRevision,
		&club.ScheduleUpdatedAt,
		&club.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return club, nil
}
