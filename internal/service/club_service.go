package service

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/jswmusik/youthclub/internal/model"
	"go.uber.org/zap"
)

const (
	ClubNameMinLength = 2
	ClubNameMaxLength = 100
)

type ClubService struct {
	clubs  ClubStore
	logger *zap.Logger
}

func NewClubService(clubs ClubStore, logger *zap.Logger) *ClubService {
	return &ClubService{
		clubs:  clubs,
		logger: logger,
	}
}

// CreateClub создаёт клуб с пустым расписанием
func (s *ClubService) CreateClub(ctx context.Context, name string) (*model.Club, error) {
	name = strings.TrimSpace(name)
	length := utf8.RuneCountInString(name)
	if length < ClubNameMinLength || length > ClubNameMaxLength {
		return nil, fmt.Errorf("%w: length must be %d-%d", ErrInvalidClubName, ClubNameMinLength, ClubNameMaxLength)
	}

	club := &model.Club{
		ID:   uuid.New(),
		Name: name,
	}

	if err := s.clubs.Create(ctx, club); err != nil {
		s.logger.Error("Failed to create club",
			zap.String("name", name),
			zap.Error(err))
		return nil, fmt.Errorf("create club: %w", err)
	}

	s.logger.Info("Club created",
		zap.String("club_id", club.ID.String()),
		zap.String("name", club.Name))

	return club, nil
}

// GetClub получает клуб по ID
func (s *ClubService) GetClub(ctx context.Context, id uuid.UUID) (*model.Club, error) {
	club, err := s.clubs.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get club: %w", err)
	}
	if club == nil {
		return nil, ErrClubNotFound
	}
	return club, nil
}

// ListClubs получает все клубы
func (s *ClubService) ListClubs(ctx context.Context) ([]*model.Club, error) {
	clubs, err := s.clubs.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list clubs: %w", err)
	}
	return clubs, nil
}
