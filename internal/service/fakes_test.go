package service

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jswmusik/youthclub/internal/model"
	"github.com/jswmusik/youthclub/internal/schedule"
)

// memStore хранит клубы и окна в памяти так же, как это делает Postgres:
// время возвращается в виде "HH:MM:SS", ID окон назначаются при сохранении
type memStore struct {
	mu      sync.Mutex
	clubs   map[uuid.UUID]*model.Club
	windows map[uuid.UUID][]*model.OpeningWindow
	nextID  int64
	saves   int

	failList error
}

func newMemStore() *memStore {
	return &memStore{
		clubs:   make(map[uuid.UUID]*model.Club),
		windows: make(map[uuid.UUID][]*model.OpeningWindow),
	}
}

func (m *memStore) Create(_ context.Context, club *model.Club) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.clubs[club.ID]; exists {
		return errors.New("duplicate club id")
	}
	club.CreatedAt = time.Now()
	stored := *club
	m.clubs[club.ID] = &stored
	return nil
}

func (m *memStore) GetByID(_ context.Context, id uuid.UUID) (*model.Club, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	club, ok := m.clubs[id]
	if !ok {
		return nil, nil
	}
	out := *club
	return &out, nil
}

func (m *memStore) List(_ context.Context) ([]*model.Club, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.failList != nil {
		return nil, m.failList
	}

	var out []*model.Club
	for _, club := range m.clubs {
		c := *club
		out = append(out, &c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (m *memStore) GetByClubID(_ context.Context, clubID uuid.UUID) ([]*model.OpeningWindow, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var out []*model.OpeningWindow
	for _, w := range m.windows[clubID] {
		c := *w
		out = append(out, &c)
	}
	return out, nil
}

func (m *memStore) ReplaceAll(_ context.Context, clubID, revision uuid.UUID, records []schedule.Record) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	club, ok := m.clubs[clubID]
	if !ok {
		return errors.New("club not found")
	}

	rows := make([]*model.OpeningWindow, 0, len(records))
	for i, rec := range records {
		m.nextID++
		rows = append(rows, &model.OpeningWindow{
			ID:                m.nextID,
			ClubID:            clubID,
			Revision:          revision,
			Position:          i,
			Weekday:           rec.Weekday,
			WeekCycle:         rec.WeekCycle,
			OpenTime:          rec.OpenTime + ":00",
			CloseTime:         rec.CloseTime + ":00",
			Title:             rec.Title,
			GenderRestriction: rec.GenderRestriction,
			RestrictionMode:   rec.RestrictionMode,
			MinValue:          rec.MinValue,
			MaxValue:          rec.MaxValue,
		})
	}

	m.windows[clubID] = rows
	now := time.Now()
	club.ScheduleRevision = uuid.NullUUID{UUID: revision, Valid: true}
	club.ScheduleUpdatedAt = &now
	m.saves++
	return nil
}

// putRaw кладёт строку в обход проверок, как если бы её записал кто-то другой
func (m *memStore) putRaw(clubID uuid.UUID, row model.OpeningWindow) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.nextID++
	row.ID = m.nextID
	row.ClubID = clubID
	row.Position = len(m.windows[clubID])
	m.windows[clubID] = append(m.windows[clubID], &row)
}
