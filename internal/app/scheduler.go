package app

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
)

// Auditor проверяет сохранённые расписания и возвращает число клубов с нарушениями
type Auditor interface {
	AuditSchedules(ctx context.Context) (int, error)
}

// Scheduler периодически запускает аудит расписаний
type Scheduler struct {
	auditor  Auditor
	interval time.Duration
	logger   *zap.Logger
	stopChan chan struct{}
	stopOnce sync.Once
	started  atomic.Bool
	done     chan struct{}
}

// NewScheduler создаёт новый планировщик
func NewScheduler(auditor Auditor, interval time.Duration, logger *zap.Logger) *Scheduler {
	return &Scheduler{
		auditor:  auditor,
		interval: interval,
		logger:   logger,
		stopChan: make(chan struct{}),
		done:     make(chan struct{}),
	}
}

// Start запускает аудит в отдельной горутине: сразу и затем каждые interval
func (s *Scheduler) Start(ctx context.Context) {
	if !s.started.CompareAndSwap(false, true) {
		return
	}
	s.logger.Info("Starting background scheduler", zap.Duration("audit_interval", s.interval))
	go s.runAuditTask(ctx)
}

// Stop останавливает планировщик и ждёт завершения текущего прогона
func (s *Scheduler) Stop() {
	s.stopOnce.Do(func() {
		s.logger.Info("Stopping background scheduler")
		close(s.stopChan)
	})
	if s.started.Load() {
		<-s.done
	}
}

func (s *Scheduler) runAuditTask(ctx context.Context) {
	defer close(s.done)

	s.audit(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.audit(ctx)
		case <-s.stopChan:
			s.logger.Info("Schedule audit task stopped")
			return
		case <-ctx.Done():
			s.logger.Info("Schedule audit task cancelled")
			return
		}
	}
}

func (s *Scheduler) audit(ctx context.Context) {
	invalid, err := s.auditor.AuditSchedules(ctx)
	if err != nil {
		s.logger.Error("Schedule audit failed", zap.Error(err))
		return
	}
	if invalid > 0 {
		s.logger.Warn("Schedule audit found invalid schedules", zap.Int("clubs", invalid))
	}
}
