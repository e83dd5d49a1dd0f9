package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/aliskhannn/flashcards-bot/internal/domain/entities"
)

const (
	reminderBatchSize     = 100
	reminderMaxConcurrent = 10
)

// ReminderService nudges users that have due cards. It only reads
// scheduling state; the next card is still pulled by the user.
type ReminderService struct {
	reminderRepo ReminderRepository
	userRepo     UserRepository
	notifier     ReminderNotifier
	interval     time.Duration
	logger       *zap.Logger

	now func() time.Time
}

// NewReminderService creates a new reminder service. A user is reminded
// at most once per interval.
func NewReminderService(
	reminderRepo ReminderRepository,
	userRepo UserRepository,
	interval time.Duration,
	logger *zap.Logger,
) *ReminderService {
	return &ReminderService{
		reminderRepo: reminderRepo,
		userRepo:     userRepo,
		interval:     interval,
		logger:       logger,
		now:          func() time.Time { return time.Now().UTC() },
	}
}

// SetNotifier sets the notifier (called after handler is created).
func (s *ReminderService) SetNotifier(notifier ReminderNotifier) {
	s.notifier = notifier
}

// Start runs the dispatcher on the cron schedule until ctx is done.
func (s *ReminderService) Start(ctx context.Context, schedule string) error {
	c := cron.New(cron.WithLocation(time.UTC))

	_, err := c.AddFunc(schedule, func() {
		s.logger.Info("cron triggered: processing due-card reminders")
		if _, err := s.SendDueReminders(ctx); err != nil {
			s.logger.Error("failed to send reminders", zap.Error(err))
		}
	})
	if err != nil {
		return fmt.Errorf("add cron job %q: %w", schedule, err)
	}

	c.Start()
	s.logger.Info("reminder service started", zap.String("schedule", schedule))

	<-ctx.Done()

	<-c.Stop().Done()
	s.logger.Info("reminder service stopped")

	return nil
}

// SendDueReminders walks all users with due cards in batches and returns
// how many reminders were delivered.
func (s *ReminderService) SendDueReminders(ctx context.Context) (int, error) {
	if s.notifier == nil {
		return 0, fmt.Errorf("notifier not initialized")
	}

	now := s.now()
	remindedBefore := now.Add(-s.interval)

	var (
		afterUserID int64
		totalSent   int
	)

	for {
		batch, err := s.reminderRepo.GetDueBatch(ctx, now, remindedBefore, afterUserID, reminderBatchSize)
		if err != nil {
			return totalSent, fmt.Errorf("get due batch: %w", err)
		}

		if len(batch) == 0 {
			break
		}

		totalSent += s.processBatch(ctx, batch, now)

		if len(batch) < reminderBatchSize {
			break // last batch
		}

		afterUserID = batch[len(batch)-1].UserID
	}

	s.logger.Info("reminders processed", zap.Int("total_sent", totalSent))

	return totalSent, nil
}

// processBatch sends one batch concurrently.
func (s *ReminderService) processBatch(ctx context.Context, batch []entities.DueSummary, now time.Time) int {
	sem := make(chan struct{}, reminderMaxConcurrent)
	var wg sync.WaitGroup
	var mu sync.Mutex
	sent := 0

	for _, due := range batch {
		wg.Add(1)
		sem <- struct{}{} // acquire

		go func() {
			defer wg.Done()
			defer func() { <-sem }() // release

			if err := s.remind(ctx, due, now); err != nil {
				s.logger.Error("failed to send reminder",
					zap.Int64("user_id", due.UserID),
					zap.Error(err))
				return
			}

			mu.Lock()
			sent++
			mu.Unlock()
		}()
	}

	wg.Wait()
	return sent
}

func (s *ReminderService) remind(ctx context.Context, due entities.DueSummary, now time.Time) error {
	if err := s.notifier.SendDueReminder(due.UserID, due.DueCount); err != nil {
		return fmt.Errorf("send notification: %w", err)
	}

	if err := s.userRepo.MarkReminded(ctx, due.UserID, now); err != nil {
		return fmt.Errorf("mark reminded: %w", err)
	}

	s.logger.Debug("reminder sent",
		zap.Int64("user_id", due.UserID),
		zap.Int("due_count", due.DueCount),
	)

	return nil
}
