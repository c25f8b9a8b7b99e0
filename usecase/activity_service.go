package usecase

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"

	"tonotes/middleware"
	"tonotes/model"
	"tonotes/utils"
)

const maxSaveAttempts = 3

// ActivityService records views and edits. Tracking is best effort: calls
// return immediately, the write happens on a background goroutine and
// failures are only logged.
type ActivityService struct {
	Activity ActivityStore
	Clock    utils.Clock
	Logger   *zap.Logger
	// Timeout bounds each background write.
	Timeout time.Duration

	wg sync.WaitGroup
}

// TrackView records that userID opened noteID. scroll is a percentage and
// timeSpent is in seconds; both are clamped.
func (s *ActivityService) TrackView(userID, noteID string, scroll, timeSpent int) {
	at := s.Clock.Now()
	s.track("view", userID, func(rec *model.ActivityRecord) {
		rec.AddViewedNote(noteID, scroll, timeSpent, at)
	})
}

func (s *ActivityService) TrackEdit(userID, noteID string) {
	at := s.Clock.Now()
	s.track("edit", userID, func(rec *model.ActivityRecord) {
		rec.RecordEdit(noteID, at)
	})
}

func (s *ActivityService) track(kind, userID string, mutate func(*model.ActivityRecord)) {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()

		ctx, cancel := context.WithTimeout(context.Background(), s.Timeout)
		defer cancel()

		outcome := "saved"
		if err := s.apply(ctx, userID, mutate); err != nil {
			outcome = "dropped"
			if errors.Is(err, model.ErrVersionConflict) {
				outcome = "conflict"
			}
			s.Logger.Warn("activity tracking dropped",
				zap.String("kind", kind),
				zap.String("user_id", userID),
				zap.Error(err))
		}
		middleware.TrackTracking(kind, outcome)
	}()
}

// apply reads the current record, mutates it and saves it with a version
// check. On conflict it backs off briefly and re-reads, up to
// maxSaveAttempts in total.
func (s *ActivityService) apply(ctx context.Context, userID string, mutate func(*model.ActivityRecord)) error {
	exp := backoff.NewExponentialBackOff()
	exp.InitialInterval = 10 * time.Millisecond
	exp.Multiplier = 2
	exp.MaxInterval = 100 * time.Millisecond
	exp.Reset()

	var err error
	for attempt := 1; ; attempt++ {
		err = s.save(ctx, userID, mutate)
		if !errors.Is(err, model.ErrVersionConflict) || attempt >= maxSaveAttempts {
			return err
		}

		select {
		case <-time.After(exp.NextBackOff()):
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

func (s *ActivityService) save(ctx context.Context, userID string, mutate func(*model.ActivityRecord)) error {
	rec, err := s.Activity.GetActivity(ctx, userID)
	if err != nil {
		return err
	}
	if rec == nil {
		rec = model.NewActivityRecord(userID)
	}

	mutate(rec)
	return s.Activity.SaveActivity(ctx, rec)
}

// Wait blocks until in-flight tracking finishes or ctx is done.
func (s *ActivityService) Wait(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		s.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
