package usecase

import (
	"context"

	"go.uber.org/zap"

	"tonotes/middleware"
	"tonotes/model"
	"tonotes/utils"
)

// OverrideService applies the user's ranking overrides to a note. Each
// operation is one atomic store update.
type OverrideService struct {
	Notes  NoteStore
	Clock  utils.Clock
	Logger *zap.Logger
}

// Snooze hides the note from Smart Priority until now + duration.
func (s *OverrideService) Snooze(ctx context.Context, userID, noteID, duration string) (*model.Note, error) {
	d, err := utils.ParseSnoozeDuration(duration)
	if err != nil {
		return nil, utils.ValidationError(err.Error())
	}

	until := s.Clock.Now().Add(d).UTC()
	return s.update(ctx, "snooze", userID, noteID, model.OverrideUpdate{SnoozedUntil: &until})
}

func (s *OverrideService) Unsnooze(ctx context.Context, userID, noteID string) (*model.Note, error) {
	return s.update(ctx, "unsnooze", userID, noteID, model.OverrideUpdate{ClearSnooze: true})
}

func (s *OverrideService) Dismiss(ctx context.Context, userID, noteID string) (*model.Note, error) {
	dismissed := true
	return s.update(ctx, "dismiss", userID, noteID, model.OverrideUpdate{Dismissed: &dismissed})
}

func (s *OverrideService) Restore(ctx context.Context, userID, noteID string) (*model.Note, error) {
	dismissed := false
	return s.update(ctx, "restore", userID, noteID, model.OverrideUpdate{Dismissed: &dismissed})
}

func (s *OverrideService) ToggleFocusPin(ctx context.Context, userID, noteID string) (*model.Note, error) {
	note, err := s.Notes.ToggleFocusPin(ctx, userID, noteID)
	if err != nil {
		return nil, s.fail("focus_pin", userID, noteID, err)
	}
	middleware.TrackOverride("focus_pin")
	return note, nil
}

func (s *OverrideService) update(ctx context.Context, op, userID, noteID string, upd model.OverrideUpdate) (*model.Note, error) {
	note, err := s.Notes.UpdateOverrides(ctx, userID, noteID, upd)
	if err != nil {
		return nil, s.fail(op, userID, noteID, err)
	}
	middleware.TrackOverride(op)
	return note, nil
}

func (s *OverrideService) fail(op, userID, noteID string, err error) error {
	if utils.KindOf(err) == utils.KindStoreFailure {
		s.Logger.Error("override update failed",
			zap.String("operation", op),
			zap.String("user_id", userID),
			zap.String("note_id", noteID),
			zap.Error(err))
		middleware.TrackError("store")
	}
	return err
}
