package usecase

import (
	"context"

	"tonotes/model"
)

// NoteStore is the note persistence the ranking core reads from. Only
// override fields are ever written through it.
type NoteStore interface {
	FindNotes(ctx context.Context, filter model.NoteFilter) ([]*model.Note, error)
	GetNote(ctx context.Context, userID, noteID string) (*model.Note, error)
	UpdateOverrides(ctx context.Context, userID, noteID string, upd model.OverrideUpdate) (*model.Note, error)
	ToggleFocusPin(ctx context.Context, userID, noteID string) (*model.Note, error)
}

// ActivityStore persists one ActivityRecord per user. SaveActivity must
// return model.ErrVersionConflict when the stored version moved on.
type ActivityStore interface {
	GetActivity(ctx context.Context, userID string) (*model.ActivityRecord, error)
	SaveActivity(ctx context.Context, rec *model.ActivityRecord) error
}

func activeNotes(ctx context.Context, notes NoteStore, userID, tag string) ([]*model.Note, error) {
	archived := false
	return notes.FindNotes(ctx, model.NoteFilter{UserID: userID, Archived: &archived, Tag: tag})
}
