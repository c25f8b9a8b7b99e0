package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"tonotes/model"
	"tonotes/utils"
)

// MemoryStore keeps notes and activity records in process. It serves the
// "memory" store driver and the tests, and honours the same contract as the
// Mongo repos, including the activity version check.
type MemoryStore struct {
	mu       sync.RWMutex
	notes    map[string]*model.Note
	activity map[string]*model.ActivityRecord
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		notes:    map[string]*model.Note{},
		activity: map[string]*model.ActivityRecord{},
	}
}

func (s *MemoryStore) InsertNote(_ context.Context, note *model.Note) error {
	if note.UserID == "" {
		return utils.ValidationError("user ID is required")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.notes[note.ID] = cloneNote(note)
	return nil
}

func (s *MemoryStore) FindNotes(_ context.Context, filter model.NoteFilter) ([]*model.Note, error) {
	if filter.UserID == "" {
		return nil, utils.ValidationError("user ID is required")
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	notes := []*model.Note{}
	for _, n := range s.notes {
		if matches(n, filter) {
			notes = append(notes, cloneNote(n))
		}
	}
	sort.Slice(notes, func(i, j int) bool {
		if !notes[i].UpdatedAt.Equal(notes[j].UpdatedAt) {
			return notes[i].UpdatedAt.After(notes[j].UpdatedAt)
		}
		return notes[i].ID < notes[j].ID
	})
	return notes, nil
}

func matches(n *model.Note, f model.NoteFilter) bool {
	if n.UserID != f.UserID {
		return false
	}
	if f.Archived != nil && n.IsArchived != *f.Archived {
		return false
	}
	if f.Priority != "" && n.Priority != f.Priority {
		return false
	}
	if f.Tag != "" {
		found := false
		for _, t := range n.Tags {
			if t == f.Tag {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	if f.DueAfter != nil || f.DueBefore != nil {
		if n.DueDate == nil {
			return false
		}
		if f.DueAfter != nil && n.DueDate.Before(*f.DueAfter) {
			return false
		}
		if f.DueBefore != nil && n.DueDate.After(*f.DueBefore) {
			return false
		}
	}
	return true
}

func (s *MemoryStore) GetNote(_ context.Context, userID, noteID string) (*model.Note, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	n, ok := s.notes[noteID]
	if !ok || n.UserID != userID {
		return nil, utils.NotFoundError("Note not found")
	}
	return cloneNote(n), nil
}

func (s *MemoryStore) UpdateOverrides(_ context.Context, userID, noteID string, upd model.OverrideUpdate) (*model.Note, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	n, ok := s.notes[noteID]
	if !ok || n.UserID != userID {
		return nil, utils.NotFoundError("Note not found")
	}
	if upd.SnoozedUntil != nil {
		until := *upd.SnoozedUntil
		n.SnoozedUntil = &until
	}
	if upd.ClearSnooze {
		n.SnoozedUntil = nil
	}
	if upd.Dismissed != nil {
		n.DismissedFromFocus = *upd.Dismissed
	}
	return cloneNote(n), nil
}

func (s *MemoryStore) ToggleFocusPin(_ context.Context, userID, noteID string) (*model.Note, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	n, ok := s.notes[noteID]
	if !ok || n.UserID != userID {
		return nil, utils.NotFoundError("Note not found")
	}
	n.FocusPinned = !n.FocusPinned
	return cloneNote(n), nil
}

func (s *MemoryStore) GetActivity(_ context.Context, userID string) (*model.ActivityRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.activity[userID]
	if !ok {
		return nil, nil
	}
	return cloneActivity(rec), nil
}

func (s *MemoryStore) SaveActivity(_ context.Context, rec *model.ActivityRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored, ok := s.activity[rec.UserID]
	switch {
	case !ok && rec.Version != 0:
		return model.ErrVersionConflict
	case ok && stored.Version != rec.Version:
		return model.ErrVersionConflict
	}

	rec.ID = rec.UserID
	rec.Version++
	s.activity[rec.UserID] = cloneActivity(rec)
	return nil
}

func (s *MemoryStore) Ping(context.Context) error {
	return nil
}

func cloneNote(n *model.Note) *model.Note {
	c := *n
	c.Tags = append([]string(nil), n.Tags...)
	c.Checklist = append([]model.ChecklistItem(nil), n.Checklist...)
	c.DueDate = cloneTime(n.DueDate)
	c.ReminderAt = cloneTime(n.ReminderAt)
	c.SnoozedUntil = cloneTime(n.SnoozedUntil)
	return &c
}

func cloneActivity(a *model.ActivityRecord) *model.ActivityRecord {
	c := *a
	c.RecentlyViewed = append([]model.ViewedNote{}, a.RecentlyViewed...)
	c.LastViewedAt = cloneTime(a.LastViewedAt)
	c.LastEditedAt = cloneTime(a.LastEditedAt)
	c.PreviousSessionEnd = cloneTime(a.PreviousSessionEnd)
	return &c
}

func cloneTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	c := *t
	return &c
}
