package model

import (
	"errors"
	"time"
)

// ErrVersionConflict is returned by a versioned save when the stored record
// changed since it was read.
var ErrVersionConflict = errors.New("activity record version conflict")

const (
	MaxRecentlyViewed = 10
	// SessionGap is the inactivity span after which a new session starts.
	SessionGap = 30 * time.Minute
)

type ViewedNote struct {
	NoteID           string    `bson:"note_id" json:"note_id"`
	ViewedAt         time.Time `bson:"viewed_at" json:"viewed_at"`
	ScrollPosition   int       `bson:"scroll_position" json:"scroll_position"`
	TimeSpentSeconds int       `bson:"time_spent_seconds" json:"time_spent_seconds"`
}

// ActivityRecord is the per-user continuity state. Version is bumped on
// every successful save and used as a compare-and-set guard.
type ActivityRecord struct {
	ID                 string       `bson:"_id,omitempty" json:"id"`
	UserID             string       `bson:"user_id" json:"user_id"`
	LastViewedNoteID   string       `bson:"last_viewed_note_id,omitempty" json:"last_viewed_note_id,omitempty"`
	LastViewedAt       *time.Time   `bson:"last_viewed_at,omitempty" json:"last_viewed_at,omitempty"`
	LastEditedNoteID   string       `bson:"last_edited_note_id,omitempty" json:"last_edited_note_id,omitempty"`
	LastEditedAt       *time.Time   `bson:"last_edited_at,omitempty" json:"last_edited_at,omitempty"`
	LastActiveAt       time.Time    `bson:"last_active_at" json:"last_active_at"`
	PreviousSessionEnd *time.Time   `bson:"previous_session_end,omitempty" json:"previous_session_end,omitempty"`
	RecentlyViewed     []ViewedNote `bson:"recently_viewed" json:"recently_viewed"`
	Version            int64        `bson:"version" json:"version"`
}

// NewActivityRecord returns an empty, unsaved record for userID.
func NewActivityRecord(userID string) *ActivityRecord {
	return &ActivityRecord{
		UserID:         userID,
		RecentlyViewed: []ViewedNote{},
	}
}

// AddViewedNote records a view of noteID at the front of the history,
// dropping any earlier entry for the same note and keeping at most
// MaxRecentlyViewed entries.
func (a *ActivityRecord) AddViewedNote(noteID string, scrollPosition, timeSpentSeconds int, at time.Time) {
	a.touch(at)

	entry := ViewedNote{
		NoteID:           noteID,
		ViewedAt:         at,
		ScrollPosition:   clamp(scrollPosition, 0, 100),
		TimeSpentSeconds: max(timeSpentSeconds, 0),
	}

	history := make([]ViewedNote, 0, MaxRecentlyViewed)
	history = append(history, entry)
	for _, v := range a.RecentlyViewed {
		if v.NoteID == noteID {
			continue
		}
		if len(history) == MaxRecentlyViewed {
			break
		}
		history = append(history, v)
	}
	a.RecentlyViewed = history

	viewedAt := at
	a.LastViewedNoteID = noteID
	a.LastViewedAt = &viewedAt
}

// RecordEdit marks noteID as the last edited note.
func (a *ActivityRecord) RecordEdit(noteID string, at time.Time) {
	a.touch(at)

	editedAt := at
	a.LastEditedNoteID = noteID
	a.LastEditedAt = &editedAt
}

// ViewOf returns the history entry for noteID, if any.
func (a *ActivityRecord) ViewOf(noteID string) (ViewedNote, bool) {
	for _, v := range a.RecentlyViewed {
		if v.NoteID == noteID {
			return v, true
		}
	}
	return ViewedNote{}, false
}

// touch advances LastActiveAt, closing the previous session first when the
// gap since the last interaction exceeds SessionGap. Events older than
// LastActiveAt never move it backwards.
func (a *ActivityRecord) touch(at time.Time) {
	if !at.After(a.LastActiveAt) {
		return
	}
	if !a.LastActiveAt.IsZero() && at.Sub(a.LastActiveAt) > SessionGap {
		end := a.LastActiveAt
		a.PreviousSessionEnd = &end
	}
	a.LastActiveAt = at
}

func clamp(v, lo, hi int) int {
	return min(max(v, lo), hi)
}
