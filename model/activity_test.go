package model

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddViewedNoteBoundedAndDeduplicated(t *testing.T) {
	rec := NewActivityRecord("user-1")
	start := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)

	// Cycle through 15 ids, revisiting a few along the way.
	ids := []string{}
	for i := 0; i < 15; i++ {
		ids = append(ids, fmt.Sprintf("note-%d", i))
	}
	ids = append(ids, "note-3", "note-14", "note-0")

	for i, id := range ids {
		rec.AddViewedNote(id, 50, 5, start.Add(time.Duration(i)*time.Minute))

		require.LessOrEqual(t, len(rec.RecentlyViewed), MaxRecentlyViewed)
		seen := map[string]bool{}
		for j, v := range rec.RecentlyViewed {
			assert.False(t, seen[v.NoteID], "duplicate %s", v.NoteID)
			seen[v.NoteID] = true
			if j > 0 {
				assert.False(t, v.ViewedAt.After(rec.RecentlyViewed[j-1].ViewedAt), "history not most-recent-first")
			}
		}
		assert.Equal(t, id, rec.RecentlyViewed[0].NoteID)
		assert.Equal(t, id, rec.LastViewedNoteID)
	}

	assert.Equal(t, "note-0", rec.RecentlyViewed[0].NoteID)
	assert.Equal(t, "note-14", rec.RecentlyViewed[1].NoteID)
	assert.Equal(t, "note-3", rec.RecentlyViewed[2].NoteID)
}

func TestAddViewedNoteClampsValues(t *testing.T) {
	rec := NewActivityRecord("user-1")
	now := time.Now()

	rec.AddViewedNote("a", 140, -3, now)
	assert.Equal(t, 100, rec.RecentlyViewed[0].ScrollPosition)
	assert.Equal(t, 0, rec.RecentlyViewed[0].TimeSpentSeconds)

	rec.AddViewedNote("b", -10, 12, now)
	assert.Equal(t, 0, rec.RecentlyViewed[0].ScrollPosition)
	assert.Equal(t, 12, rec.RecentlyViewed[0].TimeSpentSeconds)
}

func TestSessionBoundary(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name       string
		lastActive time.Time
		wantEnd    *time.Time
	}{
		{
			name:       "gap over 30 minutes closes previous session",
			lastActive: now.Add(-40 * time.Minute),
			wantEnd:    ptr(now.Add(-40 * time.Minute)),
		},
		{
			name:       "gap under 30 minutes keeps session",
			lastActive: now.Add(-10 * time.Minute),
			wantEnd:    nil,
		},
		{
			name:       "first interaction has no previous session",
			lastActive: time.Time{},
			wantEnd:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := NewActivityRecord("user-1")
			rec.LastActiveAt = tt.lastActive

			rec.AddViewedNote("note-1", 0, 0, now)

			if tt.wantEnd == nil {
				assert.Nil(t, rec.PreviousSessionEnd)
			} else {
				require.NotNil(t, rec.PreviousSessionEnd)
				assert.True(t, tt.wantEnd.Equal(*rec.PreviousSessionEnd))
			}
			assert.True(t, now.Equal(rec.LastActiveAt))
			require.NotNil(t, rec.LastViewedAt)
			assert.True(t, now.Equal(*rec.LastViewedAt))
		})
	}
}

func TestRecordEdit(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	rec := NewActivityRecord("user-1")
	rec.LastActiveAt = now.Add(-2 * time.Hour)

	rec.RecordEdit("note-9", now)

	assert.Equal(t, "note-9", rec.LastEditedNoteID)
	require.NotNil(t, rec.PreviousSessionEnd)
	assert.True(t, now.Add(-2*time.Hour).Equal(*rec.PreviousSessionEnd))
	assert.Empty(t, rec.RecentlyViewed)
}

func TestOlderEventDoesNotRewindActivity(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	rec := NewActivityRecord("user-1")
	rec.AddViewedNote("a", 0, 0, now)

	rec.AddViewedNote("b", 0, 0, now.Add(-2*time.Hour))

	assert.True(t, now.Equal(rec.LastActiveAt))
	assert.Nil(t, rec.PreviousSessionEnd)
	assert.Equal(t, "b", rec.RecentlyViewed[0].NoteID)
}

func TestNoteOverrides(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	note := &Note{SnoozedUntil: ptr(now.Add(time.Hour)), FocusPinned: true}

	state := note.Overrides(now)
	assert.True(t, state.Snoozed)
	assert.True(t, state.FocusPinned)

	assert.False(t, note.IsSnoozed(now.Add(time.Hour)), "snooze expires exactly at snoozed_until")
}

func TestChecklistProgress(t *testing.T) {
	note := &Note{}
	assert.False(t, note.HasIncompleteChecklist())

	note.Checklist = []ChecklistItem{{Completed: true}, {Completed: false}, {Completed: true}}
	completed, total := note.ChecklistProgress()
	assert.Equal(t, 2, completed)
	assert.Equal(t, 3, total)
	assert.True(t, note.HasIncompleteChecklist())
}

func ptr[T any](v T) *T { return &v }
