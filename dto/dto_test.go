package dto

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tonotes/model"
	"tonotes/ranking"
)

var testNow = time.Date(2024, 5, 15, 10, 0, 0, 0, time.UTC)

func TestToNoteSummary(t *testing.T) {
	until := testNow.Add(time.Hour)
	note := &model.Note{
		ID:           "n1",
		Title:        "Groceries",
		Type:         "checklist",
		Priority:     model.PriorityHigh,
		SnoozedUntil: &until,
		FocusPinned:  true,
		Checklist: []model.ChecklistItem{
			{ID: "1", Text: "milk", Completed: true},
			{ID: "2", Text: "eggs"},
		},
	}

	s := ToNoteSummary(note, testNow)

	assert.Equal(t, "checklist", s.Type)
	assert.Equal(t, []string{}, s.Tags)
	require.NotNil(t, s.Checklist)
	assert.Equal(t, ChecklistProgress{Completed: 1, Total: 2}, *s.Checklist)
	assert.True(t, s.Overrides.Snoozed)
	assert.True(t, s.Overrides.FocusPinned)
	assert.Equal(t, "/api/notes/n1/snooze", s.Links["snooze"].Href)
	assert.Equal(t, "/api/focus/related/n1", s.Links["related"].Href)

	// An expired snooze reads as not snoozed.
	assert.False(t, ToNoteSummary(note, testNow.Add(2*time.Hour)).Overrides.Snoozed)
}

func TestToNoteSummaryWithoutChecklist(t *testing.T) {
	s := ToNoteSummary(&model.Note{ID: "n1"}, testNow)

	assert.Nil(t, s.Checklist)
	assert.Equal(t, "note", s.Type)
}

func TestEmptyResultsSerializeAsArrays(t *testing.T) {
	tests := []struct {
		name string
		resp interface{}
		keys []string
	}{
		{
			name: "focus",
			resp: NewDailyFocusResponse(ranking.FocusResult{}, testNow),
			keys: []string{"needsAttention", "continueWorking", "recentlyEdited"},
		},
		{
			name: "related",
			resp: NewRelatedNotesResponse(&model.Note{ID: "n1"}, ranking.RelatedResult{}, testNow),
			keys: []string{"notes", "withTasks", "currentNoteTags"},
		},
		{
			name: "priority",
			resp: NewSmartPriorityResponse(ranking.PriorityResult{}, testNow),
			keys: []string{"focusPinned", "urgent", "active", "suggested", "insights"},
		},
		{
			name: "resume",
			resp: NewResumeResponse(ranking.ResumeResult{}, testNow),
			keys: []string{"recentlyViewed"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw, err := json.Marshal(tt.resp)
			require.NoError(t, err)

			var fields map[string]json.RawMessage
			require.NoError(t, json.Unmarshal(raw, &fields))
			for _, key := range tt.keys {
				assert.JSONEq(t, "[]", string(fields[key]), key)
			}
		})
	}
}

func TestNewResumeResponse(t *testing.T) {
	note := &model.Note{ID: "n1", Title: "Draft"}
	viewedAt := testNow.Add(-3 * time.Hour)

	resp := NewResumeResponse(ranking.ResumeResult{
		Primary: &ranking.Suggestion{
			Type:           ranking.SuggestLastViewed,
			Note:           note,
			Reason:         "Pick up where you left off last time",
			ScrollPosition: 40,
		},
		IsReturning:     true,
		TimeSinceActive: "3h ago",
		RecentlyViewed:  []ranking.ViewedContext{{Note: note, ViewedAt: viewedAt, ScrollPosition: 10}},
	}, testNow)

	require.NotNil(t, resp.Primary)
	assert.Equal(t, "n1", resp.Primary.Note.ID)
	assert.Equal(t, 40, resp.Primary.ScrollPosition)
	require.NotNil(t, resp.TimeSinceActive)
	assert.Equal(t, "3h ago", *resp.TimeSinceActive)
	require.Len(t, resp.RecentlyViewed, 1)
	assert.Equal(t, viewedAt, resp.RecentlyViewed[0].ViewedAt)

	empty := NewResumeResponse(ranking.ResumeResult{}, testNow)
	assert.Nil(t, empty.Primary)
	assert.Nil(t, empty.TimeSinceActive)
}
