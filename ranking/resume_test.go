package ranking

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tonotes/model"
)

// activity builds a record whose last interaction happened idle ago.
func activity(idle time.Duration, build func(rec *model.ActivityRecord, at time.Time)) *model.ActivityRecord {
	rec := model.NewActivityRecord("user-1")
	build(rec, testNow.Add(-idle))
	return rec
}

func TestResumeWithoutActivity(t *testing.T) {
	result := Resume(nil, []*model.Note{newNote("a", priority(model.PriorityHigh), checklist(0, 1))}, testNow, DefaultConfig().Resume)

	assert.Nil(t, result.Primary)
	assert.False(t, result.IsReturning)
	assert.Empty(t, result.TimeSinceActive)
	assert.Empty(t, result.RecentlyViewed)
	assert.Empty(t, result.Context.Message)
}

func TestResumeIncompleteTasksFirst(t *testing.T) {
	notes := []*model.Note{
		newNote("edited", checklist(2, 5)),
		newNote("viewed", content(strings.Repeat("x", 600))),
	}
	rec := activity(10*time.Minute, func(rec *model.ActivityRecord, at time.Time) {
		rec.AddViewedNote("viewed", 50, 60, at.Add(-time.Minute))
		rec.RecordEdit("edited", at)
	})

	result := Resume(rec, notes, testNow, DefaultConfig().Resume)

	require.NotNil(t, result.Primary)
	assert.Equal(t, SuggestIncompleteTasks, result.Primary.Type)
	assert.Equal(t, "edited", result.Primary.Note.ID)
	assert.Equal(t, "2/5 tasks complete", result.Primary.Detail)
	assert.InDelta(t, 40.0, result.Primary.Progress, 1e-9)
	assert.False(t, result.IsReturning)
	assert.Equal(t, "10 minutes ago", result.TimeSinceActive)
	assert.Equal(t, "Continue your current session", result.Context.Message)

	require.Len(t, result.RecentlyViewed, 1)
	assert.Equal(t, "viewed", result.RecentlyViewed[0].Note.ID)
	assert.Equal(t, 50, result.RecentlyViewed[0].ScrollPosition)
}

func TestResumeLastViewed(t *testing.T) {
	notes := []*model.Note{
		newNote("done", checklist(3, 3)),
		newNote("viewed"),
	}

	tests := []struct {
		name      string
		idle      time.Duration
		reason    string
		returning bool
		message   string
	}{
		{
			name:   "same session",
			idle:   time.Minute,
			reason: "Continue where you left off",
			// Under five minutes no elapsed label is shown.
			message: "Continue your current session",
		},
		{
			name:      "after a break",
			idle:      3 * time.Hour,
			reason:    "Pick up where you left off last time",
			returning: true,
			message:   "Welcome back. You were last active 3 hours ago",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := activity(tt.idle, func(rec *model.ActivityRecord, at time.Time) {
				rec.RecordEdit("done", at.Add(-time.Minute))
				rec.AddViewedNote("viewed", 45, 0, at)
			})

			result := Resume(rec, notes, testNow, DefaultConfig().Resume)

			require.NotNil(t, result.Primary)
			assert.Equal(t, SuggestLastViewed, result.Primary.Type)
			assert.Equal(t, "viewed", result.Primary.Note.ID)
			assert.Equal(t, 45, result.Primary.ScrollPosition)
			assert.Equal(t, tt.reason, result.Primary.Reason)
			assert.Equal(t, tt.returning, result.IsReturning)
			assert.Equal(t, tt.message, result.Context.Message)
			assert.Empty(t, result.RecentlyViewed)
		})
	}
}

func TestResumeMeaningfulView(t *testing.T) {
	cfg := DefaultConfig().Resume
	short := newNote("n")
	long := newNote("n", content(strings.Repeat("x", 501)))

	tests := []struct {
		name string
		note *model.Note
		view model.ViewedNote
		want bool
	}{
		{"scrolled into the middle", short, model.ViewedNote{ScrollPosition: 21}, true},
		{"barely scrolled", short, model.ViewedNote{ScrollPosition: 20}, false},
		{"scrolled to the end", short, model.ViewedNote{ScrollPosition: 90}, false},
		{"read for a while", short, model.ViewedNote{TimeSpentSeconds: 11}, true},
		{"glanced at", short, model.ViewedNote{TimeSpentSeconds: 10}, false},
		{"long content", long, model.ViewedNote{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, meaningfulView(tt.note, tt.view, cfg))
		})
	}
}

func TestResumeUrgentTaskFallback(t *testing.T) {
	notes := []*model.Note{
		newNote("glanced"),
		newNote("old-urgent", priority(model.PriorityHigh), checklist(1, 4), updated(testNow.AddDate(0, 0, -5))),
		newNote("new-urgent", priority(model.PriorityHigh), checklist(1, 2), updated(testNow.AddDate(0, 0, -1))),
		newNote("archived-urgent", priority(model.PriorityHigh), checklist(0, 2), updated(testNow), archived()),
		newNote("high-done", priority(model.PriorityHigh), checklist(2, 2), updated(testNow)),
	}
	rec := activity(time.Hour, func(rec *model.ActivityRecord, at time.Time) {
		rec.AddViewedNote("glanced", 95, 3, at)
	})

	result := Resume(rec, notes, testNow, DefaultConfig().Resume)

	require.NotNil(t, result.Primary)
	assert.Equal(t, SuggestUrgentTask, result.Primary.Type)
	assert.Equal(t, "new-urgent", result.Primary.Note.ID)
	assert.Equal(t, "1/2 tasks complete", result.Primary.Detail)
	assert.Equal(t, []string{"glanced"}, viewedIDs(result.RecentlyViewed))
}

func TestResumeNoSuggestion(t *testing.T) {
	rec := activity(30*time.Hour, func(rec *model.ActivityRecord, at time.Time) {
		rec.AddViewedNote("deleted", 50, 100, at)
	})

	result := Resume(rec, []*model.Note{newNote("plain")}, testNow, DefaultConfig().Resume)

	assert.Nil(t, result.Primary)
	assert.True(t, result.IsReturning)
	assert.Equal(t, "1 day ago", result.TimeSinceActive)
	assert.Equal(t, "Welcome back. You were last active 1 day ago", result.Context.Message)
	assert.Empty(t, result.RecentlyViewed)
}

func TestResumeRecentlyViewedLimit(t *testing.T) {
	var notes []*model.Note
	rec := activity(time.Minute, func(rec *model.ActivityRecord, at time.Time) {
		for i, id := range []string{"v1", "v2", "v3", "v4", "v5"} {
			rec.AddViewedNote(id, 0, 0, at.Add(time.Duration(i)*time.Second))
		}
	})
	for _, id := range []string{"v1", "v2", "v3", "v4"} {
		notes = append(notes, newNote(id))
	}

	result := Resume(rec, notes, testNow, DefaultConfig().Resume)

	assert.Nil(t, result.Primary)
	// v5 is unknown, so the three newest known notes remain.
	assert.Equal(t, []string{"v4", "v3", "v2"}, viewedIDs(result.RecentlyViewed))
}

func TestReturningNoteIDs(t *testing.T) {
	cfg := DefaultConfig().Resume
	build := func(rec *model.ActivityRecord, at time.Time) {
		rec.AddViewedNote("viewed", 0, 0, at.Add(-time.Minute))
		rec.RecordEdit("edited", at)
	}

	assert.Nil(t, ReturningNoteIDs(nil, testNow, cfg))
	assert.Nil(t, ReturningNoteIDs(activity(time.Hour, build), testNow, cfg))
	assert.Equal(t, map[string]bool{"viewed": true, "edited": true},
		ReturningNoteIDs(activity(2*time.Hour, build), testNow, cfg))
}

func TestElapsedLabel(t *testing.T) {
	assert.Equal(t, "6 minutes ago", elapsedLabel(6*time.Minute))
	assert.Equal(t, "1 hour ago", elapsedLabel(90*time.Minute))
	assert.Equal(t, "2 days ago", elapsedLabel(50*time.Hour))
}

func viewedIDs(items []ViewedContext) []string {
	out := []string{}
	for _, item := range items {
		out = append(out, item.Note.ID)
	}
	return out
}
