package ranking

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tonotes/model"
)

func priorityIDs(items []PrioritizedNote) []string {
	out := []string{}
	for _, item := range items {
		out = append(out, item.Note.ID)
	}
	return out
}

func TestSmartPriorityBuckets(t *testing.T) {
	notes := []*model.Note{
		newNote("pinned-idle", focusPinned()),
		newNote("overdue", due(testNow.Add(-48*time.Hour))),
		newNote("today", due(testNow.Add(3*time.Hour))),
		newNote("high", priority(model.PriorityHigh)),
		newNote("wip", checklist(1, 2)),
		newNote("fresh", updated(testNow.Add(-time.Hour))),
		newNote("idle"),
		newNote("archived", due(testNow.Add(-day)), archived()),
	}

	result := SmartPriority(notes, nil, testNow, DefaultConfig().Priority)

	assert.Equal(t, []string{"pinned-idle"}, priorityIDs(result.FocusPinned))
	assert.Equal(t, []string{"overdue", "today", "high"}, priorityIDs(result.Urgent))
	assert.Equal(t, []string{"wip", "fresh"}, priorityIDs(result.Active))
	assert.Equal(t, []string{"idle"}, priorityIDs(result.Suggested))

	overdue := result.Urgent[0]
	assert.Equal(t, 1, overdue.Rank)
	assert.Equal(t, SignalOverdue, overdue.PrimarySignal)
	assert.Equal(t, "Overdue by 2 days", overdue.Explanation)
	assert.Equal(t, 102.0, overdue.Score)

	assert.Equal(t, "Due today", result.Urgent[1].Explanation)
	assert.Equal(t, "Marked high priority", result.Urgent[2].Explanation)
	assert.Equal(t, "1 of 2 tasks done", result.Active[0].Explanation)
	assert.Equal(t, "Edited 1h ago", result.Active[1].Explanation)
	assert.Equal(t, "Worth a look", result.Suggested[0].Explanation)
	assert.Equal(t, "Pinned to your focus list", result.FocusPinned[0].Explanation)
	assert.True(t, result.FocusPinned[0].Overrides.FocusPinned)
}

func TestSmartPriorityRanksAreContiguous(t *testing.T) {
	var notes []*model.Note
	for i := 0; i < 4; i++ {
		notes = append(notes, newNote(fmt.Sprintf("u%d", i), due(testNow.Add(-time.Duration(i+1)*day))))
	}

	result := SmartPriority(notes, nil, testNow, DefaultConfig().Priority)

	require.Len(t, result.Urgent, 4)
	for i, item := range result.Urgent {
		assert.Equal(t, i+1, item.Rank)
		if i > 0 {
			assert.GreaterOrEqual(t, result.Urgent[i-1].Score, item.Score)
		}
	}
	assert.Equal(t, "u3", result.Urgent[0].Note.ID)
}

func TestSmartPriorityTieBreak(t *testing.T) {
	notes := []*model.Note{
		newNote("b", priority(model.PriorityHigh), updated(testNow.AddDate(0, 0, -20))),
		newNote("a", priority(model.PriorityHigh), updated(testNow.AddDate(0, 0, -20))),
		newNote("c", priority(model.PriorityHigh), updated(testNow.AddDate(0, 0, -10))),
	}

	result := SmartPriority(notes, nil, testNow, DefaultConfig().Priority)

	assert.Equal(t, []string{"c", "a", "b"}, priorityIDs(result.Urgent))
}

func TestSmartPriorityDueTomorrow(t *testing.T) {
	notes := []*model.Note{
		newNote("tomorrow", due(testNow.Add(day))),
		newNote("later", due(testNow.Add(4*day))),
	}

	result := SmartPriority(notes, nil, testNow, DefaultConfig().Priority)

	require.Len(t, result.Urgent, 2)
	assert.Equal(t, "Due tomorrow", result.Urgent[0].Explanation)
	assert.Equal(t, 55.0, result.Urgent[0].Score)
	assert.Equal(t, "Due in 4 days", result.Urgent[1].Explanation)
	assert.Equal(t, 40.0, result.Urgent[1].Score)
}

func TestSmartPriorityOverrides(t *testing.T) {
	notes := []*model.Note{
		newNote("snoozed", due(testNow.Add(-day)), snoozedUntil(testNow.Add(time.Hour))),
		newNote("woken", due(testNow.Add(-day)), snoozedUntil(testNow.Add(-time.Hour))),
		newNote("dismissed", priority(model.PriorityHigh), dismissed()),
		newNote("pinned-and-dismissed", focusPinned(), dismissed()),
	}

	result := SmartPriority(notes, nil, testNow, DefaultConfig().Priority)

	assert.Empty(t, result.FocusPinned)
	assert.Equal(t, []string{"woken"}, priorityIDs(result.Urgent))
	assert.Equal(t, 1, result.SnoozedCount)
	assert.Equal(t, 2, result.DismissedCount)
	assert.False(t, result.Urgent[0].Overrides.Snoozed)
	assert.Contains(t, result.Insights, "1 note snoozed")
	assert.Contains(t, result.Insights, "2 notes dismissed from focus")
}

func TestSmartPriorityReturningBoost(t *testing.T) {
	notes := []*model.Note{
		newNote("plain"),
		newNote("last-session"),
	}
	returning := map[string]bool{"last-session": true}

	result := SmartPriority(notes, returning, testNow, DefaultConfig().Priority)

	require.Len(t, result.Suggested, 2)
	top := result.Suggested[0]
	assert.Equal(t, "last-session", top.Note.ID)
	assert.Equal(t, SignalReturning, top.PrimarySignal)
	assert.Equal(t, "From your last session", top.Explanation)
	assert.Equal(t, 12.0, top.Score)
	assert.Contains(t, result.Insights, "Welcome back: 1 note from your last session")
}

func TestSmartPriorityInsights(t *testing.T) {
	var notes []*model.Note
	for i := 0; i < 7; i++ {
		notes = append(notes, newNote(fmt.Sprintf("high-%d", i), priority(model.PriorityHigh)))
	}
	notes = append(notes,
		newNote("late", due(testNow.Add(-day))),
		newNote("today-1", due(testNow.Add(time.Hour))),
		newNote("today-2", due(testNow.Add(2*time.Hour))),
	)

	result := SmartPriority(notes, nil, testNow, DefaultConfig().Priority)

	assert.Len(t, result.Urgent, 5)
	assert.Equal(t, []string{
		"1 overdue note needs attention",
		"2 notes due today",
		"5 more urgent notes not shown",
	}, result.Insights)
}

func TestSmartPriorityEmpty(t *testing.T) {
	result := SmartPriority(nil, nil, testNow, DefaultConfig().Priority)

	assert.Empty(t, result.FocusPinned)
	assert.Empty(t, result.Urgent)
	assert.Empty(t, result.Active)
	assert.Empty(t, result.Suggested)
	assert.Equal(t, []string{}, result.Insights)
}
