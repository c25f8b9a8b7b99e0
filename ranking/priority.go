package ranking

import (
	"fmt"
	"math"
	"sort"
	"time"

	"tonotes/model"
)

type PriorityBucket string

const (
	BucketFocusPinned PriorityBucket = "focus_pinned"
	BucketUrgent      PriorityBucket = "urgent"
	BucketActive      PriorityBucket = "active"
	BucketSuggested   PriorityBucket = "suggested"
)

type PrioritizedNote struct {
	Note          *model.Note
	Rank          int
	Bucket        PriorityBucket
	PrimarySignal Signal
	Signals       []Signal
	Score         float64
	Explanation   string
	Overrides     model.OverrideState
}

type PriorityResult struct {
	FocusPinned    []PrioritizedNote
	Urgent         []PrioritizedNote
	Active         []PrioritizedNote
	Suggested      []PrioritizedNote
	Insights       []string
	SnoozedCount   int
	DismissedCount int
}

// Score weights. Urgency dominates, then intent, then recency.
const (
	weightOverdue      = 100.0
	weightDueToday     = 80.0
	weightDueSoon      = 60.0
	weightHighPriority = 40.0
	weightInProgress   = 15.0
	weightReturning    = 12.0
	weightRecent       = 10.0
	weightPinned       = 5.0
)

// SmartPriority ranks the eligible notes into display buckets. returning
// holds the ids of notes from the user's previous session, if any.
//
// A dismissed note is excluded even when it is focus-pinned.
func SmartPriority(notes []*model.Note, returning map[string]bool, now time.Time, cfg PriorityConfig) PriorityResult {
	w := Windows{DueSoon: cfg.DueSoonWindow, Recent: cfg.RecentWindow}

	var tally priorityTally
	var pinned, urgent, active, suggested []PrioritizedNote

	for _, note := range notes {
		switch {
		case note.IsArchived:
			continue
		case note.DismissedFromFocus:
			tally.dismissed++
			continue
		case note.IsSnoozed(now):
			tally.snoozed++
			continue
		}

		sig := Extract(note, now, w)
		sig.Returning = returning[note.ID]
		item := prioritize(note, sig, now, cfg)
		tally = tally.count(sig)

		switch item.Bucket {
		case BucketFocusPinned:
			pinned = append(pinned, item)
		case BucketUrgent:
			urgent = append(urgent, item)
		case BucketActive:
			active = append(active, item)
		default:
			suggested = append(suggested, item)
		}
	}

	result := PriorityResult{
		FocusPinned:    ranked(pinned, cfg.MaxFocusPinned),
		Urgent:         ranked(urgent, cfg.MaxUrgent),
		Active:         ranked(active, cfg.MaxActive),
		Suggested:      ranked(suggested, cfg.MaxSuggested),
		SnoozedCount:   tally.snoozed,
		DismissedCount: tally.dismissed,
	}
	result.Insights = tally.insights(len(urgent) - len(result.Urgent))
	return result
}

func prioritize(note *model.Note, sig SignalSet, now time.Time, cfg PriorityConfig) PrioritizedNote {
	item := PrioritizedNote{
		Note:      note,
		Signals:   sig.List(),
		Score:     score(note, sig, now, cfg),
		Overrides: note.Overrides(now),
	}
	item.PrimarySignal, _ = sig.Primary()

	switch {
	case note.FocusPinned:
		item.Bucket = BucketFocusPinned
	case sig.Overdue || sig.DueToday || sig.DueSoon || sig.HighPriority:
		item.Bucket = BucketUrgent
	case sig.InProgress || sig.RecentlyActive:
		item.Bucket = BucketActive
	default:
		item.Bucket = BucketSuggested
	}
	item.Explanation = explain(item, sig, now)
	return item
}

func score(note *model.Note, sig SignalSet, now time.Time, cfg PriorityConfig) float64 {
	s := 0.0
	if sig.Overdue {
		s += weightOverdue + math.Min(float64(daysOverdue(*note.DueDate, now)), 30)
	}
	if sig.DueToday {
		s += weightDueToday
	}
	if sig.DueSoon && !sig.DueToday {
		daysLeft := note.DueDate.Sub(now).Hours() / 24
		s += weightDueSoon - math.Min(daysLeft, 7)*5
	}
	if sig.HighPriority {
		s += weightHighPriority
	}
	if sig.InProgress {
		s += weightInProgress + (1-sig.Progress())*10
	}
	if sig.Returning {
		s += weightReturning
	}
	if sig.RecentlyActive && cfg.RecentWindow > 0 {
		age := now.Sub(note.UpdatedAt)
		s += weightRecent * (1 - math.Max(float64(age), 0)/float64(cfg.RecentWindow))
	}
	if sig.Pinned {
		s += weightPinned
	}
	return math.Round(s*100) / 100
}

// ranked sorts by score (ties: most recently updated, then id), caps the
// bucket and assigns 1-based ranks.
func ranked(items []PrioritizedNote, limit int) []PrioritizedNote {
	out := append([]PrioritizedNote{}, items...)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Score != out[j].Score {
			return out[i].Score > out[j].Score
		}
		if !out[i].Note.UpdatedAt.Equal(out[j].Note.UpdatedAt) {
			return out[i].Note.UpdatedAt.After(out[j].Note.UpdatedAt)
		}
		return out[i].Note.ID < out[j].Note.ID
	})
	out = truncate(out, limit)
	for i := range out {
		out[i].Rank = i + 1
	}
	return out
}

func explain(item PrioritizedNote, sig SignalSet, now time.Time) string {
	note := item.Note
	switch item.PrimarySignal {
	case SignalOverdue:
		return "Overdue by " + plural(daysOverdue(*note.DueDate, now), "day")
	case SignalDueToday:
		return "Due today"
	case SignalDueSoon:
		days := int(startOfDay(note.DueDate.In(now.Location())).Sub(startOfDay(now)).Hours() / 24)
		if days <= 1 {
			return "Due tomorrow"
		}
		return fmt.Sprintf("Due in %d days", days)
	case SignalHighPriority:
		return "Marked high priority"
	case SignalInProgress:
		return fmt.Sprintf("%d of %d tasks done", sig.ChecklistCompleted, sig.ChecklistTotal)
	case SignalRecentlyActive:
		return "Edited " + lowerFirst(relativeLabel(now.Sub(note.UpdatedAt)))
	case SignalPinned:
		return "Pinned note"
	case SignalReturning:
		return "From your last session"
	}
	if item.Bucket == BucketFocusPinned {
		return "Pinned to your focus list"
	}
	return "Worth a look"
}

func lowerFirst(s string) string {
	switch s {
	case "Just now":
		return "just now"
	case "Yesterday":
		return "yesterday"
	}
	return s
}

type priorityTally struct {
	snoozed   int
	dismissed int
	overdue   int
	dueToday  int
	returning int
}

func (t priorityTally) count(sig SignalSet) priorityTally {
	if sig.Overdue {
		t.overdue++
	}
	if sig.DueToday {
		t.dueToday++
	}
	if sig.Returning {
		t.returning++
	}
	return t
}

func (t priorityTally) insights(hiddenUrgent int) []string {
	out := []string{}
	if t.overdue > 0 {
		verb := " need attention"
		if t.overdue == 1 {
			verb = " needs attention"
		}
		out = append(out, countPhrase(t.overdue, "overdue note")+verb)
	}
	if t.dueToday > 0 {
		out = append(out, countPhrase(t.dueToday, "note")+" due today")
	}
	if hiddenUrgent > 0 {
		out = append(out, countPhrase(hiddenUrgent, "more urgent note")+" not shown")
	}
	if t.returning > 0 {
		out = append(out, "Welcome back: "+countPhrase(t.returning, "note")+" from your last session")
	}
	if t.snoozed > 0 {
		out = append(out, countPhrase(t.snoozed, "note")+" snoozed")
	}
	if t.dismissed > 0 {
		out = append(out, countPhrase(t.dismissed, "note")+" dismissed from focus")
	}
	return out
}

func countPhrase(n int, noun string) string {
	if n == 1 {
		return "1 " + noun
	}
	return fmt.Sprintf("%d %ss", n, noun)
}
