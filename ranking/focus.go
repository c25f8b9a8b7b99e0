package ranking

import (
	"sort"
	"time"

	"tonotes/model"
)

type FocusBucket string

const (
	BucketUnclassified    FocusBucket = ""
	BucketNeedsAttention  FocusBucket = "needs_attention"
	BucketContinueWorking FocusBucket = "continue_working"
	BucketRecentlyEdited  FocusBucket = "recently_edited"
)

type Urgency string

const (
	UrgencyCritical Urgency = "critical"
	UrgencyHigh     Urgency = "high"
	UrgencyMedium   Urgency = "medium"
	UrgencyLow      Urgency = "low"
)

func (u Urgency) rank() int {
	switch u {
	case UrgencyCritical:
		return 0
	case UrgencyHigh:
		return 1
	case UrgencyMedium:
		return 2
	default:
		return 3
	}
}

type FocusReason string

const (
	ReasonOverdue          FocusReason = "overdue"
	ReasonDueToday         FocusReason = "due_today"
	ReasonDueSoon          FocusReason = "due_soon"
	ReasonHighPriority     FocusReason = "high_priority"
	ReasonPinnedInProgress FocusReason = "pinned_in_progress"
	ReasonInProgress       FocusReason = "in_progress"
	ReasonRecentlyEdited   FocusReason = "recently_edited"
)

// FocusItem is the classification of one note. Bucket is
// BucketUnclassified when the note does not belong in Daily Focus.
type FocusItem struct {
	Note        *model.Note
	Bucket      FocusBucket
	Reason      FocusReason
	Urgency     Urgency
	Label       string
	DaysOverdue int
	Progress    float64
	Completed   int
	Total       int
}

type FocusSummary struct {
	Overdue      int
	DueToday     int
	HighPriority int
	InProgress   int
}

type FocusResult struct {
	NeedsAttention  []FocusItem
	ContinueWorking []FocusItem
	RecentlyEdited  []FocusItem
	Summary         FocusSummary
}

// Classify places note in exactly one Daily Focus bucket, the first rule
// that matches, or none.
func Classify(note *model.Note, now time.Time, cfg FocusConfig) FocusItem {
	sig := Extract(note, now, Windows{DueSoon: cfg.DueSoonWindow, Recent: cfg.RecentWindow})
	item := FocusItem{
		Note:      note,
		Completed: sig.ChecklistCompleted,
		Total:     sig.ChecklistTotal,
		Progress:  percent(sig.Progress()),
	}

	switch {
	case sig.Overdue:
		days := daysOverdue(*note.DueDate, now)
		item.Bucket, item.Reason, item.Urgency = BucketNeedsAttention, ReasonOverdue, UrgencyCritical
		item.DaysOverdue = days
		item.Label = "Overdue by " + plural(days, "day")
	case sig.DueToday:
		item.Bucket, item.Reason, item.Urgency = BucketNeedsAttention, ReasonDueToday, UrgencyHigh
		item.Label = "Due today"
	case sig.DueSoon:
		item.Bucket, item.Reason, item.Urgency = BucketNeedsAttention, ReasonDueSoon, UrgencyMedium
		item.Label = "Due " + note.DueDate.In(now.Location()).Weekday().String()
	case sig.HighPriority:
		item.Bucket, item.Reason, item.Urgency = BucketNeedsAttention, ReasonHighPriority, UrgencyMedium
		if sig.InProgress {
			item.Urgency = UrgencyHigh
		}
		item.Label = "High priority"
	case sig.Pinned && sig.InProgress:
		item.Bucket, item.Reason = BucketContinueWorking, ReasonPinnedInProgress
		item.Label = progressLabel(sig.ChecklistCompleted, sig.ChecklistTotal)
	case sig.RecentlyActive && sig.InProgress:
		item.Bucket, item.Reason = BucketContinueWorking, ReasonInProgress
		item.Label = progressLabel(sig.ChecklistCompleted, sig.ChecklistTotal)
	case sig.RecentlyActive:
		item.Bucket, item.Reason = BucketRecentlyEdited, ReasonRecentlyEdited
		item.Label = relativeLabel(now.Sub(note.UpdatedAt))
	}
	return item
}

// DailyFocus buckets the eligible notes. Archived, dismissed and currently
// snoozed notes are left out.
func DailyFocus(notes []*model.Note, now time.Time, cfg FocusConfig) FocusResult {
	var groups focusGroups
	for _, note := range notes {
		if note.IsArchived || note.DismissedFromFocus || note.IsSnoozed(now) {
			continue
		}
		groups = groups.with(Classify(note, now, cfg))
	}

	return FocusResult{
		NeedsAttention:  truncate(byUrgency(groups.needsAttention), cfg.MaxNeedsAttention),
		ContinueWorking: truncate(byProgress(groups.continueWorking), cfg.MaxContinueWorking),
		RecentlyEdited:  truncate(byRecency(groups.recentlyEdited), cfg.MaxRecentlyEdited),
		Summary:         groups.summary(),
	}
}

type focusGroups struct {
	needsAttention  []FocusItem
	continueWorking []FocusItem
	recentlyEdited  []FocusItem
}

func (g focusGroups) with(item FocusItem) focusGroups {
	switch item.Bucket {
	case BucketNeedsAttention:
		g.needsAttention = append(g.needsAttention, item)
	case BucketContinueWorking:
		g.continueWorking = append(g.continueWorking, item)
	case BucketRecentlyEdited:
		g.recentlyEdited = append(g.recentlyEdited, item)
	}
	return g
}

// summary counts before any truncation.
func (g focusGroups) summary() FocusSummary {
	s := FocusSummary{InProgress: len(g.continueWorking)}
	for _, item := range g.needsAttention {
		switch item.Reason {
		case ReasonOverdue:
			s.Overdue++
		case ReasonDueToday:
			s.DueToday++
		case ReasonHighPriority:
			s.HighPriority++
		}
	}
	return s
}

func byUrgency(items []FocusItem) []FocusItem {
	out := append([]FocusItem(nil), items...)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Urgency.rank() < out[j].Urgency.rank()
	})
	return out
}

func byProgress(items []FocusItem) []FocusItem {
	out := append([]FocusItem(nil), items...)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Progress < out[j].Progress
	})
	return out
}

func byRecency(items []FocusItem) []FocusItem {
	out := append([]FocusItem(nil), items...)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Note.UpdatedAt.After(out[j].Note.UpdatedAt)
	})
	return out
}
