package ranking

import (
	"time"

	"tonotes/model"
)

// SmartViews are the per-signal counts shown next to the smart view list.
type SmartViews struct {
	Total          int
	Overdue        int
	DueToday       int
	DueSoon        int
	HighPriority   int
	InProgress     int
	Pinned         int
	RecentlyEdited int
	Snoozed        int
	Dismissed      int
}

func SmartViewCounts(notes []*model.Note, now time.Time, cfg SmartViewConfig) SmartViews {
	w := Windows{DueSoon: cfg.DueSoonWindow, Recent: cfg.RecentWindow}

	var v SmartViews
	for _, note := range notes {
		if note.IsArchived {
			continue
		}
		v.Total++
		if note.IsSnoozed(now) {
			v.Snoozed++
		}
		if note.DismissedFromFocus {
			v.Dismissed++
		}

		sig := Extract(note, now, w)
		v.Overdue += boolToInt(sig.Overdue)
		v.DueToday += boolToInt(sig.DueToday)
		v.DueSoon += boolToInt(sig.DueSoon)
		v.HighPriority += boolToInt(sig.HighPriority)
		v.InProgress += boolToInt(sig.InProgress)
		v.Pinned += boolToInt(sig.Pinned)
		v.RecentlyEdited += boolToInt(sig.RecentlyActive)
	}
	return v
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
