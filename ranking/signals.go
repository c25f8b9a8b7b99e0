// Package ranking decides which notes deserve attention at a given moment.
// Everything here is pure: callers pass notes, activity and "now", and get
// back deterministic, explainable results.
package ranking

import (
	"time"

	"tonotes/model"
)

type Signal string

const (
	SignalOverdue        Signal = "overdue"
	SignalDueToday       Signal = "due_today"
	SignalDueSoon        Signal = "due_soon"
	SignalHighPriority   Signal = "high_priority"
	SignalInProgress     Signal = "in_progress"
	SignalRecentlyActive Signal = "recently_active"
	SignalPinned         Signal = "pinned"
	SignalReturning      Signal = "returning"
)

// signalOrder is the urgency order used to pick a primary signal.
var signalOrder = []Signal{
	SignalOverdue,
	SignalDueToday,
	SignalDueSoon,
	SignalHighPriority,
	SignalInProgress,
	SignalRecentlyActive,
	SignalPinned,
	SignalReturning,
}

// Windows are the consumer-specific spans used during extraction.
type Windows struct {
	DueSoon time.Duration
	Recent  time.Duration
}

type SignalSet struct {
	Overdue        bool
	DueToday       bool
	DueSoon        bool
	HighPriority   bool
	InProgress     bool
	RecentlyActive bool
	Pinned         bool
	Returning      bool

	ChecklistCompleted int
	ChecklistTotal     int
}

// Extract derives the signal set of note at now. Returning is never set
// here; it depends on activity and is added by the caller.
func Extract(note *model.Note, now time.Time, w Windows) SignalSet {
	completed, total := note.ChecklistProgress()
	s := SignalSet{
		HighPriority:       note.Priority == model.PriorityHigh,
		InProgress:         total > 0 && completed < total,
		RecentlyActive:     within(note.UpdatedAt, now, w.Recent),
		Pinned:             note.IsPinned,
		ChecklistCompleted: completed,
		ChecklistTotal:     total,
	}

	if note.DueDate != nil {
		due := *note.DueDate
		today := startOfDay(now)
		tomorrow := today.AddDate(0, 0, 1)

		s.Overdue = due.Before(today)
		s.DueToday = !due.Before(today) && due.Before(tomorrow)
		s.DueSoon = !due.Before(now) && !due.After(now.Add(w.DueSoon))
	}
	return s
}

func (s SignalSet) Has(sig Signal) bool {
	switch sig {
	case SignalOverdue:
		return s.Overdue
	case SignalDueToday:
		return s.DueToday
	case SignalDueSoon:
		return s.DueSoon
	case SignalHighPriority:
		return s.HighPriority
	case SignalInProgress:
		return s.InProgress
	case SignalRecentlyActive:
		return s.RecentlyActive
	case SignalPinned:
		return s.Pinned
	case SignalReturning:
		return s.Returning
	}
	return false
}

// List returns the present signals in urgency order.
func (s SignalSet) List() []Signal {
	out := []Signal{}
	for _, sig := range signalOrder {
		if s.Has(sig) {
			out = append(out, sig)
		}
	}
	return out
}

// Primary returns the most urgent signal present.
func (s SignalSet) Primary() (Signal, bool) {
	for _, sig := range signalOrder {
		if s.Has(sig) {
			return sig, true
		}
	}
	return "", false
}

// Progress is the checklist completion ratio in [0,1].
func (s SignalSet) Progress() float64 {
	if s.ChecklistTotal == 0 {
		return 0
	}
	return float64(s.ChecklistCompleted) / float64(s.ChecklistTotal)
}

func within(t, now time.Time, window time.Duration) bool {
	if t.IsZero() {
		return false
	}
	return now.Sub(t) < window
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
