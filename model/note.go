package model

import (
	"time"
)

type Priority string

const (
	PriorityNone   Priority = "none"
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// DefaultNoteType is the type given to notes created without one.
const DefaultNoteType = "note"

type ChecklistItem struct {
	ID        string `bson:"id" json:"id"`
	Text      string `bson:"text" json:"text"`
	Completed bool   `bson:"completed" json:"completed"`
}

type Note struct {
	ID         string          `bson:"_id,omitempty" json:"id"`
	UserID     string          `bson:"user_id" json:"user_id"`
	Title      string          `bson:"title" json:"title"`
	Content    string          `bson:"content" json:"content"`
	Tags       []string        `bson:"tags,omitempty" json:"tags,omitempty"`
	Type       string          `bson:"type,omitempty" json:"type,omitempty"`
	Color      string          `bson:"color,omitempty" json:"color,omitempty"`
	Priority   Priority        `bson:"priority,omitempty" json:"priority,omitempty"`
	IsPinned   bool            `bson:"is_pinned" json:"is_pinned"`
	IsArchived bool            `bson:"is_archived" json:"is_archived"`
	DueDate    *time.Time      `bson:"due_date,omitempty" json:"due_date,omitempty"`
	ReminderAt *time.Time      `bson:"reminder_at,omitempty" json:"reminder_at,omitempty"`
	Checklist  []ChecklistItem `bson:"checklist,omitempty" json:"checklist,omitempty"`
	CreatedAt  time.Time       `bson:"created_at" json:"created_at"`
	UpdatedAt  time.Time       `bson:"updated_at" json:"updated_at"`

	// Ranking overrides. Only written by explicit user actions.
	SnoozedUntil       *time.Time `bson:"snoozed_until,omitempty" json:"snoozed_until,omitempty"`
	DismissedFromFocus bool       `bson:"dismissed_from_focus" json:"dismissed_from_focus"`
	FocusPinned        bool       `bson:"focus_pinned" json:"focus_pinned"`
}

// NoteType returns the note's type, falling back to DefaultNoteType.
func (n *Note) NoteType() string {
	if n.Type == "" {
		return DefaultNoteType
	}
	return n.Type
}

// ChecklistProgress returns completed and total checklist item counts.
func (n *Note) ChecklistProgress() (completed, total int) {
	for _, item := range n.Checklist {
		if item.Completed {
			completed++
		}
	}
	return completed, len(n.Checklist)
}

// HasIncompleteChecklist reports whether at least one checklist item is open.
func (n *Note) HasIncompleteChecklist() bool {
	completed, total := n.ChecklistProgress()
	return total > 0 && completed < total
}

// IsSnoozed reports whether the snooze is still in effect at now.
// Expired snoozes are not cleared anywhere; they simply stop applying.
func (n *Note) IsSnoozed(now time.Time) bool {
	return n.SnoozedUntil != nil && now.Before(*n.SnoozedUntil)
}

// Overrides returns a snapshot of the note's ranking overrides at now.
func (n *Note) Overrides(now time.Time) OverrideState {
	state := OverrideState{
		Snoozed:     n.IsSnoozed(now),
		Dismissed:   n.DismissedFromFocus,
		FocusPinned: n.FocusPinned,
	}
	if n.SnoozedUntil != nil {
		until := *n.SnoozedUntil
		state.SnoozedUntil = &until
	}
	return state
}

type OverrideState struct {
	Snoozed      bool       `json:"snoozed"`
	SnoozedUntil *time.Time `json:"snoozedUntil,omitempty"`
	Dismissed    bool       `json:"dismissed"`
	FocusPinned  bool       `json:"focusPinned"`
}

// OverrideUpdate describes a partial write of override fields. Nil fields
// are left untouched; ClearSnooze removes snoozed_until.
type OverrideUpdate struct {
	SnoozedUntil *time.Time
	ClearSnooze  bool
	Dismissed    *bool
}

// NoteFilter scopes a note query to a single owner.
type NoteFilter struct {
	UserID    string
	Archived  *bool
	Tag       string
	Priority  Priority
	DueAfter  *time.Time
	DueBefore *time.Time
}
