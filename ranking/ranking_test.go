package ranking

import (
	"fmt"
	"time"

	"tonotes/model"
)

// Wednesday, mid-morning.
var testNow = time.Date(2024, 5, 15, 10, 0, 0, 0, time.UTC)

func ptr[T any](v T) *T { return &v }

type noteOpt func(*model.Note)

func newNote(id string, opts ...noteOpt) *model.Note {
	n := &model.Note{
		ID:        id,
		UserID:    "user-1",
		Title:     "Note " + id,
		Content:   "content",
		Priority:  model.PriorityNone,
		CreatedAt: testNow.AddDate(0, -1, 0),
		UpdatedAt: testNow.AddDate(0, 0, -30),
	}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

func due(t time.Time) noteOpt { return func(n *model.Note) { n.DueDate = ptr(t) } }

func updated(t time.Time) noteOpt { return func(n *model.Note) { n.UpdatedAt = t } }

func priority(p model.Priority) noteOpt { return func(n *model.Note) { n.Priority = p } }

func tags(t ...string) noteOpt { return func(n *model.Note) { n.Tags = t } }

func noteType(t string) noteOpt { return func(n *model.Note) { n.Type = t } }

func title(t string) noteOpt { return func(n *model.Note) { n.Title = t } }

func pinned() noteOpt { return func(n *model.Note) { n.IsPinned = true } }

func archived() noteOpt { return func(n *model.Note) { n.IsArchived = true } }

func focusPinned() noteOpt { return func(n *model.Note) { n.FocusPinned = true } }

func dismissed() noteOpt { return func(n *model.Note) { n.DismissedFromFocus = true } }

func snoozedUntil(t time.Time) noteOpt { return func(n *model.Note) { n.SnoozedUntil = ptr(t) } }

func content(c string) noteOpt { return func(n *model.Note) { n.Content = c } }

// checklist builds total items of which completed are done.
func checklist(completed, total int) noteOpt {
	return func(n *model.Note) {
		n.Checklist = nil
		for i := 0; i < total; i++ {
			n.Checklist = append(n.Checklist, model.ChecklistItem{
				ID:        fmt.Sprintf("%s-item-%d", n.ID, i),
				Text:      fmt.Sprintf("task %d", i),
				Completed: i < completed,
			})
		}
	}
}
