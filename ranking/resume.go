package ranking

import (
	"fmt"
	"time"

	"tonotes/model"
)

type SuggestionType string

const (
	SuggestIncompleteTasks SuggestionType = "incomplete_tasks"
	SuggestLastViewed      SuggestionType = "last_viewed"
	SuggestUrgentTask      SuggestionType = "urgent_task"
)

type Suggestion struct {
	Type           SuggestionType
	Note           *model.Note
	Reason         string
	Detail         string
	Progress       float64
	ScrollPosition int
}

type ViewedContext struct {
	Note           *model.Note
	ViewedAt       time.Time
	ScrollPosition int
}

// Continuity describes how long the user has been away.
type Continuity struct {
	IsReturning     bool
	TimeSinceActive string
	Elapsed         time.Duration
}

type ResumeContext struct {
	LastViewedAt       *time.Time
	LastEditedAt       *time.Time
	PreviousSessionEnd *time.Time
	Message            string
}

type ResumeResult struct {
	Primary         *Suggestion
	Context         ResumeContext
	IsReturning     bool
	TimeSinceActive string
	RecentlyViewed  []ViewedContext
}

// ContinuityOf is evaluated at read time from the record's last activity.
func ContinuityOf(rec *model.ActivityRecord, now time.Time, cfg ResumeConfig) Continuity {
	if rec == nil || rec.LastActiveAt.IsZero() {
		return Continuity{}
	}
	elapsed := now.Sub(rec.LastActiveAt)
	c := Continuity{
		Elapsed:     elapsed,
		IsReturning: elapsed >= cfg.ReturningAfter,
	}
	if elapsed > cfg.ElapsedVisibleAfter {
		c.TimeSinceActive = elapsedLabel(elapsed)
	}
	return c
}

// ReturningNoteIDs returns the notes of the last session when the user is
// coming back after a break, and nil otherwise.
func ReturningNoteIDs(rec *model.ActivityRecord, now time.Time, cfg ResumeConfig) map[string]bool {
	if !ContinuityOf(rec, now, cfg).IsReturning {
		return nil
	}
	ids := make(map[string]bool, len(rec.RecentlyViewed))
	for _, v := range rec.RecentlyViewed {
		ids[v.NoteID] = true
	}
	if rec.LastEditedNoteID != "" {
		ids[rec.LastEditedNoteID] = true
	}
	return ids
}

// Resume composes the continue-here suggestion. notes are the owner's
// non-archived notes; references to anything else are ignored.
func Resume(rec *model.ActivityRecord, notes []*model.Note, now time.Time, cfg ResumeConfig) ResumeResult {
	result := ResumeResult{RecentlyViewed: []ViewedContext{}}
	if rec == nil {
		return result
	}

	byID := make(map[string]*model.Note, len(notes))
	for _, n := range notes {
		if !n.IsArchived {
			byID[n.ID] = n
		}
	}

	cont := ContinuityOf(rec, now, cfg)
	result.IsReturning = cont.IsReturning
	result.TimeSinceActive = cont.TimeSinceActive
	result.Primary = primarySuggestion(rec, byID, notes, cont, cfg)
	result.Context = ResumeContext{
		LastViewedAt:       rec.LastViewedAt,
		LastEditedAt:       rec.LastEditedAt,
		PreviousSessionEnd: rec.PreviousSessionEnd,
		Message:            contextMessage(cont, result.Primary),
	}

	for _, v := range rec.RecentlyViewed {
		if len(result.RecentlyViewed) == cfg.RecentlyViewedLimit {
			break
		}
		if result.Primary != nil && v.NoteID == result.Primary.Note.ID {
			continue
		}
		note, ok := byID[v.NoteID]
		if !ok {
			continue
		}
		result.RecentlyViewed = append(result.RecentlyViewed, ViewedContext{
			Note:           note,
			ViewedAt:       v.ViewedAt,
			ScrollPosition: v.ScrollPosition,
		})
	}
	return result
}

func primarySuggestion(rec *model.ActivityRecord, byID map[string]*model.Note, notes []*model.Note, cont Continuity, cfg ResumeConfig) *Suggestion {
	if note, ok := byID[rec.LastEditedNoteID]; ok && note.HasIncompleteChecklist() {
		completed, total := note.ChecklistProgress()
		return &Suggestion{
			Type:     SuggestIncompleteTasks,
			Note:     note,
			Reason:   "You have unfinished tasks here",
			Detail:   fmt.Sprintf("%d/%d tasks complete", completed, total),
			Progress: percent(float64(completed) / float64(total)),
		}
	}

	if note, ok := byID[rec.LastViewedNoteID]; ok {
		view, _ := rec.ViewOf(note.ID)
		if meaningfulView(note, view, cfg) {
			reason := "Continue where you left off"
			if cont.IsReturning {
				reason = "Pick up where you left off last time"
			}
			return &Suggestion{
				Type:           SuggestLastViewed,
				Note:           note,
				Reason:         reason,
				ScrollPosition: view.ScrollPosition,
			}
		}
	}

	var urgent *model.Note
	for _, n := range notes {
		if n.IsArchived || n.UserID != rec.UserID {
			continue
		}
		if n.Priority != model.PriorityHigh || !n.HasIncompleteChecklist() {
			continue
		}
		if urgent == nil || n.UpdatedAt.After(urgent.UpdatedAt) {
			urgent = n
		}
	}
	if urgent != nil {
		completed, total := urgent.ChecklistProgress()
		return &Suggestion{
			Type:     SuggestUrgentTask,
			Note:     urgent,
			Reason:   "High priority with open tasks",
			Detail:   fmt.Sprintf("%d/%d tasks complete", completed, total),
			Progress: percent(float64(completed) / float64(total)),
		}
	}
	return nil
}

func meaningfulView(note *model.Note, view model.ViewedNote, cfg ResumeConfig) bool {
	return (view.ScrollPosition > cfg.MeaningfulScrollMin && view.ScrollPosition < cfg.MeaningfulScrollMax) ||
		view.TimeSpentSeconds > cfg.MeaningfulTimeSpent ||
		len(note.Content) > cfg.MeaningfulContentLength
}

func contextMessage(cont Continuity, primary *Suggestion) string {
	switch {
	case cont.IsReturning && cont.TimeSinceActive != "":
		return "Welcome back. You were last active " + cont.TimeSinceActive
	case primary != nil:
		return "Continue your current session"
	default:
		return ""
	}
}
