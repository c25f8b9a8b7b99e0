package dto

import (
	"time"

	"tonotes/model"
)

type NoteLink struct {
	Href   string `json:"href"`
	Method string `json:"method,omitempty"`
}

// NoteSummary is the note shape embedded in every ranking response.
type NoteSummary struct {
	ID        string              `json:"id"`
	Title     string              `json:"title"`
	Type      string              `json:"type"`
	Color     string              `json:"color,omitempty"`
	Tags      []string            `json:"tags"`
	Priority  model.Priority      `json:"priority"`
	IsPinned  bool                `json:"isPinned"`
	DueDate   *time.Time          `json:"dueDate,omitempty"`
	Checklist *ChecklistProgress  `json:"checklist,omitempty"`
	UpdatedAt time.Time           `json:"updatedAt"`
	Overrides model.OverrideState `json:"overrides"`
	Links     map[string]NoteLink `json:"_links,omitempty"`
}

type ChecklistProgress struct {
	Completed int `json:"completed"`
	Total     int `json:"total"`
}

func ToNoteSummary(note *model.Note, now time.Time) NoteSummary {
	tags := note.Tags
	if tags == nil {
		tags = []string{}
	}
	summary := NoteSummary{
		ID:        note.ID,
		Title:     note.Title,
		Type:      note.NoteType(),
		Color:     note.Color,
		Tags:      tags,
		Priority:  note.Priority,
		IsPinned:  note.IsPinned,
		DueDate:   note.DueDate,
		UpdatedAt: note.UpdatedAt,
		Overrides: note.Overrides(now),
		Links:     noteLinks(note.ID),
	}
	if completed, total := note.ChecklistProgress(); total > 0 {
		summary.Checklist = &ChecklistProgress{Completed: completed, Total: total}
	}
	return summary
}

func noteLinks(id string) map[string]NoteLink {
	base := "/api/notes/" + id
	return map[string]NoteLink{
		"related":   {Href: "/api/focus/related/" + id, Method: "GET"},
		"snooze":    {Href: base + "/snooze", Method: "POST"},
		"dismiss":   {Href: base + "/dismiss", Method: "POST"},
		"focus_pin": {Href: base + "/focus-pin", Method: "POST"},
	}
}

// OverrideResponse answers every override action.
type OverrideResponse struct {
	Note NoteSummary `json:"note"`
}

func NewOverrideResponse(note *model.Note, now time.Time) OverrideResponse {
	return OverrideResponse{Note: ToNoteSummary(note, now)}
}
