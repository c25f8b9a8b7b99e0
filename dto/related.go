package dto

import (
	"time"

	"tonotes/model"
	"tonotes/ranking"
)

type RelatedReasonResponse struct {
	Kind  ranking.RelatedReasonKind `json:"kind"`
	Label string                    `json:"label"`
}

type RelatedNoteResponse struct {
	Note          NoteSummary             `json:"note"`
	Score         float64                 `json:"score"`
	Reasons       []RelatedReasonResponse `json:"reasons"`
	PrimaryReason string                  `json:"primaryReason"`
	SharedTags    []string                `json:"sharedTags"`
}

type RelatedNotesResponse struct {
	Notes           []RelatedNoteResponse `json:"notes"`
	WithTasks       []RelatedNoteResponse `json:"withTasks"`
	CurrentNoteTags []string              `json:"currentNoteTags"`
	CurrentNoteType string                `json:"currentNoteType"`
}

func NewRelatedNotesResponse(ref *model.Note, r ranking.RelatedResult, now time.Time) RelatedNotesResponse {
	tags := ref.Tags
	if tags == nil {
		tags = []string{}
	}
	return RelatedNotesResponse{
		Notes:           toRelatedNotes(r.Notes, now),
		WithTasks:       toRelatedNotes(r.WithTasks, now),
		CurrentNoteTags: tags,
		CurrentNoteType: ref.NoteType(),
	}
}

func toRelatedNotes(items []ranking.RelatedNote, now time.Time) []RelatedNoteResponse {
	out := make([]RelatedNoteResponse, len(items))
	for i, item := range items {
		reasons := make([]RelatedReasonResponse, len(item.Reasons))
		for j, reason := range item.Reasons {
			reasons[j] = RelatedReasonResponse{Kind: reason.Kind, Label: reason.Label}
		}
		shared := item.SharedTags
		if shared == nil {
			shared = []string{}
		}
		out[i] = RelatedNoteResponse{
			Note:          ToNoteSummary(item.Note, now),
			Score:         item.Score,
			Reasons:       reasons,
			PrimaryReason: item.PrimaryReason,
			SharedTags:    shared,
		}
	}
	return out
}
