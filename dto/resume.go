package dto

import (
	"time"

	"tonotes/ranking"
)

type SuggestionResponse struct {
	Type           ranking.SuggestionType `json:"type"`
	Note           NoteSummary            `json:"note"`
	Reason         string                 `json:"reason"`
	Detail         string                 `json:"detail,omitempty"`
	Progress       float64                `json:"progress,omitempty"`
	ScrollPosition int                    `json:"scrollPosition,omitempty"`
}

type ResumeContextResponse struct {
	LastViewedAt       *time.Time `json:"lastViewedAt"`
	LastEditedAt       *time.Time `json:"lastEditedAt"`
	PreviousSessionEnd *time.Time `json:"previousSessionEnd"`
	Message            string     `json:"message"`
}

type ViewedNoteResponse struct {
	Note           NoteSummary `json:"note"`
	ViewedAt       time.Time   `json:"viewedAt"`
	ScrollPosition int         `json:"scrollPosition"`
}

type ResumeResponse struct {
	Primary         *SuggestionResponse   `json:"primary"`
	Context         ResumeContextResponse `json:"context"`
	IsReturning     bool                  `json:"isReturning"`
	TimeSinceActive *string               `json:"timeSinceActive"`
	RecentlyViewed  []ViewedNoteResponse  `json:"recentlyViewed"`
}

func NewResumeResponse(r ranking.ResumeResult, now time.Time) ResumeResponse {
	resp := ResumeResponse{
		Context: ResumeContextResponse{
			LastViewedAt:       r.Context.LastViewedAt,
			LastEditedAt:       r.Context.LastEditedAt,
			PreviousSessionEnd: r.Context.PreviousSessionEnd,
			Message:            r.Context.Message,
		},
		IsReturning:    r.IsReturning,
		RecentlyViewed: make([]ViewedNoteResponse, len(r.RecentlyViewed)),
	}
	if r.TimeSinceActive != "" {
		label := r.TimeSinceActive
		resp.TimeSinceActive = &label
	}
	if p := r.Primary; p != nil {
		resp.Primary = &SuggestionResponse{
			Type:           p.Type,
			Note:           ToNoteSummary(p.Note, now),
			Reason:         p.Reason,
			Detail:         p.Detail,
			Progress:       p.Progress,
			ScrollPosition: p.ScrollPosition,
		}
	}
	for i, v := range r.RecentlyViewed {
		resp.RecentlyViewed[i] = ViewedNoteResponse{
			Note:           ToNoteSummary(v.Note, now),
			ViewedAt:       v.ViewedAt,
			ScrollPosition: v.ScrollPosition,
		}
	}
	return resp
}
