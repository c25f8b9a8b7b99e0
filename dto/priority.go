package dto

import (
	"time"

	"tonotes/ranking"
)

type PrioritizedNoteResponse struct {
	Note          NoteSummary            `json:"note"`
	Rank          int                    `json:"rank"`
	Bucket        ranking.PriorityBucket `json:"bucket"`
	PrimarySignal ranking.Signal         `json:"primarySignal,omitempty"`
	Signals       []ranking.Signal       `json:"signals"`
	Score         float64                `json:"score"`
	Explanation   string                 `json:"explanation"`
}

type SmartPriorityResponse struct {
	FocusPinned    []PrioritizedNoteResponse `json:"focusPinned"`
	Urgent         []PrioritizedNoteResponse `json:"urgent"`
	Active         []PrioritizedNoteResponse `json:"active"`
	Suggested      []PrioritizedNoteResponse `json:"suggested"`
	Insights       []string                  `json:"insights"`
	SnoozedCount   int                       `json:"snoozedCount"`
	DismissedCount int                       `json:"dismissedCount"`
}

func NewSmartPriorityResponse(r ranking.PriorityResult, now time.Time) SmartPriorityResponse {
	insights := r.Insights
	if insights == nil {
		insights = []string{}
	}
	return SmartPriorityResponse{
		FocusPinned:    toPrioritized(r.FocusPinned, now),
		Urgent:         toPrioritized(r.Urgent, now),
		Active:         toPrioritized(r.Active, now),
		Suggested:      toPrioritized(r.Suggested, now),
		Insights:       insights,
		SnoozedCount:   r.SnoozedCount,
		DismissedCount: r.DismissedCount,
	}
}

func toPrioritized(items []ranking.PrioritizedNote, now time.Time) []PrioritizedNoteResponse {
	out := make([]PrioritizedNoteResponse, len(items))
	for i, item := range items {
		out[i] = PrioritizedNoteResponse{
			Note:          ToNoteSummary(item.Note, now),
			Rank:          item.Rank,
			Bucket:        item.Bucket,
			PrimarySignal: item.PrimarySignal,
			Signals:       item.Signals,
			Score:         item.Score,
			Explanation:   item.Explanation,
		}
	}
	return out
}
