package dto

import (
	"time"

	"tonotes/ranking"
)

type FocusItemResponse struct {
	Note        NoteSummary         `json:"note"`
	Reason      ranking.FocusReason `json:"reason"`
	Urgency     ranking.Urgency     `json:"urgency,omitempty"`
	Label       string              `json:"label"`
	DaysOverdue int                 `json:"daysOverdue,omitempty"`
	Progress    float64             `json:"progress"`
	Completed   int                 `json:"completed"`
	Total       int                 `json:"total"`
}

type FocusSummaryResponse struct {
	Overdue      int `json:"overdue"`
	DueToday     int `json:"dueToday"`
	HighPriority int `json:"highPriority"`
	InProgress   int `json:"inProgress"`
}

type DailyFocusResponse struct {
	NeedsAttention  []FocusItemResponse  `json:"needsAttention"`
	ContinueWorking []FocusItemResponse  `json:"continueWorking"`
	RecentlyEdited  []FocusItemResponse  `json:"recentlyEdited"`
	Summary         FocusSummaryResponse `json:"summary"`
}

func NewDailyFocusResponse(r ranking.FocusResult, now time.Time) DailyFocusResponse {
	return DailyFocusResponse{
		NeedsAttention:  toFocusItems(r.NeedsAttention, now),
		ContinueWorking: toFocusItems(r.ContinueWorking, now),
		RecentlyEdited:  toFocusItems(r.RecentlyEdited, now),
		Summary: FocusSummaryResponse{
			Overdue:      r.Summary.Overdue,
			DueToday:     r.Summary.DueToday,
			HighPriority: r.Summary.HighPriority,
			InProgress:   r.Summary.InProgress,
		},
	}
}

func toFocusItems(items []ranking.FocusItem, now time.Time) []FocusItemResponse {
	out := make([]FocusItemResponse, len(items))
	for i, item := range items {
		out[i] = FocusItemResponse{
			Note:        ToNoteSummary(item.Note, now),
			Reason:      item.Reason,
			Urgency:     item.Urgency,
			Label:       item.Label,
			DaysOverdue: item.DaysOverdue,
			Progress:    item.Progress,
			Completed:   item.Completed,
			Total:       item.Total,
		}
	}
	return out
}
