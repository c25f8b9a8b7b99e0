package dto

import "tonotes/ranking"

type SmartViewsResponse struct {
	Tag            string `json:"tag,omitempty"`
	Total          int    `json:"total"`
	Overdue        int    `json:"overdue"`
	DueToday       int    `json:"dueToday"`
	DueSoon        int    `json:"dueSoon"`
	HighPriority   int    `json:"highPriority"`
	InProgress     int    `json:"inProgress"`
	Pinned         int    `json:"pinned"`
	RecentlyEdited int    `json:"recentlyEdited"`
	Snoozed        int    `json:"snoozed"`
	Dismissed      int    `json:"dismissed"`
}

func NewSmartViewsResponse(tag string, v ranking.SmartViews) SmartViewsResponse {
	return SmartViewsResponse{
		Tag:            tag,
		Total:          v.Total,
		Overdue:        v.Overdue,
		DueToday:       v.DueToday,
		DueSoon:        v.DueSoon,
		HighPriority:   v.HighPriority,
		InProgress:     v.InProgress,
		Pinned:         v.Pinned,
		RecentlyEdited: v.RecentlyEdited,
		Snoozed:        v.Snoozed,
		Dismissed:      v.Dismissed,
	}
}
