package config

import (
	"errors"
	"fmt"

	"tonotes/ranking"
	"tonotes/utils"
)

type RankingConfig struct {
	ranking.Config
}

// LoadRankingConfig overrides the ranking defaults from the environment. The
// due-soon and recency windows of each surface are separate keys.
func LoadRankingConfig() RankingConfig {
	d := ranking.DefaultConfig()

	return RankingConfig{ranking.Config{
		Focus: ranking.FocusConfig{
			DueSoonWindow:      utils.GetEnvAsDays("FOCUS_DUE_SOON_DAYS", d.Focus.DueSoonWindow),
			RecentWindow:       utils.GetEnvAsDuration("FOCUS_RECENT_WINDOW", d.Focus.RecentWindow),
			MaxNeedsAttention:  utils.GetEnvAsInt("FOCUS_MAX_NEEDS_ATTENTION", d.Focus.MaxNeedsAttention),
			MaxContinueWorking: utils.GetEnvAsInt("FOCUS_MAX_CONTINUE_WORKING", d.Focus.MaxContinueWorking),
			MaxRecentlyEdited:  utils.GetEnvAsInt("FOCUS_MAX_RECENTLY_EDITED", d.Focus.MaxRecentlyEdited),
		},
		Related: ranking.RelatedConfig{
			RecentWindow:       utils.GetEnvAsDays("RELATED_RECENT_DAYS", d.Related.RecentWindow),
			SharedTagWeight:    utils.GetEnvAsFloat("RELATED_SHARED_TAG_WEIGHT", d.Related.SharedTagWeight),
			SameTypeWeight:     utils.GetEnvAsFloat("RELATED_SAME_TYPE_WEIGHT", d.Related.SameTypeWeight),
			OpenTasksWeight:    utils.GetEnvAsFloat("RELATED_OPEN_TASKS_WEIGHT", d.Related.OpenTasksWeight),
			RecentWeight:       utils.GetEnvAsFloat("RELATED_RECENT_WEIGHT", d.Related.RecentWeight),
			HighPriorityWeight: utils.GetEnvAsFloat("RELATED_HIGH_PRIORITY_WEIGHT", d.Related.HighPriorityWeight),
			TitleWordWeight:    utils.GetEnvAsFloat("RELATED_TITLE_WORD_WEIGHT", d.Related.TitleWordWeight),
			MinTitleWordLength: utils.GetEnvAsInt("RELATED_MIN_TITLE_WORD_LENGTH", d.Related.MinTitleWordLength),
			Limit:              utils.GetEnvAsInt("RELATED_LIMIT", d.Related.Limit),
			WithTasksLimit:     utils.GetEnvAsInt("RELATED_WITH_TASKS_LIMIT", d.Related.WithTasksLimit),
		},
		Priority: ranking.PriorityConfig{
			DueSoonWindow:  utils.GetEnvAsDays("PRIORITY_DUE_SOON_DAYS", d.Priority.DueSoonWindow),
			RecentWindow:   utils.GetEnvAsDays("PRIORITY_RECENT_DAYS", d.Priority.RecentWindow),
			MaxFocusPinned: utils.GetEnvAsInt("PRIORITY_MAX_FOCUS_PINNED", d.Priority.MaxFocusPinned),
			MaxUrgent:      utils.GetEnvAsInt("PRIORITY_MAX_URGENT", d.Priority.MaxUrgent),
			MaxActive:      utils.GetEnvAsInt("PRIORITY_MAX_ACTIVE", d.Priority.MaxActive),
			MaxSuggested:   utils.GetEnvAsInt("PRIORITY_MAX_SUGGESTED", d.Priority.MaxSuggested),
		},
		Resume: ranking.ResumeConfig{
			ReturningAfter:          utils.GetEnvAsDuration("RESUME_RETURNING_AFTER", d.Resume.ReturningAfter),
			ElapsedVisibleAfter:     utils.GetEnvAsDuration("RESUME_ELAPSED_VISIBLE_AFTER", d.Resume.ElapsedVisibleAfter),
			MeaningfulScrollMin:     utils.GetEnvAsInt("RESUME_MEANINGFUL_SCROLL_MIN", d.Resume.MeaningfulScrollMin),
			MeaningfulScrollMax:     utils.GetEnvAsInt("RESUME_MEANINGFUL_SCROLL_MAX", d.Resume.MeaningfulScrollMax),
			MeaningfulTimeSpent:     utils.GetEnvAsInt("RESUME_MEANINGFUL_TIME_SPENT", d.Resume.MeaningfulTimeSpent),
			MeaningfulContentLength: utils.GetEnvAsInt("RESUME_MEANINGFUL_CONTENT_LENGTH", d.Resume.MeaningfulContentLength),
			RecentlyViewedLimit:     utils.GetEnvAsInt("RESUME_RECENTLY_VIEWED_LIMIT", d.Resume.RecentlyViewedLimit),
		},
		SmartViews: ranking.SmartViewConfig{
			DueSoonWindow: utils.GetEnvAsDays("SMART_VIEW_DUE_SOON_DAYS", d.SmartViews.DueSoonWindow),
			RecentWindow:  utils.GetEnvAsDuration("SMART_VIEW_RECENT_WINDOW", d.SmartViews.RecentWindow),
		},
	}}
}

func (c RankingConfig) Validate() error {
	var errs []error
	windows := map[string]int64{
		"FOCUS_DUE_SOON_DAYS":      int64(c.Focus.DueSoonWindow),
		"FOCUS_RECENT_WINDOW":      int64(c.Focus.RecentWindow),
		"PRIORITY_DUE_SOON_DAYS":   int64(c.Priority.DueSoonWindow),
		"PRIORITY_RECENT_DAYS":     int64(c.Priority.RecentWindow),
		"SMART_VIEW_DUE_SOON_DAYS": int64(c.SmartViews.DueSoonWindow),
		"RELATED_RECENT_DAYS":      int64(c.Related.RecentWindow),
		"RESUME_RETURNING_AFTER":   int64(c.Resume.ReturningAfter),
	}
	for key, v := range windows {
		if v <= 0 {
			errs = append(errs, fmt.Errorf("%s must be positive", key))
		}
	}
	if c.Resume.MeaningfulScrollMin >= c.Resume.MeaningfulScrollMax {
		errs = append(errs, errors.New("RESUME_MEANINGFUL_SCROLL_MIN must be below RESUME_MEANINGFUL_SCROLL_MAX"))
	}
	if c.Related.Limit <= 0 {
		errs = append(errs, errors.New("RELATED_LIMIT must be positive"))
	}
	return errors.Join(errs...)
}
