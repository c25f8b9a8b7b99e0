package ranking

import "time"

const day = 24 * time.Hour

// Config carries the tuning of every ranking surface. The due-soon and
// recency windows are deliberately separate per surface.
type Config struct {
	Focus      FocusConfig
	Related    RelatedConfig
	Priority   PriorityConfig
	Resume     ResumeConfig
	SmartViews SmartViewConfig
}

type FocusConfig struct {
	DueSoonWindow      time.Duration
	RecentWindow       time.Duration
	MaxNeedsAttention  int
	MaxContinueWorking int
	MaxRecentlyEdited  int
}

type RelatedConfig struct {
	RecentWindow       time.Duration
	SharedTagWeight    float64
	SameTypeWeight     float64
	OpenTasksWeight    float64
	RecentWeight       float64
	HighPriorityWeight float64
	TitleWordWeight    float64
	// Title words must be longer than this many characters to count.
	MinTitleWordLength int
	Limit              int
	WithTasksLimit     int
}

type PriorityConfig struct {
	DueSoonWindow time.Duration
	RecentWindow  time.Duration
	// Zero means uncapped.
	MaxFocusPinned int
	MaxUrgent      int
	MaxActive      int
	MaxSuggested   int
}

type ResumeConfig struct {
	ReturningAfter          time.Duration
	ElapsedVisibleAfter     time.Duration
	MeaningfulScrollMin     int
	MeaningfulScrollMax     int
	MeaningfulTimeSpent     int
	MeaningfulContentLength int
	RecentlyViewedLimit     int
}

type SmartViewConfig struct {
	DueSoonWindow time.Duration
	RecentWindow  time.Duration
}

func DefaultConfig() Config {
	return Config{
		Focus: FocusConfig{
			DueSoonWindow:      3 * day,
			RecentWindow:       day,
			MaxNeedsAttention:  5,
			MaxContinueWorking: 4,
			MaxRecentlyEdited:  3,
		},
		Related: RelatedConfig{
			RecentWindow:       7 * day,
			SharedTagWeight:    3,
			SameTypeWeight:     2,
			OpenTasksWeight:    2,
			RecentWeight:       1,
			HighPriorityWeight: 1.5,
			TitleWordWeight:    0.5,
			MinTitleWordLength: 3,
			Limit:              5,
			WithTasksLimit:     3,
		},
		Priority: PriorityConfig{
			DueSoonWindow:  7 * day,
			RecentWindow:   7 * day,
			MaxFocusPinned: 0,
			MaxUrgent:      5,
			MaxActive:      5,
			MaxSuggested:   3,
		},
		Resume: ResumeConfig{
			ReturningAfter:          2 * time.Hour,
			ElapsedVisibleAfter:     5 * time.Minute,
			MeaningfulScrollMin:     20,
			MeaningfulScrollMax:     90,
			MeaningfulTimeSpent:     10,
			MeaningfulContentLength: 500,
			RecentlyViewedLimit:     3,
		},
		SmartViews: SmartViewConfig{
			DueSoonWindow: 7 * day,
			RecentWindow:  day,
		},
	}
}

// truncate returns at most limit leading items. A limit of zero or less
// keeps everything.
func truncate[T any](items []T, limit int) []T {
	if limit <= 0 || len(items) <= limit {
		return items
	}
	return items[:limit]
}
