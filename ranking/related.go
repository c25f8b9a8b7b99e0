package ranking

import (
	"sort"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"tonotes/model"
)

type RelatedReasonKind string

const (
	RelatedSharedTags   RelatedReasonKind = "shared_tags"
	RelatedSameType     RelatedReasonKind = "same_type"
	RelatedOpenTasks    RelatedReasonKind = "open_tasks"
	RelatedHighPriority RelatedReasonKind = "high_priority"
	RelatedTitleMatch   RelatedReasonKind = "title_match"
)

const recentlyUpdatedLabel = "Recently updated"

type RelatedReason struct {
	Kind  RelatedReasonKind
	Label string
}

type RelatedNote struct {
	Note          *model.Note
	Score         float64
	Reasons       []RelatedReason
	PrimaryReason string
	SharedTags    []string
}

func (r RelatedNote) hasReason(kind RelatedReasonKind) bool {
	for _, reason := range r.Reasons {
		if reason.Kind == kind {
			return true
		}
	}
	return false
}

type RelatedResult struct {
	Notes     []RelatedNote
	WithTasks []RelatedNote
}

// RelatedNotes scores candidates against ref. Candidates that are the
// reference itself, archived, or owned by someone else are ignored.
func RelatedNotes(ref *model.Note, candidates []*model.Note, now time.Time, cfg RelatedConfig) RelatedResult {
	refTags := tagSet(ref.Tags)
	refWords := titleWords(ref.Title, cfg.MinTitleWordLength)

	scored := []RelatedNote{}
	for _, c := range candidates {
		if c.ID == ref.ID || c.IsArchived || c.UserID != ref.UserID {
			continue
		}
		r := scoreRelated(ref, refTags, refWords, c, now, cfg)
		if r.Score > 0 {
			scored = append(scored, r)
		}
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})
	top := truncate(scored, cfg.Limit)

	withTasks := []RelatedNote{}
	for _, r := range top {
		if r.hasReason(RelatedOpenTasks) {
			withTasks = append(withTasks, r)
		}
	}

	return RelatedResult{
		Notes:     top,
		WithTasks: truncate(withTasks, cfg.WithTasksLimit),
	}
}

func scoreRelated(ref *model.Note, refTags map[string]bool, refWords map[string]bool, c *model.Note, now time.Time, cfg RelatedConfig) RelatedNote {
	r := RelatedNote{Note: c, SharedTags: sharedTags(refTags, c.Tags)}
	shares := len(r.SharedTags) > 0

	if shares {
		r.Score += cfg.SharedTagWeight * float64(len(r.SharedTags))
		r.Reasons = append(r.Reasons, RelatedReason{
			Kind:  RelatedSharedTags,
			Label: "Shares tags: " + strings.Join(r.SharedTags, ", "),
		})
	}

	if refType := ref.NoteType(); refType != model.DefaultNoteType && c.NoteType() == refType {
		r.Score += cfg.SameTypeWeight
		r.Reasons = append(r.Reasons, RelatedReason{Kind: RelatedSameType, Label: "Same type: " + refType})
	}

	if c.HasIncompleteChecklist() && shares {
		r.Score += cfg.OpenTasksWeight
		r.Reasons = append(r.Reasons, RelatedReason{Kind: RelatedOpenTasks, Label: "Has open tasks"})
	}

	if within(c.UpdatedAt, now, cfg.RecentWindow) {
		r.Score += cfg.RecentWeight
	}

	if c.Priority == model.PriorityHigh && shares {
		r.Score += cfg.HighPriorityWeight
		r.Reasons = append(r.Reasons, RelatedReason{Kind: RelatedHighPriority, Label: "High priority"})
	}

	if r.Score == 0 {
		shared := 0
		for w := range titleWords(c.Title, cfg.MinTitleWordLength) {
			if refWords[w] {
				shared++
			}
		}
		if shared > 0 {
			r.Score += cfg.TitleWordWeight * float64(shared)
			r.Reasons = append(r.Reasons, RelatedReason{Kind: RelatedTitleMatch, Label: "Similar title"})
		}
	}

	r.PrimaryReason = recentlyUpdatedLabel
	if len(r.Reasons) > 0 {
		r.PrimaryReason = r.Reasons[0].Label
	}
	return r
}

func tagSet(tags []string) map[string]bool {
	set := make(map[string]bool, len(tags))
	for _, t := range tags {
		set[t] = true
	}
	return set
}

// sharedTags returns the intersection in the candidate's tag order,
// without duplicates.
func sharedTags(ref map[string]bool, tags []string) []string {
	out := []string{}
	seen := map[string]bool{}
	for _, t := range tags {
		if ref[t] && !seen[t] {
			seen[t] = true
			out = append(out, t)
		}
	}
	return out
}

func titleWords(title string, minLen int) map[string]bool {
	words := map[string]bool{}
	fields := strings.FieldsFunc(strings.ToLower(title), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsNumber(r)
	})
	for _, f := range fields {
		if utf8.RuneCountInString(f) > minLen {
			words[f] = true
		}
	}
	return words
}
