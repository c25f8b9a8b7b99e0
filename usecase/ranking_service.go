package usecase

import (
	"context"
	"time"

	"go.uber.org/zap"

	"tonotes/middleware"
	"tonotes/model"
	"tonotes/ranking"
	"tonotes/utils"
)

// RankingService loads the owner's notes and activity and runs the ranking
// surfaces over them. Every method evaluates "now" once, in loc.
type RankingService struct {
	Notes    NoteStore
	Activity ActivityStore
	Clock    utils.Clock
	Config   ranking.Config
	Logger   *zap.Logger
}

func (s *RankingService) now(loc *time.Location) time.Time {
	if loc == nil {
		loc = time.UTC
	}
	return s.Clock.Now().In(loc)
}

func (s *RankingService) DailyFocus(ctx context.Context, userID string, loc *time.Location) (ranking.FocusResult, error) {
	notes, err := activeNotes(ctx, s.Notes, userID, "")
	if err != nil {
		return ranking.FocusResult{}, err
	}

	defer middleware.TrackRanking("focus", len(notes)).ObserveDuration()
	return ranking.DailyFocus(notes, s.now(loc), s.Config.Focus), nil
}

// Related scores the owner's notes against noteID. The reference note must
// belong to userID.
func (s *RankingService) Related(ctx context.Context, userID, noteID string, loc *time.Location) (*model.Note, ranking.RelatedResult, error) {
	ref, err := s.Notes.GetNote(ctx, userID, noteID)
	if err != nil {
		return nil, ranking.RelatedResult{}, err
	}

	notes, err := activeNotes(ctx, s.Notes, userID, "")
	if err != nil {
		return nil, ranking.RelatedResult{}, err
	}

	defer middleware.TrackRanking("related", len(notes)).ObserveDuration()
	return ref, ranking.RelatedNotes(ref, notes, s.now(loc), s.Config.Related), nil
}

func (s *RankingService) Resume(ctx context.Context, userID string, loc *time.Location) (ranking.ResumeResult, error) {
	rec, err := s.Activity.GetActivity(ctx, userID)
	if err != nil {
		return ranking.ResumeResult{}, err
	}

	notes, err := activeNotes(ctx, s.Notes, userID, "")
	if err != nil {
		return ranking.ResumeResult{}, err
	}

	defer middleware.TrackRanking("resume", len(notes)).ObserveDuration()
	return ranking.Resume(rec, notes, s.now(loc), s.Config.Resume), nil
}

// SmartPriority ranks the worklist. Activity only adds the returning
// signal, so an unreadable activity record degrades to no boost.
func (s *RankingService) SmartPriority(ctx context.Context, userID string, loc *time.Location) (ranking.PriorityResult, error) {
	notes, err := activeNotes(ctx, s.Notes, userID, "")
	if err != nil {
		return ranking.PriorityResult{}, err
	}

	now := s.now(loc)
	rec, err := s.Activity.GetActivity(ctx, userID)
	if err != nil {
		s.Logger.Warn("activity unavailable for priority ranking", zap.Error(err), zap.String("user_id", userID))
		middleware.TrackError("activity_read")
		rec = nil
	}
	returning := ranking.ReturningNoteIDs(rec, now, s.Config.Resume)

	defer middleware.TrackRanking("priority", len(notes)).ObserveDuration()
	return ranking.SmartPriority(notes, returning, now, s.Config.Priority), nil
}

// SmartViews counts signals over the owner's notes, optionally limited to
// one tag.
func (s *RankingService) SmartViews(ctx context.Context, userID, tag string, loc *time.Location) (ranking.SmartViews, error) {
	notes, err := activeNotes(ctx, s.Notes, userID, tag)
	if err != nil {
		return ranking.SmartViews{}, err
	}

	defer middleware.TrackRanking("views", len(notes)).ObserveDuration()
	return ranking.SmartViewCounts(notes, s.now(loc), s.Config.SmartViews), nil
}
