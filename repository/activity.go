package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"tonotes/middleware"
	"tonotes/model"
	"tonotes/utils"
)

// ActivityCache is a read-through cache in front of the activity collection.
type ActivityCache interface {
	GetActivity(ctx context.Context, userID string) (*model.ActivityRecord, error)
	SetActivity(ctx context.Context, rec *model.ActivityRecord) error
	DeleteActivity(ctx context.Context, userID string) error
}

type ActivityRepo struct {
	MongoCollection *mongo.Collection
	cache           ActivityCache
	logger          *zap.Logger
}

// NewActivityRepo wires the activity collection. cache may be nil.
func NewActivityRepo(db *mongo.Database, collection string, cache ActivityCache, logger *zap.Logger) *ActivityRepo {
	return &ActivityRepo{
		MongoCollection: db.Collection(collection),
		cache:           cache,
		logger:          logger,
	}
}

// GetActivity returns the user's record, or nil when none exists yet.
func (r *ActivityRepo) GetActivity(ctx context.Context, userID string) (*model.ActivityRecord, error) {
	if r.cache != nil {
		rec, err := r.cache.GetActivity(ctx, userID)
		if err != nil {
			r.logger.Warn("activity cache read failed", zap.Error(err), zap.String("user_id", userID))
		} else if rec != nil {
			return rec, nil
		}
	}

	timer := middleware.TrackDBOperation("find_one", "activities")
	var rec model.ActivityRecord
	err := r.MongoCollection.FindOne(ctx, bson.M{"user_id": userID}).Decode(&rec)
	timer.ObserveDuration()
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, utils.StoreError("Failed to load activity", err)
	}

	r.cacheSet(ctx, &rec)
	return &rec, nil
}

// SaveActivity writes rec if the stored version still equals rec.Version and
// bumps the version. A record with version 0 is inserted. Returns
// model.ErrVersionConflict when another writer got there first.
func (r *ActivityRepo) SaveActivity(ctx context.Context, rec *model.ActivityRecord) error {
	defer middleware.TrackDBOperation("save", "activities").ObserveDuration()

	if rec.Version == 0 {
		return r.insert(ctx, rec)
	}

	filter := bson.M{"user_id": rec.UserID, "version": rec.Version}
	update := bson.M{
		"$set": bson.M{
			"last_viewed_note_id":  rec.LastViewedNoteID,
			"last_viewed_at":       rec.LastViewedAt,
			"last_edited_note_id":  rec.LastEditedNoteID,
			"last_edited_at":       rec.LastEditedAt,
			"last_active_at":       rec.LastActiveAt,
			"previous_session_end": rec.PreviousSessionEnd,
			"recently_viewed":      rec.RecentlyViewed,
		},
		"$inc": bson.M{"version": 1},
	}

	result, err := r.MongoCollection.UpdateOne(ctx, filter, update)
	if err != nil {
		return utils.StoreError("Failed to save activity", err)
	}
	if result.MatchedCount == 0 {
		r.cacheDelete(ctx, rec.UserID)
		return model.ErrVersionConflict
	}

	rec.Version++
	r.cacheSet(ctx, rec)
	return nil
}

func (r *ActivityRepo) insert(ctx context.Context, rec *model.ActivityRecord) error {
	doc := *rec
	doc.ID = rec.UserID
	doc.Version = 1

	if _, err := r.MongoCollection.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			r.cacheDelete(ctx, rec.UserID)
			return model.ErrVersionConflict
		}
		return utils.StoreError("Failed to create activity", err)
	}

	rec.ID = doc.ID
	rec.Version = doc.Version
	r.cacheSet(ctx, rec)
	return nil
}

func (r *ActivityRepo) cacheSet(ctx context.Context, rec *model.ActivityRecord) {
	if r.cache == nil {
		return
	}
	if err := r.cache.SetActivity(ctx, rec); err != nil {
		r.logger.Warn("activity cache write failed", zap.Error(err), zap.String("user_id", rec.UserID))
	}
}

func (r *ActivityRepo) cacheDelete(ctx context.Context, userID string) {
	if r.cache == nil {
		return
	}
	if err := r.cache.DeleteActivity(ctx, userID); err != nil {
		r.logger.Warn("activity cache invalidation failed", zap.Error(err), zap.String("user_id", userID))
	}
}
