package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"tonotes/middleware"
	"tonotes/model"
	"tonotes/utils"
)

type NotesRepo struct {
	MongoCollection *mongo.Collection
}

func NewNotesRepo(db *mongo.Database, collection string) *NotesRepo {
	return &NotesRepo{
		MongoCollection: db.Collection(collection),
	}
}

// FindNotes returns the owner's notes matching filter, most recently updated
// first.
func (r *NotesRepo) FindNotes(ctx context.Context, filter model.NoteFilter) ([]*model.Note, error) {
	defer middleware.TrackDBOperation("find", "notes").ObserveDuration()

	if filter.UserID == "" {
		return nil, utils.ValidationError("user ID is required")
	}

	opts := options.Find().SetSort(bson.D{{Key: "updated_at", Value: -1}})
	cursor, err := r.MongoCollection.Find(ctx, noteQuery(filter), opts)
	if err != nil {
		return nil, utils.StoreError("Failed to load notes", err)
	}
	defer cursor.Close(ctx)

	notes := []*model.Note{}
	if err = cursor.All(ctx, &notes); err != nil {
		return nil, utils.StoreError("Failed to decode notes", err)
	}
	return notes, nil
}

func noteQuery(f model.NoteFilter) bson.M {
	query := bson.M{"user_id": f.UserID}
	if f.Archived != nil {
		query["is_archived"] = *f.Archived
	}
	if f.Tag != "" {
		query["tags"] = f.Tag
	}
	if f.Priority != "" {
		query["priority"] = f.Priority
	}
	if f.DueAfter != nil || f.DueBefore != nil {
		due := bson.M{}
		if f.DueAfter != nil {
			due["$gte"] = *f.DueAfter
		}
		if f.DueBefore != nil {
			due["$lte"] = *f.DueBefore
		}
		query["due_date"] = due
	}
	return query
}

// GetNote retrieves a note scoped to its owner. Notes of other users are
// reported as not found.
func (r *NotesRepo) GetNote(ctx context.Context, userID, noteID string) (*model.Note, error) {
	defer middleware.TrackDBOperation("find_one", "notes").ObserveDuration()

	var note model.Note
	err := r.MongoCollection.FindOne(ctx, bson.M{"_id": noteID, "user_id": userID}).Decode(&note)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, utils.NotFoundError("Note not found")
		}
		return nil, utils.StoreError("Failed to load note", err)
	}
	return &note, nil
}

// UpdateOverrides writes the override fields of one note atomically and
// returns the updated note. updated_at is left alone so that overrides do
// not count as edits.
func (r *NotesRepo) UpdateOverrides(ctx context.Context, userID, noteID string, upd model.OverrideUpdate) (*model.Note, error) {
	defer middleware.TrackDBOperation("update_overrides", "notes").ObserveDuration()

	set := bson.M{}
	update := bson.M{}
	if upd.SnoozedUntil != nil {
		set["snoozed_until"] = *upd.SnoozedUntil
	}
	if upd.Dismissed != nil {
		set["dismissed_from_focus"] = *upd.Dismissed
	}
	if len(set) > 0 {
		update["$set"] = set
	}
	if upd.ClearSnooze {
		update["$unset"] = bson.M{"snoozed_until": ""}
	}
	if len(update) == 0 {
		return r.GetNote(ctx, userID, noteID)
	}

	return r.findAndUpdate(ctx, userID, noteID, update)
}

// ToggleFocusPin flips focus_pinned server-side so concurrent toggles never
// collapse into one.
func (r *NotesRepo) ToggleFocusPin(ctx context.Context, userID, noteID string) (*model.Note, error) {
	defer middleware.TrackDBOperation("toggle_focus_pin", "notes").ObserveDuration()

	pipeline := mongo.Pipeline{
		{{Key: "$set", Value: bson.D{
			{Key: "focus_pinned", Value: bson.D{
				{Key: "$not", Value: bson.A{
					bson.D{{Key: "$ifNull", Value: bson.A{"$focus_pinned", false}}},
				}},
			}},
		}}},
	}
	return r.findAndUpdate(ctx, userID, noteID, pipeline)
}

func (r *NotesRepo) findAndUpdate(ctx context.Context, userID, noteID string, update interface{}) (*model.Note, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var note model.Note
	err := r.MongoCollection.FindOneAndUpdate(ctx, bson.M{"_id": noteID, "user_id": userID}, update, opts).Decode(&note)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, utils.NotFoundError("Note not found")
		}
		return nil, utils.StoreError("Failed to update note", err)
	}
	return &note, nil
}

// InsertNote stores a note as-is. Note CRUD belongs to the notes service;
// this exists for seeding and tests.
func (r *NotesRepo) InsertNote(ctx context.Context, note *model.Note) error {
	if note.UserID == "" {
		return utils.ValidationError("user ID is required")
	}
	if _, err := r.MongoCollection.InsertOne(ctx, note); err != nil {
		return utils.StoreError("Failed to insert note", err)
	}
	return nil
}

func (r *NotesRepo) Ping(ctx context.Context) error {
	return r.MongoCollection.Database().Client().Ping(ctx, readpref.Primary())
}
