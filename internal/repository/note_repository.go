package repository

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"

	"notes-server/internal/domain"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrNotFound is returned when no record matches the given id.
var ErrNotFound = errors.New("note not found")

type NoteRepository interface {
	Insert(ctx context.Context, note *domain.Note) (*domain.Note, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*domain.Note, error)
	Find(ctx context.Context, search string, limit, offset int64) ([]*domain.Note, int64, error)
	Update(ctx context.Context, note *domain.Note) (*domain.Note, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type noteRepository struct {
	coll *mongo.Collection
}

func NewNoteRepository(coll *mongo.Collection) NoteRepository {
	return &noteRepository{coll: coll}
}

func (r *noteRepository) Insert(ctx context.Context, note *domain.Note) (*domain.Note, error) {
	now := time.Now().UTC()
	note.CreatedAt = now
	note.UpdatedAt = now

	res, err := r.coll.InsertOne(ctx, note)
	if err != nil {
		return nil, fmt.Errorf("failed to insert note: %w", err)
	}

	note.ID = res.InsertedID.(primitive.ObjectID)
	return note, nil
}

func (r *noteRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*domain.Note, error) {
	var note domain.Note
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&note)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to find note: %w", err)
	}
	return &note, nil
}

// Find returns one page of notes matching the search filter, newest first,
// plus the total count of all matches. The count and the page are two
// separate queries with no snapshot between them; a write landing in
// between can make them disagree, which is accepted.
func (r *noteRepository) Find(ctx context.Context, search string, limit, offset int64) ([]*domain.Note, int64, error) {
	filter := bson.M{}
	if search != "" {
		filter["title"] = bson.M{"$regex": regexp.QuoteMeta(search), "$options": "i"}
	}

	total, err := r.coll.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count notes: %w", err)
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}, {Key: "_id", Value: -1}}).
		SetLimit(limit).
		SetSkip(offset)

	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list notes: %w", err)
	}
	defer cursor.Close(ctx)

	var notes []*domain.Note
	for cursor.Next(ctx) {
		var note domain.Note
		if err := cursor.Decode(&note); err != nil {
			return nil, 0, fmt.Errorf("failed to decode note: %w", err)
		}
		notes = append(notes, &note)
	}
	if err := cursor.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to iterate notes: %w", err)
	}

	return notes, total, nil
}

func (r *noteRepository) Update(ctx context.Context, note *domain.Note) (*domain.Note, error) {
	update := bson.M{"$set": bson.M{
		"title":     note.Title,
		"content":   note.Content,
		"updatedAt": time.Now().UTC(),
	}}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var updated domain.Note
	err := r.coll.FindOneAndUpdate(ctx, bson.M{"_id": note.ID}, update, opts).Decode(&updated)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to update note: %w", err)
	}
	return &updated, nil
}

func (r *noteRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete note: %w", err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
