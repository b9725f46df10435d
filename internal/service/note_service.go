package service

import (
	"context"
	"errors"

	"notes-server/internal/domain"
	"notes-server/internal/repository"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DefaultLimit caps the page size when the caller does not supply one.
const DefaultLimit = 10

// Publisher receives note change notifications after successful writes.
// Publishing is fire-and-forget and never affects the operation result.
type Publisher interface {
	NoteCreated(note *domain.NoteResponse)
	NoteUpdated(note *domain.NoteResponse)
	NoteDeleted(id string)
}

type NoteService struct {
	repo     repository.NoteRepository
	events   Publisher
	validate *validator.Validate
}

func NewNoteService(repo repository.NoteRepository, events Publisher) *NoteService {
	return &NoteService{
		repo:     repo,
		events:   events,
		validate: validator.New(),
	}
}

// List returns one page of notes whose title contains search
// (case-insensitive; empty matches all), ordered by creation time
// descending, plus the total count of all matches independent of
// limit/offset.
func (s *NoteService) List(ctx context.Context, search string, limit, offset int64) ([]*domain.NoteResponse, int64, error) {
	if limit <= 0 {
		limit = DefaultLimit
	}
	if offset < 0 {
		offset = 0
	}

	notes, total, err := s.repo.Find(ctx, search, limit, offset)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]*domain.NoteResponse, 0, len(notes))
	for _, n := range notes {
		responses = append(responses, n.ToResponse())
	}

	return responses, total, nil
}

func (s *NoteService) GetByID(ctx context.Context, id string) (*domain.NoteResponse, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrInvalidID
	}

	note, err := s.repo.FindByID(ctx, oid)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNoteNotFound
		}
		return nil, err
	}

	return note.ToResponse(), nil
}

func (s *NoteService) Create(ctx context.Context, req *domain.CreateNoteRequest) (*domain.NoteResponse, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, &ValidationError{Field: "title", Message: "title is required"}
	}

	note, err := s.repo.Insert(ctx, &domain.Note{
		Title:   req.Title,
		Content: req.Content,
	})
	if err != nil {
		return nil, err
	}

	resp := note.ToResponse()
	if s.events != nil {
		s.events.NoteCreated(resp)
	}
	return resp, nil
}

// Update applies a partial update: fields left empty in the request keep
// their stored value. A request carrying no recognized field is a no-op
// that returns the current record without touching the store, so
// updatedAt stays unchanged.
func (s *NoteService) Update(ctx context.Context, id string, req *domain.UpdateNoteRequest) (*domain.NoteResponse, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrInvalidID
	}

	note, err := s.repo.FindByID(ctx, oid)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNoteNotFound
		}
		return nil, err
	}

	changed := false
	if req.Title != "" {
		note.Title = req.Title
		changed = true
	}
	if req.Content != "" {
		note.Content = req.Content
		changed = true
	}

	if !changed {
		return note.ToResponse(), nil
	}

	updated, err := s.repo.Update(ctx, note)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNoteNotFound
		}
		return nil, err
	}

	resp := updated.ToResponse()
	if s.events != nil {
		s.events.NoteUpdated(resp)
	}
	return resp, nil
}

// Delete removes the record permanently and returns the removed id so
// callers can confirm which record went away. Deleting an id that is
// already gone yields ErrNoteNotFound.
func (s *NoteService) Delete(ctx context.Context, id string) (string, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return "", ErrInvalidID
	}

	if err := s.repo.Delete(ctx, oid); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", ErrNoteNotFound
		}
		return "", err
	}

	if s.events != nil {
		s.events.NoteDeleted(id)
	}
	return id, nil
}
