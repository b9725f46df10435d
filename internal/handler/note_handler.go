package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"notes-server/internal/domain"
	"notes-server/internal/service"
	"notes-server/pkg/response"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

// NoteService is the domain API the handler translates HTTP onto.
type NoteService interface {
	List(ctx context.Context, search string, limit, offset int64) ([]*domain.NoteResponse, int64, error)
	GetByID(ctx context.Context, id string) (*domain.NoteResponse, error)
	Create(ctx context.Context, req *domain.CreateNoteRequest) (*domain.NoteResponse, error)
	Update(ctx context.Context, id string, req *domain.UpdateNoteRequest) (*domain.NoteResponse, error)
	Delete(ctx context.Context, id string) (string, error)
}

type NoteHandler struct {
	service NoteService
	logger  *zap.Logger
}

func NewNoteHandler(service NoteService, logger *zap.Logger) *NoteHandler {
	return &NoteHandler{
		service: service,
		logger:  logger,
	}
}

func (h *NoteHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	limit, err := parsePageParam(q.Get("limit"))
	if err != nil {
		response.BadRequest(w, "Invalid limit")
		return
	}
	offset, err := parsePageParam(q.Get("offset"))
	if err != nil {
		response.BadRequest(w, "Invalid offset")
		return
	}

	notes, total, err := h.service.List(r.Context(), q.Get("search"), limit, offset)
	if err != nil {
		h.internalError(w, r, err)
		return
	}

	response.JSON(w, http.StatusOK, &domain.ListNotesResponse{Data: notes, Total: total})
}

func (h *NoteHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	note, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	response.JSON(w, http.StatusOK, note)
}

func (h *NoteHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateNoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request payload")
		return
	}

	note, err := h.service.Create(r.Context(), &req)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	response.JSON(w, http.StatusCreated, note)
}

func (h *NoteHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var req domain.UpdateNoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request payload")
		return
	}

	note, err := h.service.Update(r.Context(), id, &req)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	response.JSON(w, http.StatusOK, note)
}

func (h *NoteHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	if _, err := h.service.Delete(r.Context(), id); err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	response.NoContent(w)
}

// writeServiceError maps the service error taxonomy to the HTTP surface:
// invalid id and validation failures are 400, not-found is 404, anything
// else is an opaque 500 with the detail kept server-side.
func (h *NoteHandler) writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	var validationErr *service.ValidationError

	switch {
	case errors.Is(err, service.ErrInvalidID):
		response.BadRequest(w, "Invalid ID")
	case errors.Is(err, service.ErrNoteNotFound):
		response.NotFound(w, "Note not found")
	case errors.As(err, &validationErr):
		response.BadRequest(w, validationErr.Message)
	default:
		h.internalError(w, r, err)
	}
}

func (h *NoteHandler) internalError(w http.ResponseWriter, r *http.Request, err error) {
	h.logger.Error("request failed",
		zap.String("method", r.Method),
		zap.String("path", r.URL.Path),
		zap.Error(err),
	)
	response.InternalError(w)
}

func parsePageParam(raw string) (int64, error) {
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || v < 0 {
		return 0, errors.New("invalid page parameter")
	}
	return v, nil
}
