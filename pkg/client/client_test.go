package client

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"notes-server/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_ListNotes(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/notes", r.URL.Path)
		assert.Equal(t, "pro", r.URL.Query().Get("search"))
		assert.Equal(t, "5", r.URL.Query().Get("limit"))
		assert.Equal(t, "10", r.URL.Query().Get("offset"))

		json.NewEncoder(w).Encode(&domain.ListNotesResponse{
			Data:  []*domain.NoteResponse{{ID: "507f1f77bcf86cd799439011", Title: "Project Plan"}},
			Total: 1,
		})
	}))
	defer srv.Close()

	resp, err := New(srv.URL).ListNotes(context.Background(), "pro", 5, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.Total)
	require.Len(t, resp.Data, 1)
	assert.Equal(t, "Project Plan", resp.Data[0].Title)
}

func TestClient_CreateNote(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/notes", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var req domain.CreateNoteRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "Groceries", req.Title)

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(&domain.NoteResponse{ID: "507f1f77bcf86cd799439011", Title: req.Title})
	}))
	defer srv.Close()

	note, err := New(srv.URL).CreateNote(context.Background(), "Groceries", "milk")
	require.NoError(t, err)
	assert.Equal(t, "507f1f77bcf86cd799439011", note.ID)
}

func TestClient_UpdateNote(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		assert.Equal(t, "/api/notes/507f1f77bcf86cd799439011", r.URL.Path)

		json.NewEncoder(w).Encode(&domain.NoteResponse{ID: "507f1f77bcf86cd799439011", Title: "New"})
	}))
	defer srv.Close()

	note, err := New(srv.URL).UpdateNote(context.Background(), "507f1f77bcf86cd799439011", "New", "")
	require.NoError(t, err)
	assert.Equal(t, "New", note.Title)
}

func TestClient_DeleteNote(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/api/notes/507f1f77bcf86cd799439011", r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	err := New(srv.URL).DeleteNote(context.Background(), "507f1f77bcf86cd799439011")
	assert.NoError(t, err)
}

func TestClient_APIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]string{"error": "Note not found"})
	}))
	defer srv.Close()

	_, err := New(srv.URL).GetNote(context.Background(), "507f1f77bcf86cd799439011")
	require.Error(t, err)

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
	assert.Equal(t, "Note not found", apiErr.Message)
}
