// Package client is a Go client for the notes HTTP API. It backs the
// notesctl command and is usable as a library on its own.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"notes-server/internal/domain"
)

// APIError is a non-2xx response from the server, carrying the error
// message from the response body.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("server returned %d: %s", e.StatusCode, e.Message)
}

type Client struct {
	baseURL    string
	httpClient *http.Client
}

func New(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

// ListNotes fetches one page of notes. Zero limit/offset let the server
// apply its defaults.
func (c *Client) ListNotes(ctx context.Context, search string, limit, offset int64) (*domain.ListNotesResponse, error) {
	q := url.Values{}
	if search != "" {
		q.Set("search", search)
	}
	if limit > 0 {
		q.Set("limit", strconv.FormatInt(limit, 10))
	}
	if offset > 0 {
		q.Set("offset", strconv.FormatInt(offset, 10))
	}

	path := "/api/notes"
	if encoded := q.Encode(); encoded != "" {
		path += "?" + encoded
	}

	var out domain.ListNotesResponse
	if err := c.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) GetNote(ctx context.Context, id string) (*domain.NoteResponse, error) {
	var out domain.NoteResponse
	if err := c.do(ctx, http.MethodGet, "/api/notes/"+id, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateNote(ctx context.Context, title, content string) (*domain.NoteResponse, error) {
	req := &domain.CreateNoteRequest{Title: title, Content: content}

	var out domain.NoteResponse
	if err := c.do(ctx, http.MethodPost, "/api/notes", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateNote sends a partial update; empty title/content leave the stored
// field unchanged.
func (c *Client) UpdateNote(ctx context.Context, id, title, content string) (*domain.NoteResponse, error) {
	req := &domain.UpdateNoteRequest{Title: title, Content: content}

	var out domain.NoteResponse
	if err := c.do(ctx, http.MethodPatch, "/api/notes/"+id, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteNote(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/notes/"+id, nil, nil)
}

func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reader *bytes.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		reader = bytes.NewReader(encoded)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		apiErr := &APIError{StatusCode: resp.StatusCode}

		var payload struct {
			Error string `json:"error"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&payload); err == nil {
			apiErr.Message = payload.Error
		}
		return apiErr
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}
	return nil
}
