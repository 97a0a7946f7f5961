package apiclient

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/yigit/schooldash/internal/app/models/dto"
	"github.com/yigit/schooldash/internal/pkg/apperrors"
)

// Page is one list response: the items plus pagination metadata when the API sent it.
type Page[T any] struct {
	Items []T
	Meta  *dto.PageMeta
}

// Resource is a typed view of one REST collection, e.g. /students.
type Resource[T any] struct {
	client *Client
	path   string
}

// For binds the collection at path to the client.
func For[T any](c *Client, path string) *Resource[T] {
	return &Resource[T]{client: c, path: path}
}

// Path returns the collection path.
func (r *Resource[T]) Path() string {
	return r.path
}

// List fetches the collection. query may be nil.
func (r *Resource[T]) List(ctx context.Context, query url.Values) (Page[T], error) {
	path := r.path
	if len(query) > 0 {
		path += "?" + query.Encode()
	}
	var items []T
	meta, err := r.client.do(ctx, http.MethodGet, path, nil, &items)
	if err != nil {
		return Page[T]{}, err
	}
	return Page[T]{Items: items, Meta: meta}, nil
}

// Get fetches one entity. An empty data block is reported as not found.
func (r *Resource[T]) Get(ctx context.Context, id string) (T, error) {
	var zero T
	var raw json.RawMessage
	if err := r.client.Do(ctx, http.MethodGet, r.itemPath(id), nil, &raw); err != nil {
		return zero, err
	}
	if isNull(raw) {
		return zero, apperrors.NewResourceNotFoundError(fmt.Sprintf("%s/%s not found", r.path, id))
	}
	var out T
	if err := json.Unmarshal(raw, &out); err != nil {
		return zero, fmt.Errorf("%w: decode %s: %w", apperrors.ErrTransport, r.itemPath(id), err)
	}
	return out, nil
}

// Create POSTs payload to the collection and returns the created entity.
func (r *Resource[T]) Create(ctx context.Context, payload interface{}) (T, error) {
	var out T
	err := r.client.Do(ctx, http.MethodPost, r.path, payload, &out)
	return out, err
}

// Update PUTs a partial payload; fields absent from payload are left unchanged by the API.
func (r *Resource[T]) Update(ctx context.Context, id string, payload interface{}) (T, error) {
	var out T
	err := r.client.Do(ctx, http.MethodPut, r.itemPath(id), payload, &out)
	return out, err
}

// Delete removes (or, for staff, deactivates) one entity.
func (r *Resource[T]) Delete(ctx context.Context, id string) error {
	return r.client.Do(ctx, http.MethodDelete, r.itemPath(id), nil, nil)
}

func (r *Resource[T]) itemPath(id string) string {
	return r.path + "/" + url.PathEscape(id)
}

// Singleton is a resource addressed without an ID, such as /schools/me.
type Singleton[T any] struct {
	client *Client
	path   string
}

// Me binds the singleton at path to the client.
func Me[T any](c *Client, path string) *Singleton[T] {
	return &Singleton[T]{client: c, path: path}
}

// Get fetches the singleton.
func (s *Singleton[T]) Get(ctx context.Context) (T, error) {
	var out T
	err := s.client.Do(ctx, http.MethodGet, s.path, nil, &out)
	return out, err
}

// Update PUTs a partial payload to the singleton.
func (s *Singleton[T]) Update(ctx context.Context, payload interface{}) (T, error) {
	var out T
	err := s.client.Do(ctx, http.MethodPut, s.path, payload, &out)
	return out, err
}
