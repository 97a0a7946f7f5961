package stubapi

import (
	"fmt"
	"sync"

	"github.com/yigit/schooldash/internal/pkg/apperrors"
)

// Repository is an in-memory, tenant-scoped table. Rows keep insertion order.
// A schoolID of "" addresses every tenant.
type Repository[T any] struct {
	mu     sync.RWMutex
	rows   []T
	noun   string
	id     func(T) string
	school func(T) string
	unique []uniqueRule[T]
}

type uniqueRule[T any] struct {
	clash   func(a, b T) bool
	message func(T) string
}

// NewRepository creates an empty table. noun names the entity in not-found errors.
func NewRepository[T any](noun string, id, school func(T) string) *Repository[T] {
	return &Repository[T]{noun: noun, id: id, school: school}
}

// Unique rejects inserts and updates whose row clashes with another row of the table.
func (r *Repository[T]) Unique(clash func(a, b T) bool, message func(T) string) *Repository[T] {
	r.unique = append(r.unique, uniqueRule[T]{clash: clash, message: message})
	return r
}

func (r *Repository[T]) visible(schoolID string, row T) bool {
	return schoolID == "" || r.school(row) == schoolID
}

// List returns the rows of schoolID that match keep (nil keeps all).
func (r *Repository[T]) List(schoolID string, keep func(T) bool) []T {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]T, 0, len(r.rows))
	for _, row := range r.rows {
		if r.visible(schoolID, row) && (keep == nil || keep(row)) {
			out = append(out, row)
		}
	}
	return out
}

// Count returns how many rows of schoolID match keep.
func (r *Repository[T]) Count(schoolID string, keep func(T) bool) int {
	return len(r.List(schoolID, keep))
}

// Get returns one row of schoolID.
func (r *Repository[T]) Get(schoolID, id string) (T, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if i := r.index(schoolID, id); i >= 0 {
		return r.rows[i], nil
	}
	var zero T
	return zero, r.notFound()
}

// Insert adds a row after checking the unique rules.
func (r *Repository[T]) Insert(row T) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.checkUnique(row, -1); err != nil {
		return err
	}
	r.rows = append(r.rows, row)
	return nil
}

// Update applies fn to a copy of the row and stores it if fn succeeds and the result
// breaks no unique rule.
func (r *Repository[T]) Update(schoolID, id string, fn func(*T) error) (T, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var zero T
	i := r.index(schoolID, id)
	if i < 0 {
		return zero, r.notFound()
	}
	row := r.rows[i]
	if err := fn(&row); err != nil {
		return zero, err
	}
	if err := r.checkUnique(row, i); err != nil {
		return zero, err
	}
	r.rows[i] = row
	return row, nil
}

// UpdateAll applies fn to every row of schoolID.
func (r *Repository[T]) UpdateAll(schoolID string, fn func(*T)) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.rows {
		if r.visible(schoolID, r.rows[i]) {
			fn(&r.rows[i])
		}
	}
}

// Delete removes a row of schoolID.
func (r *Repository[T]) Delete(schoolID, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	i := r.index(schoolID, id)
	if i < 0 {
		return r.notFound()
	}
	r.rows = append(r.rows[:i], r.rows[i+1:]...)
	return nil
}

func (r *Repository[T]) index(schoolID, id string) int {
	for i, row := range r.rows {
		if r.id(row) == id && r.visible(schoolID, row) {
			return i
		}
	}
	return -1
}

func (r *Repository[T]) checkUnique(row T, self int) error {
	for _, rule := range r.unique {
		for i, other := range r.rows {
			if i == self || r.school(other) != r.school(row) {
				continue
			}
			if rule.clash(row, other) {
				return apperrors.NewConflictError(rule.message(row))
			}
		}
	}
	return nil
}

func (r *Repository[T]) notFound() error {
	return apperrors.NewResourceNotFoundError(fmt.Sprintf("%s not found", r.noun))
}
