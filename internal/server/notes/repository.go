package notes

import (
	"context"
	"errors"
	"sync"
)

var ErrNotFound = errors.New("note not found")

type Repository interface {
	Create(ctx context.Context, note *Note) (*Note, error)
	Get(ctx context.Context, owner, id string) (*Note, error)
	List(ctx context.Context, owner string, archived bool) ([]Note, error)
	SetArchived(ctx context.Context, owner, id string, archived bool) error
	Delete(ctx context.Context, owner, id string) error
}

// InMemoryRepository keeps notes per owner in creation order. A note owned
// by somebody else is reported as not found.
type InMemoryRepository struct {
	mu    sync.RWMutex
	notes map[string][]*Note
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{notes: make(map[string][]*Note)}
}

func (r *InMemoryRepository) Create(_ context.Context, note *Note) (*Note, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	n := *note
	r.notes[n.Owner] = append(r.notes[n.Owner], &n)
	out := n
	return &out, nil
}

func (r *InMemoryRepository) find(owner, id string) (int, *Note) {
	for i, n := range r.notes[owner] {
		if n.ID == id {
			return i, n
		}
	}
	return -1, nil
}

func (r *InMemoryRepository) Get(_ context.Context, owner, id string) (*Note, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, n := r.find(owner, id)
	if n == nil {
		return nil, ErrNotFound
	}
	out := *n
	return &out, nil
}

func (r *InMemoryRepository) List(_ context.Context, owner string, archived bool) ([]Note, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Note, 0, len(r.notes[owner]))
	for _, n := range r.notes[owner] {
		if n.Archived == archived {
			out = append(out, *n)
		}
	}
	return out, nil
}

func (r *InMemoryRepository) SetArchived(_ context.Context, owner, id string, archived bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, n := r.find(owner, id)
	if n == nil {
		return ErrNotFound
	}
	n.Archived = archived
	return nil
}

func (r *InMemoryRepository) Delete(_ context.Context, owner, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i, _ := r.find(owner, id)
	if i < 0 {
		return ErrNotFound
	}
	list := r.notes[owner]
	r.notes[owner] = append(list[:i:i], list[i+1:]...)
	return nil
}
