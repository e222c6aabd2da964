package repository

import (
	"context"
	"sync"

	"bookvault/internal/common"
	"bookvault/internal/domain/model"
)

type BookRepository interface {
	List(ctx context.Context) map[string]model.Book
	Find(ctx context.Context, id string) (model.Book, error)
	Create(ctx context.Context, id string, book model.Book) error
	Update(ctx context.Context, id string, patch model.BookPatch) (model.Book, error)
	Delete(ctx context.Context, id string) error
}

// memoryBookRepository holds the whole catalog in one map under a single
// mutex. The catalog is small; there is no per-record locking. A process
// restart resets the catalog to its seeded defaults.
type memoryBookRepository struct {
	mu    sync.RWMutex
	books map[string]model.Book
}

func NewMemoryBookRepository() BookRepository {
	return &memoryBookRepository{books: defaultCatalog()}
}

func defaultCatalog() map[string]model.Book {
	return map[string]model.Book{
		"BK1001": {Title: "The Intelligent Investor", Author: "Benjamin Graham", Year: 1949, Publisher: "Harper & Brothers", Owner: "admin"},
		"BK1002": {Title: "Atomic Habits", Author: "James Clear", Year: 2018, Publisher: "Avery", Owner: "admin"},
		"BK1003": {Title: "The Psychology of Money", Author: "Morgan Housel", Year: 2020, Publisher: "Harriman House", Owner: "admin"},
		"BK1004": {Title: "Crime and Punishment", Author: "Fyodor Dostoevsky", Year: 1866, Publisher: "The Russian Messenger", Owner: "admin"},
		"BK1005": {Title: "To Kill a Mockingbird", Author: "Harper Lee", Year: 1960, Publisher: "J. B. Lippincott & Co.", Owner: "admin"},
	}
}

func (r *memoryBookRepository) List(ctx context.Context) map[string]model.Book {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make(map[string]model.Book, len(r.books))
	for id, b := range r.books {
		out[id] = b
	}
	return out
}

func (r *memoryBookRepository) Find(ctx context.Context, id string) (model.Book, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	b, ok := r.books[id]
	if !ok {
		return model.Book{}, common.ErrNotFound
	}
	return b, nil
}

func (r *memoryBookRepository) Create(ctx context.Context, id string, book model.Book) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.books[id]; exists {
		return common.Errorf("book %q already exists: %w", id, common.ErrConflict)
	}
	r.books[id] = book
	return nil
}

// Update applies the non-nil patch fields under the write lock so concurrent
// partial updates cannot interleave. The owner field is never altered.
func (r *memoryBookRepository) Update(ctx context.Context, id string, patch model.BookPatch) (model.Book, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	b, ok := r.books[id]
	if !ok {
		return model.Book{}, common.ErrNotFound
	}
	if patch.Title != nil {
		b.Title = *patch.Title
	}
	if patch.Author != nil {
		b.Author = *patch.Author
	}
	if patch.Year != nil {
		b.Year = *patch.Year
	}
	if patch.Publisher != nil {
		b.Publisher = *patch.Publisher
	}
	r.books[id] = b
	return b, nil
}

func (r *memoryBookRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.books[id]; !ok {
		return common.ErrNotFound
	}
	delete(r.books, id)
	return nil
}
