package service

import (
	"context"

	"bookvault/internal/common"
	"bookvault/internal/domain/model"
	"bookvault/internal/domain/repository"
)

type BookService struct {
	bookRepo repository.BookRepository
}

func NewBookService(bookRepo repository.BookRepository) *BookService {
	return &BookService{bookRepo: bookRepo}
}

// CreateBookRequest uses pointers so a missing field is distinguishable from a
// zero value; all four are required.
type CreateBookRequest struct {
	Title     *string `json:"title"`
	Author    *string `json:"author"`
	Year      *int    `json:"year"`
	Publisher *string `json:"publisher"`
}

type UpdateBookRequest struct {
	Title     *string `json:"title,omitempty"`
	Author    *string `json:"author,omitempty"`
	Year      *int    `json:"year,omitempty"`
	Publisher *string `json:"publisher,omitempty"`
}

func (s *BookService) List(ctx context.Context) map[string]model.Book {
	return s.bookRepo.List(ctx)
}

func (s *BookService) Get(ctx context.Context, id string) (model.Book, error) {
	return s.bookRepo.Find(ctx, id)
}

// Create stores a new record under the caller-supplied id, recording the
// creator as owner. Admin gating happens in middleware before this runs.
func (s *BookService) Create(ctx context.Context, owner, id string, req CreateBookRequest) (model.Book, error) {
	if req.Title == nil || req.Author == nil || req.Year == nil || req.Publisher == nil {
		return model.Book{}, common.Errorf("missing fields in request body: %w", common.ErrBadRequest)
	}

	book := model.Book{
		Title:     *req.Title,
		Author:    *req.Author,
		Year:      *req.Year,
		Publisher: *req.Publisher,
		Owner:     owner,
	}
	if err := s.bookRepo.Create(ctx, id, book); err != nil {
		return model.Book{}, err
	}
	return book, nil
}

// Update overwrites exactly the fields present in the request and returns the
// full updated record. An empty patch is invalid.
func (s *BookService) Update(ctx context.Context, id string, req UpdateBookRequest) (model.Book, error) {
	patch := model.BookPatch{
		Title:     req.Title,
		Author:    req.Author,
		Year:      req.Year,
		Publisher: req.Publisher,
	}
	if patch.IsZero() {
		return model.Book{}, common.Errorf("no updatable fields provided: %w", common.ErrBadRequest)
	}
	return s.bookRepo.Update(ctx, id, patch)
}

func (s *BookService) Delete(ctx context.Context, id string) error {
	return s.bookRepo.Delete(ctx, id)
}
