package handler

import (
	"encoding/json"
	"fmt"
	"net/http"

	"bookvault/internal/api/middleware"
	"bookvault/internal/app/service"
	"bookvault/internal/common"

	"github.com/go-chi/chi/v5"
)

type BookHandler struct {
	bookService *service.BookService
}

func NewBookHandler(bookService *service.BookService) *BookHandler {
	return &BookHandler{bookService: bookService}
}

func (h *BookHandler) RegisterRoutes(r chi.Router) {
	r.Use(middleware.Authenticator)

	r.Get("/", h.listBooks)
	r.Get("/{bookID}", h.getBook)

	r.Group(func(admin chi.Router) {
		admin.Use(middleware.AdminOnly)
		admin.Post("/add/{bookID}", h.addBook)
		admin.Put("/update/{bookID}", h.updateBook)
		admin.Delete("/delete/{bookID}", h.deleteBook)
	})
}

func (h *BookHandler) listBooks(w http.ResponseWriter, r *http.Request) {
	common.RespondWithJSON(w, http.StatusOK, h.bookService.List(r.Context()))
}

func (h *BookHandler) getBook(w http.ResponseWriter, r *http.Request) {
	bookID := chi.URLParam(r, "bookID")

	book, err := h.bookService.Get(r.Context(), bookID)
	if err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithJSON(w, http.StatusOK, book)
}

func (h *BookHandler) addBook(w http.ResponseWriter, r *http.Request) {
	username, ok := middleware.GetUsernameFromContext(r.Context())
	if !ok {
		common.RespondWithError(w, http.StatusUnauthorized, "Missing user context")
		return
	}
	bookID := chi.URLParam(r, "bookID")

	var req service.CreateBookRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid data provided: "+err.Error())
		return
	}

	book, err := h.bookService.Create(r.Context(), username, bookID, req)
	if err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithJSON(w, http.StatusCreated, book)
}

func (h *BookHandler) updateBook(w http.ResponseWriter, r *http.Request) {
	bookID := chi.URLParam(r, "bookID")

	var req service.UpdateBookRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid data provided: "+err.Error())
		return
	}

	book, err := h.bookService.Update(r.Context(), bookID, req)
	if err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithJSON(w, http.StatusOK, book)
}

func (h *BookHandler) deleteBook(w http.ResponseWriter, r *http.Request) {
	bookID := chi.URLParam(r, "bookID")

	if err := h.bookService.Delete(r.Context(), bookID); err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithJSON(w, http.StatusOK, MessageResponse{
		Message: fmt.Sprintf("Book %s deleted successfully", bookID),
	})
}
