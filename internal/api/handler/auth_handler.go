package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"bookvault/internal/api/middleware"
	"bookvault/internal/app/service"
	"bookvault/internal/common"

	"github.com/go-chi/chi/v5"
)

type MessageResponse struct {
	Message string `json:"message"`
}

type ProtectedResponse struct {
	LoggedInAs string `json:"logged_in_as"`
	Message    string `json:"message"`
}

type AuthHandler struct {
	authService *service.AuthService
}

func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

func (h *AuthHandler) RegisterRoutes(r chi.Router) {
	r.Post("/login", h.login)
	r.Post("/register", h.register)

	r.Group(func(protected chi.Router) {
		protected.Use(middleware.Authenticator)
		protected.Get("/protected_user", h.protectedUser)

		protected.Group(func(admin chi.Router) {
			admin.Use(middleware.AdminOnly)
			admin.Get("/protected_admin", h.protectedAdmin)
		})
	})
}

func (h *AuthHandler) login(w http.ResponseWriter, r *http.Request) {
	var req service.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}

	resp, err := h.authService.Login(r.Context(), req)
	if err != nil {
		// Never reveal whether the username or the password was wrong.
		if errors.Is(err, common.ErrUnauthorized) {
			common.RespondWithError(w, http.StatusUnauthorized, "Bad username or password")
			return
		}
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithJSON(w, http.StatusOK, resp)
}

func (h *AuthHandler) register(w http.ResponseWriter, r *http.Request) {
	var req service.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}

	if err := h.authService.Register(r.Context(), req); err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithJSON(w, http.StatusCreated, MessageResponse{Message: "User registered successfully"})
}

func (h *AuthHandler) protectedUser(w http.ResponseWriter, r *http.Request) {
	username, ok := middleware.GetUsernameFromContext(r.Context())
	if !ok {
		common.RespondWithError(w, http.StatusUnauthorized, "Missing user context")
		return
	}
	common.RespondWithJSON(w, http.StatusOK, ProtectedResponse{
		LoggedInAs: username,
		Message:    fmt.Sprintf("Hi %s, you have successfully signed in as a standard user.", username),
	})
}

func (h *AuthHandler) protectedAdmin(w http.ResponseWriter, r *http.Request) {
	username, ok := middleware.GetUsernameFromContext(r.Context())
	if !ok {
		common.RespondWithError(w, http.StatusUnauthorized, "Missing user context")
		return
	}
	common.RespondWithJSON(w, http.StatusOK, ProtectedResponse{
		LoggedInAs: username,
		Message:    fmt.Sprintf("Access granted: %s is an admin.", username),
	})
}
