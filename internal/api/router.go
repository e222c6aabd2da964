package api

import (
	"net/http"
	"time"

	"bookvault/internal/api/handler"
	"bookvault/internal/app/service"
	"bookvault/internal/common/security"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/jwtauth/v5"
)

func NewRouter(
	tokens *security.TokenManager,
	authService *service.AuthService,
	bookService *service.BookService,
) http.Handler {
	r := chi.NewRouter()

	// Base Middlewares
	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.RealIP)
	r.Use(chiMiddleware.Logger)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Timeout(60 * time.Second))

	// Verifies the bearer token from "Authorization: Bearer T" and puts the
	// claims in context; Authenticator decides per route group whether a
	// verified token is required.
	r.Use(jwtauth.Verifier(tokens.JWTAuth()))

	// Public health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})

	authHandler := handler.NewAuthHandler(authService)
	authHandler.RegisterRoutes(r)

	bookHandler := handler.NewBookHandler(bookService)
	r.Route("/books", bookHandler.RegisterRoutes)

	return r
}
