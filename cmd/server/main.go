package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"bookvault/internal/api"
	"bookvault/internal/app/service"
	"bookvault/internal/common/security"
	"bookvault/internal/domain/repository"
	"bookvault/internal/platform/config"
)

func main() {
	// 1. Load Configuration
	cfg := config.Load()
	log.Println("Configuration loaded.")

	// 2. Initialize Token Manager
	tokens := security.NewTokenManager(cfg.JWTKey, cfg.JWTExp)

	// 3. Initialize Stores
	userRepo, err := repository.NewFileUserRepository(cfg.UsersFile)
	if err != nil {
		log.Fatalf("Could not initialize credential store: %v", err)
	}
	bookRepo := repository.NewMemoryBookRepository()
	log.Println("Stores initialized.")

	// 4. Initialize Services
	authService := service.NewAuthService(userRepo, tokens)
	bookService := service.NewBookService(bookRepo)

	// 5. Initialize Router & HTTP Server
	router := api.NewRouter(tokens, authService, bookService)

	server := &http.Server{
		Addr:         ":" + cfg.APIPort,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// 6. Graceful Shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		log.Printf("Server starting on port %s", cfg.APIPort)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Could not listen on %s: %v\n", cfg.APIPort, err)
		}
	}()

	<-stop // Wait for interrupt signal

	log.Println("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server shutdown failed: %v", err)
	}

	log.Println("Server stopped gracefully.")
}
