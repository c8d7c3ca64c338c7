package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"fitnesspr/portal/internal/api"
	"fitnesspr/portal/internal/config"
	"fitnesspr/portal/internal/repository/memory"
	"fitnesspr/portal/internal/service"

	"github.com/gin-gonic/gin"
)

func main() {
	log.Println("Starting FitnessPr Portal Server...")

	// --- Configuration ---
	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatalf("FATAL: Could not load config: %v", err)
	}
	if cfg.JWT.Secret == "" {
		log.Fatalf("FATAL: jwt.secret must be configured (JWT_SECRET)")
	}
	log.Println("Configuration loaded.")

	// --- Seed Stores ---
	// The stores are in-memory and start from the demo fixture dataset.
	log.Println("Seeding in-memory stores...")
	fixtures := memory.SeedFixtures(time.Now())
	userRepo := memory.NewMemoryUserRepository(fixtures.Users)
	clientRepo := memory.NewMemoryClientRepository(fixtures.Clients)
	exerciseRepo := memory.NewMemoryExerciseRepository(fixtures.Exercises)
	programRepo := memory.NewMemoryProgramRepository(fixtures.Programs)
	mealPlanRepo := memory.NewMemoryMealPlanRepository(fixtures.MealPlans)
	progressRepo := memory.NewMemoryProgressRepository(fixtures.Entries, fixtures.Goals)
	sessionRepo := memory.NewMemorySessionRepository(fixtures.Sessions)
	paymentRepo := memory.NewMemoryPaymentRepository(fixtures.Payments)

	// --- Initialize Services ---
	log.Println("Initializing services...")
	authService := service.NewAuthService(userRepo, cfg.JWT.Secret, cfg.JWT.Expiration)
	portalService := service.NewPortalService(clientRepo)
	clientService := service.NewClientService(clientRepo, userRepo)
	programService := service.NewProgramService(programRepo, exerciseRepo)
	mealService := service.NewMealService(mealPlanRepo)
	progressService := service.NewProgressService(progressRepo)
	sessionService := service.NewSessionService(sessionRepo)
	paymentService := service.NewPaymentService(paymentRepo)
	statisticsService := service.NewStatisticsService(clientRepo, programRepo, progressRepo, sessionRepo, paymentRepo)

	// --- Initialize Gin Engine ---
	router := gin.Default() // Includes Logger and Recovery middleware

	// --- Setup Routes ---
	log.Println("Setting up API routes...")
	handlers := api.NewHandlers(
		authService,
		portalService,
		clientService,
		programService,
		mealService,
		progressService,
		sessionService,
		paymentService,
		statisticsService,
	)
	api.SetupRoutes(router, cfg.JWT.Secret, handlers)

	// --- Start HTTP Server ---
	server := &http.Server{
		Addr:         cfg.Server.Address,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	log.Printf("Server starting on %s", cfg.Server.Address)

	// --- Graceful Shutdown ---
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("FATAL: ListenAndServe Error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctxShutdown, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()

	if err := server.Shutdown(ctxShutdown); err != nil {
		log.Fatalf("FATAL: Server forced to shutdown: %v", err)
	}

	log.Println("Server exiting.")
}
