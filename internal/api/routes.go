package api

import (
	"net/http"

	"fitnesspr/portal/internal/domain"
	"fitnesspr/portal/internal/service"

	"github.com/gin-gonic/gin"
)

// Handlers bundles the handler dependencies SetupRoutes wires up.
type Handlers struct {
	Auth     *AuthHandler
	Portal   *PortalHandler
	Client   *ClientHandler
	Program  *ProgramHandler
	Meal     *MealHandler
	Progress *ProgressHandler
	Session  *SessionHandler
	Trainer  *TrainerHandler
}

// NewHandlers constructs every handler from the service layer.
func NewHandlers(
	authService service.AuthService,
	portalService service.PortalService,
	clientService service.ClientService,
	programService service.ProgramService,
	mealService service.MealService,
	progressService service.ProgressService,
	sessionService service.SessionService,
	paymentService service.PaymentService,
	statisticsService service.StatisticsService,
) *Handlers {
	return &Handlers{
		Auth:     NewAuthHandler(authService),
		Portal:   NewPortalHandler(portalService),
		Client:   NewClientHandler(clientService, programService, mealService),
		Program:  NewProgramHandler(programService),
		Meal:     NewMealHandler(mealService),
		Progress: NewProgressHandler(progressService),
		Session:  NewSessionHandler(sessionService),
		Trainer:  NewTrainerHandler(clientService, paymentService, statisticsService),
	}
}

// SetupRoutes registers all API routes on the router.
//
// Portal-facing reads (PIN login, a client's programs/meals/goals, completion
// flags) are open, matching the client portal's tokenless access model.
// Management surfaces require a bearer token and the trainer role.
func SetupRoutes(router *gin.Engine, jwtSecret string, h *Handlers) {
	authMiddleware := AuthMiddleware(jwtSecret)

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	apiV1 := router.Group("/api/v1")
	{
		authGroup := apiV1.Group("/auth")
		{
			authGroup.POST("/register", h.Auth.Register)
			authGroup.POST("/login", h.Auth.Login)
			authGroup.POST("/pin-login", h.Portal.PinLogin)
			authGroup.GET("/me", authMiddleware, h.Auth.Me)
		}

		// --- Client portal reads (tokenless) ---
		apiV1.GET("/clients/:clientId/programs", h.Client.GetClientPrograms)
		apiV1.GET("/clients/:clientId/nutrition-summary", h.Client.GetNutritionSummary)
		apiV1.GET("/programs/client/:clientId", h.Program.GetProgramsForClient)
		apiV1.POST("/programs/:programId/exercises/:exerciseId/complete", h.Program.MarkExerciseCompleted)
		apiV1.GET("/meals/plans", h.Meal.ListMealPlans)
		apiV1.GET("/meals/plans/:planId", h.Meal.GetMealPlan)
		apiV1.POST("/meals/plans/:planId/meals/:mealId/complete", h.Meal.MarkMealCompleted)
		apiV1.GET("/meal-plans", h.Meal.ListMealPlans) // legacy dashboard alias
		apiV1.GET("/progress/goals", h.Progress.GetGoals)
		apiV1.GET("/progress/entries", h.Progress.GetEntries)
		apiV1.GET("/trainers/:trainerId", h.Trainer.GetTrainer)
	}

	// --- Trainer management (bearer token + trainer role) ---
	protected := apiV1.Group("")
	protected.Use(authMiddleware, RoleMiddleware(domain.RoleTrainer, domain.RoleAdmin))
	{
		clientGroup := protected.Group("/clients")
		{
			clientGroup.GET("", h.Client.ListClients)
			clientGroup.POST("", h.Client.CreateClient)
			clientGroup.GET("/:clientId", h.Client.GetClient)
			clientGroup.PUT("/:clientId", h.Client.UpdateClient)
			clientGroup.DELETE("/:clientId", h.Client.DeleteClient)
		}

		programGroup := protected.Group("/programs")
		{
			programGroup.GET("", h.Program.ListPrograms)
			programGroup.POST("", h.Program.CreateProgram)
			programGroup.GET("/:programId", h.Program.GetProgram)
			programGroup.PUT("/:programId", h.Program.UpdateProgram)
			programGroup.DELETE("/:programId", h.Program.DeleteProgram)
		}

		exerciseGroup := protected.Group("/exercises")
		{
			exerciseGroup.GET("", h.Program.ListExercises)
			exerciseGroup.POST("", h.Program.CreateExercise)
		}

		protected.POST("/meals/plans", h.Meal.CreateMealPlan)

		progressGroup := protected.Group("/progress")
		{
			progressGroup.POST("/goals", h.Progress.AddGoal)
			progressGroup.POST("/entries", h.Progress.AddEntry)
		}

		sessionGroup := protected.Group("/sessions")
		{
			sessionGroup.GET("", h.Session.ListSessions)
			sessionGroup.GET("/today", h.Session.TodaySessions)
			sessionGroup.POST("", h.Session.CreateSession)
		}

		paymentGroup := protected.Group("/payments")
		{
			paymentGroup.GET("", h.Trainer.ListPayments)
			paymentGroup.POST("", h.Trainer.RecordPayment)
		}

		protected.GET("/trainer/clients", h.Trainer.GetManagedClients)
		protected.GET("/statistics/trainer", h.Trainer.TrainerStats)
	}
}
