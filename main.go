package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/resumelens/backend/agent"
	"github.com/resumelens/backend/analyzer"
	"github.com/resumelens/backend/auth"
	"github.com/resumelens/backend/career"
	"github.com/resumelens/backend/config"
	_ "github.com/resumelens/backend/docs"
	"github.com/resumelens/backend/gemini"
	"github.com/resumelens/backend/handlers"
	"github.com/resumelens/backend/knowledge"
	"github.com/resumelens/backend/mcp"
	"github.com/resumelens/backend/storage"
)

// @title ResumeLens API
// @version 1.0
// @description Resume analysis backend: structured skill matching, career-path guidance and AI-assisted feedback.
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.email support@resumelens.dev

// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080
// @BasePath /api

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	// Load .env file if present (for local development)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Configuration error: %v", err)
	}

	if cfg.Debug {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx := context.Background()

	// Initialize Firestore client
	log.Println("Initializing Firestore client...")
	firestoreClient, err := storage.NewFirestoreClient(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to initialize Firestore client: %v", err)
	}
	defer firestoreClient.Close()

	// Initialize Cloud Storage client
	log.Println("Initializing Cloud Storage client...")
	storageClient, err := storage.NewCloudStorageClient(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to initialize Cloud Storage client: %v", err)
	}
	defer storageClient.Close()

	jwtService := auth.NewJWTService(cfg)

	// Drop stale analysis cache entries from previous runs
	go func() {
		if purged, err := firestoreClient.PurgeExpiredAnalyses(ctx); err != nil {
			log.Printf("Analysis cache purge failed: %v", err)
		} else if purged > 0 {
			log.Printf("Purged %d expired analysis cache entries", purged)
		}
	}()

	// The Gemini client is optional: without it every analysis still
	// returns the deterministic structured report.
	var geminiClient *gemini.Client
	geminiClient, err = gemini.NewClient(ctx, cfg)
	if err != nil {
		log.Printf("Gemini client unavailable, running deterministic-only: %v", err)
		geminiClient = nil
	}

	// Build the deterministic analysis stack
	graph := knowledge.NewGraph()
	resumeAnalyzer := analyzer.New(graph)
	careerService := career.NewService()

	resumeAgent := agent.NewResumeAgent(cfg, geminiClient, firestoreClient, resumeAnalyzer)
	defer resumeAgent.Close()
	log.Printf("Resume agent initialized (%d tools, %d skills indexed)",
		len(resumeAgent.Registry().List()), graph.Len())

	// Create handlers
	analyzeHandler := handlers.NewAnalyzeHandler(resumeAgent, firestoreClient, storageClient)
	interviewHandler := handlers.NewInterviewHandler(resumeAgent)
	salaryHandler := handlers.NewSalaryHandler(resumeAgent)
	careerHandler := handlers.NewCareerHandler(careerService)
	authHandler := handlers.NewAuthHandler(firestoreClient, storageClient, jwtService)
	toolsHandler := handlers.NewToolsHandler(resumeAgent.Registry())

	mcpServer := mcp.NewServer(resumeAgent.Registry())

	// Create Gin router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(gin.Logger())

	// Configure CORS for the web frontend
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:5173", "*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	router.GET("/health", handlers.Health)

	api := router.Group("/api")
	{
		// Auth endpoints (public)
		authGroup := api.Group("/auth")
		{
			authGroup.POST("/register", authHandler.Register)
			authGroup.POST("/login", authHandler.Login)
		}

		// Protected auth endpoints
		authProtected := api.Group("/auth")
		authProtected.Use(auth.AuthMiddleware(jwtService))
		{
			authProtected.GET("/me", authHandler.Me)
			authProtected.POST("/resume", authHandler.UploadResume)
		}

		// Analysis endpoints (optional auth - uses saved resume if authenticated)
		api.POST("/analyze", auth.OptionalAuthMiddleware(jwtService), analyzeHandler.Analyze)
		api.POST("/analyze/structured", analyzeHandler.AnalyzeStructured)
		api.POST("/match-skills", analyzeHandler.MatchSkills)
		api.POST("/optimize-resume", analyzeHandler.OptimizeResume)

		// Tool catalog for agent clients
		api.GET("/tools", toolsHandler.List)

		// Interview preparation
		api.POST("/interview/questions", interviewHandler.Questions)
		api.POST("/interview/feedback", interviewHandler.Feedback)

		// Salary intelligence
		api.POST("/salary/intelligence", salaryHandler.Intelligence)

		// Career paths catalog
		careerGroup := api.Group("/career")
		{
			careerGroup.GET("/skills", careerHandler.Skills)
			careerGroup.GET("/skills/:skill_id/learning-resources", careerHandler.LearningResources)
			careerGroup.GET("/paths", careerHandler.Paths)
			careerGroup.GET("/paths/:path_id", careerHandler.PathByID)
			careerGroup.POST("/recommend", careerHandler.Recommend)
			careerGroup.POST("/intelligent-recommendation", careerHandler.IntelligentRecommend)
			careerGroup.POST("/skills-gap", careerHandler.SkillsGap)
			careerGroup.POST("/extract-skill-ids", careerHandler.ExtractSkillIDs)
			careerGroup.POST("/industry-transition", careerHandler.TransitionAnalysis)
			careerGroup.POST("/generate-trajectory", careerHandler.GenerateTrajectory)
			careerGroup.POST("/skill-evolution", careerHandler.SkillEvolution)
			careerGroup.GET("/growth-patterns", careerHandler.GrowthPatterns)
			careerGroup.GET("/growth-patterns/:pattern_id", careerHandler.GrowthPatternByID)
		}

		// MCP endpoints for external AI agents
		mcpServer.RegisterRoutes(api)
	}

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  60 * time.Second,
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		log.Printf("Starting server on port %s...", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exited gracefully")
}
