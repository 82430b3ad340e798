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

	"github.com/resumeparse/backend/config"
	_ "github.com/resumeparse/backend/docs"
	"github.com/resumeparse/backend/gemini"
	"github.com/resumeparse/backend/handlers"
	"github.com/resumeparse/backend/mcp"
	"github.com/resumeparse/backend/parser"
	"github.com/resumeparse/backend/tools"
)

// @title Resume Parser API
// @version 1.0
// @description Resume parsing service: normalizes raw resume text or loosely structured JSON into a canonical record of skills, experience, education, and projects.

// @contact.name API Support
// @contact.email support@resumeparse.dev

// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080
// @BasePath /api

func main() {
	// Load .env file if present (for local development); never overrides
	// variables already set in the environment
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

	// The Gemini client comes up in degraded mode without a credential;
	// the service still serves every request
	geminiClient, err := gemini.NewClient(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to create Gemini client: %v", err)
	}
	if !geminiClient.Available() {
		log.Println("Running without extraction backend: free-form text yields degraded results")
	}

	parseService := parser.NewService(geminiClient)

	toolRegistry := tools.NewToolRegistry()
	toolRegistry.Register(tools.NewParseResumeTool(parseService))

	mcpServer := mcp.NewServer(toolRegistry)
	resumeHandler := handlers.NewResumeHandler(parseService)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(gin.Logger())

	router.Use(cors.New(cors.Config{
		AllowOrigins:  []string{"*"},
		AllowMethods:  []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}))

	router.GET("/health", handlers.HealthCheck)

	api := router.Group("/api")
	{
		// MCP endpoints for external AI agents run in every mode
		mcpServer.RegisterRoutes(api)

		if cfg.Mode == config.ModeHTTP {
			api.POST("/parse_resume", resumeHandler.ParseResume)
		}
	}

	if cfg.Mode == config.ModeHTTP {
		router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  60 * time.Second,
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		log.Printf("Starting server on port %s (mode: %s)...", cfg.Port, cfg.Mode)
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
