package main

import (
	"fmt"
	"log"
	"os"

	"macrosim/internal/api/handlers"
	"macrosim/internal/api/middleware"
	"macrosim/internal/config"
	"macrosim/internal/policy"
	"macrosim/internal/scenario"
	"macrosim/internal/session"
	"macrosim/internal/sim"

	"github.com/gin-gonic/gin"
)

func main() {
	cfgPath := os.Getenv("MACROSIM_CONFIG")
	var cfg *config.Config
	if cfgPath != "" {
		loaded, err := config.Load(cfgPath)
		if err != nil {
			log.Fatalf("load config %s: %v", cfgPath, err)
		}
		cfg = loaded
		log.Printf("Loaded config from %s", cfgPath)
	} else {
		cfg = config.Default()
	}

	// Env overrides for container deployments.
	if port := os.Getenv("API_PORT"); port != "" {
		cfg.Server.Port = port
	}
	if dir := os.Getenv("SCENARIO_DIR"); dir != "" {
		cfg.ScenarioDir = dir
	}

	scenarios := scenario.NewRegistry()
	if cfg.ScenarioDir != "" {
		if err := scenarios.LoadDir(cfg.ScenarioDir); err != nil {
			log.Printf("Scenario dir %s not loaded: %v", cfg.ScenarioDir, err)
		} else {
			log.Printf("Scenario presets: %d", len(scenarios.List()))
		}
	}

	engine, err := sim.New(cfg.SimParams(), policy.NewThresholdRule(cfg.PolicyParams()))
	if err != nil {
		log.Fatalf("build engine: %v", err)
	}

	store, err := session.NewStore(session.Options{
		Engine:         engine,
		Scenarios:      scenarios,
		Noise:          cfg.SimNoise(),
		DebounceWindow: cfg.DebounceWindow(),
		TTL:            cfg.SessionTTL(),
		Seed:           cfg.Session.Seed,
	})
	if err != nil {
		log.Fatalf("build session store: %v", err)
	}
	defer store.Close()

	// Set up Gin router
	if os.Getenv("API_ENV") == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()

	// Apply middleware
	router.Use(middleware.CORS(cfg.Server.CORSOrigins))
	router.Use(middleware.Logger())
	router.Use(middleware.ErrorHandler())

	// Initialize handlers
	sessionHandler := handlers.NewSessionHandler(store)
	scenarioHandler := handlers.NewScenarioHandler(scenarios)
	ruleHandler := handlers.NewRuleHandler()

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// API routes
	api := router.Group("/api/v1")
	{
		api.POST("/sessions", sessionHandler.CreateSession)
		api.GET("/sessions/:id/state", sessionHandler.GetState)
		api.GET("/sessions/:id/series", sessionHandler.GetSeries)
		api.GET("/sessions/:id/events", sessionHandler.GetEvents)
		api.POST("/sessions/:id/step", sessionHandler.Step)
		api.PATCH("/sessions/:id/state", sessionHandler.SetField)
		api.PUT("/sessions/:id/periods", sessionHandler.SetPeriods)
		api.POST("/sessions/:id/scenario", sessionHandler.SelectScenario)

		api.GET("/scenarios", scenarioHandler.ListScenarios)
		api.GET("/rules", ruleHandler.ListRules)
	}

	// Serve static files from web/dist (if it exists)
	staticDir := os.Getenv("STATIC_DIR")
	if staticDir == "" {
		staticDir = cfg.Server.StaticDir
	}

	if _, err := os.Stat(staticDir); err == nil {
		router.Static("/assets", staticDir+"/assets")
		router.StaticFile("/favicon.ico", staticDir+"/favicon.ico")

		// Serve index.html for all non-API routes (SPA routing)
		router.NoRoute(func(c *gin.Context) {
			path := c.Request.URL.Path
			if len(path) >= 4 && path[:4] == "/api" {
				c.JSON(404, gin.H{"error": "Not found"})
			} else {
				c.File(staticDir + "/index.html")
			}
		})
		log.Printf("Serving static files from %s", staticDir)
	} else {
		log.Printf("Static directory %s not found, skipping static file serving", staticDir)
	}

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Printf("Starting API server on %s", addr)
	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
