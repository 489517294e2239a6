package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"gorm.io/gorm"

	"pulse/auth"
	"pulse/config"
	"pulse/database"
	"pulse/handlers"
	"pulse/middleware"
	"pulse/routes"
	"pulse/store"
)

func main() {
	log.Println("🚀 Starting Pulse API server...")

	// .env is optional; real deployments set env vars directly
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("❌ Configuration error: ", err)
	}
	log.Println("⚙️ ", cfg)

	// ===== CONNECT TO POSTGRES WITH RETRY =====
	log.Println("🔌 Connecting to Postgres...")

	var db *gorm.DB
	var dbErr error
	for i := 1; i <= 3; i++ {
		db, dbErr = database.Connect(cfg.DatabaseURL)
		if dbErr != nil {
			log.Printf("❌ Postgres connection attempt %d failed: %v", i, dbErr)
			time.Sleep(2 * time.Second)
			continue
		}
		break
	}
	if dbErr != nil {
		log.Fatal("❌ Failed to connect to Postgres: ", dbErr)
	}

	if err := database.Migrate(db); err != nil {
		log.Fatal("❌ Migration failed: ", err)
	}
	log.Println("✅ Schema migrated")

	// ===== GIN MODE =====
	if cfg.GinMode == "release" {
		gin.SetMode(gin.ReleaseMode)
		log.Println("⚙️ Running in RELEASE mode")
	} else {
		gin.SetMode(gin.DebugMode)
		log.Println("⚙️ Running in DEBUG mode")
	}

	// ===== WIRING =====
	users := store.NewUserStore(db)
	posts := store.NewPostStore(db)
	votes := store.NewVoteStore(db)
	tokens := auth.NewTokenService(cfg.JWTSecret, cfg.TokenTTL)

	h := handlers.New(users, posts, votes, tokens)
	router := routes.SetupRouter(h, middleware.RequireAuth(tokens, users))

	// ===== SERVER CONFIG =====
	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("🌐 Server running on port %s", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("❌ Server error: ", err)
		}
	}()

	log.Println("✅ Server is ready and accepting connections")

	// ===== GRACEFUL SHUTDOWN =====
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("🛑 Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Println("❌ Forced shutdown: ", err)
	}

	if err := database.Disconnect(db); err != nil {
		log.Println("❌ Error closing database: ", err)
	}

	log.Println("👋 Server stopped gracefully")
}
