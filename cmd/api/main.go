// cmd/api/main.go
// Main entry point for the application
// This file bootstraps all components and starts the server

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	firebase "firebase.google.com/go/v4"
	"github.com/go-redis/redis/v8"
	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"google.golang.org/api/option"

	"github.com/emberlyapp/emberly-backend/internal/auth"
	"github.com/emberlyapp/emberly-backend/internal/blocks"
	"github.com/emberlyapp/emberly-backend/internal/chat"
	"github.com/emberlyapp/emberly-backend/internal/common/database"
	"github.com/emberlyapp/emberly-backend/internal/common/docstore"
	"github.com/emberlyapp/emberly-backend/internal/config"
	"github.com/emberlyapp/emberly-backend/internal/feed"
	"github.com/emberlyapp/emberly-backend/internal/matches"
)

func main() {
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	log.Println("========================================")
	log.Println("🚀 Starting Emberly Dating API")
	log.Println("========================================")

	// 1. Load environment variables
	log.Println("📁 Step 1: Loading .env file...")
	if err := godotenv.Load(); err != nil {
		log.Printf("⚠️  Warning: No .env file found (%v), using environment variables", err)
	} else {
		log.Println("✅ .env file loaded successfully")
	}

	// 2. Load configuration
	log.Println("\n📋 Step 2: Loading configuration...")
	cfg := config.Load()
	log.Println("✅ Configuration loaded")

	// 3. Validate configuration
	log.Println("\n✔️  Step 3: Validating configuration...")
	if err := cfg.Validate(); err != nil {
		log.Fatal("❌ Configuration validation failed:", err)
	}
	log.Println("✅ Configuration is valid")

	ctx := context.Background()

	// 4. Connect to the document store
	log.Println("\n🗄️  Step 4: Connecting to document store...")

	var store docstore.Store
	var firebaseApp *firebase.App

	switch cfg.StoreProvider {
	case "firestore":
		var opts []option.ClientOption
		if cfg.FirebaseCredentialsFile != "" {
			opts = append(opts, option.WithCredentialsFile(cfg.FirebaseCredentialsFile))
		}
		app, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: cfg.FirebaseProjectID}, opts...)
		if err != nil {
			log.Fatal("❌ Failed to initialize Firebase app:", err)
		}
		firebaseApp = app

		client, err := app.Firestore(ctx)
		if err != nil {
			log.Fatal("❌ Failed to connect to Firestore:", err)
		}
		defer client.Close()

		store = docstore.NewFirestoreStore(client)
		log.Println("✅ Connected to Firestore successfully")
	default:
		store = docstore.NewMemoryStore()
		log.Println("⚠️  Using in-memory store (development mode)")
	}

	// 5. Connect to Redis (optional)
	log.Println("\n📮 Step 5: Connecting to Redis...")
	var redisClient *redis.Client

	if cfg.RedisURL != "" {
		client, err := database.NewRedisClientFromURL(ctx, cfg.RedisURL)
		if err != nil {
			log.Printf("⚠️  Redis unavailable (%v), continuing without cache", err)
		} else {
			redisClient = client
			defer redisClient.Close()
			log.Println("✅ Connected to Redis successfully")
		}
	} else {
		log.Println("⚠️  Redis URL not configured, skipping Redis connection")
	}

	// 6. Initialize Auth system
	log.Println("\n🔐 Step 6: Initializing authentication system...")

	var verifier auth.Verifier
	switch cfg.AuthProvider {
	case "firebase":
		if firebaseApp == nil {
			log.Fatal("❌ Firebase auth requires the firestore store provider")
		}
		authClient, err := firebaseApp.Auth(ctx)
		if err != nil {
			log.Fatal("❌ Failed to initialize Firebase auth:", err)
		}
		verifier = auth.NewFirebaseVerifier(authClient)
		log.Println("   ✅ Using Firebase session verification")
	default:
		verifier = auth.NewJWTVerifier(cfg.JWTSecret)
		log.Println("   ⚠️  Using JWT session verification (development mode)")
	}

	authMiddleware := auth.NewMiddleware(verifier)
	log.Println("✅ Authentication system initialized")

	// 7. Initialize Blocks module
	log.Println("\n🚫 Step 7: Initializing Blocks module...")

	blocksRepo := blocks.NewDocstoreRepository(store)
	blocksService := blocks.NewService(blocksRepo, redisClient, cfg.BlockCacheTTL)
	blocksHandler := blocks.NewHandler(blocksService)

	log.Println("✅ Blocks module initialized")

	// 8. Initialize Feed module
	log.Println("\n🗂️  Step 8: Initializing Feed module...")

	feedRepo := feed.NewDocstoreRepository(store)
	feedService := feed.NewService(feedRepo, blocksService, cfg.FeedPageSize)
	feedHandler := feed.NewHandler(feedService)

	log.Println("✅ Feed module initialized")

	// 9. Initialize Matches module
	log.Println("\n💘 Step 9: Initializing Matches module...")

	matchesRepo := matches.NewDocstoreRepository(store)
	matchesService := matches.NewService(matchesRepo)
	matchesHandler := matches.NewHandler(matchesService)

	log.Println("✅ Matches module initialized")

	// 10. Initialize Chat bootstrap
	log.Println("\n💬 Step 10: Initializing Chat bootstrap...")

	chatService := chat.NewService(matchesService)
	chatHandler := chat.NewHandler(chatService)

	log.Println("✅ Chat bootstrap initialized")

	// 11. Setup routes
	log.Println("\n🛣️  Step 11: Setting up routes...")
	router := mux.NewRouter()

	router.HandleFunc("/health", healthCheck).Methods("GET")
	router.HandleFunc("/api", apiInfo).Methods("GET")
	router.Handle("/metrics", promhttp.Handler()).Methods("GET")

	blocks.RegisterRoutes(router, blocksHandler, authMiddleware)
	log.Println("   ✅ Blocks routes registered")

	feed.RegisterRoutes(router, feedHandler, authMiddleware)
	log.Println("   ✅ Feed routes registered")

	matches.RegisterRoutes(router, matchesHandler, authMiddleware)
	log.Println("   ✅ Matches routes registered")

	chat.RegisterRoutes(router, chatHandler, authMiddleware)
	log.Println("   ✅ Chat routes registered")

	router.Use(loggingMiddleware)
	router.Use(corsMiddleware)

	// 12. Create and start HTTP server
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Println("\n========================================")
		log.Printf("🚀 Server starting on http://localhost%s", srv.Addr)
		log.Printf("🌍 Environment: %s", cfg.Environment)
		log.Println("========================================")

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("❌ Failed to start server:", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("\n⚠️  Shutdown signal received...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal("❌ Server forced to shutdown:", err)
	}

	log.Println("✅ Server exited gracefully")
}

func healthCheck(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{
		"status": "healthy",
		"time":   time.Now().UTC().Format(time.RFC3339),
	})
}

func apiInfo(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"name":    "Emberly Dating API",
		"version": "1.0.0",
		"endpoints": []string{
			"GET  /api/v1/feed",
			"POST /api/v1/blocks",
			"GET  /api/v1/blocks",
			"POST /api/v1/matches/like",
			"GET  /api/v1/matches",
			"POST /api/v1/matches/{id}/accept",
			"POST /api/v1/matches/{id}/reject",
			"DELETE /api/v1/matches/{id}",
			"POST /api/v1/chat/start",
		},
	})
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		log.Printf("%s %s %v", r.Method, r.RequestURI, time.Since(start))
	})
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}
