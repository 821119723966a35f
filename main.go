package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sayhan-ahmed/crafty-server/routes"
	"github.com/sayhan-ahmed/crafty-server/store"
)

func main() {
	log.Println("✅ Starting Crafty server...")

	// Load environment variables
	_ = godotenv.Load()

	uri := os.Getenv("MONGODB_URI")
	if uri == "" {
		log.Fatal("❌ MONGODB_URI is not set")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := store.Connect(ctx, uri)
	if err != nil {
		log.Fatalf("❌ MongoDB connection failed: %v", err)
	}
	defer func() { _ = client.Disconnect(context.Background()) }()

	dbName := os.Getenv("DB_NAME")
	if dbName == "" {
		dbName = "crafty"
	}
	log.Printf("✅ Connected to MongoDB! (%s DB)", dbName)

	s := store.NewMongo(client.Database(dbName))
	if err := s.EnsureIndexes(ctx); err != nil {
		log.Fatalf("❌ Index creation failed: %v", err)
	}

	// Gin setup
	r := gin.Default()

	// CORS: one fixed client origin
	clientOrigin := os.Getenv("CLIENT_ORIGIN")
	if clientOrigin == "" {
		clientOrigin = "http://localhost:3000"
	}
	r.Use(cors.New(cors.Config{
		AllowOrigins: []string{clientOrigin},
		AllowMethods: []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", "Accept"},
		MaxAge:       12 * time.Hour,
	}))

	// Setup routes
	routes.SetupRoutes(r, s)

	// Start server
	port := os.Getenv("PORT")
	if port == "" {
		port = "4000"
	}
	log.Printf("🚀 Crafty server running on port %s...", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}
