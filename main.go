package main

import (
	"os"

	"github.com/bit-festival/api-go/config"
	"github.com/bit-festival/api-go/routes"
	"github.com/bit-festival/api-go/utils/log"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Log.Warn("No .env file found, using process environment")
	}
	log.InitLogger()

	// Initialize database
	db := config.InitDB()

	// Create a new Gin router
	r := gin.Default()

	// Initialize routes
	routes.SetupRoutes(r, db)

	// Start the server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Log.Infof("Starting server on port %s", port)
	if err := r.Run(":" + port); err != nil {
		log.Log.Fatal(err)
	}
}
