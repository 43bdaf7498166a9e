package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/yeremiapane/reservation-app/router"
	"github.com/yeremiapane/reservation-app/store"
	"github.com/yeremiapane/reservation-app/utils"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found or error loading: %v", err)
	}

	utils.InitLogger()

	if os.Getenv("GIN_MODE") == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	dataFile := os.Getenv("DATA_FILE")
	if dataFile == "" {
		dataFile = "data.json"
	}
	st := store.Open(dataFile)
	// The first load seeds the default inventory when the data file is new.
	if _, err := st.Load(); err != nil {
		utils.ErrorLogger.Fatalf("Failed to open data store: %v", err)
	}

	r := router.SetupRouter(st)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	utils.InfoLogger.Printf("Listening on port %s", port)
	if err := r.Run(":" + port); err != nil {
		utils.ErrorLogger.Fatal(err)
	}
}
