package main

import (
	"log"
	"os"
	"time"

	"homefinder-api/config"
	"homefinder-api/database"
	routes "homefinder-api/internal/app/http"
	"homefinder-api/internal/infra/cache"
	"homefinder-api/internal/infra/storage"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadEnv()
	database.InitDB()
	cache.Init()
	if err := storage.Init(); err != nil {
		log.Fatal("Failed to init photo storage:", err)
	}

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{os.Getenv("CORS_ORIGIN")},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	routes.RegisterRoutes(r)

	r.Run(":" + config.PORT)
}
