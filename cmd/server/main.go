package main

import (
	"log"
	"time"

	"reimbursement-backend/internal/config"
	"reimbursement-backend/internal/models"
	"reimbursement-backend/internal/routes"
	"reimbursement-backend/pkg/logger"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load .env
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on system env")
	}

	cfg := config.Load()
	logg := logger.New(cfg.LogLevel)

	db := config.InitDB(cfg)

	if err := db.AutoMigrate(
		&models.Bank{},
		&models.BankAdmin{},
		&models.BankMember{},
		&models.BankAccount{},
		&models.Reimbursement{},
		&models.DecisionLog{},
	); err != nil {
		log.Printf("migration warning: %v", err)
	}

	if !cfg.IsLocal() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.Default()
	// CORS config
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	routes.RegisterRoutes(r, db, logg)

	r.Run(":8080")
}
