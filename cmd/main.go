package main

import (
	"log"
	"os"

	"coursehub-backend/config"
	httpDelivery "coursehub-backend/internal/delivery/http"
	"coursehub-backend/internal/repository"
	"coursehub-backend/internal/usecase"

	"github.com/joho/godotenv"
)

func main() {
	// Load .env
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	// Connect to the database
	db := config.ConnectDB()

	// Initialize repositories
	courseRepo := repository.NewCourseRepository(db)
	studentRepo := repository.NewStudentRepository(db)
	progressRepo := repository.NewProgressRepository(db)

	// Initialize usecases
	authUsecase := usecase.NewAuthUsecase(studentRepo)
	courseUsecase := usecase.NewCourseUsecase(courseRepo, studentRepo)
	progressUsecase := usecase.NewProgressUsecase(progressRepo)

	// Initialize handler and router
	handler := httpDelivery.NewHandler(authUsecase, courseUsecase, progressUsecase)
	router := httpDelivery.InitRouter(handler)

	// Get port from environment or use default
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("Server running on port %s", port)
	log.Printf("API: http://localhost:%s/api", port)

	if err := router.Run(":" + port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
