package main

import (
	"log"
	"net/http"

	"gym_manager/internal/auth"
	"gym_manager/internal/config"
	"gym_manager/internal/controllers"
	"gym_manager/internal/logger"
	"gym_manager/internal/middleware"
	"gym_manager/internal/repository"
	"gym_manager/internal/routes"
	"gym_manager/internal/services"
)

func main() {
	// Initialize structured logging to file
	logger.Setup()

	// Connect to the database
	db := config.InitDB()

	// Token issuer; a missing signing key is fatal
	issuer, err := auth.NewIssuer(config.JWTSecret(), config.TokenTTL())
	if err != nil {
		log.Fatalf("token issuer: %v", err)
	}

	// Repositories
	persons := repository.NewPersonRepository(db)
	students := repository.NewStudentRepository(db)
	memberships := repository.NewMembershipRepository(db)
	plans := repository.NewWorkoutPlanRepository(db)
	assessments := repository.NewAssessmentRepository(db)

	// Services
	authService := services.NewAuthService(persons, issuer)
	membershipService := services.NewMembershipService(memberships, students)

	// Setup Gin router
	r := routes.SetupRouter(routes.Deps{
		Issuer:       issuer,
		Students:     students,
		Auth:         controllers.NewAuthController(authService),
		Users:        controllers.NewUserController(persons, students),
		Memberships:  controllers.NewMembershipController(membershipService, memberships),
		WorkoutPlans: controllers.NewWorkoutPlanController(plans, students, persons),
		Assessments:  controllers.NewAssessmentController(assessments, students),
	})

	// Wrap with CORS
	handler := middleware.EnableCORS(r)

	addr := config.ServerAddr()
	log.Printf("🏋️  Gym server running at %s", addr)
	log.Fatal(http.ListenAndServe(addr, handler))
}
