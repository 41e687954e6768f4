package routes

import (
	ginlog "github.com/gin-contrib/logger"
	"github.com/gin-gonic/gin"

	"gym_manager/internal/auth"
	"gym_manager/internal/controllers"
	"gym_manager/internal/repository"
)

// Deps carries everything the route groups need; main wires it up once.
type Deps struct {
	Issuer   *auth.Issuer
	Students *repository.StudentRepository

	Auth         *controllers.AuthController
	Users        *controllers.UserController
	Memberships  *controllers.MembershipController
	WorkoutPlans *controllers.WorkoutPlanController
	Assessments  *controllers.AssessmentController
}

func SetupRouter(deps Deps) *gin.Engine {
	r := gin.New()

	// Recovery + request logging before any route group
	r.Use(gin.Recovery())
	r.Use(ginlog.SetLogger())

	AuthRoutes(r, deps)
	UserRoutes(r, deps)
	MembershipRoutes(r, deps)
	WorkoutPlanRoutes(r, deps)
	AssessmentRoutes(r, deps)

	return r
}
