package routes

import (
	"github.com/gin-gonic/gin"

	"gym_manager/internal/auth"
	"gym_manager/internal/middleware"
)

func WorkoutPlanRoutes(r *gin.Engine, deps Deps) {
	plans := r.Group("/api/workout-plan")
	plans.Use(middleware.RequireAuth(deps.Issuer))
	{
		plans.PUT("/students/:studentId/workout-plans",
			middleware.RequireRoles(auth.RoleTeacher, auth.RoleAdmin),
			deps.WorkoutPlans.CreateOrUpdate)

		plans.GET("/students/:studentId/workout-plans",
			middleware.RequireSameStudent(deps.Students, auth.RoleAdmin, auth.RoleTeacher),
			deps.WorkoutPlans.Get)
	}
}
