package routes

import (
	"github.com/gin-gonic/gin"

	"gym_manager/internal/auth"
	"gym_manager/internal/middleware"
)

func MembershipRoutes(r *gin.Engine, deps Deps) {
	students := r.Group("/api/students")
	students.Use(middleware.RequireAuth(deps.Issuer))
	{
		// Enrollment is the lifecycle transition; front desk only
		students.POST("/:studentId/memberships",
			middleware.RequireRoles(auth.RoleReceptionist, auth.RoleAdmin),
			deps.Memberships.Create)

		// History is visible to the front desk and to the student itself
		students.GET("/:studentId/memberships",
			middleware.RequireSameStudent(deps.Students, auth.RoleAdmin, auth.RoleReceptionist),
			deps.Memberships.History)
	}
}
