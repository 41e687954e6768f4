package routes

import (
	"github.com/gin-gonic/gin"

	"gym_manager/internal/auth"
	"gym_manager/internal/middleware"
)

func AssessmentRoutes(r *gin.Engine, deps Deps) {
	assessments := r.Group("/api/assessments")
	assessments.Use(middleware.RequireAuth(deps.Issuer))
	{
		assessments.POST("/students/:studentId/assessments",
			middleware.RequireRoles(auth.RoleTeacher, auth.RoleAdmin),
			deps.Assessments.Create)

		assessments.PUT("/:assessmentId",
			middleware.RequireRoles(auth.RoleTeacher, auth.RoleAdmin),
			deps.Assessments.Update)

		assessments.GET("/students/:studentId/assessments",
			middleware.RequireSameStudent(deps.Students,
				auth.RoleAdmin, auth.RoleTeacher, auth.RoleReceptionist, auth.RoleTrainee),
			deps.Assessments.ListByStudent)
	}
}
