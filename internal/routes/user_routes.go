package routes

import (
	"github.com/gin-gonic/gin"

	"gym_manager/internal/auth"
	"gym_manager/internal/middleware"
)

func UserRoutes(r *gin.Engine, deps Deps) {
	users := r.Group("/api/users")
	users.Use(middleware.RequireAuth(deps.Issuer))
	{
		// Own profile
		users.GET("/profile", deps.Users.ShowProfile)
		users.PUT("/profile", deps.Users.UpdateProfile)
		users.PATCH("/profile/password", deps.Users.UpdateProfilePassword)

		// Creation checks its own per-specialization permissions
		users.POST("/create", deps.Users.Create)

		// Staff listings
		users.GET("/students",
			middleware.RequireRoles(auth.RoleAdmin, auth.RoleReceptionist, auth.RoleTeacher, auth.RoleTrainee),
			deps.Users.ListStudents)
		users.GET("/employees", middleware.RequireRoles(auth.RoleAdmin), deps.Users.ListEmployees)

		// Administration
		users.GET("", middleware.RequireRoles(auth.RoleAdmin), deps.Users.Index)
		users.GET("/:id", middleware.RequireRoles(auth.RoleAdmin), deps.Users.Show)
		users.PUT("/:id", middleware.RequireRoles(auth.RoleAdmin), deps.Users.UpdateUser)
		users.DELETE("/:id", middleware.RequireRoles(auth.RoleAdmin), deps.Users.Delete)
		users.PATCH("/:id/reset-password", middleware.RequireRoles(auth.RoleAdmin), deps.Users.ResetPassword)
	}
}
