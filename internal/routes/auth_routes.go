package routes

import (
	"github.com/gin-gonic/gin"
)

func AuthRoutes(r *gin.Engine, deps Deps) {
	sessions := r.Group("/api/sessions")
	{
		sessions.POST("/login", deps.Auth.Login)
	}
}
