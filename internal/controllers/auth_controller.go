package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"gym_manager/internal/auth"
	"gym_manager/internal/models"
	"gym_manager/internal/services"
)

type AuthController struct {
	auth *services.AuthService
}

func NewAuthController(authService *services.AuthService) *AuthController {
	return &AuthController{auth: authService}
}

func (ct *AuthController) Login(c *gin.Context) {
	var body struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	person, roles, token, err := ct.auth.Login(c.Request.Context(), body.Email, body.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid e-mail or password"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not complete login"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user":  userSummary(person, roles),
		"token": token,
	})
}

// userSummary mirrors the shape of the token claims: the identity plus its
// derived roles and optional specialization ids.
func userSummary(person *models.Person, roles auth.RoleSet) gin.H {
	summary := gin.H{
		"id":     person.ID,
		"name":   person.Name,
		"email":  person.Email,
		"cpf":    person.CPF,
		"avatar": person.Avatar,
		"roles":  roles.Strings(),
	}
	if person.Employee != nil {
		summary["tenure"] = person.Employee.Tenure
		summary["employeeId"] = person.Employee.ID
	}
	if person.Student != nil {
		summary["studentId"] = person.Student.ID
	}
	return summary
}
