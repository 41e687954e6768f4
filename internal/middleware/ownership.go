package middleware

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"gym_manager/internal/auth"
	"gym_manager/internal/models"
	"gym_manager/internal/services"
)

// StudentFinder resolves the :studentId route parameter to a student record.
type StudentFinder interface {
	FindStudent(ctx context.Context, id uint) (*models.Student, error)
}

// RequireSameStudent gates student-scoped resources. Identities holding one
// of the staff roles (or ADMIN) pass; anyone else must be the person the
// target student links to. The token only carries the person id, so the
// student row is looked up on every check.
func RequireSameStudent(students StudentFinder, staff ...auth.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := CurrentClaims(c)
		if claims == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing identity"})
			return
		}

		if claims.RoleSet().Satisfies(staff...) {
			c.Next()
			return
		}

		studentID, err := strconv.ParseUint(c.Param("studentId"), 10, 32)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid student id"})
			return
		}

		student, err := students.FindStudent(c.Request.Context(), uint(studentID))
		if err != nil {
			if errors.Is(err, services.ErrNotFound) {
				c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "Student not found"})
			} else {
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Could not verify student"})
			}
			return
		}

		if student.PersonID != claims.PersonID {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Access denied"})
			return
		}

		c.Next()
	}
}
