package controllers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"gym_manager/internal/middleware"
	"gym_manager/internal/models"
	"gym_manager/internal/repository"
	"gym_manager/internal/services"
)

type AssessmentController struct {
	assessments *repository.AssessmentRepository
	students    *repository.StudentRepository
}

func NewAssessmentController(assessments *repository.AssessmentRepository, students *repository.StudentRepository) *AssessmentController {
	return &AssessmentController{assessments: assessments, students: students}
}

// Create records a new assessment session for the student, authored by the
// calling employee.
func (ct *AssessmentController) Create(c *gin.Context) {
	studentID, ok := idParam(c, "studentId")
	if !ok {
		return
	}

	claims := middleware.CurrentClaims(c)
	if claims == nil || claims.EmployeeID == nil {
		c.JSON(http.StatusForbidden, gin.H{"error": "only employees can record assessments"})
		return
	}

	content, err := c.GetRawData()
	if err != nil || !json.Valid(content) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "assessment must be a JSON document"})
		return
	}

	if _, err := ct.students.FindStudent(c.Request.Context(), studentID); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "student not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load student"})
		}
		return
	}

	assessment := models.PhysicalAssessment{
		StudentID: studentID,
		TeacherID: *claims.EmployeeID,
		Content:   content,
	}
	if err := ct.assessments.Create(c.Request.Context(), &assessment); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not create assessment"})
		return
	}
	c.JSON(http.StatusCreated, assessment)
}

// Update rewrites an existing assessment. Only the employee who authored it
// may edit it.
func (ct *AssessmentController) Update(c *gin.Context) {
	assessmentID, ok := idParam(c, "assessmentId")
	if !ok {
		return
	}

	claims := middleware.CurrentClaims(c)
	if claims == nil || claims.EmployeeID == nil {
		c.JSON(http.StatusForbidden, gin.H{"error": "only employees can edit assessments"})
		return
	}

	content, err := c.GetRawData()
	if err != nil || !json.Valid(content) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "assessment must be a JSON document"})
		return
	}

	assessment, err := ct.assessments.FindByID(c.Request.Context(), assessmentID)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "assessment not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load assessment"})
		}
		return
	}

	if assessment.TeacherID != *claims.EmployeeID {
		c.JSON(http.StatusForbidden, gin.H{"error": "you can only edit your own assessments"})
		return
	}

	assessment.Content = content
	if err := ct.assessments.Update(c.Request.Context(), assessment); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not update assessment"})
		return
	}
	c.JSON(http.StatusOK, assessment)
}

// ListByStudent returns the student's assessment history, newest first.
func (ct *AssessmentController) ListByStudent(c *gin.Context) {
	studentID, ok := idParam(c, "studentId")
	if !ok {
		return
	}

	assessments, err := ct.assessments.ListByStudent(c.Request.Context(), studentID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not list assessments"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": assessments})
}
