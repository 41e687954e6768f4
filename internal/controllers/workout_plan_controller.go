package controllers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"gym_manager/internal/middleware"
	"gym_manager/internal/repository"
	"gym_manager/internal/services"
)

type WorkoutPlanController struct {
	plans    *repository.WorkoutPlanRepository
	students *repository.StudentRepository
	persons  *repository.PersonRepository
}

func NewWorkoutPlanController(plans *repository.WorkoutPlanRepository, students *repository.StudentRepository, persons *repository.PersonRepository) *WorkoutPlanController {
	return &WorkoutPlanController{plans: plans, students: students, persons: persons}
}

// CreateOrUpdate stores the student's training sheet. The body is kept as an
// opaque JSON document; only well-formedness is checked here.
func (ct *WorkoutPlanController) CreateOrUpdate(c *gin.Context) {
	studentID, ok := idParam(c, "studentId")
	if !ok {
		return
	}

	claims := middleware.CurrentClaims(c)
	if claims == nil || claims.EmployeeID == nil {
		c.JSON(http.StatusForbidden, gin.H{"error": "only employees can edit workout plans"})
		return
	}

	content, err := c.GetRawData()
	if err != nil || !json.Valid(content) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "workout plan must be a JSON document"})
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

	plan, err := ct.plans.Upsert(c.Request.Context(), studentID, *claims.EmployeeID, content)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not save workout plan"})
		return
	}
	c.JSON(http.StatusOK, plan)
}

// Get returns the plan together with the student's and last editor's names.
func (ct *WorkoutPlanController) Get(c *gin.Context) {
	studentID, ok := idParam(c, "studentId")
	if !ok {
		return
	}

	plan, err := ct.plans.FindByStudent(c.Request.Context(), studentID)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "workout plan not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load workout plan"})
		}
		return
	}

	response := gin.H{
		"id":          plan.ID,
		"student_id":  plan.StudentID,
		"employee_id": plan.EmployeeID,
		"content":     plan.Content,
		"updated_at":  plan.UpdatedAt,
	}
	if student, err := ct.students.FindStudentWithPerson(c.Request.Context(), plan.StudentID); err == nil && student.Person != nil {
		response["studentName"] = student.Person.Name
	}
	if employee, err := ct.persons.FindEmployee(c.Request.Context(), plan.EmployeeID); err == nil && employee.Person != nil {
		response["teacherName"] = employee.Person.Name
	}

	c.JSON(http.StatusOK, response)
}
