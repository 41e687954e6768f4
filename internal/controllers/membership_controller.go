package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"gym_manager/internal/models"
	"gym_manager/internal/repository"
	"gym_manager/internal/services"
)

type MembershipController struct {
	service     *services.MembershipService
	memberships *repository.MembershipRepository
}

func NewMembershipController(service *services.MembershipService, memberships *repository.MembershipRepository) *MembershipController {
	return &MembershipController{service: service, memberships: memberships}
}

type createMembershipInput struct {
	Type      string `json:"type" binding:"required"`
	StartDate string `json:"start_date" binding:"required"`
}

// Create enrolls the student on a new plan, superseding any active one.
func (ct *MembershipController) Create(c *gin.Context) {
	studentID, ok := idParam(c, "studentId")
	if !ok {
		return
	}

	var input createMembershipInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if !models.ValidMembershipType(input.Type) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid membership type"})
		return
	}
	startDate, err := parseDate(input.StartDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid start_date"})
		return
	}

	membership, err := ct.service.CreateActiveMembership(
		c.Request.Context(),
		studentID,
		models.MembershipType(input.Type),
		startDate,
	)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "student not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not create membership"})
		}
		return
	}

	c.JSON(http.StatusCreated, membership)
}

// History returns the student's membership records, newest first.
func (ct *MembershipController) History(c *gin.Context) {
	studentID, ok := idParam(c, "studentId")
	if !ok {
		return
	}

	memberships, err := ct.memberships.ListByStudent(c.Request.Context(), studentID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not list memberships"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": memberships})
}

// parseDate accepts RFC3339 timestamps or plain dates.
func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", s)
}
