package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"gym_manager/internal/auth"
	"gym_manager/internal/middleware"
	"gym_manager/internal/models"
	"gym_manager/internal/repository"
	"gym_manager/internal/services"
)

// defaultPassword is assigned when an account is created without one and on
// an admin password reset; users are expected to change it.
const defaultPassword = "654321"

type UserController struct {
	persons  *repository.PersonRepository
	students *repository.StudentRepository
}

func NewUserController(persons *repository.PersonRepository, students *repository.StudentRepository) *UserController {
	return &UserController{persons: persons, students: students}
}

type createUserInput struct {
	Name      string `json:"name" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	CPF       string `json:"cpf" binding:"required"`
	Password  string `json:"password"`
	Role      string `json:"role"`
	Tenure    int    `json:"tenure"`
	IsStudent bool   `json:"is_student"`
}

// Create registers a person with optional specializations. Attaching an
// employee role demands the ADMIN capability; attaching a student demands
// ADMIN or RECEPTIONIST.
func (ct *UserController) Create(c *gin.Context) {
	var input createUserInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	claims := middleware.CurrentClaims(c)
	if claims == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Missing identity"})
		return
	}
	callerRoles := claims.RoleSet()

	if input.Role != "" && !callerRoles.Satisfies(auth.RoleAdmin) {
		c.JSON(http.StatusForbidden, gin.H{"error": "only administrators can create employees"})
		return
	}
	if input.IsStudent && !callerRoles.Satisfies(auth.RoleAdmin, auth.RoleReceptionist) {
		c.JSON(http.StatusForbidden, gin.H{"error": "only administrators and receptionists can create students"})
		return
	}

	var role *models.EmployeeRole
	if input.Role != "" {
		if !models.ValidEmployeeRole(input.Role) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid role"})
			return
		}
		r := models.EmployeeRole(input.Role)
		role = &r
	}
	if input.Tenure < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "tenure cannot be negative"})
		return
	}

	password := input.Password
	if password == "" {
		password = defaultPassword
	}
	hash, err := services.HashPassword(password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not hash password"})
		return
	}

	person, err := ct.persons.Create(c.Request.Context(), repository.NewPersonInput{
		Name:     input.Name,
		Email:    input.Email,
		CPF:      input.CPF,
		Password: hash,
		Role:     role,
		Tenure:   input.Tenure,
		Student:  input.IsStudent,
	})
	if err != nil {
		if errors.Is(err, services.ErrDuplicate) {
			c.JSON(http.StatusConflict, gin.H{"error": "e-mail or cpf already in use"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not create user"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "user registered",
		"userId":  person.ID,
	})
}

// Index lists every person with its derived roles.
func (ct *UserController) Index(c *gin.Context) {
	persons, err := ct.persons.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not list users"})
		return
	}

	users := make([]gin.H, 0, len(persons))
	for i := range persons {
		users = append(users, personResponse(&persons[i]))
	}
	c.JSON(http.StatusOK, users)
}

func (ct *UserController) Show(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	person, err := ct.persons.FindByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load user"})
		}
		return
	}
	c.JSON(http.StatusOK, personResponse(person))
}

type updateUserInput struct {
	Name      *string `json:"name"`
	Email     *string `json:"email" binding:"omitempty,email"`
	Role      string  `json:"role"`
	Tenure    *int    `json:"tenure"`
	IsStudent bool    `json:"is_student"`
}

func (ct *UserController) UpdateUser(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	var input updateUserInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var role *models.EmployeeRole
	if input.Role != "" {
		if !models.ValidEmployeeRole(input.Role) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid role"})
			return
		}
		r := models.EmployeeRole(input.Role)
		role = &r
	}
	if input.Tenure != nil && *input.Tenure < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "tenure cannot be negative"})
		return
	}

	person, err := ct.persons.Update(c.Request.Context(), id, repository.UpdatePersonInput{
		Name:    input.Name,
		Email:   input.Email,
		Role:    role,
		Tenure:  input.Tenure,
		Student: input.IsStudent,
	})
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		case errors.Is(err, services.ErrDuplicate):
			c.JSON(http.StatusConflict, gin.H{"error": "e-mail already in use"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not update user"})
		}
		return
	}
	c.JSON(http.StatusOK, personResponse(person))
}

func (ct *UserController) Delete(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	if err := ct.persons.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not delete user"})
		}
		return
	}
	c.Status(http.StatusOK)
}

// ResetPassword sets the account back to the default password.
func (ct *UserController) ResetPassword(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	hash, err := services.HashPassword(defaultPassword)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not hash password"})
		return
	}

	if err := ct.persons.UpdatePassword(c.Request.Context(), id, hash); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not reset password"})
		}
		return
	}
	c.Status(http.StatusOK)
}

func (ct *UserController) ShowProfile(c *gin.Context) {
	claims := middleware.CurrentClaims(c)
	if claims == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Missing identity"})
		return
	}

	person, err := ct.persons.FindByID(c.Request.Context(), claims.PersonID)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load profile"})
		}
		return
	}
	c.JSON(http.StatusOK, personResponse(person))
}

func (ct *UserController) UpdateProfile(c *gin.Context) {
	claims := middleware.CurrentClaims(c)
	if claims == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Missing identity"})
		return
	}

	var input struct {
		Name string `json:"name" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	person, err := ct.persons.Update(c.Request.Context(), claims.PersonID, repository.UpdatePersonInput{Name: &input.Name})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not update profile"})
		return
	}
	c.JSON(http.StatusOK, personResponse(person))
}

func (ct *UserController) UpdateProfilePassword(c *gin.Context) {
	claims := middleware.CurrentClaims(c)
	if claims == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Missing identity"})
		return
	}

	var input struct {
		Password string `json:"password" binding:"required,min=6"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	hash, err := services.HashPassword(input.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not hash password"})
		return
	}
	if err := ct.persons.UpdatePassword(c.Request.Context(), claims.PersonID, hash); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not update password"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "password updated"})
}

// ListStudents returns every student with its current active membership.
func (ct *UserController) ListStudents(c *gin.Context) {
	students, err := ct.students.ListWithActiveMembership(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not list students"})
		return
	}

	out := make([]gin.H, 0, len(students))
	for i := range students {
		student := &students[i]
		entry := gin.H{
			"id":        student.ID,
			"name":      "",
			"email":     "",
			"cpf":       "",
			"photo":     "",
			"createdAt": student.CreatedAt,
		}
		if student.Person != nil {
			entry["personId"] = student.Person.ID
			entry["name"] = student.Person.Name
			entry["email"] = student.Person.Email
			entry["cpf"] = student.Person.CPF
			entry["photo"] = student.Person.Avatar
			entry["createdAt"] = student.Person.CreatedAt
		}
		if len(student.Memberships) > 0 {
			entry["activeMembership"] = gin.H{
				"type":      student.Memberships[0].Type,
				"startDate": student.Memberships[0].StartDate,
			}
		} else {
			entry["activeMembership"] = nil
		}
		out = append(out, entry)
	}
	c.JSON(http.StatusOK, out)
}

// ListEmployees returns every employee with its person data.
func (ct *UserController) ListEmployees(c *gin.Context) {
	employees, err := ct.persons.ListEmployees(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not list employees"})
		return
	}

	out := make([]gin.H, 0, len(employees))
	for i := range employees {
		employee := &employees[i]
		entry := gin.H{
			"id":     employee.ID,
			"role":   employee.Role,
			"tenure": employee.Tenure,
		}
		if employee.Person != nil {
			entry["personId"] = employee.Person.ID
			entry["name"] = employee.Person.Name
			entry["email"] = employee.Person.Email
			entry["cpf"] = employee.Person.CPF
			entry["photo"] = employee.Person.Avatar
		}
		out = append(out, entry)
	}
	c.JSON(http.StatusOK, out)
}

// personResponse flattens a person and its specializations into the API
// shape: derived roles plus optional tenure and specialization ids.
func personResponse(person *models.Person) gin.H {
	return userSummary(person, auth.ResolveRoles(person))
}

// idParam parses a numeric path parameter, replying 400 on garbage.
func idParam(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + name})
		return 0, false
	}
	return uint(id), true
}
