package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
	"gorm.io/gorm"

	"gym_manager/internal/models"
	"gym_manager/internal/services"
)

// PersonRepository persists Person aggregates and their specializations.
type PersonRepository struct {
	db *gorm.DB
}

func NewPersonRepository(db *gorm.DB) *PersonRepository {
	return &PersonRepository{db: db}
}

// NewPersonInput describes a person to create, with optional specializations
// attached in the same transaction.
type NewPersonInput struct {
	Name     string
	Email    string
	CPF      string
	Password string // already hashed
	Role     *models.EmployeeRole
	Tenure   int
	Student  bool
}

func (r *PersonRepository) FindByEmail(ctx context.Context, email string) (*models.Person, error) {
	var person models.Person
	err := r.db.WithContext(ctx).
		Where("email = ?", email).
		Preload("Employee").
		Preload("Student").
		First(&person).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, services.ErrNotFound
		}
		return nil, err
	}
	return &person, nil
}

func (r *PersonRepository) FindByID(ctx context.Context, id uint) (*models.Person, error) {
	var person models.Person
	err := r.db.WithContext(ctx).
		Preload("Employee").
		Preload("Student").
		First(&person, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, services.ErrNotFound
		}
		return nil, err
	}
	return &person, nil
}

// List returns every person ordered by name, specializations loaded.
func (r *PersonRepository) List(ctx context.Context) ([]models.Person, error) {
	var persons []models.Person
	err := r.db.WithContext(ctx).
		Preload("Employee").
		Preload("Student").
		Order("name asc").
		Find(&persons).Error
	return persons, err
}

// Create inserts the person and any requested specializations atomically.
func (r *PersonRepository) Create(ctx context.Context, input NewPersonInput) (*models.Person, error) {
	person := models.Person{
		Name:     input.Name,
		Email:    input.Email,
		CPF:      input.CPF,
		Password: input.Password,
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&person).Error; err != nil {
			return err
		}
		if input.Role != nil {
			employee := models.Employee{
				PersonID: person.ID,
				Role:     *input.Role,
				Tenure:   input.Tenure,
			}
			if err := tx.Create(&employee).Error; err != nil {
				return err
			}
		}
		if input.Student {
			student := models.Student{PersonID: person.ID}
			if err := tx.Create(&student).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		if isUniqueViolation(err) {
			return nil, services.ErrDuplicate
		}
		return nil, err
	}

	return r.FindByID(ctx, person.ID)
}

// UpdatePersonInput carries a partial update; nil fields are left untouched.
// A non-nil Role attaches or updates the Employee specialization; Student
// attaches the Student specialization if not already present.
type UpdatePersonInput struct {
	Name    *string
	Email   *string
	Role    *models.EmployeeRole
	Tenure  *int
	Student bool
}

func (r *PersonRepository) Update(ctx context.Context, id uint, input UpdatePersonInput) (*models.Person, error) {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var person models.Person
		if err := tx.First(&person, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return services.ErrNotFound
			}
			return err
		}

		basics := map[string]interface{}{}
		if input.Name != nil {
			basics["name"] = *input.Name
		}
		if input.Email != nil {
			basics["email"] = *input.Email
		}
		if len(basics) > 0 {
			if err := tx.Model(&person).Updates(basics).Error; err != nil {
				return err
			}
		}

		if input.Role != nil {
			var employee models.Employee
			err := tx.Where("person_id = ?", id).First(&employee).Error
			switch {
			case err == nil:
				employee.Role = *input.Role
				if input.Tenure != nil {
					employee.Tenure = *input.Tenure
				}
				if err := tx.Save(&employee).Error; err != nil {
					return err
				}
			case errors.Is(err, gorm.ErrRecordNotFound):
				employee = models.Employee{PersonID: id, Role: *input.Role}
				if input.Tenure != nil {
					employee.Tenure = *input.Tenure
				}
				if err := tx.Create(&employee).Error; err != nil {
					return err
				}
			default:
				return err
			}
		}

		if input.Student {
			var student models.Student
			err := tx.Where("person_id = ?", id).First(&student).Error
			if errors.Is(err, gorm.ErrRecordNotFound) {
				if err := tx.Create(&models.Student{PersonID: id}).Error; err != nil {
					return err
				}
			} else if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		if isUniqueViolation(err) {
			return nil, services.ErrDuplicate
		}
		return nil, err
	}

	return r.FindByID(ctx, id)
}

// Delete removes the specializations first, then the person.
func (r *PersonRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("person_id = ?", id).Delete(&models.Employee{}).Error; err != nil {
			return err
		}
		if err := tx.Where("person_id = ?", id).Delete(&models.Student{}).Error; err != nil {
			return err
		}
		result := tx.Delete(&models.Person{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return services.ErrNotFound
		}
		return nil
	})
}

func (r *PersonRepository) UpdatePassword(ctx context.Context, id uint, passwordHash string) error {
	result := r.db.WithContext(ctx).
		Model(&models.Person{}).
		Where("id = ?", id).
		Update("password", passwordHash)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return services.ErrNotFound
	}
	return nil
}

// ListEmployees returns every employee with its person loaded.
func (r *PersonRepository) ListEmployees(ctx context.Context) ([]models.Employee, error) {
	var employees []models.Employee
	err := r.db.WithContext(ctx).Preload("Person").Find(&employees).Error
	return employees, err
}

// FindEmployee loads one employee with its person.
func (r *PersonRepository) FindEmployee(ctx context.Context, id uint) (*models.Employee, error) {
	var employee models.Employee
	err := r.db.WithContext(ctx).Preload("Person").First(&employee, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, services.ErrNotFound
		}
		return nil, err
	}
	return &employee, nil
}

// isUniqueViolation matches postgres duplicate-key errors from either driver
// error type gorm may surface.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "23505"
	}
	return false
}
