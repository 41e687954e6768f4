package services

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"gym_manager/internal/auth"
	"gym_manager/internal/models"
)

// PersonFinder is the slice of the persistence layer the login flow needs.
type PersonFinder interface {
	FindByEmail(ctx context.Context, email string) (*models.Person, error)
}

// AuthService runs the login protocol: credential check, role resolution,
// token issuance.
type AuthService struct {
	persons PersonFinder
	issuer  *auth.Issuer
}

func NewAuthService(persons PersonFinder, issuer *auth.Issuer) *AuthService {
	return &AuthService{persons: persons, issuer: issuer}
}

// Login verifies the e-mail/password pair and, on success, returns the person
// with specializations loaded, the derived role set and a signed session
// token. Unknown e-mail and password mismatch both yield ErrInvalidCredentials.
func (s *AuthService) Login(ctx context.Context, email, password string) (*models.Person, auth.RoleSet, string, error) {
	person, err := s.persons.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, nil, "", ErrInvalidCredentials
		}
		return nil, nil, "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(person.Password), []byte(password)); err != nil {
		return nil, nil, "", ErrInvalidCredentials
	}

	roles := auth.ResolveRoles(person)
	token, _, err := s.issuer.Issue(person, roles)
	if err != nil {
		return nil, nil, "", err
	}
	return person, roles, token, nil
}

// HashPassword wraps the one-way hash used for stored credentials.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
