package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"gym_manager/internal/auth"
	"gym_manager/internal/models"
)

type stubPersonFinder struct {
	persons map[string]*models.Person
}

func (f *stubPersonFinder) FindByEmail(_ context.Context, email string) (*models.Person, error) {
	person, ok := f.persons[email]
	if !ok {
		return nil, ErrNotFound
	}
	return person, nil
}

func testLoginFixture(t *testing.T) (*AuthService, *auth.Issuer) {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("123456"), bcrypt.MinCost)
	require.NoError(t, err)

	person := &models.Person{
		Model:    gorm.Model{ID: 7},
		Name:     "Aluna Sofia",
		Email:    "sofia.aluna@email.com",
		CPF:      "888.999.000-11",
		Password: string(hash),
		Student:  &models.Student{Model: gorm.Model{ID: 4}, PersonID: 7},
	}

	issuer, err := auth.NewIssuer("test-secret", time.Hour)
	require.NoError(t, err)

	finder := &stubPersonFinder{persons: map[string]*models.Person{person.Email: person}}
	return NewAuthService(finder, issuer), issuer
}

func TestLoginIssuesVerifiableToken(t *testing.T) {
	service, issuer := testLoginFixture(t)

	person, roles, token, err := service.Login(context.Background(), "sofia.aluna@email.com", "123456")
	require.NoError(t, err)

	assert.Equal(t, uint(7), person.ID)
	assert.Equal(t, []string{"STUDENT"}, roles.Strings())

	claims, err := issuer.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, person.ID, claims.PersonID)
	assert.Equal(t, roles.Strings(), claims.Roles)
	require.NotNil(t, claims.StudentID)
	assert.Equal(t, uint(4), *claims.StudentID)
}

func TestLoginFailuresAreIndistinguishable(t *testing.T) {
	service, _ := testLoginFixture(t)

	_, _, _, unknownErr := service.Login(context.Background(), "nobody@email.com", "123456")
	_, _, _, mismatchErr := service.Login(context.Background(), "sofia.aluna@email.com", "wrong")

	// Same sentinel for unknown e-mail and bad password, so responses
	// cannot be used to enumerate accounts.
	assert.ErrorIs(t, unknownErr, ErrInvalidCredentials)
	assert.ErrorIs(t, mismatchErr, ErrInvalidCredentials)
	assert.Equal(t, unknownErr.Error(), mismatchErr.Error())
}
