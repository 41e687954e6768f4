package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"gym_manager/internal/models"
)

func testPerson() *models.Person {
	return &models.Person{
		Model: gorm.Model{ID: 7},
		Name:  "Professor João",
		Email: "joao.prof@academia.com",
		CPF:   "444.555.666-77",
		Employee: &models.Employee{
			Model:    gorm.Model{ID: 3},
			PersonID: 7,
			Role:     models.RoleTeacher,
			Tenure:   12,
		},
		Student: &models.Student{
			Model:    gorm.Model{ID: 9},
			PersonID: 7,
		},
	}
}

func TestIssueVerifyRoundTrip(t *testing.T) {
	issuer, err := NewIssuer("test-secret", time.Hour)
	require.NoError(t, err)

	person := testPerson()
	roles := ResolveRoles(person)

	token, issued, err := issuer.Issue(person, roles)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := issuer.Verify(token)
	require.NoError(t, err)

	assert.Equal(t, person.ID, claims.PersonID)
	assert.Equal(t, person.Name, claims.Name)
	assert.Equal(t, person.Email, claims.Email)
	assert.Equal(t, person.CPF, claims.CPF)
	assert.Equal(t, roles.Strings(), claims.Roles)
	require.NotNil(t, claims.Tenure)
	assert.Equal(t, 12, *claims.Tenure)
	require.NotNil(t, claims.EmployeeID)
	assert.Equal(t, uint(3), *claims.EmployeeID)
	require.NotNil(t, claims.StudentID)
	assert.Equal(t, uint(9), *claims.StudentID)
	assert.Equal(t, issued.ExpiresAt.Time, claims.ExpiresAt.Time)
}

func TestVerifyExpiredToken(t *testing.T) {
	// Bypass the constructor's default so the token is already expired
	issuer := &Issuer{secret: []byte("test-secret"), ttl: -time.Minute}

	token, _, err := issuer.Issue(testPerson(), RoleSet{RoleTeacher})
	require.NoError(t, err)

	_, err = issuer.Verify(token)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestVerifyWrongSecret(t *testing.T) {
	signer, err := NewIssuer("secret-a", time.Hour)
	require.NoError(t, err)
	verifier, err := NewIssuer("secret-b", time.Hour)
	require.NoError(t, err)

	token, _, err := signer.Issue(testPerson(), RoleSet{RoleTeacher})
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestVerifyGarbage(t *testing.T) {
	issuer, err := NewIssuer("test-secret", time.Hour)
	require.NoError(t, err)

	_, err = issuer.Verify("not-a-token")
	assert.ErrorIs(t, err, ErrTokenMalformed)

	_, err = issuer.Verify("")
	assert.ErrorIs(t, err, ErrTokenMissing)
}

func TestNewIssuerRequiresSecret(t *testing.T) {
	_, err := NewIssuer("", time.Hour)
	assert.ErrorIs(t, err, ErrSigningKeyMissing)
}

func TestBearerToken(t *testing.T) {
	token, err := BearerToken("Bearer abc.def.ghi")
	require.NoError(t, err)
	assert.Equal(t, "abc.def.ghi", token)

	// Scheme is case-insensitive
	token, err = BearerToken("bearer abc")
	require.NoError(t, err)
	assert.Equal(t, "abc", token)

	_, err = BearerToken("")
	assert.ErrorIs(t, err, ErrTokenMissing)

	_, err = BearerToken("Basic abc")
	assert.ErrorIs(t, err, ErrTokenMalformed)

	_, err = BearerToken("Bearer ")
	assert.ErrorIs(t, err, ErrTokenMalformed)
}
