package auth

import (
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"gym_manager/internal/models"
)

const DefaultTokenTTL = 120 * time.Hour // 5 days

var (
	ErrSigningKeyMissing = errors.New("jwt signing key is not configured")
	ErrTokenMissing      = errors.New("missing bearer token")
	ErrTokenMalformed    = errors.New("malformed bearer token")
	ErrTokenExpired      = errors.New("token expired")
	ErrTokenInvalid      = errors.New("invalid token")
)

// Claims is the session credential payload. The tenure and employee/student
// ids are a snapshot taken at login; they are not revalidated per request and
// can go stale until the token expires or the person logs in again.
type Claims struct {
	PersonID   uint     `json:"id"`
	Name       string   `json:"name"`
	Email      string   `json:"email"`
	Roles      []string `json:"roles"`
	CPF        string   `json:"cpf"`
	Tenure     *int     `json:"tenure,omitempty"`
	EmployeeID *uint    `json:"employeeId,omitempty"`
	StudentID  *uint    `json:"studentId,omitempty"`
	jwt.RegisteredClaims
}

// RoleSet rebuilds the capability set embedded at issuance time.
func (c *Claims) RoleSet() RoleSet {
	return RolesFromStrings(c.Roles)
}

// Issuer signs and verifies session tokens with a shared HS256 secret.
type Issuer struct {
	secret []byte
	ttl    time.Duration
}

func NewIssuer(secret string, ttl time.Duration) (*Issuer, error) {
	if secret == "" {
		return nil, ErrSigningKeyMissing
	}
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}
	return &Issuer{secret: []byte(secret), ttl: ttl}, nil
}

// Issue packages the person and its derived roles into a signed, time-bounded
// token. The caller must have verified the person's password first.
func (i *Issuer) Issue(person *models.Person, roles RoleSet) (string, *Claims, error) {
	now := time.Now().UTC()
	claims := &Claims{
		PersonID: person.ID,
		Name:     person.Name,
		Email:    person.Email,
		Roles:    roles.Strings(),
		CPF:      person.CPF,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(i.ttl)),
		},
	}
	if person.Employee != nil {
		tenure := person.Employee.Tenure
		employeeID := person.Employee.ID
		claims.Tenure = &tenure
		claims.EmployeeID = &employeeID
	}
	if person.Student != nil {
		studentID := person.Student.ID
		claims.StudentID = &studentID
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(i.secret)
	if err != nil {
		return "", nil, err
	}
	return signed, claims, nil
}

// Verify parses and validates a raw token and returns the embedded identity.
func (i *Issuer) Verify(raw string) (*Claims, error) {
	if raw == "" {
		return nil, ErrTokenMissing
	}
	token, err := jwt.ParseWithClaims(raw, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrTokenInvalid
		}
		return i.secret, nil
	})
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return nil, ErrTokenExpired
		case errors.Is(err, jwt.ErrTokenMalformed):
			return nil, ErrTokenMalformed
		default:
			return nil, ErrTokenInvalid
		}
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrTokenInvalid
	}
	return claims, nil
}

// BearerToken extracts the raw token from an Authorization header value.
func BearerToken(header string) (string, error) {
	if header == "" {
		return "", ErrTokenMissing
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
		return "", ErrTokenMalformed
	}
	return parts[1], nil
}
