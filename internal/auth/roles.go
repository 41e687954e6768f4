package auth

import "gym_manager/internal/models"

// Role is one entry in an identity's capability set.
type Role string

const (
	RoleAdmin        Role = "ADMIN"
	RoleReceptionist Role = "RECEPTIONIST"
	RoleTeacher      Role = "TEACHER"
	RoleTrainee      Role = "TRAINEE"
	RoleStudent      Role = "STUDENT"
)

// RoleSet is the capability set derived from a person's specializations.
// It is computed once at login and embedded in the session token.
type RoleSet []Role

// ResolveRoles projects a person's loaded specializations into its roles:
// the employee role if an Employee record is linked, plus STUDENT if a
// Student record is linked. A person with neither gets an empty set.
func ResolveRoles(person *models.Person) RoleSet {
	var roles RoleSet
	if person.Employee != nil {
		roles = append(roles, Role(person.Employee.Role))
	}
	if person.Student != nil {
		roles = append(roles, RoleStudent)
	}
	return roles
}

// RolesFromStrings rebuilds a RoleSet from token claims.
func RolesFromStrings(ss []string) RoleSet {
	roles := make(RoleSet, 0, len(ss))
	for _, s := range ss {
		roles = append(roles, Role(s))
	}
	return roles
}

// Strings returns the set in the wire representation used by token claims.
func (s RoleSet) Strings() []string {
	out := make([]string, 0, len(s))
	for _, r := range s {
		out = append(out, string(r))
	}
	return out
}

// Has reports whether r is in the set.
func (s RoleSet) Has(r Role) bool {
	for _, have := range s {
		if have == r {
			return true
		}
	}
	return false
}

// Satisfies reports whether the set grants an operation requiring any one of
// the given roles. ADMIN satisfies every requirement unconditionally.
func (s RoleSet) Satisfies(required ...Role) bool {
	if s.Has(RoleAdmin) {
		return true
	}
	for _, r := range required {
		if s.Has(r) {
			return true
		}
	}
	return false
}
