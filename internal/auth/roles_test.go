package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"gym_manager/internal/models"
)

func TestResolveRoles(t *testing.T) {
	cases := []struct {
		name   string
		person models.Person
		want   []string
	}{
		{
			name:   "no specializations",
			person: models.Person{},
			want:   nil,
		},
		{
			name:   "employee only",
			person: models.Person{Employee: &models.Employee{Role: models.RoleTeacher}},
			want:   []string{"TEACHER"},
		},
		{
			name:   "student only",
			person: models.Person{Student: &models.Student{}},
			want:   []string{"STUDENT"},
		},
		{
			name: "employee and student",
			person: models.Person{
				Employee: &models.Employee{Role: models.RoleReceptionist},
				Student:  &models.Student{},
			},
			want: []string{"RECEPTIONIST", "STUDENT"},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			roles := ResolveRoles(&tc.person)
			if tc.want == nil {
				assert.Empty(t, roles)
				return
			}
			assert.Equal(t, tc.want, roles.Strings())
		})
	}
}

func TestSatisfiesIntersection(t *testing.T) {
	teacher := RoleSet{RoleTeacher}

	assert.True(t, teacher.Satisfies(RoleTeacher))
	assert.True(t, teacher.Satisfies(RoleReceptionist, RoleTeacher))
	assert.False(t, teacher.Satisfies(RoleReceptionist, RoleAdmin))
	assert.False(t, teacher.Satisfies())
}

func TestSatisfiesAdminBypass(t *testing.T) {
	admin := RoleSet{RoleAdmin}

	// ADMIN passes checks that do not even mention it
	assert.True(t, admin.Satisfies(RoleReceptionist))
	assert.True(t, admin.Satisfies(RoleStudent))
	assert.True(t, admin.Satisfies())
}

func TestEmptySetGrantsNothing(t *testing.T) {
	var none RoleSet

	assert.False(t, none.Satisfies(RoleStudent))
	assert.False(t, none.Satisfies(RoleAdmin))
	assert.False(t, none.Has(RoleAdmin))
}
