package join

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"enrollment-report/internal/domain"
)

func course(id, courseID, name string, available bool) domain.Course {
	return domain.Course{ID: id, CourseID: courseID, Name: name, Available: available}
}

func user(id, userName, given, family string, available bool) domain.User {
	return domain.User{
		ID: id, UserName: userName, Given: given, Family: family,
		Email: userName + "@school.edu", Available: available,
	}
}

func enrollment(id, userID, courseID, role string, available bool) domain.Enrollment {
	return domain.Enrollment{ID: id, UserID: userID, CourseID: courseID, Role: role, Available: available}
}

func TestRowsInnerJoin(t *testing.T) {
	courses := []domain.Course{course("_c1_1", "CS101-2025FA", "Intro to CS", true)}
	users := []domain.User{user("_u1_1", "inst1", "Ina", "Structor", true)}
	enrollments := []domain.Enrollment{enrollment("_e1_1", "_u1_1", "_c1_1", "Instructor", true)}

	res := Rows(courses, users, enrollments)
	require.Len(t, res.Rows, 1)
	assert.Zero(t, res.Dropped)

	r := res.Rows[0]
	assert.Equal(t, "_e1_1", r.EnrollmentID)
	assert.Equal(t, "_c1_1", r.CourseInternalID)
	assert.Equal(t, "CS101-2025FA", r.CourseID)
	assert.Equal(t, "Intro to CS", r.CourseName)
	assert.Equal(t, "2025FA", r.Term)
	assert.Equal(t, "Ina Structor", r.UserFullName)
	assert.Equal(t, "CS101-2025FA – Intro to CS", r.CourseLabel)
	assert.Equal(t, "inst1@school.edu", r.Email)
}

func TestRowsDropsUnresolvedForeignKeys(t *testing.T) {
	courses := []domain.Course{course("_c1_1", "CS101-2025FA", "Intro to CS", true)}
	users := []domain.User{user("_u1_1", "inst1", "Ina", "Structor", true)}
	enrollments := []domain.Enrollment{
		enrollment("_e1_1", "_u1_1", "_c1_1", "Instructor", true),
		enrollment("_e2_1", "_ghost_", "_c1_1", "Student", true),
		enrollment("_e3_1", "_u1_1", "_ghost_", "Student", true),
	}

	res := Rows(courses, users, enrollments)
	require.Len(t, res.Rows, 1)
	assert.Equal(t, 2, res.Dropped)

	// Referential integrity: every surviving row resolves both keys.
	for _, r := range res.Rows {
		assert.Equal(t, "_u1_1", r.UserID)
		assert.Equal(t, "_c1_1", r.CourseInternalID)
	}
}

func TestRowsFirstMatchWinsOnDuplicateKeys(t *testing.T) {
	courses := []domain.Course{
		course("_c1_1", "CS101-2025FA", "First Version", true),
		course("_c1_1", "CS101-2025FA", "Second Version", false),
	}
	users := []domain.User{
		user("_u1_1", "first", "First", "User", true),
		user("_u1_1", "second", "Second", "User", false),
	}
	enrollments := []domain.Enrollment{enrollment("_e1_1", "_u1_1", "_c1_1", "Student", true)}

	res := Rows(courses, users, enrollments)
	require.Len(t, res.Rows, 1)
	assert.Equal(t, "First Version", res.Rows[0].CourseName)
	assert.Equal(t, "first", res.Rows[0].UserName)
	assert.True(t, res.Rows[0].CourseAvailable)
	assert.True(t, res.Rows[0].UserAvailable)
}

func TestRowsEmptyInputs(t *testing.T) {
	testCases := []struct {
		name        string
		courses     []domain.Course
		users       []domain.User
		enrollments []domain.Enrollment
	}{
		{"all empty", nil, nil, nil},
		{"no courses", nil, []domain.User{user("_u1_1", "u", "U", "One", true)},
			[]domain.Enrollment{enrollment("_e1_1", "_u1_1", "_c1_1", "Student", true)}},
		{"no users", []domain.Course{course("_c1_1", "CS101", "CS", true)}, nil,
			[]domain.Enrollment{enrollment("_e1_1", "_u1_1", "_c1_1", "Student", true)}},
		{"no enrollments", []domain.Course{course("_c1_1", "CS101", "CS", true)},
			[]domain.User{user("_u1_1", "u", "U", "One", true)}, nil},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			res := Rows(tc.courses, tc.users, tc.enrollments)
			assert.Empty(t, res.Rows)
		})
	}
}

func TestRowsTermEmptyWithoutHyphen(t *testing.T) {
	courses := []domain.Course{course("_c1_1", "CS101", "Intro to CS", true)}
	users := []domain.User{user("_u1_1", "inst1", "Ina", "Structor", true)}
	enrollments := []domain.Enrollment{enrollment("_e1_1", "_u1_1", "_c1_1", "Instructor", true)}

	res := Rows(courses, users, enrollments)
	require.Len(t, res.Rows, 1)
	assert.Empty(t, res.Rows[0].Term)
}
