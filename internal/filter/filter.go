// Package filter narrows joined rows by availability, course substring, and
// role membership. The three categories compose as a logical AND and are
// applied in a fixed order so results stay deterministic.
package filter

import (
	"strings"

	"enrollment-report/internal/domain"
)

// Params holds the four user-selected filter toggles. The zero value of the
// role flags is NOT the default the CLI exposes: both default to true there.
type Params struct {
	OnlyAvailable      bool
	CourseFilter       string
	IncludeInstructors bool
	IncludeStudents    bool
}

// Apply returns the subset of rows passing every active filter. Order is
// availability, then course substring, then roles.
func Apply(rows []domain.Row, p Params) []domain.Row {
	out := rows

	if p.OnlyAvailable {
		out = keep(out, func(r domain.Row) bool {
			return r.CourseAvailable && r.UserAvailable && r.EnrollmentAvailable
		})
	}

	if needle := strings.ToLower(strings.TrimSpace(p.CourseFilter)); needle != "" {
		out = keep(out, func(r domain.Row) bool {
			return strings.Contains(strings.ToLower(r.CourseID), needle) ||
				strings.Contains(strings.ToLower(r.CourseName), needle)
		})
	}

	// Both role flags on means no role filtering at all. The shortcut is
	// equivalent to evaluating the OR for every row: each row is either a
	// student or a non-student, so one side always matches.
	if !(p.IncludeInstructors && p.IncludeStudents) {
		out = keep(out, func(r domain.Row) bool {
			return (p.IncludeStudents && IsStudent(r.Role)) ||
				(p.IncludeInstructors && !IsStudent(r.Role))
		})
	}

	return out
}

// IsStudent reports whether a role counts as "student": a case-insensitive
// equality. Every other value, recognized or not, is non-student.
func IsStudent(role string) bool {
	return strings.EqualFold(role, "Student")
}

func keep(rows []domain.Row, pred func(domain.Row) bool) []domain.Row {
	out := make([]domain.Row, 0, len(rows))
	for _, r := range rows {
		if pred(r) {
			out = append(out, r)
		}
	}
	return out
}
