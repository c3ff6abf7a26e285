// Package join combines validated courses, users, and enrollments into
// denormalized rows with inner-join semantics.
package join

import "enrollment-report/internal/domain"

// Result carries the joined rows plus the number of enrollments dropped for
// unresolved foreign keys. Referential gaps are common in exported snapshots,
// so they are counted, not errored.
type Result struct {
	Rows    []domain.Row
	Dropped int
}

// Rows joins Enrollment ⋈ User on userId, then ⋈ Course on courseId. An
// enrollment referencing a missing user or course is dropped silently. On
// duplicate user or course ids the first occurrence wins, keeping output
// deterministic for a given input order. Derived fields are computed once per
// row, after the join, so no join or filter decision ever sees them.
func Rows(courses []domain.Course, users []domain.User, enrollments []domain.Enrollment) Result {
	usersByID := map[string]domain.User{}
	for _, u := range users {
		if _, ok := usersByID[u.ID]; ok {
			continue
		}
		usersByID[u.ID] = u
	}

	coursesByID := map[string]domain.Course{}
	for _, c := range courses {
		if _, ok := coursesByID[c.ID]; ok {
			continue
		}
		coursesByID[c.ID] = c
	}

	res := Result{Rows: make([]domain.Row, 0, len(enrollments))}
	for _, e := range enrollments {
		u, ok := usersByID[e.UserID]
		if !ok {
			res.Dropped++
			continue
		}
		c, ok := coursesByID[e.CourseID]
		if !ok {
			res.Dropped++
			continue
		}
		res.Rows = append(res.Rows, derive(e, u, c))
	}
	return res
}

func derive(e domain.Enrollment, u domain.User, c domain.Course) domain.Row {
	return domain.Row{
		EnrollmentID:     e.ID,
		CourseInternalID: c.ID,
		CourseID:         c.CourseID,
		CourseName:       c.Name,
		Term:             domain.TermOf(c.CourseID),
		UserID:           u.ID,
		UserName:         u.UserName,
		Given:            u.Given,
		Family:           u.Family,
		Email:            u.Email,
		Role:             e.Role,

		UserFullName: domain.FullName(u.Given, u.Family),
		CourseLabel:  domain.Label(c.CourseID, c.Name),

		EnrollmentAvailable: e.Available,
		UserAvailable:       u.Available,
		CourseAvailable:     c.Available,
	}
}
