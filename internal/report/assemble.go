// Package report turns filtered rows into the run's artifacts: the tabular
// CSV projection, the render-ready row set for the HTML document, and the
// summary counts.
package report

import (
	"enrollment-report/internal/domain"
	"enrollment-report/internal/export"
)

// CSVColumns is the export column set. Keep header order EXACT: downstream
// consumers key on position as well as name.
var CSVColumns = []string{
	"courseInternalId",
	"courseId",
	"courseName",
	"term",
	"userId",
	"userName",
	"userFullName",
	"email",
	"role",
	"enrollmentAvailable",
	"userAvailable",
	"courseAvailable",
}

// YesNo renders a boolean the way the upstream LMS displays availability.
func YesNo(v bool) string {
	if v {
		return "Yes"
	}
	return "No"
}

// Table projects rows into the CSV dataset, availability as Yes/No strings.
func Table(rows []domain.Row) export.Dataset {
	out := export.Dataset{Headers: CSVColumns, Rows: make([]map[string]string, 0, len(rows))}
	for _, r := range rows {
		out.Rows = append(out.Rows, map[string]string{
			"courseInternalId":    r.CourseInternalID,
			"courseId":            r.CourseID,
			"courseName":          r.CourseName,
			"term":                r.Term,
			"userId":              r.UserID,
			"userName":            r.UserName,
			"userFullName":        r.UserFullName,
			"email":               r.Email,
			"role":                r.Role,
			"enrollmentAvailable": YesNo(r.EnrollmentAvailable),
			"userAvailable":       YesNo(r.UserAvailable),
			"courseAvailable":     YesNo(r.CourseAvailable),
		})
	}
	return out
}

// RenderRow is the reduced shape handed to the document renderer.
// Availability stays boolean here; the template decides presentation.
type RenderRow struct {
	CourseLabel         string
	Term                string
	UserFullName        string
	Role                string
	EnrollmentAvailable bool
	UserAvailable       bool
	CourseAvailable     bool
}

// RenderRows projects rows for the document renderer.
func RenderRows(rows []domain.Row) []RenderRow {
	out := make([]RenderRow, 0, len(rows))
	for _, r := range rows {
		out = append(out, RenderRow{
			CourseLabel:         r.CourseLabel,
			Term:                r.Term,
			UserFullName:        r.UserFullName,
			Role:                r.Role,
			EnrollmentAvailable: r.EnrollmentAvailable,
			UserAvailable:       r.UserAvailable,
			CourseAvailable:     r.CourseAvailable,
		})
	}
	return out
}

// Summary holds the distinct and total counts shown on the report header.
type Summary struct {
	Courses     int
	Users       int
	Enrollments int
}

// Summarize counts distinct courses, distinct users, and total rows. Empty
// input yields the zero Summary.
func Summarize(rows []domain.Row) Summary {
	courses := map[string]struct{}{}
	users := map[string]struct{}{}
	for _, r := range rows {
		courses[r.CourseInternalID] = struct{}{}
		users[r.UserID] = struct{}{}
	}
	return Summary{Courses: len(courses), Users: len(users), Enrollments: len(rows)}
}
