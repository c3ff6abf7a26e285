package domain

import "strings"

// Row is one denormalized enrollment joined with its resolved user and
// course. Rows are derived per run and never persisted.
type Row struct {
	EnrollmentID     string
	CourseInternalID string
	CourseID         string
	CourseName       string
	Term             string
	UserID           string
	UserName         string
	Given            string
	Family           string
	Email            string
	Role             string

	UserFullName string
	CourseLabel  string

	EnrollmentAvailable bool
	UserAvailable       bool
	CourseAvailable     bool
}

// FullName joins given and family names with a single space. Either side may
// be empty.
func FullName(given, family string) string {
	return strings.TrimSpace(given + " " + family)
}

// Label renders the display label for a course, "courseId – courseName".
func Label(courseID, courseName string) string {
	return courseID + " – " + courseName
}

// TermOf extracts the term code from a course display id: the substring after
// the last hyphen, or "" when the id carries no hyphen.
func TermOf(courseID string) string {
	i := strings.LastIndex(courseID, "-")
	if i < 0 {
		return ""
	}
	return courseID[i+1:]
}
