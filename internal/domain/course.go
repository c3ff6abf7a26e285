package domain

// Course is the canonical representation of one course record. ID is the
// internal identity; CourseID is the external display code students see.
type Course struct {
	ID          string
	CourseID    string
	Name        string
	Description string
	Available   bool
}

// NormalizeCourse builds a Course from one raw record, or fails on the first
// structural problem.
func NormalizeCourse(r Raw) (Course, error) {
	id, err := stringField(r, KindCourse, "id")
	if err != nil {
		return Course{}, err
	}
	courseID, err := stringField(r, KindCourse, "courseId")
	if err != nil {
		return Course{}, err
	}
	name, err := stringField(r, KindCourse, "name")
	if err != nil {
		return Course{}, err
	}
	desc, err := optionalString(r, KindCourse, "description")
	if err != nil {
		return Course{}, err
	}

	return Course{
		ID:          id,
		CourseID:    courseID,
		Name:        name,
		Description: desc,
		Available:   CoerceAvailable(availableValue(r)),
	}, nil
}
