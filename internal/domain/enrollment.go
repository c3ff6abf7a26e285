package domain

// Enrollment links a user to a course with a role. UserID and CourseID are
// foreign keys against User.ID and Course.ID.
type Enrollment struct {
	ID        string
	UserID    string
	CourseID  string
	Role      string
	Type      string
	Available bool
}

// RecognizedRoles is advisory only: an enrollment whose role falls outside
// this set is accepted unchanged, with a warning emitted through the sink.
var RecognizedRoles = map[string]struct{}{
	"Instructor":        {},
	"TeachingAssistant": {},
	"Student":           {},
	"Grader":            {},
	"Observer":          {},
}

// NormalizeEnrollment builds an Enrollment from one raw record. Unknown role
// or type values are never rejected, only reported to warn.
func NormalizeEnrollment(r Raw, warn WarnFunc) (Enrollment, error) {
	id, err := stringField(r, KindEnrollment, "id")
	if err != nil {
		return Enrollment{}, err
	}
	userID, err := stringField(r, KindEnrollment, "userId")
	if err != nil {
		return Enrollment{}, err
	}
	courseID, err := stringField(r, KindEnrollment, "courseId")
	if err != nil {
		return Enrollment{}, err
	}
	role, err := stringField(r, KindEnrollment, "role")
	if err != nil {
		return Enrollment{}, err
	}
	if _, ok := RecognizedRoles[role]; !ok {
		warn.emit("unknown role %q on enrollment %s", role, id)
	}

	// Optional legacy field carried through for traceability.
	typ, err := optionalString(r, KindEnrollment, "type")
	if err != nil {
		return Enrollment{}, err
	}
	if typ != "" {
		if _, ok := RecognizedRoles[typ]; !ok {
			warn.emit("unknown type %q on enrollment %s", typ, id)
		}
	}

	return Enrollment{
		ID:        id,
		UserID:    userID,
		CourseID:  courseID,
		Role:      role,
		Type:      typ,
		Available: CoerceAvailable(availableValue(r)),
	}, nil
}
