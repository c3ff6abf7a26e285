// Package loader reads the three entity collections from a data directory
// and runs every element through normalization. Loads are fail-fast: a single
// malformed element aborts the whole load, there are no partial results.
package loader

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"enrollment-report/internal/apperr"
	"enrollment-report/internal/domain"
)

// Input file names, directory-relative.
const (
	CoursesFile     = "courses.json"
	UsersFile       = "users.json"
	EnrollmentsFile = "enrollments.json"
)

// Courses loads and validates courses.json.
func Courses(dataDir string) ([]domain.Course, error) {
	raw, err := readArray(filepath.Join(dataDir, CoursesFile))
	if err != nil {
		return nil, err
	}
	out := make([]domain.Course, 0, len(raw))
	for i, r := range raw {
		c, err := domain.NormalizeCourse(r)
		if err != nil {
			return nil, fmt.Errorf("%s element %d: %w", CoursesFile, i, err)
		}
		out = append(out, c)
	}
	return out, nil
}

// Users loads and validates users.json.
func Users(dataDir string) ([]domain.User, error) {
	raw, err := readArray(filepath.Join(dataDir, UsersFile))
	if err != nil {
		return nil, err
	}
	out := make([]domain.User, 0, len(raw))
	for i, r := range raw {
		u, err := domain.NormalizeUser(r)
		if err != nil {
			return nil, fmt.Errorf("%s element %d: %w", UsersFile, i, err)
		}
		out = append(out, u)
	}
	return out, nil
}

// Enrollments loads and validates enrollments.json. Advisory diagnostics for
// unrecognized roles go to warn.
func Enrollments(dataDir string, warn domain.WarnFunc) ([]domain.Enrollment, error) {
	raw, err := readArray(filepath.Join(dataDir, EnrollmentsFile))
	if err != nil {
		return nil, err
	}
	out := make([]domain.Enrollment, 0, len(raw))
	for i, r := range raw {
		e, err := domain.NormalizeEnrollment(r, warn)
		if err != nil {
			return nil, fmt.Errorf("%s element %d: %w", EnrollmentsFile, i, err)
		}
		out = append(out, e)
	}
	return out, nil
}

// readArray parses a UTF-8 JSON file whose top level must be an array of
// objects.
func readArray(path string) ([]domain.Raw, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, apperr.Wrap(err, apperr.CodeMissingFile, fmt.Sprintf("missing required data file: %s", path))
		}
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	var payload any
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, apperr.Wrap(err, apperr.CodeInvalidShape, fmt.Sprintf("parse %s", path))
	}
	arr, ok := payload.([]any)
	if !ok {
		return nil, apperr.Newf(apperr.CodeInvalidShape, "expected a JSON array in %s", path)
	}

	out := make([]domain.Raw, 0, len(arr))
	for i, el := range arr {
		obj, ok := el.(map[string]any)
		if !ok {
			return nil, apperr.Newf(apperr.CodeInvalidShape, "%s element %d is not an object", path, i)
		}
		out = append(out, domain.Raw(obj))
	}
	return out, nil
}
