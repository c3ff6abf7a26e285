// Package audit builds the machine-readable record of one report run:
// parameters in, sizes out, and the filters that were active.
package audit

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
)

// Record is serialized to audit.json after a successful run.
type Record struct {
	RunID       string      `json:"run_id"`
	Timestamp   string      `json:"timestamp"`
	Args        Args        `json:"args"`
	InputSizes  InputSizes  `json:"input_sizes"`
	OutputSizes OutputSizes `json:"output_sizes"`
	Filters     Filters     `json:"filters"`
}

// Args restates the run parameters as given by the caller.
type Args struct {
	DataDir            string `json:"data_dir"`
	OutDir             string `json:"out_dir"`
	CourseFilter       string `json:"course_filter"`
	IncludeInstructors bool   `json:"include_instructors"`
	IncludeStudents    bool   `json:"include_students"`
	OnlyAvailable      bool   `json:"only_available"`
}

// InputSizes counts loaded entities per kind, pre-filter.
type InputSizes struct {
	Courses     int `json:"courses"`
	Users       int `json:"users"`
	Enrollments int `json:"enrollments"`
}

// OutputSizes counts post-filter results. DroppedEnrollments surfaces
// referential gaps the join skipped over without failing the run.
type OutputSizes struct {
	CSVRows            int `json:"csv_rows"`
	UniqueCourses      int `json:"unique_courses"`
	UniqueUsers        int `json:"unique_users"`
	DroppedEnrollments int `json:"dropped_enrollments"`
}

// Filters is a redundant but explicit restatement of the active filters.
type Filters struct {
	OnlyAvailable bool   `json:"only_available"`
	CourseFilter  string `json:"course_filter"`
	RolesIncluded Roles  `json:"roles_included"`
}

// Roles nests the two role-inclusion toggles.
type Roles struct {
	Instructors bool `json:"instructors"`
	Students    bool `json:"students"`
}

// New stamps a fresh record with a run id and the given timestamp.
func New(timestamp string, args Args, in InputSizes, out OutputSizes) Record {
	return Record{
		RunID:       uuid.NewString(),
		Timestamp:   timestamp,
		Args:        args,
		InputSizes:  in,
		OutputSizes: out,
		Filters: Filters{
			OnlyAvailable: args.OnlyAvailable,
			CourseFilter:  args.CourseFilter,
			RolesIncluded: Roles{
				Instructors: args.IncludeInstructors,
				Students:    args.IncludeStudents,
			},
		},
	}
}

// Encode renders the record as indented UTF-8 JSON.
func (r Record) Encode() ([]byte, error) {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode audit record: %w", err)
	}
	return append(data, '\n'), nil
}
