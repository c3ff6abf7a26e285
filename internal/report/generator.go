package report

import (
	"time"

	"go.uber.org/zap"

	"enrollment-report/internal/audit"
	"enrollment-report/internal/domain"
	"enrollment-report/internal/export"
	"enrollment-report/internal/filter"
	"enrollment-report/internal/join"
	"enrollment-report/internal/loader"
	"enrollment-report/internal/storage"
)

// Artifact file names inside the output directory.
const (
	CSVName    = "enrollment_report.csv"
	HTMLName   = "enrollment_report.html"
	PDFName    = "enrollment_report.pdf"
	AuditName  = "audit.json"
	BrotliName = CSVName + ".br"
)

// Options are the parameters of one run.
type Options struct {
	DataDir string
	OutDir  string
	Filters filter.Params

	// Optional renditions.
	PDF      bool
	Compress bool
}

// Artifacts holds the full paths of everything a run wrote. PDF and Brotli
// are empty when the rendition was not requested.
type Artifacts struct {
	CSV    string
	HTML   string
	Audit  string
	PDF    string
	Brotli string
}

// Paths lists the written files in a stable order.
func (a Artifacts) Paths() []string {
	paths := []string{a.CSV, a.HTML, a.Audit}
	if a.PDF != "" {
		paths = append(paths, a.PDF)
	}
	if a.Brotli != "" {
		paths = append(paths, a.Brotli)
	}
	return paths
}

// Generator runs the load → join → filter → assemble → write pipeline.
// Each Run is independent and idempotent for identical inputs and options.
type Generator struct {
	log *zap.SugaredLogger
	now func() time.Time
}

// NewGenerator builds a Generator logging through the given zap logger.
func NewGenerator(log *zap.Logger) *Generator {
	return &Generator{log: log.Sugar(), now: time.Now}
}

// Run generates all artifacts for one report. Every rendition is produced in
// memory before the first byte hits disk, so a fatal load or render error
// leaves no partial output behind.
func (g *Generator) Run(opts Options) (Artifacts, error) {
	warn := domain.WarnFunc(func(format string, args ...any) {
		g.log.Warnf(format, args...)
	})

	courses, err := loader.Courses(opts.DataDir)
	if err != nil {
		return Artifacts{}, err
	}
	users, err := loader.Users(opts.DataDir)
	if err != nil {
		return Artifacts{}, err
	}
	enrollments, err := loader.Enrollments(opts.DataDir, warn)
	if err != nil {
		return Artifacts{}, err
	}

	joined := join.Rows(courses, users, enrollments)
	rows := filter.Apply(joined.Rows, opts.Filters)

	table := Table(rows)
	summary := Summarize(rows)
	generatedAt := g.now().Format("2006-01-02T15:04:05-07:00")

	csvData, err := export.RenderCSV(table)
	if err != nil {
		return Artifacts{}, err
	}
	htmlData, err := RenderHTML(RenderRows(rows), summary, generatedAt)
	if err != nil {
		return Artifacts{}, err
	}

	rec := audit.New(generatedAt,
		audit.Args{
			DataDir:            opts.DataDir,
			OutDir:             opts.OutDir,
			CourseFilter:       opts.Filters.CourseFilter,
			IncludeInstructors: opts.Filters.IncludeInstructors,
			IncludeStudents:    opts.Filters.IncludeStudents,
			OnlyAvailable:      opts.Filters.OnlyAvailable,
		},
		audit.InputSizes{
			Courses:     len(courses),
			Users:       len(users),
			Enrollments: len(enrollments),
		},
		audit.OutputSizes{
			CSVRows:            len(rows),
			UniqueCourses:      summary.Courses,
			UniqueUsers:        summary.Users,
			DroppedEnrollments: joined.Dropped,
		},
	)
	auditData, err := rec.Encode()
	if err != nil {
		return Artifacts{}, err
	}

	var pdfData, brData []byte
	if opts.PDF {
		if pdfData, err = export.RenderPDF(table, "Enrollment Report"); err != nil {
			return Artifacts{}, err
		}
	}
	if opts.Compress {
		if brData, err = export.Compress(csvData); err != nil {
			return Artifacts{}, err
		}
	}

	// Everything rendered; only now touch the filesystem.
	dir, err := storage.Open(opts.OutDir)
	if err != nil {
		return Artifacts{}, err
	}

	var art Artifacts
	if art.CSV, err = dir.Save(CSVName, csvData); err != nil {
		return Artifacts{}, err
	}
	if art.HTML, err = dir.Save(HTMLName, htmlData); err != nil {
		return Artifacts{}, err
	}
	if art.Audit, err = dir.Save(AuditName, auditData); err != nil {
		return Artifacts{}, err
	}
	if opts.PDF {
		if art.PDF, err = dir.Save(PDFName, pdfData); err != nil {
			return Artifacts{}, err
		}
	}
	if opts.Compress {
		if art.Brotli, err = dir.Save(BrotliName, brData); err != nil {
			return Artifacts{}, err
		}
	}

	g.log.Infow("report generated",
		"rows", len(rows),
		"courses", summary.Courses,
		"users", summary.Users,
		"dropped_enrollments", joined.Dropped,
		"run_id", rec.RunID,
	)
	return art, nil
}
