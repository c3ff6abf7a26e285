package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"enrollment-report/internal/config"
	"enrollment-report/internal/filter"
	"enrollment-report/internal/logging"
	"enrollment-report/internal/report"
	"enrollment-report/internal/sftpclient"
)

func main() {
	var (
		dataDir       = flag.String("data-dir", "./data", "directory containing courses.json, users.json, enrollments.json")
		outDir        = flag.String("out-dir", "./out", "output directory for CSV, HTML, and audit JSON")
		courseFilter  = flag.String("course-filter", "", "substring match on courseId or course name (case-insensitive)")
		includeInst   = flag.Bool("include-instructors", true, "include non-student roles")
		noIncludeInst = flag.Bool("no-include-instructors", false, "exclude non-student roles")
		includeStud   = flag.Bool("include-students", true, "include the Student role")
		noIncludeStud = flag.Bool("no-include-students", false, "exclude the Student role")
		onlyAvailable = flag.Bool("only-available", false, "keep only rows where course, user, and enrollment are all available")
		pdfOut        = flag.Bool("pdf", false, "also write a PDF rendition of the report")
		compressOut   = flag.Bool("compress", false, "also write a brotli-compressed copy of the CSV")
		uploadSFTP    = flag.Bool("sftp", false, "upload the generated artifacts via SFTP")
	)
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fatal(err)
	}
	logr, err := logging.New(cfg.Log)
	if err != nil {
		fatal(err)
	}
	defer logr.Sync() //nolint:errcheck

	opts := report.Options{
		DataDir: *dataDir,
		OutDir:  *outDir,
		Filters: filter.Params{
			OnlyAvailable:      *onlyAvailable,
			CourseFilter:       *courseFilter,
			IncludeInstructors: *includeInst && !*noIncludeInst,
			IncludeStudents:    *includeStud && !*noIncludeStud,
		},
		PDF:      *pdfOut,
		Compress: *compressOut,
	}

	art, err := report.NewGenerator(logr).Run(opts)
	if err != nil {
		fatal(err)
	}
	fmt.Printf("Wrote: %s | %s | %s\n", art.CSV, art.HTML, art.Audit)

	if *uploadSFTP {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
		defer cancel()

		if err := sftpclient.UploadFiles(ctx, cfg.SFTP, art.Paths()); err != nil {
			fatal(err)
		}
		logr.Sugar().Infow("uploaded artifacts",
			"host", cfg.SFTP.Host,
			"dir", cfg.SFTP.RemoteDir,
			"files", len(art.Paths()),
		)
	}
}

// fatal reports a single-line message and exits non-zero. All failure kinds
// funnel through here so partial runs always surface the same way.
func fatal(err error) {
	fmt.Fprintln(os.Stderr, "error:", err)
	os.Exit(1)
}
