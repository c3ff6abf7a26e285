package report

import (
	"bytes"
	"fmt"
	"html/template"
)

// reportTemplate is the HTML rendition of the enrollment report. It receives
// the render rows, the summary, and the generation timestamp; availability
// cells reuse the Yes/No convention of the CSV export.
const reportTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Enrollment Report</title>
<style>
body { font-family: sans-serif; margin: 2em; }
table { border-collapse: collapse; width: 100%; }
th, td { border: 1px solid #ccc; padding: 4px 8px; text-align: left; }
th { background: #f0f0f0; }
.summary { color: #444; }
.generated { color: #888; font-size: 0.85em; }
</style>
</head>
<body>
<h1>Enrollment Report</h1>
<p class="summary">Courses: {{.Summary.Courses}} &middot; Users: {{.Summary.Users}} &middot; Enrollments: {{.Summary.Enrollments}}</p>
<table>
<thead>
<tr><th>Course</th><th>Term</th><th>Name</th><th>Role</th><th>Enrollment Available</th><th>User Available</th><th>Course Available</th></tr>
</thead>
<tbody>
{{range .Rows}}<tr><td>{{.CourseLabel}}</td><td>{{.Term}}</td><td>{{.UserFullName}}</td><td>{{.Role}}</td><td>{{yesno .EnrollmentAvailable}}</td><td>{{yesno .UserAvailable}}</td><td>{{yesno .CourseAvailable}}</td></tr>
{{end}}</tbody>
</table>
<p class="generated">Generated at {{.GeneratedAt}}</p>
</body>
</html>
`

var reportTmpl = template.Must(
	template.New("report").Funcs(template.FuncMap{"yesno": YesNo}).Parse(reportTemplate),
)

// RenderHTML produces the report document. generatedAt is expected to be an
// ISO-8601 timestamp with timezone offset at second precision.
func RenderHTML(rows []RenderRow, summary Summary, generatedAt string) ([]byte, error) {
	buf := &bytes.Buffer{}
	err := reportTmpl.Execute(buf, struct {
		Rows        []RenderRow
		Summary     Summary
		GeneratedAt string
	}{Rows: rows, Summary: summary, GeneratedAt: generatedAt})
	if err != nil {
		return nil, fmt.Errorf("render html: %w", err)
	}
	return buf.Bytes(), nil
}
